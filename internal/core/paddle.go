package core

import "math"

// Paddle is a player- or AI-controlled rectangle constrained to the vertical
// play area.
type Paddle struct {
	Rect  Rect
	Speed float64
}

// NewPaddle constructs a paddle with its top-left corner at (x, y).
func NewPaddle(x, y, speed float64) Paddle {
	return Paddle{
		Rect:  NewRect(x, y, PaddleWidth, PaddleHeight),
		Speed: speed,
	}
}

// MoveToward moves the paddle vertically toward targetY at its fixed speed.
// A one pixel dead zone around the center prevents oscillation once the
// target is reached. Used by the AI paddle.
func (p *Paddle) MoveToward(targetY, dt float64) {
	centerY := p.Rect.CenterY()
	if math.Abs(targetY-centerY) <= 1 {
		return
	}
	dir := 1.0
	if targetY < centerY {
		dir = -1
	}
	p.Rect.Y += dir * p.Speed * dt
	p.clamp()
}

// MoveInput moves the paddle from held key state. Movement happens only when
// exactly one of up/down is held.
func (p *Paddle) MoveInput(up, down bool, dt float64) {
	switch {
	case up && !down:
		p.Rect.Y -= p.Speed * dt
	case down && !up:
		p.Rect.Y += p.Speed * dt
	}
	p.clamp()
}

// clamp keeps the paddle fully inside the vertical play area.
func (p *Paddle) clamp() {
	if p.Rect.Top() < 0 {
		p.Rect.SetTop(0)
	}
	if p.Rect.Bottom() > ScreenHeight {
		p.Rect.SetBottom(ScreenHeight)
	}
}
