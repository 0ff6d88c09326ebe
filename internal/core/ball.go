package core

// Ball carries the ball rectangle and its velocity in pixels per second.
type Ball struct {
	Rect      Rect
	Vel       Vec2
	BaseSpeed float64
}

// NewBall constructs a ball centered on the screen and serves it in a random
// direction.
func NewBall(rng *RNG) Ball {
	b := Ball{
		Rect:      NewRect(0, 0, BallSize, BallSize),
		BaseSpeed: BallBaseSpeed,
	}
	b.Reset(rng.Direction(), rng)
	return b
}

// Reset recenters the ball and serves it toward direction (+1 right,
// -1 left) at a near-horizontal random angle.
func (b *Ball) Reset(direction float64, rng *RNG) {
	b.Rect.SetCenter(ScreenWidth/2, ScreenHeight/2)
	angle := rng.Between(-ServeAngleSpread, ServeAngleSpread)
	b.Vel.X = direction * b.BaseSpeed
	b.Vel.Y = b.BaseSpeed * angle
}

// Update integrates the ball's position and bounces it off the top and
// bottom walls. Horizontal exits are left to the scoring check.
func (b *Ball) Update(dt float64) {
	b.Rect.X += b.Vel.X * dt
	b.Rect.Y += b.Vel.Y * dt

	if b.Rect.Top() <= 0 {
		b.Rect.SetTop(0)
		b.Vel.Y = -b.Vel.Y
	} else if b.Rect.Bottom() >= ScreenHeight {
		b.Rect.SetBottom(ScreenHeight)
		b.Vel.Y = -b.Vel.Y
	}
}

// CollidePaddle resolves an overlap with the paddle: the ball is snapped
// flush against the facing paddle edge so it cannot re-collide next frame,
// its horizontal velocity flips, spin is added from the hit offset, and the
// ball speeds up slightly.
func (b *Ball) CollidePaddle(p *Paddle) {
	if !b.Rect.Intersects(p.Rect) {
		return
	}
	if b.Vel.X < 0 {
		b.Rect.SetLeft(p.Rect.Right())
	} else {
		b.Rect.SetRight(p.Rect.Left())
	}
	b.Vel.X = -b.Vel.X

	// Hits away from the paddle center add spin. The offset is left
	// unclamped: edge clips can push it past +-1, which is part of the
	// gameplay feel. Only the resulting velocity is capped.
	offset := (b.Rect.CenterY() - p.Rect.CenterY()) / (PaddleHeight / 2)
	spin := offset * SpinFactor
	b.Vel.Y = clamp(b.Vel.Y+spin, -MaxVerticalV, MaxVerticalV)

	b.Vel.X *= SpeedUpFactor
	b.Vel.X = clamp(b.Vel.X, -MaxHorizontal, MaxHorizontal)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
