package core

import "math"

// AIController tracks the ball for the right paddle. The target is
// recomputed only every ReactionInterval of accumulated time; between
// recomputes the paddle keeps seeking the stale target. The rate limit is
// deliberate, it emulates human reaction latency rather than saving work.
type AIController struct {
	TargetY          float64
	ReactionInterval float64
	ErrorMargin      float64

	timer float64
	rng   *RNG
}

// NewAIController constructs a controller with the standard reaction tuning.
func NewAIController(rng *RNG) AIController {
	return AIController{
		TargetY:          ScreenHeight / 2,
		ReactionInterval: AIReactionInterval,
		ErrorMargin:      AIErrorMargin,
		rng:              rng,
	}
}

// Advance accumulates elapsed time and, at interval boundaries, recomputes
// the target: a noisy trajectory prediction while the ball approaches, or
// the screen center while it moves away.
func (c *AIController) Advance(dt float64, ball *Ball, paddleCenterX float64) {
	c.timer += dt
	if c.timer < c.ReactionInterval {
		return
	}
	c.timer = 0

	if ball.Vel.X > 0 {
		predicted := PredictY(ball.Rect.CenterX(), ball.Rect.CenterY(), ball.Vel, paddleCenterX)
		noise := c.rng.Between(-c.ErrorMargin, c.ErrorMargin)
		c.TargetY = clamp(predicted+noise, 0, ScreenHeight)
	} else {
		c.TargetY = ScreenHeight / 2
	}
}

// PredictY returns the ball's y coordinate when its center reaches targetX,
// assuming constant velocity and reflecting off the top and bottom walls. It
// ignores future paddle hits; those happen past the prediction point.
func PredictY(x, y float64, vel Vec2, targetX float64) float64 {
	if vel.X == 0 {
		return y
	}
	timeToX := (targetX - x) / vel.X
	if timeToX <= 0 {
		return y
	}
	simulated := y + vel.Y*timeToX

	// Fold into [0, ScreenHeight] as a triangular wave with period 2H.
	// math.Mod keeps the sign of the dividend, so normalize first.
	const period = 2 * ScreenHeight
	m := math.Mod(simulated, period)
	if m < 0 {
		m += period
	}
	if m <= ScreenHeight {
		return m
	}
	return period - m
}
