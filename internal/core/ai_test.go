package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictYStationaryBall(t *testing.T) {
	for _, vy := range []float64{-300, 0, 450} {
		got := PredictY(100, 222, Vec2{X: 0, Y: vy}, 770)
		assert.Equal(t, 222.0, got, "zero horizontal velocity predicts current y")
	}
}

func TestPredictYTargetBehindBall(t *testing.T) {
	// Ball moving right, target to its left: prediction falls back to the
	// current y.
	got := PredictY(500, 123, Vec2{X: 420, Y: 100}, 100)
	assert.Equal(t, 123.0, got)
}

func TestPredictYStraightLine(t *testing.T) {
	// One second of flight, no wall in the way.
	got := PredictY(100, 200, Vec2{X: 100, Y: 150}, 200)
	assert.InDelta(t, 350, got, 1e-9)
}

func TestPredictYReflectsOffBottomWall(t *testing.T) {
	// Unreflected y lands at ScreenHeight+5; the fold mirrors it back to
	// ScreenHeight-5.
	got := PredictY(0, 0, Vec2{X: 100, Y: ScreenHeight + 5}, 100)
	assert.InDelta(t, ScreenHeight-5, got, 1e-9)
}

func TestPredictYReflectsOffTopWall(t *testing.T) {
	// Unreflected y of -5 must mirror to +5 despite math.Mod returning a
	// negative remainder.
	got := PredictY(0, 0, Vec2{X: 100, Y: -5}, 100)
	assert.InDelta(t, 5, got, 1e-9)
}

func TestPredictYDoubleReflection(t *testing.T) {
	// Travels down past the bottom wall and back up past the top one:
	// 2*ScreenHeight+30 folds onto 30.
	got := PredictY(0, 0, Vec2{X: 100, Y: 2*ScreenHeight + 30}, 100)
	assert.InDelta(t, 30, got, 1e-9)
}

func TestPredictYAlwaysInsideScreen(t *testing.T) {
	rng := NewRNG(3)
	for i := 0; i < 500; i++ {
		y := rng.Between(0, ScreenHeight)
		vel := Vec2{X: rng.Between(1, MaxHorizontal), Y: rng.Between(-2000, 2000)}
		got := PredictY(rng.Between(0, ScreenWidth), y, vel, ScreenWidth)
		require.GreaterOrEqual(t, got, 0.0)
		require.LessOrEqual(t, got, float64(ScreenHeight))
	}
}

func TestAIControllerIdlesAtCenterWhenBallMovesAway(t *testing.T) {
	rng := NewRNG(5)
	c := NewAIController(rng)
	c.TargetY = 100

	b := Ball{Rect: NewRect(400, 300, BallSize, BallSize), BaseSpeed: BallBaseSpeed}
	b.Vel = Vec2{X: -420, Y: 0}

	c.Advance(c.ReactionInterval, &b, 770)
	assert.Equal(t, float64(ScreenHeight)/2, c.TargetY)
}

func TestAIControllerTracksApproachingBall(t *testing.T) {
	rng := NewRNG(5)
	c := NewAIController(rng)

	b := Ball{Rect: NewRect(400, 100, BallSize, BallSize), BaseSpeed: BallBaseSpeed}
	b.Rect.SetCenter(400, 100)
	b.Vel = Vec2{X: 420, Y: 0}

	c.Advance(c.ReactionInterval, &b, 770)

	// Flat trajectory: prediction is the current y plus bounded noise.
	assert.InDelta(t, 100, c.TargetY, c.ErrorMargin)
	assert.GreaterOrEqual(t, c.TargetY, 0.0)
	assert.LessOrEqual(t, c.TargetY, float64(ScreenHeight))
}

func TestAIControllerRateLimitsRecompute(t *testing.T) {
	rng := NewRNG(5)
	c := NewAIController(rng)
	c.TargetY = 42

	b := Ball{Rect: NewRect(400, 300, BallSize, BallSize), BaseSpeed: BallBaseSpeed}
	b.Vel = Vec2{X: 420, Y: 0}

	// Short of the reaction interval: stale target survives.
	c.Advance(c.ReactionInterval/2, &b, 770)
	assert.Equal(t, 42.0, c.TargetY)

	// Crossing the boundary triggers a recompute.
	c.Advance(c.ReactionInterval/2, &b, 770)
	assert.NotEqual(t, 42.0, c.TargetY)
}

func TestAIControllerTargetClampedToScreen(t *testing.T) {
	rng := NewRNG(9)
	c := NewAIController(rng)

	b := Ball{Rect: NewRect(0, 0, BallSize, BallSize), BaseSpeed: BallBaseSpeed}
	b.Rect.SetCenter(750, 2)
	b.Vel = Vec2{X: 720, Y: -520}

	for i := 0; i < 100; i++ {
		c.Advance(c.ReactionInterval, &b, 770)
		require.GreaterOrEqual(t, c.TargetY, 0.0)
		require.LessOrEqual(t, c.TargetY, float64(ScreenHeight))
	}
}
