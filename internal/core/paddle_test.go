package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaddleStaysInsideScreen(t *testing.T) {
	rng := NewRNG(7)
	p := NewPaddle(PaddleMargin, 250, PlayerSpeed)

	// Random walk long enough to slam into both bounds repeatedly.
	for i := 0; i < 2000; i++ {
		up := rng.Source().IntN(2) == 0
		p.MoveInput(up, !up, 1.0/60)
		require.GreaterOrEqual(t, p.Rect.Top(), 0.0)
		require.LessOrEqual(t, p.Rect.Bottom(), float64(ScreenHeight))
	}
}

func TestPaddleMoveTowardDeadZone(t *testing.T) {
	p := NewPaddle(PaddleMargin, 250, AISpeed)
	centerY := p.Rect.CenterY()

	p.MoveToward(centerY+1, 1.0/60)
	assert.Equal(t, centerY, p.Rect.CenterY(), "within dead zone, paddle must not move")

	p.MoveToward(centerY-0.5, 1.0/60)
	assert.Equal(t, centerY, p.Rect.CenterY())
}

func TestPaddleMoveTowardSeeksTarget(t *testing.T) {
	p := NewPaddle(PaddleMargin, 250, AISpeed)
	before := p.Rect.Y

	p.MoveToward(p.Rect.CenterY()+50, 1.0/60)
	assert.InDelta(t, before+AISpeed/60.0, p.Rect.Y, 1e-9, "moves down at fixed speed")

	p = NewPaddle(PaddleMargin, 250, AISpeed)
	p.MoveToward(p.Rect.CenterY()-50, 1.0/60)
	assert.InDelta(t, before-AISpeed/60.0, p.Rect.Y, 1e-9, "moves up at fixed speed")
}

func TestPaddleMoveTowardClamps(t *testing.T) {
	p := NewPaddle(PaddleMargin, 2, AISpeed)
	p.MoveToward(-500, 1)
	assert.Equal(t, 0.0, p.Rect.Top())

	p.MoveToward(ScreenHeight+500, 10)
	assert.Equal(t, float64(ScreenHeight), p.Rect.Bottom())
}

func TestPaddleMoveInputConflictingKeys(t *testing.T) {
	p := NewPaddle(PaddleMargin, 250, PlayerSpeed)
	before := p.Rect.Y

	p.MoveInput(true, true, 1.0/60)
	assert.Equal(t, before, p.Rect.Y, "both keys held cancels out")

	p.MoveInput(false, false, 1.0/60)
	assert.Equal(t, before, p.Rect.Y, "no keys held means no movement")
}
