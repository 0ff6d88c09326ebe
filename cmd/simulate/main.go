package main

import (
	"flag"
	"math"
	"os"
	"time"

	"pong/internal/core"

	"github.com/charmbracelet/log"
)

// leftController mirrors the match AI for the left paddle so self-play can
// exercise the full core without a window or a human.
type leftController struct {
	target float64
	timer  float64
	rng    *core.RNG
}

func (c *leftController) advance(dt float64, b *core.Ball, paddleCenterX float64) {
	c.timer += dt
	if c.timer < core.AIReactionInterval {
		return
	}
	c.timer = 0
	if b.Vel.X < 0 {
		predicted := core.PredictY(b.Rect.CenterX(), b.Rect.CenterY(), b.Vel, paddleCenterX)
		target := predicted + c.rng.Between(-core.AIErrorMargin, core.AIErrorMargin)
		c.target = math.Min(math.Max(target, 0), core.ScreenHeight)
	} else {
		c.target = core.ScreenHeight / 2
	}
}

// input translates the seek target into held-key state, with the same one
// pixel dead zone the paddle itself uses.
func (c *leftController) input(p *core.Paddle) core.Input {
	diff := c.target - p.Rect.CenterY()
	return core.Input{Up: diff < -1, Down: diff > 1}
}

func main() {
	seconds := flag.Float64("seconds", 120, "simulated seconds of self-play")
	tps := flag.Int("tps", 60, "simulation steps per second")
	seed := flag.Int64("seed", 0, "seed for serves and AI error (0 = time-based)")
	flag.Parse()

	logger := log.New(os.Stderr)

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	if *tps <= 0 || *seconds <= 0 {
		logger.Fatal("seconds and tps must be positive", "seconds", *seconds, "tps", *tps)
	}

	m := core.NewMatch(s)
	left := leftController{target: core.ScreenHeight / 2, rng: core.NewRNG(s + 1)}

	dt := 1.0 / float64(*tps)
	steps := int(*seconds * float64(*tps))
	logger.Info("starting self-play", "seed", s, "steps", steps, "tps", *tps)

	var (
		rallySteps   int
		longestRally int
		points       int
		maxBallSpeed float64
	)

	for i := 0; i < steps; i++ {
		before := m.Score
		m.Step(left.input(&m.Player), dt)
		left.advance(dt, &m.Ball, m.Player.Rect.CenterX())

		rallySteps++
		if m.Score != before {
			points++
			if rallySteps > longestRally {
				longestRally = rallySteps
			}
			rallySteps = 0
		}
		if speed := math.Abs(m.Ball.Vel.X); speed > maxBallSpeed {
			maxBallSpeed = speed
		}
	}

	avgRally := 0.0
	if points > 0 {
		avgRally = *seconds / float64(points)
	}
	logger.Info("self-play finished",
		"left", m.Score.Left,
		"right", m.Score.Right,
		"points", points,
		"avg_rally_s", avgRally,
		"longest_rally_s", float64(longestRally)*dt,
		"max_ball_speed", maxBallSpeed,
	)
}
