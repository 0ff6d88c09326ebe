package core

// Input is the player key state sampled once per frame.
type Input struct {
	Up   bool
	Down bool
}

// Score counts balls past each edge. Counters only ever go up.
type Score struct {
	Left  int
	Right int
}

// Match owns all game state: both paddles, the ball, the score, and the AI
// controller for the right paddle. A single Match lives for the whole run;
// the ball is reset, never replaced, on each point.
type Match struct {
	Player   Paddle
	Opponent Paddle
	Ball     Ball
	Score    Score
	AI       AIController

	rng *RNG
}

// NewMatch builds the initial game state. The seed drives every random draw
// in the match: serve directions, serve angles, and AI error.
func NewMatch(seed int64) *Match {
	rng := NewRNG(seed)
	startY := float64(ScreenHeight)/2 - float64(PaddleHeight)/2
	m := &Match{
		Player:   NewPaddle(PaddleMargin, startY, PlayerSpeed),
		Opponent: NewPaddle(ScreenWidth-PaddleMargin-PaddleWidth, startY, AISpeed),
		AI:       NewAIController(rng),
		rng:      rng,
	}
	m.Ball = NewBall(rng)
	return m
}

// Step advances the match by one frame of elapsed time dt (seconds).
func (m *Match) Step(in Input, dt float64) {
	m.Player.MoveInput(in.Up, in.Down, dt)

	m.Ball.Update(dt)

	// Only one paddle can plausibly overlap in a frame, so the order does
	// not matter in practice.
	m.Ball.CollidePaddle(&m.Player)
	m.Ball.CollidePaddle(&m.Opponent)

	// A ball fully past an edge scores for the other side and serves
	// toward the side that conceded.
	if m.Ball.Rect.Right() < 0 {
		m.Score.Right++
		m.Ball.Reset(1, m.rng)
	} else if m.Ball.Rect.Left() > ScreenWidth {
		m.Score.Left++
		m.Ball.Reset(-1, m.rng)
	}

	m.AI.Advance(dt, &m.Ball, m.Opponent.Rect.CenterX())
	m.Opponent.MoveToward(m.AI.TargetY, dt)
}
