package core

// Screen dimensions in pixels. The window is fixed size; the core works in
// this coordinate space directly.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Paddle and ball geometry.
const (
	PaddleWidth  = 12
	PaddleHeight = 100
	BallSize     = 12
	PaddleMargin = 24
)

// Movement speeds in pixels per second. The AI paddle is slightly slower
// than the player so it stays beatable.
const (
	PlayerSpeed   = 520
	AISpeed       = 500
	BallBaseSpeed = 420
)

// Ball physics tuning. Spin scales with how far from the paddle center the
// ball hits; each paddle hit speeds the ball up toward a hard ceiling, which
// bounds rally length.
const (
	SpinFactor    = 220
	MaxVerticalV  = 520
	SpeedUpFactor = 1.04
	MaxHorizontal = 720

	// ServeAngleSpread is the uniform factor applied to the vertical
	// component on reset, roughly +-20 degrees off horizontal.
	ServeAngleSpread = 0.35
)

// AI behavior tuning.
const (
	// AIReactionInterval is the accumulated time between target
	// recomputes, in seconds. Emulates human reaction latency.
	AIReactionInterval = 0.140
	// AIErrorMargin is the uniform noise added to predictions, in pixels.
	AIErrorMargin = 32
)
