//go:build ebiten

package app

import (
	"context"

	"pong/internal/core"
	"pong/internal/render"
	"pong/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core match to the ebiten.Game interface.
type Game struct {
	ctx   context.Context
	match *core.Match
	clock *DeltaClock
	hud   *ui.HUD
}

// New constructs a Game around the provided match. The context cancels the
// run loop from outside the window, e.g. on an interrupt signal.
func New(ctx context.Context, match *core.Match) *Game {
	return &Game{
		ctx:   ctx,
		match: match,
		clock: NewDeltaClock(nil),
		hud:   ui.NewHUD(),
	}
}

// Update handles quit requests and advances the match by the elapsed frame
// time. The quit check runs before any state mutation so shutdown never
// leaves a partial frame behind.
func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := g.clock.Tick()
	in := core.Input{
		Up:   ebiten.IsKeyPressed(ebiten.KeyW),
		Down: ebiten.IsKeyPressed(ebiten.KeyS),
	}
	g.match.Step(in, dt)
	return nil
}

// Draw renders the current match state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	render.CenterLine(screen)

	render.FillRoundRect(screen, g.match.Player.Rect, 4, render.White)
	render.FillRoundRect(screen, g.match.Opponent.Rect, 4, render.White)
	render.FillRoundRect(screen, g.match.Ball.Rect, 3, render.Accent)

	g.hud.Draw(screen, g.match.Score)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.ScreenWidth, core.ScreenHeight
}
