//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pong/internal/app"
	"pong/internal/core"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// An interrupt cancels the context; the game loop notices on the next
	// frame boundary and shuts down cleanly, window teardown included.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	match := core.NewMatch(seed)
	game := app.New(ctx, match)

	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowSize(core.ScreenWidth, core.ScreenHeight)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop failed", "err", err)
	}
}
