// Command coloredsquares bounces colored squares around the terminal.
//
//	a / space   spawn one square of each color
//	up          destroy the red squares
//	down        destroy every square
//	left        destroy the rotating squares
//	right       freeze the yellow squares near the centre
//	l           toggle visibility
//	r           toggle scale
//	q / esc     quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/TheBitDrifter/ledger"
	"github.com/TheBitDrifter/ledger/internal/squares"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a .toml or .yaml config file")
	profiling := flag.Bool("profile", false, "write an allocation profile to the working directory")
	sound := flag.Bool("sound", false, "play a tone when squares spawn")
	flag.Parse()

	if err := run(*configPath, *profiling, *sound); err != nil {
		fmt.Fprintf(os.Stderr, "coloredsquares: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, profiling, sound bool) error {
	cfg, err := squares.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if sound {
		cfg.Sound = true
	}

	if profiling {
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	logger, err := squares.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	ledger.Config.SetLogger(logger)

	snd, err := squares.NewSound(cfg.Sound)
	if err != nil {
		logger.Warn("audio unavailable, running silent", zap.Error(err))
	}
	defer snd.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	game, err := squares.NewGame(cfg, screen, snd, logger)
	if err != nil {
		return err
	}
	defer game.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := game.Run(ctx, cfg.FrameTime); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
