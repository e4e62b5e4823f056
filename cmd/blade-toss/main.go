package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/blade-toss/audio"
	"github.com/lixenwraith/blade-toss/config"
	"github.com/lixenwraith/blade-toss/core"
	"github.com/lixenwraith/blade-toss/engine"
	"github.com/lixenwraith/blade-toss/status"
	"github.com/lixenwraith/blade-toss/terminal"
	"github.com/lixenwraith/blade-toss/track"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Log to logs/blade-toss.log and show live metrics")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blade-toss: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	logger, logFile := setupLogging(*debugFlag, cfg.Log.Level)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := terminal.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Loop closes the screen on its own exit paths; this covers early returns and panics
	defer screen.Close()

	core.SetCrashFinalizer(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	metrics := status.NewRegistry()
	renderer := terminal.NewRenderer(screen.Tcell(), cfg)
	if *debugFlag {
		renderer.Metrics = metrics
	}

	opts := []engine.Option{engine.WithLogger(logger)}
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
		} else {
			defer sm.Close()
			opts = append(opts, engine.WithListener(sm))
		}
	}

	loop := &engine.Loop{
		Source:   screen,
		Tracker:  track.NewTracker(screen, cfg.Track.MinRadius, cfg.Track.Mirror),
		Input:    screen,
		Renderer: renderer,
		Game:     engine.NewGame(cfg, opts...),
		Metrics:  metrics,
		Logger:   &logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loop.Run(ctx)
}
