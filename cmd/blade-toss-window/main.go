package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/blade-toss/audio"
	"github.com/lixenwraith/blade-toss/config"
	"github.com/lixenwraith/blade-toss/engine"
	"github.com/lixenwraith/blade-toss/parameter"
	"github.com/lixenwraith/blade-toss/status"
	"github.com/lixenwraith/blade-toss/window"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Debug logging and live metrics overlay")
)

func main() {
	flag.Parse()

	if err := run(*configFlag, *debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "blade-toss-window: %v\n", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred audio cleanup always executes
func run(configPath string, debug bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	lvl, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if debug {
		lvl = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Logger()

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

	metrics := status.NewRegistry()
	app := window.NewApp(cfg, engine.NewGame(cfg, opts...), metrics, debug)

	ebiten.SetWindowSize(parameter.WindowWidth, parameter.WindowHeight)
	ebiten.SetWindowTitle(parameter.WindowTitle)
	ebiten.SetTPS(parameter.FrameRateOr(cfg.Frame.Rate))

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window loop failed: %w", err)
	}
	logger.Info().Int64("frames", metrics.Ints.Get(status.KeyFrames).Load()).Msg("Window closed")
	return nil
}
