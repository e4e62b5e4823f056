package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/blade-toss/core"
	"github.com/lixenwraith/blade-toss/parameter"
	"github.com/lixenwraith/blade-toss/status"
	"github.com/lixenwraith/blade-toss/track"
)

// ErrEndOfStream is returned by a FrameSource that has no more frames
var ErrEndOfStream = errors.New("end of frame stream")

// FrameSource blocks until the next frame is available
// Any error from Next ends the loop; Close releases the underlying device
type FrameSource interface {
	Next(ctx context.Context) (core.Frame, error)
	Close() error
}

// PointTracker locates the tracked object in a frame
type PointTracker interface {
	Track(f core.Frame) (track.Detection, bool)
}

// Input polls at most one command per frame without blocking past its own timeout
type Input interface {
	Poll() Command
}

// Renderer draws one snapshot
type Renderer interface {
	Render(v *View) error
}

// Loop drives one Game from a frame source until quit, end of stream or cancellation
type Loop struct {
	Source   FrameSource
	Tracker  PointTracker
	Input    Input
	Renderer Renderer
	Game     *Game

	// Optional
	Metrics *status.Registry
	Logger  *zerolog.Logger
}

// Run executes frames until one of the exit conditions; the source is closed on every path
// End of stream and quit return nil
func (l *Loop) Run(ctx context.Context) (err error) {
	log := l.Logger
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	defer func() {
		if cerr := l.Source.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("Frame source close failed")
			if err == nil {
				err = fmt.Errorf("closing frame source: %w", cerr)
			}
		}
	}()

	pending := CommandNone
	var frames uint64
	lastFrame := l.Game.Now()

	for {
		if cerr := ctx.Err(); cerr != nil {
			log.Info().Msg("Loop cancelled")
			return nil
		}

		frame, nerr := l.Source.Next(ctx)
		if nerr != nil {
			if errors.Is(nerr, ErrEndOfStream) || errors.Is(nerr, context.Canceled) {
				log.Info().Uint64("frames", frames).Msg("Frame stream ended")
			} else {
				// A failed read is treated as end of stream
				log.Warn().Err(nerr).Uint64("frames", frames).Msg("Frame read failed, stopping")
			}
			return nil
		}
		frames++

		in := FrameInput{Frame: frame, Command: pending}
		if l.Tracker != nil {
			in.Detection, in.Tracked = l.Tracker.Track(frame)
		}

		view := l.Game.Update(in)
		l.record(&view, frames, &lastFrame)

		if l.Renderer != nil {
			if rerr := l.Renderer.Render(&view); rerr != nil {
				return fmt.Errorf("rendering frame %d: %w", frames, rerr)
			}
		}

		pending = CommandNone
		if l.Input != nil {
			pending = l.Input.Poll()
		}
		if pending == CommandQuit {
			log.Info().Uint64("frames", frames).Int("score", view.Score).Msg("Quit requested")
			return nil
		}
	}
}

func (l *Loop) record(v *View, frames uint64, lastFrame *time.Time) {
	if l.Metrics == nil {
		return
	}
	now := l.Game.Now()
	if dt := now.Sub(*lastFrame).Seconds(); dt > 0 {
		l.Metrics.Floats.Get(status.KeyFPS).Smooth(1/dt, parameter.FPSSmoothing)
	}
	*lastFrame = now

	l.Metrics.Ints.Get(status.KeyFrames).Store(int64(frames))
	l.Metrics.Ints.Get(status.KeyScore).Store(int64(v.Score))
	l.Metrics.Ints.Get(status.KeyBombs).Store(int64(len(v.Bombs)))
	l.Metrics.Ints.Get(status.KeyTargets).Store(int64(len(v.Targets)))
	l.Metrics.Ints.Get(status.KeyEffects).Store(int64(len(v.Effects)))
	l.Metrics.Ints.Get(status.KeyRespawns).Store(int64(l.Game.Respawns()))
	l.Metrics.Ints.Get(status.KeyHits).Store(int64(l.Game.Hits()))
	l.Metrics.Floats.Get(status.KeySpeed).Set(v.Speed)
}
