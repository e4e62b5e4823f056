// Package terminal is the tcell frontend: a paced frame source, a mouse-drag
// detector standing in for the tracked object, key input and a cell renderer
package terminal

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blade-toss/config"
	"github.com/lixenwraith/blade-toss/core"
	"github.com/lixenwraith/blade-toss/engine"
	"github.com/lixenwraith/blade-toss/parameter"
	"github.com/lixenwraith/blade-toss/track"
)

// Screen owns the tcell screen for the process lifetime
// Frames are paced by a ticker; events are forwarded by a pump goroutine and
// applied on the loop goroutine inside Next, so handler state needs no locking
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	ticker *time.Ticker

	cellW, cellH float64
	seq          uint64

	pointer  core.Point
	dragging bool
	pending  engine.Command

	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// Open creates and initialises the terminal screen
func Open(cfg *config.Config) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(s, cfg)
}

// New initialises s and starts pacing frames at the configured rate
func New(s tcell.Screen, cfg *config.Config) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse(tcell.MouseDragEvents)
	s.HideCursor()
	s.Clear()

	sc := &Screen{
		screen:  s,
		events:  make(chan tcell.Event, 100),
		ticker:  time.NewTicker(parameter.FrameInterval(cfg.Frame.Rate)),
		cellW:   cfg.Terminal.CellWidth,
		cellH:   cfg.Terminal.CellHeight,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	core.Go(sc.pump)
	return sc, nil
}

// Tcell exposes the underlying screen for the renderer
func (sc *Screen) Tcell() tcell.Screen {
	return sc.screen
}

// pump forwards events until the screen is finalised or closed, then closes the channel
// A full buffer after Close must not strand the goroutine on the send
func (sc *Screen) pump() {
	defer close(sc.stopped)
	defer close(sc.events)
	for {
		ev := sc.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case sc.events <- ev:
		case <-sc.done:
			return
		}
	}
}

// Next waits for the next tick, applies pending input and reports the frame in virtual pixels
func (sc *Screen) Next(ctx context.Context) (core.Frame, error) {
	if err := ctx.Err(); err != nil {
		return core.Frame{}, err
	}
	select {
	case <-sc.done:
		return core.Frame{}, engine.ErrEndOfStream
	default:
	}

	select {
	case <-ctx.Done():
		return core.Frame{}, ctx.Err()
	case <-sc.done:
		return core.Frame{}, engine.ErrEndOfStream
	case <-sc.ticker.C:
	}

	for drained := false; !drained; {
		select {
		case ev, ok := <-sc.events:
			if !ok {
				return core.Frame{}, engine.ErrEndOfStream
			}
			sc.handle(ev)
		default:
			drained = true
		}
	}

	return sc.frame(), nil
}

func (sc *Screen) frame() core.Frame {
	cols, rows := sc.screen.Size()
	sc.seq++
	return core.Frame{
		Width:  int(float64(cols) * sc.cellW),
		Height: int(float64(rows) * sc.cellH),
		Seq:    sc.seq,
	}
}

func (sc *Screen) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			sc.pending = engine.CommandQuit
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			sc.pending = engine.CommandQuit
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			if sc.pending != engine.CommandQuit {
				sc.pending = engine.CommandRestart
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		sc.dragging = ev.Buttons()&tcell.Button1 != 0
		sc.pointer = core.Point{
			X: (float64(col) + 0.5) * sc.cellW,
			Y: (float64(row) + 0.5) * sc.cellH,
		}

	case *tcell.EventResize:
		sc.screen.Sync()
	}
}

// Detect reports the pointer while the primary button is held
// The enclosing radius is one cell height so the default size gate passes
func (sc *Screen) Detect(core.Frame) (track.Detection, bool) {
	if !sc.dragging {
		return track.Detection{}, false
	}
	return track.Detection{Center: sc.pointer, Radius: sc.cellH}, true
}

// Poll returns and clears the command collected since the last frame
func (sc *Screen) Poll() engine.Command {
	cmd := sc.pending
	sc.pending = engine.CommandNone
	return cmd
}

// Close restores the terminal; safe to call more than once
func (sc *Screen) Close() error {
	sc.closeOnce.Do(func() {
		close(sc.done)
		sc.ticker.Stop()
		sc.screen.Fini()
	})
	return nil
}
