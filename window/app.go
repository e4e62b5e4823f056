// Package window is the ebiten desktop frontend; left-button drag is the tracked object
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/blade-toss/config"
	"github.com/lixenwraith/blade-toss/core"
	"github.com/lixenwraith/blade-toss/engine"
	"github.com/lixenwraith/blade-toss/parameter"
	"github.com/lixenwraith/blade-toss/status"
	"github.com/lixenwraith/blade-toss/track"
)

// Pointer is a track.Detector fed from the mouse
type Pointer struct {
	pos    core.Point
	down   bool
	radius float64
}

// NewPointer reports detections with the given enclosing radius
func NewPointer(radius float64) *Pointer {
	return &Pointer{radius: radius}
}

// Set records the cursor position and primary button state
func (p *Pointer) Set(x, y int, down bool) {
	p.pos = core.Point{X: float64(x), Y: float64(y)}
	p.down = down
}

// Detect reports the cursor while the button is held
func (p *Pointer) Detect(core.Frame) (track.Detection, bool) {
	if !p.down {
		return track.Detection{}, false
	}
	return track.Detection{Center: p.pos, Radius: p.radius}, true
}

// App adapts engine.Game to ebiten's fixed-tick game loop; each tick is one frame
type App struct {
	game    *engine.Game
	tracker *track.Tracker
	pointer *Pointer
	metrics *status.Registry
	debug   bool

	width, height int
	seq           uint64
	pending       engine.Command
	view          engine.View
	trailMax      int
}

// NewApp creates the window adapter; metrics may be nil
func NewApp(cfg *config.Config, game *engine.Game, metrics *status.Registry, debug bool) *App {
	pointer := NewPointer(parameter.PointerRadius)
	return &App{
		game:     game,
		tracker:  track.NewTracker(pointer, cfg.Track.MinRadius, cfg.Track.Mirror),
		pointer:  pointer,
		metrics:  metrics,
		debug:    debug,
		width:    parameter.WindowWidth,
		height:   parameter.WindowHeight,
		trailMax: cfg.Trail.Length,
	}
}

// Update samples input and runs one engine frame
func (a *App) Update() error {
	x, y := ebiten.CursorPosition()
	a.pointer.Set(x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	cmd := engine.CommandNone
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		cmd = engine.CommandQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		cmd = engine.CommandRestart
	}

	if a.metrics != nil {
		a.metrics.Floats.Get(status.KeyFPS).Set(ebiten.ActualTPS())
	}
	return a.step(cmd)
}

// step runs a frame with the command polled on the previous tick, then queues cmd
func (a *App) step(cmd engine.Command) error {
	a.seq++
	f := core.Frame{Width: a.width, Height: a.height, Seq: a.seq}

	in := engine.FrameInput{Frame: f, Command: a.pending}
	in.Detection, in.Tracked = a.tracker.Track(f)
	a.view = a.game.Update(in)

	if a.metrics != nil {
		a.metrics.Ints.Get(status.KeyFrames).Store(int64(a.seq))
		a.metrics.Ints.Get(status.KeyScore).Store(int64(a.view.Score))
		a.metrics.Ints.Get(status.KeyBombs).Store(int64(len(a.view.Bombs)))
		a.metrics.Floats.Get(status.KeySpeed).Set(a.view.Speed)
	}

	if cmd == engine.CommandQuit {
		return ebiten.Termination
	}
	a.pending = cmd
	return nil
}

// Layout fixes the logical frame size; ebiten scales it to the window
func (a *App) Layout(int, int) (int, int) {
	return a.width, a.height
}
