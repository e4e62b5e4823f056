package window

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blade-toss/config"
	"github.com/lixenwraith/blade-toss/core"
	"github.com/lixenwraith/blade-toss/engine"
	"github.com/lixenwraith/blade-toss/status"
	"github.com/lixenwraith/blade-toss/vmath"
)

func newTestApp(t *testing.T) (*App, *status.Registry) {
	t.Helper()
	cfg := config.Default()
	game := engine.NewGame(cfg,
		engine.WithRand(vmath.NewFastRand(1)),
		engine.WithTimeProvider(engine.NewMockTimeProvider(time.Unix(0, 0))),
	)
	reg := status.NewRegistry()
	return NewApp(cfg, game, reg, true), reg
}

func TestPointerDetection(t *testing.T) {
	p := NewPointer(12)

	_, ok := p.Detect(core.Frame{})
	assert.False(t, ok)

	p.Set(30, 40, true)
	d, ok := p.Detect(core.Frame{})
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 30, Y: 40}, d.Center)
	assert.Equal(t, 12.0, d.Radius)

	p.Set(30, 40, false)
	_, ok = p.Detect(core.Frame{})
	assert.False(t, ok)
}

func TestStepRunsOneFrame(t *testing.T) {
	app, reg := newTestApp(t)

	require.NoError(t, app.step(engine.CommandNone))
	assert.Equal(t, engine.PhasePlaying, app.view.Phase)
	assert.Len(t, app.view.Targets, 6)
	assert.Equal(t, 960, app.view.Frame.Width)
	assert.Equal(t, int64(1), reg.Ints.Get(status.KeyFrames).Load())

	app.pointer.Set(100, 100, true)
	require.NoError(t, app.step(engine.CommandNone))
	assert.True(t, app.view.Tracked)
	assert.Len(t, app.view.Trail, 2)
}

func TestStepQuitTerminates(t *testing.T) {
	app, _ := newTestApp(t)

	require.NoError(t, app.step(engine.CommandRestart))
	assert.Equal(t, engine.CommandRestart, app.pending)

	err := app.step(engine.CommandQuit)
	assert.ErrorIs(t, err, ebiten.Termination)
}

func TestLayoutIsFixed(t *testing.T) {
	app, _ := newTestApp(t)
	w, h := app.Layout(1920, 1080)
	assert.Equal(t, 960, w)
	assert.Equal(t, 720, h)
}
