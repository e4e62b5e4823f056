package collision

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blade-toss/config"
	"github.com/lixenwraith/blade-toss/core"
	"github.com/lixenwraith/blade-toss/entity"
	"github.com/lixenwraith/blade-toss/event"
	"github.com/lixenwraith/blade-toss/vmath"
)

const (
	testWidth  = 640
	testHeight = 480
)

func setup(t *testing.T) (*entity.Simulator, *event.EventQueue) {
	t.Helper()
	cfg := config.Default()
	sim := entity.NewSimulator(cfg, entity.NewSpawner(cfg, vmath.NewFastRand(13)))
	return sim, event.NewEventQueue()
}

func target(x, y float64) entity.Target {
	return entity.Target{Body: entity.Body{
		Kinetic: core.Kinetic{X: x, Y: y, VX: 1, VY: -2},
		Radius:  30,
		Alive:   true,
	}}
}

func bomb(x, y float64) entity.Bomb {
	return entity.Bomb{Body: entity.Body{
		Kinetic: core.Kinetic{X: x, Y: y},
		Radius:  28,
		Alive:   true,
	}}
}

func TestTargetHitAboveThreshold(t *testing.T) {
	sim, q := setup(t)
	sim.Targets = append(sim.Targets, target(100, 100))
	before := sim.Targets[0].Kinetic
	now := time.Unix(10, 0)

	res := NewEngine(12).Check(core.Point{X: 110, Y: 100}, 15, sim, testWidth, testHeight, now, q)

	assert.Equal(t, 1, res.Hits)
	assert.False(t, res.Exploded)
	assert.Equal(t, -1, res.BombIndex)

	evs := q.Consume()
	require.Len(t, evs, 1)
	assert.Equal(t, event.EventTargetHit, evs[0].Type)
	assert.Equal(t, core.Point{X: 100, Y: 100}, evs[0].Pos, "Effect position is the pre-respawn centre")
	assert.Equal(t, 0, evs[0].Index)

	after := sim.Targets[0]
	assert.NotEqual(t, before, after.Kinetic, "Target must be respawned")
	assert.Equal(t, now, after.SpawnedAt)
	assert.True(t, after.Recycled)
}

func TestTargetNoHitBelowThreshold(t *testing.T) {
	sim, q := setup(t)
	sim.Targets = append(sim.Targets, target(100, 100))
	before := sim.Targets[0]

	res := NewEngine(12).Check(core.Point{X: 110, Y: 100}, 5, sim, testWidth, testHeight, time.Unix(10, 0), q)

	assert.Equal(t, 0, res.Hits)
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, before, sim.Targets[0], "Target untouched by collision logic")
}

func TestThresholdIsInclusive(t *testing.T) {
	sim, q := setup(t)
	sim.Targets = append(sim.Targets, target(100, 100))
	res := NewEngine(12).Check(core.Point{X: 100, Y: 100}, 12, sim, testWidth, testHeight, time.Time{}, q)
	assert.Equal(t, 1, res.Hits)
}

func TestRadiusIsExclusive(t *testing.T) {
	sim, q := setup(t)
	sim.Targets = append(sim.Targets, target(100, 100))
	res := NewEngine(12).Check(core.Point{X: 130, Y: 100}, 20, sim, testWidth, testHeight, time.Time{}, q)
	assert.Equal(t, 0, res.Hits, "Distance equal to radius is a miss")
}

func TestRecycledTargetSkipped(t *testing.T) {
	sim, q := setup(t)
	tg := target(100, 100)
	tg.Recycled = true
	sim.Targets = append(sim.Targets, tg)

	res := NewEngine(12).Check(core.Point{X: 100, Y: 100}, 40, sim, testWidth, testHeight, time.Time{}, q)
	assert.Equal(t, 0, res.Hits)
}

func TestMultipleTargetsSameFrame(t *testing.T) {
	sim, q := setup(t)
	sim.Targets = append(sim.Targets, target(100, 100), target(110, 100), target(400, 400))

	res := NewEngine(12).Check(core.Point{X: 105, Y: 100}, 20, sim, testWidth, testHeight, time.Time{}, q)
	assert.Equal(t, 2, res.Hits)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, 400.0, sim.Targets[2].X)
}

func TestFirstBombWins(t *testing.T) {
	sim, q := setup(t)
	sim.Bombs = append(sim.Bombs, bomb(300, 300), bomb(305, 300))

	res := NewEngine(12).Check(core.Point{X: 302, Y: 300}, 20, sim, testWidth, testHeight, time.Time{}, q)

	assert.True(t, res.Exploded)
	assert.Equal(t, 0, res.BombIndex)
	evs := q.Consume()
	require.Len(t, evs, 1, "Only the first sliced bomb registers")
	assert.Equal(t, event.EventBombHit, evs[0].Type)
	assert.Equal(t, 300.0, evs[0].Pos.X)
	assert.Len(t, sim.Bombs, 2, "Bomb collection is not mutated by collision")
}

func TestBombBelowThreshold(t *testing.T) {
	sim, q := setup(t)
	sim.Bombs = append(sim.Bombs, bomb(300, 300))
	res := NewEngine(12).Check(core.Point{X: 300, Y: 300}, 11.9, sim, testWidth, testHeight, time.Time{}, q)
	assert.False(t, res.Exploded)
	assert.Equal(t, 0, q.Len())
}

func TestTargetsProcessedBeforeBombs(t *testing.T) {
	sim, q := setup(t)
	sim.Targets = append(sim.Targets, target(200, 200))
	sim.Bombs = append(sim.Bombs, bomb(210, 200))

	res := NewEngine(12).Check(core.Point{X: 205, Y: 200}, 30, sim, testWidth, testHeight, time.Time{}, q)
	assert.Equal(t, 1, res.Hits)
	assert.True(t, res.Exploded)

	evs := q.Consume()
	require.Len(t, evs, 2)
	assert.Equal(t, event.EventTargetHit, evs[0].Type)
	assert.Equal(t, event.EventBombHit, evs[1].Type)
}
