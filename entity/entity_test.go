package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blade-toss/config"
	"github.com/lixenwraith/blade-toss/core"
	"github.com/lixenwraith/blade-toss/vmath"
)

const (
	testWidth  = 640
	testHeight = 480
)

func newTestSimulator(t *testing.T, seed uint64) (*config.Config, *Simulator) {
	t.Helper()
	cfg := config.Default()
	sim := NewSimulator(cfg, NewSpawner(cfg, vmath.NewFastRand(seed)))
	return cfg, sim
}

func TestSpawnerTargetRanges(t *testing.T) {
	cfg := config.Default()
	sp := NewSpawner(cfg, vmath.NewFastRand(11))
	now := time.Unix(100, 0)

	for i := 0; i < 2000; i++ {
		var tg Target
		sp.RespawnTarget(&tg, testWidth, testHeight, now)

		require.True(t, tg.Alive)
		assert.Equal(t, now, tg.SpawnedAt)
		assert.Equal(t, cfg.Target.Radius, tg.Radius)
		assert.GreaterOrEqual(t, tg.X, 50.0)
		assert.LessOrEqual(t, tg.X, float64(testWidth-50))
		assert.GreaterOrEqual(t, tg.Y, float64(testHeight)+30+20)
		assert.LessOrEqual(t, tg.Y, float64(testHeight)+30+120)
		assert.GreaterOrEqual(t, tg.VX, -4.0)
		assert.Less(t, tg.VX, 4.0)
		assert.GreaterOrEqual(t, tg.VY, -25.0)
		assert.Less(t, tg.VY, -18.0)
		assert.Contains(t, cfg.Colors(), tg.Color)
	}
}

func TestSpawnerNarrowFrameUsesInset(t *testing.T) {
	cfg := config.Default()
	sp := NewSpawner(cfg, vmath.NewFastRand(5))
	var tg Target
	sp.RespawnTarget(&tg, 60, 100, time.Time{})
	assert.Equal(t, 50.0, tg.X, "Frame narrower than twice the inset pins the column to the inset")
}

func TestSpawnerBombRanges(t *testing.T) {
	cfg := config.Default()
	sp := NewSpawner(cfg, vmath.NewFastRand(21))

	for i := 0; i < 2000; i++ {
		b := sp.NewBomb(testWidth, testHeight, time.Time{})
		assert.Equal(t, 28.0, b.Radius)
		assert.Equal(t, core.RGB{R: 50, G: 50, B: 50}, b.Color)
		assert.GreaterOrEqual(t, b.X, 80.0)
		assert.LessOrEqual(t, b.X, float64(testWidth-80))
		assert.GreaterOrEqual(t, b.Y, float64(testHeight)+28+40)
		assert.LessOrEqual(t, b.Y, float64(testHeight)+28+140)
		assert.GreaterOrEqual(t, b.VY, -29.0)
		assert.Less(t, b.VY, -20.0)
	}
}

func TestPopulateStaggersAndClearsBombs(t *testing.T) {
	cfg, sim := newTestSimulator(t, 3)
	sim.AddBomb(testWidth, testHeight, time.Time{})

	sim.Populate(cfg.Target.Count, testWidth, testHeight, time.Unix(1, 0))
	require.Len(t, sim.Targets, 6)
	assert.Empty(t, sim.Bombs)
	for _, tg := range sim.Targets {
		assert.LessOrEqual(t, tg.Y, float64(testHeight)+30+120+150)
	}
}

func TestStepIntegratesWithGravity(t *testing.T) {
	_, sim := newTestSimulator(t, 1)
	sim.Targets = append(sim.Targets, Target{Body{
		Kinetic: core.Kinetic{X: 100, Y: 300, VX: 2, VY: -10},
		Radius:  30, Alive: true,
	}})

	res := sim.Step(testWidth, testHeight, time.Unix(0, 0))
	assert.Equal(t, StepResult{}, res)
	tg := sim.Targets[0]
	assert.Equal(t, 102.0, tg.X)
	assert.Equal(t, 290.0, tg.Y)
	assert.InDelta(t, -9.4, tg.VY, 1e-9)
	assert.False(t, tg.Recycled)
}

func TestStepRespawnsTargetBelowMargin(t *testing.T) {
	_, sim := newTestSimulator(t, 9)
	now := time.Unix(50, 0)
	sim.Targets = append(sim.Targets, Target{Body{
		// One frame later the top edge is beyond height + 50
		Kinetic: core.Kinetic{X: 200, Y: testHeight + 50 + 30, VX: 0, VY: 5},
		Radius:  30, Alive: true,
	}})

	res := sim.Step(testWidth, testHeight, now)
	assert.Equal(t, 1, res.Respawned)
	require.Len(t, sim.Targets, 1)

	tg := sim.Targets[0]
	assert.True(t, tg.Recycled)
	assert.False(t, tg.Hittable())
	assert.Equal(t, now, tg.SpawnedAt)
	assert.Less(t, tg.VY, 0.0, "Respawned target must launch upward")

	// Recycled flag only lasts one frame
	sim.Step(testWidth, testHeight, now)
	assert.True(t, sim.Targets[0].Alive)
}

func TestStepRespawnsTargetPastSide(t *testing.T) {
	_, sim := newTestSimulator(t, 9)
	sim.Targets = append(sim.Targets, Target{Body{
		Kinetic: core.Kinetic{X: testWidth + 199, Y: 100, VX: 4, VY: 0},
		Radius:  30, Alive: true,
	}})
	res := sim.Step(testWidth, testHeight, time.Time{})
	assert.Equal(t, 1, res.Respawned)
}

func TestStepRemovesBombs(t *testing.T) {
	_, sim := newTestSimulator(t, 4)
	inside := Bomb{Body{Kinetic: core.Kinetic{X: 300, Y: 200}, Radius: 28, Alive: true}}
	falling := Bomb{Body{Kinetic: core.Kinetic{X: 300, Y: testHeight + 80 + 28, VY: 1}, Radius: 28, Alive: true}}
	// Inside the target margin but the bomb margin is wider, so it survives
	lingering := Bomb{Body{Kinetic: core.Kinetic{X: 310, Y: testHeight + 60 + 28}, Radius: 28, Alive: true}}
	sim.Bombs = append(sim.Bombs, falling, inside, lingering)

	res := sim.Step(testWidth, testHeight, time.Time{})
	assert.Equal(t, 1, res.Removed)
	require.Len(t, sim.Bombs, 2)
	assert.Equal(t, 300.0, sim.Bombs[0].X)
	assert.Equal(t, 310.0, sim.Bombs[1].X)
}

func TestTargetCountInvariant(t *testing.T) {
	cfg, sim := newTestSimulator(t, 77)
	sched := NewScheduler(cfg)
	now := time.Unix(0, 0)
	sched.StartRound(sim, testWidth, testHeight, now)

	for frame := 0; frame < 10000; frame++ {
		now = now.Add(33 * time.Millisecond)
		sched.Tick(sim, testWidth, testHeight, now)
		sim.Step(testWidth, testHeight, now)
		if len(sim.Targets) != cfg.Target.Count {
			t.Fatalf("Frame %d: target count %d, want %d", frame, len(sim.Targets), cfg.Target.Count)
		}
		if len(sim.Bombs) > cfg.Bomb.Max {
			t.Fatalf("Frame %d: bomb count %d exceeds cap %d", frame, len(sim.Bombs), cfg.Bomb.Max)
		}
	}
}

func TestSchedulerInterval(t *testing.T) {
	cfg, sim := newTestSimulator(t, 2)
	sched := NewScheduler(cfg)
	start := time.Unix(0, 0)
	sched.StartRound(sim, testWidth, testHeight, start)

	_, ok := sched.Tick(sim, testWidth, testHeight, start.Add(5999*time.Millisecond))
	assert.False(t, ok, "No bomb before the interval")

	b, ok := sched.Tick(sim, testWidth, testHeight, start.Add(6*time.Second))
	require.True(t, ok)
	assert.True(t, b.Alive)
	assert.Len(t, sim.Bombs, 1)
	assert.Equal(t, start.Add(6*time.Second), sched.LastSpawn())

	_, ok = sched.Tick(sim, testWidth, testHeight, start.Add(7*time.Second))
	assert.False(t, ok, "Timer re-armed by the spawn")
}

func TestSchedulerCap(t *testing.T) {
	cfg, sim := newTestSimulator(t, 2)
	sched := NewScheduler(cfg)
	now := time.Unix(0, 0)
	sched.StartRound(sim, testWidth, testHeight, now)

	sim.AddBomb(testWidth, testHeight, now)
	sim.AddBomb(testWidth, testHeight, now)

	_, ok := sched.Tick(sim, testWidth, testHeight, now.Add(time.Minute))
	assert.False(t, ok, "Cap reached")
	assert.Len(t, sim.Bombs, 2)
	assert.Equal(t, now, sched.LastSpawn(), "Blocked spawn leaves the timer untouched")

	sim.Bombs = sim.Bombs[:1]
	_, ok = sched.Tick(sim, testWidth, testHeight, now.Add(time.Minute))
	assert.True(t, ok, "Freed slot spawns immediately once the interval has elapsed")
}

func TestStartRoundResetsBombs(t *testing.T) {
	cfg, sim := newTestSimulator(t, 2)
	sched := NewScheduler(cfg)
	sim.AddBomb(testWidth, testHeight, time.Time{})
	sched.StartRound(sim, testWidth, testHeight, time.Unix(9, 0))
	assert.Empty(t, sim.Bombs)
	assert.Len(t, sim.Targets, cfg.Target.Count)
	assert.Equal(t, time.Unix(9, 0), sched.LastSpawn())
}
