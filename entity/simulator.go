package entity

import (
	"time"

	"github.com/lixenwraith/blade-toss/config"
	"github.com/lixenwraith/blade-toss/physics"
)

// StepResult summarises one frame's bounds pass
type StepResult struct {
	Respawned int
	Removed   int
}

// Simulator owns the live target and bomb collections
// Targets keep a constant count for a round; bombs are bounded by the scheduler
type Simulator struct {
	Targets []Target
	Bombs   []Bomb

	spawner *Spawner
	gravity float64
	margins physics.Bounds
	bombMgn float64
}

// NewSimulator creates an empty simulator
func NewSimulator(cfg *config.Config, spawner *Spawner) *Simulator {
	return &Simulator{
		Targets: make([]Target, 0, cfg.Target.Count),
		Bombs:   make([]Bomb, 0, cfg.Bomb.Max),
		spawner: spawner,
		gravity: cfg.Physics.Gravity,
		margins: physics.Bounds{
			BottomMargin: cfg.Physics.BottomMarginTarget,
			SideMargin:   cfg.Physics.SideMargin,
		},
		bombMgn: cfg.Physics.BottomMarginBomb,
	}
}

// Populate replaces the target set with count freshly staggered targets and drops all bombs
func (s *Simulator) Populate(count, width, height int, now time.Time) {
	s.Targets = s.Targets[:0]
	for i := 0; i < count; i++ {
		s.Targets = append(s.Targets, s.spawner.NewTarget(width, height, now))
	}
	s.Bombs = s.Bombs[:0]
}

// AddBomb appends a freshly launched bomb
func (s *Simulator) AddBomb(width, height int, now time.Time) *Bomb {
	s.Bombs = append(s.Bombs, s.spawner.NewBomb(width, height, now))
	return &s.Bombs[len(s.Bombs)-1]
}

// RespawnTarget relaunches the target at index i in place
func (s *Simulator) RespawnTarget(i, width, height int, now time.Time) {
	s.spawner.RespawnTarget(&s.Targets[i], width, height, now)
}

// Step integrates every entity by one frame, then applies the out-of-bounds
// policy: targets respawn in place, bombs are dropped from the collection
func (s *Simulator) Step(width, height int, now time.Time) StepResult {
	var res StepResult

	bounds := s.margins
	bounds.Width, bounds.Height = float64(width), float64(height)

	for i := range s.Targets {
		t := &s.Targets[i]
		t.Recycled = false
		physics.Integrate(&t.Kinetic, s.gravity)
		if bounds.Exited(t.Kinetic, t.Radius) {
			s.spawner.RespawnTarget(t, width, height, now)
			t.Recycled = true
			res.Respawned++
		}
	}

	// Index-based compaction: survivors are copied forward, nothing is removed mid-iteration
	bombBounds := bounds
	bombBounds.BottomMargin = s.bombMgn
	kept := 0
	for i := range s.Bombs {
		b := s.Bombs[i]
		b.Recycled = false
		physics.Integrate(&b.Kinetic, s.gravity)
		if bombBounds.Exited(b.Kinetic, b.Radius) {
			res.Removed++
			continue
		}
		s.Bombs[kept] = b
		kept++
	}
	clear(s.Bombs[kept:])
	s.Bombs = s.Bombs[:kept]

	return res
}
