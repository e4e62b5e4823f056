package entity

import (
	"time"

	"github.com/lixenwraith/blade-toss/config"
)

// Scheduler gates bomb creation by interval and population cap, and seeds
// the target set at round start
type Scheduler struct {
	interval    time.Duration
	maxBombs    int
	targetCount int
	lastSpawn   time.Time
}

// NewScheduler creates a scheduler from bomb and target configuration
func NewScheduler(cfg *config.Config) *Scheduler {
	return &Scheduler{
		interval:    cfg.Bomb.Interval,
		maxBombs:    cfg.Bomb.Max,
		targetCount: cfg.Target.Count,
	}
}

// StartRound creates the configured targets, drops all bombs and re-arms the bomb timer
func (s *Scheduler) StartRound(sim *Simulator, width, height int, now time.Time) {
	sim.Populate(s.targetCount, width, height, now)
	s.lastSpawn = now
}

// Tick adds one bomb when the interval has elapsed and the cap allows it
// The timer is only reset by a spawn, so a full screen defers the next bomb
// until a slot frees up
func (s *Scheduler) Tick(sim *Simulator, width, height int, now time.Time) (Bomb, bool) {
	if now.Sub(s.lastSpawn) < s.interval || len(sim.Bombs) >= s.maxBombs {
		return Bomb{}, false
	}
	b := sim.AddBomb(width, height, now)
	s.lastSpawn = now
	return *b, true
}

// LastSpawn returns the time of the last spawn or round start
func (s *Scheduler) LastSpawn() time.Time {
	return s.lastSpawn
}
