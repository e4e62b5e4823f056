package entity

import (
	"time"

	"github.com/lixenwraith/blade-toss/config"
	"github.com/lixenwraith/blade-toss/vmath"
)

// Spawner implements the launch procedures for targets and bombs
type Spawner struct {
	cfg *config.Config
	rng vmath.Rand
}

// NewSpawner creates a spawner drawing from rng
func NewSpawner(cfg *config.Config, rng vmath.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// RespawnTarget relaunches t from the bottom band in place: new column, new
// upward velocity, new colour, alive, spawn time now
func (s *Spawner) RespawnTarget(t *Target, width, height int, now time.Time) {
	tc := s.cfg.Target
	t.Radius = tc.Radius
	t.X = float64(vmath.RandInt(s.rng, tc.SpawnInset, max(tc.SpawnInset, width-tc.SpawnInset)))
	t.Y = float64(height) + tc.Radius + float64(vmath.RandInt(s.rng, tc.SpawnDepthMin, tc.SpawnDepthMax))
	t.VX = vmath.Uniform(s.rng, tc.VXMin, tc.VXMax)
	t.VY = vmath.Uniform(s.rng, tc.VYMin, tc.VYMax)
	t.Alive = true
	t.SpawnedAt = now
	if colors := s.cfg.Colors(); len(colors) > 0 {
		t.Color = colors[s.rng.Intn(len(colors))]
	}
}

// NewTarget launches a target with an extra random depth for round-start staggering
func (s *Spawner) NewTarget(width, height int, now time.Time) Target {
	var t Target
	s.RespawnTarget(&t, width, height, now)
	t.Y += float64(vmath.RandInt(s.rng, 0, s.cfg.Target.StaggerMax))
	return t
}

// NewBomb launches a bomb from the bottom band with a steeper upward velocity
func (s *Spawner) NewBomb(width, height int, now time.Time) Bomb {
	bc := s.cfg.Bomb
	vyLo, vyHi := s.cfg.BombVYRange()
	var b Bomb
	b.Radius = bc.Radius
	b.X = float64(vmath.RandInt(s.rng, bc.SpawnInset, max(bc.SpawnInset, width-bc.SpawnInset)))
	b.Y = float64(height) + bc.Radius + float64(vmath.RandInt(s.rng, bc.SpawnDepthMin, bc.SpawnDepthMax))
	b.VX = vmath.Uniform(s.rng, s.cfg.Target.VXMin, s.cfg.Target.VXMax)
	b.VY = vmath.Uniform(s.rng, vyLo, vyHi)
	b.Alive = true
	b.SpawnedAt = now
	b.Color = s.cfg.BombRGB()
	return b
}
