// Package entity owns targets and bombs: projectile motion, respawn/removal
// policy and time-gated bomb creation
package entity

import (
	"time"

	"github.com/lixenwraith/blade-toss/core"
)

// Body is the state shared by targets and bombs
type Body struct {
	core.Kinetic
	Radius    float64
	Color     core.RGB
	Alive     bool
	SpawnedAt time.Time
	// Recycled marks a body respawned or removed by this frame's bounds pass;
	// collision ignores it until the next step
	Recycled bool
}

// Target is a scoring entity, always respawned in place
type Target struct {
	Body
}

// Bomb is a hazard entity, removed when it leaves the play area
type Bomb struct {
	Body
}

// Hittable reports whether collision testing applies this frame
func (b *Body) Hittable() bool {
	return b.Alive && !b.Recycled
}
