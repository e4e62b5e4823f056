// Package collision tests the tracked point against live entities, gated by slice speed
package collision

import (
	"time"

	"github.com/lixenwraith/blade-toss/core"
	"github.com/lixenwraith/blade-toss/entity"
	"github.com/lixenwraith/blade-toss/event"
)

// Result summarises one frame's collision pass
type Result struct {
	Hits     int
	Exploded bool
	// BombIndex is the bomb that ended the round, -1 when none
	BombIndex int
}

// Engine applies the slice test
type Engine struct {
	threshold float64
}

// NewEngine creates an engine requiring speed >= threshold pixels/frame
func NewEngine(threshold float64) *Engine {
	return &Engine{threshold: threshold}
}

// Slices reports whether a point at distance dist from an entity of the
// given radius, moving at speed, counts as a slice
func (e *Engine) Slices(dist, radius, speed float64) bool {
	return dist < radius && speed >= e.threshold
}

// Check runs the slice test for one frame. Sliced targets are respawned in
// place and reported as EventTargetHit. Bombs are tested in slice order and
// the first sliced bomb is reported as EventBombHit; later bombs are not
// examined this frame. Entities recycled by this frame's bounds pass are skipped
func (e *Engine) Check(
	p core.Point,
	speed float64,
	sim *entity.Simulator,
	width, height int,
	now time.Time,
	q *event.EventQueue,
) Result {
	res := Result{BombIndex: -1}

	// Below the gate nothing can register; skip the distance pass
	if speed < e.threshold {
		return res
	}

	for i := range sim.Targets {
		t := &sim.Targets[i]
		if !t.Hittable() {
			continue
		}
		if !e.Slices(p.Dist(t.Pos()), t.Radius, speed) {
			continue
		}
		q.Push(event.GameEvent{Type: event.EventTargetHit, Pos: t.Pos(), At: now, Index: i})
		sim.RespawnTarget(i, width, height, now)
		t.Recycled = true
		res.Hits++
	}

	// Indexed pass over a fixed length; the collection is not mutated here
	bombs := sim.Bombs
	for i := 0; i < len(bombs); i++ {
		b := &bombs[i]
		if !b.Hittable() {
			continue
		}
		if !e.Slices(p.Dist(b.Pos()), b.Radius, speed) {
			continue
		}
		q.Push(event.GameEvent{Type: event.EventBombHit, Pos: b.Pos(), At: now, Index: i})
		res.Exploded = true
		res.BombIndex = i
		break
	}

	return res
}
