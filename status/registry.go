// Package status exposes live frame-loop metrics to renderers
package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the frame loop
const (
	KeyFrames   = "frame.count"
	KeyFPS      = "frame.fps"
	KeySpeed    = "slice.speed"
	KeyScore    = "game.score"
	KeyBombs    = "entity.bombs"
	KeyTargets  = "entity.targets"
	KeyEffects  = "vfx.active"
	KeyRespawns = "entity.respawns"
	KeyHits     = "game.hits"
)

// Registry is the metrics facade; the loop writes, renderers read
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Lines renders every metric as "key=value", integers first, each group sorted
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.1f", k, v.Get()))
	})
	return lines
}
