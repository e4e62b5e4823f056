// Package vfx holds short-lived, non-interactive markers triggered by collisions
package vfx

import (
	"time"

	"github.com/lixenwraith/blade-toss/core"
)

// Kind selects an effect's duration and appearance
type Kind uint8

const (
	KindHit Kind = iota
	KindExplosion
)

func (k Kind) String() string {
	switch k {
	case KindHit:
		return "hit"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Effect is a value object; nothing outside the overlay retains one
type Effect struct {
	Pos       core.Point
	ExpiresAt time.Time
	Kind      Kind
}

// Overlay owns the set of live effects
type Overlay struct {
	effects   []Effect
	durations [2]time.Duration
}

// NewOverlay creates an overlay with per-kind lifetimes
func NewOverlay(hit, explosion time.Duration) *Overlay {
	return &Overlay{
		effects:   make([]Effect, 0, 8),
		durations: [2]time.Duration{KindHit: hit, KindExplosion: explosion},
	}
}

// Record adds an effect expiring at now plus the kind's duration
func (o *Overlay) Record(pos core.Point, kind Kind, now time.Time) {
	var d time.Duration
	if int(kind) < len(o.durations) {
		d = o.durations[kind]
	}
	o.effects = append(o.effects, Effect{Pos: pos, ExpiresAt: now.Add(d), Kind: kind})
}

// Active drops every effect whose expiry is not after now and returns the rest
// The returned slice is owned by the overlay and valid until the next mutation
func (o *Overlay) Active(now time.Time) []Effect {
	live := o.effects[:0]
	for _, e := range o.effects {
		if e.ExpiresAt.After(now) {
			live = append(live, e)
		}
	}
	// Clear the tail so pruned values do not linger in the backing array
	clear(o.effects[len(live):])
	o.effects = live
	return o.effects
}

// Len returns the count retained since the last prune
func (o *Overlay) Len() int {
	return len(o.effects)
}

// Clear removes every effect
func (o *Overlay) Clear() {
	o.effects = o.effects[:0]
}
