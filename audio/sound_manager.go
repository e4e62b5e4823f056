// Package audio plays short synthesized cues for slices and explosions
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/blade-toss/event"
	"github.com/lixenwraith/blade-toss/parameter"
)

// SoundType identifies a cue
type SoundType int

const (
	SoundHit SoundType = iota
	SoundExplosion
)

func (s SoundType) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// SoundManager mixes cues into a single speaker stream
// It is an event.Listener; cues are dropped until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager at the given master volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBuffer)); err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences pending cues and releases the device
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	if !sm.initialized {
		sm.mu.Unlock()
		return
	}
	sm.initialized = false
	sm.mu.Unlock()

	// Speaker lock is taken around the mixer since the speaker goroutine streams from it
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Play queues a cue; a no-op before Initialize
func (sm *SoundManager) Play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := sm.create(s)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

func (sm *SoundManager) create(s SoundType) beep.Streamer {
	switch s {
	case SoundHit:
		return CreateHitSound(sm.rate, sm.volume)
	case SoundExplosion:
		return CreateExplosionSound(sm.rate, sm.volume)
	default:
		return nil
	}
}

// OnEvent maps game events to cues
func (sm *SoundManager) OnEvent(ev event.GameEvent) {
	if s, ok := SoundFor(ev.Type); ok {
		sm.Play(s)
	}
}

// SoundFor returns the cue for an event type, if any
func SoundFor(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventTargetHit:
		return SoundHit, true
	case event.EventBombHit:
		return SoundExplosion, true
	default:
		return 0, false
	}
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
