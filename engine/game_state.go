package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/blade-toss/entity"
	"github.com/lixenwraith/blade-toss/trail"
	"github.com/lixenwraith/blade-toss/vfx"
)

// GamePhase is the two-valued round lifecycle
type GamePhase uint8

const (
	// PhasePlaying runs spawning, physics and collision every frame
	PhasePlaying GamePhase = iota
	// PhaseGameOver freezes the round until an explicit restart
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState is the single owned bundle of round state passed through the frame loop
// Only the loop iteration mutates it; renderers read it through View
type GameState struct {
	RoundID    string
	Score      int
	Phase      GamePhase
	RoundStart time.Time
	gameOverAt time.Time

	// Last frame dimensions, reused by restart
	Width, Height int

	Trail     *trail.Buffer
	Entities  *entity.Simulator
	Effects   *vfx.Overlay
	Scheduler *entity.Scheduler
}

// CanTransition checks if a phase transition is valid
func (gs *GameState) CanTransition(from, to GamePhase) bool {
	switch from {
	case PhasePlaying:
		return to == PhaseGameOver
	case PhaseGameOver:
		return to == PhasePlaying
	}
	return false
}

// TransitionPhase attempts to transition to a new phase with validation
// Returns true if transition succeeded, false if transition is invalid
func (gs *GameState) TransitionPhase(to GamePhase, now time.Time) bool {
	if !gs.CanTransition(gs.Phase, to) {
		return false
	}
	gs.Phase = to
	if to == PhaseGameOver {
		gs.gameOverAt = now
	} else {
		gs.gameOverAt = time.Time{}
	}
	return true
}

// GameOverTime returns when the round ended; false while playing
func (gs *GameState) GameOverTime() (time.Time, bool) {
	if gs.Phase != PhaseGameOver {
		return time.Time{}, false
	}
	return gs.gameOverAt, true
}

// reset starts a fresh round: score zero, fresh targets, no bombs, empty
// trail and effects, bomb timer re-armed, new round ID
func (gs *GameState) reset(width, height int, now time.Time) {
	gs.RoundID = uuid.NewString()
	gs.Score = 0
	gs.Phase = PhasePlaying
	gs.RoundStart = now
	gs.gameOverAt = time.Time{}
	gs.Width, gs.Height = width, height

	gs.Trail.Reset()
	gs.Effects.Clear()
	gs.Scheduler.StartRound(gs.Entities, width, height, now)
}
