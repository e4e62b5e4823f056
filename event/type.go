package event

import (
	"time"

	"github.com/lixenwraith/blade-toss/core"
)

// EventType represents the type of game event
type EventType int

const (
	// EventRoundStart marks a full reset into the playing phase
	// Trigger: first frame, restart command | Payload: Score = 0
	EventRoundStart EventType = iota

	// EventTargetHit is a successful slice through a target
	// Trigger: CollisionEngine | Consumer: score, overlay, audio
	EventTargetHit

	// EventBombHit is a slice through a bomb
	// Trigger: CollisionEngine | Consumer: overlay, audio, state machine
	EventBombHit

	// EventGameOver is the single playing to game-over transition of a round
	// Trigger: state machine after EventBombHit | Payload: Score = final score
	EventGameOver

	// EventBombSpawned is a scheduler-created bomb
	EventBombSpawned
)

func (t EventType) String() string {
	switch t {
	case EventRoundStart:
		return "round_start"
	case EventTargetHit:
		return "target_hit"
	case EventBombHit:
		return "bomb_hit"
	case EventGameOver:
		return "game_over"
	case EventBombSpawned:
		return "bomb_spawned"
	default:
		return "unknown"
	}
}

// GameEvent is a value passed from producers to listeners within one frame
type GameEvent struct {
	Type EventType
	Pos  core.Point
	At   time.Time
	// Index is the entity slot that produced the event, -1 if none
	Index int
	Score int
}

// Listener receives events after the frame that produced them has been applied
type Listener interface {
	OnEvent(GameEvent)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(GameEvent)

func (f ListenerFunc) OnEvent(ev GameEvent) { f(ev) }
