// Package engine owns the round state machine and the frame-synchronous loop
// that wires trail, entities, collision and effects together
package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/blade-toss/collision"
	"github.com/lixenwraith/blade-toss/config"
	"github.com/lixenwraith/blade-toss/core"
	"github.com/lixenwraith/blade-toss/entity"
	"github.com/lixenwraith/blade-toss/event"
	"github.com/lixenwraith/blade-toss/parameter"
	"github.com/lixenwraith/blade-toss/track"
	"github.com/lixenwraith/blade-toss/trail"
	"github.com/lixenwraith/blade-toss/vfx"
	"github.com/lixenwraith/blade-toss/vmath"
)

// Command is a discrete keyboard command polled once per frame
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandRestart
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandRestart:
		return "restart"
	default:
		return "none"
	}
}

// FrameInput is everything the presentation boundary supplies for one frame
type FrameInput struct {
	Frame     core.Frame
	Detection track.Detection
	// Tracked is false when the tracker found nothing this frame
	Tracked bool
	// Command is the key polled after the previous frame; only restart is acted on here
	Command Command
}

// View is a read-only snapshot handed to renderers
// Slices are copies; renderers may keep them past the next Update
type View struct {
	Frame   core.Frame
	RoundID string
	Phase   GamePhase
	Score   int
	Speed   float64

	Targets []entity.Target
	Bombs   []entity.Bomb
	Trail   []trail.Sample
	Effects []vfx.Effect

	Detection track.Detection
	Tracked   bool

	// Ring radii for effect kinds
	HitRing       float64
	ExplosionRing float64
}

// Ring returns the ring radius for an effect kind
func (v *View) Ring(k vfx.Kind) float64 {
	if k == vfx.KindExplosion {
		return v.ExplosionRing
	}
	return v.HitRing
}

// Option configures a Game
type Option func(*Game)

// WithRand sets the random source used for spawning
func WithRand(r vmath.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithTimeProvider sets the clock
func WithTimeProvider(tp TimeProvider) Option {
	return func(g *Game) { g.clock = tp }
}

// WithLogger sets the logger; the default discards everything
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithListener registers a listener for applied game events
func WithListener(l event.Listener) Option {
	return func(g *Game) { g.listeners = append(g.listeners, l) }
}

// Game runs one simulation step per frame
type Game struct {
	cfg       *config.Config
	clock     TimeProvider
	rng       vmath.Rand
	log       zerolog.Logger
	listeners []event.Listener

	state   *GameState
	slicer  *collision.Engine
	queue   *event.EventQueue
	started bool

	respawns int
	hits     int
}

// NewGame creates a game; the first round starts lazily on the first Update
// so it can use the first frame's dimensions
func NewGame(cfg *config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		clock: NewMonotonicTimeProvider(),
		log:   zerolog.Nop(),
		queue: event.NewEventQueue(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = vmath.NewFastRand(uint64(g.clock.Now().UnixNano()))
	}

	spawner := entity.NewSpawner(cfg, g.rng)
	g.state = &GameState{
		Phase:     PhasePlaying,
		Trail:     trail.NewBuffer(cfg.Trail.Length),
		Entities:  entity.NewSimulator(cfg, spawner),
		Effects:   vfx.NewOverlay(cfg.Effect.HitDuration, cfg.Effect.ExplosionDuration),
		Scheduler: entity.NewScheduler(cfg),
	}
	g.slicer = collision.NewEngine(cfg.Slice.SpeedThreshold)
	return g
}

// State returns the live game state
func (g *Game) State() *GameState {
	return g.state
}

// Now returns the game clock's current time
func (g *Game) Now() time.Time {
	return g.clock.Now()
}

// Respawns returns the number of targets recycled by the bounds pass so far
func (g *Game) Respawns() int {
	return g.respawns
}

// Hits returns the number of targets sliced over the process lifetime
func (g *Game) Hits() int {
	return g.hits
}

// Reset performs a full round reset at the given frame size
func (g *Game) Reset(width, height int) {
	g.reset(width, height, g.clock.Now())
	g.dispatch(g.queue.Consume())
}

func (g *Game) reset(width, height int, now time.Time) {
	g.started = true
	g.state.reset(width, height, now)
	g.queue.Clear()
	g.queue.Push(event.GameEvent{Type: event.EventRoundStart, At: now, Index: -1})

	g.log.Info().
		Str("round", g.state.RoundID).
		Int("targets", len(g.state.Entities.Targets)).
		Int("width", width).
		Int("height", height).
		Msg("Round started")
}

// Update runs one frame and returns the snapshot to render
// A restart empties the trail and then records this frame's sample, so the
// restart frame's view holds one trail entry where Reset alone leaves none
func (g *Game) Update(in FrameInput) View {
	now := g.clock.Now()
	st := g.state
	w, h := in.Frame.Width, in.Frame.Height

	if !g.started {
		g.reset(w, h, now)
	} else if in.Command == CommandRestart && st.Phase == PhaseGameOver {
		g.log.Info().Str("round", st.RoundID).Int("score", st.Score).Msg("Restart requested")
		g.reset(w, h, now)
	}
	st.Width, st.Height = w, h

	// Absent points are recorded too; they break the speed pair
	st.Trail.Push(in.Detection.Center, in.Tracked)
	speed := st.Trail.Speed()

	if st.Phase == PhasePlaying {
		if b, ok := st.Scheduler.Tick(st.Entities, w, h, now); ok {
			g.queue.Push(event.GameEvent{
				Type:  event.EventBombSpawned,
				Pos:   b.Pos(),
				At:    now,
				Index: len(st.Entities.Bombs) - 1,
			})
		}

		// Bounds pass strictly precedes collision
		step := st.Entities.Step(w, h, now)
		g.respawns += step.Respawned

		if in.Tracked {
			res := g.slicer.Check(in.Detection.Center, speed, st.Entities, w, h, now, g.queue)
			g.hits += res.Hits
			if res.Exploded {
				g.log.Debug().Int("bomb", res.BombIndex).Float64("speed", speed).Msg("Bomb sliced")
			}
		}
	}

	events := g.apply(now)
	view := g.snapshot(in, speed, now)
	g.dispatch(events)
	return view
}

// apply folds this frame's events into score, overlay and phase
func (g *Game) apply(now time.Time) []event.GameEvent {
	st := g.state
	events := g.queue.Consume()
	for i := range events {
		ev := &events[i]
		switch ev.Type {
		case event.EventTargetHit:
			st.Score++
			st.Effects.Record(ev.Pos, vfx.KindHit, now)
			ev.Score = st.Score
		case event.EventBombHit:
			st.Effects.Record(ev.Pos, vfx.KindExplosion, now)
			if st.TransitionPhase(PhaseGameOver, now) {
				events = append(events, event.GameEvent{
					Type:  event.EventGameOver,
					Pos:   ev.Pos,
					At:    now,
					Index: ev.Index,
					Score: st.Score,
				})
				g.log.Info().
					Str("round", st.RoundID).
					Int("score", st.Score).
					Dur("duration", now.Sub(st.RoundStart)).
					Msg("BOOM! Game Over.")
			}
		case event.EventBombSpawned:
			g.log.Debug().Int("bombs", len(st.Entities.Bombs)).Msg("Bomb spawned")
		}
	}
	return events
}

func (g *Game) dispatch(events []event.GameEvent) {
	for _, ev := range events {
		for _, l := range g.listeners {
			l.OnEvent(ev)
		}
	}
}

func (g *Game) snapshot(in FrameInput, speed float64, now time.Time) View {
	st := g.state
	return View{
		Frame:         in.Frame,
		RoundID:       st.RoundID,
		Phase:         st.Phase,
		Score:         st.Score,
		Speed:         speed,
		Targets:       append([]entity.Target(nil), st.Entities.Targets...),
		Bombs:         append([]entity.Bomb(nil), st.Entities.Bombs...),
		Trail:         append([]trail.Sample(nil), st.Trail.Samples()...),
		Effects:       append([]vfx.Effect(nil), st.Effects.Active(now)...),
		Detection:     in.Detection,
		Tracked:       in.Tracked,
		HitRing:       g.cfg.Target.Radius + parameter.HitRingPad,
		ExplosionRing: g.cfg.Bomb.Radius + parameter.ExplosionRingPad,
	}
}
