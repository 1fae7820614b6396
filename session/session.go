// Package session wires the game core, its timers and the physics
// collaborators into one scheduler that a host steps once per frame.
package session

import (
	"fmt"
	"log/slog"

	"github.com/plus3/creeps/config"
	"github.com/plus3/creeps/ecs"
	"github.com/plus3/creeps/game"
	"github.com/plus3/creeps/physics"
)

// Session is one running game with its scheduler and physics.
type Session struct {
	Game      *game.Game
	Scheduler *ecs.Scheduler
	Contacts  *physics.ContactSystem
}

// New builds a session from cfg and the host collaborators in registry.
// "input" is required; "presentation" is optional.
func New(cfg config.Config, registry game.Registry, log *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	input, err := game.Resolve[game.InputSource](registry, game.CollaboratorInput)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	sink, err := game.ResolveOptional[game.PresentationSink](registry, game.CollaboratorPresentation, game.NopSink{})
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	settings := cfg.Settings()
	path, err := game.ScreenPath(settings.ScreenSize)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	scheduler := ecs.NewScheduler()
	timers := ecs.NewTimerSystem()
	g, err := game.New(game.Deps{
		Input:    input,
		Sink:     sink,
		Path:     path,
		Random:   game.NewRandomSource(cfg.Seed),
		Commands: scheduler.Commands(),
		Timers:   timers,
		Logger:   log,
		Settings: settings,
	})
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	contacts := physics.NewContactSystem(g.Player, g.Mobs, settings.ScreenSize, g.Coordinator, g.Lifecycle, log)

	scheduler.Register(timers)
	scheduler.Register(&game.PlayerMotionSystem{Coordinator: g.Coordinator, Motion: g.Motion})
	scheduler.Register(&physics.MotionSystem{Mobs: g.Mobs})
	scheduler.Register(contacts)

	log.Info("session ready",
		"screen", fmt.Sprintf("%vx%v", settings.ScreenSize.X, settings.ScreenSize.Y),
		"seed", cfg.Seed,
		"max_mobs", settings.MaxActiveMobs,
	)

	return &Session{
		Game:      g,
		Scheduler: scheduler,
		Contacts:  contacts,
	}, nil
}

// Step advances the simulation by dt seconds and flushes deferred work.
func (s *Session) Step(dt float64) {
	s.Scheduler.Once(dt)
}

// PressStart is the host's start button.
func (s *Session) PressStart() {
	s.Game.Coordinator.StartButtonPressed()
}

// MobView is a read-only copy of one mob.
type MobView struct {
	Id       ecs.EntityId
	Position game.Vector2
	Rotation float64
	Variant  game.Variant
	Radius   float64
}

// Snapshot is what a renderer needs to draw one frame.
type Snapshot struct {
	State  game.GameState
	Hud    game.HudState
	Player game.Player
	Mobs   []MobView
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:  s.Game.Coordinator.State(),
		Hud:    s.Game.Hud.State(),
		Player: *s.Game.Player,
		Mobs:   make([]MobView, 0, s.Game.Mobs.Len()),
	}
	for id, mob := range s.Game.Mobs.Iter() {
		snap.Mobs = append(snap.Mobs, MobView{
			Id:       id,
			Position: mob.Position,
			Rotation: mob.Rotation,
			Variant:  mob.Variant,
			Radius:   mob.Radius,
		})
	}
	return snap
}
