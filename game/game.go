// Package game is the gameplay core of a top-down avoidance game: the phase
// state machine, the timer-driven mob spawner, player motion and the HUD state.
// Rendering, input devices and collision detection are supplied by the host.
package game

import (
	"log/slog"
	"time"

	"github.com/plus3/creeps/ecs"
)

// Settings are the tunables of one game. Zero values fall back to the defaults
// below; a negative MaxActiveMobs disables the mob cap.
type Settings struct {
	ScreenSize    Vector2
	StartPosition Vector2
	PlayerSpeed   float64
	PlayerRadius  float64

	MobMinSpeed   float64
	MobMaxSpeed   float64
	MobRadius     float64
	MaxActiveMobs int

	StartDelay      time.Duration
	ScoreInterval   time.Duration
	MobInterval     time.Duration
	MessageDuration time.Duration
}

// DefaultSettings matches the reference layout: a 480x720 portrait screen.
func DefaultSettings() Settings {
	return Settings{
		ScreenSize:      Vector2{X: 480, Y: 720},
		StartPosition:   Vector2{X: 240, Y: 450},
		PlayerSpeed:     PlayerSpeed,
		PlayerRadius:    27,
		MobMinSpeed:     MobMinSpeed,
		MobMaxSpeed:     MobMaxSpeed,
		MobRadius:       35,
		MaxActiveMobs:   64,
		StartDelay:      2 * time.Second,
		ScoreInterval:   time.Second,
		MobInterval:     500 * time.Millisecond,
		MessageDuration: 2 * time.Second,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.ScreenSize == (Vector2{}) {
		s.ScreenSize = d.ScreenSize
	}
	if s.StartPosition == (Vector2{}) {
		s.StartPosition = d.StartPosition
	}
	if s.PlayerSpeed <= 0 {
		s.PlayerSpeed = d.PlayerSpeed
	}
	if s.PlayerRadius <= 0 {
		s.PlayerRadius = d.PlayerRadius
	}
	if s.MobMinSpeed <= 0 {
		s.MobMinSpeed = d.MobMinSpeed
	}
	if s.MobMaxSpeed <= 0 {
		s.MobMaxSpeed = d.MobMaxSpeed
	}
	if s.MobRadius <= 0 {
		s.MobRadius = d.MobRadius
	}
	if s.MaxActiveMobs == 0 {
		s.MaxActiveMobs = d.MaxActiveMobs
	}
	if s.StartDelay <= 0 {
		s.StartDelay = d.StartDelay
	}
	if s.ScoreInterval <= 0 {
		s.ScoreInterval = d.ScoreInterval
	}
	if s.MobInterval <= 0 {
		s.MobInterval = d.MobInterval
	}
	if s.MessageDuration <= 0 {
		s.MessageDuration = d.MessageDuration
	}
	return s
}

// Deps are the collaborators the core needs. Input, Path, Random, Commands and
// Timers are required; Sink and Logger fall back to no-ops.
type Deps struct {
	Input    InputSource
	Sink     PresentationSink
	Path     *Path
	Random   RandomSource
	Commands *ecs.Commands
	Timers   *ecs.TimerSystem
	Logger   *slog.Logger
	Settings Settings
}

func (d Deps) validate() error {
	switch {
	case d.Input == nil:
		return missing("input", "game.InputSource")
	case d.Path == nil:
		return missing("mob_path", "*game.Path")
	case d.Random == nil:
		return missing("random", "game.RandomSource")
	case d.Commands == nil:
		return missing("commands", "*ecs.Commands")
	case d.Timers == nil:
		return missing("timers", "*ecs.TimerSystem")
	}
	return nil
}

// Game bundles the wired core components.
type Game struct {
	Settings    Settings
	Player      *Player
	Mobs        *ecs.Table[Mob]
	Coordinator *Coordinator
	Hud         *HudStateController
	Spawner     *MobSpawner
	Lifecycle   *MobLifecycle
	Motion      *PlayerMotionController

	StartTimer   *ecs.Timer
	ScoreTimer   *ecs.Timer
	MobTimer     *ecs.Timer
	MessageTimer *ecs.Timer
}

// New validates deps once and wires the core. The game starts Idle.
func New(deps Deps) (*Game, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if deps.Sink == nil {
		deps.Sink = NopSink{}
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	settings := deps.Settings.withDefaults()

	g := &Game{
		Settings: settings,
		Player: &Player{
			Position:  settings.StartPosition,
			BoundsMax: settings.ScreenSize,
			Radius:    settings.PlayerRadius,
		},
		Mobs: ecs.NewTable[Mob](max(settings.MaxActiveMobs, 64)),
	}

	g.Lifecycle = NewMobLifecycle(g.Mobs, deps.Commands, deps.Random, deps.Sink, settings.MobRadius, log)
	g.Spawner = NewMobSpawner(deps.Path, deps.Random, g.Lifecycle,
		settings.MobMinSpeed, settings.MobMaxSpeed, settings.MaxActiveMobs, log)
	g.Motion = NewPlayerMotionController(g.Player, deps.Input, deps.Sink, settings.PlayerSpeed)

	g.MessageTimer = ecs.NewTimer("message", settings.MessageDuration, true, nil)
	g.Hud = NewHudStateController(g.MessageTimer, deps.Commands, log)

	c := &Coordinator{
		player:        g.Player,
		startPosition: settings.StartPosition,
		hud:           g.Hud,
		spawner:       g.Spawner,
		lifecycle:     g.Lifecycle,
		commands:      deps.Commands,
		log:           log,
	}
	g.StartTimer = ecs.NewTimer("start", settings.StartDelay, true, c.StartTimerElapsed)
	g.ScoreTimer = ecs.NewTimer("score", settings.ScoreInterval, false, c.ScoreTimerElapsed)
	g.MobTimer = ecs.NewTimer("mob", settings.MobInterval, false, c.MobTimerElapsed)
	c.startTimer = g.StartTimer
	c.scoreTimer = g.ScoreTimer
	c.mobTimer = g.MobTimer
	g.Coordinator = c

	g.Hud.OnStartGame(c.NewGame)
	deps.Timers.Add(g.StartTimer, g.ScoreTimer, g.MobTimer, g.MessageTimer)

	return g, nil
}
