package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/plus3/creeps/config"
	"github.com/plus3/creeps/game"
	"github.com/plus3/creeps/session"
)

const (
	frameDelta    = 1.0 / 60.0
	frameInterval = time.Second / 60
)

type Options struct {
	Duration   time.Duration
	HoldFrames int
	Seed       uint64
}

// bot holds a random set of directions for a few frames at a time.
type bot struct {
	rng    *rand.Rand
	hold   int
	frames int
	held   map[string]bool
}

var botActions = []string{game.ActionRight, game.ActionLeft, game.ActionDown, game.ActionUp}

func newBot(seed uint64, hold int) *bot {
	return &bot{
		rng:  rand.New(rand.NewPCG(seed, seed^0x5eed)),
		hold: max(hold, 1),
		held: make(map[string]bool),
	}
}

func (b *bot) IsActionPressed(action string) bool {
	return b.held[action]
}

func (b *bot) tick() {
	if b.frames%b.hold == 0 {
		for _, action := range botActions {
			b.held[action] = b.rng.IntN(3) == 0
		}
	}
	b.frames++
}

// run plays back-to-back games until opts.Duration of game time has passed.
// opts.Seed seeds both the bot and the spawn RNG.
func run(cfg config.Config, opts Options, log *slog.Logger) (*Report, error) {
	cfg.Seed = opts.Seed
	player := newBot(opts.Seed, opts.HoldFrames)
	s, err := session.New(cfg, game.Registry{game.CollaboratorInput: player}, log)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Duration:   opts.Duration,
		Seed:       opts.Seed,
		MaxMobs:    cfg.Mob.MaxActive,
		UpdateTime: Stats{Samples: make([]time.Duration, 0)},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	frames := int(opts.Duration / frameInterval)
	lastPhase := s.Game.Coordinator.Phase()
	startTime := time.Now()

	for range frames {
		if s.Game.Hud.State().StartVisible {
			s.PressStart()
		}
		player.tick()

		updateStart := time.Now()
		s.Step(frameDelta)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.TotalUpdates++

		report.PeakMobs = max(report.PeakMobs, s.Game.Mobs.Len())
		if report.MaxMobs > 0 && s.Game.Mobs.Len() > report.MaxMobs {
			return nil, fmt.Errorf("mob cap exceeded: %d > %d", s.Game.Mobs.Len(), report.MaxMobs)
		}

		phase := s.Game.Coordinator.Phase()
		if phase == game.PhaseGameOver && lastPhase != game.PhaseGameOver {
			report.Scores.Add(s.Game.Coordinator.Score())
		}
		lastPhase = phase
	}

	report.TotalTime = time.Since(startTime)
	report.Games = s.Game.Coordinator.State().Games
	report.Spawned = s.Game.Spawner.Spawned()
	report.Skipped = s.Game.Spawner.Skipped()
	report.UpdateTime.Finalize()
	report.Systems = s.Scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	return report, nil
}
