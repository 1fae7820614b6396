package game_test

import (
	"testing"

	"github.com/plus3/creeps/ecs"
	"github.com/plus3/creeps/game"
	"github.com/stretchr/testify/require"
)

// keys is an InputSource backed by a set of held actions.
type keys map[string]bool

func (k keys) IsActionPressed(action string) bool {
	return k[action]
}

// sequence is a RandomSource replaying fixed values.
type sequence struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *sequence) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *sequence) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}

type recordingSink struct {
	motions  []game.MotionEvent
	variants map[ecs.EntityId]game.Variant
}

func newRecordingSink() *recordingSink {
	return &recordingSink{variants: make(map[ecs.EntityId]game.Variant)}
}

func (s *recordingSink) PlayerMotion(event game.MotionEvent) {
	s.motions = append(s.motions, event)
}

func (s *recordingSink) MobVariant(id ecs.EntityId, variant game.Variant) {
	s.variants[id] = variant
}

type harness struct {
	game      *game.Game
	scheduler *ecs.Scheduler
	input     keys
	sink      *recordingSink
	random    *sequence
}

func newHarness(t *testing.T, settings game.Settings) *harness {
	t.Helper()

	path, err := game.ScreenPath(game.Vector2{X: 480, Y: 720})
	require.NoError(t, err)

	h := &harness{
		scheduler: ecs.NewScheduler(),
		input:     keys{},
		sink:      newRecordingSink(),
		random:    &sequence{floats: []float64{0.1, 0.5, 0.9}, ints: []int{0, 1, 2}},
	}
	timers := ecs.NewTimerSystem()

	h.game, err = game.New(game.Deps{
		Input:    h.input,
		Sink:     h.sink,
		Path:     path,
		Random:   h.random,
		Commands: h.scheduler.Commands(),
		Timers:   timers,
		Settings: settings,
	})
	require.NoError(t, err)

	h.scheduler.Register(timers)
	h.scheduler.Register(&game.PlayerMotionSystem{
		Coordinator: h.game.Coordinator,
		Motion:      h.game.Motion,
	})
	return h
}

// step runs one frame of dt seconds.
func (h *harness) step(dt float64) {
	h.scheduler.Once(dt)
}
