package game_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/plus3/creeps/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestNewPathRejectsDegenerateInput(t *testing.T) {
	_, err := game.NewPath(game.Vector2{X: 1, Y: 1})
	assert.ErrorIs(t, err, game.ErrInvalidPath)

	_, err = game.NewPath(game.Vector2{X: 3, Y: 3}, game.Vector2{X: 3, Y: 3})
	assert.ErrorIs(t, err, game.ErrInvalidPath)
}

func TestScreenPathSample(t *testing.T) {
	path, err := game.ScreenPath(game.Vector2{X: 480, Y: 720})
	require.NoError(t, err)
	assert.InDelta(t, 2400.0, path.Length(), epsilon)

	tests := []struct {
		name     string
		offset   float64
		position game.Vector2
		rotation float64
	}{
		{"origin", 0, game.Vector2{X: 0, Y: 0}, 0},
		{"top edge", 240, game.Vector2{X: 240, Y: 0}, 0},
		{"right edge", 480 + 360, game.Vector2{X: 480, Y: 360}, math.Pi / 2},
		{"bottom edge", 480 + 720 + 80, game.Vector2{X: 400, Y: 720}, math.Pi},
		{"left edge", 480 + 720 + 480 + 720 - 10, game.Vector2{X: 0, Y: 10}, -math.Pi / 2},
		{"wraps past the end", 2400 + 10, game.Vector2{X: 10, Y: 0}, 0},
		{"negative offset", -10, game.Vector2{X: 0, Y: 10}, -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, rot := path.Sample(tt.offset)
			assert.InDelta(t, tt.position.X, pos.X, 1e-6)
			assert.InDelta(t, tt.position.Y, pos.Y, 1e-6)
			assert.InDelta(t, tt.rotation, rot, 1e-6)
		})
	}
}

func TestGenerateTrajectoryExact(t *testing.T) {
	path, err := game.ScreenPath(game.Vector2{X: 480, Y: 720})
	require.NoError(t, err)

	// offset 600 lands on the right edge; a centred perturbation keeps the
	// tangent direction and the midpoint speed is 200.
	rng := &sequence{floats: []float64{0.25, 0.5, 0.5}}
	traj := game.GenerateTrajectory(path, rng, game.MobMinSpeed, game.MobMaxSpeed)

	assert.InDelta(t, 480.0, traj.Position.X, 1e-6)
	assert.InDelta(t, 120.0, traj.Position.Y, 1e-6)
	assert.InDelta(t, math.Pi/2, traj.Tangent, epsilon)
	assert.InDelta(t, 0.0, traj.Perturbation, epsilon)
	assert.InDelta(t, math.Pi, traj.Rotation, epsilon)
	assert.InDelta(t, 200.0, traj.Speed, epsilon)
	assert.InDelta(t, 0.0, traj.Velocity.X, 1e-6)
	assert.InDelta(t, 200.0, traj.Velocity.Y, 1e-6)
}

func TestGenerateTrajectoryBounds(t *testing.T) {
	path, err := game.ScreenPath(game.Vector2{X: 480, Y: 720})
	require.NoError(t, err)

	check := func(t *testing.T, traj game.Trajectory) {
		t.Helper()
		assert.GreaterOrEqual(t, traj.Speed, game.MobMinSpeed)
		assert.LessOrEqual(t, traj.Speed, game.MobMaxSpeed)
		assert.GreaterOrEqual(t, traj.Perturbation, -math.Pi/4)
		assert.LessOrEqual(t, traj.Perturbation, math.Pi/4)

		direction := traj.Tangent + traj.Perturbation
		assert.InDelta(t, direction+math.Pi/2, traj.Rotation, epsilon)
		assert.InDelta(t, traj.Speed, traj.Velocity.Length(), 1e-6)

		// velocity follows the perturbed direction, not the facing
		expected := game.Vector2{X: traj.Speed}.Rotated(direction)
		assert.InDelta(t, expected.X, traj.Velocity.X, 1e-6)
		assert.InDelta(t, expected.Y, traj.Velocity.Y, 1e-6)
	}

	t.Run("domain extremes", func(t *testing.T) {
		for _, u := range []float64{0, 0.5, math.Nextafter(1, 0)} {
			check(t, game.GenerateTrajectory(path, &sequence{floats: []float64{u}}, game.MobMinSpeed, game.MobMaxSpeed))
		}
	})

	t.Run("seeded source", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))
		for range 1000 {
			check(t, game.GenerateTrajectory(path, rng, game.MobMinSpeed, game.MobMaxSpeed))
		}
	})
}

func TestVector2(t *testing.T) {
	v := game.Vector2{X: 3, Y: 4}
	assert.Equal(t, 5.0, v.Length())
	assert.InDelta(t, 1.0, v.Normalized().Length(), epsilon)
	assert.Equal(t, game.Vector2{}, game.Vector2{}.Normalized())

	r := game.Vector2{X: 1}.Rotated(math.Pi / 2)
	assert.InDelta(t, 0.0, r.X, epsilon)
	assert.InDelta(t, 1.0, r.Y, epsilon)

	c := game.Vector2{X: -5, Y: 900}.Clamp(game.Vector2{}, game.Vector2{X: 480, Y: 720})
	assert.Equal(t, game.Vector2{X: 0, Y: 720}, c)
}
