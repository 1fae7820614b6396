package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/creeps/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlaysSeveralGames(t *testing.T) {
	cfg := config.Default()
	cfg.Mob.MaxActive = 16

	report, err := run(cfg, Options{Duration: 5 * time.Minute, HoldFrames: 15, Seed: 3}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(5*60*60), report.TotalUpdates)
	assert.Greater(t, report.Games, 1, "the bot restarts after every game over")
	assert.LessOrEqual(t, report.PeakMobs, 16)
	assert.Positive(t, report.Spawned)
	assert.GreaterOrEqual(t, report.Games, report.Scores.Count)
	assert.Len(t, report.Systems, 4)
}

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{Duration: time.Minute, HoldFrames: 10, Seed: 11}
	a, err := run(config.Default(), opts, nil)
	require.NoError(t, err)
	b, err := run(config.Default(), opts, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Scores, b.Scores)
	assert.Equal(t, a.Spawned, b.Spawned)
	assert.Equal(t, a.Games, b.Games)
}

func TestRunSeedOverridesConfig(t *testing.T) {
	opts := Options{Duration: time.Minute, HoldFrames: 10, Seed: 11}
	seeded := config.Default()
	seeded.Seed = 99

	a, err := run(seeded, opts, nil)
	require.NoError(t, err)
	b, err := run(config.Default(), opts, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Spawned, b.Spawned, "the spawn RNG follows opts.Seed")
	assert.Equal(t, a.Scores, b.Scores)
	assert.Equal(t, uint64(11), a.Seed)
}

func TestScores(t *testing.T) {
	var s Scores
	assert.Zero(t, s.Avg())

	for _, score := range []int{4, 1, 7} {
		s.Add(score)
	}
	assert.Equal(t, Scores{Count: 3, Min: 1, Max: 7, Total: 12}, s)
	assert.InDelta(t, 4.0, s.Avg(), 1e-9)
}

func TestReportGenerate(t *testing.T) {
	report := &Report{Duration: time.Minute, Seed: 5, MaxMobs: 64, Games: 2}
	report.Scores.Add(3)
	report.UpdateTime.Samples = []time.Duration{time.Millisecond, 3 * time.Millisecond}
	report.UpdateTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Games Started:** 2")
	assert.Contains(t, out, "min 3 / max 3 / avg 3.00")
	assert.Contains(t, out, "**Avg:** 2ms")
	assert.NotContains(t, out, "GC Pause")
}
