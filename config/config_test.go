package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/plus3/creeps/config"
	"github.com/plus3/creeps/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesGameSettings(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, game.DefaultSettings(), cfg.Settings())
	assert.Equal(t, uint64(0), cfg.Seed)
}

func TestLoadMergesOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creeps.yaml")
	err := os.WriteFile(path, []byte(`
seed: 42
mob:
  max_speed: 300
  max_active: -1
timers:
  mob_interval: 250ms
log:
  level: debug
  format: json
`), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 300.0, cfg.Mob.MaxSpeed)
	assert.Equal(t, 150.0, cfg.Mob.MinSpeed, "unset keys keep their defaults")
	assert.Equal(t, -1, cfg.Mob.MaxActive)
	assert.Equal(t, 250*time.Millisecond, cfg.Timers.MobInterval)
	assert.Equal(t, 2*time.Second, cfg.Timers.StartDelay)
	assert.Equal(t, 480.0, cfg.Screen.Width)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeEmptyDocument(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Decode(strings.NewReader("")))
	assert.Equal(t, config.Default(), cfg)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	cfg := config.Default()
	err := cfg.Decode(strings.NewReader("mobs:\n  radius: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mobs")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"screen", func(c *config.Config) { c.Screen.Width = 0 }, "screen"},
		{"player speed", func(c *config.Config) { c.Player.Speed = -1 }, "player.speed"},
		{"start outside", func(c *config.Config) { c.Player.StartY = 900 }, "player start"},
		{"mob speeds", func(c *config.Config) { c.Mob.MaxSpeed = 100 }, "mob.max_speed"},
		{"mob cap", func(c *config.Config) { c.Mob.MaxActive = 0 }, "mob.max_active"},
		{"score interval", func(c *config.Config) { c.Timers.ScoreInterval = 0 }, "timers.score_interval"},
		{"log level", func(c *config.Config) { c.Log.Level = "loud" }, "log.level"},
		{"log format", func(c *config.Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Radius = 0
	cfg.Mob.Radius = 0

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "player.radius")
	assert.Contains(t, err.Error(), "mob.radius")
}

func TestMarshalRoundTripsDurations(t *testing.T) {
	data, err := config.Default().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "mob_interval: 500ms")

	cfg := config.Default()
	cfg.Timers.MobInterval = time.Second
	require.NoError(t, cfg.Decode(bytes.NewReader(data)))
	assert.Equal(t, 500*time.Millisecond, cfg.Timers.MobInterval)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.Default()
	cfg.Log.Format = "json"
	log, err := cfg.NewLogger(&buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown", "score", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"score":3`)

	buf.Reset()
	cfg.Log.Format = "text"
	cfg.Log.Level = "debug"
	log, err = cfg.NewLogger(&buf)
	require.NoError(t, err)
	log.Debug("visible")
	assert.Contains(t, buf.String(), "level=DEBUG msg=visible")

	cfg.Log.Level = "nope"
	_, err = cfg.NewLogger(&buf)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
