// Package config loads the YAML settings shared by the creeps binaries.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/plus3/creeps/game"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

type Screen struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Player struct {
	Speed  float64 `yaml:"speed"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Radius float64 `yaml:"radius"`
}

type Mob struct {
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Radius   float64 `yaml:"radius"`
	// MaxActive caps live mobs; negative disables the cap.
	MaxActive int `yaml:"max_active"`
}

type Timers struct {
	StartDelay    time.Duration `yaml:"start_delay"`
	ScoreInterval time.Duration `yaml:"score_interval"`
	MobInterval   time.Duration `yaml:"mob_interval"`
	Message       time.Duration `yaml:"message"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Screen Screen `yaml:"screen"`
	Player Player `yaml:"player"`
	Mob    Mob    `yaml:"mob"`
	Timers Timers `yaml:"timers"`
	Log    Log    `yaml:"log"`
	// Seed drives the spawn RNG; 0 picks a time-based seed.
	Seed uint64 `yaml:"seed"`
}

func Default() Config {
	s := game.DefaultSettings()
	return Config{
		Screen: Screen{Width: s.ScreenSize.X, Height: s.ScreenSize.Y},
		Player: Player{
			Speed:  s.PlayerSpeed,
			StartX: s.StartPosition.X,
			StartY: s.StartPosition.Y,
			Radius: s.PlayerRadius,
		},
		Mob: Mob{
			MinSpeed:  s.MobMinSpeed,
			MaxSpeed:  s.MobMaxSpeed,
			Radius:    s.MobRadius,
			MaxActive: s.MaxActiveMobs,
		},
		Timers: Timers{
			StartDelay:    s.StartDelay,
			ScoreInterval: s.ScoreInterval,
			MobInterval:   s.MobInterval,
			Message:       s.MessageDuration,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads path on top of Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Decode(bytes.NewReader(data)); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode merges the YAML document in r onto c and validates the result.
// Unknown keys are rejected.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	return c.Validate()
}

func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)
	check(c.Player.Speed > 0, "player.speed must be positive, got %v", c.Player.Speed)
	check(c.Player.Radius > 0, "player.radius must be positive, got %v", c.Player.Radius)
	check(c.Player.StartX >= 0 && c.Player.StartX <= c.Screen.Width &&
		c.Player.StartY >= 0 && c.Player.StartY <= c.Screen.Height,
		"player start (%v,%v) outside the screen", c.Player.StartX, c.Player.StartY)
	check(c.Mob.MinSpeed > 0, "mob.min_speed must be positive, got %v", c.Mob.MinSpeed)
	check(c.Mob.MaxSpeed >= c.Mob.MinSpeed, "mob.max_speed %v below min_speed %v", c.Mob.MaxSpeed, c.Mob.MinSpeed)
	check(c.Mob.Radius > 0, "mob.radius must be positive, got %v", c.Mob.Radius)
	check(c.Mob.MaxActive != 0, "mob.max_active must be non-zero; use a negative value for no cap")
	check(c.Timers.StartDelay > 0, "timers.start_delay must be positive, got %v", c.Timers.StartDelay)
	check(c.Timers.ScoreInterval > 0, "timers.score_interval must be positive, got %v", c.Timers.ScoreInterval)
	check(c.Timers.MobInterval > 0, "timers.mob_interval must be positive, got %v", c.Timers.MobInterval)
	check(c.Timers.Message > 0, "timers.message must be positive, got %v", c.Timers.Message)

	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: log.format %q is not text or json", ErrInvalid, c.Log.Format))
	}

	return errors.Join(errs...)
}

// Settings converts c into the game core's tunables.
func (c Config) Settings() game.Settings {
	return game.Settings{
		ScreenSize:      game.Vector2{X: c.Screen.Width, Y: c.Screen.Height},
		StartPosition:   game.Vector2{X: c.Player.StartX, Y: c.Player.StartY},
		PlayerSpeed:     c.Player.Speed,
		PlayerRadius:    c.Player.Radius,
		MobMinSpeed:     c.Mob.MinSpeed,
		MobMaxSpeed:     c.Mob.MaxSpeed,
		MobRadius:       c.Mob.Radius,
		MaxActiveMobs:   c.Mob.MaxActive,
		StartDelay:      c.Timers.StartDelay,
		ScoreInterval:   c.Timers.ScoreInterval,
		MobInterval:     c.Timers.MobInterval,
		MessageDuration: c.Timers.Message,
	}
}

// Marshal renders c as YAML, durations as strings.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// NewLogger builds the slog logger described by c.Log, writing to w.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, s)
	}
	return level, nil
}
