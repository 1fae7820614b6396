package game

import "log/slog"

// MobSpawner launches one mob per spawn tick. The timer driving it belongs to
// the coordinator; the spawner only decides what a tick produces.
type MobSpawner struct {
	path      *Path
	rng       RandomSource
	lifecycle *MobLifecycle
	minSpeed  float64
	maxSpeed  float64
	// maxActive caps live plus queued mobs; values <= 0 disable the cap.
	maxActive int
	log       *slog.Logger

	spawned int64
	skipped int64
}

// NewMobSpawner creates a spawner that launches mobs along path through lifecycle.
func NewMobSpawner(path *Path, rng RandomSource, lifecycle *MobLifecycle, minSpeed, maxSpeed float64, maxActive int, log *slog.Logger) *MobSpawner {
	return &MobSpawner{
		path:      path,
		rng:       rng,
		lifecycle: lifecycle,
		minSpeed:  minSpeed,
		maxSpeed:  maxSpeed,
		maxActive: maxActive,
		log:       log,
	}
}

// Tick creates a mob on a random trajectory unless the active cap is reached.
// It reports whether a mob was queued.
func (s *MobSpawner) Tick() bool {
	if s.maxActive > 0 {
		active := s.lifecycle.Active() + s.lifecycle.Pending()
		if active >= s.maxActive {
			s.skipped++
			s.log.Debug("spawn skipped at mob cap", "active", active, "max", s.maxActive)
			return false
		}
	}

	s.lifecycle.Create(GenerateTrajectory(s.path, s.rng, s.minSpeed, s.maxSpeed))
	s.spawned++
	return true
}

// Spawned returns how many mobs this spawner has queued.
func (s *MobSpawner) Spawned() int64 {
	return s.spawned
}

// Skipped returns how many ticks were dropped at the cap.
func (s *MobSpawner) Skipped() int64 {
	return s.skipped
}
