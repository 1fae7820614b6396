package game

import (
	"log/slog"

	"github.com/plus3/creeps/ecs"
)

// Variant picks the mob's look. It has no gameplay effect.
type Variant int

const (
	VariantWalk Variant = iota
	VariantSwim
	VariantFly

	variantCount = 3
)

func (v Variant) String() string {
	switch v {
	case VariantWalk:
		return "walk"
	case VariantSwim:
		return "swim"
	case VariantFly:
		return "fly"
	default:
		return "unknown"
	}
}

// Mob is a spawned obstacle. Mobs are owned by the world table, not by each other.
type Mob struct {
	Position       Vector2
	Rotation       float64
	LinearVelocity Vector2
	Variant        Variant
	Radius         float64
}

// MobLifecycle creates mobs and destroys them when they leave the screen.
type MobLifecycle struct {
	mobs     *ecs.Table[Mob]
	commands *ecs.Commands
	rng      RandomSource
	sink     PresentationSink
	radius   float64
	log      *slog.Logger

	// generation changes on Clear so spawns queued before a reset are dropped
	generation uint64
	// pending counts queued spawns of the current generation
	pending int
}

// NewMobLifecycle creates a lifecycle that stores mobs in mobs and queues work on commands.
func NewMobLifecycle(mobs *ecs.Table[Mob], commands *ecs.Commands, rng RandomSource, sink PresentationSink, radius float64, log *slog.Logger) *MobLifecycle {
	return &MobLifecycle{
		mobs:     mobs,
		commands: commands,
		rng:      rng,
		sink:     sink,
		radius:   radius,
		log:      log,
	}
}

// Create queues a new mob launched along t. The variant is chosen now; the
// mob joins the world at the next flush.
func (l *MobLifecycle) Create(t Trajectory) {
	mob := Mob{
		Position:       t.Position,
		Rotation:       t.Rotation,
		LinearVelocity: t.Velocity,
		Variant:        Variant(l.rng.IntN(variantCount)),
		Radius:         l.radius,
	}

	generation := l.generation
	l.pending++
	l.commands.Spawn(func() {
		if generation != l.generation {
			return
		}
		l.pending--
		id := l.mobs.Insert(mob)
		l.sink.MobVariant(id, mob.Variant)
	})
}

// LeftVisibleArea handles the visibility notifier: the mob is destroyed at the next flush.
func (l *MobLifecycle) LeftVisibleArea(id ecs.EntityId) {
	if !l.mobs.Has(id) {
		return
	}
	l.log.Debug("mob left visible area", "mob", uint64(id))
	l.commands.Delete(l.mobs, id)
}

// Clear destroys every mob immediately, including spawns still queued.
func (l *MobLifecycle) Clear() {
	l.generation++
	l.pending = 0
	l.mobs.Clear()
}

// Pending returns the number of queued spawns that will still join the world.
func (l *MobLifecycle) Pending() int {
	return l.pending
}

// Active returns the number of live mobs.
func (l *MobLifecycle) Active() int {
	return l.mobs.Len()
}
