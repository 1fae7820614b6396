// Package physics supplies the host-side collaborators the game core leaves
// out: mob integration, player contact and off-screen detection.
package physics

import (
	"github.com/plus3/creeps/ecs"
	"github.com/plus3/creeps/game"
)

// HitNotifier receives player overlap events.
type HitNotifier interface {
	PlayerAreaEntered()
}

// VisibilityNotifier receives mobs that left the viewport.
type VisibilityNotifier interface {
	LeftVisibleArea(id ecs.EntityId)
}

// MotionSystem moves every mob along its linear velocity.
type MotionSystem struct {
	Mobs *ecs.Table[game.Mob]
}

func (s *MotionSystem) Execute(frame *ecs.UpdateFrame) {
	for _, mob := range s.Mobs.Iter() {
		mob.Position = mob.Position.Add(mob.LinearVelocity.Scale(frame.DeltaTime))
	}
}
