package ecs_test

import (
	"fmt"
	"time"

	"github.com/plus3/creeps/ecs"
)

type CleanupSystem struct {
	Entities *ecs.Table[Health]
}

func (s *CleanupSystem) Execute(frame *ecs.UpdateFrame) {
	deadCount := 0
	for id, h := range s.Entities.Iter() {
		if h.Current <= 0 {
			frame.Commands.Delete(s.Entities, id)
			deadCount++
		}
	}
	if deadCount > 0 {
		fmt.Printf("Queued %d dead entities for deletion\n", deadCount)
	}
}

// ExampleCommands demonstrates using command buffers to defer entity mutations.
// Deleting entities while iterating their table could skip or revisit slots, so
// the Scheduler flushes queued commands once every system has run.
func ExampleCommands() {
	table := ecs.NewTable[Health](8)
	table.Insert(Health{Current: 0, Max: 100})
	table.Insert(Health{Current: 50, Max: 100})
	table.Insert(Health{Current: 100, Max: 100})

	scheduler := ecs.NewScheduler()
	scheduler.Register(&CleanupSystem{Entities: table})

	scheduler.Once(1.0)

	fmt.Printf("Remaining entities: %d\n", table.Len())

	// Output:
	// Queued 1 dead entities for deletion
	// Remaining entities: 2
}

// ExampleTimerSystem shows a periodic timer driving a spawn from frame time.
func ExampleTimerSystem() {
	table := ecs.NewTable[Position](8)
	scheduler := ecs.NewScheduler()

	spawn := ecs.NewTimer("spawn", 500*time.Millisecond, false, func() {
		scheduler.Commands().Spawn(func() { table.Insert(Position{}) })
	})
	spawn.Start()
	scheduler.Register(ecs.NewTimerSystem(spawn))

	for range 4 {
		scheduler.Once(0.25)
	}
	fmt.Printf("Spawned: %d\n", table.Len())

	spawn.Stop()
	scheduler.Once(5)
	fmt.Printf("After stop: %d\n", table.Len())

	// Output:
	// Spawned: 2
	// After stop: 2
}
