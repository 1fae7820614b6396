package ecs_test

import (
	"testing"

	"github.com/plus3/creeps/ecs"
	"github.com/stretchr/testify/assert"
)

type testSpawnSystem struct {
	table    *ecs.Table[Position]
	executed bool
}

func (s *testSpawnSystem) Execute(frame *ecs.UpdateFrame) {
	s.executed = true
	frame.Commands.Spawn(func() { s.table.Insert(Position{X: 1, Y: 2}) })
	frame.Commands.Spawn(func() { s.table.Insert(Position{X: 3, Y: 4}) })
}

type testDeleteSystem struct {
	table          *ecs.Table[Position]
	entityToDelete ecs.EntityId
}

func (s *testDeleteSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Delete(s.table, s.entityToDelete)
}

func TestCommands(t *testing.T) {
	t.Run("spawn entities", func(t *testing.T) {
		table := ecs.NewTable[Position](8)
		scheduler := ecs.NewScheduler()

		system := &testSpawnSystem{table: table}
		scheduler.Register(system)

		assert.Equal(t, 0, table.Len(), "entities spawned before frame execution")

		scheduler.Once(1.0)

		assert.True(t, system.executed)
		assert.Equal(t, 2, table.Len())
	})

	t.Run("delete entity", func(t *testing.T) {
		table := ecs.NewTable[Position](8)
		id := table.Insert(Position{})
		scheduler := ecs.NewScheduler()
		scheduler.Register(&testDeleteSystem{table: table, entityToDelete: id})

		scheduler.Once(1.0)

		assert.False(t, table.Has(id))
	})

	t.Run("flush order is deletes spawns defers", func(t *testing.T) {
		table := ecs.NewTable[Position](8)
		id := table.Insert(Position{})
		commands := ecs.NewCommands()

		var order []string
		commands.Defer(func() {
			order = append(order, "defer")
			assert.False(t, table.Has(id))
			assert.Equal(t, 1, table.Len())
		})
		commands.Spawn(func() {
			order = append(order, "spawn")
			table.Insert(Position{X: 7})
		})
		commands.Delete(table, id)

		assert.Equal(t, 3, commands.Pending())
		assert.Equal(t, 1, commands.PendingSpawns())

		commands.Flush()

		assert.Equal(t, []string{"spawn", "defer"}, order)
		assert.Equal(t, 0, commands.Pending())
	})

	t.Run("work queued during flush waits for the next flush", func(t *testing.T) {
		commands := ecs.NewCommands()
		ran := 0
		commands.Defer(func() {
			commands.Defer(func() { ran++ })
		})

		commands.Flush()
		assert.Equal(t, 0, ran)
		assert.Equal(t, 1, commands.Pending())

		commands.Flush()
		assert.Equal(t, 1, ran)
		assert.Equal(t, 0, commands.Pending())
	})

	t.Run("deleting a missing entity is harmless", func(t *testing.T) {
		table := ecs.NewTable[Position](8)
		commands := ecs.NewCommands()
		commands.Delete(table, ecs.EntityId(424242))
		commands.Flush()
		assert.Equal(t, 0, table.Len())
	})
}
