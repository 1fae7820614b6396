package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const (
	tableBlockSize = 64
)

// Table stores every entity of one kind in fixed-size blocks.
// Slots freed by Delete are reused by later inserts, so pointers returned by Get
// are only valid until the next structural change. Structural changes made while
// systems are running should go through Commands.
type Table[T any] struct {
	blocks    [][tableBlockSize]T
	owners    [][tableBlockSize]EntityId
	freeSlots []int
	nextIndex int
	slots     *intmap.Map[EntityId, int]
}

// NewTable creates an empty table sized for roughly capacity entities.
func NewTable[T any](capacity int) *Table[T] {
	return &Table[T]{
		slots: intmap.New[EntityId, int](capacity),
	}
}

// Insert stores value under a fresh EntityId.
func (t *Table[T]) Insert(value T) EntityId {
	var index int
	if len(t.freeSlots) > 0 {
		index = t.freeSlots[len(t.freeSlots)-1]
		t.freeSlots = t.freeSlots[:len(t.freeSlots)-1]
	} else {
		index = t.nextIndex
		t.nextIndex++

		if index/tableBlockSize >= len(t.blocks) {
			t.blocks = append(t.blocks, [tableBlockSize]T{})
			t.owners = append(t.owners, [tableBlockSize]EntityId{})
		}
	}

	id := NewEntityId()
	blockIdx := index / tableBlockSize
	slotIdx := index % tableBlockSize

	t.blocks[blockIdx][slotIdx] = value
	t.owners[blockIdx][slotIdx] = id
	t.slots.Put(id, index)
	return id
}

// Get returns a pointer to the entity's value, or nil if it does not exist.
func (t *Table[T]) Get(id EntityId) *T {
	index, ok := t.slots.Get(id)
	if !ok {
		return nil
	}
	return &t.blocks[index/tableBlockSize][index%tableBlockSize]
}

// Has reports whether the entity exists in this table.
func (t *Table[T]) Has(id EntityId) bool {
	_, ok := t.slots.Get(id)
	return ok
}

// Delete removes the entity and reports whether it existed.
func (t *Table[T]) Delete(id EntityId) bool {
	index, ok := t.slots.Get(id)
	if !ok {
		return false
	}

	blockIdx := index / tableBlockSize
	slotIdx := index % tableBlockSize

	var zero T
	t.blocks[blockIdx][slotIdx] = zero
	t.owners[blockIdx][slotIdx] = 0
	t.freeSlots = append(t.freeSlots, index)
	t.slots.Del(id)
	return true
}

// Len returns the number of live entities.
func (t *Table[T]) Len() int {
	return t.slots.Len()
}

// Clear removes every entity and releases the blocks.
func (t *Table[T]) Clear() {
	t.blocks = nil
	t.owners = nil
	t.freeSlots = nil
	t.nextIndex = 0
	t.slots.Clear()
}

// Iter yields every live entity in slot order.
func (t *Table[T]) Iter() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for i := 0; i < t.nextIndex; i++ {
			blockIdx := i / tableBlockSize
			slotIdx := i % tableBlockSize

			if blockIdx >= len(t.owners) {
				return
			}

			id := t.owners[blockIdx][slotIdx]
			if id == 0 {
				continue
			}
			if !yield(id, &t.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}

// Ids returns a snapshot of the live entity ids in slot order.
func (t *Table[T]) Ids() []EntityId {
	ids := make([]EntityId, 0, t.Len())
	for id := range t.Iter() {
		ids = append(ids, id)
	}
	return ids
}
