package ecs

// Commands provides a buffer for deferred operations that are executed at the end of a frame.
// This prevents structural changes, and re-entrant state transitions, while systems
// or collision callbacks are still iterating.
type Commands struct {
	deletes []deleteCommand
	spawns  []func()
	defers  []func()

	// scratch buffers swapped in during Flush
	flushDeletes []deleteCommand
	flushSpawns  []func()
	flushDefers  []func()
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

type deleteCommand struct {
	from   Deleter
	entity EntityId
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn operation. fn performs the insertion.
func (c *Commands) Spawn(fn func()) {
	c.spawns = append(c.spawns, fn)
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(from Deleter, entity EntityId) {
	c.deletes = append(c.deletes, deleteCommand{from: from, entity: entity})
}

// PendingSpawns returns the number of spawns waiting for the next flush.
func (c *Commands) PendingSpawns() int {
	return len(c.spawns)
}

// Pending returns the total number of queued operations.
func (c *Commands) Pending() int {
	return len(c.deletes) + len(c.spawns) + len(c.defers)
}

// Flush runs deletes, then spawns, then deferred functions, resetting the buffer state.
// Anything queued while flushing is kept for the next call.
func (c *Commands) Flush() {
	c.flushDeletes, c.deletes = c.deletes, c.flushDeletes[:0]
	c.flushSpawns, c.spawns = c.spawns, c.flushSpawns[:0]
	c.flushDefers, c.defers = c.defers, c.flushDefers[:0]

	for _, cmd := range c.flushDeletes {
		cmd.from.Delete(cmd.entity)
	}

	for _, spawn := range c.flushSpawns {
		spawn()
	}

	for _, fn := range c.flushDefers {
		fn()
	}

	clear(c.flushDeletes)
	clear(c.flushSpawns)
	clear(c.flushDefers)
	c.flushDeletes = c.flushDeletes[:0]
	c.flushSpawns = c.flushSpawns[:0]
	c.flushDefers = c.flushDefers[:0]
}
