package ecs

import "sync/atomic"

// EntityId identifies an entity for the lifetime of the process. Zero is never
// handed out and means "no entity".
type EntityId uint64

var lastEntityId atomic.Uint64

// NewEntityId returns a fresh, never reused EntityId.
func NewEntityId() EntityId {
	return EntityId(lastEntityId.Add(1))
}

// Valid reports whether the id could name an entity.
func (e EntityId) Valid() bool {
	return e != 0
}

// Deleter is anything that can destroy an entity by id.
type Deleter interface {
	Delete(id EntityId) bool
}
