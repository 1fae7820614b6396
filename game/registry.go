package game

import (
	"fmt"
	"reflect"
)

// Registry holds the collaborators a host provides, by name. It is read once
// while a session is built; nothing in the core looks names up after that.
type Registry map[string]any

const (
	CollaboratorInput        = "input"
	CollaboratorPresentation = "presentation"
)

// Resolve fetches name from r as a T.
func Resolve[T any](r Registry, name string) (T, error) {
	var zero T
	want := reflect.TypeFor[T]().String()

	value, ok := r[name]
	if !ok || value == nil {
		return zero, missing(name, want)
	}

	typed, ok := value.(T)
	if !ok {
		return zero, &CollaboratorError{
			Name: name,
			Want: want,
			Got:  fmt.Sprintf("%T", value),
			Err:  ErrTypeMismatch,
		}
	}
	return typed, nil
}

// ResolveOptional is Resolve for collaborators that may be absent: a missing
// entry returns fallback, a wrongly typed one is still an error.
func ResolveOptional[T any](r Registry, name string, fallback T) (T, error) {
	if value, ok := r[name]; !ok || value == nil {
		return fallback, nil
	}
	return Resolve[T](r, name)
}
