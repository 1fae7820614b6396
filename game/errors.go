package game

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCollaborator means a required dependency was not supplied.
	ErrMissingCollaborator = errors.New("missing collaborator")
	// ErrTypeMismatch means a dependency was supplied but is not of the expected kind.
	ErrTypeMismatch = errors.New("collaborator type mismatch")
	// ErrInvalidPath means a spawn path cannot be sampled.
	ErrInvalidPath = errors.New("invalid spawn path")
)

// CollaboratorError identifies the dependency that failed to resolve.
type CollaboratorError struct {
	Name string
	Want string
	Got  string
	Err  error
}

func (e *CollaboratorError) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("%s: %q: want %s, got %s", e.Err, e.Name, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: %q (want %s)", e.Err, e.Name, e.Want)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

func missing(name, want string) error {
	return &CollaboratorError{Name: name, Want: want, Err: ErrMissingCollaborator}
}
