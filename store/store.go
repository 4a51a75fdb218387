// Package store holds the repository interfaces for persistent data and their
// bun/PostgreSQL implementations. Services depend on the interfaces only, so
// the business logic can be tested against in-memory fakes.
package store

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("store: duplicate")
)
