// Package repository holds the in-memory registries that own all marketplace
// state. Each registry guards its maps with its own RWMutex and iterates in
// insertion order so listings and search results are deterministic. Snapshots
// are copied under the same lock used by mutation.
package repository

import "errors"

var (
	// ErrNotFound is returned when a registry has no record for the given
	// id. Services translate it into a typed domain error.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when an insert would violate a uniqueness
	// invariant, such as a case-equal subject name.
	ErrConflict = errors.New("record already exists")
)
