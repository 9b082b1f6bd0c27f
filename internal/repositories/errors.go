package repositories

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique
	// constraint, e.g. registering an email twice.
	ErrDuplicate = errors.New("duplicate record")
)
