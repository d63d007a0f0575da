package models

import "errors"

// Domain-specific errors for board lookups made outside the store
// (the store itself treats unknown ids as no-ops).
var (
	// ErrColumnNotFound indicates that no column has the requested id
	ErrColumnNotFound = errors.New("column not found")

	// ErrTaskNotFound indicates that no task has the requested id
	ErrTaskNotFound = errors.New("task not found")
)
