package db

import "errors"

// Domain-level database error sentinels.
var (
	// ErrEmptyKey is returned when a KV operation is given an empty key.
	ErrEmptyKey = errors.New("key must not be empty")
)
