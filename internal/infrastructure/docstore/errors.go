package docstore

import "errors"

var (
	// ErrNotFound means the id resolved to no document in the collection.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateKey means a unique constraint was violated.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrConditionFailed means a conditional update matched the document
	// but not its guard (e.g. a stock decrement below zero).
	ErrConditionFailed = errors.New("condition failed")
)
