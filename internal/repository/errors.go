package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the store
// (or belongs to a different owner).
var ErrNotFound = errors.New("not found")
