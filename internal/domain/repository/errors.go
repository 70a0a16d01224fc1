package repository

import "errors"

// ErrNotFound is returned when a record does not exist. Implementations map
// their driver's no-rows condition to it so callers can use errors.Is.
var ErrNotFound = errors.New("not found")
