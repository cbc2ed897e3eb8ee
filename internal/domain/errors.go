package domain

import "errors"

// ErrNotFound is returned when an id has no matching record. Callers match it
// with errors.Is; repositories wrap it with call-site context.
var ErrNotFound = errors.New("not found")
