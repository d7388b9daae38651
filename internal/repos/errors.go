package repos

import "errors"

// ErrNotFound is returned when a requested record does not exist. Services
// and handlers match on it with errors.Is.
var ErrNotFound = errors.New("record not found")
