package services

import "errors"

// ErrLimitReached is returned when a nominator has already created as many
// households as their account allows.
var ErrLimitReached = errors.New("nomination limit reached")

// ErrUnauthorized is returned when no verified caller identity is present or
// the caller may not act on the requested record.
var ErrUnauthorized = errors.New("unauthorized")
