package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the scheduling core. Services wrap these with
// fmt.Errorf("...: %w", err) and the delivery layer maps them to HTTP codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrDuplicateID  = errors.New("duplicate id")
	ErrConflict     = errors.New("artist already scheduled during this time")
	ErrLocked       = errors.New("lineup is locked")
	ErrBusy         = errors.New("another scheduling operation is in flight")
	ErrInvalidInput = errors.New("invalid input")
)

// MalformedTimeError reports a time-of-day string that does not parse as
// "HH:MM". It blocks the operation that received it; callers must not fall
// back to a default time.
type MalformedTimeError struct {
	Input string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time of day %q: want HH:MM", e.Input)
}
