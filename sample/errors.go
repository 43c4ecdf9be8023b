package sample

import (
	"errors"
	"fmt"

	"github.com/hupe1980/pbwt/internal/dict"
)

var (
	// ErrOutOfRange is returned when an index lies outside the valid bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrUnknownID is returned when a name is requested for an id that was never registered.
	ErrUnknownID = dict.ErrUnknownID
)

// RangeError describes an index that fell outside [0, Limit).
//
// It unwraps to ErrOutOfRange.
type RangeError struct {
	What  string
	Index int
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.What, e.Index, e.Limit)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
