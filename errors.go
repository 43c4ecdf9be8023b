package pbwt

import (
	"errors"

	"github.com/hupe1980/pbwt/sample"
)

var (
	// ErrInvalidArgument is returned for malformed bounds, an empty or invalid
	// source matrix, or a missing column to sample mapping.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when a column, site, or record index is out of bounds.
	ErrOutOfRange = sample.ErrOutOfRange

	// ErrUnknownID is returned when a name lookup finds nothing.
	ErrUnknownID = sample.ErrUnknownID

	// ErrConsumed is returned when a matrix is used after SubSample took it over.
	ErrConsumed = errors.New("matrix consumed")

	// ErrCorrupt is returned when stored site data cannot be decoded.
	ErrCorrupt = errors.New("data corruption detected")
)

// RangeError describes an index outside [0, Limit). It unwraps to ErrOutOfRange.
type RangeError = sample.RangeError
