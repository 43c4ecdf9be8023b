// Package codec centralizes block compression for stored sites.
//
// Every site of a matrix is framed as a block carrying its own sizes, so a
// codec only has to turn one byte slice into another. Codec selection is a
// format boundary: blocks written with one codec must be read with the same
// codec, which is why matrices remember the codec they were built with.
package codec

import (
	"errors"
	"fmt"
)

// ErrCorrupt is returned when a block cannot be decoded.
var ErrCorrupt = errors.New("corrupt block")

// Codec compresses and decompresses raw blocks.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Compress appends the compressed form of src to dst. It may return
	// dst unchanged to signal that src is incompressible.
	Compress(dst, src []byte) ([]byte, error)
	// Decompress fills dst, whose length is the uncompressed size.
	Decompress(dst, src []byte) error
	// Name returns the stable name of the codec.
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = LZ4{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "none":
		return None{}, true
	case "lz4":
		return LZ4{}, true
	case "zstd":
		return Zstd{}, true
	default:
		return nil, false
	}
}

// MustByName is ByName for names known at compile time.
func MustByName(name string) Codec {
	c, ok := ByName(name)
	if !ok {
		panic(fmt.Errorf("unknown codec %q", name))
	}
	return c
}

// None stores blocks uncompressed.
type None struct{}

// Compress reports every input as incompressible.
func (None) Compress(dst, _ []byte) ([]byte, error) { return dst, nil }

// Decompress copies src into dst.
func (None) Decompress(dst, src []byte) error {
	if len(src) != len(dst) {
		return fmt.Errorf("%w: size mismatch", ErrCorrupt)
	}
	copy(dst, src)
	return nil
}

// Name returns "none".
func (None) Name() string { return "none" }
