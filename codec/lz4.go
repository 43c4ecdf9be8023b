package codec

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// LZ4 is LZ4 block compression. Fast, and the default for hot data.
type LZ4 struct{}

// Compress appends the LZ4 block of src to dst.
func (LZ4) Compress(dst, src []byte) ([]byte, error) {
	start := len(dst)
	dst = grow(dst, lz4.CompressBlockBound(len(src)))

	n, err := lz4.CompressBlock(src, dst[start:], nil)
	if err != nil {
		return dst[:start], err
	}
	// n == 0: incompressible
	return dst[:start+n], nil
}

// Decompress fills dst from an LZ4 block.
func (LZ4) Decompress(dst, src []byte) error {
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if n != len(dst) {
		return fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
	}
	return nil
}

// Name returns "lz4".
func (LZ4) Name() string { return "lz4" }

func grow(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b[:len(b)+n]
	}
	out := make([]byte, len(b)+n)
	copy(out, b)
	return out
}
