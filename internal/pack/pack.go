package pack

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrInvalidAllele is returned by Append for values other than 0 and 1.
	ErrInvalidAllele = errors.New("allele must be 0 or 1")

	// ErrCorrupt is returned by Unpack when the packed data does not describe
	// a vector of the requested length.
	ErrCorrupt = errors.New("corrupt packed site")
)

// Append packs y and appends the result to dst.
func Append(dst []byte, y []byte) ([]byte, error) {
	if len(y) == 0 {
		return dst, nil
	}

	cur := y[0]
	if cur > 1 {
		return dst, fmt.Errorf("%w: got %d at rank 0", ErrInvalidAllele, cur)
	}
	dst = append(dst, cur)

	run := uint64(0)
	for r, v := range y {
		if v == cur {
			run++
			continue
		}
		if v > 1 {
			return dst, fmt.Errorf("%w: got %d at rank %d", ErrInvalidAllele, v, r)
		}
		dst = binary.AppendUvarint(dst, run)
		cur, run = v, 1
	}
	return binary.AppendUvarint(dst, run), nil
}

// Unpack decodes src into y, which must already have the vector length.
func Unpack(y []byte, src []byte) error {
	if len(y) == 0 {
		if len(src) != 0 {
			return fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(src))
		}
		return nil
	}
	if len(src) == 0 {
		return fmt.Errorf("%w: empty", ErrCorrupt)
	}

	cur := src[0]
	if cur > 1 {
		return fmt.Errorf("%w: first allele %d", ErrCorrupt, cur)
	}
	src = src[1:]

	pos := 0
	for len(src) > 0 {
		run, n := binary.Uvarint(src)
		if n <= 0 {
			return fmt.Errorf("%w: bad run length at rank %d", ErrCorrupt, pos)
		}
		src = src[n:]
		if run == 0 || run > uint64(len(y)-pos) {
			return fmt.Errorf("%w: run of %d at rank %d exceeds length %d", ErrCorrupt, run, pos, len(y))
		}
		end := pos + int(run)
		for ; pos < end; pos++ {
			y[pos] = cur
		}
		cur ^= 1
	}

	if pos != len(y) {
		return fmt.Errorf("%w: decoded %d of %d alleles", ErrCorrupt, pos, len(y))
	}
	return nil
}
