package pbwt

import (
	"fmt"

	"github.com/hupe1980/pbwt/codec"
	"github.com/hupe1980/pbwt/internal/pack"
)

// Cursor walks a Matrix one site at a time.
//
// At site k, Perm holds the column order induced by sites 0..k-1 and
// Alleles holds the alleles of site k in that order, so Alleles()[r] belongs
// to column Perm()[r].
type Cursor struct {
	p   *Matrix
	k   int
	a   []int  // rank -> column
	b   []int  // scratch for the next permutation
	y   []byte // alleles of site k by rank
	off int    // byte offset of site k in p.data
	buf []byte // decompression scratch
	raw []byte // packing scratch
}

// Cursor returns a cursor positioned at site 0.
func (p *Matrix) Cursor() (*Cursor, error) {
	if p == nil || p.consumed {
		return nil, ErrConsumed
	}

	u := newCursor(p)
	if p.n > 0 {
		if err := u.read(); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func newCursor(p *Matrix) *Cursor {
	u := &Cursor{
		p: p,
		a: make([]int, p.m),
		b: make([]int, p.m),
		y: make([]byte, p.m),
	}
	if p.start != nil {
		copy(u.a, p.start)
	} else {
		for i := range u.a {
			u.a[i] = i
		}
	}
	return u
}

// Site returns the index of the current site.
func (u *Cursor) Site() int { return u.k }

// Perm returns the current rank to column permutation. Do not modify it.
func (u *Cursor) Perm() []int { return u.a }

// Alleles returns the current site's alleles in rank order. Do not modify it.
func (u *Cursor) Alleles() []byte { return u.y }

// Column writes the current site's alleles in column order into x,
// which must have length M.
func (u *Cursor) Column(x []byte) {
	for r, c := range u.a {
		x[c] = u.y[r]
	}
}

// Next advances to the following site. Advancing from the last site leaves
// the cursor at N with the terminal permutation; advancing beyond that fails.
func (u *Cursor) Next() error {
	if u.k >= u.p.n {
		return &RangeError{What: "site", Index: u.k + 1, Limit: u.p.n + 1}
	}

	u.sort()
	u.k++
	if u.k < u.p.n {
		return u.read()
	}
	clear(u.y)
	return nil
}

// write encodes the rank-order alleles in y as the next site of the matrix
// and advances the permutation.
func (u *Cursor) write() error {
	if u.k != u.p.n {
		return fmt.Errorf("%w: write at site %d of %d", ErrInvalidArgument, u.k, u.p.n)
	}

	var err error
	u.raw, err = pack.Append(u.raw[:0], u.y)
	if err != nil {
		return fmt.Errorf("%w: site %d: %w", ErrInvalidArgument, u.k, err)
	}
	u.p.data, err = codec.AppendBlock(u.p.data, u.p.codec, u.raw)
	if err != nil {
		return fmt.Errorf("site %d: %w", u.k, err)
	}
	u.p.n++

	u.sort()
	u.k++
	u.off = len(u.p.data)
	return nil
}

// finish records the cursor's permutation as the matrix's terminal order.
func (u *Cursor) finish() {
	u.p.end = append(u.p.end[:0], u.a...)
}

func (u *Cursor) read() error {
	raw, n, err := codec.ReadBlock(u.p.codec, u.p.data[u.off:], &u.buf)
	if err != nil {
		return fmt.Errorf("%w: site %d: %w", ErrCorrupt, u.k, err)
	}
	if err := pack.Unpack(u.y, raw); err != nil {
		return fmt.Errorf("%w: site %d: %w", ErrCorrupt, u.k, err)
	}
	u.off += n
	return nil
}

// sort stably partitions the columns by their allele at the current site,
// zeros first.
func (u *Cursor) sort() {
	z := 0
	for r, c := range u.a {
		if u.y[r] == 0 {
			u.b[z] = c
			z++
		}
	}
	for r, c := range u.a {
		if u.y[r] != 0 {
			u.b[z] = c
			z++
		}
	}
	u.a, u.b = u.b, u.a
}
