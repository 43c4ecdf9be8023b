package pbwt

import (
	"fmt"
)

// Builder encodes a new Matrix site by site.
//
// Example:
//
//	b := pbwt.NewBuilder(4, pbwt.WithCodec(codec.Zstd{}))
//	_ = b.Add([]byte{0, 1, 1, 0}, pbwt.Site{Pos: 16050075})
//	_ = b.Add([]byte{1, 1, 0, 0}, pbwt.Site{Pos: 16050115})
//	p, err := b.Build()
type Builder struct {
	p     *Matrix
	u     *Cursor
	sites []Site
	built bool
}

// NewBuilder starts a matrix of m columns.
func NewBuilder(m int, optFns ...Option) *Builder {
	o := applyOptions(optFns)
	p := newMatrix(max(m, 0), o.codec)
	return &Builder{
		p: p,
		u: newCursor(p),
	}
}

// Add appends a site. x holds one allele (0 or 1) per column, in column order.
func (b *Builder) Add(x []byte, site Site) error {
	if b.built {
		return fmt.Errorf("%w: builder already built", ErrInvalidArgument)
	}
	if len(x) != b.p.m {
		return fmt.Errorf("%w: site has %d alleles, want %d", ErrInvalidArgument, len(x), b.p.m)
	}

	for r, c := range b.u.a {
		b.u.y[r] = x[c]
	}
	if err := b.u.write(); err != nil {
		return err
	}
	b.sites = append(b.sites, site)
	return nil
}

// Build finalizes the matrix. The builder cannot be used afterwards.
func (b *Builder) Build() (*Matrix, error) {
	if b.built {
		return nil, fmt.Errorf("%w: builder already built", ErrInvalidArgument)
	}
	if b.p.m <= 0 {
		return nil, fmt.Errorf("%w: matrix needs at least one column", ErrInvalidArgument)
	}
	b.built = true

	b.u.finish()
	b.p.sites = b.sites
	return b.p, nil
}
