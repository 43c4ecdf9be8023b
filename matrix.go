package pbwt

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/pbwt/codec"
	"github.com/hupe1980/pbwt/sample"
)

// SexChromosome selects the ploidy rule of a matrix.
type SexChromosome uint8

const (
	// Autosome: every sample is diploid.
	Autosome SexChromosome = iota
	// ChromX: males are haploid, everyone else diploid.
	ChromX
	// ChromY: males are haploid, everyone else absent.
	ChromY
)

func (s SexChromosome) String() string {
	switch s {
	case ChromX:
		return "X"
	case ChromY:
		return "Y"
	default:
		return "autosome"
	}
}

// Site is the metadata of one variant site.
type Site struct {
	Pos int
	ID  string
	Ref string
	Alt string
}

// Matrix is a positional-BWT encoded haplotype matrix of M columns and N sites.
//
// Sites are stored in sort order, one codec block per site. A Matrix is
// produced by a Builder or by SubSample and is read through a Cursor.
type Matrix struct {
	m, n  int
	codec codec.Codec
	data  []byte

	start []int // permutation before site 0, nil for identity
	end   []int // permutation after the last site

	samples []int // column -> sample id, nil if unknown
	chrom   string
	sites   []Site
	sex     SexChromosome
	missing []*roaring.Bitmap // per site, nil if no missing data

	consumed bool
}

func newMatrix(m int, c codec.Codec) *Matrix {
	if c == nil {
		c = codec.Default
	}
	return &Matrix{m: m, codec: c}
}

// M returns the number of columns.
func (p *Matrix) M() int { return p.m }

// N returns the number of stored sites.
func (p *Matrix) N() int { return p.n }

// Codec returns the codec the sites were written with.
func (p *Matrix) Codec() codec.Codec { return p.codec }

// Valid reports whether p holds encoded sites and has not been consumed.
func (p *Matrix) Valid() bool {
	return p != nil && !p.consumed && p.m > 0 && p.n > 0
}

// Chrom returns the chromosome label.
func (p *Matrix) Chrom() string { return p.chrom }

// SetChrom sets the chromosome label.
func (p *Matrix) SetChrom(chrom string) { p.chrom = chrom }

// SexChromosome returns the ploidy rule.
func (p *Matrix) SexChromosome() SexChromosome { return p.sex }

// SetSexChromosome sets the ploidy rule.
func (p *Matrix) SetSexChromosome(s SexChromosome) { p.sex = s }

// Sites returns the site metadata, or nil if none was set.
func (p *Matrix) Sites() []Site { return p.sites }

// SetSites replaces the site metadata. It must describe exactly N sites.
func (p *Matrix) SetSites(sites []Site) error {
	if sites != nil && len(sites) != p.n {
		return fmt.Errorf("%w: %d sites for a matrix of %d", ErrInvalidArgument, len(sites), p.n)
	}
	p.sites = sites
	return nil
}

// Samples returns the column to sample id mapping, or nil if none was set.
func (p *Matrix) Samples() []int { return p.samples }

// SetSamples sets the column to sample id mapping. It must have M entries.
// Columns of one sample are expected to be adjacent, one per chromosome copy.
func (p *Matrix) SetSamples(ids []int) error {
	if ids != nil && len(ids) != p.m {
		return fmt.Errorf("%w: %d sample ids for %d columns", ErrInvalidArgument, len(ids), p.m)
	}
	p.samples = ids
	return nil
}

// EndPerm returns the column order after the last site.
func (p *Matrix) EndPerm() []int { return p.end }

// SetMissing marks cols as missing at site k.
func (p *Matrix) SetMissing(k int, cols []int) error {
	if k < 0 || k >= p.n {
		return &RangeError{What: "site", Index: k, Limit: p.n}
	}
	for _, c := range cols {
		if c < 0 || c >= p.m {
			return &RangeError{What: "column", Index: c, Limit: p.m}
		}
	}

	if p.missing == nil {
		p.missing = make([]*roaring.Bitmap, p.n)
	}
	if p.missing[k] == nil {
		p.missing[k] = roaring.New()
	}
	for _, c := range cols {
		p.missing[k].Add(uint32(c))
	}
	return nil
}

// Missing returns the missing columns of site k, or nil if there are none.
// The bitmap is owned by the matrix.
func (p *Matrix) Missing(k int) *roaring.Bitmap {
	if p.missing == nil || k < 0 || k >= len(p.missing) {
		return nil
	}
	return p.missing[k]
}

// HasMissing reports whether any site carries missing data.
func (p *Matrix) HasMissing() bool {
	for _, b := range p.missing {
		if b != nil && !b.IsEmpty() {
			return true
		}
	}
	return false
}

// Ploidy returns the number of copies column col contributes for its sample:
// 2 normally, 1 for males on X or Y, 0 for non-males on Y.
func (p *Matrix) Ploidy(store *sample.Store, col int) (int, error) {
	if p.samples == nil {
		return 2, nil
	}
	if col < 0 || col >= p.m {
		return 0, &RangeError{What: "column", Index: col, Limit: p.m}
	}

	rec, err := store.RecordAt(p.samples[col])
	if err != nil {
		return 0, err
	}

	switch p.sex {
	case ChromX:
		if rec.IsMale {
			return 1, nil
		}
		return 2, nil
	case ChromY:
		if rec.IsMale {
			return 1, nil
		}
		return 0, nil
	default:
		return 2, nil
	}
}

// Decode returns every site as an allele vector in column order.
func (p *Matrix) Decode() ([][]byte, error) {
	out := make([][]byte, 0, p.n)
	err := p.ForEachSite(func(_ int, x []byte) error {
		out = append(out, append([]byte(nil), x...))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ForEachSite calls fn with the column-order alleles of every site.
// x is reused between calls.
func (p *Matrix) ForEachSite(fn func(k int, x []byte) error) error {
	u, err := p.Cursor()
	if err != nil {
		return err
	}

	x := make([]byte, p.m)
	for k := 0; k < p.n; k++ {
		u.Column(x)
		if err := fn(k, x); err != nil {
			return err
		}
		if err := u.Next(); err != nil {
			return err
		}
	}
	return nil
}

// release drops everything the matrix owns and marks it consumed.
func (p *Matrix) release() {
	p.data = nil
	p.start, p.end = nil, nil
	p.samples = nil
	p.chrom = ""
	p.sites = nil
	p.missing = nil
	p.consumed = true
}
