// Package pbwt stores haplotype matrices as a positional Burrows-Wheeler
// transform and extracts column subsets from them.
//
// A Matrix holds M haplotype columns over N biallelic sites. Every site is
// stored in the column order induced by the sites before it (the "positional
// prefix sort"), which groups similar haplotypes together and makes each
// site highly compressible.
//
// # Building
//
//	b := pbwt.NewBuilder(4)
//	_ = b.Add([]byte{0, 1, 1, 0}, pbwt.Site{Pos: 16050075})
//	_ = b.Add([]byte{1, 1, 0, 0}, pbwt.Site{Pos: 16050115})
//	p, _ := b.Build()
//
// # Reading
//
// A Cursor steps through the sites, exposing the current permutation and
// the alleles in rank order:
//
//	u, _ := p.Cursor()
//	for k := 0; k < p.N(); k++ {
//	    fmt.Println(u.Perm(), u.Alleles())
//	    _ = u.Next()
//	}
//
// # Subsetting
//
// SubSample keeps an arbitrary list of columns and re-sorts them, so the
// result is exactly the matrix one would have built from those columns
// alone. It consumes its input:
//
//	p, err = pbwt.SubSampleInterval(p, 0, 2)          // first two haplotypes
//	p, err = pbwt.SelectSamples(p, []int{id1, id2})   // by sample id
//
// Per-individual metadata lives in package sample.
//
// # Storage
//
// Sites are run-length packed and framed with a block codec (LZ4 by
// default, Zstandard or none via WithCodec).
//
// Nothing in this package is safe for concurrent mutation.
package pbwt
