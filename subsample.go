package pbwt

import (
	"fmt"
	"time"
)

// SubSample builds a matrix holding the columns of src listed in sel, in
// that order: column j of the result is column sel[j] of src at every site.
// Indices may repeat.
//
// The result is sorted from scratch rather than inheriting src's order, so
// it is identical to a matrix built directly from the selected columns.
//
// SubSample consumes src. On success the result takes over src's chromosome
// label and site metadata, gets the remapped sample mapping and a copy of the
// sex chromosome mode, and src is released; any further use of src fails with
// ErrConsumed. On error src is left untouched. Missing data tracks are not
// carried over.
func SubSample(src *Matrix, sel []int, optFns ...Option) (*Matrix, error) {
	o := applyOptions(optFns)

	startTime := time.Now()
	dst, err := subSample(src, sel, o)

	oldM, sites := 0, 0
	if src != nil {
		oldM = src.m
	}
	if dst != nil {
		sites = dst.n
	}
	o.metrics.RecordSubSample(oldM, len(sel), sites, time.Since(startTime), err)
	o.logger.LogSubSample(oldM, len(sel), sites, err)
	return dst, err
}

func subSample(src *Matrix, sel []int, o options) (*Matrix, error) {
	if !src.Valid() {
		if src != nil && src.consumed {
			return nil, fmt.Errorf("%w: subsample source: %w", ErrInvalidArgument, ErrConsumed)
		}
		return nil, fmt.Errorf("%w: subsample called without a valid matrix", ErrInvalidArgument)
	}
	if len(sel) == 0 {
		return nil, fmt.Errorf("%w: empty selection", ErrInvalidArgument)
	}
	for _, c := range sel {
		if c < 0 || c >= src.m {
			return nil, &RangeError{What: "column", Index: c, Limit: src.m}
		}
	}

	c := o.codec
	if c == nil {
		c = src.codec
	}
	dst := newMatrix(len(sel), c)

	uOld, err := src.Cursor()
	if err != nil {
		return nil, err
	}
	uNew := newCursor(dst)

	x := make([]byte, dst.m)
	ainv := make([]int, src.m)

	for k := 0; k < src.n; k++ {
		for r, col := range uOld.a {
			ainv[col] = r
		}
		for j, col := range sel {
			x[j] = uOld.y[ainv[col]]
		}
		for r, col := range uNew.a {
			uNew.y[r] = x[col]
		}
		if err := uNew.write(); err != nil {
			return nil, err
		}
		if err := uOld.Next(); err != nil {
			return nil, err
		}
	}
	uNew.finish()

	if src.samples != nil {
		dst.samples = make([]int, dst.m)
		for j, col := range sel {
			dst.samples[j] = src.samples[col]
		}
	}
	dst.chrom = src.chrom
	dst.sites = src.sites
	dst.sex = src.sex

	if src.HasMissing() {
		o.logger.Warn("missing data not propagated by subsample", "chrom", src.chrom)
	}

	src.release()
	return dst, nil
}
