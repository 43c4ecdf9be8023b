package pbwt

import (
	"fmt"

	"github.com/hupe1980/pbwt/sample"
)

// IntervalSelection returns the selection [start, start+count) of a matrix
// with m columns.
func IntervalSelection(start, count, m int) ([]int, error) {
	if start < 0 || count <= 0 || start+count > m {
		return nil, fmt.Errorf("%w: bad start %d, count %d in subsample of %d columns", ErrInvalidArgument, start, count, m)
	}

	sel := make([]int, count)
	for i := range sel {
		sel[i] = start + i
	}
	return sel, nil
}

// SubSampleInterval keeps count adjacent columns of src starting at start.
// Like SubSample it consumes src.
func SubSampleInterval(src *Matrix, start, count int, optFns ...Option) (*Matrix, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: subsample called without a valid matrix", ErrInvalidArgument)
	}

	sel, err := IntervalSelection(start, count, src.m)
	o := applyOptions(optFns)
	o.metrics.RecordSelection(count, len(sel), err)
	o.logger.LogSelection("interval", count, len(sel), err)
	if err != nil {
		return nil, err
	}

	return SubSample(src, sel, optFns...)
}

// IdentitySelection returns the columns of src belonging to the requested
// sample ids, in request order.
//
// A sample's columns are located by its first column and column count, so
// they are expected to be adjacent. Every request of an id takes that many
// columns from the id's next unused column; requesting an id again after its
// columns are used up fails with ErrOutOfRange. Ids that have no columns in
// src contribute nothing.
func IdentitySelection(src *Matrix, ids []int) ([]int, error) {
	if src == nil || src.samples == nil {
		return nil, fmt.Errorf("%w: sample selection needs a column to sample mapping", ErrInvalidArgument)
	}

	type run struct{ start, count, next int }
	runs := make(map[int]*run)
	for col, id := range src.samples {
		r, ok := runs[id]
		if !ok {
			runs[id] = &run{start: col, count: 1, next: col}
			continue
		}
		r.count++
	}

	sel := make([]int, 0, src.m)
	for _, id := range ids {
		r, ok := runs[id]
		if !ok {
			continue
		}
		end := r.start + r.count
		if r.next+r.count > end {
			return nil, &RangeError{What: fmt.Sprintf("sample %d column", id), Index: r.next, Limit: end}
		}
		for j := 0; j < r.count; j++ {
			sel = append(sel, r.next)
			r.next++
		}
	}
	return sel, nil
}

// SelectSamples keeps the columns of the requested sample ids, in request
// order. An empty request returns src unchanged; otherwise src is consumed
// as by SubSample.
func SelectSamples(src *Matrix, ids []int, optFns ...Option) (*Matrix, error) {
	if src == nil || src.samples == nil {
		return nil, fmt.Errorf("%w: sample selection called without pre-existing sample names", ErrInvalidArgument)
	}
	if len(ids) == 0 {
		return src, nil
	}

	o := applyOptions(optFns)
	sel, err := IdentitySelection(src, ids)
	if err == nil && len(sel) == 0 {
		err = fmt.Errorf("%w: none of %d requested samples are in the matrix", ErrInvalidArgument, len(ids))
	}
	o.metrics.RecordSelection(len(ids), len(sel), err)
	o.logger.LogSelection("samples", len(ids), len(sel), err)
	if err != nil {
		return nil, err
	}

	return SubSample(src, sel, optFns...)
}

// SelectSampleNames is SelectSamples with samples named through store.
// Names that store does not know fail with ErrUnknownID.
func SelectSampleNames(src *Matrix, store *sample.Store, names []string, optFns ...Option) (*Matrix, error) {
	ids := make([]int, len(names))
	for i, name := range names {
		id, ok := store.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: sample %q", ErrUnknownID, name)
		}
		ids[i] = id
	}
	return SelectSamples(src, ids, optFns...)
}
