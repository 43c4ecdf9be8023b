package pbwt

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/hupe1980/pbwt/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubSample_PreservesAlleles(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))

	tests := []struct {
		name string
		m    int
		sel  []int
	}{
		{"identity", 5, []int{0, 1, 2, 3, 4}},
		{"reversed", 5, []int{4, 3, 2, 1, 0}},
		{"single", 8, []int{6}},
		{"sparse", 50, []int{3, 17, 18, 40, 49}},
		{"duplicates", 10, []int{2, 2, 7, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sites := randomSites(rng, 30, tt.m)
			src := buildMatrix(t, sites)

			dst, err := SubSample(src, tt.sel)
			require.NoError(t, err)
			assert.Equal(t, len(tt.sel), dst.M())
			assert.Equal(t, src.N(), dst.N())

			got, err := dst.Decode()
			require.NoError(t, err)
			assert.Equal(t, columns(sites, tt.sel), got)
		})
	}
}

func TestSubSample_Random(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))

	for range 20 {
		m := 2 + rng.IntN(200)
		sites := randomSites(rng, 1+rng.IntN(50), m)
		sel := rng.Perm(m)[:1+rng.IntN(m)]

		dst, err := SubSample(buildMatrix(t, sites), sel)
		require.NoError(t, err)

		got, err := dst.Decode()
		require.NoError(t, err)
		require.Equal(t, columns(sites, sel), got)

		u, err := dst.Cursor()
		require.NoError(t, err)
		for k := 0; k < dst.N(); k++ {
			require.True(t, isPermutation(u.Perm()))
			require.NoError(t, u.Next())
		}
		require.True(t, isPermutation(dst.EndPerm()))
	}
}

func TestSubSample_MatchesFreshBuild(t *testing.T) {
	// Column 1 separates columns 0 and 2 in the full sort.
	sites := [][]byte{
		{0, 1, 1},
		{1, 0, 0},
	}
	sel := []int{0, 2}

	sub, err := SubSample(buildMatrix(t, sites), sel)
	require.NoError(t, err)
	fresh := buildMatrix(t, columns(sites, sel))

	assert.Equal(t, fresh.EndPerm(), sub.EndPerm())
	assert.Equal(t, fresh.data, sub.data, "encoded sites must be identical")

	us, err := sub.Cursor()
	require.NoError(t, err)
	uf, err := fresh.Cursor()
	require.NoError(t, err)
	for k := 0; k < sub.N(); k++ {
		assert.Equal(t, uf.Perm(), us.Perm(), "site %d", k)
		assert.Equal(t, uf.Alleles(), us.Alleles(), "site %d", k)
		require.NoError(t, us.Next())
		require.NoError(t, uf.Next())
	}
}

func TestSubSample_LargeMatchesFreshBuild(t *testing.T) {
	rng := rand.New(rand.NewPCG(100, 200))
	sites := randomSites(rng, 200, 400)
	sel := make([]int, 0, 200)
	for c := 0; c < 400; c += 2 {
		sel = append(sel, c)
	}

	sub, err := SubSample(buildMatrix(t, sites), sel)
	require.NoError(t, err)
	fresh := buildMatrix(t, columns(sites, sel))

	assert.Equal(t, fresh.EndPerm(), sub.EndPerm())
	assert.True(t, bytes.Equal(fresh.data, sub.data))
}

func TestSubSample_ConsumesSource(t *testing.T) {
	src := buildMatrix(t, [][]byte{{0, 1, 0, 1}, {1, 1, 0, 0}})
	require.NoError(t, src.SetSamples([]int{1, 1, 2, 2}))
	src.SetChrom("X")
	src.SetSexChromosome(ChromX)
	wantSites := src.Sites()

	dst, err := SubSample(src, []int{3, 2})
	require.NoError(t, err)

	assert.Equal(t, "X", dst.Chrom())
	assert.Equal(t, wantSites, dst.Sites())
	assert.Equal(t, ChromX, dst.SexChromosome())
	assert.Equal(t, []int{2, 2}, dst.Samples())

	assert.False(t, src.Valid())
	assert.Empty(t, src.Chrom())
	assert.Nil(t, src.Sites())
	assert.Nil(t, src.Samples())

	_, err = src.Cursor()
	assert.ErrorIs(t, err, ErrConsumed)

	_, err = SubSample(src, []int{0})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, ErrConsumed)
}

func TestSubSample_NoSampleMapping(t *testing.T) {
	dst, err := SubSample(buildMatrix(t, [][]byte{{0, 1, 0}}), []int{1})
	require.NoError(t, err)
	assert.Nil(t, dst.Samples())
}

func TestSubSample_Errors(t *testing.T) {
	_, err := SubSample(nil, []int{0})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	empty, err := NewBuilder(3).Build()
	require.NoError(t, err)
	_, err = SubSample(empty, []int{0})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	src := buildMatrix(t, [][]byte{{0, 1, 0}, {1, 0, 0}})

	_, err = SubSample(src, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = SubSample(src, []int{0, 3})
	assert.ErrorIs(t, err, ErrOutOfRange)

	var re *RangeError
	_, err = SubSample(src, []int{-1})
	require.ErrorAs(t, err, &re)
	assert.Equal(t, -1, re.Index)
	assert.Equal(t, 3, re.Limit)

	// Failed calls leave the source usable.
	assert.True(t, src.Valid())
	_, err = SubSample(src, []int{1})
	require.NoError(t, err)
}

func TestSubSample_Codec(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	sites := randomSites(rng, 20, 64)

	src := buildMatrix(t, sites, WithCodec(codec.None{}))
	dst, err := SubSample(src, []int{1, 2, 3}, WithCodec(codec.Zstd{}))
	require.NoError(t, err)
	assert.Equal(t, "zstd", dst.Codec().Name())

	got, err := dst.Decode()
	require.NoError(t, err)
	assert.Equal(t, columns(sites, []int{1, 2, 3}), got)

	// Without an option the source codec is kept.
	again, err := SubSample(dst, []int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, "zstd", again.Codec().Name())
}

func TestSubSample_MissingNotPropagated(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	src := buildMatrix(t, [][]byte{{0, 1, 0}, {1, 0, 0}})
	require.NoError(t, src.SetMissing(0, []int{1}))

	dst, err := SubSample(src, []int{0, 1}, WithLogger(logger))
	require.NoError(t, err)
	assert.False(t, dst.HasMissing())
	assert.Contains(t, buf.String(), "missing data not propagated")
	assert.Contains(t, buf.String(), "subsample completed")
}

func TestSubSample_Metrics(t *testing.T) {
	mc := &BasicMetricsCollector{}
	src := buildMatrix(t, [][]byte{{0, 1, 0}, {1, 0, 0}})

	_, err := SubSample(src, []int{5}, WithMetricsCollector(mc))
	require.Error(t, err)
	_, err = SubSample(src, []int{0, 2}, WithMetricsCollector(mc))
	require.NoError(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.SubSampleCount)
	assert.Equal(t, int64(1), stats.SubSampleErrors)
	assert.Equal(t, int64(2), stats.SubSampleSites)
	assert.Equal(t, int64(2), stats.SubSampleColumns)
}
