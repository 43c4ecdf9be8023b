package codec

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCodecs() []Codec {
	return []Codec{None{}, LZ4{}, Zstd{}}
}

func TestByName(t *testing.T) {
	for _, c := range allCodecs() {
		got, ok := ByName(c.Name())
		require.True(t, ok, c.Name())
		assert.Equal(t, c, got)
	}

	_, ok := ByName("go-json")
	assert.False(t, ok)

	assert.Panics(t, func() { MustByName("snappy") })
	assert.Equal(t, LZ4{}, MustByName("lz4"))
}

func TestBlock_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"empty":        {},
		"tiny":         {1, 2, 3},
		"repetitive":   bytes.Repeat([]byte{0, 1, 1, 0}, 4096),
		"incompressed": pseudoRandom(2048),
	}

	for _, c := range allCodecs() {
		for name, data := range inputs {
			t.Run(c.Name()+"/"+name, func(t *testing.T) {
				prefix := []byte("hdr")
				block, err := AppendBlock(append([]byte(nil), prefix...), c, data)
				require.NoError(t, err)
				assert.Equal(t, prefix, block[:len(prefix)])

				got, n, err := ReadBlock(c, block[len(prefix):], nil)
				require.NoError(t, err)
				assert.Equal(t, len(block)-len(prefix), n)
				assert.Equal(t, len(data), len(got))
				assert.True(t, bytes.Equal(data, got))
			})
		}
	}
}

func TestBlock_CompressesRepetitiveData(t *testing.T) {
	data := bytes.Repeat([]byte{7}, 1<<14)

	for _, c := range []Codec{LZ4{}, Zstd{}} {
		block, err := AppendBlock(nil, c, data)
		require.NoError(t, err)
		assert.Less(t, len(block), len(data)/10, c.Name())
		assert.NotZero(t, binary.LittleEndian.Uint32(block[4:]), "%s should store compressed", c.Name())
	}
}

func TestBlock_Sequence(t *testing.T) {
	c := LZ4{}
	var stream []byte
	var want [][]byte
	for i := range 20 {
		data := bytes.Repeat([]byte{byte(i)}, 100*i)
		want = append(want, data)

		var err error
		stream, err = AppendBlock(stream, c, data)
		require.NoError(t, err)
	}

	var buf []byte
	for _, w := range want {
		got, n, err := ReadBlock(c, stream, &buf)
		require.NoError(t, err)
		assert.Equal(t, len(w), len(got))
		assert.True(t, bytes.Equal(w, got))
		stream = stream[n:]
	}
	assert.NotNil(t, buf, "compressed blocks decode into the scratch buffer")
	assert.Empty(t, stream)
}

func TestReadBlock_Corrupt(t *testing.T) {
	_, _, err := ReadBlock(LZ4{}, []byte{1, 2, 3}, nil)
	assert.ErrorIs(t, err, ErrCorrupt)

	raw := make([]byte, HeaderSize+2)
	binary.LittleEndian.PutUint32(raw[0:], 10)
	_, _, err = ReadBlock(LZ4{}, raw, nil)
	assert.ErrorIs(t, err, ErrCorrupt)

	bad := make([]byte, HeaderSize+4)
	binary.LittleEndian.PutUint32(bad[0:], 64)
	binary.LittleEndian.PutUint32(bad[4:], 4)
	copy(bad[HeaderSize:], []byte{0xff, 0xff, 0xff, 0xff})
	for _, c := range []Codec{LZ4{}, Zstd{}} {
		_, _, err = ReadBlock(c, bad, nil)
		assert.ErrorIs(t, err, ErrCorrupt, c.Name())
	}

	truncated := make([]byte, HeaderSize+1)
	binary.LittleEndian.PutUint32(truncated[0:], 64)
	binary.LittleEndian.PutUint32(truncated[4:], 30)
	_, _, err = ReadBlock(Zstd{}, truncated, nil)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func pseudoRandom(n int) []byte {
	out := make([]byte, n)
	x := uint32(2463534242)
	for i := range out {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		out[i] = byte(x)
	}
	return out
}
