package codec

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the size of a block header.
//
// Format: [UncompressedSize uint32][CompressedSize uint32][Data...]
// If CompressedSize == 0, the block is stored uncompressed.
const HeaderSize = 8

// AppendBlock frames data as a block compressed with c and appends it to dst.
// Blocks that do not shrink by at least 10% are stored uncompressed.
func AppendBlock(dst []byte, c Codec, data []byte) ([]byte, error) {
	start := len(dst)
	dst = grow(dst, HeaderSize)
	binary.LittleEndian.PutUint32(dst[start:], uint32(len(data)))

	if len(data) > 0 {
		var err error
		dst, err = c.Compress(dst, data)
		if err != nil {
			return dst[:start], fmt.Errorf("%s compress: %w", c.Name(), err)
		}
	}

	compressed := len(dst) - start - HeaderSize
	if compressed == 0 || float64(compressed) > float64(len(data))*0.9 {
		dst = append(dst[:start+HeaderSize], data...)
		binary.LittleEndian.PutUint32(dst[start+4:], 0)
		return dst, nil
	}

	binary.LittleEndian.PutUint32(dst[start+4:], uint32(compressed))
	return dst, nil
}

// ReadBlock decodes the block at the start of src. It returns the block
// contents and the number of bytes of src consumed.
//
// Uncompressed contents alias src. Compressed contents are decoded into
// *buf, which is grown if needed and may be nil.
func ReadBlock(c Codec, src []byte, buf *[]byte) (data []byte, n int, err error) {
	if len(src) < HeaderSize {
		return nil, 0, fmt.Errorf("%w: block too small for header", ErrCorrupt)
	}

	size := int(binary.LittleEndian.Uint32(src[0:]))
	compressed := int(binary.LittleEndian.Uint32(src[4:]))

	if compressed == 0 {
		if len(src)-HeaderSize < size {
			return nil, 0, fmt.Errorf("%w: block data too small", ErrCorrupt)
		}
		return src[HeaderSize : HeaderSize+size], HeaderSize + size, nil
	}

	if len(src)-HeaderSize < compressed {
		return nil, 0, fmt.Errorf("%w: compressed block data too small", ErrCorrupt)
	}

	var out []byte
	if buf != nil {
		out = *buf
	}
	if cap(out) < size {
		out = make([]byte, size)
	}
	out = out[:size]
	if buf != nil {
		*buf = out
	}
	if err := c.Decompress(out, src[HeaderSize:HeaderSize+compressed]); err != nil {
		return nil, 0, fmt.Errorf("%s decompress: %w", c.Name(), err)
	}

	return out, HeaderSize + compressed, nil
}
