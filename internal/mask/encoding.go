package mask

import (
	"encoding/binary"
	"fmt"

	"github.com/harshithgowdakt/granulemask/internal/compression"
)

// Encoded payload, before block compression:
//   [length (4 LE)] [ceil(length/8) bytes of flags, bit i = flag i, LSB first]

// Encode packs the mask flags into a bitmap and wraps it in a compressed block.
func Encode(m *Mask, codec compression.Codec) ([]byte, error) {
	payload := make([]byte, 4+(m.length+7)/8)
	binary.LittleEndian.PutUint32(payload[:4], uint32(m.length))
	bitmap := payload[4:]
	for i, f := range m.flags {
		if f {
			bitmap[i/8] |= 1 << (i % 8)
		}
	}
	block, err := compression.CompressBlock(codec, payload)
	if err != nil {
		return nil, fmt.Errorf("encode mask: %w", err)
	}
	return block, nil
}

// Decode reverses Encode. The result is validated like any mask built by New.
func Decode(block []byte) (*Mask, error) {
	payload, err := compression.DecompressBlock(block)
	if err != nil {
		return nil, fmt.Errorf("decode mask: %w", err)
	}
	if len(payload) < 4 {
		return nil, fmt.Errorf("%w: mask payload too small: %d bytes", ErrInvalidArgument, len(payload))
	}
	n := int(binary.LittleEndian.Uint32(payload[:4]))
	bitmap := payload[4:]
	if len(bitmap) != (n+7)/8 {
		return nil, fmt.Errorf("%w: mask of %d flags needs %d bitmap bytes, got %d",
			ErrInvalidArgument, n, (n+7)/8, len(bitmap))
	}
	values := make([]int, n)
	for i := range values {
		values[i] = int(bitmap[i/8]>>(i%8)) & 1
	}
	return New(n, values...)
}
