package compression

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Block layout:
//   [method_byte (1)] [size_with_header (4 LE)] [uncompressed_size (4 LE)] [payload...]

const HeaderSize = 9

// maxExpansion bounds uncompressed/payload size; LZ4 cannot exceed 255:1.
const maxExpansion = 255

// CompressBlock compresses data with codec and returns header plus payload.
// Data the codec cannot shrink is stored with MethodNone.
func CompressBlock(codec Codec, data []byte) ([]byte, error) {
	method := codec.MethodByte()
	payload, err := codec.Compress(data)
	if errors.Is(err, ErrIncompressible) {
		method = MethodNone
		payload = data
	} else if err != nil {
		return nil, err
	}

	totalSize := HeaderSize + len(payload)
	block := make([]byte, totalSize)
	block[0] = method
	binary.LittleEndian.PutUint32(block[1:5], uint32(totalSize))
	binary.LittleEndian.PutUint32(block[5:9], uint32(len(data)))
	copy(block[HeaderSize:], payload)
	return block, nil
}

// DecompressBlock validates a block header and returns the decompressed payload.
func DecompressBlock(data []byte) ([]byte, error) {
	method, total, uncompressed, err := ReadBlockHeader(data)
	if err != nil {
		return nil, err
	}
	if int(total) < HeaderSize || int(total) > len(data) {
		return nil, fmt.Errorf("compressed block size mismatch: header says %d, have %d", total, len(data))
	}
	payload := data[HeaderSize:total]
	if uint64(uncompressed) > maxExpansion*uint64(len(payload)) {
		return nil, fmt.Errorf("compressed block claims %d bytes from a %d byte payload", uncompressed, len(payload))
	}
	codec, err := ByMethod(method)
	if err != nil {
		return nil, err
	}
	return codec.Decompress(payload, int(uncompressed))
}

// ReadBlockHeader returns the method byte, total block size and uncompressed size.
func ReadBlockHeader(data []byte) (method byte, total uint32, uncompressed uint32, err error) {
	if len(data) < HeaderSize {
		return 0, 0, 0, fmt.Errorf("compressed block too small: %d bytes", len(data))
	}
	return data[0], binary.LittleEndian.Uint32(data[1:5]), binary.LittleEndian.Uint32(data[5:9]), nil
}
