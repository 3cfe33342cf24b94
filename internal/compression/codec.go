package compression

import (
	"errors"
	"fmt"
)

// Codec compresses and decompresses data blocks.
type Codec interface {
	// MethodByte returns the single-byte codec identifier written to block headers.
	MethodByte() byte
	Name() string
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte, decompressedSize int) ([]byte, error)
}

// Method byte constants.
const (
	MethodNone byte = 0x02
	MethodLZ4  byte = 0x82
)

// ErrIncompressible is returned by Compress when the output would not be
// smaller than the input. CompressBlock then stores the data uncompressed.
var ErrIncompressible = errors.New("data is incompressible")

// ByName returns the codec registered under name ("lz4" or "none").
func ByName(name string) (Codec, error) {
	switch name {
	case "lz4":
		return &LZ4Codec{}, nil
	case "none", "":
		return &NoneCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

// ByMethod returns the codec for a block header method byte.
func ByMethod(method byte) (Codec, error) {
	switch method {
	case MethodLZ4:
		return &LZ4Codec{}, nil
	case MethodNone:
		return &NoneCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown compression method: 0x%02x", method)
	}
}
