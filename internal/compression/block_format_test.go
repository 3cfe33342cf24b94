package compression

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestCompressBlock_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("granule-mask-"), 200)
	for _, codec := range []Codec{&LZ4Codec{}, &NoneCodec{}} {
		block, err := CompressBlock(codec, data)
		if err != nil {
			t.Fatalf("%s: compress: %v", codec.Name(), err)
		}
		if block[0] != codec.MethodByte() {
			t.Fatalf("%s: expected method 0x%02x, got 0x%02x", codec.Name(), codec.MethodByte(), block[0])
		}
		if got := binary.LittleEndian.Uint32(block[1:5]); int(got) != len(block) {
			t.Fatalf("%s: header size %d, block size %d", codec.Name(), got, len(block))
		}
		out, err := DecompressBlock(block)
		if err != nil {
			t.Fatalf("%s: decompress: %v", codec.Name(), err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("%s: round trip mismatch", codec.Name())
		}
	}
}

func TestCompressBlock_IncompressibleFallsBackToNone(t *testing.T) {
	data := []byte{1, 2, 3}
	block, err := CompressBlock(&LZ4Codec{}, data)
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	if block[0] != MethodNone {
		t.Fatalf("expected method none, got 0x%02x", block[0])
	}
	out, err := DecompressBlock(block)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("expected %v, got %v", data, out)
	}
}

func TestCompressBlock_Empty(t *testing.T) {
	block, err := CompressBlock(&LZ4Codec{}, nil)
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	if len(block) != HeaderSize {
		t.Fatalf("expected header-only block, got %d bytes", len(block))
	}
	out, err := DecompressBlock(block)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty payload, got %v", out)
	}
}

func TestDecompressBlock_Errors(t *testing.T) {
	if _, err := DecompressBlock([]byte{MethodNone, 9, 0}); err == nil {
		t.Fatal("expected error for short block")
	}

	block, _ := CompressBlock(&NoneCodec{}, []byte{1, 2, 3, 4})
	block[0] = 0x7f
	if _, err := DecompressBlock(block); err == nil {
		t.Fatal("expected error for unknown method")
	}

	block, _ = CompressBlock(&NoneCodec{}, []byte{1, 2, 3, 4})
	binary.LittleEndian.PutUint32(block[1:5], uint32(len(block)+1))
	if _, err := DecompressBlock(block); err == nil {
		t.Fatal("expected error for size mismatch")
	}

	block, _ = CompressBlock(&NoneCodec{}, []byte{1, 2, 3, 4})
	binary.LittleEndian.PutUint32(block[5:9], 10)
	if _, err := DecompressBlock(block); err == nil {
		t.Fatal("expected error for wrong uncompressed size")
	}
}

func TestByName(t *testing.T) {
	for name, method := range map[string]byte{"lz4": MethodLZ4, "none": MethodNone, "": MethodNone} {
		c, err := ByName(name)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", name, err)
		}
		if c.MethodByte() != method {
			t.Fatalf("%q: expected method 0x%02x, got 0x%02x", name, method, c.MethodByte())
		}
	}
	if _, err := ByName("zstd"); err == nil {
		t.Fatal("expected error for unknown codec")
	}
}

func TestDecompressBlock_RejectsOversizedClaim(t *testing.T) {
	block, _ := CompressBlock(&LZ4Codec{}, bytes.Repeat([]byte{0xff}, 4096))
	binary.LittleEndian.PutUint32(block[5:9], 0xffffffff)
	if _, err := DecompressBlock(block); err == nil {
		t.Fatal("expected error for uncompressed size beyond lz4 expansion bound")
	}

	header := make([]byte, HeaderSize)
	header[0] = MethodLZ4
	binary.LittleEndian.PutUint32(header[1:5], HeaderSize)
	binary.LittleEndian.PutUint32(header[5:9], 1<<30)
	if _, err := DecompressBlock(header); err == nil {
		t.Fatal("expected error for header-only block claiming data")
	}
}
