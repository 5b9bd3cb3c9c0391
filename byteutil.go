package fdb

import (
	"bytes"
	"encoding/binary"
)

// byteDecoder reads little-endian structures at absolute offsets, checking
// every access against the buffer bounds.
type byteDecoder struct {
	Orig []byte
}

func makeByteDecoder(buf []byte) byteDecoder {
	return byteDecoder{buf}
}

func (d byteDecoder) Raw(off, n uint32) ([]byte, error) {
	end := uint64(off) + uint64(n)
	if end > uint64(len(d.Orig)) {
		return nil, dataErrf(d.Orig, int(off), errOutOfRange, "not enough data: %d bytes wanted", n)
	}
	return d.Orig[off:end], nil
}

func (d byteDecoder) U32(off uint32) (uint32, error) {
	b, err := d.Raw(off, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (d byteDecoder) I64(off uint32) (int64, error) {
	b, err := d.Raw(off, 8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// Array verifies that count records of size bytes fit at off.
func (d byteDecoder) Array(off, count, size uint32) error {
	if count == 0 {
		return nil
	}
	end := uint64(off) + uint64(count)*uint64(size)
	if end > uint64(len(d.Orig)) {
		return dataErrf(d.Orig, int(off), errOutOfRange, "array of %d×%d bytes does not fit", count, size)
	}
	return nil
}

// CString returns the NUL-terminated string at off, without the terminator.
func (d byteDecoder) CString(off uint32) (Latin1, error) {
	if uint64(off) >= uint64(len(d.Orig)) {
		return nil, dataErrf(d.Orig, int(off), errOutOfRange, "string")
	}
	rest := d.Orig[off:]
	i := bytes.IndexByte(rest, 0)
	if i < 0 {
		return nil, dataErrf(d.Orig, int(off), errUnterminated, "string")
	}
	return Latin1(rest[:i:i]), nil
}

// The must* variants serve row decoding after Open validated the directory.
// The file is trusted at that point, so a fault is a panic.

func (d byteDecoder) mustU32(off uint32) uint32 {
	return must(d.U32(off))
}

func (d byteDecoder) mustCString(off uint32) Latin1 {
	return must(d.CString(off))
}
