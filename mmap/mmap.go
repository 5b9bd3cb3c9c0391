// Package mmap maps read-only data files into memory.
package mmap

import (
	"fmt"
	"os"
)

type Options uint

const (
	// SequentialAccess is a hint requesting aggressive read-ahead.
	// Incompatible with RandomAccess. Maps to MADV_SEQUENTIAL on Unix.
	SequentialAccess Options = 1 << 1

	// RandomAccess is a hint that read ahead is less useful than normally.
	// Incompatible with SequentialAccess. Maps to MADV_RANDOM on Unix.
	RandomAccess Options = 1 << 2

	// Prefault is a hint requesting the entire file to be loaded in memory
	// for fastest access. Maps to MAP_POPULATE on Linux.
	Prefault Options = 1 << 3
)

func (o Options) Has(v Options) bool {
	return o&v != 0
}

// Mmap maps the first size bytes of f read-only.
func Mmap(f *os.File, offset, size int, opt Options) ([]byte, error) {
	if offset != 0 {
		panic("non-zero offset not yet supported")
	}
	if opt.Has(SequentialAccess) && opt.Has(RandomAccess) {
		panic("SequentialAccess and RandomAccess are mutually exclusive")
	}
	return mmap(f, size, opt)
}

// Munmap unmaps the given slice from memory. The slice must have been returned
// by Mmap.
func Munmap(b []byte) error {
	return munmap(b)
}

// Mapping is a whole file mapped read-only. The bytes stay valid until Close.
type Mapping struct {
	path string
	data []byte
}

// Open maps the entire file at path. Empty files produce an empty mapping
// without touching the OS mapping APIs.
func Open(path string, opt Options) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size > MaxSize || int64(int(size)) != size {
		return nil, fmt.Errorf("%s: file too large to map (%d bytes)", path, size)
	}
	m := &Mapping{path: path}
	if size == 0 {
		m.data = []byte{}
		return m, nil
	}

	m.data, err = Mmap(f, 0, int(size), opt)
	if err != nil {
		return nil, fmt.Errorf("%s: mmap: %w", path, err)
	}
	return m, nil
}

func (m *Mapping) Path() string {
	return m.path
}

func (m *Mapping) Bytes() []byte {
	return m.data
}

func (m *Mapping) Len() int {
	return len(m.data)
}

// Close unmaps the file. Any slices derived from Bytes must not be used afterwards.
func (m *Mapping) Close() error {
	if m.data == nil {
		return nil
	}
	b := m.data
	m.data = nil
	if len(b) == 0 {
		return nil
	}
	return munmap(b)
}
