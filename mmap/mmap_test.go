package mmap

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestOptionsHas(t *testing.T) {
	var o Options = RandomAccess | Prefault
	if !o.Has(RandomAccess) || o.Has(SequentialAccess) {
		t.Fatalf("Options.Has returned unexpected results for %v", o)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.fdb")
	content := bytes.Repeat([]byte{0x42, 0x17}, 3000)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Open(path, RandomAccess)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if m.Len() != len(content) {
		t.Fatalf("Len = %d, wanted %d", m.Len(), len(content))
	}
	if !bytes.Equal(m.Bytes(), content) {
		t.Fatalf("mapped bytes differ from file content")
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if m.Bytes() != nil {
		t.Fatalf("Bytes after Close should be nil")
	}
	if err := m.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestOpen_empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.fdb")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Open(path, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("Len = %d, wanted 0", m.Len())
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpen_missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.fdb"), 0)
	if !os.IsNotExist(err) {
		t.Fatalf("Open(missing) = %v, wanted not-exist error", err)
	}
}

func TestMmap_PanicsOnNonZeroOffset(t *testing.T) {
	f := must(os.CreateTemp(t.TempDir(), "mmap_test_*"))
	defer f.Close()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	_, _ = Mmap(f, 1, 1, 0)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
