// Package adapter joins key lists produced by the reverse index back to
// typed table rows, lazily and in key order, for JSON output.
package adapter

import (
	"bytes"
	"encoding/json"
	"iter"
	"maps"
	"slices"
	"strconv"
)

// KeyIndex maps a key to the primary key of the table row holding it.
type KeyIndex interface {
	Resolve(key int32) (pk int32, ok bool)
}

// Identity is the index of tables keyed by the key itself.
type Identity struct{}

func (Identity) Resolve(key int32) (int32, bool) { return key, true }

type MapIndex map[int32]int32

func (m MapIndex) Resolve(key int32) (int32, bool) {
	pk, ok := m[key]
	return pk, ok
}

type IndexFunc func(key int32) (int32, bool)

func (f IndexFunc) Resolve(key int32) (int32, bool) { return f(key) }

// Finder is implemented by every typed table.
type Finder[R any] interface {
	FindBy(pk int32, col int, id int32) (R, bool)
}

// MapAdapter yields, for each key, the first row of Table whose column IDCol
// equals the key, probing only the bucket of the key's resolved primary key.
// Keys that do not resolve or match are skipped; repeated keys are yielded
// once.
type MapAdapter[R any] struct {
	Table Finder[R]
	Index KeyIndex
	Keys  []int32
	IDCol int
}

func (a MapAdapter[R]) All() iter.Seq2[int32, R] {
	return func(yield func(int32, R) bool) {
		seen := make(map[int32]struct{}, len(a.Keys))
		for _, key := range a.Keys {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			row, ok := find(a.Table, a.Index, a.IDCol, key)
			if !ok {
				continue
			}
			if !yield(key, row) {
				return
			}
		}
	}
}

// MarshalJSON writes an object keyed by the decimal key, in key order.
func (a MapAdapter[R]) MarshalJSON() ([]byte, error) {
	return marshalObject(a.All())
}

// SeqAdapter is MapAdapter without keys: it yields the matching rows in key
// order and marshals to a JSON array. Repeated keys yield repeated rows.
type SeqAdapter[R any] struct {
	Table Finder[R]
	Index KeyIndex
	Keys  []int32
	IDCol int
}

func (a SeqAdapter[R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, key := range a.Keys {
			row, ok := find(a.Table, a.Index, a.IDCol, key)
			if ok && !yield(row) {
				return
			}
		}
	}
}

func (a SeqAdapter[R]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	first := true
	for row := range a.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := encodeValue(&buf, row); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func find[R any](t Finder[R], idx KeyIndex, col int, key int32) (R, bool) {
	if idx == nil {
		idx = Identity{}
	}
	pk, ok := idx.Resolve(key)
	if !ok {
		var zero R
		return zero, false
	}
	return t.FindBy(pk, col, key)
}

// Filtered is the subset of Base named by Keys, in Keys order. Keys absent
// from Base are skipped.
type Filtered[V any] struct {
	Base map[int32]V
	Keys []int32
}

func (f Filtered[V]) All() iter.Seq2[int32, V] {
	return func(yield func(int32, V) bool) {
		for _, key := range f.Keys {
			v, ok := f.Base[key]
			if ok && !yield(key, v) {
				return
			}
		}
	}
}

func (f Filtered[V]) MarshalJSON() ([]byte, error) {
	return marshalObject(f.All())
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[int32]V) []int32 {
	return slices.Sorted(maps.Keys(m))
}

func marshalObject[V any](seq iter.Seq2[int32, V]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for key, v := range seq {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteByte('"')
		buf.WriteString(strconv.FormatInt(int64(key), 10))
		buf.WriteString(`":`)
		if err := encodeValue(&buf, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(raw)
	return nil
}
