// Package fdbtest builds FDB files in memory for tests.
package fdbtest

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/andreyvit/fdb"
)

type Col struct {
	Name string
	Type fdb.ValueType
}

func C(name string, t fdb.ValueType) Col {
	return Col{name, t}
}

// Builder accumulates tables and writes them out in the FDB layout.
type Builder struct {
	tables []*TableBuilder
}

type TableBuilder struct {
	Name    string
	Columns []Col
	Buckets int

	rows [][]fdb.Value
}

func New() *Builder {
	return &Builder{}
}

// Table adds a table with the given number of hash buckets.
func (b *Builder) Table(name string, buckets int, cols ...Col) *TableBuilder {
	tb := &TableBuilder{Name: name, Columns: cols, Buckets: buckets}
	b.tables = append(b.tables, tb)
	return tb
}

// Lookup returns a previously added table.
func (b *Builder) Lookup(name string) *TableBuilder {
	for _, tb := range b.tables {
		if tb.Name == name {
			return tb
		}
	}
	panic(fmt.Errorf("fdbtest: unknown table %q", name))
}

// Add appends a row given positionally. Go values are converted according
// to the column types; see ValueOf.
func (tb *TableBuilder) Add(values ...any) *TableBuilder {
	row := make([]fdb.Value, len(values))
	for i, v := range values {
		var t fdb.ValueType
		if i < len(tb.Columns) {
			t = tb.Columns[i].Type
		}
		row[i] = ValueOf(v, t)
	}
	tb.rows = append(tb.rows, row)
	return tb
}

// Insert appends a row given by column name. Missing columns are Nothing.
func (tb *TableBuilder) Insert(fields map[string]any) *TableBuilder {
	row := make([]fdb.Value, len(tb.Columns))
	seen := 0
	for i, c := range tb.Columns {
		if v, ok := fields[c.Name]; ok {
			row[i] = ValueOf(v, c.Type)
			seen++
		}
	}
	if seen != len(fields) {
		for k := range fields {
			if !tb.hasColumn(k) {
				panic(fmt.Errorf("fdbtest: table %s has no column %q", tb.Name, k))
			}
		}
	}
	tb.rows = append(tb.rows, row)
	return tb
}

func (tb *TableBuilder) hasColumn(name string) bool {
	for _, c := range tb.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

// ValueOf converts a Go value into a field of column type t. Strings become
// Text (VarChar in VARCHAR columns), ints become Integer (BigInt or Float in
// such columns), nil becomes Nothing.
func ValueOf(v any, t fdb.ValueType) fdb.Value {
	switch v := v.(type) {
	case nil:
		return fdb.Nothing()
	case fdb.Value:
		return v
	case bool:
		return fdb.Boolean(v)
	case string:
		if t == fdb.TypeVarChar {
			return fdb.VarChar(fdb.MustLatin1(v))
		}
		return fdb.Text(fdb.MustLatin1(v))
	case fdb.Latin1:
		if t == fdb.TypeVarChar {
			return fdb.VarChar(v)
		}
		return fdb.Text(v)
	case int:
		return intValue(int64(v), t)
	case int32:
		return intValue(int64(v), t)
	case int64:
		if t == fdb.TypeNothing {
			return fdb.BigInt(v)
		}
		return intValue(v, t)
	case float32:
		return fdb.Float(v)
	case float64:
		return fdb.Float(float32(v))
	default:
		panic(fmt.Errorf("fdbtest: unsupported value %T", v))
	}
}

func intValue(v int64, t fdb.ValueType) fdb.Value {
	switch t {
	case fdb.TypeBigInt:
		return fdb.BigInt(v)
	case fdb.TypeFloat:
		return fdb.Float(float32(v))
	default:
		if v < math.MinInt32 || v > math.MaxInt32 {
			panic(fmt.Errorf("fdbtest: %d does not fit INTEGER", v))
		}
		return fdb.Integer(int32(v))
	}
}

// Bytes writes all tables in the order they were added.
func (b *Builder) Bytes() []byte {
	w := &writer{}
	hdr := w.reserve(8)
	w.put(hdr, uint32(len(b.tables)))
	w.put(hdr+4, w.array(len(b.tables), 8))

	for i, tb := range b.tables {
		list := w.get(hdr + 4)
		def, data := tb.write(w)
		w.put(list+uint32(i)*8, def)
		w.put(list+uint32(i)*8+4, data)
	}
	return w.buf
}

func (tb *TableBuilder) write(w *writer) (def, data uint32) {
	def = w.reserve(12)
	w.put(def, uint32(len(tb.Columns)))
	w.put(def+4, w.str(tb.Name))
	cols := w.array(len(tb.Columns), 8)
	w.put(def+8, cols)
	for i, c := range tb.Columns {
		w.put(cols+uint32(i)*8, uint32(c.Type))
		w.put(cols+uint32(i)*8+4, w.str(c.Name))
	}

	data = w.reserve(8)
	w.put(data, uint32(tb.Buckets))
	buckets := w.array(tb.Buckets, 4)
	w.put(data+4, buckets)
	if tb.Buckets == 0 {
		return
	}

	chains := make([][][]fdb.Value, tb.Buckets)
	for _, row := range tb.rows {
		var pk fdb.Value
		if len(row) > 0 {
			pk = row[0]
		}
		i := pk.Hash() % uint32(tb.Buckets)
		chains[i] = append(chains[i], row)
	}
	for i, chain := range chains {
		link := buckets + uint32(i)*4
		for _, row := range chain {
			entry := w.reserve(8)
			w.put(link, entry)
			w.put(entry, writeRow(w, row))
			link = entry + 4
		}
		w.put(link, 0xFFFFFFFF)
	}
	return
}

func writeRow(w *writer, row []fdb.Value) uint32 {
	hdr := w.reserve(8)
	w.put(hdr, uint32(len(row)))
	fields := w.array(len(row), 8)
	w.put(hdr+4, fields)
	for i, v := range row {
		off := fields + uint32(i)*8
		w.put(off, uint32(v.Type()))
		w.put(off+4, fieldWord(w, v))
	}
	return hdr
}

func fieldWord(w *writer, v fdb.Value) uint32 {
	switch v.Type() {
	case fdb.TypeInteger:
		n, _ := v.AsInteger()
		return uint32(n)
	case fdb.TypeFloat:
		f, _ := v.AsFloat()
		return math.Float32bits(f)
	case fdb.TypeBoolean:
		if b, _ := v.AsBoolean(); b {
			return 1
		}
		return 0
	case fdb.TypeText:
		s, _ := v.AsText()
		return w.str(string(s))
	case fdb.TypeVarChar:
		s, _ := v.AsVarChar()
		return w.str(string(s))
	case fdb.TypeBigInt:
		n, _ := v.AsBigInt()
		off := w.reserve(8)
		binary.LittleEndian.PutUint64(w.buf[off:], uint64(n))
		return off
	default:
		return 0
	}
}

type writer struct {
	buf []byte
}

// reserve appends n zero bytes, keeping 4-byte alignment.
func (w *writer) reserve(n int) uint32 {
	off := len(w.buf)
	n = (n + 3) &^ 3
	w.buf = append(w.buf, make([]byte, n)...)
	return uint32(off)
}

// array reserves count records of size bytes; an empty array is null.
func (w *writer) array(count, size int) uint32 {
	if count == 0 {
		return 0xFFFFFFFF
	}
	return w.reserve(count * size)
}

func (w *writer) str(s string) uint32 {
	off := w.reserve(len(s) + 1)
	copy(w.buf[off:], s)
	return off
}

func (w *writer) put(off, v uint32) {
	binary.LittleEndian.PutUint32(w.buf[off:], v)
}

func (w *writer) get(off uint32) uint32 {
	return binary.LittleEndian.Uint32(w.buf[off:])
}

// Open writes the tables and opens the result, failing the test on error.
func (b *Builder) Open(t testing.TB) *fdb.Database {
	t.Helper()
	db, err := fdb.Open(b.Bytes(), fdb.Options{Logger: Logger(t)})
	if err != nil {
		t.Fatalf("fdb.Open: %v", err)
	}
	return db
}

// Logger routes debug logs to t.Log.
func Logger(t testing.TB) *slog.Logger {
	return slog.New(slog.NewTextHandler(&logWriter{t}, &slog.HandlerOptions{
		AddSource: false,
		Level:     slog.LevelDebug,
	}))
}

type logWriter struct{ t testing.TB }

func (c *logWriter) Write(buf []byte) (int, error) {
	msg := string(buf)
	origLen := len(msg)
	msg = strings.TrimSuffix(msg, "\n")
	c.t.Log(msg)
	return origLen, nil
}
