package fdb

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Row is a decoded row header. Fields are read from the file on access.
type Row struct {
	tbl    *Table
	addr   uint32
	count  uint32
	fields uint32
}

func (t *Table) rowAt(addr uint32) Row {
	d := t.db.dec
	r := Row{
		tbl:    t,
		addr:   addr,
		count:  d.mustU32(addr),
		fields: d.mustU32(addr + 4),
	}
	ensure(d.Array(r.fields, r.count, fieldDataSize))
	return r
}

func (r Row) Table() *Table {
	return r.tbl
}

// RowID is the offset of the row header within the file. It identifies the row
// stably for the lifetime of the file.
func (r Row) RowID() uint32 {
	return r.addr
}

func (r Row) IsValid() bool {
	return r.tbl != nil
}

func (r Row) FieldCount() int {
	return int(r.count)
}

func (r Row) FieldAt(i int) (Value, bool) {
	if i < 0 || i >= int(r.count) {
		return Value{}, false
	}
	return r.decodeField(uint32(i)), true
}

// Fields decodes every field in order.
func (r Row) Fields() []Value {
	vals := make([]Value, r.count)
	for i := range r.count {
		vals[i] = r.decodeField(i)
	}
	return vals
}

// PrimaryKey is the first field; rows without fields yield Nothing.
func (r Row) PrimaryKey() Value {
	v, _ := r.FieldAt(0)
	return v
}

func (r Row) decodeField(i uint32) Value {
	d := r.tbl.db.dec
	addr := r.fields + i*fieldDataSize
	typ := ValueType(d.mustU32(addr))
	raw := d.mustU32(addr + 4)
	switch typ {
	case TypeNothing:
		return Value{}
	case TypeInteger:
		return Integer(int32(raw))
	case TypeFloat:
		return Float(math.Float32frombits(raw))
	case TypeText:
		return Text(d.mustCString(raw))
	case TypeVarChar:
		return VarChar(d.mustCString(raw))
	case TypeBoolean:
		return Boolean(raw != 0)
	case TypeBigInt:
		return BigInt(must(d.I64(raw)))
	default:
		panic(dataErrf(d.Orig, int(addr), nil, "%s: unknown field type %d", r.tbl.name, uint32(typ)))
	}
}

func (r Row) field(i int, want ValueType) Value {
	v, ok := r.FieldAt(i)
	if !ok {
		panic(r.decodeErr(i, want, TypeNothing))
	}
	return v
}

func (r Row) decodeErr(i int, want, got ValueType) *DecodeError {
	var name string
	if c, ok := r.tbl.ColumnAt(i); ok {
		name = c.Name
	}
	return &DecodeError{Table: r.tbl.name, Column: name, Row: r.addr, Want: want, Got: got}
}

// Integer decodes a mandatory INTEGER field, panicking with *DecodeError on
// any other stored type.
func (r Row) Integer(i int) int32 {
	v := r.field(i, TypeInteger)
	n, ok := v.AsInteger()
	if !ok {
		panic(r.decodeErr(i, TypeInteger, v.Type()))
	}
	return n
}

// OptInteger maps a stored NOTHING to ok == false.
func (r Row) OptInteger(i int) (int32, bool) {
	v := r.field(i, TypeInteger)
	if v.IsNothing() {
		return 0, false
	}
	n, ok := v.AsInteger()
	if !ok {
		panic(r.decodeErr(i, TypeInteger, v.Type()))
	}
	return n, true
}

func (r Row) Float(i int) float32 {
	v := r.field(i, TypeFloat)
	f, ok := v.AsFloat()
	if !ok {
		panic(r.decodeErr(i, TypeFloat, v.Type()))
	}
	return f
}

func (r Row) OptFloat(i int) (float32, bool) {
	v := r.field(i, TypeFloat)
	if v.IsNothing() {
		return 0, false
	}
	f, ok := v.AsFloat()
	if !ok {
		panic(r.decodeErr(i, TypeFloat, v.Type()))
	}
	return f, true
}

// Text decodes a TEXT or VARCHAR field.
func (r Row) Text(i int) Latin1 {
	v := r.field(i, TypeText)
	s, ok := v.AsText()
	if !ok {
		s, ok = v.AsVarChar()
	}
	if !ok {
		panic(r.decodeErr(i, TypeText, v.Type()))
	}
	return s
}

func (r Row) OptText(i int) (Latin1, bool) {
	v := r.field(i, TypeText)
	if v.IsNothing() {
		return nil, false
	}
	return r.Text(i), true
}

func (r Row) Boolean(i int) bool {
	v := r.field(i, TypeBoolean)
	b, ok := v.AsBoolean()
	if !ok {
		panic(r.decodeErr(i, TypeBoolean, v.Type()))
	}
	return b
}

func (r Row) OptBoolean(i int) (bool, bool) {
	v := r.field(i, TypeBoolean)
	if v.IsNothing() {
		return false, false
	}
	return r.Boolean(i), true
}

func (r Row) BigInt(i int) int64 {
	v := r.field(i, TypeBigInt)
	n, ok := v.AsBigInt()
	if !ok {
		panic(r.decodeErr(i, TypeBigInt, v.Type()))
	}
	return n
}

func (r Row) OptBigInt(i int) (int64, bool) {
	v := r.field(i, TypeBigInt)
	if v.IsNothing() {
		return 0, false
	}
	return r.BigInt(i), true
}

// MarshalJSON writes the row as an object keyed by column name, in column
// order. Fields beyond the declared columns are keyed by position.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := range int(r.count) {
		if i > 0 {
			buf.WriteByte(',')
		}
		var name string
		if c, ok := r.tbl.ColumnAt(i); ok {
			name = c.Name
		} else {
			name = "#" + strconv.Itoa(i)
		}
		buf.Write(must(json.Marshal(name)))
		buf.WriteByte(':')
		buf.Write(must(r.decodeField(uint32(i)).MarshalJSON()))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
