package fdb

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ValueType is the on-disk type code of a column or field.
type ValueType uint32

const (
	TypeNothing ValueType = 0
	TypeInteger ValueType = 1
	TypeFloat   ValueType = 3
	TypeText    ValueType = 4
	TypeBoolean ValueType = 5
	TypeBigInt  ValueType = 6
	TypeVarChar ValueType = 8
)

var valueTypeNames = map[ValueType]string{
	TypeNothing: "NOTHING",
	TypeInteger: "INTEGER",
	TypeFloat:   "FLOAT",
	TypeText:    "TEXT",
	TypeBoolean: "BOOLEAN",
	TypeBigInt:  "BIGINT",
	TypeVarChar: "VARCHAR",
}

func (t ValueType) Valid() bool {
	_, ok := valueTypeNames[t]
	return ok
}

func (t ValueType) String() string {
	if s, ok := valueTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint32(t))
}

func (t ValueType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// ParseValueType accepts the names returned by ValueType.String.
func ParseValueType(s string) (ValueType, bool) {
	for t, name := range valueTypeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// Value is a single field. The zero Value is Nothing.
type Value struct {
	typ  ValueType
	bits uint64
	text Latin1
}

func Nothing() Value { return Value{} }
func Integer(v int32) Value { return Value{typ: TypeInteger, bits: uint64(uint32(v))} }
func Float(v float32) Value { return Value{typ: TypeFloat, bits: uint64(math.Float32bits(v))} }
func Text(v Latin1) Value { return Value{typ: TypeText, text: v} }
func BigInt(v int64) Value { return Value{typ: TypeBigInt, bits: uint64(v)} }
func VarChar(v Latin1) Value { return Value{typ: TypeVarChar, text: v} }
func Boolean(v bool) Value {
	if v {
		return Value{typ: TypeBoolean, bits: 1}
	}
	return Value{typ: TypeBoolean}
}

func (v Value) Type() ValueType { return v.typ }
func (v Value) IsNothing() bool { return v.typ == TypeNothing }

func (v Value) AsInteger() (int32, bool) {
	return int32(uint32(v.bits)), v.typ == TypeInteger
}

func (v Value) AsFloat() (float32, bool) {
	return math.Float32frombits(uint32(v.bits)), v.typ == TypeFloat
}

func (v Value) AsText() (Latin1, bool) {
	if v.typ != TypeText {
		return nil, false
	}
	return v.text, true
}

func (v Value) AsVarChar() (Latin1, bool) {
	if v.typ != TypeVarChar {
		return nil, false
	}
	return v.text, true
}

func (v Value) AsBoolean() (bool, bool) {
	return v.bits != 0, v.typ == TypeBoolean
}

func (v Value) AsBigInt() (int64, bool) {
	return int64(v.bits), v.typ == TypeBigInt
}

// Equal compares type and value. Floats compare as IEEE numbers, so NaN is
// never equal to anything and -0 equals +0.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case TypeText, TypeVarChar:
		return v.text.Equal(o.text)
	case TypeFloat:
		a, _ := v.AsFloat()
		b, _ := o.AsFloat()
		return a == b
	default:
		return v.bits == o.bits
	}
}

// Hash is the bucket hash used by the data files for primary keys.
func (v Value) Hash() uint32 {
	switch v.typ {
	case TypeText, TypeVarChar:
		return SuperFastHash(v.text)
	default:
		return uint32(v.bits)
	}
}

// setKey is an allocation-light identity used for key-set membership.
func (v Value) setKey() string {
	var buf [9]byte
	buf[0] = byte(v.typ)
	switch v.typ {
	case TypeText, TypeVarChar:
		return string(buf[:1]) + string(v.text)
	default:
		binary.LittleEndian.PutUint64(buf[1:], v.bits)
		return string(buf[:])
	}
}

func (v Value) String() string {
	switch v.typ {
	case TypeNothing:
		return "NULL"
	case TypeInteger:
		i, _ := v.AsInteger()
		return strconv.FormatInt(int64(i), 10)
	case TypeFloat:
		f, _ := v.AsFloat()
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	case TypeText, TypeVarChar:
		return v.text.Decode()
	case TypeBoolean:
		return strconv.FormatBool(v.bits != 0)
	case TypeBigInt:
		return strconv.FormatInt(int64(v.bits), 10)
	default:
		return fmt.Sprintf("<%v>", v.typ)
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.typ {
	case TypeNothing:
		return []byte("null"), nil
	case TypeFloat:
		f, _ := v.AsFloat()
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return []byte("null"), nil
		}
		return []byte(v.String()), nil
	case TypeText, TypeVarChar:
		return v.text.MarshalJSON()
	default:
		return []byte(v.String()), nil
	}
}

// ParseValue parses client input as a value of type t, the way primary keys
// arrive in lookups. Nothing and VarChar are not parseable.
func ParseValue(s string, t ValueType) (Value, error) {
	switch t {
	case TypeInteger:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Value{}, parseErr(s, t, err)
		}
		return Integer(int32(i)), nil
	case TypeBigInt:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, parseErr(s, t, err)
		}
		return BigInt(i), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Value{}, parseErr(s, t, err)
		}
		return Float(float32(f)), nil
	case TypeBoolean:
		switch s {
		case "true":
			return Boolean(true), nil
		case "false":
			return Boolean(false), nil
		}
		return Value{}, parseErr(s, t, errNotBoolean)
	case TypeText:
		l, err := EncodeLatin1(s)
		if err != nil {
			return Value{}, parseErr(s, t, err)
		}
		return Text(l), nil
	default:
		return Value{}, parseErr(s, t, errUnparseableType)
	}
}
