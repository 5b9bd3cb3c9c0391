package fdb

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestValueEqual(t *testing.T) {
	nan := Float(float32(math.NaN()))
	tests := []struct {
		a, b Value
		want bool
	}{
		{Integer(5), Integer(5), true},
		{Integer(5), Integer(6), false},
		{Integer(5), BigInt(5), false},
		{Text(Latin1("x")), Text(Latin1("x")), true},
		{Text(Latin1("x")), VarChar(Latin1("x")), false},
		{Text(Latin1("x")), Text(Latin1("X")), false},
		{Boolean(true), Boolean(true), true},
		{Boolean(true), Boolean(false), false},
		{Nothing(), Nothing(), true},
		{Nothing(), Integer(0), false},
		{Float(1.25), Float(1.25), true},
		{nan, nan, false},
		{Float(float32(math.Copysign(0, -1))), Float(0), true},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%v(%v).Equal(%v(%v)) = %v, wanted %v", tt.a.Type(), tt.a, tt.b.Type(), tt.b, got, tt.want)
		}
	}
}

func TestValueAccessors(t *testing.T) {
	if n, ok := Integer(-7).AsInteger(); !ok || n != -7 {
		t.Errorf("AsInteger = %v, %v", n, ok)
	}
	if _, ok := Integer(-7).AsBigInt(); ok {
		t.Errorf("Integer.AsBigInt ok = true")
	}
	if n, ok := BigInt(math.MinInt64).AsBigInt(); !ok || n != math.MinInt64 {
		t.Errorf("AsBigInt = %v, %v", n, ok)
	}
	if f, ok := Float(2.5).AsFloat(); !ok || f != 2.5 {
		t.Errorf("AsFloat = %v, %v", f, ok)
	}
	if s, ok := VarChar(Latin1("v")).AsVarChar(); !ok || string(s) != "v" {
		t.Errorf("AsVarChar = %q, %v", s, ok)
	}
	if _, ok := VarChar(Latin1("v")).AsText(); ok {
		t.Errorf("VarChar.AsText ok = true")
	}
	if !Nothing().IsNothing() || (Value{}).Type() != TypeNothing {
		t.Errorf("zero Value is not Nothing")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		typ   ValueType
		want  Value
	}{
		{"42", TypeInteger, Integer(42)},
		{"-2147483648", TypeInteger, Integer(math.MinInt32)},
		{"9000000000", TypeBigInt, BigInt(9000000000)},
		{"1.5", TypeFloat, Float(1.5)},
		{"true", TypeBoolean, Boolean(true)},
		{"false", TypeBoolean, Boolean(false)},
		{"Café", TypeText, Text(Latin1("Caf\xe9"))},
		{"", TypeText, Text(Latin1{})},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.input, tt.typ)
		if err != nil {
			t.Errorf("ParseValue(%q, %v) failed: %v", tt.input, tt.typ, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseValue(%q, %v) = %v, wanted %v", tt.input, tt.typ, got, tt.want)
		}
	}

	bad := []struct {
		input string
		typ   ValueType
	}{
		{"abc", TypeInteger},
		{"2147483648", TypeInteger},
		{" 1", TypeInteger},
		{"1", TypeBoolean},
		{"TRUE", TypeBoolean},
		{"x", TypeFloat},
		{"日本", TypeText},
		{"a", TypeVarChar},
		{"", TypeNothing},
	}
	for _, tt := range bad {
		_, err := ParseValue(tt.input, tt.typ)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParseValue(%q, %v) = %v, wanted *ParseError", tt.input, tt.typ, err)
		}
	}
}

func TestValueJSON(t *testing.T) {
	vals := []Value{
		Nothing(),
		Integer(-3),
		Float(0.5),
		Float(float32(math.Inf(1))),
		Text(Latin1("Caf\xe9")),
		Boolean(true),
		BigInt(1 << 40),
	}
	data, err := json.Marshal(vals)
	if err != nil {
		t.Fatal(err)
	}
	if a, e := string(data), `[null,-3,0.5,null,"Café",true,1099511627776]`; a != e {
		t.Fatalf("json = %s, wanted %s", a, e)
	}
}

func TestValueTypeString(t *testing.T) {
	for _, typ := range []ValueType{TypeNothing, TypeInteger, TypeFloat, TypeText, TypeBoolean, TypeBigInt, TypeVarChar} {
		back, ok := ParseValueType(typ.String())
		if !ok || back != typ {
			t.Errorf("ParseValueType(%q) = %v, %v", typ.String(), back, ok)
		}
	}
	if ValueType(2).Valid() || ValueType(7).Valid() {
		t.Errorf("codes 2 and 7 should be invalid")
	}
	if s := ValueType(2).String(); s != "UNKNOWN(2)" {
		t.Errorf("String() = %q", s)
	}
}

func TestLatin1(t *testing.T) {
	l, err := EncodeLatin1("naïve ÿ")
	if err != nil {
		t.Fatal(err)
	}
	deepEqual(t, []byte(l), []byte("na\xefve \xff"))
	if s := l.Decode(); s != "naïve ÿ" {
		t.Errorf("Decode = %q", s)
	}
	if _, err := EncodeLatin1("€"); err == nil {
		t.Errorf("EncodeLatin1(€) succeeded, wanted error")
	}
	if !Latin1(nil).IsEmpty() || Latin1("a").IsEmpty() {
		t.Errorf("IsEmpty wrong")
	}
}

func deepEqual[T any](t testing.TB, a, e T) {
	if !reflect.DeepEqual(a, e) {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}
