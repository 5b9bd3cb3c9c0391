package fdb

import (
	"math"
	"testing"
)

func TestSuperFastHash(t *testing.T) {
	tests := []struct {
		input string
		want  uint32
	}{
		{"", 0},
		{"a", 0x115ea782},
		{"ab", 0x516b8b44},
		{"abc", 0xd2be198a},
		{"abcd", 0xdad8b8db},
		{"Missions", 0xda2acdf7},
		{"UserInterface", 0x013288ee},
		{"hello world", 0xa68c6882},
		// high bytes in the tail are sign-extended
		{"\xe9", 0x69ea06c0},
		{"caf\xe9", 0xdf12d093},
		{"\xff\xfe\xfd", 0x547a507e},
	}
	for _, tt := range tests {
		if got := SuperFastHash([]byte(tt.input)); got != tt.want {
			t.Errorf("SuperFastHash(%q) = 0x%08x, wanted 0x%08x", tt.input, got, tt.want)
		}
	}
}

func TestValueHash(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want uint32
	}{
		{"integer", Integer(42), 42},
		{"negative integer", Integer(-1), 0xFFFFFFFF},
		{"bigint low bits", BigInt(0x1_0000_0007), 7},
		{"negative bigint", BigInt(-2), 0xFFFFFFFE},
		{"float", Float(1.5), math.Float32bits(1.5)},
		{"true", Boolean(true), 1},
		{"false", Boolean(false), 0},
		{"nothing", Nothing(), 0},
		{"text", Text(Latin1("abc")), 0xd2be198a},
		{"varchar", VarChar(Latin1("abc")), 0xd2be198a},
		{"empty text", Text(Latin1{}), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Hash(); got != tt.want {
				t.Errorf("%v.Hash() = 0x%x, wanted 0x%x", tt.v, got, tt.want)
			}
		})
	}
}
