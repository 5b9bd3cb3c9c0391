package fdb

import (
	"errors"
	"strings"
	"testing"
)

func TestDataError_ErrorAndUnwrap(t *testing.T) {
	t.Run("small data", func(t *testing.T) {
		inner := errors.New("inner")
		err := dataErrf([]byte{0xAA, 0xBB}, 1, inner, "oops")
		var de *DataError
		if !errors.As(err, &de) {
			t.Fatalf("err = %T, wanted *DataError", err)
		}
		if !errors.Is(err, inner) {
			t.Fatalf("errors.Is(err, inner) = false, wanted true")
		}
		s := err.Error()
		if !strings.Contains(s, "oops") || !strings.Contains(s, "inner") || !strings.Contains(s, "aabb") {
			t.Fatalf("err.Error() = %q, wanted message with oops/inner/aabb", s)
		}
	})

	t.Run("excerpt around offset", func(t *testing.T) {
		data := make([]byte, 200)
		for i := range data {
			data[i] = byte(i)
		}
		s := dataErrf(data, 100, nil, "oops").Error()
		if !strings.Contains(s, "@0x64 of 200") || !strings.Contains(s, "545556") || strings.Contains(s, "000102") {
			t.Fatalf("err.Error() = %q, wanted excerpt around offset 100", s)
		}
	})

	t.Run("offset past end", func(t *testing.T) {
		s := dataErrf([]byte{1, 2, 3}, 50, errOutOfRange, "far").Error()
		if !strings.Contains(s, "far") || !strings.Contains(s, "out of range") {
			t.Fatalf("err.Error() = %q", s)
		}
	})
}

func TestLoadError(t *testing.T) {
	inner := errors.New("inner")
	err := loadErrf("Objects", inner, "column %d name", 3)
	if !errors.Is(err, inner) {
		t.Fatalf("errors.Is(err, inner) = false, wanted true")
	}
	if s, e := err.Error(), "fdb: load: table Objects: column 3 name: inner"; s != e {
		t.Fatalf("Error() = %q, wanted %q", s, e)
	}
	if s, e := loadErrf("", nil, "file too short").Error(), "fdb: load: file too short"; s != e {
		t.Fatalf("Error() = %q, wanted %q", s, e)
	}
}

func TestParseError(t *testing.T) {
	_, err := ParseValue("yes", TypeBoolean)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %T, wanted *ParseError", err)
	}
	if pe.Input != "yes" || pe.Type != TypeBoolean {
		t.Fatalf("ParseError = %+v", pe)
	}
	if !errors.Is(err, errNotBoolean) {
		t.Fatalf("errors.Is(err, errNotBoolean) = false")
	}
}
