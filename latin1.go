package fdb

import (
	"bytes"
	"encoding/json"

	"golang.org/x/text/encoding/charmap"
)

// Latin1 is an ISO-8859-1 byte string. Strings decoded from a database
// alias its memory and stay valid until the database is closed.
type Latin1 []byte

// EncodeLatin1 converts a UTF-8 string. Runes above U+00FF cannot be
// represented and produce an error.
func EncodeLatin1(s string) (Latin1, error) {
	if isASCII(s) {
		return Latin1(s), nil
	}
	b, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return nil, err
	}
	return Latin1(b), nil
}

// MustLatin1 is EncodeLatin1 for literals known to be representable.
func MustLatin1(s string) Latin1 {
	return must(EncodeLatin1(s))
}

// Decode converts the string to UTF-8.
func (s Latin1) Decode() string {
	if isASCII(s) {
		return string(s)
	}
	b, err := charmap.ISO8859_1.NewDecoder().Bytes(s)
	if err != nil {
		// every byte is a valid ISO-8859-1 code point
		panic(err)
	}
	return string(b)
}

func (s Latin1) String() string {
	return s.Decode()
}

func (s Latin1) Equal(o Latin1) bool {
	return bytes.Equal(s, o)
}

func (s Latin1) IsEmpty() bool {
	return len(s) == 0
}

func (s Latin1) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Decode())
}

func isASCII[S ~string | ~[]byte](s S) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
