package fdb

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errNotBoolean      = errors.New(`expected "true" or "false"`)
	errUnparseableType = errors.New("type cannot be parsed from text")
	errUnterminated    = errors.New("unterminated string")
	errOutOfRange      = errors.New("offset out of range")
)

// DataError reports malformed bytes at a specific offset of the file.
type DataError struct {
	Data []byte
	Off  int
	Err  error
	Msg  string
}

func dataErrf(data []byte, off int, err error, format string, args ...any) error {
	return &DataError{data, off, err, fmt.Sprintf(format, args...)}
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func (e *DataError) Error() string {
	const before = 16
	const after = 32
	n := len(e.Data)
	start, end := e.Off-before, e.Off+after
	start = max(0, min(start, n))
	end = max(start, min(end, n))
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: @0x%x of %d: %x", e.Msg, e.Err, e.Off, n, e.Data[start:end])
	} else {
		return fmt.Sprintf("%s: @0x%x of %d: %x", e.Msg, e.Off, n, e.Data[start:end])
	}
}

// LoadError is returned by Open when the directory of tables is malformed.
type LoadError struct {
	Table string
	Msg   string
	Err   error
}

func loadErrf(table string, err error, format string, args ...any) error {
	return &LoadError{table, fmt.Sprintf(format, args...), err}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Error() string {
	var buf strings.Builder
	buf.WriteString("fdb: load")
	if e.Table != "" {
		buf.WriteString(": table ")
		buf.WriteString(e.Table)
	}
	if e.Msg != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Msg)
	}
	if e.Err != nil {
		buf.WriteString(": ")
		buf.WriteString(e.Err.Error())
	}
	return buf.String()
}

// ParseError is returned when client input cannot be read as a value of the
// requested type.
type ParseError struct {
	Input string
	Type  ValueType
	Err   error
}

func parseErr(input string, t ValueType, err error) error {
	return &ParseError{input, t, err}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fdb: cannot parse %q as %v: %v", e.Input, e.Type, e.Err)
}

// DecodeError is the panic value raised when a stored field does not have
// the type its reader expects. The files are trusted, so this indicates a
// schema mismatch rather than a recoverable condition.
type DecodeError struct {
	Table  string
	Column string
	Row    uint32
	Want   ValueType
	Got    ValueType
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("fdb: %s.%s (row @0x%x): stored %v, wanted %v", e.Table, e.Column, e.Row, e.Got, e.Want)
}
