// Package errs defines the error taxonomy shared by every codec package.
//
// All parsing failures surfaced to a caller are a *ParseError carrying one
// of the Code values below. Internal package boundaries wrap a *ParseError
// with golang.org/x/xerrors so offset/operation context accumulates on the
// way up, while errors.As still recovers the original code at the top.
package errs

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Code is a closed set of error classifications exposed to callers.
type Code string

const (
	Unknown                      Code = "unk"
	InvalidFlag                  Code = "invalid_flag"
	UnsupportedSaveHeaderVersion Code = "unsupported_save_header_version"
	UnsupportedSaveVersion       Code = "unsupported_save_version"
	InvalidFile                  Code = "invalid_file"
	InvalidDeserializer          Code = "invalid_deserializer"
	StringDecodeFailure          Code = "string_decode_failure"
	InvalidSize                  Code = "invalid_size"
)

// ParseError is the concrete error type returned by every decode/encode
// operation in this module that can fail on well-formed Go input (i.e.
// everything except the writer invariant panics documented on cursor.Writer).
type ParseError struct {
	Code    Code
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// New builds a ParseError, formatting Message the way xerrors.Errorf does.
func New(code Code, format string, args ...any) *ParseError {
	return &ParseError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with additional context while preserving it as the
// %w-wrapped cause, so errors.As(err, new(*ParseError)) keeps working no
// matter how many layers of Wrap are stacked on top.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return xerrors.Errorf(format+": %w", append(append([]any{}, args...), err)...)
}

// As reports whether err (or any error it wraps) is a *ParseError, and
// returns it.
func As(err error) (*ParseError, bool) {
	var pe *ParseError
	if xerrors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
