// Package cursor implements the primitive binary codec shared by every
// layer of the save-file format: little-endian integers, IEEE floats,
// length-prefixed UTF-8/UTF-16LE strings, and the size-bracket scoping
// used throughout the property and level codecs.
package cursor

import (
	"encoding/binary"
	"log/slog"
	"math"

	"github.com/lordralinc/sat-sav-parse/errs"
	"github.com/lordralinc/sat-sav-parse/internal/diag"
)

// Reader is a mutable byte cursor: it owns a read-only buffer and an
// offset into it. It is not safe for concurrent use, matching the
// codec's sequential, single-threaded execution model.
type Reader struct {
	data   []byte
	offset int
	Diag   diag.Context
	Logger *slog.Logger
}

// Option configures a Reader or Writer at construction time.
type Option func(*options)

type options struct {
	diag   diag.Context
	logger *slog.Logger
}

// WithDiagContext seeds the starting diagnostic context.
func WithDiagContext(ctx diag.Context) Option {
	return func(o *options) { o.diag = ctx }
}

// WithLogger attaches a structured logger for trace-level instrumentation.
// A nil logger (the default) disables tracing entirely.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func resolveOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewReader wraps data starting at offset 0.
func NewReader(data []byte, opts ...Option) *Reader {
	o := resolveOptions(opts)
	return &Reader{data: data, Diag: o.diag, Logger: o.logger}
}

// NewReaderAt wraps data starting at the given offset, used to parse a
// region that was already located within a larger buffer.
func NewReaderAt(data []byte, offset int, opts ...Option) *Reader {
	r := NewReader(data, opts...)
	r.offset = offset
	return r
}

// Offset returns the current read position.
func (r *Reader) Offset() int { return r.offset }

// Len returns the total buffer length.
func (r *Reader) Len() int { return len(r.data) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.offset }

// AtEOF reports whether the cursor has consumed the entire buffer.
func (r *Reader) AtEOF() bool { return r.offset >= len(r.data) }

// Raw returns the next n bytes and advances the cursor. Overruns are
// fatal invalid_file errors per the format's bounds-checking contract.
func (r *Reader) Raw(n int) ([]byte, error) {
	if n < 0 || r.offset+n > len(r.data) {
		return nil, errs.New(errs.InvalidFile, "offset %d too large in %d-byte data (want %d bytes)", r.offset, len(r.data), n)
	}
	out := r.data[r.offset : r.offset+n]
	r.offset += n
	return out, nil
}

// RawAt rewinds the cursor to offset and reads n bytes from there,
// leaving the cursor at offset+n. Used by the fallback paths that must
// discard a partially attempted decode and re-read its region opaquely.
func (r *Reader) RawAt(offset, n int) ([]byte, error) {
	r.offset = offset
	return r.Raw(n)
}

func (r *Reader) U8() (uint8, error) {
	b, err := r.Raw(1)
	if err != nil {
		return 0, err
	}
	diag.Trace(r.Logger, r.Diag, "get u8", "value", b[0])
	return b[0], nil
}

func (r *Reader) I8() (int8, error) {
	v, err := r.U8()
	return int8(v), err
}

func (r *Reader) U32() (uint32, error) {
	b, err := r.Raw(4)
	if err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(b)
	diag.Trace(r.Logger, r.Diag, "get u32", "value", v)
	return v, nil
}

func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

func (r *Reader) U64() (uint64, error) {
	b, err := r.Raw(8)
	if err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(b)
	diag.Trace(r.Logger, r.Diag, "get u64", "value", v)
	return v, nil
}

func (r *Reader) I64() (int64, error) {
	v, err := r.U64()
	return int64(v), err
}

func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *Reader) F64() (float64, error) {
	v, err := r.U64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// U8Bool reads a single byte constrained to {0,1}.
func (r *Reader) U8Bool() (bool, error) {
	start := r.offset
	v, err := r.U8()
	if err != nil {
		return false, err
	}
	if v != 0 && v != 1 {
		return false, errs.New(errs.InvalidFlag, "flag value is %d at offset %d, valid values: (0, 1)", v, start)
	}
	return v == 1, nil
}

// U32Bool reads a 4-byte flag constrained to {0,1}.
func (r *Reader) U32Bool() (bool, error) {
	start := r.offset
	v, err := r.U32()
	if err != nil {
		return false, err
	}
	if v != 0 && v != 1 {
		return false, errs.New(errs.InvalidFlag, "flag value is %d at offset %d, valid values: (0, 1)", v, start)
	}
	return v == 1, nil
}

// ExpectSize runs fn and asserts the cursor advanced by exactly n bytes,
// mirroring utils.py's expect_size scoped context manager.
func (r *Reader) ExpectSize(n int, label string, fn func() error) error {
	start := r.offset
	if err := fn(); err != nil {
		return err
	}
	if diff := r.offset - start; diff != n {
		return errs.New(errs.InvalidSize, "%s: invalid size %d, expected %d", label, diff, n)
	}
	return nil
}

// Confirm reads a value via parse and fails with code if it doesn't equal
// expected, mirroring confirm_basic_type.
func Confirm[T comparable](r *Reader, parse func() (T, error), expected T, code errs.Code, label string) (T, error) {
	v, err := parse()
	if err != nil {
		var zero T
		return zero, err
	}
	if v != expected {
		return v, errs.New(code, "%s: value %v does not match expected %v", label, v, expected)
	}
	return v, nil
}

// Peek runs fn starting at the current offset and rewinds afterwards,
// letting a dispatcher inspect a discriminant before committing to a
// decoder that re-reads it from scratch (the source's habit of taking an
// unadvanced des.offset and feeding it to des.parse/parse_string).
func Peek[T any](r *Reader, fn func(r *Reader) (T, error)) (T, error) {
	start := r.offset
	v, err := fn(r)
	r.offset = start
	return v, err
}

// Get runs fn as a named sub-decoder: it derives a child diagnostic
// context tagging the current struct name and offset, asserts the cursor
// advanced (an implementation bug otherwise, per invalid_deserializer),
// and logs a trace record of the result. Mirrors SFSaveDeserializer.get /
// get_fn.
func Get[T any](r *Reader, name string, fn func(r *Reader) (T, error)) (T, error) {
	start := r.offset
	savedDiag := r.Diag
	r.Diag = savedDiag.With("struct", name).WithOffset(start)

	value, err := fn(r)

	if err != nil {
		r.Diag = savedDiag
		var zero T
		return zero, err
	}
	if r.offset == start {
		r.Diag = savedDiag
		var zero T
		return zero, errs.New(errs.InvalidDeserializer, "deserializer %s did not advance offset (%d)", name, start)
	}
	diag.Trace(r.Logger, r.Diag, "GET", "from", start, "to", r.offset, "struct", name, "value", diag.Preview(value))
	r.Diag = savedDiag
	return value, nil
}
