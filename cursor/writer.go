package cursor

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/orcaman/writerseeker"

	"github.com/lordralinc/sat-sav-parse/internal/diag"
)

// Writer is the encode-side counterpart of Reader. It is backed by a
// writerseeker.WriterSeeker so that Bracket can backpatch a size prefix
// after writing the bracketed body, without a separate buffering pass.
//
// Writer never returns an error from its Add* methods: a write against an
// in-memory writerseeker buffer can only fail by running out of memory,
// which this package treats as an unrecoverable invariant violation (it
// panics) rather than a value every caller must check.
type Writer struct {
	ws     *writerseeker.WriterSeeker
	length int
	Diag   diag.Context
	Logger *slog.Logger
}

// NewWriter returns an empty Writer.
func NewWriter(opts ...Option) *Writer {
	o := resolveOptions(opts)
	return &Writer{ws: &writerseeker.WriterSeeker{}, Diag: o.diag, Logger: o.logger}
}

// Pos returns the number of bytes written so far (the position new bytes
// are appended at).
func (w *Writer) Pos() int { return w.length }

func (w *Writer) mustWrite(p []byte) {
	n, err := w.ws.Write(p)
	if err != nil {
		panic(fmt.Errorf("cursor: writer invariant broken: %w", err))
	}
	w.length += n
}

// AddRaw appends p verbatim.
func (w *Writer) AddRaw(p []byte) *Writer {
	w.mustWrite(p)
	return w
}

func (w *Writer) AddU8(v uint8) *Writer {
	w.mustWrite([]byte{v})
	return w
}

func (w *Writer) AddI8(v int8) *Writer { return w.AddU8(uint8(v)) }

func (w *Writer) AddU32(v uint32) *Writer {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return w.AddRaw(buf)
}

func (w *Writer) AddI32(v int32) *Writer { return w.AddU32(uint32(v)) }

func (w *Writer) AddU64(v uint64) *Writer {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return w.AddRaw(buf)
}

func (w *Writer) AddI64(v int64) *Writer { return w.AddU64(uint64(v)) }

func (w *Writer) AddF32(v float32) *Writer { return w.AddU32(math.Float32bits(v)) }

func (w *Writer) AddF64(v float64) *Writer { return w.AddU64(math.Float64bits(v)) }

// AddU8Bool writes v as a single 0/1 byte.
func (w *Writer) AddU8Bool(v bool) *Writer {
	if v {
		return w.AddU8(1)
	}
	return w.AddU8(0)
}

// AddU32Bool writes v as a 4-byte 0/1 flag.
func (w *Writer) AddU32Bool(v bool) *Writer {
	if v {
		return w.AddU32(1)
	}
	return w.AddU32(0)
}

// Bracket reserves a sizeWidth-byte placeholder, runs fn to write the
// bracketed body, then seeks back and patches the placeholder with the
// body's actual length in bytes. sizeWidth must be 4 or 8.
func (w *Writer) Bracket(sizeWidth int, fn func(w *Writer)) {
	placeholder := w.length
	w.mustWrite(make([]byte, sizeWidth))

	bodyStart := w.length
	fn(w)
	bodySize := w.length - bodyStart

	if _, err := w.ws.Seek(int64(placeholder), io.SeekStart); err != nil {
		panic(fmt.Errorf("cursor: writer invariant broken: %w", err))
	}
	patch := make([]byte, sizeWidth)
	switch sizeWidth {
	case 4:
		binary.LittleEndian.PutUint32(patch, uint32(bodySize))
	case 8:
		binary.LittleEndian.PutUint64(patch, uint64(bodySize))
	default:
		panic(fmt.Errorf("cursor: unsupported bracket width %d", sizeWidth))
	}
	if _, err := w.ws.Write(patch); err != nil {
		panic(fmt.Errorf("cursor: writer invariant broken: %w", err))
	}
	if _, err := w.ws.Seek(int64(w.length), io.SeekStart); err != nil {
		panic(fmt.Errorf("cursor: writer invariant broken: %w", err))
	}
}

// PatchU32At overwrites the 4 bytes at pos with v's little-endian
// encoding, used where a size or count prefix must be backfilled at a
// position other than the one Bracket's own placeholder/body adjacency
// assumes (SpawnData's size field, which is followed by two reserved
// zero fields before the region it actually measures).
func (w *Writer) PatchU32At(pos int, v uint32) {
	if _, err := w.ws.Seek(int64(pos), io.SeekStart); err != nil {
		panic(fmt.Errorf("cursor: writer invariant broken: %w", err))
	}
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	if _, err := w.ws.Write(buf); err != nil {
		panic(fmt.Errorf("cursor: writer invariant broken: %w", err))
	}
	if _, err := w.ws.Seek(int64(w.length), io.SeekStart); err != nil {
		panic(fmt.Errorf("cursor: writer invariant broken: %w", err))
	}
}

// Bytes materializes the full written content, independent of any
// in-progress Bracket backpatch seeking.
func (w *Writer) Bytes() []byte {
	b, err := io.ReadAll(w.ws.Reader())
	if err != nil {
		panic(fmt.Errorf("cursor: writer invariant broken: %w", err))
	}
	return b
}
