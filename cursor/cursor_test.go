package cursor

import (
	"testing"

	"github.com/lordralinc/sat-sav-parse/errs"
)

func TestPrimitiveRoundTrips(t *testing.T) {
	w := NewWriter()
	w.AddU8(0xAB).AddI8(-5).AddU32(0xDEADBEEF).AddI32(-1).
		AddU64(0x0102030405060708).AddI64(-2).
		AddF32(3.5).AddF64(-2.25).
		AddU8Bool(true).AddU32Bool(false)

	r := NewReader(w.Bytes())

	if v, err := r.U8(); err != nil || v != 0xAB {
		t.Fatalf("U8: got (%v, %v)", v, err)
	}
	if v, err := r.I8(); err != nil || v != -5 {
		t.Fatalf("I8: got (%v, %v)", v, err)
	}
	if v, err := r.U32(); err != nil || v != 0xDEADBEEF {
		t.Fatalf("U32: got (%v, %v)", v, err)
	}
	if v, err := r.I32(); err != nil || v != -1 {
		t.Fatalf("I32: got (%v, %v)", v, err)
	}
	if v, err := r.U64(); err != nil || v != 0x0102030405060708 {
		t.Fatalf("U64: got (%v, %v)", v, err)
	}
	if v, err := r.I64(); err != nil || v != -2 {
		t.Fatalf("I64: got (%v, %v)", v, err)
	}
	if v, err := r.F32(); err != nil || v != 3.5 {
		t.Fatalf("F32: got (%v, %v)", v, err)
	}
	if v, err := r.F64(); err != nil || v != -2.25 {
		t.Fatalf("F64: got (%v, %v)", v, err)
	}
	if v, err := r.U8Bool(); err != nil || v != true {
		t.Fatalf("U8Bool: got (%v, %v)", v, err)
	}
	if v, err := r.U32Bool(); err != nil || v != false {
		t.Fatalf("U32Bool: got (%v, %v)", v, err)
	}
	if !r.AtEOF() {
		t.Fatalf("expected EOF, %d bytes remaining", r.Remaining())
	}
}

func TestBoolRejectsInvalidByte(t *testing.T) {
	r := NewReader([]byte{2})
	if _, err := r.U8Bool(); err == nil {
		t.Fatal("expected error for flag value 2")
	} else if pe, ok := errs.As(err); !ok || pe.Code != errs.InvalidFlag {
		t.Fatalf("expected InvalidFlag, got %v", err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	cases := []string{"", "hello", "factory_A1", "héllo-wörld", "日本語"}
	for _, s := range cases {
		w := NewWriter()
		w.AddString(s)
		r := NewReader(w.Bytes())
		got, err := r.String()
		if err != nil {
			t.Fatalf("String(%q): %v", s, err)
		}
		if got != s {
			t.Fatalf("String round trip: got %q, want %q", got, s)
		}
		if !r.AtEOF() {
			t.Fatalf("String(%q): %d trailing bytes", s, r.Remaining())
		}
	}
}

func TestStringEncodedLength(t *testing.T) {
	w := NewWriter()
	w.AddString("abc")
	if got, want := len(w.Bytes()), 4+(3+1); got != want {
		t.Fatalf("ASCII encoded length: got %d, want %d", got, want)
	}

	w2 := NewWriter()
	w2.AddString("日")
	if got, want := len(w2.Bytes()), 4+2*(1+1); got != want {
		t.Fatalf("non-ASCII encoded length: got %d, want %d", got, want)
	}
}

func TestExpectSizeRejectsMismatch(t *testing.T) {
	w := NewWriter()
	w.AddU32(0xCAFEBABE) // 4 bytes, but we'll claim 8
	r := NewReader(w.Bytes())
	err := r.ExpectSize(8, "test region", func() error {
		_, err := r.U32()
		return err
	})
	if err == nil {
		t.Fatal("expected invalid_size error")
	}
	if pe, ok := errs.As(err); !ok || pe.Code != errs.InvalidSize {
		t.Fatalf("expected InvalidSize, got %v", err)
	}
}

func TestExpectSizeAccepts(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	err := r.ExpectSize(4, "test region", func() error {
		_, err := r.U32()
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfirmMismatch(t *testing.T) {
	r := NewReader([]byte{7})
	_, err := Confirm(r, r.U8, uint8(9), errs.Unknown, "byte")
	if err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	v, err := Peek(r, func(r *Reader) (uint32, error) { return r.U32() })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x04030201 {
		t.Fatalf("unexpected peeked value: %x", v)
	}
	if r.Offset() != 0 {
		t.Fatalf("Peek advanced the cursor to %d", r.Offset())
	}
}

func TestGetDetectsNonAdvancingDecoder(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	_, err := Get(r, "noop", func(r *Reader) (int, error) { return 0, nil })
	if err == nil {
		t.Fatal("expected invalid_deserializer error")
	}
	if pe, ok := errs.As(err); !ok || pe.Code != errs.InvalidDeserializer {
		t.Fatalf("expected InvalidDeserializer, got %v", err)
	}
}

func TestBracketBackpatchesSize(t *testing.T) {
	w := NewWriter()
	w.Bracket(4, func(w *Writer) {
		w.AddU8(1).AddU8(2).AddU8(3)
	})
	r := NewReader(w.Bytes())
	size, err := r.U32()
	if err != nil {
		t.Fatal(err)
	}
	if size != 3 {
		t.Fatalf("bracket size: got %d, want 3", size)
	}
}

func TestPatchU32AtArbitraryPosition(t *testing.T) {
	w := NewWriter()
	placeholder := w.Pos()
	w.AddU32(0)
	w.AddU32(0) // reserved field sitting between the placeholder and its region
	bodyStart := w.Pos()
	w.AddRaw([]byte{1, 2, 3, 4, 5})
	w.PatchU32At(placeholder, uint32(w.Pos()-bodyStart))

	r := NewReader(w.Bytes())
	size, err := r.U32()
	if err != nil {
		t.Fatal(err)
	}
	if size != 5 {
		t.Fatalf("patched size: got %d, want 5", size)
	}
}

func TestRawOverrunIsFatal(t *testing.T) {
	r := NewReader([]byte{1, 2})
	if _, err := r.Raw(3); err == nil {
		t.Fatal("expected overrun error")
	} else if pe, ok := errs.As(err); !ok || pe.Code != errs.InvalidFile {
		t.Fatalf("expected InvalidFile, got %v", err)
	}
}

func TestRawAtRewinds(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	r := NewReader(data)
	if _, err := r.Raw(3); err != nil {
		t.Fatal(err)
	}
	out, err := r.RawAt(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if out[0] != 2 || out[1] != 3 {
		t.Fatalf("unexpected bytes: %v", out)
	}
	if r.Offset() != 3 {
		t.Fatalf("offset after RawAt: got %d, want 3", r.Offset())
	}
}
