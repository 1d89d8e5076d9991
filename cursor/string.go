package cursor

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/lordralinc/sat-sav-parse/errs"
)

// String reads a length-prefixed string. A positive count is the UTF-8
// byte length including a trailing NUL; a negative count is the number
// of UTF-16LE code units, also including a trailing NUL. A zero count is
// the empty string with no body at all.
func (r *Reader) String() (string, error) {
	start := r.offset
	n, err := r.I32()
	if err != nil {
		return "", err
	}
	switch {
	case n == 0:
		return "", nil
	case n > 0:
		body, err := r.Raw(int(n))
		if err != nil {
			return "", errs.Wrap(err, "string body at offset %d (length %d)", start, n)
		}
		if len(body) == 0 {
			return "", nil
		}
		raw := body[:len(body)-1] // drop trailing NUL
		if !utf8.Valid(raw) {
			return "", errs.New(errs.StringDecodeFailure, "invalid utf-8 string at offset %d (length %d)", start, n)
		}
		return string(raw), nil
	default:
		units := int(-n)
		body, err := r.Raw(units * 2)
		if err != nil {
			return "", errs.Wrap(err, "utf-16 string body at offset %d (units %d)", start, units)
		}
		body = body[:len(body)-2] // drop trailing NUL unit
		codes := make([]uint16, len(body)/2)
		for i := range codes {
			codes[i] = binary.LittleEndian.Uint16(body[i*2:])
		}
		return string(utf16.Decode(codes)), nil
	}
}

// isASCII reports whether every byte of s is a 7-bit ASCII code point,
// the boundary this format uses to choose between the UTF-8 and
// UTF-16LE string encodings.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// AddString writes s using the UTF-8 encoding for all-ASCII content and
// the UTF-16LE encoding otherwise, each NUL-terminated and length-prefixed
// per String's format.
func (w *Writer) AddString(s string) *Writer {
	if s == "" {
		return w.AddI32(0)
	}
	if isASCII(s) {
		w.AddI32(int32(len(s) + 1))
		w.AddRaw([]byte(s))
		w.AddU8(0)
		return w
	}
	units := utf16.Encode([]rune(s))
	w.AddI32(-int32(len(units) + 1))
	buf := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[i*2:], u)
	}
	w.AddRaw(buf)
	w.AddRaw([]byte{0, 0})
	return w
}
