package chunkzlib

import (
	"bytes"
	"testing"

	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/errs"
)

func compressAndDecompress(t *testing.T, payload []byte) []byte {
	t.Helper()
	w := cursor.NewWriter()
	if err := Compress(w, payload); err != nil {
		t.Fatalf("Compress: %v", err)
	}
	r := cursor.NewReader(w.Bytes())
	out, err := Decompress(r)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	return out
}

func TestRoundTripEmptyPayload(t *testing.T) {
	out := compressAndDecompress(t, nil)
	if len(out) != 0 {
		t.Fatalf("expected empty payload, got %d bytes", len(out))
	}
}

func TestRoundTripSmallPayload(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog")
	out := compressAndDecompress(t, payload)
	if !bytes.Equal(out, payload) {
		t.Fatalf("round trip mismatch: got %q, want %q", out, payload)
	}
}

func TestCompressSplitsLargePayload(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, MaxChunkSize*2+17)
	w := cursor.NewWriter()
	if err := Compress(w, payload); err != nil {
		t.Fatal(err)
	}

	r := cursor.NewReader(w.Bytes())
	chunks := 0
	for !r.AtEOF() {
		chunk, err := decompressChunk(r)
		if err != nil {
			t.Fatalf("chunk %d: %v", chunks, err)
		}
		if len(chunk) > MaxChunkSize {
			t.Fatalf("chunk %d exceeds MaxChunkSize: %d", chunks, len(chunk))
		}
		chunks++
	}
	if want := 3; chunks != want {
		t.Fatalf("expected %d chunks, got %d", want, chunks)
	}

	r2 := cursor.NewReader(w.Bytes())
	out, err := Decompress(r2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, payload) {
		t.Fatal("large payload round trip mismatch")
	}
}

func TestCorruptMagicWordIsFatal(t *testing.T) {
	w := cursor.NewWriter()
	if err := Compress(w, []byte("hello")); err != nil {
		t.Fatal(err)
	}
	data := w.Bytes()
	data[0], data[1], data[2], data[3] = 0, 0, 0, 0

	r := cursor.NewReader(data)
	_, err := Decompress(r)
	if err == nil {
		t.Fatal("expected error on corrupt magic word")
	}
	if pe, ok := errs.As(err); !ok || pe.Code != errs.InvalidFile {
		t.Fatalf("expected InvalidFile, got %v", err)
	}
}
