package satsave

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/errs"
)

func TestParseEmitRoundTrip(t *testing.T) {
	header := sampleHeader()
	body := minimalBody()

	data, err := Emit(header, body)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}

	gotHeader, gotBody, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(header, gotHeader); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(bodyFieldsWithoutSize(body), bodyFieldsWithoutSize(gotBody)); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsCorruptChunkMagic(t *testing.T) {
	header := sampleHeader()
	body := minimalBody()
	data, err := Emit(header, body)
	if err != nil {
		t.Fatal(err)
	}

	// The chunk container starts right after the fixed header fields;
	// Emit's header writer content length tells us where.
	hdrLen := headerByteLength(header)
	for i := 0; i < 4; i++ {
		data[hdrLen+i] = 0
	}

	_, _, err = Parse(data)
	if err == nil {
		t.Fatal("expected error for corrupt chunk magic")
	}
	if pe, ok := errs.As(err); !ok || pe.Code != errs.InvalidFile {
		t.Fatalf("expected InvalidFile, got %v", err)
	}
}

func headerByteLength(h *Header) int {
	w := cursor.NewWriter()
	EncodeHeader(w, h)
	return len(w.Bytes())
}
