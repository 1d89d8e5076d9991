package satsave

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/errs"
)

func sampleHeader() *Header {
	return &Header{
		HeaderType:          supportedHeaderType,
		SaveVersion:         supportedSaveVersion,
		BuildVersion:        123456,
		SaveName:            "MySave",
		MapName:             "Persistent_Level",
		MapOptions:          "",
		SessionName:         "我的工厂",
		PlayDurationSeconds: 3661,
		SaveTicks:           637900000000000000,
		SessionVisibility:   VisibilityFriendsOnly,
		EditorObjectVersion: 1,
		ModMetadata:         "",
		ModFlags:            0,
		SaveID:              "abc-123",
		IsPartitionedWorld:  false,
		CreativeModeEnabled: true,
		Checksum:            [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		IsCheat:             false,
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	in := sampleHeader()
	w := cursor.NewWriter()
	EncodeHeader(w, in)
	r := cursor.NewReader(w.Bytes())
	out, err := DecodeHeader(r)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if !r.AtEOF() {
		t.Fatalf("%d trailing bytes", r.Remaining())
	}
}

func TestHeaderRejectsUnsupportedHeaderType(t *testing.T) {
	in := sampleHeader()
	in.HeaderType = 13
	w := cursor.NewWriter()
	EncodeHeader(w, in)
	r := cursor.NewReader(w.Bytes())
	_, err := DecodeHeader(r)
	if err == nil {
		t.Fatal("expected error for unsupported header type")
	}
	if pe, ok := errs.As(err); !ok || pe.Code != errs.UnsupportedSaveHeaderVersion {
		t.Fatalf("expected UnsupportedSaveHeaderVersion, got %v", err)
	}
}

func TestHeaderRejectsUnsupportedSaveVersion(t *testing.T) {
	in := sampleHeader()
	in.SaveVersion = 51
	w := cursor.NewWriter()
	EncodeHeader(w, in)
	r := cursor.NewReader(w.Bytes())
	_, err := DecodeHeader(r)
	if err == nil {
		t.Fatal("expected error for unsupported save version")
	}
	if pe, ok := errs.As(err); !ok || pe.Code != errs.UnsupportedSaveVersion {
		t.Fatalf("expected UnsupportedSaveVersion, got %v", err)
	}
}

func TestHeaderRejectsInvalidIsCheatFlag(t *testing.T) {
	in := sampleHeader()
	w := cursor.NewWriter()
	EncodeHeader(w, in)
	data := w.Bytes()
	// IsCheat is the final u32 flag; stomp it with a value outside {0,1}.
	data[len(data)-1] = 7

	r := cursor.NewReader(data)
	_, err := DecodeHeader(r)
	if err == nil {
		t.Fatal("expected invalid_flag error")
	}
	if pe, ok := errs.As(err); !ok || pe.Code != errs.InvalidFlag {
		t.Fatalf("expected InvalidFlag, got %v", err)
	}
}

func TestPlayDurationAndSaveTime(t *testing.T) {
	h := &Header{PlayDurationSeconds: 90}
	if h.PlayDuration() != 90*time.Second {
		t.Fatalf("PlayDuration: got %v", h.PlayDuration())
	}

	// epochOffsetDays*secondsPerDay ticks-worth of seconds corresponds to
	// the POSIX epoch itself (1970-01-01T00:00:00Z).
	h2 := &Header{SaveTicks: uint64(epochOffsetDays*secondsPerDay) * ticksPerSecond}
	got := h2.SaveTime()
	want := time.Unix(0, 0).UTC()
	if !got.Equal(want) {
		t.Fatalf("SaveTime: got %v, want %v", got, want)
	}
}
