package satsave

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/level"
	"github.com/lordralinc/sat-sav-parse/objref"
)

func emptyGrids() [gridCount]LevelGroupingGrid {
	names := [gridCount]string{"MainGrid", "LandscapeGrid", "ExplorationGrid", "FoliageGrid", "HLOD0_256m_1023m"}
	var grids [gridCount]LevelGroupingGrid
	for i, n := range names {
		grids[i] = LevelGroupingGrid{GridName: n, Levels: []LevelInfo{}}
	}
	return grids
}

func minimalBody() *Body {
	return &Body{
		TotalBodySize: 0,
		Unknown1:      0,
		Unknown2:      0,
		Grids:         emptyGrids(),
		Sublevels:     []*level.Level{},
		Persistent:    &level.Level{IsPersistent: true, Entries: []level.Entry{}},
		References:    []objref.Reference{},
	}
}

// bodyFieldsWithoutSize returns a copy of b with TotalBodySize zeroed, for
// comparing everything EncodeBody round-trips except the size field, which
// it always recomputes rather than carrying over.
func bodyFieldsWithoutSize(b *Body) *Body {
	cp := *b
	cp.TotalBodySize = 0
	return &cp
}

func TestBodyRoundTripMinimal(t *testing.T) {
	in := minimalBody()
	w := cursor.NewWriter()
	EncodeBody(w, in)
	data := w.Bytes()
	r := cursor.NewReader(data)
	out, err := DecodeBody(r)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(bodyFieldsWithoutSize(in), bodyFieldsWithoutSize(out)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if want := uint64(len(data) - 8); out.TotalBodySize != want {
		t.Fatalf("TotalBodySize: got %d, want %d", out.TotalBodySize, want)
	}
	if !r.AtEOF() {
		t.Fatalf("%d trailing bytes", r.Remaining())
	}
}

func TestBodyRoundTripWithSublevelsAndRefs(t *testing.T) {
	in := minimalBody()
	in.Sublevels = []*level.Level{
		{
			IsPersistent:       false,
			SublevelName:       "Sublevel_Factory",
			Entries:            []level.Entry{},
			SecondCollectables: []objref.Reference{},
		},
	}
	in.References = []objref.Reference{
		{LevelName: "Persistent_Level", PathName: "Persistent_Level:PersistentLevel.Build_X"},
	}
	w := cursor.NewWriter()
	EncodeBody(w, in)
	r := cursor.NewReader(w.Bytes())
	out, err := DecodeBody(r)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(bodyFieldsWithoutSize(in), bodyFieldsWithoutSize(out)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestEncodeBodyRecomputesSizeAfterMutation pins the maintainer-requested
// fix: EncodeBody must derive TotalBodySize from the content it actually
// writes, not from a stale value carried on Body, so re-emitting a decoded
// and then mutated Body stays internally consistent.
func TestEncodeBodyRecomputesSizeAfterMutation(t *testing.T) {
	in := minimalBody()
	in.TotalBodySize = 0xBAD // a deliberately wrong stored value
	in.References = []objref.Reference{
		{LevelName: "Persistent_Level", PathName: "Persistent_Level:PersistentLevel.Build_X"},
	}
	w := cursor.NewWriter()
	EncodeBody(w, in)
	data := w.Bytes()

	r := cursor.NewReader(data)
	size, err := r.U64()
	if err != nil {
		t.Fatal(err)
	}
	if want := uint64(len(data) - 8); size != want {
		t.Fatalf("written TotalBodySize: got %d, want %d", size, want)
	}
}

// DecodeBody must tolerate a stream that ends immediately after the
// persistent level, with no trailing reference count at all.
func TestMissingTrailingRefsCountTolerance(t *testing.T) {
	in := minimalBody()
	w := cursor.NewWriter()
	EncodeBody(w, in)
	full := w.Bytes()

	// EncodeBody always appends an explicit (possibly zero) ref count;
	// truncate it off to reproduce a source file that omits it.
	truncated := full[:len(full)-4]

	r := cursor.NewReader(truncated)
	out, err := DecodeBody(r)
	if err != nil {
		t.Fatal(err)
	}
	if out.References != nil {
		t.Fatalf("expected nil references, got %v", out.References)
	}
	if !r.AtEOF() {
		t.Fatalf("%d trailing bytes", r.Remaining())
	}
}
