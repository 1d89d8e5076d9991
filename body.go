package satsave

import (
	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/errs"
	"github.com/lordralinc/sat-sav-parse/level"
	"github.com/lordralinc/sat-sav-parse/objref"
)

const gridCount = 5

const bodyDiscardedMarker = 6

// Body is the decompressed SaveFileBody: the grid table, sublevels, the
// persistent level, and a reference table. TotalBodySize is populated on
// decode for inspection only; EncodeBody always recomputes it from the
// actual serialized content rather than writing this field back.
type Body struct {
	TotalBodySize uint64
	Unknown1      uint32
	Unknown2      uint32
	Grids         [gridCount]LevelGroupingGrid
	Sublevels     []*level.Level
	Persistent    *level.Level
	References    []objref.Reference
}

const sentinelNone = "None"

// DecodeBody reads a Body from a freshly decompressed byte stream.
func DecodeBody(r *cursor.Reader) (*Body, error) {
	b := &Body{}

	totalSize, err := r.U64()
	if err != nil {
		return nil, err
	}
	b.TotalBodySize = totalSize

	if _, err := r.U32(); err != nil { // discarded; written back as bodyDiscardedMarker
		return nil, err
	}
	if _, err := cursor.Confirm(r, r.String, sentinelNone, errs.Unknown, "body prefix sentinel"); err != nil {
		return nil, err
	}
	if _, err := cursor.Confirm(r, r.U32, uint32(0), errs.Unknown, "body prefix reserved"); err != nil {
		return nil, err
	}
	unknown1, err := r.U32()
	if err != nil {
		return nil, err
	}
	b.Unknown1 = unknown1
	if _, err := cursor.Confirm(r, r.U32, uint32(1), errs.Unknown, "body prefix marker"); err != nil {
		return nil, err
	}
	if _, err := cursor.Confirm(r, r.String, sentinelNone, errs.Unknown, "body prefix sentinel 2"); err != nil {
		return nil, err
	}
	unknown2, err := r.U32()
	if err != nil {
		return nil, err
	}
	b.Unknown2 = unknown2

	for i := 0; i < gridCount; i++ {
		grid, err := decodeLevelGroupingGrid(r)
		if err != nil {
			return nil, err
		}
		b.Grids[i] = grid
	}

	sublevelCount, err := r.U32()
	if err != nil {
		return nil, err
	}
	sublevels := make([]*level.Level, 0, sublevelCount)
	for i := uint32(0); i < sublevelCount; i++ {
		lvl, err := level.Decode(r, false)
		if err != nil {
			return nil, err
		}
		sublevels = append(sublevels, lvl)
	}
	b.Sublevels = sublevels

	persistent, err := level.Decode(r, true)
	if err != nil {
		return nil, err
	}
	b.Persistent = persistent

	if r.AtEOF() {
		b.References = nil
		return b, nil
	}

	refCount, err := r.U32()
	if err != nil {
		return nil, err
	}
	refs := make([]objref.Reference, 0, refCount)
	for i := uint32(0); i < refCount; i++ {
		ref, err := objref.Decode(r)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	b.References = refs
	return b, nil
}

// EncodeBody writes b, the inverse of DecodeBody. The reference count
// is always written explicitly, even when the source body omitted it
// (the documented "missing trailing refs count" tolerance is read-only).
// TotalBodySize is never carried over from b: it is always recomputed
// from the actual bytes written after it, matching __serialize__'s own
// add_u64(len(ns.content)) over a temp serializer.
func EncodeBody(w *cursor.Writer, b *Body) {
	w.Bracket(8, func(w *cursor.Writer) {
		w.AddU32(bodyDiscardedMarker)
		w.AddString(sentinelNone)
		w.AddU32(0)
		w.AddU32(b.Unknown1)
		w.AddU32(1)
		w.AddString(sentinelNone)
		w.AddU32(b.Unknown2)

		for i := 0; i < gridCount; i++ {
			encodeLevelGroupingGrid(w, b.Grids[i])
		}

		w.AddU32(uint32(len(b.Sublevels)))
		for _, lvl := range b.Sublevels {
			level.Encode(w, lvl)
		}

		level.Encode(w, b.Persistent)

		w.AddU32(uint32(len(b.References)))
		for _, ref := range b.References {
			objref.Encode(w, ref)
		}
	})
}
