// Package level implements Level: the persistent-vs-sublevel object
// container that sits between the top-level body codec and the
// per-object header/body pair in package objects.
package level

import (
	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/errs"
	"github.com/lordralinc/sat-sav-parse/objects"
	"github.com/lordralinc/sat-sav-parse/objref"
)

// Entry pairs one ObjectHeader with its positionally-matched LevelObject
// body.
type Entry struct {
	Header objects.Header
	Object objects.Object
}

// Level is one sublevel or the persistent level. SublevelName and
// ExtraLevelNames are only meaningful per IsPersistent (see Decode).
type Level struct {
	IsPersistent       bool
	SublevelName       string
	ExtraLevelNames    string
	HasExtraLevelNames bool
	Entries            []Entry
	Collectables       []objref.Reference
	SaveVersion        uint32
	SecondCollectables []objref.Reference
}

// Decode reads one Level. isPersistent selects between the persistent
// layout (no leading name, optional extra-names block, no trailing
// collectables) and the sublevel layout (leading name, trailing
// second-collectables list).
func Decode(r *cursor.Reader, isPersistent bool) (*Level, error) {
	lvl := &Level{IsPersistent: isPersistent}

	if !isPersistent {
		name, err := r.String()
		if err != nil {
			return nil, err
		}
		lvl.SublevelName = name
	}

	bracketSize, err := r.U64()
	if err != nil {
		return nil, err
	}
	bracketStart := r.Offset()

	headerCount, err := r.U32()
	if err != nil {
		return nil, err
	}
	headers := make([]objects.Header, 0, headerCount)
	for i := uint32(0); i < headerCount; i++ {
		h, err := objects.DecodeHeader(r)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}

	if isPersistent {
		flag, err := r.U32Bool()
		if err != nil {
			return nil, err
		}
		lvl.HasExtraLevelNames = flag
		if flag {
			names, err := r.String()
			if err != nil {
				return nil, err
			}
			lvl.ExtraLevelNames = names
		}
	}

	consumed := r.Offset() - bracketStart
	if consumed < int(bracketSize) {
		count, err := r.U32()
		if err != nil {
			return nil, err
		}
		collectables := make([]objref.Reference, 0, count)
		for i := uint32(0); i < count; i++ {
			ref, err := objref.Decode(r)
			if err != nil {
				return nil, err
			}
			collectables = append(collectables, ref)
		}
		lvl.Collectables = collectables
	}

	if diff := r.Offset() - bracketStart; diff != int(bracketSize) {
		return nil, errs.New(errs.InvalidSize, "level header/collectables: invalid size %d, expected %d", diff, bracketSize)
	}

	objectsSize, err := r.U64()
	if err != nil {
		return nil, err
	}
	objectsStart := r.Offset()
	objectCount, err := r.U32()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, objectCount)
	for i := uint32(0); i < objectCount; i++ {
		if int(i) >= len(headers) {
			return nil, errs.New(errs.Unknown, "level object %d has no paired header", i)
		}
		header := headers[i]
		obj, err := objects.DecodeObject(r, header.Type())
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Header: header, Object: obj})
	}
	if diff := r.Offset() - objectsStart; diff != int(objectsSize) {
		return nil, errs.New(errs.InvalidSize, "level objects: invalid size %d, expected %d", diff, objectsSize)
	}
	lvl.Entries = entries

	saveVersion, err := r.U32()
	if err != nil {
		return nil, err
	}
	lvl.SaveVersion = saveVersion

	if !isPersistent {
		count, err := r.U32()
		if err != nil {
			return nil, err
		}
		second := make([]objref.Reference, 0, count)
		for i := uint32(0); i < count; i++ {
			ref, err := objref.Decode(r)
			if err != nil {
				return nil, err
			}
			second = append(second, ref)
		}
		lvl.SecondCollectables = second
	}

	return lvl, nil
}

// Encode writes lvl, the inverse of Decode.
func Encode(w *cursor.Writer, lvl *Level) {
	if !lvl.IsPersistent {
		w.AddString(lvl.SublevelName)
	}

	w.Bracket(8, func(w *cursor.Writer) {
		w.AddU32(uint32(len(lvl.Entries)))
		for _, e := range lvl.Entries {
			objects.EncodeHeader(w, e.Header)
		}
		if lvl.IsPersistent {
			w.AddU32Bool(lvl.HasExtraLevelNames)
			if lvl.HasExtraLevelNames {
				w.AddString(lvl.ExtraLevelNames)
			}
		}
		if lvl.Collectables != nil {
			w.AddU32(uint32(len(lvl.Collectables)))
			for _, ref := range lvl.Collectables {
				objref.Encode(w, ref)
			}
		}
	})

	w.Bracket(8, func(w *cursor.Writer) {
		w.AddU32(uint32(len(lvl.Entries)))
		for _, e := range lvl.Entries {
			objects.EncodeObject(w, e.Object)
		}
	})

	w.AddU32(lvl.SaveVersion)

	if !lvl.IsPersistent {
		w.AddU32(uint32(len(lvl.SecondCollectables)))
		for _, ref := range lvl.SecondCollectables {
			objref.Encode(w, ref)
		}
	}
}
