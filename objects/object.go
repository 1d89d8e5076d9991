package objects

import (
	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/errs"
	"github.com/lordralinc/sat-sav-parse/objref"
	"github.com/lordralinc/sat-sav-parse/props"
)

// Object is a LevelObject body, paired by positional index with a Header
// of matching HeaderType.
type Object interface {
	isObject()
}

// ActorObject is the body shape paired with an ActorHeader.
type ActorObject struct {
	SaveVersion uint32
	Flag        uint32
	Parent      objref.Reference
	Components  []objref.Reference
	Properties  []props.Property
	Trailing    []byte
}

func (ActorObject) isObject() {}

// ComponentObject is the body shape paired with a ComponentHeader.
type ComponentObject struct {
	SaveVersion uint32
	Flag        uint32
	Properties  []props.Property
	Trailing    []byte
}

func (ComponentObject) isObject() {}

// DecodeObject reads one LevelObject body, dispatched by the header
// type it is positionally paired with.
func DecodeObject(r *cursor.Reader, headerType HeaderType) (Object, error) {
	switch headerType {
	case HeaderActor:
		return decodeActorObject(r)
	case HeaderComponent:
		return decodeComponentObject(r)
	default:
		return nil, errs.New(errs.Unknown, "unknown object header type %d", headerType)
	}
}

func decodeActorObject(r *cursor.Reader) (Object, error) {
	saveVersion, err := r.U32()
	if err != nil {
		return nil, err
	}
	flag, err := r.U32()
	if err != nil {
		return nil, err
	}
	size, err := r.U32()
	if err != nil {
		return nil, err
	}

	obj := ActorObject{SaveVersion: saveVersion, Flag: flag}
	start := r.Offset()
	err = r.ExpectSize(int(size), "actor object", func() error {
		parent, err := objref.Decode(r)
		if err != nil {
			return err
		}
		obj.Parent = parent

		count, err := r.U32()
		if err != nil {
			return err
		}
		components := make([]objref.Reference, 0, count)
		for i := uint32(0); i < count; i++ {
			ref, err := objref.Decode(r)
			if err != nil {
				return err
			}
			components = append(components, ref)
		}
		obj.Components = components

		properties, err := props.DeserializeProperties(r)
		if err != nil {
			return err
		}
		obj.Properties = properties

		if _, err := cursor.Confirm(r, r.U32, uint32(0), errs.Unknown, "actor object trailer"); err != nil {
			return err
		}

		remaining := int(size) - (r.Offset() - start)
		trailing, err := r.Raw(remaining)
		if err != nil {
			return err
		}
		obj.Trailing = trailing
		return nil
	})
	return obj, err
}

func decodeComponentObject(r *cursor.Reader) (Object, error) {
	saveVersion, err := r.U32()
	if err != nil {
		return nil, err
	}
	flag, err := r.U32()
	if err != nil {
		return nil, err
	}
	size, err := r.U32()
	if err != nil {
		return nil, err
	}

	obj := ComponentObject{SaveVersion: saveVersion, Flag: flag}
	start := r.Offset()
	err = r.ExpectSize(int(size), "component object", func() error {
		properties, err := props.DeserializeProperties(r)
		if err != nil {
			return err
		}
		obj.Properties = properties

		if _, err := cursor.Confirm(r, r.U32, uint32(0), errs.Unknown, "component object trailer"); err != nil {
			return err
		}

		remaining := int(size) - (r.Offset() - start)
		trailing, err := r.Raw(remaining)
		if err != nil {
			return err
		}
		obj.Trailing = trailing
		return nil
	})
	return obj, err
}

// EncodeObject writes one LevelObject body, the inverse of DecodeObject.
func EncodeObject(w *cursor.Writer, obj Object) {
	switch o := obj.(type) {
	case ActorObject:
		encodeActorObject(w, o)
	case ComponentObject:
		encodeComponentObject(w, o)
	}
}

func encodeActorObject(w *cursor.Writer, o ActorObject) {
	w.AddU32(o.SaveVersion)
	w.AddU32(o.Flag)
	w.Bracket(4, func(w *cursor.Writer) {
		objref.Encode(w, o.Parent)
		w.AddU32(uint32(len(o.Components)))
		for _, ref := range o.Components {
			objref.Encode(w, ref)
		}
		props.SerializeProperties(w, o.Properties)
		w.AddU32(0)
		w.AddRaw(o.Trailing)
	})
}

func encodeComponentObject(w *cursor.Writer, o ComponentObject) {
	w.AddU32(o.SaveVersion)
	w.AddU32(o.Flag)
	w.Bracket(4, func(w *cursor.Writer) {
		props.SerializeProperties(w, o.Properties)
		w.AddU32(0)
		w.AddRaw(o.Trailing)
	})
}
