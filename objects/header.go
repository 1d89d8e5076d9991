// Package objects implements the ObjectHeader/LevelObject pair: the
// per-entity header list a Level reads ahead of its object bodies, and
// the bodies themselves, positionally paired by index.
package objects

import (
	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/errs"
)

// HeaderType is ObjectHeader's wire discriminant.
type HeaderType uint32

const (
	HeaderComponent HeaderType = 0
	HeaderActor     HeaderType = 1
)

type Vector3 struct{ X, Y, Z float32 }

type Quaternion struct{ X, Y, Z, W float32 }

// Header is an ObjectHeader: either an ActorHeader or a ComponentHeader.
type Header interface {
	Type() HeaderType
	isHeader()
}

// Common holds the field tail shared by both header shapes.
type Common struct {
	TypePath     string
	RootObject   string
	InstanceName string
	Unknown      uint32
}

// ActorHeader carries a transform in addition to Common. Its wire order
// is asymmetric between read and write: on read, NeedTransform is
// consumed immediately after Unknown, ahead of the transform fields; on
// write, it is emitted after Scale. Decode/Encode preserve this exactly
// rather than normalizing it — see the comment on decodeActorHeader.
type ActorHeader struct {
	Common
	Rotation         Quaternion
	Position         Vector3
	Scale            Vector3
	NeedTransform    bool
	WasPlacedInLevel bool
}

func (ActorHeader) Type() HeaderType { return HeaderActor }
func (ActorHeader) isHeader()        {}

type ComponentHeader struct {
	Common
	ParentActorName string
}

func (ComponentHeader) Type() HeaderType { return HeaderComponent }
func (ComponentHeader) isHeader()        {}

// DecodeHeader reads one ObjectHeader, dispatched by its leading u32 tag.
func DecodeHeader(r *cursor.Reader) (Header, error) {
	tag, err := r.U32()
	if err != nil {
		return nil, err
	}
	switch HeaderType(tag) {
	case HeaderActor:
		return decodeActorHeader(r)
	case HeaderComponent:
		return decodeComponentHeader(r)
	default:
		return nil, errs.New(errs.Unknown, "unknown object header type %d", tag)
	}
}

func decodeCommon(r *cursor.Reader) (Common, error) {
	typePath, err := r.String()
	if err != nil {
		return Common{}, err
	}
	rootObject, err := r.String()
	if err != nil {
		return Common{}, err
	}
	instanceName, err := r.String()
	if err != nil {
		return Common{}, err
	}
	unknown, err := r.U32()
	if err != nil {
		return Common{}, err
	}
	return Common{TypePath: typePath, RootObject: rootObject, InstanceName: instanceName, Unknown: unknown}, nil
}

func decodeVector3(r *cursor.Reader) (Vector3, error) {
	x, err := r.F32()
	if err != nil {
		return Vector3{}, err
	}
	y, err := r.F32()
	if err != nil {
		return Vector3{}, err
	}
	z, err := r.F32()
	if err != nil {
		return Vector3{}, err
	}
	return Vector3{X: x, Y: y, Z: z}, nil
}

func decodeQuaternion(r *cursor.Reader) (Quaternion, error) {
	x, err := r.F32()
	if err != nil {
		return Quaternion{}, err
	}
	y, err := r.F32()
	if err != nil {
		return Quaternion{}, err
	}
	z, err := r.F32()
	if err != nil {
		return Quaternion{}, err
	}
	w, err := r.F32()
	if err != nil {
		return Quaternion{}, err
	}
	return Quaternion{X: x, Y: y, Z: z, W: w}, nil
}

// decodeActorHeader reads need_transform ahead of the transform fields,
// the observed wire order. encodeActorHeader does not mirror this; it
// writes need_transform after scale, matching the source's own
// asymmetric writer.
func decodeActorHeader(r *cursor.Reader) (Header, error) {
	common, err := decodeCommon(r)
	if err != nil {
		return nil, err
	}
	needTransform, err := r.U32Bool()
	if err != nil {
		return nil, err
	}
	rotation, err := decodeQuaternion(r)
	if err != nil {
		return nil, err
	}
	position, err := decodeVector3(r)
	if err != nil {
		return nil, err
	}
	scale, err := decodeVector3(r)
	if err != nil {
		return nil, err
	}
	wasPlaced, err := r.U32Bool()
	if err != nil {
		return nil, err
	}
	return ActorHeader{
		Common:           common,
		Rotation:         rotation,
		Position:         position,
		Scale:            scale,
		NeedTransform:    needTransform,
		WasPlacedInLevel: wasPlaced,
	}, nil
}

func decodeComponentHeader(r *cursor.Reader) (Header, error) {
	common, err := decodeCommon(r)
	if err != nil {
		return nil, err
	}
	parentActorName, err := r.String()
	if err != nil {
		return nil, err
	}
	return ComponentHeader{Common: common, ParentActorName: parentActorName}, nil
}

// EncodeHeader writes one ObjectHeader, the inverse of DecodeHeader.
func EncodeHeader(w *cursor.Writer, h Header) {
	w.AddU32(uint32(h.Type()))
	switch hv := h.(type) {
	case ActorHeader:
		encodeActorHeader(w, hv)
	case ComponentHeader:
		encodeComponentHeader(w, hv)
	}
}

func encodeCommon(w *cursor.Writer, c Common) {
	w.AddString(c.TypePath)
	w.AddString(c.RootObject)
	w.AddString(c.InstanceName)
	w.AddU32(c.Unknown)
}

func encodeVector3(w *cursor.Writer, v Vector3) {
	w.AddF32(v.X)
	w.AddF32(v.Y)
	w.AddF32(v.Z)
}

func encodeQuaternion(w *cursor.Writer, q Quaternion) {
	w.AddF32(q.X)
	w.AddF32(q.Y)
	w.AddF32(q.Z)
	w.AddF32(q.W)
}

func encodeActorHeader(w *cursor.Writer, h ActorHeader) {
	encodeCommon(w, h.Common)
	encodeQuaternion(w, h.Rotation)
	encodeVector3(w, h.Position)
	encodeVector3(w, h.Scale)
	w.AddU32Bool(h.NeedTransform)
	w.AddU32Bool(h.WasPlacedInLevel)
}

func encodeComponentHeader(w *cursor.Writer, h ComponentHeader) {
	encodeCommon(w, h.Common)
	w.AddString(h.ParentActorName)
}
