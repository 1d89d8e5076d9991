package props

import "github.com/lordralinc/sat-sav-parse/objref"

// Value is the payload of a Property: a closed sum over every
// PropertyTypeName body shape. Concrete types below each implement it
// with a no-op marker method, the idiomatic Go stand-in for the tagged
// union the source expresses through a common BaseProperty base class.
type Value interface{ isPropertyValue() }

type BoolValue bool

func (BoolValue) isPropertyValue() {}

// ByteValue covers both a raw enum-less byte (InnerType == "None", value
// in Raw) and a named-enum byte stored as its member string (Str).
type ByteValue struct {
	InnerType string
	Raw       uint8
	Str       string
}

func (ByteValue) isPropertyValue() {}

type EnumValue struct {
	InnerType string
	Value     string
}

func (EnumValue) isPropertyValue() {}

type FloatValue float32

func (FloatValue) isPropertyValue() {}

type DoubleValue float64

func (DoubleValue) isPropertyValue() {}

type IntValue int32

func (IntValue) isPropertyValue() {}

type Int8Value int8

func (Int8Value) isPropertyValue() {}

type Int64Value int64

func (Int64Value) isPropertyValue() {}

type UInt32Value uint32

func (UInt32Value) isPropertyValue() {}

type NameValue string

func (NameValue) isPropertyValue() {}

type StrValue string

func (StrValue) isPropertyValue() {}

type ObjectValue objref.Reference

func (ObjectValue) isPropertyValue() {}

type SoftObjectValue struct {
	Ref     objref.Reference
	Unknown uint32
}

func (SoftObjectValue) isPropertyValue() {}

type TextPropertyValue struct {
	Value TextValue
}

func (TextPropertyValue) isPropertyValue() {}

// StructArrayHeader is the single shared header an Array-of-Struct
// property writes once, ahead of its bracketed element list.
type StructArrayHeader struct {
	Name        string
	InnerType   string
	ElementType StructKind
	UUID        [17]byte
}

// ArrayValue is an ArrayProperty's payload: a homogeneous, count-prefixed
// list. Items holds every non-struct element kind (uint8, string,
// objref.Reference, int32, int64, float32, or a (Ref,uint32) SoftObject
// pair, per ElementKind). Struct elements use the StructHeader/StructItems
// fields instead, or Opaque if decoding any element fell back to raw bytes.
type ArrayValue struct {
	ElementKind  ArrayElementKind
	Items        []any
	StructHeader *StructArrayHeader
	StructItems  []StructValue
	Opaque       []byte
}

func (ArrayValue) isPropertyValue() {}

// SetValue is a SetProperty's payload. Items holds decoded elements
// (objref.Reference, uint32, or a two-u64 setStructElement) when
// ElementKind is recognized; Opaque holds the remaining bracket bytes
// raw when it is not.
type SetValue struct {
	ElementKind SetElementKind
	Unknown     bool
	Discarded   uint32
	Items       []any
	Opaque      []byte
}

func (SetValue) isPropertyValue() {}

type StructPropertyValue struct {
	StructType StructKind
	UUID       [17]byte
	Value      StructValue
}

func (StructPropertyValue) isPropertyValue() {}

// MapValue is a MapProperty's payload, preserving wire insertion order
// via OrderedMap. Both key and value are stored as `any`; their dynamic
// type is determined by KeyKind/ValueKind (int32, int64, string,
// objref.Reference, or mapStructKey for KeyKind == MapKeyStruct;
// uint8/string/bool/int32/int64/float32/float64/string/objref.Reference/
// TextValue/[]Property for value kinds per the value table).
type MapValue struct {
	KeyKind   MapKeyKind
	ValueKind MapValueKind
	Mode      uint32
	Entries   *OrderedMap[any, any]
}

func (MapValue) isPropertyValue() {}

// mapStructKey is the three-i32 shape MapProperty decodes for
// key_type==StructProperty. The source's generalization of this case is
// almost certainly incomplete, but the wire shape
// itself is reproduced faithfully.
type mapStructKey struct {
	A, B, C int32
}

// setStructElement is the two-u64 shape SetProperty decodes for a
// StructType element, an ad-hoc pairing rather than a real struct value.
type setStructElement struct {
	A, B uint64
}

// Property is one entry of a property stream: a name, its wire type,
// and a dispatched Value.
type Property struct {
	Name       string
	Type       Kind
	ArrayIndex uint32
	Value      Value
}
