// Package props implements the recursive, self-describing property
// stream at the heart of the save format: a "None"-terminated sequence
// of named, type-tagged values, each kind's body bracketed by its own
// declared payload size. Struct-typed and text-typed properties box a
// further sub-machine (structvalue.go, textvalue.go) that can itself
// recurse back into a nested property stream.
package props

import (
	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/errs"
	"github.com/lordralinc/sat-sav-parse/objref"
)

const sentinelNone = "None"

// DeserializeProperties reads a property stream until the "None"
// sentinel name, returning the accumulated properties.
func DeserializeProperties(r *cursor.Reader) ([]Property, error) {
	var result []Property
	for {
		name, err := r.String()
		if err != nil {
			return nil, err
		}
		if name == sentinelNone {
			return result, nil
		}
		typeName, err := r.String()
		if err != nil {
			return nil, err
		}
		payloadSize, err := r.U32()
		if err != nil {
			return nil, err
		}
		arrayIndex, err := r.U32()
		if err != nil {
			return nil, err
		}

		kind := Kind(typeName)
		var value Value
		err = r.ExpectSize(int(payloadSize), string(kind)+" payload", func() error {
			v, err := decodeValue(r, kind, payloadSize)
			if err != nil {
				return err
			}
			value = v
			return nil
		})
		if err != nil {
			return nil, err
		}
		result = append(result, Property{Name: name, Type: kind, ArrayIndex: arrayIndex, Value: value})
	}
}

// SerializeProperties writes props followed by the "None" sentinel.
// payload_size precedes array_index on the wire but measures only the
// kind-specific body that follows array_index, so it is backpatched by
// position rather than via Bracket (whose placeholder must immediately
// precede the region it measures).
func SerializeProperties(w *cursor.Writer, props []Property) {
	for _, p := range props {
		w.AddString(p.Name)
		w.AddString(string(p.Type))
		placeholder := w.Pos()
		w.AddU32(0)
		w.AddU32(p.ArrayIndex)
		bodyStart := w.Pos()
		encodeValue(w, p.Type, p.Value)
		w.PatchU32At(placeholder, uint32(w.Pos()-bodyStart))
	}
	w.AddString(sentinelNone)
}

func confirmZeroByte(r *cursor.Reader) error {
	_, err := cursor.Confirm(r, r.U8, uint8(0), errs.Unknown, "reserved byte")
	return err
}

func decodeValue(r *cursor.Reader, kind Kind, payloadSize uint32) (Value, error) {
	switch kind {
	case KindBool:
		v, err := r.U8Bool()
		if err != nil {
			return nil, err
		}
		if err := confirmZeroByte(r); err != nil {
			return nil, err
		}
		return BoolValue(v), nil

	case KindByte:
		innerType, err := r.String()
		if err != nil {
			return nil, err
		}
		if err := confirmZeroByte(r); err != nil {
			return nil, err
		}
		if innerType == sentinelNone {
			raw, err := r.U8()
			if err != nil {
				return nil, err
			}
			return ByteValue{InnerType: innerType, Raw: raw}, nil
		}
		str, err := r.String()
		if err != nil {
			return nil, err
		}
		return ByteValue{InnerType: innerType, Str: str}, nil

	case KindEnum:
		innerType, err := r.String()
		if err != nil {
			return nil, err
		}
		if err := confirmZeroByte(r); err != nil {
			return nil, err
		}
		value, err := r.String()
		if err != nil {
			return nil, err
		}
		return EnumValue{InnerType: innerType, Value: value}, nil

	case KindFloat:
		if err := confirmZeroByte(r); err != nil {
			return nil, err
		}
		v, err := r.F32()
		return FloatValue(v), err

	case KindDouble:
		if err := confirmZeroByte(r); err != nil {
			return nil, err
		}
		v, err := r.F64()
		return DoubleValue(v), err

	case KindInt:
		if err := confirmZeroByte(r); err != nil {
			return nil, err
		}
		v, err := r.I32()
		return IntValue(v), err

	case KindInt8:
		if err := confirmZeroByte(r); err != nil {
			return nil, err
		}
		v, err := r.I8()
		return Int8Value(v), err

	case KindInt64:
		if err := confirmZeroByte(r); err != nil {
			return nil, err
		}
		v, err := r.I64()
		return Int64Value(v), err

	case KindUInt32:
		if err := confirmZeroByte(r); err != nil {
			return nil, err
		}
		v, err := r.U32()
		return UInt32Value(v), err

	case KindName:
		if err := confirmZeroByte(r); err != nil {
			return nil, err
		}
		v, err := r.String()
		return NameValue(v), err

	case KindStr:
		if err := confirmZeroByte(r); err != nil {
			return nil, err
		}
		v, err := r.String()
		return StrValue(v), err

	case KindObject:
		if err := confirmZeroByte(r); err != nil {
			return nil, err
		}
		ref, err := objref.Decode(r)
		return ObjectValue(ref), err

	case KindSoftObject:
		if err := confirmZeroByte(r); err != nil {
			return nil, err
		}
		ref, err := objref.Decode(r)
		if err != nil {
			return nil, err
		}
		unknown, err := r.U32()
		return SoftObjectValue{Ref: ref, Unknown: unknown}, err

	case KindText:
		if err := confirmZeroByte(r); err != nil {
			return nil, err
		}
		tv, err := DecodeTextValue(r)
		if err != nil {
			return nil, err
		}
		return TextPropertyValue{Value: tv}, nil

	case KindArray:
		return decodeArrayValue(r)

	case KindSet:
		return decodeSetValue(r, payloadSize)

	case KindStruct:
		return decodeStructPropertyValue(r, payloadSize)

	case KindMap:
		return decodeMapValue(r)

	default:
		return nil, errs.New(errs.Unknown, "unknown property type %q", string(kind))
	}
}

func encodeValue(w *cursor.Writer, kind Kind, value Value) {
	switch kind {
	case KindBool:
		w.AddU8Bool(bool(value.(BoolValue)))
		w.AddU8(0)

	case KindByte:
		v := value.(ByteValue)
		w.AddString(v.InnerType)
		w.AddU8(0)
		if v.InnerType == sentinelNone {
			w.AddU8(v.Raw)
		} else {
			w.AddString(v.Str)
		}

	case KindEnum:
		v := value.(EnumValue)
		w.AddString(v.InnerType)
		w.AddU8(0)
		w.AddString(v.Value)

	case KindFloat:
		w.AddU8(0)
		w.AddF32(float32(value.(FloatValue)))

	case KindDouble:
		w.AddU8(0)
		w.AddF64(float64(value.(DoubleValue)))

	case KindInt:
		w.AddU8(0)
		w.AddI32(int32(value.(IntValue)))

	case KindInt8:
		w.AddU8(0)
		w.AddI8(int8(value.(Int8Value)))

	case KindInt64:
		w.AddU8(0)
		w.AddI64(int64(value.(Int64Value)))

	case KindUInt32:
		w.AddU8(0)
		w.AddU32(uint32(value.(UInt32Value)))

	case KindName:
		w.AddU8(0)
		w.AddString(string(value.(NameValue)))

	case KindStr:
		w.AddU8(0)
		w.AddString(string(value.(StrValue)))

	case KindObject:
		w.AddU8(0)
		objref.Encode(w, objref.Reference(value.(ObjectValue)))

	case KindSoftObject:
		v := value.(SoftObjectValue)
		w.AddU8(0)
		objref.Encode(w, v.Ref)
		w.AddU32(v.Unknown)

	case KindText:
		w.AddU8(0)
		EncodeTextValue(w, value.(TextPropertyValue).Value)

	case KindArray:
		encodeArrayValue(w, value.(ArrayValue))

	case KindSet:
		encodeSetValue(w, value.(SetValue))

	case KindStruct:
		encodeStructPropertyValue(w, value.(StructPropertyValue))

	case KindMap:
		encodeMapValue(w, value.(MapValue))
	}
}
