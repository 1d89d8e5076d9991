package props

import (
	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/errs"
	"github.com/lordralinc/sat-sav-parse/objref"
)

func decodeStructPropertyValue(r *cursor.Reader, payloadSize uint32) (Value, error) {
	typeStr, err := r.String()
	if err != nil {
		return nil, err
	}
	uuidBytes, err := r.Raw(17)
	if err != nil {
		return nil, err
	}
	var uuid [17]byte
	copy(uuid[:], uuidBytes)

	kind := StructKind(typeStr)
	remaining := int(payloadSize) - (len(typeStr) + 5 + 17)
	value, err := DecodeStructValue(r, kind, remaining)
	if err != nil {
		return nil, err
	}
	return StructPropertyValue{StructType: kind, UUID: uuid, Value: value}, nil
}

func encodeStructPropertyValue(w *cursor.Writer, v StructPropertyValue) {
	w.AddString(string(v.StructType))
	w.AddRaw(v.UUID[:])
	EncodeStructValue(w, v.StructType, v.Value)
}

func decodeArrayValue(r *cursor.Reader) (Value, error) {
	elementTypeStr, err := r.String()
	if err != nil {
		return nil, err
	}
	if err := confirmZeroByte(r); err != nil {
		return nil, err
	}
	elementKind := ArrayElementKind(elementTypeStr)
	if elementKind == ArrayElementStruct {
		return decodeStructArray(r)
	}

	count, err := r.U32()
	if err != nil {
		return nil, err
	}
	items := make([]any, 0, count)
	for i := uint32(0); i < count; i++ {
		item, err := decodeArrayElement(r, elementKind)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return ArrayValue{ElementKind: elementKind, Items: items}, nil
}

func decodeArrayElement(r *cursor.Reader, kind ArrayElementKind) (any, error) {
	switch kind {
	case ArrayElementByte:
		return r.U8()
	case ArrayElementEnum, ArrayElementStr:
		return r.String()
	case ArrayElementInterface, ArrayElementObject:
		return objref.Decode(r)
	case ArrayElementInt:
		return r.I32()
	case ArrayElementInt64:
		return r.I64()
	case ArrayElementFloat:
		return r.F32()
	case ArrayElementSoftObject:
		ref, err := objref.Decode(r)
		if err != nil {
			return nil, err
		}
		unknown, err := r.U32()
		if err != nil {
			return nil, err
		}
		return SoftObjectValue{Ref: ref, Unknown: unknown}, nil
	default:
		return nil, errs.New(errs.Unknown, "unknown array element kind %q", kind)
	}
}

func decodeStructArray(r *cursor.Reader) (Value, error) {
	count, err := r.U32()
	if err != nil {
		return nil, err
	}
	name, err := r.String()
	if err != nil {
		return nil, err
	}
	innerType, err := r.String()
	if err != nil {
		return nil, err
	}
	payloadSize, err := r.U32()
	if err != nil {
		return nil, err
	}
	if _, err := cursor.Confirm(r, r.U32, uint32(0), errs.Unknown, "array-of-struct reserved"); err != nil {
		return nil, err
	}
	elementTypeStr, err := r.String()
	if err != nil {
		return nil, err
	}
	uuidBytes, err := r.Raw(17)
	if err != nil {
		return nil, err
	}
	var uuid [17]byte
	copy(uuid[:], uuidBytes)
	header := &StructArrayHeader{Name: name, InnerType: innerType, ElementType: StructKind(elementTypeStr), UUID: uuid}

	bodyStart := r.Offset()
	items, decodeErr := decodeStructArrayItems(r, header.ElementType, count)
	if decodeErr != nil {
		raw, err := r.RawAt(bodyStart, int(payloadSize))
		if err != nil {
			return nil, err
		}
		return ArrayValue{ElementKind: ArrayElementStruct, StructHeader: header, Opaque: raw}, nil
	}
	if diff := r.Offset() - bodyStart; diff != int(payloadSize) {
		return nil, errs.New(errs.InvalidSize, "array-of-struct payload: invalid size %d, expected %d", diff, payloadSize)
	}
	return ArrayValue{ElementKind: ArrayElementStruct, StructHeader: header, StructItems: items}, nil
}

func decodeStructArrayItems(r *cursor.Reader, elementType StructKind, count uint32) ([]StructValue, error) {
	items := make([]StructValue, 0, count)
	for i := uint32(0); i < count; i++ {
		// a struct-array element's size isn't individually declared; pass 0
		// as the opaque-fallback budget since §9's default/opaque fallback
		// for this position is handled one level up, at the whole-array
		// granularity rather than per element.
		v, err := DecodeStructValue(r, elementType, 0)
		if err != nil {
			return nil, err
		}
		if _, ok := v.(OpaqueStructValue); ok {
			return nil, errs.New(errs.Unknown, "struct array element %d (%s) fell back to raw bytes", i, elementType)
		}
		items = append(items, v)
	}
	return items, nil
}

func encodeArrayValue(w *cursor.Writer, v ArrayValue) {
	w.AddString(string(v.ElementKind))
	w.AddU8(0)
	if v.ElementKind == ArrayElementStruct {
		encodeStructArray(w, v)
		return
	}
	w.AddU32(uint32(len(v.Items)))
	for _, item := range v.Items {
		encodeArrayElement(w, v.ElementKind, item)
	}
}

func encodeArrayElement(w *cursor.Writer, kind ArrayElementKind, item any) {
	switch kind {
	case ArrayElementByte:
		w.AddU8(item.(uint8))
	case ArrayElementEnum, ArrayElementStr:
		w.AddString(item.(string))
	case ArrayElementInterface, ArrayElementObject:
		objref.Encode(w, item.(objref.Reference))
	case ArrayElementInt:
		w.AddI32(item.(int32))
	case ArrayElementInt64:
		w.AddI64(item.(int64))
	case ArrayElementFloat:
		w.AddF32(item.(float32))
	case ArrayElementSoftObject:
		v := item.(SoftObjectValue)
		objref.Encode(w, v.Ref)
		w.AddU32(v.Unknown)
	}
}

func encodeStructArray(w *cursor.Writer, v ArrayValue) {
	h := v.StructHeader
	if v.Opaque != nil {
		w.AddU32(0)
		w.AddString(h.Name)
		w.AddString(h.InnerType)
		placeholder := w.Pos()
		w.AddU32(0)
		w.AddU32(0)
		w.AddString(string(h.ElementType))
		w.AddRaw(h.UUID[:])
		bodyStart := w.Pos()
		w.AddRaw(v.Opaque)
		w.PatchU32At(placeholder, uint32(w.Pos()-bodyStart))
		return
	}
	w.AddU32(uint32(len(v.StructItems)))
	w.AddString(h.Name)
	w.AddString(h.InnerType)
	placeholder := w.Pos()
	w.AddU32(0)
	w.AddU32(0)
	w.AddString(string(h.ElementType))
	w.AddRaw(h.UUID[:])
	bodyStart := w.Pos()
	for _, item := range v.StructItems {
		EncodeStructValue(w, h.ElementType, item)
	}
	w.PatchU32At(placeholder, uint32(w.Pos()-bodyStart))
}

func decodeSetValue(r *cursor.Reader, payloadSize uint32) (Value, error) {
	setTypeStr, err := r.String()
	if err != nil {
		return nil, err
	}
	if err := confirmZeroByte(r); err != nil {
		return nil, err
	}
	bracketStart := r.Offset()
	elementKind := SetElementKind(setTypeStr)

	discarded, err := r.U32()
	if err != nil {
		return nil, err
	}
	length, err := r.U32()
	if err != nil {
		return nil, err
	}

	result := SetValue{ElementKind: elementKind, Discarded: discarded}
	switch elementKind {
	case SetElementObject:
		items := make([]any, 0, length)
		for i := uint32(0); i < length; i++ {
			ref, err := objref.Decode(r)
			if err != nil {
				return nil, err
			}
			items = append(items, ref)
		}
		result.Items = items
	case SetElementUInt32:
		items := make([]any, 0, length)
		for i := uint32(0); i < length; i++ {
			v, err := r.U32()
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		result.Items = items
	case SetElementStruct:
		items := make([]any, 0, length)
		for i := uint32(0); i < length; i++ {
			a, err := r.U64()
			if err != nil {
				return nil, err
			}
			b, err := r.U64()
			if err != nil {
				return nil, err
			}
			items = append(items, setStructElement{A: a, B: b})
		}
		result.Items = items
	default:
		remaining := int(payloadSize) - (r.Offset() - bracketStart)
		raw, err := r.Raw(remaining)
		if err != nil {
			return nil, err
		}
		result.Unknown = true
		result.Opaque = raw
		return result, nil
	}

	if diff := r.Offset() - bracketStart; diff != int(payloadSize) {
		return nil, errs.New(errs.InvalidSize, "set payload: invalid size %d, expected %d", diff, payloadSize)
	}
	return result, nil
}

func encodeSetValue(w *cursor.Writer, v SetValue) {
	w.AddString(string(v.ElementKind))
	w.AddU8(0)
	w.AddU32(v.Discarded)
	if v.Unknown {
		w.AddU32(0) // length is unknown for an opaque-captured set; preserved as 0
		w.AddRaw(v.Opaque)
		return
	}
	w.AddU32(uint32(len(v.Items)))
	for _, item := range v.Items {
		switch v.ElementKind {
		case SetElementObject:
			objref.Encode(w, item.(objref.Reference))
		case SetElementUInt32:
			w.AddU32(item.(uint32))
		case SetElementStruct:
			e := item.(setStructElement)
			w.AddU64(e.A)
			w.AddU64(e.B)
		}
	}
}
