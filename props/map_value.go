package props

import (
	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/errs"
	"github.com/lordralinc/sat-sav-parse/objref"
)

func decodeMapValue(r *cursor.Reader) (Value, error) {
	keyTypeStr, err := r.String()
	if err != nil {
		return nil, err
	}
	valueTypeStr, err := r.String()
	if err != nil {
		return nil, err
	}
	if err := confirmZeroByte(r); err != nil {
		return nil, err
	}
	mode, err := r.U32()
	if err != nil {
		return nil, err
	}
	count, err := r.U32()
	if err != nil {
		return nil, err
	}

	keyKind := MapKeyKind(keyTypeStr)
	valueKind := MapValueKind(valueTypeStr)
	entries := NewOrderedMap[any, any]()
	for i := uint32(0); i < count; i++ {
		key, err := decodeMapKey(r, keyKind)
		if err != nil {
			return nil, err
		}
		value, err := decodeMapValueEntry(r, valueKind, keyKind)
		if err != nil {
			return nil, err
		}
		entries.Set(key, value)
	}
	return MapValue{KeyKind: keyKind, ValueKind: valueKind, Mode: mode, Entries: entries}, nil
}

func decodeMapKey(r *cursor.Reader, kind MapKeyKind) (any, error) {
	switch kind {
	case MapKeyInt:
		return r.I32()
	case MapKeyInt64:
		return r.I64()
	case MapKeyName, MapKeyStr, MapKeyEnum:
		return r.String()
	case MapKeyObject:
		return objref.Decode(r)
	case MapKeyStruct:
		a, err := r.I32()
		if err != nil {
			return nil, err
		}
		b, err := r.I32()
		if err != nil {
			return nil, err
		}
		c, err := r.I32()
		if err != nil {
			return nil, err
		}
		return mapStructKey{A: a, B: b, C: c}, nil
	default:
		return nil, errs.New(errs.Unknown, "unknown map key kind %q", kind)
	}
}

func decodeMapValueEntry(r *cursor.Reader, kind MapValueKind, keyKind MapKeyKind) (any, error) {
	switch kind {
	case MapValueByte:
		if keyKind == MapKeyStr {
			return r.String()
		}
		return r.U8()
	case MapValueBool:
		return r.U8Bool()
	case MapValueInt:
		return r.I32()
	case MapValueInt64:
		return r.I64()
	case MapValueFloat:
		return r.F32()
	case MapValueDouble:
		return r.F64()
	case MapValueStr:
		return r.String()
	case MapValueObject:
		return objref.Decode(r)
	case MapValueText:
		return DecodeTextValue(r)
	case MapValueStruct:
		return DeserializeProperties(r)
	default:
		return nil, errs.New(errs.Unknown, "unknown map value kind %q", kind)
	}
}

func encodeMapValue(w *cursor.Writer, v MapValue) {
	w.AddString(string(v.KeyKind))
	w.AddString(string(v.ValueKind))
	w.AddU8(0)
	w.AddU32(v.Mode)
	entries := v.Entries.Entries()
	w.AddU32(uint32(len(entries)))
	for _, e := range entries {
		encodeMapKey(w, v.KeyKind, e.Key)
		encodeMapValueEntry(w, v.ValueKind, v.KeyKind, e.Value)
	}
}

func encodeMapKey(w *cursor.Writer, kind MapKeyKind, key any) {
	switch kind {
	case MapKeyInt:
		w.AddI32(key.(int32))
	case MapKeyInt64:
		w.AddI64(key.(int64))
	case MapKeyName, MapKeyStr, MapKeyEnum:
		w.AddString(key.(string))
	case MapKeyObject:
		objref.Encode(w, key.(objref.Reference))
	case MapKeyStruct:
		k := key.(mapStructKey)
		w.AddI32(k.A)
		w.AddI32(k.B)
		w.AddI32(k.C)
	}
}

func encodeMapValueEntry(w *cursor.Writer, kind MapValueKind, keyKind MapKeyKind, value any) {
	switch kind {
	case MapValueByte:
		if keyKind == MapKeyStr {
			w.AddString(value.(string))
			return
		}
		w.AddU8(value.(uint8))
	case MapValueBool:
		w.AddU8Bool(value.(bool))
	case MapValueInt:
		w.AddI32(value.(int32))
	case MapValueInt64:
		w.AddI64(value.(int64))
	case MapValueFloat:
		w.AddF32(value.(float32))
	case MapValueDouble:
		w.AddF64(value.(float64))
	case MapValueStr:
		w.AddString(value.(string))
	case MapValueObject:
		objref.Encode(w, value.(objref.Reference))
	case MapValueText:
		EncodeTextValue(w, value.(TextValue))
	case MapValueStruct:
		SerializeProperties(w, value.([]Property))
	}
}
