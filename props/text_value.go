package props

import (
	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/errs"
)

// DecodeTextValue dispatches on TextPropertyHistoryType, discovered by
// peeking a u32+u8 ahead of the real cursor position rather than
// consuming it. Every variant but BASE then re-reads that same u32 as
// its flags field; BASE's own decoder never reads a flags field at
// all, so for BASE the 4 bytes the peek treated as flags are actually
// its single history_type byte plus the first three bytes of the
// namespace length prefix, and the peeked history byte is that
// prefix's fourth byte.
func DecodeTextValue(r *cursor.Reader) (TextValue, error) {
	historyType, err := cursor.Peek(r, func(r *cursor.Reader) (TextHistoryType, error) {
		if _, err := r.U32(); err != nil {
			return 0, err
		}
		b, err := r.U8()
		if err != nil {
			return 0, err
		}
		return TextHistoryType(b), nil
	})
	if err != nil {
		return nil, err
	}

	switch historyType {
	case TextHistoryBase:
		return decodeTextBase(r)
	case TextHistoryNamed, TextHistoryArgument:
		return decodeTextNamed(r, historyType)
	case TextHistoryTransform:
		return decodeTextTransform(r)
	case TextHistoryStringTableEntry:
		return decodeTextStringTableEntry(r)
	case TextHistoryNone:
		return decodeTextNone(r)
	default:
		return nil, errs.New(errs.Unknown, "unknown text history type %d", historyType)
	}
}

func confirmTextHistory(r *cursor.Reader, expected TextHistoryType) error {
	_, err := cursor.Confirm(r, func() (TextHistoryType, error) {
		b, err := r.U8()
		return TextHistoryType(b), err
	}, expected, errs.Unknown, "text history type")
	return err
}

func decodeTextBase(r *cursor.Reader) (TextValue, error) {
	if err := confirmTextHistory(r, TextHistoryBase); err != nil {
		return nil, err
	}
	namespace, err := r.String()
	if err != nil {
		return nil, err
	}
	key, err := r.String()
	if err != nil {
		return nil, err
	}
	value, err := r.String()
	if err != nil {
		return nil, err
	}
	return TextBaseValue{Namespace: namespace, Key: key, Value: value}, nil
}

func decodeTextArgument(r *cursor.Reader) (TextArgument, error) {
	name, err := r.String()
	if err != nil {
		return TextArgument{}, err
	}
	valueType, err := r.U8()
	if err != nil {
		return TextArgument{}, err
	}
	arg := TextArgument{Name: name, ValueType: TextArgumentType(valueType)}
	switch arg.ValueType {
	case TextArgumentInt:
		v, err := r.I32()
		if err != nil {
			return TextArgument{}, err
		}
		unknown, err := r.I32()
		if err != nil {
			return TextArgument{}, err
		}
		arg.IntValue = v
		arg.IntUnknown = unknown
	case TextArgumentText:
		tv, err := DecodeTextValue(r)
		if err != nil {
			return TextArgument{}, err
		}
		arg.Text = tv
	default:
		return TextArgument{}, errs.New(errs.Unknown, "unsupported text argument type %d", arg.ValueType)
	}
	return arg, nil
}

func decodeTextNamed(r *cursor.Reader, history TextHistoryType) (TextValue, error) {
	flags, err := r.U32()
	if err != nil {
		return nil, err
	}
	if err := confirmTextHistory(r, history); err != nil {
		return nil, err
	}
	sourceFormat, err := DecodeTextValue(r)
	if err != nil {
		return nil, err
	}
	count, err := r.U32()
	if err != nil {
		return nil, err
	}
	args := make([]TextArgument, 0, count)
	for i := uint32(0); i < count; i++ {
		arg, err := decodeTextArgument(r)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return TextNamedValue{Flags: flags, History: history, SourceFormat: sourceFormat, Arguments: args}, nil
}

func decodeTextTransform(r *cursor.Reader) (TextValue, error) {
	flags, err := r.U32()
	if err != nil {
		return nil, err
	}
	if err := confirmTextHistory(r, TextHistoryTransform); err != nil {
		return nil, err
	}
	source, err := DecodeTextValue(r)
	if err != nil {
		return nil, err
	}
	transformType, err := r.U8()
	if err != nil {
		return nil, err
	}
	return TextTransformValue{Flags: flags, History: TextHistoryTransform, Source: source, TransformType: transformType}, nil
}

func decodeTextStringTableEntry(r *cursor.Reader) (TextValue, error) {
	flags, err := r.U32()
	if err != nil {
		return nil, err
	}
	if err := confirmTextHistory(r, TextHistoryStringTableEntry); err != nil {
		return nil, err
	}
	tableID, err := r.String()
	if err != nil {
		return nil, err
	}
	tableKey, err := r.String()
	if err != nil {
		return nil, err
	}
	return TextStringTableEntryValue{Flags: flags, History: TextHistoryStringTableEntry, TableID: tableID, TableKey: tableKey}, nil
}

func decodeTextNone(r *cursor.Reader) (TextValue, error) {
	flags, err := r.U32()
	if err != nil {
		return nil, err
	}
	if err := confirmTextHistory(r, TextHistoryNone); err != nil {
		return nil, err
	}
	hasInvariant, err := r.U32Bool()
	if err != nil {
		return nil, err
	}
	value, err := r.String()
	if err != nil {
		return nil, err
	}
	return TextNoneValue{Flags: flags, History: TextHistoryNone, HasInvariant: hasInvariant, Value: value}, nil
}

// EncodeTextValue writes v per its variant's wire shape, the inverse of
// DecodeTextValue. TextBaseValue never writes a flags field, matching
// the asymmetry preserved on the decode side.
func EncodeTextValue(w *cursor.Writer, v TextValue) {
	switch tv := v.(type) {
	case TextBaseValue:
		w.AddU8(uint8(TextHistoryBase))
		w.AddString(tv.Namespace)
		w.AddString(tv.Key)
		w.AddString(tv.Value)
	case TextNamedValue:
		w.AddU32(tv.Flags)
		w.AddU8(uint8(tv.History))
		EncodeTextValue(w, tv.SourceFormat)
		w.AddU32(uint32(len(tv.Arguments)))
		for _, arg := range tv.Arguments {
			encodeTextArgument(w, arg)
		}
	case TextTransformValue:
		w.AddU32(tv.Flags)
		w.AddU8(uint8(TextHistoryTransform))
		EncodeTextValue(w, tv.Source)
		w.AddU8(tv.TransformType)
	case TextStringTableEntryValue:
		w.AddU32(tv.Flags)
		w.AddU8(uint8(TextHistoryStringTableEntry))
		w.AddString(tv.TableID)
		w.AddString(tv.TableKey)
	case TextNoneValue:
		w.AddU32(tv.Flags)
		w.AddU8(uint8(TextHistoryNone))
		w.AddU32Bool(tv.HasInvariant)
		w.AddString(tv.Value)
	}
}

func encodeTextArgument(w *cursor.Writer, arg TextArgument) {
	w.AddString(arg.Name)
	w.AddU8(uint8(arg.ValueType))
	switch arg.ValueType {
	case TextArgumentInt:
		w.AddI32(arg.IntValue)
		w.AddI32(arg.IntUnknown)
	case TextArgumentText:
		EncodeTextValue(w, arg.Text)
	}
}
