package props

import (
	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/errs"
	"github.com/lordralinc/sat-sav-parse/objref"
)

// DecodeStructValue dispatches on kind to read one of the well-known
// struct-value shapes, falling back to an attempted property-stream
// parse (and, on failure, an opaque byte capture) for anything else.
// remaining is the number of bytes left in the enclosing bracket; it is
// only consulted by the GUID and default/opaque paths.
func DecodeStructValue(r *cursor.Reader, kind StructKind, remaining int) (StructValue, error) {
	switch kind {
	case StructLinearColor:
		c, err := decodeColor4(r)
		return LinearColorValue(c), err
	case StructColor:
		c, err := decodeColor4(r)
		return ColorValue(c), err
	case StructVector:
		v, err := decodeVector3(r)
		return VectorValue(v), err
	case StructRotator:
		v, err := decodeVector3(r)
		return RotatorValue(v), err
	case StructQuat:
		return decodeQuat4(r)
	case StructBox:
		return decodeBox(r)
	case StructInventoryItem:
		return decodeInventoryItem(r)
	case StructFluidBox:
		v, err := r.F32()
		return FluidBoxValue{Value: v}, err
	case StructRailroadTrackPosition:
		return decodeRailroadTrackPosition(r)
	case StructDateTime:
		v, err := r.I64()
		return DateTimeValue{Ticks: v}, err
	case StructClientIdentityInfo:
		return decodeClientIdentityInfo(r)
	case StructSpawnData:
		return decodeSpawnData(r)
	case StructGUID:
		raw, err := r.Raw(remaining)
		return GUIDValue{Raw: raw}, err
	default:
		return decodeDefaultStructValue(r, remaining)
	}
}

func decodeDefaultStructValue(r *cursor.Reader, remaining int) (StructValue, error) {
	start := r.Offset()
	props, err := DeserializeProperties(r)
	if err != nil {
		raw, rawErr := r.RawAt(start, remaining)
		if rawErr != nil {
			return nil, rawErr
		}
		return OpaqueStructValue{Raw: raw}, nil
	}
	return PropertyStreamStructValue{Properties: props}, nil
}

func decodeColor4(r *cursor.Reader) (Color4, error) {
	red, err := r.F32()
	if err != nil {
		return Color4{}, err
	}
	green, err := r.F32()
	if err != nil {
		return Color4{}, err
	}
	blue, err := r.F32()
	if err != nil {
		return Color4{}, err
	}
	alpha, err := r.F32()
	if err != nil {
		return Color4{}, err
	}
	return Color4{R: red, G: green, B: blue, A: alpha}, nil
}

func decodeVector3(r *cursor.Reader) (Vector3, error) {
	x, err := r.F64()
	if err != nil {
		return Vector3{}, err
	}
	y, err := r.F64()
	if err != nil {
		return Vector3{}, err
	}
	z, err := r.F64()
	if err != nil {
		return Vector3{}, err
	}
	return Vector3{X: x, Y: y, Z: z}, nil
}

func decodeQuat4(r *cursor.Reader) (StructValue, error) {
	x, err := r.F64()
	if err != nil {
		return nil, err
	}
	y, err := r.F64()
	if err != nil {
		return nil, err
	}
	z, err := r.F64()
	if err != nil {
		return nil, err
	}
	w, err := r.F64()
	if err != nil {
		return nil, err
	}
	return QuatValue{X: x, Y: y, Z: z, W: w}, nil
}

func decodeBox(r *cursor.Reader) (StructValue, error) {
	min, err := decodeVector3(r)
	if err != nil {
		return nil, err
	}
	max, err := decodeVector3(r)
	if err != nil {
		return nil, err
	}
	isValid, err := r.U8Bool()
	if err != nil {
		return nil, err
	}
	return BoxValue{Min: min, Max: max, IsValid: isValid}, nil
}

func decodeInventoryItem(r *cursor.Reader) (StructValue, error) {
	if err := confirmZeroU32(r); err != nil {
		return nil, err
	}
	name, err := r.String()
	if err != nil {
		return nil, err
	}
	hasProps, err := r.U32Bool()
	if err != nil {
		return nil, err
	}
	item := InventoryItemValue{ItemName: name, HasProperties: hasProps}
	if !hasProps {
		return item, nil
	}
	if err := confirmZeroU32(r); err != nil {
		return nil, err
	}
	typeStr, err := r.String()
	if err != nil {
		return nil, err
	}
	item.PropertiesType = typeStr
	propsSize, err := r.U32()
	if err != nil {
		return nil, err
	}
	err = r.ExpectSize(int(propsSize), "inventory item properties", func() error {
		props, err := DeserializeProperties(r)
		if err != nil {
			return err
		}
		item.Properties = props
		return nil
	})
	return item, err
}

func decodeRailroadTrackPosition(r *cursor.Reader) (StructValue, error) {
	ref, err := objref.Decode(r)
	if err != nil {
		return nil, err
	}
	offset, err := r.F32()
	if err != nil {
		return nil, err
	}
	forward, err := r.F32()
	if err != nil {
		return nil, err
	}
	return RailroadTrackPositionValue{Ref: ref, Offset: offset, Forward: forward}, nil
}

func decodeClientIdentityInfo(r *cursor.Reader) (StructValue, error) {
	uuid, err := r.String()
	if err != nil {
		return nil, err
	}
	n, err := r.U32()
	if err != nil {
		return nil, err
	}
	entries := make([]ClientIdentityEntry, 0, n)
	for i := uint32(0); i < n; i++ {
		variant, err := r.U8()
		if err != nil {
			return nil, err
		}
		length, err := r.U32()
		if err != nil {
			return nil, err
		}
		raw, err := r.Raw(int(length))
		if err != nil {
			return nil, err
		}
		entries = append(entries, ClientIdentityEntry{Variant: ClientIdentityVariant(variant), Raw: raw})
	}
	return ClientIdentityInfoValue{UUID: uuid, Entries: entries}, nil
}

// decodeSpawnData preserves the source's asymmetry of reading Properties
// past the end of the size bracket that covers only LevelPath.
func decodeSpawnData(r *cursor.Reader) (StructValue, error) {
	name, err := r.String()
	if err != nil {
		return nil, err
	}
	if _, err := cursor.Confirm(r, r.String, "ObjectProperty", errs.Unknown, "spawn data type"); err != nil {
		return nil, err
	}
	size, err := r.U32()
	if err != nil {
		return nil, err
	}
	if err := confirmZeroU32(r); err != nil {
		return nil, err
	}
	if err := confirmZeroByte(r); err != nil {
		return nil, err
	}
	var levelPath objref.Reference
	err = r.ExpectSize(int(size), "spawn data level path", func() error {
		ref, err := objref.Decode(r)
		if err != nil {
			return err
		}
		levelPath = ref
		return nil
	})
	if err != nil {
		return nil, err
	}
	props, err := DeserializeProperties(r)
	if err != nil {
		return nil, err
	}
	return SpawnDataValue{Name: name, Size: size, LevelPath: levelPath, Properties: props}, nil
}

func confirmZeroU32(r *cursor.Reader) error {
	_, err := cursor.Confirm(r, r.U32, uint32(0), errs.Unknown, "reserved u32")
	return err
}
