package props

import (
	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/objref"
)

// EncodeStructValue writes v's body per kind's wire shape, the inverse
// of DecodeStructValue.
func EncodeStructValue(w *cursor.Writer, kind StructKind, v StructValue) {
	switch kind {
	case StructLinearColor:
		encodeColor4(w, Color4(v.(LinearColorValue)))
	case StructColor:
		encodeColor4(w, Color4(v.(ColorValue)))
	case StructVector:
		encodeVector3(w, Vector3(v.(VectorValue)))
	case StructRotator:
		encodeVector3(w, Vector3(v.(RotatorValue)))
	case StructQuat:
		q := v.(QuatValue)
		w.AddF64(q.X)
		w.AddF64(q.Y)
		w.AddF64(q.Z)
		w.AddF64(q.W)
	case StructBox:
		b := v.(BoxValue)
		encodeVector3(w, b.Min)
		encodeVector3(w, b.Max)
		w.AddU8Bool(b.IsValid)
	case StructInventoryItem:
		encodeInventoryItem(w, v.(InventoryItemValue))
	case StructFluidBox:
		w.AddF32(v.(FluidBoxValue).Value)
	case StructRailroadTrackPosition:
		rt := v.(RailroadTrackPositionValue)
		objref.Encode(w, rt.Ref)
		w.AddF32(rt.Offset)
		w.AddF32(rt.Forward)
	case StructDateTime:
		w.AddI64(v.(DateTimeValue).Ticks)
	case StructClientIdentityInfo:
		encodeClientIdentityInfo(w, v.(ClientIdentityInfoValue))
	case StructSpawnData:
		encodeSpawnData(w, v.(SpawnDataValue))
	case StructGUID:
		w.AddRaw(v.(GUIDValue).Raw)
	default:
		encodeDefaultStructValue(w, v)
	}
}

func encodeDefaultStructValue(w *cursor.Writer, v StructValue) {
	switch sv := v.(type) {
	case PropertyStreamStructValue:
		SerializeProperties(w, sv.Properties)
	case OpaqueStructValue:
		w.AddRaw(sv.Raw)
	}
}

func encodeColor4(w *cursor.Writer, c Color4) {
	w.AddF32(c.R)
	w.AddF32(c.G)
	w.AddF32(c.B)
	w.AddF32(c.A)
}

func encodeVector3(w *cursor.Writer, v Vector3) {
	w.AddF64(v.X)
	w.AddF64(v.Y)
	w.AddF64(v.Z)
}

func encodeInventoryItem(w *cursor.Writer, item InventoryItemValue) {
	w.AddU32(0)
	w.AddString(item.ItemName)
	w.AddU32Bool(item.HasProperties)
	if !item.HasProperties {
		return
	}
	w.AddU32(0)
	w.AddString(item.PropertiesType)
	w.Bracket(4, func(w *cursor.Writer) {
		SerializeProperties(w, item.Properties)
	})
}

func encodeClientIdentityInfo(w *cursor.Writer, info ClientIdentityInfoValue) {
	w.AddString(info.UUID)
	w.AddU32(uint32(len(info.Entries)))
	for _, e := range info.Entries {
		w.AddU8(uint8(e.Variant))
		w.AddU32(uint32(len(e.Raw)))
		w.AddRaw(e.Raw)
	}
}

// encodeSpawnData mirrors decodeSpawnData's asymmetric layout: the size
// field measures only LevelPath's bytes, with two reserved zero fields
// sitting between the size field and the region it measures, and
// Properties following after the bracket rather than inside it.
func encodeSpawnData(w *cursor.Writer, sd SpawnDataValue) {
	w.AddString(sd.Name)
	w.AddString("ObjectProperty")
	placeholder := w.Pos()
	w.AddU32(0)
	w.AddU32(0)
	w.AddU8(0)
	bodyStart := w.Pos()
	objref.Encode(w, sd.LevelPath)
	w.PatchU32At(placeholder, uint32(w.Pos()-bodyStart))
	SerializeProperties(w, sd.Properties)
}
