package props

// Kind is a property's wire type_name discriminant (PropertyTypeName).
type Kind string

const (
	KindBool       Kind = "BoolProperty"
	KindByte       Kind = "ByteProperty"
	KindEnum       Kind = "EnumProperty"
	KindFloat      Kind = "FloatProperty"
	KindDouble     Kind = "DoubleProperty"
	KindInt        Kind = "IntProperty"
	KindInt8       Kind = "Int8Property"
	KindInt64      Kind = "Int64Property"
	KindUInt32     Kind = "UInt32Property"
	KindName       Kind = "NameProperty"
	KindStr        Kind = "StrProperty"
	KindObject     Kind = "ObjectProperty"
	KindSoftObject Kind = "SoftObjectProperty"
	KindText       Kind = "TextProperty"
	KindArray      Kind = "ArrayProperty"
	KindSet        Kind = "SetProperty"
	KindStruct     Kind = "StructProperty"
	KindMap        Kind = "MapProperty"
)

// ArrayElementKind discriminates ArrayProperty's homogeneous element type.
type ArrayElementKind string

const (
	ArrayElementByte       ArrayElementKind = "ByteProperty"
	ArrayElementEnum       ArrayElementKind = "EnumProperty"
	ArrayElementStr        ArrayElementKind = "StrProperty"
	ArrayElementInterface  ArrayElementKind = "InterfaceProperty"
	ArrayElementObject     ArrayElementKind = "ObjectProperty"
	ArrayElementInt        ArrayElementKind = "IntProperty"
	ArrayElementInt64      ArrayElementKind = "Int64Property"
	ArrayElementFloat      ArrayElementKind = "FloatProperty"
	ArrayElementSoftObject ArrayElementKind = "SoftObjectProperty"
	ArrayElementStruct     ArrayElementKind = "StructProperty"
)

// SetElementKind discriminates SetProperty's element type.
type SetElementKind string

const (
	SetElementUInt32 SetElementKind = "UInt32Property"
	SetElementStruct SetElementKind = "StructProperty"
	SetElementObject SetElementKind = "ObjectProperty"
)

// MapKeyKind discriminates MapProperty's key type.
type MapKeyKind string

const (
	MapKeyInt    MapKeyKind = "IntProperty"
	MapKeyInt64  MapKeyKind = "Int64Property"
	MapKeyName   MapKeyKind = "NameProperty"
	MapKeyStr    MapKeyKind = "StrProperty"
	MapKeyEnum   MapKeyKind = "EnumProperty"
	MapKeyObject MapKeyKind = "ObjectProperty"
	MapKeyStruct MapKeyKind = "StructProperty"
)

// MapValueKind discriminates MapProperty's value type.
type MapValueKind string

const (
	MapValueByte   MapValueKind = "ByteProperty"
	MapValueBool   MapValueKind = "BoolProperty"
	MapValueInt    MapValueKind = "IntProperty"
	MapValueInt64  MapValueKind = "Int64Property"
	MapValueFloat  MapValueKind = "FloatProperty"
	MapValueDouble MapValueKind = "DoubleProperty"
	MapValueStr    MapValueKind = "StrProperty"
	MapValueObject MapValueKind = "ObjectProperty"
	MapValueText   MapValueKind = "TextProperty"
	MapValueStruct MapValueKind = "StructProperty"
)

// StructKind discriminates a StructProperty/struct-array/struct-set value's
// inner shape.
type StructKind string

const (
	StructLinearColor           StructKind = "LinearColor"
	StructColor                 StructKind = "Color"
	StructVector                StructKind = "Vector"
	StructRotator               StructKind = "Rotator"
	StructQuat                  StructKind = "Quat"
	StructBox                   StructKind = "Box"
	StructInventoryItem         StructKind = "InventoryItem"
	StructFluidBox              StructKind = "FluidBox"
	StructRailroadTrackPosition StructKind = "RailroadTrackPosition"
	StructDateTime              StructKind = "DateTime"
	StructClientIdentityInfo    StructKind = "ClientIdentityInfo"
	StructSpawnData             StructKind = "SpawnData"
	StructGUID                  StructKind = "Guid"
)

// TextHistoryType discriminates a TextValue's variant (TextPropertyHistoryType).
type TextHistoryType uint8

const (
	TextHistoryBase             TextHistoryType = 0
	TextHistoryNamed            TextHistoryType = 1
	TextHistoryArgument         TextHistoryType = 3
	TextHistoryTransform        TextHistoryType = 10
	TextHistoryStringTableEntry TextHistoryType = 11
	TextHistoryNone             TextHistoryType = 255
)

// TextArgumentType discriminates a TextValue argument's wire value type.
type TextArgumentType uint8

const (
	TextArgumentInt    TextArgumentType = 0
	TextArgumentUInt   TextArgumentType = 1
	TextArgumentGender TextArgumentType = 5
	TextArgumentFloat  TextArgumentType = 2
	TextArgumentDouble TextArgumentType = 3
	TextArgumentText   TextArgumentType = 4
)

// ClientIdentityVariant discriminates ClientIdentityInfo's per-entry variant.
type ClientIdentityVariant uint8

const (
	ClientIdentityEpic  ClientIdentityVariant = 1
	ClientIdentitySteam ClientIdentityVariant = 6
)
