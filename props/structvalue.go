package props

import "github.com/lordralinc/sat-sav-parse/objref"

// StructValue is the payload a StructProperty (or a struct-typed array
// or map value) carries, dispatched by its wire StructKind.
type StructValue interface{ isStructValue() }

type Vector3 struct{ X, Y, Z float64 }

type Quat4 struct{ X, Y, Z, W float64 }

type Color4 struct{ R, G, B, A float32 }

// LinearColorValue and ColorValue share the f32x4 wire shape of Color4
// but are kept as distinct named types for fidelity with the two
// distinct StructKind tags that select them.
type LinearColorValue Color4

func (LinearColorValue) isStructValue() {}

type ColorValue Color4

func (ColorValue) isStructValue() {}

type VectorValue Vector3

func (VectorValue) isStructValue() {}

type RotatorValue Vector3

func (RotatorValue) isStructValue() {}

type QuatValue Quat4

func (QuatValue) isStructValue() {}

type BoxValue struct {
	Min, Max Vector3
	IsValid  bool
}

func (BoxValue) isStructValue() {}

// InventoryItemValue models the InventoryItem struct shape, whose body
// is only present when HasProperties is true.
type InventoryItemValue struct {
	ItemName       string
	HasProperties  bool
	PropertiesType string
	Properties     []Property
}

func (InventoryItemValue) isStructValue() {}

type FluidBoxValue struct{ Value float32 }

func (FluidBoxValue) isStructValue() {}

type RailroadTrackPositionValue struct {
	Ref     objref.Reference
	Offset  float32
	Forward float32
}

func (RailroadTrackPositionValue) isStructValue() {}

// DateTimeValue holds raw ticks (100ns units since year-1 proleptic
// Gregorian), matching the source's DateTime struct exactly.
type DateTimeValue struct{ Ticks int64 }

func (DateTimeValue) isStructValue() {}

type ClientIdentityEntry struct {
	Variant ClientIdentityVariant
	Raw     []byte
}

type ClientIdentityInfoValue struct {
	UUID    string
	Entries []ClientIdentityEntry
}

func (ClientIdentityInfoValue) isStructValue() {}

// SpawnDataValue models SpawnData. Properties is read past the end of
// this struct's own size bracket in the source (the bracket covers only
// LevelPath) — a faithfully preserved wire-layout asymmetry, not a
// property-stream nested inside LevelPath's region.
type SpawnDataValue struct {
	Name       string
	Size       uint32
	LevelPath  objref.Reference
	Properties []Property
}

func (SpawnDataValue) isStructValue() {}

type GUIDValue struct{ Raw []byte }

func (GUIDValue) isStructValue() {}

// OpaqueStructValue is the fallback for both a genuinely unrecognized
// StructKind and a recognized one whose property-stream decode attempt
// failed partway through.
type OpaqueStructValue struct{ Raw []byte }

func (OpaqueStructValue) isStructValue() {}

// PropertyStreamStructValue is the default struct shape: a nested
// property stream, used whenever StructKind doesn't match one of the
// well-known named shapes above.
type PropertyStreamStructValue struct{ Properties []Property }

func (PropertyStreamStructValue) isStructValue() {}
