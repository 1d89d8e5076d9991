package objects

import (
	"testing"

	"github.com/lordralinc/sat-sav-parse/cursor"
)

func TestComponentHeaderRoundTrip(t *testing.T) {
	in := ComponentHeader{
		Common: Common{
			TypePath:     "/Script/FactoryGame.FGPipeConnectionComponent",
			RootObject:   "Persistent_Level:PersistentLevel.Build_Pipe_1",
			InstanceName: "PipeConnection0",
			Unknown:      0,
		},
		ParentActorName: "Build_Pipe_1",
	}
	w := cursor.NewWriter()
	EncodeHeader(w, in)
	r := cursor.NewReader(w.Bytes())
	out, err := DecodeHeader(r)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := out.(ComponentHeader)
	if !ok {
		t.Fatalf("expected ComponentHeader, got %T", out)
	}
	if got != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, in)
	}
}

// decodeActorHeader reads NeedTransform immediately after Common, ahead of
// the transform fields; encodeActorHeader writes it after Scale instead.
// This test pins the decode side to the observed wire layout by hand-laying
// out bytes in that exact order, independent of encodeActorHeader.
func TestActorHeaderDecodeReadOrder(t *testing.T) {
	w := cursor.NewWriter()
	w.AddString("/Script/FactoryGame.FGBuildableConveyorBeltInline")
	w.AddString("Persistent_Level:PersistentLevel.Conveyor_1")
	w.AddString("Conveyor_1")
	w.AddU32(0)           // Unknown
	w.AddU32Bool(true)    // NeedTransform, read here per the observed layout
	w.AddF32(0).AddF32(0).AddF32(0).AddF32(1) // Rotation
	w.AddF32(10).AddF32(20).AddF32(30)        // Position
	w.AddF32(1).AddF32(1).AddF32(1)           // Scale
	w.AddU32Bool(false) // WasPlacedInLevel

	r := cursor.NewReader(w.Bytes())
	h, err := DecodeHeader(r)
	if err != nil {
		t.Fatal(err)
	}
	actor, ok := h.(ActorHeader)
	if !ok {
		t.Fatalf("expected ActorHeader, got %T", h)
	}
	if !actor.NeedTransform {
		t.Fatal("NeedTransform not read from its pre-rotation position")
	}
	if actor.Position != (Vector3{X: 10, Y: 20, Z: 30}) {
		t.Fatalf("Position: got %+v", actor.Position)
	}
	if actor.Scale != (Vector3{X: 1, Y: 1, Z: 1}) {
		t.Fatalf("Scale: got %+v", actor.Scale)
	}
	if actor.WasPlacedInLevel {
		t.Fatal("WasPlacedInLevel: got true, want false")
	}
	if !r.AtEOF() {
		t.Fatalf("%d trailing bytes", r.Remaining())
	}
}

// encodeActorHeader writes NeedTransform after Scale, not mirroring
// decodeActorHeader's read order. This test pins that write-side layout.
func TestActorHeaderEncodeWriteOrder(t *testing.T) {
	in := ActorHeader{
		Common:           Common{TypePath: "T", RootObject: "R", InstanceName: "I"},
		Rotation:         Quaternion{X: 0, Y: 0, Z: 0, W: 1},
		Position:         Vector3{X: 1, Y: 2, Z: 3},
		Scale:            Vector3{X: 1, Y: 1, Z: 1},
		NeedTransform:    true,
		WasPlacedInLevel: true,
	}
	w := cursor.NewWriter()
	EncodeHeader(w, in)
	r := cursor.NewReader(w.Bytes())

	if _, err := r.U32(); err != nil { // header type tag
		t.Fatal(err)
	}
	if _, err := r.String(); err != nil { // TypePath
		t.Fatal(err)
	}
	if _, err := r.String(); err != nil { // RootObject
		t.Fatal(err)
	}
	if _, err := r.String(); err != nil { // InstanceName
		t.Fatal(err)
	}
	if _, err := r.U32(); err != nil { // Unknown
		t.Fatal(err)
	}
	// Rotation (4xf32), Position (3xf32), Scale (3xf32) come next, before
	// NeedTransform on the write side.
	for i := 0; i < 4+3+3; i++ {
		if _, err := r.F32(); err != nil {
			t.Fatalf("transform field %d: %v", i, err)
		}
	}
	needTransform, err := r.U32Bool()
	if err != nil {
		t.Fatal(err)
	}
	if !needTransform {
		t.Fatal("expected NeedTransform to be the first bool after the transform block")
	}
	wasPlaced, err := r.U32Bool()
	if err != nil {
		t.Fatal(err)
	}
	if !wasPlaced {
		t.Fatal("expected WasPlacedInLevel last")
	}
	if !r.AtEOF() {
		t.Fatalf("%d trailing bytes", r.Remaining())
	}
}
