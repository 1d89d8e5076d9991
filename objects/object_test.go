package objects

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/objref"
	"github.com/lordralinc/sat-sav-parse/props"
)

func TestActorObjectRoundTrip(t *testing.T) {
	in := ActorObject{
		SaveVersion: 42,
		Flag:        0,
		Parent:      objref.Reference{LevelName: "Persistent_Level", PathName: "Persistent_Level:PersistentLevel.Build_X"},
		Components: []objref.Reference{
			{LevelName: "Persistent_Level", PathName: "Persistent_Level:PersistentLevel.Build_X.Component_0"},
		},
		Properties: []props.Property{
			{Name: "mHealth", Type: props.KindFloat, Value: props.FloatValue(100)},
		},
		Trailing: []byte{1, 2, 3, 4},
	}
	w := cursor.NewWriter()
	EncodeObject(w, in)
	r := cursor.NewReader(w.Bytes())
	out, err := DecodeObject(r, HeaderActor)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := out.(ActorObject)
	if !ok {
		t.Fatalf("expected ActorObject, got %T", out)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if !r.AtEOF() {
		t.Fatalf("%d trailing bytes", r.Remaining())
	}
}

func TestActorObjectEmptyTrailing(t *testing.T) {
	in := ActorObject{SaveVersion: 1, Flag: 0}
	w := cursor.NewWriter()
	EncodeObject(w, in)
	r := cursor.NewReader(w.Bytes())
	out, err := DecodeObject(r, HeaderActor)
	if err != nil {
		t.Fatal(err)
	}
	got := out.(ActorObject)
	if len(got.Trailing) != 0 {
		t.Fatalf("expected no trailing bytes, got %d", len(got.Trailing))
	}
	if len(got.Components) != 0 {
		t.Fatalf("expected no components, got %d", len(got.Components))
	}
}

func TestComponentObjectRoundTrip(t *testing.T) {
	in := ComponentObject{
		SaveVersion: 7,
		Flag:        1,
		Properties: []props.Property{
			{Name: "mConnected", Type: props.KindBool, Value: props.BoolValue(true)},
		},
		Trailing: []byte{0xDE, 0xAD},
	}
	w := cursor.NewWriter()
	EncodeObject(w, in)
	r := cursor.NewReader(w.Bytes())
	out, err := DecodeObject(r, HeaderComponent)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := out.(ComponentObject)
	if !ok {
		t.Fatalf("expected ComponentObject, got %T", out)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if !bytes.Equal(got.Trailing, in.Trailing) {
		t.Fatalf("trailing bytes: got %v, want %v", got.Trailing, in.Trailing)
	}
}

func TestDecodeObjectUnknownHeaderType(t *testing.T) {
	r := cursor.NewReader([]byte{0, 0, 0, 0})
	if _, err := DecodeObject(r, HeaderType(99)); err == nil {
		t.Fatal("expected error for unknown header type")
	}
}
