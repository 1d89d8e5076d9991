// Package objref implements the two-string object reference pair used
// throughout the save format to point at an actor or component by its
// owning level and its path within that level.
package objref

import "fmt"

// Reference identifies an object by level name and in-level path, the
// Go analogue of models/object_reference.py's ObjectReference. Both
// fields participate in equality and hashing (via comparable struct
// equality, since Go structs of comparable fields are already usable as
// map keys without a custom Hash method).
type Reference struct {
	LevelName string
	PathName  string
}

// IsNone reports whether r is the sentinel "no reference" value: both
// fields empty.
func (r Reference) IsNone() bool {
	return r.LevelName == "" && r.PathName == ""
}

func (r Reference) String() string {
	if r.IsNone() {
		return "<none>"
	}
	return fmt.Sprintf("%s:%s", r.LevelName, r.PathName)
}
