package objref

import (
	"github.com/lordralinc/sat-sav-parse/cursor"
)

// Decode reads a Reference as two consecutive length-prefixed strings:
// level name then path name.
func Decode(r *cursor.Reader) (Reference, error) {
	return cursor.Get(r, "ObjectReference", func(r *cursor.Reader) (Reference, error) {
		level, err := r.String()
		if err != nil {
			return Reference{}, err
		}
		path, err := r.String()
		if err != nil {
			return Reference{}, err
		}
		return Reference{LevelName: level, PathName: path}, nil
	})
}

// Encode writes ref as two consecutive length-prefixed strings.
func Encode(w *cursor.Writer, ref Reference) *cursor.Writer {
	w.AddString(ref.LevelName)
	w.AddString(ref.PathName)
	return w
}
