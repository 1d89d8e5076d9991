// Package diag carries scoped, human-readable log enrichment through a
// decode/encode call chain without affecting parse results.
//
// The source's logger.py keeps this state in a contextvars.ContextVar
// mutated by a context manager; this module has no implicit per-goroutine
// state, so Context is an explicit, immutable value threaded as a plain
// parameter. With returns a derived Context and never mutates the receiver,
// mirroring logging_with_context's copy-then-restore discipline.
package diag

import (
	"fmt"
	"strings"
)

// Context is an ordered, immutable stack of key/value fields.
type Context struct {
	fields []Field
}

// Field is one key/value pair in a Context.
type Field struct {
	Key   string
	Value string
}

// Empty is the zero-value starting Context.
var Empty = Context{}

// With returns a new Context with key=value appended. A repeated "struct"
// key is chained with "->" the way get_struct_name nesting is rendered in
// the source, instead of being overwritten.
func (c Context) With(key string, value any) Context {
	rendered := fmt.Sprintf("%v", value)
	next := make([]Field, len(c.fields), len(c.fields)+1)
	copy(next, c.fields)

	if key == "struct" {
		for i := range next {
			if next[i].Key == "struct" {
				next[i].Value = next[i].Value + "->'" + rendered + "'"
				return Context{fields: next}
			}
		}
	}

	return Context{fields: append(next, Field{Key: key, Value: "'" + rendered + "'"})}
}

// WithOffset is shorthand for With("offset", offset), the pairing the
// source attaches at every recursive deserialize call site.
func (c Context) WithOffset(offset int) Context {
	return c.With("offset", offset)
}

// Fields renders the context as a slog-friendly attribute slice.
func (c Context) Fields() []Field {
	return c.fields
}

// String renders " [k=v k2=v2]" (with a leading space) the way
// ContextFilter formats record.context, or "" when empty.
func (c Context) String() string {
	if len(c.fields) == 0 {
		return ""
	}
	parts := make([]string, len(c.fields))
	for i, f := range c.fields {
		parts[i] = f.Key + "=" + f.Value
	}
	return " [" + strings.Join(parts, " ") + "]"
}

// Preview renders a value for a trace log attribute: hex for bytes, %#v
// for everything else, truncated to keep log lines bounded. Mirrors
// repr_result in the source.
func Preview(v any) string {
	const maxLen = 120
	var s string
	if b, ok := v.([]byte); ok {
		s = fmt.Sprintf("% x", b)
	} else {
		s = fmt.Sprintf("%#v", v)
	}
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
