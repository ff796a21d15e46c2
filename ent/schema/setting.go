package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Setting is a single key/value entry: the active-profile pointer, the
// restricted-mode flag, and the parent-gate secret hash live here.
type Setting struct {
	ent.Schema
}

func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Immutable(),
		field.String("value"),
	}
}
