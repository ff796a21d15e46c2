package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ledger holds one profile's full completion ledger as a single JSON
// document: lesson ordinal (stringified) to sub-task flag map. Writing
// the whole row per toggle keeps each per-profile update atomic.
type Ledger struct {
	ent.Schema
}

func (Ledger) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			Unique().
			Immutable().
			Comment("Owning profile identifier"),
		field.JSON("flags", map[string]map[string]bool{}).
			Comment("Lesson ordinal -> flag key -> set"),
	}
}

func (Ledger) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
	}
}
