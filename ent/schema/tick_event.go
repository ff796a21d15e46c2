package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TickEvent records one sub-task flag change on a profile's ledger.
// Rows are append-only; the auto-increment id orders them.
type TickEvent struct {
	ent.Schema
}

func (TickEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").NotEmpty(),
		field.Int("ordinal").Positive(),
		field.String("flag").NotEmpty(),
		field.Bool("value"),
		field.Time("occurred_at").
			Default(time.Now).
			Immutable(),
	}
}

func (TickEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
	}
}
