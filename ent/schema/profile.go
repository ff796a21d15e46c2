package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is one tracked child: display name, curriculum variant, and
// an optional real-world start date that anchors the calendar mapping.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			Unique().
			Immutable().
			Comment("Opaque unique profile identifier (UUID)"),
		field.String("display_name").
			NotEmpty(),
		field.String("variant").
			Comment("Curriculum variant key: standard or junior"),
		field.String("start_date").
			Optional().
			Default("").
			Comment("Curriculum start date as YYYY-MM-DD, empty when unscheduled"),
		field.Int("grade").
			Default(0).
			Comment("Grade input the variant was derived from"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
		index.Fields("created_at"),
	}
}
