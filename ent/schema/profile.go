package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile is the single persisted record of latest assessment results.
// One row per profile key; saves replace the data blob wholesale so two
// sessions can never interleave stale fields.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Fixed profile identifier (single-user app: \"local\")"),
		field.JSON("data", map[string]any{}).
			Comment("Whole PersistedProfile as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the record was last replaced"),
	}
}
