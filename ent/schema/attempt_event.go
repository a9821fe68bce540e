package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records assessment session lifecycle: one "start" event
// when a session begins and one "complete" or "abandon" event when it
// ends. Completed cognitive attempts carry the score; completed
// political attempts carry the label.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping the events of one session"),
		field.String("assessment").
			NotEmpty().
			Comment("political or cognitive"),
		field.String("action").
			NotEmpty().
			Comment("start, complete, or abandon"),
		field.Int("questions_answered").
			Default(0).
			Comment("Answers recorded (complete/abandon only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct answers (cognitive complete only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Elapsed session time in seconds (complete/abandon only)"),
		field.String("result_label").
			Default("").
			Comment("Band or quadrant label (complete only)"),
		field.Int("score").
			Default(0).
			Comment("Cognitive score (cognitive complete only)"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("assessment", "action"),
	}
}
