package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// FeedbackEvent records a message submitted through the feedback form.
type FeedbackEvent struct {
	ent.Schema
}

func (FeedbackEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FeedbackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Text("message").
			NotEmpty().
			Comment("Free-form feedback text"),
	}
}
