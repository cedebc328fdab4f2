package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent records one learning action. The streak calculation
// derives consecutive-day runs from these timestamps.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("lesson_completed, quiz_taken, review_done, tutor_chat"),
		field.String("lesson_id").
			Default("").
			Comment("Empty for activity not tied to a lesson"),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("lesson_id"),
	}
}
