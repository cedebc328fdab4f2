package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonProgress is the per-lesson learning state: one row per lesson
// the user has ever opened.
type LessonProgress struct {
	ent.Schema
}

func (LessonProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").
			NotEmpty().
			Unique(),
		field.Int("completion_rate").
			Default(0).
			Comment("0-100; 100 means completed"),
		field.Int("quiz_score").
			Optional().
			Nillable().
			Comment("Latest quiz score 0-100, unset until a quiz is taken"),
		field.Int("mastery_level").
			Default(0).
			Comment("0=learning 1=familiar 2=proficient 3=mastered"),
		field.Int("review_count").
			Default(0),
		field.Time("next_review_date").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (LessonProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("next_review_date"),
	}
}
