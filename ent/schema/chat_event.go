package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatEvent records one tutor chat message, user or assistant, so a
// session transcript can be replayed.
type ChatEvent struct {
	ent.Schema
}

func (ChatEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChatEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping messages in one tutor session"),
		field.String("role").
			NotEmpty().
			Comment("user or assistant"),
		field.Text("content").
			NotEmpty(),
	}
}

func (ChatEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
