package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// GroupDismissal marks a seasonal lesson group as dismissed. Group ids
// are deterministic per season occurrence (e.g. self_assessment_2026),
// so a dismissal naturally expires when the next occurrence produces a
// new id.
type GroupDismissal struct {
	ent.Schema
}

func (GroupDismissal) Fields() []ent.Field {
	return []ent.Field{
		field.String("group_id").
			NotEmpty().
			Unique(),
		field.Time("dismissed_at").
			Default(time.Now),
	}
}
