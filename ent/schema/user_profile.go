package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UserProfile is the single-row business profile driving every
// relevance check. Free-text fields are stored raw and normalized by
// the profile package on read.
type UserProfile struct {
	ent.Schema
}

func (UserProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("business_structure").
			Default("").
			Comment("sole_trader, limited_company, partnership, or empty when unknown"),
		field.String("industry").
			Default(""),
		field.String("experience_level").
			Default(""),
		field.String("pain_point").
			Default("").
			Comment("Free text, matched by keyword against lesson categories"),
		field.String("learning_goal").
			Default(""),
		field.String("time_commitment").
			Default("").
			Comment("15_minutes, 30_minutes, 1_hour or 2_hours"),
		field.String("annual_turnover").
			Default("").
			Comment("Raw user input: exact figure, range, bucket label, or free text"),
		field.Bool("vat_registered").
			Default(false),
		field.String("mtd_status").
			Default("").
			Comment("not_required, required, compliant, enrolled"),
		field.String("accounting_year_end").
			Default("").
			Comment("Named constant (december, march, tax_year) or ISO date"),
		field.Time("next_vat_return_due").
			Optional().
			Nillable(),
		field.Time("turnover_last_updated").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
