// Package catalog defines the immutable lesson catalog: lesson metadata,
// the fixed seasonal-tag vocabulary, and the embedded seed content the CLI
// ships with.
package catalog

import "sort"

// Category groups lessons by finance topic.
type Category string

const (
	CategoryTax       Category = "tax"
	CategoryVAT       Category = "vat"
	CategoryCashflow  Category = "cashflow"
	CategoryInvoicing Category = "invoicing"
	CategoryExpenses  Category = "expenses"
	CategoryPricing   Category = "pricing"
	CategoryFunding   Category = "funding"
)

// Difficulty is the lesson difficulty level.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Seasonal tags drawn from the fixed vocabulary. Values line up with
// taxcal.Season so a lesson tagged for a season matches it directly.
const (
	TagSelfAssessment = "self_assessment_deadline"
	TagTaxYearEnd     = "tax_year_end"
	TagNewTaxYear     = "new_tax_year"
	TagVATQuarter     = "vat_quarter"
	TagMTD            = "mtd"
	TagGeneral        = "general"
)

// Lesson is an immutable catalog entry.
type Lesson struct {
	ID           string
	Title        string
	Category     Category
	Difficulty   Difficulty
	DurationMin  int
	OrderIndex   int
	Emoji        string
	SeasonalTags []string
}

// HasTag reports whether the lesson carries the given seasonal tag.
func (l Lesson) HasTag(tag string) bool {
	for _, t := range l.SeasonalTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Seasonal reports whether the lesson carries any seasonal tag at all.
func (l Lesson) Seasonal() bool { return len(l.SeasonalTags) > 0 }

// All returns the seed catalog sorted by order index.
func All() []Lesson {
	out := make([]Lesson, len(seedLessons))
	copy(out, seedLessons)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

// Get returns the lesson with the given id.
func Get(id string) (Lesson, bool) {
	for _, l := range seedLessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}
