package priority

import (
	"testing"

	"github.com/finlearn/finlearn/internal/catalog"
)

func TestPainPointMatcher(t *testing.T) {
	m := painPointMatcher{}
	cash := catalog.Lesson{ID: "c", Category: catalog.CategoryCashflow}
	vat := catalog.Lesson{ID: "v", Category: catalog.CategoryVAT}

	tests := []struct {
		value  string
		lesson catalog.Lesson
		want   bool
	}{
		{"struggling with CASH flow", cash, true},
		{"vat returns scare me", vat, true},
		{"vat returns scare me", cash, false},
		{"", cash, false},
		{"nothing in particular", cash, false},
	}
	for _, tt := range tests {
		if got := m.Matches(tt.value, tt.lesson); got != tt.want {
			t.Errorf("Matches(%q, %s) = %v, want %v", tt.value, tt.lesson.ID, got, tt.want)
		}
	}
}

func TestGoalMatcher_TitleKeywords(t *testing.T) {
	m := goalMatcher{}
	l := catalog.Lesson{ID: "sa", Title: "Your First Self Assessment Return, Step by Step"}

	if !m.Matches("understand my tax", l) {
		t.Error("tax goal should match a Self Assessment title")
	}
	if m.Matches("improve pricing", l) {
		t.Error("pricing goal should not match a Self Assessment title")
	}
}

func TestIndustryMatcher_CaseInsensitive(t *testing.T) {
	m := industryMatcher{}
	l := catalog.Lesson{ID: "i", Category: catalog.CategoryInvoicing}

	if !m.Matches("Freelance designer", l) {
		t.Error("freelance should match invoicing")
	}
	if m.Matches("Hospitality", l) {
		t.Error("hospitality should not match invoicing")
	}
}
