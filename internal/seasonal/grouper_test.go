package seasonal

import (
	"testing"
	"time"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/profile"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func findGroup(groups []Group, idPrefix string) *Group {
	for i := range groups {
		if len(groups[i].ID) >= len(idPrefix) && groups[i].ID[:len(idPrefix)] == idPrefix {
			return &groups[i]
		}
	}
	return nil
}

func TestSelfAssessmentGroup_UrgencyFlip(t *testing.T) {
	p := profile.Profile{BusinessStructure: profile.SoleTrader}
	lessons := catalog.All()

	// Mid-December: 47 days out, important and dismissible.
	g := findGroup(Build(lessons, p, nil, date(2025, 12, 15)), "self_assessment_")
	if g == nil {
		t.Fatal("no self assessment group in season")
	}
	if g.Urgency != UrgencyImportant || !g.Dismissible {
		t.Errorf("mid-December group = %v/dismissible=%v, want important/dismissible", g.Urgency, g.Dismissible)
	}
	if g.ID != "self_assessment_2026" {
		t.Errorf("ID = %q, want self_assessment_2026 (deadline year)", g.ID)
	}
	if len(g.Lessons) > 4 {
		t.Errorf("group has %d lessons, cap is 4", len(g.Lessons))
	}

	// Jan 20: 11 days out, urgent and not dismissible.
	g = findGroup(Build(lessons, p, nil, date(2026, 1, 20)), "self_assessment_")
	if g == nil {
		t.Fatal("no self assessment group near the deadline")
	}
	if g.Urgency != UrgencyUrgent || g.Dismissible {
		t.Errorf("late-January group = %v/dismissible=%v, want urgent/not dismissible", g.Urgency, g.Dismissible)
	}
	if g.DaysRemaining == nil || *g.DaysRemaining != 11 {
		t.Errorf("DaysRemaining = %v, want 11", g.DaysRemaining)
	}
}

func TestSelfAssessmentGroup_Gates(t *testing.T) {
	lessons := catalog.All()

	// Limited company: no SA group even in season.
	p := profile.Profile{BusinessStructure: profile.LimitedCompany}
	if g := findGroup(Build(lessons, p, nil, date(2025, 12, 15)), "self_assessment_"); g != nil {
		t.Error("limited company got a self assessment group")
	}

	// Sole trader out of season: nothing.
	p = profile.Profile{BusinessStructure: profile.SoleTrader}
	if g := findGroup(Build(lessons, p, nil, date(2025, 7, 15)), "self_assessment_"); g != nil {
		t.Error("self assessment group out of season")
	}
}

func TestYearEndGroup(t *testing.T) {
	lessons := catalog.All()
	p := profile.Profile{BusinessStructure: profile.LimitedCompany}

	g := findGroup(Build(lessons, p, nil, date(2025, 3, 10)), "tax_year_end_")
	if g == nil {
		t.Fatal("no year-end group for a limited company in March")
	}
	if !g.Dismissible {
		t.Error("year-end group is always dismissible")
	}
	if len(g.Lessons) > 3 {
		t.Errorf("group has %d lessons, cap is 3", len(g.Lessons))
	}

	// Sole traders do not get the company year-end push.
	p = profile.Profile{BusinessStructure: profile.SoleTrader}
	if g := findGroup(Build(lessons, p, nil, date(2025, 3, 10)), "tax_year_end_"); g != nil {
		t.Error("sole trader got the year-end group")
	}
}

func TestNewTaxYearGroup_NoStructureGate(t *testing.T) {
	g := findGroup(Build(catalog.All(), profile.Profile{}, nil, date(2025, 4, 20)), "new_tax_year_")
	if g == nil {
		t.Fatal("no new-tax-year group in late April")
	}
	if g.Urgency != UrgencyHelpful || !g.Dismissible {
		t.Errorf("group = %v/dismissible=%v, want helpful/dismissible", g.Urgency, g.Dismissible)
	}
}

func TestVATQuarterGroup(t *testing.T) {
	due := date(2025, 6, 7)
	lessons := catalog.All()

	mk := func(now time.Time) *Group {
		p := profile.Profile{VATRegistered: true, NextVATReturnDue: &due}
		return findGroup(Build(lessons, p, nil, now), "vat_quarter_")
	}

	// 22 days out: important, dismissible.
	g := mk(date(2025, 5, 16))
	if g == nil {
		t.Fatal("no VAT quarter group at 22 days")
	}
	if g.Urgency != UrgencyImportant || !g.Dismissible {
		t.Errorf("group = %v/dismissible=%v, want important/dismissible", g.Urgency, g.Dismissible)
	}
	if len(g.Lessons) > 2 {
		t.Errorf("group has %d lessons, cap is 2", len(g.Lessons))
	}

	// 5 days out: urgent, not dismissible.
	g = mk(date(2025, 6, 2))
	if g == nil {
		t.Fatal("no VAT quarter group at 5 days")
	}
	if g.Urgency != UrgencyUrgent || g.Dismissible {
		t.Errorf("group = %v/dismissible=%v, want urgent/not dismissible", g.Urgency, g.Dismissible)
	}

	// 31 days out or unregistered: nothing.
	if g := mk(date(2025, 5, 7)); g != nil {
		t.Error("VAT quarter group fired a month out")
	}
	p := profile.Profile{VATRegistered: false, NextVATReturnDue: &due}
	if g := findGroup(Build(lessons, p, nil, date(2025, 6, 2)), "vat_quarter_"); g != nil {
		t.Error("VAT quarter group fired for an unregistered business")
	}
}

func TestMTDGroup_BucketGate(t *testing.T) {
	lessons := catalog.All()

	// Scenario: turnover bucket 60k-85k (midpoint 72,500), MTD required.
	p := profile.Profile{
		AnnualTurnover: profile.ResolveTurnover("60k-85k"),
		MTDStatus:      profile.MTDRequired,
	}
	g := findGroup(Build(lessons, p, nil, date(2025, 7, 1)), "mtd_")
	if g == nil {
		t.Fatal("no MTD group for 60k-85k + required")
	}
	var hasMTDLesson bool
	for _, l := range g.Lessons {
		if l.HasTag(catalog.TagMTD) {
			hasMTDLesson = true
		}
	}
	if !hasMTDLesson {
		t.Error("MTD group carries no mtd-tagged lesson")
	}
	if !g.Dismissible {
		t.Error("MTD group is always dismissible")
	}

	// Enrolled or below the gate: nothing.
	p.MTDStatus = profile.MTDEnrolled
	if g := findGroup(Build(lessons, p, nil, date(2025, 7, 1)), "mtd_"); g != nil {
		t.Error("MTD group fired for an enrolled business")
	}
	p = profile.Profile{AnnualTurnover: profile.ResolveTurnover("under_20k"), MTDStatus: profile.MTDRequired}
	if g := findGroup(Build(lessons, p, nil, date(2025, 7, 1)), "mtd_"); g != nil {
		t.Error("MTD group fired below the turnover gate")
	}
}

func TestBuild_ExcludesCompletedLessons(t *testing.T) {
	p := profile.Profile{BusinessStructure: profile.SoleTrader}
	completion := map[string]int{}
	for _, l := range catalog.All() {
		completion[l.ID] = 100
	}
	if groups := Build(catalog.All(), p, completion, date(2025, 12, 15)); len(groups) != 0 {
		t.Errorf("got %d groups with a fully completed catalog, want 0", len(groups))
	}

	// Partial completion still surfaces the rest.
	completion["self-assessment-first-return"] = 40
	groups := Build(catalog.All(), p, completion, date(2025, 12, 15))
	g := findGroup(groups, "self_assessment_")
	if g == nil {
		t.Fatal("incomplete lesson should bring the group back")
	}
	for _, l := range g.Lessons {
		if completion[l.ID] == 100 {
			t.Errorf("completed lesson %q included in group", l.ID)
		}
	}
}

func TestBuild_SortsUrgentFirst(t *testing.T) {
	// Sole trader, in SA season near the deadline, VAT registered with a
	// return due in 20 days, turnover above the MTD gate: three groups.
	due := date(2026, 2, 7)
	p := profile.Profile{
		BusinessStructure: profile.SoleTrader,
		VATRegistered:     true,
		NextVATReturnDue:  &due,
		AnnualTurnover:    profile.ResolveTurnover("70000"),
		MTDStatus:         profile.MTDRequired,
	}
	groups := Build(catalog.All(), p, nil, date(2026, 1, 18))
	if len(groups) < 3 {
		t.Fatalf("got %d groups, want at least 3", len(groups))
	}
	for i := 1; i < len(groups); i++ {
		if groups[i-1].Urgency > groups[i].Urgency {
			t.Errorf("groups out of urgency order: %v before %v", groups[i-1].Urgency, groups[i].Urgency)
		}
	}
	if groups[0].Urgency != UrgencyUrgent {
		t.Errorf("first group urgency = %v, want urgent", groups[0].Urgency)
	}
}
