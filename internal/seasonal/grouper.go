// Package seasonal groups the lesson catalog into themed, urgency-tagged
// bundles for the dashboard ("Self Assessment Season" and friends). Five
// independent builders run, each gated on a real-world condition, each
// producing at most one group. Group ids are deterministic per season and
// year so the caller can persist a dismissal flag keyed by id.
package seasonal

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/profile"
	"github.com/finlearn/finlearn/internal/taxcal"
)

// Urgency orders groups on the dashboard.
type Urgency int

const (
	UrgencyUrgent Urgency = iota
	UrgencyImportant
	UrgencyHelpful
)

func (u Urgency) String() string {
	switch u {
	case UrgencyUrgent:
		return "urgent"
	case UrgencyImportant:
		return "important"
	default:
		return "helpful"
	}
}

// Group is a themed bundle of seasonal lessons.
type Group struct {
	// ID is stable for a given season and year, e.g. "self_assessment_2026"
	// or "vat_quarter_2025_q2".
	ID            string
	Title         string
	Emoji         string
	Message       string
	Urgency       Urgency
	Lessons       []catalog.Lesson
	DaysRemaining *int
	// Dismissible is false for urgent near-deadline groups: those stay
	// on the dashboard until the deadline passes.
	Dismissible bool
}

// Lesson caps per group.
const (
	selfAssessmentCap = 4
	yearEndCap        = 3
	newYearCap        = 3
	vatQuarterCap     = 2
	mtdCap            = 2
)

// mtdGroupMinTurnover gates the MTD group on a meaningful turnover.
const mtdGroupMinTurnover = 60_000

// Build runs every group builder against the catalog and returns the
// groups that apply, sorted urgent first. completion maps lesson id to
// completion rate; lessons at 100 are never included.
func Build(lessons []catalog.Lesson, p profile.Profile, completion map[string]int, now time.Time) []Group {
	eligible := lo.Filter(lessons, func(l catalog.Lesson, _ int) bool {
		return l.Seasonal() && completion[l.ID] < 100
	})

	var out []Group
	builders := []func([]catalog.Lesson, profile.Profile, time.Time) *Group{
		buildSelfAssessment,
		buildYearEnd,
		buildNewTaxYear,
		buildVATQuarter,
		buildMTD,
	}
	for _, b := range builders {
		if g := b(eligible, p, now); g != nil {
			out = append(out, *g)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Urgency < out[j].Urgency
	})
	return out
}

func tagged(lessons []catalog.Lesson, tag string, limit int) []catalog.Lesson {
	matched := lo.Filter(lessons, func(l catalog.Lesson, _ int) bool {
		return l.HasTag(tag)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

func buildSelfAssessment(lessons []catalog.Lesson, p profile.Profile, now time.Time) *Group {
	if taxcal.CurrentSeason(now) != taxcal.SeasonSelfAssessment {
		return nil
	}
	if p.BusinessStructure != profile.SoleTrader && p.BusinessStructure != profile.Partnership {
		return nil
	}

	picked := tagged(lessons, catalog.TagSelfAssessment, selfAssessmentCap)
	if len(picked) == 0 {
		return nil
	}

	deadline := taxcal.NextSelfAssessmentDeadline(now)
	d := taxcal.DaysUntil(now, deadline)
	urgent := d <= 14

	g := &Group{
		ID:            fmt.Sprintf("self_assessment_%d", deadline.Year()),
		Title:         "Self Assessment Season",
		Emoji:         "📋",
		Urgency:       UrgencyImportant,
		Lessons:       picked,
		DaysRemaining: &d,
		Dismissible:   true,
	}
	if urgent {
		g.Title = "Self Assessment: Final Countdown"
		g.Urgency = UrgencyUrgent
		g.Dismissible = false
		g.Message = fmt.Sprintf("%d days until the 31 January deadline. These lessons get you over the line.", d)
	} else {
		g.Message = fmt.Sprintf("The 31 January deadline is %d days away. A little prep now saves a January panic.", d)
	}
	return g
}

func buildYearEnd(lessons []catalog.Lesson, p profile.Profile, now time.Time) *Group {
	if taxcal.CurrentSeason(now) != taxcal.SeasonTaxYearEnd {
		return nil
	}
	if p.BusinessStructure != profile.LimitedCompany {
		return nil
	}

	picked := tagged(lessons, catalog.TagTaxYearEnd, yearEndCap)
	if len(picked) == 0 {
		return nil
	}
	return &Group{
		ID:          fmt.Sprintf("tax_year_end_%d", now.Year()),
		Title:       "Year-End Prep",
		Emoji:       "📊",
		Message:     "The tax year ends 5 April. Close it out cleanly with these.",
		Urgency:     UrgencyImportant,
		Lessons:     picked,
		Dismissible: true,
	}
}

func buildNewTaxYear(lessons []catalog.Lesson, _ profile.Profile, now time.Time) *Group {
	if taxcal.CurrentSeason(now) != taxcal.SeasonNewTaxYear {
		return nil
	}

	picked := tagged(lessons, catalog.TagNewTaxYear, newYearCap)
	if len(picked) == 0 {
		return nil
	}
	return &Group{
		ID:          fmt.Sprintf("new_tax_year_%d", now.Year()),
		Title:       "New Tax Year, Fresh Start",
		Emoji:       "🌱",
		Message:     "New allowances, new rates. Set yourself up for the year ahead.",
		Urgency:     UrgencyHelpful,
		Lessons:     picked,
		Dismissible: true,
	}
}

func buildVATQuarter(lessons []catalog.Lesson, p profile.Profile, now time.Time) *Group {
	if !p.VATRegistered || p.NextVATReturnDue == nil {
		return nil
	}
	d := taxcal.DaysUntil(now, *p.NextVATReturnDue)
	if d <= 0 || d > 30 {
		return nil
	}

	picked := tagged(lessons, catalog.TagVATQuarter, vatQuarterCap)
	if len(picked) == 0 {
		return nil
	}

	urgent := d <= 7
	g := &Group{
		ID: fmt.Sprintf("vat_quarter_%d_q%d",
			p.NextVATReturnDue.Year(), taxcal.VATQuarterIndex(*p.NextVATReturnDue)+1),
		Title:         "VAT Quarter Countdown",
		Emoji:         "🧾",
		Message:       fmt.Sprintf("Your VAT return is due in %d days.", d),
		Urgency:       UrgencyImportant,
		Lessons:       picked,
		DaysRemaining: &d,
		Dismissible:   !urgent,
	}
	if urgent {
		g.Urgency = UrgencyUrgent
	}
	return g
}

func buildMTD(lessons []catalog.Lesson, p profile.Profile, now time.Time) *Group {
	if p.MTDStatus == profile.MTDEnrolled || p.MTDStatus == profile.MTDNotRequired {
		return nil
	}
	if !p.AnnualTurnover.Known() || p.AnnualTurnover.Amount() < mtdGroupMinTurnover {
		return nil
	}

	picked := tagged(lessons, catalog.TagMTD, mtdCap)
	if len(picked) == 0 {
		return nil
	}

	urgency := UrgencyHelpful
	if p.AnnualTurnover.Amount() >= taxcal.MTDIncomeThreshold {
		urgency = UrgencyImportant
	}
	return &Group{
		ID:          fmt.Sprintf("mtd_%d", now.Year()),
		Title:       "Making Tax Digital Is Coming",
		Emoji:       "💻",
		Message:     "Your turnover puts digital record keeping on the horizon. Get ahead of it.",
		Urgency:     urgency,
		Lessons:     picked,
		Dismissible: true,
	}
}
