package triggers

import (
	"fmt"
	"time"

	"github.com/finlearn/finlearn/internal/profile"
	"github.com/finlearn/finlearn/internal/taxcal"
)

// yearEndHorizonDays is how far ahead a limited-company year end is
// flagged: 12 weeks.
const yearEndHorizonDays = 84

// EvaluateSeasonal returns the deadline-proximity alerts that apply to
// the profile at now, sorted urgent first. Missing profile fields skip
// the relevant check; nothing here ever fails.
func EvaluateSeasonal(p profile.Profile, now time.Time) []Trigger {
	var out []Trigger

	if t := selfAssessmentTrigger(p, now); t != nil {
		out = append(out, *t)
	}
	if t := vatReturnTrigger(p, now); t != nil {
		out = append(out, *t)
	}
	if t := yearEndTrigger(p, now); t != nil {
		out = append(out, *t)
	}

	sortByPriority(out)
	return out
}

var selfAssessmentLessons = []string{
	"self-assessment-first-return",
	"payments-on-account",
	"sa-records-checklist",
	"allowable-expenses",
}

// selfAssessmentTrigger covers the 31 January filing deadline. It applies
// to sole traders and partnerships; when the structure is unknown but the
// calendar is inside the Dec–Jan window, a generic info alert fires
// instead, independent of the day-count rule.
func selfAssessmentTrigger(p profile.Profile, now time.Time) *Trigger {
	structureKnown := p.BusinessStructure == profile.SoleTrader || p.BusinessStructure == profile.Partnership

	if !structureKnown {
		if p.BusinessStructure == profile.StructureUnknown && taxcal.CurrentSeason(now) == taxcal.SeasonSelfAssessment {
			return &Trigger{
				ID:        "self_assessment_season",
				Priority:  Info,
				Title:     "Self Assessment season is here",
				Message:   "If you file a Self Assessment return, the online deadline is 31 January. Tell us your business structure for tailored reminders.",
				LessonIDs: selfAssessmentLessons,
			}
		}
		return nil
	}

	d := taxcal.DaysUntil(now, taxcal.NextSelfAssessmentDeadline(now))
	switch {
	case d > 0 && d <= 14:
		return &Trigger{
			ID:              "self_assessment_urgent",
			Priority:        Urgent,
			Title:           "Self Assessment deadline is almost here",
			Message:         fmt.Sprintf("Your Self Assessment return is due in %d days (31 January). File now to avoid the £100 late penalty.", d),
			LessonIDs:       selfAssessmentLessons,
			DaysUntilExpiry: days(d),
		}
	case d > 14 && d <= 30:
		return &Trigger{
			ID:              "self_assessment_warning",
			Priority:        Warning,
			Title:           "Self Assessment deadline approaching",
			Message:         fmt.Sprintf("Your Self Assessment return is due in %d days. Start gathering your records now.", d),
			LessonIDs:       selfAssessmentLessons,
			DaysUntilExpiry: days(d),
		}
	default:
		return nil
	}
}

var vatReturnLessons = []string{"vat-return-walkthrough", "vat-schemes"}

// vatReturnTrigger fires ahead of a known VAT return due date.
func vatReturnTrigger(p profile.Profile, now time.Time) *Trigger {
	if p.NextVATReturnDue == nil {
		return nil
	}

	d := taxcal.DaysUntil(now, *p.NextVATReturnDue)
	switch {
	case d > 0 && d <= 7:
		return &Trigger{
			ID:              "vat_return_urgent",
			Priority:        Urgent,
			Title:           "VAT return due this week",
			Message:         fmt.Sprintf("Your VAT return is due in %d days. Late submissions earn penalty points.", d),
			LessonIDs:       vatReturnLessons,
			DaysUntilExpiry: days(d),
		}
	case d > 7 && d <= 21:
		return &Trigger{
			ID:              "vat_return_warning",
			Priority:        Warning,
			Title:           "VAT return coming up",
			Message:         fmt.Sprintf("Your VAT return is due in %d days. A head start keeps quarter-end calm.", d),
			LessonIDs:       vatReturnLessons,
			DaysUntilExpiry: days(d),
		}
	default:
		return nil
	}
}

var yearEndLessons = []string{"year-end-accounts", "year-end-tax-planning"}

// yearEndTrigger flags a limited company's accounting year end when it
// falls within the next 12 weeks.
func yearEndTrigger(p profile.Profile, now time.Time) *Trigger {
	if p.BusinessStructure != profile.LimitedCompany {
		return nil
	}
	next, ok := p.AccountingYearEnd.Next(now)
	if !ok {
		return nil
	}

	d := taxcal.DaysUntil(now, next)
	if d <= 0 || d > yearEndHorizonDays {
		return nil
	}
	return &Trigger{
		ID:              "company_year_end",
		Priority:        Warning,
		Title:           "Company year end approaching",
		Message:         fmt.Sprintf("Your accounting year ends in %d days (%s). Time to review year-end planning.", d, next.Format("2 January")),
		LessonIDs:       yearEndLessons,
		DaysUntilExpiry: days(d),
	}
}
