package taxcal

import "time"

// Season is the fiscal-calendar window a date falls in. The buckets drive
// both the unset-profile trigger fallbacks and the seasonal-tag bonus in
// the lesson scorer.
type Season string

const (
	SeasonSelfAssessment Season = "self_assessment_deadline"
	SeasonTaxYearEnd     Season = "tax_year_end"
	SeasonNewTaxYear     Season = "new_tax_year"
	SeasonGeneral        Season = "general"
)

// CurrentSeason derives the season purely from month/day:
// Dec 1 – Jan 31 is the Self Assessment window, Mar 1 – Apr 5 the
// year-end window, Apr 6 – May 31 the new-tax-year window, and
// everything else is general.
func CurrentSeason(now time.Time) Season {
	m, d := now.Month(), now.Day()
	switch {
	case m == time.December || m == time.January:
		return SeasonSelfAssessment
	case m == time.March, m == time.April && d <= TaxYearEndDay:
		return SeasonTaxYearEnd
	case m == time.April && d >= TaxYearStartDay, m == time.May:
		return SeasonNewTaxYear
	default:
		return SeasonGeneral
	}
}
