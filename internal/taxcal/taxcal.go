// Package taxcal holds the UK fiscal calendar constants and date helpers
// the trigger evaluators and lesson scorers are built on. Thresholds are
// named constants so they can be bumped for future tax years without
// touching any rule logic.
package taxcal

import "time"

// UK tax calendar fixed points.
const (
	// SelfAssessmentMonth / SelfAssessmentDay: the online Self Assessment
	// filing deadline (31 January).
	SelfAssessmentMonth = time.January
	SelfAssessmentDay   = 31

	// TaxYearEndMonth / TaxYearEndDay: the UK personal tax year ends 5 April.
	TaxYearEndMonth = time.April
	TaxYearEndDay   = 5

	// TaxYearStartMonth / TaxYearStartDay: the new tax year begins 6 April.
	TaxYearStartMonth = time.April
	TaxYearStartDay   = 6
)

// Registration and reporting thresholds (2024/25 figures).
const (
	// VATRegistrationThreshold is the rolling 12-month turnover above which
	// VAT registration is mandatory, in pounds.
	VATRegistrationThreshold = 90_000

	// MTDIncomeThreshold is the turnover above which Making Tax Digital
	// record keeping applies, in pounds.
	MTDIncomeThreshold = 85_000
)

// VATQuarterEndMonths are the standard (stagger 1) VAT quarter end months.
var VATQuarterEndMonths = []time.Month{
	time.February, time.May, time.August, time.November,
}

// DaysUntil returns the number of whole days from now until the target
// date, comparing calendar days rather than 24h spans so a deadline later
// today counts as 0 days away.
func DaysUntil(now, target time.Time) int {
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// NextOccurrence returns the next time the given month/day falls on or
// after now, rolling into the following year when the date has passed.
func NextOccurrence(now time.Time, month time.Month, day int) time.Time {
	next := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if next.Before(today) {
		next = next.AddDate(1, 0, 0)
	}
	return next
}

// NextSelfAssessmentDeadline returns the next 31 January on or after now.
func NextSelfAssessmentDeadline(now time.Time) time.Time {
	return NextOccurrence(now, SelfAssessmentMonth, SelfAssessmentDay)
}

// VATQuarterIndex returns the zero-based index of the VAT quarter the
// given date falls in, assuming the standard stagger. Used to build
// deterministic seasonal group ids.
func VATQuarterIndex(t time.Time) int {
	for i, m := range VATQuarterEndMonths {
		if t.Month() <= m {
			return i
		}
	}
	return 0
}
