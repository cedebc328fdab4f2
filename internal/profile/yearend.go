package profile

import (
	"time"

	"github.com/finlearn/finlearn/internal/taxcal"
)

// YearEndKind tags the YearEnd union.
type YearEndKind int

const (
	YearEndUnset YearEndKind = iota
	YearEndFixed
	YearEndCustom
)

// YearEnd is the company accounting year end: one of the canonical fixed
// options, a custom date, or unset.
type YearEnd struct {
	Kind  YearEndKind
	Month time.Month
	Day   int
}

// Known reports whether a year end has been resolved.
func (y YearEnd) Known() bool { return y.Kind != YearEndUnset }

// Next returns the next occurrence of the year end on or after now,
// rolling forward 12 months when this year's date has passed.
func (y YearEnd) Next(now time.Time) (time.Time, bool) {
	if !y.Known() {
		return time.Time{}, false
	}
	return taxcal.NextOccurrence(now, y.Month, y.Day), true
}

// ParseYearEnd resolves the signup year-end field: three canonical named
// options plus a raw ISO date fallback. Unrecognized input is Unset.
func ParseYearEnd(raw string) YearEnd {
	switch normalize(raw) {
	case "":
		return YearEnd{}
	case "december", "31_december", "calendar_year":
		return YearEnd{Kind: YearEndFixed, Month: time.December, Day: 31}
	case "march", "31_march":
		return YearEnd{Kind: YearEndFixed, Month: time.March, Day: 31}
	case "april", "5_april", "tax_year":
		return YearEnd{Kind: YearEndFixed, Month: taxcal.TaxYearEndMonth, Day: taxcal.TaxYearEndDay}
	}

	if t, err := time.Parse("2006-01-02", normalize(raw)); err == nil {
		return YearEnd{Kind: YearEndCustom, Month: t.Month(), Day: t.Day()}
	}
	return YearEnd{}
}
