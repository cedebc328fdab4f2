package taxcal

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestDaysUntil_CountsCalendarDays(t *testing.T) {
	tests := []struct {
		now    time.Time
		target time.Time
		want   int
	}{
		{date(2025, 1, 20), date(2025, 1, 31), 11},
		{date(2025, 1, 31), date(2025, 1, 31), 0},
		{date(2025, 2, 1), date(2025, 1, 31), -1},
		// Time of day must not matter.
		{time.Date(2025, 1, 30, 23, 59, 0, 0, time.UTC), date(2025, 1, 31), 1},
	}

	for _, tt := range tests {
		got := DaysUntil(tt.now, tt.target)
		if got != tt.want {
			t.Errorf("DaysUntil(%v, %v) = %d, want %d", tt.now, tt.target, got, tt.want)
		}
	}
}

func TestNextOccurrence_RollsForward(t *testing.T) {
	// Jan 31 has passed by Feb 1: next deadline is the following year.
	got := NextSelfAssessmentDeadline(date(2025, 2, 1))
	if got.Year() != 2026 || got.Month() != time.January || got.Day() != 31 {
		t.Errorf("NextSelfAssessmentDeadline(Feb 1 2025) = %v, want 2026-01-31", got)
	}

	// Same day counts as this year's occurrence.
	got = NextSelfAssessmentDeadline(date(2025, 1, 31))
	if got.Year() != 2025 {
		t.Errorf("deadline on the day itself rolled to %d, want 2025", got.Year())
	}
}

func TestCurrentSeason(t *testing.T) {
	tests := []struct {
		now  time.Time
		want Season
	}{
		{date(2025, 12, 1), SeasonSelfAssessment},
		{date(2025, 1, 15), SeasonSelfAssessment},
		{date(2025, 1, 31), SeasonSelfAssessment},
		{date(2025, 3, 1), SeasonTaxYearEnd},
		{date(2025, 4, 5), SeasonTaxYearEnd},
		{date(2025, 4, 6), SeasonNewTaxYear},
		{date(2025, 5, 31), SeasonNewTaxYear},
		{date(2025, 7, 10), SeasonGeneral},
		{date(2025, 11, 30), SeasonGeneral},
		{date(2025, 2, 14), SeasonGeneral},
	}

	for _, tt := range tests {
		if got := CurrentSeason(tt.now); got != tt.want {
			t.Errorf("CurrentSeason(%v) = %q, want %q", tt.now, got, tt.want)
		}
	}
}

func TestVATQuarterIndex(t *testing.T) {
	tests := []struct {
		m    time.Month
		want int
	}{
		{time.January, 0},
		{time.February, 0},
		{time.March, 1},
		{time.May, 1},
		{time.June, 2},
		{time.August, 2},
		{time.September, 3},
		{time.November, 3},
		{time.December, 0},
	}
	for _, tt := range tests {
		if got := VATQuarterIndex(date(2025, tt.m, 10)); got != tt.want {
			t.Errorf("VATQuarterIndex(%v) = %d, want %d", tt.m, got, tt.want)
		}
	}
}
