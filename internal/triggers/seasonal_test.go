package triggers

import (
	"testing"
	"time"

	"github.com/finlearn/finlearn/internal/profile"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func soleTrader() profile.Profile {
	return profile.Profile{BusinessStructure: profile.SoleTrader}
}

func TestSelfAssessment_UrgentAt11Days(t *testing.T) {
	// Jan 20: next 31 January is 11 days away.
	got := EvaluateSeasonal(soleTrader(), date(2025, 1, 20))

	if len(got) != 1 {
		t.Fatalf("got %d triggers, want 1", len(got))
	}
	tr := got[0]
	if tr.Priority != Urgent {
		t.Errorf("priority = %v, want urgent", tr.Priority)
	}
	if tr.DaysUntilExpiry == nil || *tr.DaysUntilExpiry != 11 {
		t.Errorf("DaysUntilExpiry = %v, want 11", tr.DaysUntilExpiry)
	}
}

func TestSelfAssessment_Bands(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want []Priority // empty means no trigger
	}{
		{"30 days out is warning", date(2025, 1, 1), []Priority{Warning}},
		{"15 days out is warning", date(2025, 1, 16), []Priority{Warning}},
		{"14 days out is urgent", date(2025, 1, 17), []Priority{Urgent}},
		{"1 day out is urgent", date(2025, 1, 30), []Priority{Urgent}},
		{"deadline day itself is quiet", date(2025, 1, 31), nil},
		{"midsummer is quiet", date(2025, 7, 1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateSeasonal(soleTrader(), tt.now)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d triggers, want %d", len(got), len(tt.want))
			}
			for i, p := range tt.want {
				if got[i].Priority != p {
					t.Errorf("trigger %d priority = %v, want %v", i, got[i].Priority, p)
				}
			}
		})
	}
}

func TestSelfAssessment_ExactlyOneBandFires(t *testing.T) {
	// Walk every day from 60 days out to the deadline: at most one SA
	// trigger, never both bands at once.
	for d := 0; d < 60; d++ {
		now := date(2024, 12, 2).AddDate(0, 0, d)
		got := EvaluateSeasonal(soleTrader(), now)
		if len(got) > 1 {
			t.Fatalf("%v produced %d triggers, want at most 1", now, len(got))
		}
	}
}

func TestSelfAssessment_LimitedCompanySkipped(t *testing.T) {
	p := profile.Profile{BusinessStructure: profile.LimitedCompany}
	got := EvaluateSeasonal(p, date(2025, 1, 20))
	if len(got) != 0 {
		t.Errorf("limited company got %d SA triggers, want 0", len(got))
	}
}

func TestSelfAssessment_UnknownStructureSeasonFallback(t *testing.T) {
	p := profile.Profile{BusinessStructure: profile.StructureUnknown}

	// Inside the Dec-Jan window: generic info, regardless of day count.
	got := EvaluateSeasonal(p, date(2024, 12, 5))
	if len(got) != 1 || got[0].Priority != Info {
		t.Fatalf("got %+v, want one info trigger", got)
	}
	if got[0].DaysUntilExpiry != nil {
		t.Error("generic season trigger should not carry a day count")
	}

	// Outside the window: nothing.
	if got := EvaluateSeasonal(p, date(2025, 6, 5)); len(got) != 0 {
		t.Errorf("got %d triggers outside the window, want 0", len(got))
	}
}

func TestSelfAssessment_ZeroProfileBehavesAsUnknown(t *testing.T) {
	// A fresh install has no profile row, so the engine evaluates the
	// zero-value profile. That must take the unknown-structure path and
	// still surface the generic season alert in December.
	got := EvaluateSeasonal(profile.Profile{}, date(2024, 12, 15))
	if len(got) != 1 || got[0].ID != "self_assessment_season" {
		t.Fatalf("got %+v, want the self_assessment_season info trigger", got)
	}
}

func TestVATReturn_Bands(t *testing.T) {
	due := date(2025, 5, 7)
	tests := []struct {
		name string
		now  time.Time
		want []Priority
	}{
		{"21 days out is warning", date(2025, 4, 16), []Priority{Warning}},
		{"8 days out is warning", date(2025, 4, 29), []Priority{Warning}},
		{"7 days out is urgent", date(2025, 4, 30), []Priority{Urgent}},
		{"due today is quiet", due, nil},
		{"22 days out is quiet", date(2025, 4, 15), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profile.Profile{BusinessStructure: profile.LimitedCompany, NextVATReturnDue: &due}
			got := EvaluateSeasonal(p, tt.now)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d triggers, want %d", len(got), len(tt.want))
			}
			for i, want := range tt.want {
				if got[i].Priority != want {
					t.Errorf("priority = %v, want %v", got[i].Priority, want)
				}
			}
		})
	}
}

func TestVATReturn_SkippedWithoutDueDate(t *testing.T) {
	got := EvaluateSeasonal(profile.Profile{BusinessStructure: profile.LimitedCompany}, date(2025, 6, 10))
	if len(got) != 0 {
		t.Errorf("got %d triggers with no due date, want 0", len(got))
	}
}

func TestYearEnd_WarningWithin12Weeks(t *testing.T) {
	p := profile.Profile{
		BusinessStructure: profile.LimitedCompany,
		AccountingYearEnd: profile.ParseYearEnd("march"),
	}

	// Early February: 31 March is inside the 12-week horizon.
	got := EvaluateSeasonal(p, date(2025, 2, 1))
	if len(got) != 1 {
		t.Fatalf("got %d triggers, want 1", len(got))
	}
	if got[0].Priority != Warning || got[0].ID != "company_year_end" {
		t.Errorf("got %+v, want company_year_end warning", got[0])
	}

	// Mid-summer: next 31 March is far beyond the horizon.
	if got := EvaluateSeasonal(p, date(2025, 7, 1)); len(got) != 0 {
		t.Errorf("got %d triggers out of horizon, want 0", len(got))
	}
}

func TestYearEnd_SoleTraderSkipped(t *testing.T) {
	p := profile.Profile{
		BusinessStructure: profile.SoleTrader,
		AccountingYearEnd: profile.ParseYearEnd("march"),
	}
	// Feb 1 is outside the SA bands, so any trigger would be year-end.
	got := EvaluateSeasonal(p, date(2025, 2, 1))
	if len(got) != 0 {
		t.Errorf("sole trader got %d year-end triggers, want 0", len(got))
	}
}

func TestEvaluateSeasonal_SortsUrgentFirst(t *testing.T) {
	// Jan 20: SA deadline 11 days away (urgent), VAT return 16 days away
	// (warning). The VAT check runs second but the urgent SA trigger must
	// still come out first.
	due := date(2025, 2, 5)
	p := profile.Profile{
		BusinessStructure: profile.SoleTrader,
		NextVATReturnDue:  &due,
	}

	got := EvaluateSeasonal(p, date(2025, 1, 20))
	if len(got) != 2 {
		t.Fatalf("got %d triggers, want 2", len(got))
	}
	if got[0].Priority != Urgent || got[0].ID != "self_assessment_urgent" {
		t.Errorf("first trigger = %+v, want urgent self assessment", got[0])
	}
	if got[1].Priority != Warning || got[1].ID != "vat_return_warning" {
		t.Errorf("second trigger = %+v, want VAT return warning", got[1])
	}
}
