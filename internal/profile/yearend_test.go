package profile

import (
	"testing"
	"time"
)

func TestParseYearEnd_Named(t *testing.T) {
	tests := []struct {
		raw   string
		month time.Month
		day   int
	}{
		{"december", time.December, 31},
		{"March", time.March, 31},
		{"april", time.April, 5},
		{"tax_year", time.April, 5},
	}
	for _, tt := range tests {
		got := ParseYearEnd(tt.raw)
		if got.Kind != YearEndFixed {
			t.Fatalf("ParseYearEnd(%q).Kind = %v, want fixed", tt.raw, got.Kind)
		}
		if got.Month != tt.month || got.Day != tt.day {
			t.Errorf("ParseYearEnd(%q) = %v/%d, want %v/%d", tt.raw, got.Month, got.Day, tt.month, tt.day)
		}
	}
}

func TestParseYearEnd_ISOFallback(t *testing.T) {
	got := ParseYearEnd("2025-09-30")
	if got.Kind != YearEndCustom {
		t.Fatalf("Kind = %v, want custom", got.Kind)
	}
	if got.Month != time.September || got.Day != 30 {
		t.Errorf("got %v/%d, want September/30", got.Month, got.Day)
	}
}

func TestParseYearEnd_Unset(t *testing.T) {
	for _, raw := range []string{"", "whenever", "31/12/2025"} {
		if got := ParseYearEnd(raw); got.Known() {
			t.Errorf("ParseYearEnd(%q) = %+v, want unset", raw, got)
		}
	}
}

func TestYearEndNext_RollsForward(t *testing.T) {
	ye := ParseYearEnd("march")
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	next, ok := ye.Next(now)
	if !ok {
		t.Fatal("expected a resolved year end")
	}
	if next.Year() != 2026 || next.Month() != time.March || next.Day() != 31 {
		t.Errorf("Next = %v, want 2026-03-31", next)
	}

	if _, ok := (YearEnd{}).Next(now); ok {
		t.Error("unset year end resolved a next date")
	}
}
