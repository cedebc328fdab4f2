package triggers

import (
	"math"
	"strings"
	"testing"

	"github.com/finlearn/finlearn/internal/profile"
)

func TestVATThreshold_At85k(t *testing.T) {
	// £85,000 is £5,000 below the £90,000 threshold, inside the £10k
	// urgent band, at 94.4% of the threshold.
	p := profile.Profile{AnnualTurnover: profile.ParseTurnover("85000")}
	got := EvaluateThresholds(p, date(2025, 6, 1))

	var vat *ThresholdTrigger
	for i := range got {
		if got[i].ThresholdType == ThresholdVAT {
			vat = &got[i]
		}
	}
	if vat == nil {
		t.Fatal("no VAT threshold trigger")
	}
	if vat.Priority != Urgent {
		t.Errorf("priority = %v, want urgent (within £10k of threshold)", vat.Priority)
	}
	if math.Abs(vat.PercentageToThreshold-94.4) > 0.1 {
		t.Errorf("percentage = %.2f, want ~94.4", vat.PercentageToThreshold)
	}
}

func TestVATThreshold_Bands(t *testing.T) {
	tests := []struct {
		turnover string
		want     Priority
		none     bool
	}{
		{"95000", Urgent, false},  // already over
		{"90k+", Urgent, false},   // k-suffix parse, at the threshold
		{"80000", Urgent, false},  // exactly £10k below
		{"79999", Warning, false}, // just outside the urgent band
		{"70000", Warning, false}, // exactly £20k below
		{"69999", 0, true},        // outside both bands
		{"30000", 0, true},
	}

	for _, tt := range tests {
		p := profile.Profile{AnnualTurnover: profile.ParseTurnover(tt.turnover)}
		got := EvaluateThresholds(p, date(2025, 6, 1))

		var vat *ThresholdTrigger
		for i := range got {
			if got[i].ThresholdType == ThresholdVAT {
				vat = &got[i]
			}
		}
		if tt.none {
			if vat != nil {
				t.Errorf("turnover %s: got %+v, want no VAT trigger", tt.turnover, vat)
			}
			continue
		}
		if vat == nil {
			t.Errorf("turnover %s: no VAT trigger", tt.turnover)
			continue
		}
		if vat.Priority != tt.want {
			t.Errorf("turnover %s: priority = %v, want %v", tt.turnover, vat.Priority, tt.want)
		}
	}
}

func TestVATThreshold_NeverFiresWhenRegistered(t *testing.T) {
	for _, turnover := range []string{"0", "89000", "90000", "500000"} {
		p := profile.Profile{
			AnnualTurnover: profile.ParseTurnover(turnover),
			VATRegistered:  true,
		}
		for _, tr := range EvaluateThresholds(p, date(2025, 6, 1)) {
			if tr.ThresholdType == ThresholdVAT {
				t.Errorf("turnover %s: VAT trigger fired for a registered business", turnover)
			}
		}
	}
}

func TestVATThreshold_MessageStatesObligation(t *testing.T) {
	p := profile.Profile{AnnualTurnover: profile.ParseTurnover("85000")}
	got := EvaluateThresholds(p, date(2025, 6, 1))
	for _, tr := range got {
		if tr.ThresholdType == ThresholdVAT {
			if !strings.Contains(tr.Message, "mandatory") {
				t.Errorf("VAT message must state the obligation is mandatory: %q", tr.Message)
			}
		}
	}
}

func TestMTD_Bands(t *testing.T) {
	tests := []struct {
		name     string
		turnover string
		status   profile.MTDStatus
		vatReg   bool
		want     Priority
		none     bool
	}{
		{"over threshold is urgent", "85000", profile.MTDRequired, true, Urgent, false},
		{"well over is urgent", "120000", profile.MTDRequired, true, Urgent, false},
		{"within 15k is warning", "70000", profile.MTDRequired, true, Warning, false},
		{"below band is quiet", "69000", profile.MTDRequired, true, 0, true},
		{"compliant is skipped", "120000", profile.MTDCompliant, true, 0, true},
		{"unregistered is skipped", "120000", profile.MTDRequired, false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profile.Profile{
				AnnualTurnover: profile.ParseTurnover(tt.turnover),
				VATRegistered:  tt.vatReg,
				MTDStatus:      tt.status,
			}
			var mtd *ThresholdTrigger
			for _, tr := range EvaluateThresholds(p, date(2025, 6, 1)) {
				if tr.ThresholdType == ThresholdMTD {
					m := tr
					mtd = &m
				}
			}
			if tt.none {
				if mtd != nil {
					t.Errorf("got %+v, want no MTD trigger", mtd)
				}
				return
			}
			if mtd == nil {
				t.Fatal("no MTD trigger")
			}
			if mtd.Priority != tt.want {
				t.Errorf("priority = %v, want %v", mtd.Priority, tt.want)
			}
		})
	}
}

func TestTurnoverReview(t *testing.T) {
	now := date(2025, 6, 1)

	// Never supplied: prompt to add it.
	got := EvaluateThresholds(profile.Profile{}, now)
	if len(got) != 1 || got[0].ID != "turnover_missing" || got[0].Priority != Info {
		t.Fatalf("got %+v, want a single turnover_missing info trigger", got)
	}

	// Fresh figure: quiet.
	fresh := now.AddDate(0, -1, 0)
	p := profile.Profile{AnnualTurnover: profile.ParseTurnover("30000"), TurnoverLastUpdated: &fresh}
	for _, tr := range EvaluateThresholds(p, now) {
		if tr.ThresholdType == ThresholdTurnoverReview {
			t.Errorf("fresh turnover produced %+v", tr)
		}
	}

	// Four months old: refresh prompt.
	stale := now.AddDate(0, -4, 0)
	p.TurnoverLastUpdated = &stale
	var seen bool
	for _, tr := range EvaluateThresholds(p, now) {
		if tr.ID == "turnover_stale" {
			seen = true
		}
	}
	if !seen {
		t.Error("stale turnover did not produce a refresh prompt")
	}
}

func TestThresholds_UnknownTurnoverSuppressesNumericChecks(t *testing.T) {
	p := profile.Profile{
		AnnualTurnover: profile.ParseTurnover("quite a lot"),
		VATRegistered:  true,
		MTDStatus:      profile.MTDRequired,
	}
	for _, tr := range EvaluateThresholds(p, date(2025, 6, 1)) {
		if tr.ThresholdType == ThresholdVAT || tr.ThresholdType == ThresholdMTD {
			t.Errorf("numeric check fired on unknown turnover: %+v", tr)
		}
	}
}

func TestThresholds_ChecksAreIndependent(t *testing.T) {
	// VAT-registered + over MTD threshold + stale turnover: MTD and
	// staleness co-occur, sorted urgent first.
	stale := date(2025, 1, 1)
	p := profile.Profile{
		AnnualTurnover:      profile.ParseTurnover("100000"),
		VATRegistered:       true,
		MTDStatus:           profile.MTDRequired,
		TurnoverLastUpdated: &stale,
	}
	got := EvaluateThresholds(p, date(2025, 6, 1))
	if len(got) != 2 {
		t.Fatalf("got %d triggers, want 2", len(got))
	}
	if got[0].ThresholdType != ThresholdMTD || got[0].Priority != Urgent {
		t.Errorf("first = %+v, want urgent MTD", got[0])
	}
	if got[1].ThresholdType != ThresholdTurnoverReview {
		t.Errorf("second = %+v, want turnover review", got[1])
	}
}
