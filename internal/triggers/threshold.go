package triggers

import (
	"fmt"
	"sort"
	"time"

	"github.com/finlearn/finlearn/internal/profile"
	"github.com/finlearn/finlearn/internal/taxcal"
)

// Proximity bands below the registration thresholds.
const (
	vatUrgentBand  = 10_000
	vatWarningBand = 20_000
	mtdWarningBand = 15_000

	// turnoverStaleMonths is how old a turnover figure may be before a
	// refresh prompt fires.
	turnoverStaleMonths = 3
)

// EvaluateThresholds returns proactive alerts for business metrics
// approaching a regulatory threshold. The three checks are independent
// and may all fire; unknown turnover suppresses the numeric checks
// entirely.
func EvaluateThresholds(p profile.Profile, now time.Time) []ThresholdTrigger {
	var out []ThresholdTrigger

	if t := vatThresholdTrigger(p); t != nil {
		out = append(out, *t)
	}
	if t := mtdTrigger(p); t != nil {
		out = append(out, *t)
	}
	if t := turnoverReviewTrigger(p, now); t != nil {
		out = append(out, *t)
	}

	sortThresholds(out)
	return out
}

// vatThresholdTrigger warns an unregistered business closing in on the
// VAT registration threshold. Registration is mandatory once rolling
// turnover exceeds it, so the messaging says so explicitly.
func vatThresholdTrigger(p profile.Profile) *ThresholdTrigger {
	if p.VATRegistered || !p.AnnualTurnover.Known() {
		return nil
	}

	turnover := p.AnnualTurnover.Amount()
	gap := taxcal.VATRegistrationThreshold - turnover
	pct := turnover / taxcal.VATRegistrationThreshold * 100

	base := ThresholdTrigger{
		ThresholdType:         ThresholdVAT,
		CurrentValue:          turnover,
		ThresholdValue:        taxcal.VATRegistrationThreshold,
		PercentageToThreshold: pct,
	}

	switch {
	case gap <= vatUrgentBand:
		base.Trigger = Trigger{
			ID:       "vat_threshold_urgent",
			Priority: Urgent,
			Title:    "You're close to the VAT threshold",
			Message: fmt.Sprintf(
				"Your turnover of £%.0f is within £%.0f of the £%d VAT registration threshold. Registration is automatic and mandatory once you cross it — not optional.",
				turnover, gap, taxcal.VATRegistrationThreshold),
			LessonIDs: []string{"vat-registration", "vat-return-walkthrough"},
		}
	case gap <= vatWarningBand:
		base.Trigger = Trigger{
			ID:       "vat_threshold_warning",
			Priority: Warning,
			Title:    "VAT threshold on the horizon",
			Message: fmt.Sprintf(
				"Your turnover of £%.0f is approaching the £%d VAT registration threshold. Registration becomes mandatory, automatically, once you exceed it.",
				turnover, taxcal.VATRegistrationThreshold),
			LessonIDs: []string{"vat-registration", "vat-return-walkthrough"},
		}
	default:
		return nil
	}
	return &base
}

// mtdTrigger flags Making Tax Digital obligations for VAT-registered
// businesses that are not yet compliant.
func mtdTrigger(p profile.Profile) *ThresholdTrigger {
	if !p.VATRegistered || p.MTDStatus == profile.MTDCompliant || !p.AnnualTurnover.Known() {
		return nil
	}

	turnover := p.AnnualTurnover.Amount()
	base := ThresholdTrigger{
		ThresholdType:         ThresholdMTD,
		CurrentValue:          turnover,
		ThresholdValue:        taxcal.MTDIncomeThreshold,
		PercentageToThreshold: turnover / taxcal.MTDIncomeThreshold * 100,
	}

	switch {
	case turnover >= taxcal.MTDIncomeThreshold:
		base.Trigger = Trigger{
			ID:       "mtd_required",
			Priority: Urgent,
			Title:    "Making Tax Digital applies to you",
			Message: fmt.Sprintf(
				"With turnover of £%.0f you're over the £%d MTD threshold and must keep digital records with compatible software.",
				turnover, taxcal.MTDIncomeThreshold),
			LessonIDs: []string{"mtd-getting-ready", "sa-records-checklist"},
		}
	case taxcal.MTDIncomeThreshold-turnover <= mtdWarningBand:
		base.Trigger = Trigger{
			ID:       "mtd_approaching",
			Priority: Warning,
			Title:    "Making Tax Digital is coming up",
			Message: fmt.Sprintf(
				"Your turnover of £%.0f is nearing the £%d MTD threshold. Moving to digital records now avoids a scramble later.",
				turnover, taxcal.MTDIncomeThreshold),
			LessonIDs: []string{"mtd-getting-ready", "sa-records-checklist"},
		}
	default:
		return nil
	}
	return &base
}

// turnoverReviewTrigger prompts for a turnover figure when none exists,
// or for a refresh once the stored figure is a quarter old. Threshold
// checks only work with current data.
func turnoverReviewTrigger(p profile.Profile, now time.Time) *ThresholdTrigger {
	base := ThresholdTrigger{
		ThresholdType:  ThresholdTurnoverReview,
		CurrentValue:   p.AnnualTurnover.Amount(),
		ThresholdValue: 0,
	}

	if p.TurnoverLastUpdated == nil {
		base.Trigger = Trigger{
			ID:       "turnover_missing",
			Priority: Info,
			Title:    "Add your annual turnover",
			Message:  "Tell us your rough annual turnover so we can warn you before VAT and MTD thresholds apply.",
		}
		return &base
	}

	if now.Sub(*p.TurnoverLastUpdated) >= turnoverStaleMonths*30*24*time.Hour {
		base.Trigger = Trigger{
			ID:       "turnover_stale",
			Priority: Info,
			Title:    "Is your turnover figure still right?",
			Message:  "Your turnover was last updated over three months ago. A quick refresh keeps threshold warnings accurate.",
		}
		return &base
	}
	return nil
}

func sortThresholds(ts []ThresholdTrigger) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].Priority < ts[j].Priority
	})
}
