// Package triggers produces the time-sensitive alerts shown on the
// dashboard: seasonal deadline proximity and proactive threshold warnings.
// Every evaluator is a pure function of the profile and an explicit now;
// triggers are recomputed on every evaluation and never persisted.
package triggers

import "sort"

// Priority orders triggers. Urgent always sorts before warning, warning
// before info; sorts are stable within a level.
type Priority int

const (
	Urgent Priority = iota
	Warning
	Info
)

// String returns the wire/display label for the priority.
func (p Priority) String() string {
	switch p {
	case Urgent:
		return "urgent"
	case Warning:
		return "warning"
	default:
		return "info"
	}
}

// Trigger is a transient dashboard alert.
type Trigger struct {
	ID       string
	Priority Priority
	Title    string
	Message  string
	// LessonIDs are the catalog lessons the alert points at, most
	// relevant first.
	LessonIDs []string
	// DaysUntilExpiry is set for deadline-driven triggers.
	DaysUntilExpiry *int
}

// ThresholdType classifies a proactive threshold alert.
type ThresholdType string

const (
	ThresholdVAT            ThresholdType = "vat"
	ThresholdMTD            ThresholdType = "mtd"
	ThresholdTurnoverReview ThresholdType = "turnover_review"
)

// ThresholdTrigger is a Trigger annotated with the numeric position
// against a regulatory threshold.
type ThresholdTrigger struct {
	Trigger
	ThresholdType  ThresholdType
	CurrentValue   float64
	ThresholdValue float64
	// PercentageToThreshold may exceed 100; it is deliberately unclamped.
	PercentageToThreshold float64
}

func days(n int) *int { return &n }

// sortByPriority stable-sorts triggers urgent first.
func sortByPriority(ts []Trigger) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].Priority < ts[j].Priority
	})
}
