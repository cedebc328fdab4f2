// Package streaks computes the daily learning streak and its
// milestones from activity timestamps. The streak is derived fresh on
// every call, never stored, so it cannot drift from the activity log.
package streaks

import (
	"time"

	"github.com/samber/lo"
)

// milestones are the early streak thresholds. Past the last one a
// milestone lands every 30 days.
var milestones = []int{3, 7, 14, 30}

const milestoneStep = 30

// Streak is the derived streak state at a point in time.
type Streak struct {
	// Current is the run of consecutive active days ending today or
	// yesterday. Zero when the last activity is older than yesterday.
	Current int
	// Longest is the longest run anywhere in the activity history.
	Longest int
	// ActiveToday reports whether any activity landed on now's day.
	ActiveToday bool
	// NextMilestone is the next threshold above Current.
	NextMilestone int
}

// Compute derives the streak from raw activity timestamps. Multiple
// activities on the same day count once; days are bucketed in now's
// location.
func Compute(activity []time.Time, now time.Time) Streak {
	days := activeDays(activity, now.Location())

	current := currentRun(days, now)
	return Streak{
		Current:       current,
		Longest:       longestRun(days),
		ActiveToday:   days[dayKey(now)],
		NextMilestone: NextMilestone(current),
	}
}

// NextMilestone returns the first threshold strictly above current.
func NextMilestone(current int) int {
	for _, m := range milestones {
		if m > current {
			return m
		}
	}
	return ((current / milestoneStep) + 1) * milestoneStep
}

// IsMilestone reports whether length is exactly a milestone, so the
// caller can celebrate it once when it is reached.
func IsMilestone(length int) bool {
	if lo.Contains(milestones, length) {
		return true
	}
	return length > milestones[len(milestones)-1] && length%milestoneStep == 0
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func activeDays(activity []time.Time, loc *time.Location) map[string]bool {
	days := make(map[string]bool, len(activity))
	for _, t := range activity {
		days[dayKey(t.In(loc))] = true
	}
	return days
}

// currentRun counts back from today. A streak survives a day without
// activity only while today is still in progress: if today is inactive
// the count starts from yesterday instead.
func currentRun(days map[string]bool, now time.Time) int {
	start := now
	if !days[dayKey(now)] {
		start = now.AddDate(0, 0, -1)
		if !days[dayKey(start)] {
			return 0
		}
	}

	run := 0
	for d := start; days[dayKey(d)]; d = d.AddDate(0, 0, -1) {
		run++
	}
	return run
}

func longestRun(days map[string]bool) int {
	longest := 0
	for key := range days {
		day, err := time.Parse("2006-01-02", key)
		if err != nil {
			continue
		}
		// Only count runs from their first day.
		if days[dayKey(day.AddDate(0, 0, -1))] {
			continue
		}
		run := 0
		for d := day; days[dayKey(d)]; d = d.AddDate(0, 0, 1) {
			run++
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
