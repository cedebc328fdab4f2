// Package recommend fills the dashboard's "next up" cards. Four slots
// are computed independently over the in-memory catalog and progress
// rows; duplicates across slots are allowed and are the caller's
// problem to dedupe for display.
package recommend

import (
	"github.com/samber/lo"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/priority"
	"github.com/finlearn/finlearn/internal/profile"
	"github.com/finlearn/finlearn/internal/progress"
)

// reviewScoreCutoff: quiz scores below this mark a lesson as worth
// revisiting in the review slot.
const reviewScoreCutoff = 80

// Slot is one recommendation card: the lesson plus a short label for
// why it was picked.
type Slot struct {
	Lesson catalog.Lesson
	Reason string
}

// Result holds the four recommendation slots. Any slot may be nil when
// nothing qualifies.
type Result struct {
	Primary   *Slot
	QuickWin  *Slot
	Challenge *Slot
	Review    *Slot
}

// Recommender computes the four slots. The pain-point matcher defaults
// to the scorer's keyword map but is swappable.
type Recommender struct {
	PainPoint priority.Matcher
}

func New() *Recommender {
	return &Recommender{PainPoint: priority.NewPainPointMatcher()}
}

// Build computes all four slots. lessons must be in catalog order;
// budgetMinutes <= 0 means derive the budget from the profile's time
// commitment.
func (r *Recommender) Build(lessons []catalog.Lesson, p profile.Profile, rows []progress.Record, budgetMinutes int) Result {
	if budgetMinutes <= 0 {
		budgetMinutes = p.TimeCommitment.Minutes()
	}

	completed := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.Complete() {
			completed[row.LessonID] = true
		}
	}
	incomplete := lo.Filter(lessons, func(l catalog.Lesson, _ int) bool {
		return !completed[l.ID]
	})

	return Result{
		Primary:   r.primary(incomplete, p, budgetMinutes),
		QuickWin:  quickWin(incomplete),
		Challenge: challenge(incomplete),
		Review:    reviewSlot(lessons, rows),
	}
}

// primary walks a three-step fallback chain: pain-point match within
// the time budget, then any lesson within budget, then the first
// incomplete lesson regardless.
func (r *Recommender) primary(incomplete []catalog.Lesson, p profile.Profile, budgetMinutes int) *Slot {
	for _, l := range incomplete {
		if l.DurationMin <= budgetMinutes && r.PainPoint.Matches(p.PainPoint, l) {
			return &Slot{Lesson: l, Reason: "Tackles what you said you struggle with"}
		}
	}
	for _, l := range incomplete {
		if l.DurationMin <= budgetMinutes {
			return &Slot{Lesson: l, Reason: "Fits your available time"}
		}
	}
	if len(incomplete) > 0 {
		return &Slot{Lesson: incomplete[0], Reason: "Next in the course"}
	}
	return nil
}

// quickWin is the shortest incomplete beginner lesson, falling back to
// the shortest incomplete lesson of any difficulty.
func quickWin(incomplete []catalog.Lesson) *Slot {
	beginner := lo.Filter(incomplete, func(l catalog.Lesson, _ int) bool {
		return l.Difficulty == catalog.Beginner
	})
	pool := beginner
	if len(pool) == 0 {
		pool = incomplete
	}
	if len(pool) == 0 {
		return nil
	}
	shortest := lo.MinBy(pool, func(a, b catalog.Lesson) bool {
		return a.DurationMin < b.DurationMin
	})
	return &Slot{Lesson: shortest, Reason: "A quick win for today"}
}

// challenge is the longest incomplete advanced lesson. No fallback.
func challenge(incomplete []catalog.Lesson) *Slot {
	advanced := lo.Filter(incomplete, func(l catalog.Lesson, _ int) bool {
		return l.Difficulty == catalog.Advanced
	})
	if len(advanced) == 0 {
		return nil
	}
	longest := lo.MaxBy(advanced, func(a, b catalog.Lesson) bool {
		return a.DurationMin > b.DurationMin
	})
	return &Slot{Lesson: longest, Reason: "Ready to stretch yourself?"}
}

// reviewSlot surfaces the lesson with the weakest quiz score under the
// cutoff. Rows without a quiz score never qualify.
func reviewSlot(lessons []catalog.Lesson, rows []progress.Record) *Slot {
	var worst *progress.Record
	for i := range rows {
		row := &rows[i]
		if row.QuizScore == nil || *row.QuizScore >= reviewScoreCutoff {
			continue
		}
		if worst == nil || *row.QuizScore < *worst.QuizScore {
			worst = row
		}
	}
	if worst == nil {
		return nil
	}
	l, ok := catalogLookup(lessons, worst.LessonID)
	if !ok {
		return nil
	}
	return &Slot{Lesson: l, Reason: "Worth another look after your last quiz"}
}

func catalogLookup(lessons []catalog.Lesson, id string) (catalog.Lesson, bool) {
	for _, l := range lessons {
		if l.ID == id {
			return l, true
		}
	}
	return catalog.Lesson{}, false
}
