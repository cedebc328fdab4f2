// Package review selects completed lessons that are due for spaced
// repetition. Selection is a pure read over progress rows: the engine
// consumes a stored next_review_date and never recomputes history. The
// interval ladder that advances that date lives in interval.go behind
// the IntervalPolicy contract.
package review

import (
	"sort"
	"time"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/progress"
)

// Lesson is a review-mode card: lesson metadata joined with the mastery
// state from its progress row.
type Lesson struct {
	ID             string
	Title          string
	Category       catalog.Category
	Emoji          string
	MasteryLevel   int
	MasteryLabel   string
	ReviewCount    int
	NextReviewDate time.Time
	// LastScore is the most recent quiz score, nil if no quiz taken.
	LastScore *int
}

// Due returns completed lessons whose review date has elapsed, most
// overdue first (ascending next_review_date).
func Due(lessons []catalog.Lesson, rows []progress.Record, now time.Time) []Lesson {
	return selectReviews(lessons, rows, func(d time.Time) bool {
		return !d.After(now)
	})
}

// Upcoming returns completed lessons whose review falls within the next
// withinDays days, soonest first.
func Upcoming(lessons []catalog.Lesson, rows []progress.Record, now time.Time, withinDays int) []Lesson {
	horizon := now.AddDate(0, 0, withinDays)
	return selectReviews(lessons, rows, func(d time.Time) bool {
		return d.After(now) && !d.After(horizon)
	})
}

func selectReviews(lessons []catalog.Lesson, rows []progress.Record, include func(time.Time) bool) []Lesson {
	byID := make(map[string]catalog.Lesson, len(lessons))
	for _, l := range lessons {
		byID[l.ID] = l
	}

	var out []Lesson
	for _, r := range rows {
		if r.CompletedAt == nil || r.NextReviewDate == nil {
			continue
		}
		if !include(*r.NextReviewDate) {
			continue
		}
		l, ok := byID[r.LessonID]
		if !ok {
			continue
		}
		out = append(out, Lesson{
			ID:             l.ID,
			Title:          l.Title,
			Category:       l.Category,
			Emoji:          l.Emoji,
			MasteryLevel:   r.MasteryLevel,
			MasteryLabel:   progress.MasteryLabel(r.MasteryLevel),
			ReviewCount:    r.ReviewCount,
			NextReviewDate: *r.NextReviewDate,
			LastScore:      r.QuizScore,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NextReviewDate.Before(out[j].NextReviewDate)
	})
	return out
}
