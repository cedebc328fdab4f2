// Package progress defines the per-lesson learning record shared by the
// review scheduler, the recommendation aggregator and the store.
package progress

import "time"

// Mastery levels. The ordinal feeds display labels and the review ladder.
const (
	MasteryLearning   = 0
	MasteryFamiliar   = 1
	MasteryProficient = 2
	MasteryMastered   = 3
)

// Record is one user's progress on one lesson.
type Record struct {
	LessonID string

	// CompletionRate is 0-100; 100 means the lesson is complete.
	CompletionRate int

	// QuizScore is the latest quiz result, 0-100. Nil when no quiz has
	// been taken.
	QuizScore *int

	// MasteryLevel is the 0-3 ordinal advanced by the review ladder.
	MasteryLevel int

	// ReviewCount is how many reviews have been completed.
	ReviewCount int

	// NextReviewDate is when the lesson next comes up for review.
	NextReviewDate *time.Time

	StartedAt   *time.Time
	CompletedAt *time.Time
}

// Complete reports whether the lesson has been finished.
func (r Record) Complete() bool { return r.CompletionRate >= 100 }

// Started reports whether the lesson has been opened at all.
func (r Record) Started() bool { return r.StartedAt != nil || r.CompletionRate > 0 }

// MasteryLabel maps a mastery level to its display label.
func MasteryLabel(level int) string {
	switch level {
	case MasteryFamiliar:
		return "Familiar"
	case MasteryProficient:
		return "Proficient"
	case MasteryMastered:
		return "Mastered"
	default:
		return "Learning"
	}
}

// MasteryColor maps a mastery level to its display color (hex).
func MasteryColor(level int) string {
	switch level {
	case MasteryFamiliar:
		return "#3B82F6"
	case MasteryProficient:
		return "#8B5CF6"
	case MasteryMastered:
		return "#F59E0B"
	default:
		return "#6B7280"
	}
}
