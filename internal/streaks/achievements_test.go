package streaks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/progress"
)

func completedRow(id string, score *int) progress.Record {
	done := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	return progress.Record{LessonID: id, CompletionRate: 100, QuizScore: score, CompletedAt: &done}
}

func intPtr(n int) *int { return &n }

func hasType(got []Achievement, t AchievementType) bool {
	for _, a := range got {
		if a.Type == t {
			return true
		}
	}
	return false
}

func miniCatalog() []catalog.Lesson {
	return []catalog.Lesson{
		{ID: "cash-1", Category: catalog.CategoryCashflow},
		{ID: "cash-2", Category: catalog.CategoryCashflow},
		{ID: "vat-1", Category: catalog.CategoryVAT},
	}
}

func TestEarned_FirstLesson(t *testing.T) {
	rows := []progress.Record{completedRow("cash-1", nil)}
	got := Earned(miniCatalog(), rows, Streak{})
	assert.True(t, hasType(got, AchievementFirstLesson))
	assert.False(t, hasType(got, AchievementCategory))
}

func TestEarned_CategoryAndCatalogComplete(t *testing.T) {
	rows := []progress.Record{
		completedRow("cash-1", nil),
		completedRow("cash-2", nil),
	}
	got := Earned(miniCatalog(), rows, Streak{})
	assert.True(t, hasType(got, AchievementCategory))
	assert.False(t, hasType(got, AchievementCatalog))

	rows = append(rows, completedRow("vat-1", nil))
	got = Earned(miniCatalog(), rows, Streak{})
	assert.True(t, hasType(got, AchievementCatalog))
}

func TestEarned_QuizAchievements(t *testing.T) {
	rows := []progress.Record{completedRow("cash-1", intPtr(100))}
	got := Earned(miniCatalog(), rows, Streak{})
	assert.True(t, hasType(got, AchievementPerfectQuiz))
	assert.False(t, hasType(got, AchievementQuizStreak))

	rows = []progress.Record{
		completedRow("a", intPtr(80)),
		completedRow("b", intPtr(85)),
		completedRow("c", intPtr(90)),
		completedRow("d", intPtr(82)),
		completedRow("e", intPtr(99)),
	}
	got = Earned(miniCatalog(), rows, Streak{})
	assert.True(t, hasType(got, AchievementQuizStreak))
	assert.False(t, hasType(got, AchievementPerfectQuiz))
}

func TestEarned_StreakBadgeUsesLongest(t *testing.T) {
	got := Earned(miniCatalog(), nil, Streak{Longest: 7})
	assert.True(t, hasType(got, AchievementStreakBadge))

	got = Earned(miniCatalog(), nil, Streak{Longest: 2})
	assert.False(t, hasType(got, AchievementStreakBadge))
}

func TestEarned_EmptyState(t *testing.T) {
	assert.Empty(t, Earned(miniCatalog(), nil, Streak{}))
}
