package streaks

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/progress"
)

// AchievementType identifies the category of achievement.
type AchievementType string

const (
	AchievementFirstLesson AchievementType = "first_lesson"
	AchievementCategory    AchievementType = "category_complete"
	AchievementCatalog     AchievementType = "catalog_complete"
	AchievementPerfectQuiz AchievementType = "perfect_quiz"
	AchievementQuizStreak  AchievementType = "quiz_streak"
	AchievementStreakBadge AchievementType = "streak_milestone"
)

// quizStreakLength is how many consecutive passing quizzes earn the
// quiz streak achievement.
const quizStreakLength = 5

const quizPassScore = 80

// Achievement is an earned badge.
type Achievement struct {
	Type  AchievementType
	Title string
	Icon  string
}

// Earned derives all achievements from the current progress rows and
// streak. Like the streak itself it is recomputed, not stored.
func Earned(lessons []catalog.Lesson, rows []progress.Record, s Streak) []Achievement {
	var out []Achievement

	completed := lo.Filter(rows, func(r progress.Record, _ int) bool { return r.Complete() })
	if len(completed) > 0 {
		out = append(out, Achievement{AchievementFirstLesson, "First lesson done", "🌱"})
	}

	completedIDs := make(map[string]bool, len(completed))
	for _, r := range completed {
		completedIDs[r.LessonID] = true
	}

	byCategory := lo.GroupBy(lessons, func(l catalog.Lesson) catalog.Category { return l.Category })
	allDone := len(lessons) > 0
	for _, cat := range orderedCategories(lessons) {
		ls := byCategory[cat]
		done := lo.EveryBy(ls, func(l catalog.Lesson) bool { return completedIDs[l.ID] })
		if done {
			out = append(out, Achievement{
				Type:  AchievementCategory,
				Title: fmt.Sprintf("Finished every %s lesson", cat),
				Icon:  "📚",
			})
		} else {
			allDone = false
		}
	}
	if allDone {
		out = append(out, Achievement{AchievementCatalog, "Completed the whole course", "🎓"})
	}

	for _, r := range rows {
		if r.QuizScore != nil && *r.QuizScore == 100 {
			out = append(out, Achievement{AchievementPerfectQuiz, "Scored 100% on a quiz", "💯"})
			break
		}
	}

	passing := lo.CountBy(rows, func(r progress.Record) bool {
		return r.QuizScore != nil && *r.QuizScore >= quizPassScore
	})
	if passing >= quizStreakLength {
		out = append(out, Achievement{
			Type:  AchievementQuizStreak,
			Title: fmt.Sprintf("Passed %d quizzes", quizStreakLength),
			Icon:  "⚡",
		})
	}

	if s.Longest >= milestones[0] {
		out = append(out, Achievement{
			Type:  AchievementStreakBadge,
			Title: fmt.Sprintf("%d-day learning streak", s.Longest),
			Icon:  "🔥",
		})
	}

	return out
}

// orderedCategories lists categories in first-appearance catalog order
// so the achievement list is stable between runs.
func orderedCategories(lessons []catalog.Lesson) []catalog.Category {
	return lo.Uniq(lo.Map(lessons, func(l catalog.Lesson, _ int) catalog.Category { return l.Category }))
}
