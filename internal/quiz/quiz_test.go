package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/progress"
	"github.com/finlearn/finlearn/internal/review"
)

func threeQuestions() Quiz {
	return Quiz{
		LessonID: "test",
		Questions: []Question{
			{Text: "q1", Options: []string{"a", "b"}, CorrectIndex: 0},
			{Text: "q2", Options: []string{"a", "b"}, CorrectIndex: 1},
			{Text: "q3", Options: []string{"a", "b"}, CorrectIndex: 1},
		},
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		name       string
		answers    []int
		wantScore  int
		wantPassed bool
	}{
		{"all correct", []int{0, 1, 1}, 100, true},
		{"two of three", []int{0, 1, 0}, 66, false},
		{"none correct", []int{1, 0, 0}, 0, false},
		{"missing answers count wrong", []int{0}, 33, false},
		{"out of range counts wrong", []int{5, 1, 1}, 66, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Grade(threeQuestions(), tt.answers)
			assert.Equal(t, tt.wantScore, res.Score)
			assert.Equal(t, tt.wantPassed, res.Passed)
		})
	}
}

func TestGrade_EmptyQuiz(t *testing.T) {
	res := Grade(Quiz{}, nil)
	assert.Equal(t, 0, res.Score)
	assert.False(t, res.Passed)
}

func TestGrade_PassBoundary(t *testing.T) {
	// 4 of 5 = 80, exactly the pass mark.
	q := Quiz{Questions: []Question{
		{CorrectIndex: 0}, {CorrectIndex: 0}, {CorrectIndex: 0}, {CorrectIndex: 0}, {CorrectIndex: 0},
	}}
	res := Grade(q, []int{0, 0, 0, 0, 1})
	assert.Equal(t, 80, res.Score)
	assert.True(t, res.Passed)
}

func TestApply_PassAdvancesSchedule(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	rec := progress.Record{LessonID: "cashflow-basics"}

	got := Apply(rec, Result{Score: 100, Passed: true}, review.LadderPolicy{}, now)

	assert.Equal(t, 100, got.CompletionRate)
	require.NotNil(t, got.QuizScore)
	assert.Equal(t, 100, *got.QuizScore)
	assert.Equal(t, 1, got.MasteryLevel)
	assert.Equal(t, 1, got.ReviewCount)
	require.NotNil(t, got.NextReviewDate)
	assert.Equal(t, now.AddDate(0, 0, 1), *got.NextReviewDate)
	require.NotNil(t, got.CompletedAt)
}

func TestApply_FailSchedulesRetry(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	rec := progress.Record{LessonID: "cashflow-basics", MasteryLevel: 2, ReviewCount: 3}

	got := Apply(rec, Result{Score: 40}, review.LadderPolicy{}, now)

	assert.Equal(t, 1, got.MasteryLevel)
	assert.Equal(t, 4, got.ReviewCount)
	require.NotNil(t, got.NextReviewDate)
	assert.Equal(t, now.AddDate(0, 0, 1), *got.NextReviewDate)
}

func TestApply_PreservesExistingTimestamps(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	earlier := now.AddDate(0, 0, -5)
	rec := progress.Record{LessonID: "x", StartedAt: &earlier, CompletedAt: &earlier}

	got := Apply(rec, Result{Score: 90}, review.LadderPolicy{}, now)
	assert.Equal(t, earlier, *got.StartedAt)
	assert.Equal(t, earlier, *got.CompletedAt)
}

func TestForLesson_BankCoversCatalog(t *testing.T) {
	for _, l := range catalog.All() {
		q, ok := ForLesson(l.ID)
		require.True(t, ok, "no quiz for %s", l.ID)
		assert.Equal(t, l.ID, q.LessonID)
		assert.NotEmpty(t, q.Questions)
		for i, question := range q.Questions {
			assert.GreaterOrEqual(t, question.CorrectIndex, 0, "%s q%d", l.ID, i)
			assert.Less(t, question.CorrectIndex, len(question.Options), "%s q%d", l.ID, i)
		}
	}
}
