// Package quiz grades end-of-lesson quizzes and applies the outcome to
// lesson progress. Questions come from the built-in bank; review
// sessions can top up with LLM-generated refreshers.
package quiz

import (
	"time"

	"github.com/finlearn/finlearn/internal/progress"
	"github.com/finlearn/finlearn/internal/review"
)

// PassScore is the minimum percentage counted as a pass.
const PassScore = 80

// Question is one multiple-choice question.
type Question struct {
	Text         string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// Quiz is the question set for one lesson.
type Quiz struct {
	LessonID  string
	Questions []Question
}

// Result is the outcome of grading one quiz attempt.
type Result struct {
	Score   int // percentage 0-100
	Correct int
	Total   int
	Passed  bool
}

// Grade scores an attempt. answers holds the chosen option index per
// question; out-of-range or missing answers count as wrong. An empty
// quiz scores zero.
func Grade(q Quiz, answers []int) Result {
	total := len(q.Questions)
	if total == 0 {
		return Result{}
	}

	correct := 0
	for i, question := range q.Questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == question.CorrectIndex {
			correct++
		}
	}

	score := correct * 100 / total
	return Result{
		Score:   score,
		Correct: correct,
		Total:   total,
		Passed:  score >= PassScore,
	}
}

// Apply folds a quiz result into a progress record: marks the lesson
// complete, stores the score, and advances the review schedule through
// the interval policy.
func Apply(rec progress.Record, res Result, policy review.IntervalPolicy, now time.Time) progress.Record {
	rec.CompletionRate = 100
	score := res.Score
	rec.QuizScore = &score
	if rec.StartedAt == nil {
		rec.StartedAt = &now
	}
	if rec.CompletedAt == nil {
		rec.CompletedAt = &now
	}

	level, next := policy.Next(rec.MasteryLevel, rec.ReviewCount, res.Score, now)
	rec.MasteryLevel = level
	rec.ReviewCount++
	rec.NextReviewDate = &next

	return rec
}
