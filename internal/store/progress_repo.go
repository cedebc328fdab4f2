package store

import (
	"context"
	"fmt"

	"github.com/finlearn/finlearn/ent"
	"github.com/finlearn/finlearn/ent/lessonprogress"
	"github.com/finlearn/finlearn/internal/progress"
)

// progressRepo implements ProgressRepo over lesson_progress rows.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) List(ctx context.Context) ([]progress.Record, error) {
	rows, err := r.client.LessonProgress.Query().
		Order(ent.Asc(lessonprogress.FieldLessonID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}

	out := make([]progress.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRecord(row))
	}
	return out, nil
}

func (r *progressRepo) Get(ctx context.Context, lessonID string) (*progress.Record, error) {
	row, err := r.client.LessonProgress.Query().
		Where(lessonprogress.LessonID(lessonID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress for %s: %w", lessonID, err)
	}
	rec := toRecord(row)
	return &rec, nil
}

func (r *progressRepo) Upsert(ctx context.Context, rec progress.Record) error {
	existing, err := r.client.LessonProgress.Query().
		Where(lessonprogress.LessonID(rec.LessonID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query progress for %s: %w", rec.LessonID, err)
	}

	if existing == nil {
		_, err = r.client.LessonProgress.Create().
			SetLessonID(rec.LessonID).
			SetCompletionRate(rec.CompletionRate).
			SetNillableQuizScore(rec.QuizScore).
			SetMasteryLevel(rec.MasteryLevel).
			SetReviewCount(rec.ReviewCount).
			SetNillableNextReviewDate(rec.NextReviewDate).
			SetNillableStartedAt(rec.StartedAt).
			SetNillableCompletedAt(rec.CompletedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress for %s: %w", rec.LessonID, err)
		}
		return nil
	}

	_, err = existing.Update().
		SetCompletionRate(rec.CompletionRate).
		SetNillableQuizScore(rec.QuizScore).
		SetMasteryLevel(rec.MasteryLevel).
		SetReviewCount(rec.ReviewCount).
		SetNillableNextReviewDate(rec.NextReviewDate).
		SetNillableStartedAt(rec.StartedAt).
		SetNillableCompletedAt(rec.CompletedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress for %s: %w", rec.LessonID, err)
	}
	return nil
}

func toRecord(row *ent.LessonProgress) progress.Record {
	return progress.Record{
		LessonID:       row.LessonID,
		CompletionRate: row.CompletionRate,
		QuizScore:      row.QuizScore,
		MasteryLevel:   row.MasteryLevel,
		ReviewCount:    row.ReviewCount,
		NextReviewDate: row.NextReviewDate,
		StartedAt:      row.StartedAt,
		CompletedAt:    row.CompletedAt,
	}
}
