package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/progress"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func completedRow(lessonID string, next *time.Time) progress.Record {
	done := date(2025, time.June, 1)
	return progress.Record{
		LessonID:       lessonID,
		CompletionRate: 100,
		MasteryLevel:   1,
		ReviewCount:    1,
		NextReviewDate: next,
		StartedAt:      datePtr(2025, time.May, 30),
		CompletedAt:    &done,
	}
}

func TestDue_OnlyCompletedWithElapsedDate(t *testing.T) {
	now := date(2025, time.July, 10)
	lessons := catalog.All()

	inProgress := progress.Record{
		LessonID:       "cashflow-basics",
		CompletionRate: 40,
		StartedAt:      datePtr(2025, time.July, 1),
		NextReviewDate: datePtr(2025, time.July, 5),
	}
	rows := []progress.Record{
		completedRow("invoicing-essentials", datePtr(2025, time.July, 8)),
		completedRow("allowable-expenses", datePtr(2025, time.July, 12)),
		inProgress,
		completedRow("vat-registration", nil),
	}

	due := Due(lessons, rows, now)
	require.Len(t, due, 1)
	assert.Equal(t, "invoicing-essentials", due[0].ID)
}

func TestDue_MostOverdueFirst(t *testing.T) {
	now := date(2025, time.July, 10)
	rows := []progress.Record{
		completedRow("allowable-expenses", datePtr(2025, time.July, 9)),
		completedRow("invoicing-essentials", datePtr(2025, time.July, 2)),
		completedRow("cashflow-basics", datePtr(2025, time.July, 6)),
	}

	due := Due(catalog.All(), rows, now)
	require.Len(t, due, 3)
	assert.Equal(t, "invoicing-essentials", due[0].ID)
	assert.Equal(t, "cashflow-basics", due[1].ID)
	assert.Equal(t, "allowable-expenses", due[2].ID)
}

func TestDue_DateExactlyNowIsDue(t *testing.T) {
	now := date(2025, time.July, 10)
	rows := []progress.Record{
		completedRow("cashflow-basics", &now),
	}
	assert.Len(t, Due(catalog.All(), rows, now), 1)
}

func TestUpcoming_WindowExcludesDueAndBeyondHorizon(t *testing.T) {
	now := date(2025, time.July, 10)
	rows := []progress.Record{
		completedRow("invoicing-essentials", datePtr(2025, time.July, 10)), // due, not upcoming
		completedRow("cashflow-basics", datePtr(2025, time.July, 13)),
		completedRow("allowable-expenses", datePtr(2025, time.July, 17)),
		completedRow("vat-registration", datePtr(2025, time.July, 18)), // past horizon
	}

	up := Upcoming(catalog.All(), rows, now, 7)
	require.Len(t, up, 2)
	assert.Equal(t, "cashflow-basics", up[0].ID)
	assert.Equal(t, "allowable-expenses", up[1].ID)
}

func TestSelectReviews_JoinsMasteryState(t *testing.T) {
	now := date(2025, time.July, 10)
	score := 90
	done := date(2025, time.June, 1)
	rows := []progress.Record{{
		LessonID:       "vat-return-walkthrough",
		CompletionRate: 100,
		QuizScore:      &score,
		MasteryLevel:   progress.MasteryProficient,
		ReviewCount:    3,
		NextReviewDate: datePtr(2025, time.July, 1),
		CompletedAt:    &done,
	}}

	due := Due(catalog.All(), rows, now)
	require.Len(t, due, 1)
	got := due[0]
	assert.Equal(t, "Filing a VAT Return Without the Panic", got.Title)
	assert.Equal(t, catalog.CategoryVAT, got.Category)
	assert.Equal(t, progress.MasteryProficient, got.MasteryLevel)
	assert.Equal(t, "Proficient", got.MasteryLabel)
	assert.Equal(t, 3, got.ReviewCount)
	require.NotNil(t, got.LastScore)
	assert.Equal(t, 90, *got.LastScore)
}

func TestSelectReviews_SkipsUnknownLessonIDs(t *testing.T) {
	now := date(2025, time.July, 10)
	rows := []progress.Record{
		completedRow("deleted-lesson", datePtr(2025, time.July, 1)),
	}
	assert.Empty(t, Due(catalog.All(), rows, now))
}
