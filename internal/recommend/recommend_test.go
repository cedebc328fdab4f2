package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/profile"
	"github.com/finlearn/finlearn/internal/progress"
)

func lesson(id string, cat catalog.Category, diff catalog.Difficulty, mins int) catalog.Lesson {
	return catalog.Lesson{ID: id, Title: id, Category: cat, Difficulty: diff, DurationMin: mins}
}

func testLessons() []catalog.Lesson {
	return []catalog.Lesson{
		lesson("cash-1", catalog.CategoryCashflow, catalog.Beginner, 10),
		lesson("invoice-1", catalog.CategoryInvoicing, catalog.Beginner, 15),
		lesson("tax-1", catalog.CategoryTax, catalog.Intermediate, 25),
		lesson("vat-deep", catalog.CategoryVAT, catalog.Advanced, 45),
		lesson("funding-deep", catalog.CategoryFunding, catalog.Advanced, 60),
	}
}

func completedRow(id string) progress.Record {
	done := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	return progress.Record{LessonID: id, CompletionRate: 100, CompletedAt: &done}
}

func scoredRow(id string, score int) progress.Record {
	r := completedRow(id)
	r.QuizScore = &score
	return r
}

func TestPrimary_PainPointMatchWithinBudget(t *testing.T) {
	p := profile.Profile{PainPoint: "chasing late payments", TimeCommitment: profile.Commitment30}

	res := New().Build(testLessons(), p, nil, 0)
	require.NotNil(t, res.Primary)
	assert.Equal(t, "invoice-1", res.Primary.Lesson.ID)
}

func TestPrimary_FallsBackToTimeAppropriate(t *testing.T) {
	// Pain point matches nothing in the catalog.
	p := profile.Profile{PainPoint: "payroll headaches", TimeCommitment: profile.Commitment15}

	res := New().Build(testLessons(), p, nil, 0)
	require.NotNil(t, res.Primary)
	assert.Equal(t, "cash-1", res.Primary.Lesson.ID)
}

func TestPrimary_FallsBackToFirstIncomplete(t *testing.T) {
	lessons := []catalog.Lesson{
		lesson("vat-deep", catalog.CategoryVAT, catalog.Advanced, 45),
		lesson("funding-deep", catalog.CategoryFunding, catalog.Advanced, 60),
	}
	p := profile.Profile{TimeCommitment: profile.Commitment15} // nothing fits 15 min

	res := New().Build(lessons, p, nil, 0)
	require.NotNil(t, res.Primary)
	assert.Equal(t, "vat-deep", res.Primary.Lesson.ID)
}

func TestPrimary_ExplicitBudgetOverridesCommitment(t *testing.T) {
	p := profile.Profile{PainPoint: "vat", TimeCommitment: profile.Commitment15}

	// 45-minute VAT lesson only fits with the explicit budget.
	res := New().Build(testLessons(), p, nil, 60)
	require.NotNil(t, res.Primary)
	assert.Equal(t, "vat-deep", res.Primary.Lesson.ID)
}

func TestQuickWin_ShortestBeginner(t *testing.T) {
	res := New().Build(testLessons(), profile.Profile{}, nil, 30)
	require.NotNil(t, res.QuickWin)
	assert.Equal(t, "cash-1", res.QuickWin.Lesson.ID)
}

func TestQuickWin_FallsBackPastCompletedBeginners(t *testing.T) {
	rows := []progress.Record{completedRow("cash-1"), completedRow("invoice-1")}

	res := New().Build(testLessons(), profile.Profile{}, rows, 30)
	require.NotNil(t, res.QuickWin)
	assert.Equal(t, "tax-1", res.QuickWin.Lesson.ID)
}

func TestChallenge_LongestAdvancedOrNil(t *testing.T) {
	res := New().Build(testLessons(), profile.Profile{}, nil, 30)
	require.NotNil(t, res.Challenge)
	assert.Equal(t, "funding-deep", res.Challenge.Lesson.ID)

	rows := []progress.Record{completedRow("vat-deep"), completedRow("funding-deep")}
	res = New().Build(testLessons(), profile.Profile{}, rows, 30)
	assert.Nil(t, res.Challenge)
}

func TestReview_LowestFailingQuizScore(t *testing.T) {
	rows := []progress.Record{
		scoredRow("cash-1", 90),
		scoredRow("tax-1", 60),
		scoredRow("invoice-1", 45),
	}

	res := New().Build(testLessons(), profile.Profile{}, rows, 30)
	require.NotNil(t, res.Review)
	assert.Equal(t, "invoice-1", res.Review.Lesson.ID)
}

func TestReview_NilWhenAllScoresPass(t *testing.T) {
	rows := []progress.Record{scoredRow("cash-1", 80), completedRow("tax-1")}

	res := New().Build(testLessons(), profile.Profile{}, rows, 30)
	assert.Nil(t, res.Review)
}

func TestBuild_DuplicatesAcrossSlotsAllowed(t *testing.T) {
	lessons := []catalog.Lesson{lesson("cash-1", catalog.CategoryCashflow, catalog.Beginner, 10)}
	p := profile.Profile{PainPoint: "cash flow", TimeCommitment: profile.Commitment30}

	res := New().Build(lessons, p, nil, 0)
	require.NotNil(t, res.Primary)
	require.NotNil(t, res.QuickWin)
	assert.Equal(t, res.Primary.Lesson.ID, res.QuickWin.Lesson.ID)
}

func TestBuild_EmptyCatalog(t *testing.T) {
	res := New().Build(nil, profile.Profile{}, nil, 0)
	assert.Nil(t, res.Primary)
	assert.Nil(t, res.QuickWin)
	assert.Nil(t, res.Challenge)
	assert.Nil(t, res.Review)
}
