package priority

import (
	"strings"
	"testing"
	"time"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/profile"
	"github.com/finlearn/finlearn/internal/triggers"
)

var july = time.Date(2025, 7, 15, 9, 0, 0, 0, time.UTC) // general season

func lesson(id string, cat catalog.Category, title string, tags ...string) catalog.Lesson {
	return catalog.Lesson{ID: id, Title: title, Category: cat, SeasonalTags: tags}
}

func urgentTrigger(lessonIDs ...string) triggers.Trigger {
	return triggers.Trigger{ID: "t-urgent", Priority: triggers.Urgent, LessonIDs: lessonIDs}
}

func warningTrigger(lessonIDs ...string) triggers.Trigger {
	return triggers.Trigger{ID: "t-warn", Priority: triggers.Warning, LessonIDs: lessonIDs}
}

func TestRank_TriggerBonuses(t *testing.T) {
	lessons := []catalog.Lesson{
		lesson("a", catalog.CategoryTax, "Tax A"),
		lesson("b", catalog.CategoryTax, "Tax B"),
		lesson("c", catalog.CategoryTax, "Tax C"),
	}
	got := NewScorer().Rank(lessons, profile.Profile{},
		[]triggers.Trigger{urgentTrigger("a"), warningTrigger("b")}, nil, july)

	if got[0].LessonID != "a" || got[0].PriorityScore != ScoreUrgentTrigger || got[0].Urgency != TierUrgent {
		t.Errorf("got[0] = %+v, want lesson a at +100 urgent", got[0])
	}
	if got[1].LessonID != "b" || got[1].PriorityScore != ScoreWarningTrigger || got[1].Urgency != TierHigh {
		t.Errorf("got[1] = %+v, want lesson b at +70 high", got[1])
	}
	if got[2].LessonID != "c" || got[2].PriorityScore != 0 || got[2].Urgency != TierLow {
		t.Errorf("got[2] = %+v, want lesson c at 0 low", got[2])
	}
}

func TestRank_ThresholdTriggersCountToo(t *testing.T) {
	lessons := []catalog.Lesson{lesson("vat-registration", catalog.CategoryVAT, "VAT Registration")}
	th := []triggers.ThresholdTrigger{{
		Trigger:       urgentTrigger("vat-registration"),
		ThresholdType: triggers.ThresholdVAT,
	}}
	got := NewScorer().Rank(lessons, profile.Profile{}, nil, th, july)
	if got[0].PriorityScore != ScoreUrgentTrigger {
		t.Errorf("score = %d, want %d from threshold trigger", got[0].PriorityScore, ScoreUrgentTrigger)
	}
}

func TestRank_SeasonTagBonus(t *testing.T) {
	dec := time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC)
	lessons := []catalog.Lesson{
		lesson("sa", catalog.CategoryTax, "Self Assessment", catalog.TagSelfAssessment),
		lesson("plain", catalog.CategoryTax, "Plain"),
	}
	got := NewScorer().Rank(lessons, profile.Profile{}, nil, nil, dec)
	if got[0].LessonID != "sa" || got[0].PriorityScore != ScoreSeasonTag {
		t.Errorf("got[0] = %+v, want sa at +40", got[0])
	}
}

func TestRank_ProfileSignals(t *testing.T) {
	p := profile.Profile{
		PainPoint:    "struggling with cash flow",
		LearningGoal: "get on top of VAT",
		Industry:     "retail shop",
	}
	lessons := []catalog.Lesson{
		lesson("cash", catalog.CategoryCashflow, "Cash Flow Basics"),
		lesson("vat", catalog.CategoryVAT, "VAT Returns"),
	}
	got := NewScorer().Rank(lessons, p, nil, nil, july)

	byID := map[string]PrioritizedLesson{}
	for _, pl := range got {
		byID[pl.LessonID] = pl
	}

	// cash: pain point (+30) + industry retail->cashflow (+20) = 50; the
	// VAT goal does not reach a cash flow title.
	if byID["cash"].PriorityScore != ScorePainPoint+ScoreIndustry {
		t.Errorf("cash score = %d, want %d", byID["cash"].PriorityScore, ScorePainPoint+ScoreIndustry)
	}
	// vat: goal (+25) + industry retail->vat (+20) = 45.
	if byID["vat"].PriorityScore != ScoreLearningGoal+ScoreIndustry {
		t.Errorf("vat score = %d, want %d", byID["vat"].PriorityScore, ScoreLearningGoal+ScoreIndustry)
	}
}

func TestRank_Monotonic(t *testing.T) {
	// Adding a matching signal never lowers the score, all else equal.
	base := profile.Profile{PainPoint: "cash flow"}
	richer := base
	richer.Industry = "retail"

	lessons := []catalog.Lesson{lesson("cash", catalog.CategoryCashflow, "Cash Flow")}
	s := NewScorer()

	baseScore := s.Rank(lessons, base, nil, nil, july)[0].PriorityScore
	richerScore := s.Rank(lessons, richer, nil, nil, july)[0].PriorityScore
	if richerScore < baseScore {
		t.Errorf("adding a signal lowered the score: %d -> %d", baseScore, richerScore)
	}
}

func TestRank_ScoreSortBeatsTier(t *testing.T) {
	// Lesson A scores 75 with no trigger match (medium tier); lesson B
	// scores 70 from a warning trigger (high tier). Raw score wins the
	// ordering; the tier is only a label.
	p := profile.Profile{
		PainPoint:    "cash flow",
		Industry:     "retail",
		LearningGoal: "cash",
	}
	lessons := []catalog.Lesson{
		lesson("b", catalog.CategoryTax, "Tax B"),
		lesson("a", catalog.CategoryCashflow, "Cash Flow"),
	}
	got := NewScorer().Rank(lessons, p, []triggers.Trigger{warningTrigger("b")}, nil, july)

	if got[0].LessonID != "a" {
		t.Fatalf("got[0] = %s (score %d), want a first on raw score", got[0].LessonID, got[0].PriorityScore)
	}
	if got[0].Urgency != TierMedium {
		t.Errorf("a tier = %v, want medium (score > 50, no trigger)", got[0].Urgency)
	}
	if got[1].Urgency != TierHigh {
		t.Errorf("b tier = %v, want high", got[1].Urgency)
	}
	if got[0].PriorityScore <= got[1].PriorityScore {
		t.Errorf("scores: a=%d b=%d, expected a > b", got[0].PriorityScore, got[1].PriorityScore)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	lessons := []catalog.Lesson{
		lesson("first", catalog.CategoryTax, "One"),
		lesson("second", catalog.CategoryTax, "Two"),
		lesson("third", catalog.CategoryTax, "Three"),
	}
	got := NewScorer().Rank(lessons, profile.Profile{}, nil, nil, july)

	want := []string{"first", "second", "third"}
	for i, id := range want {
		if got[i].LessonID != id {
			t.Errorf("position %d = %s, want %s (catalog order preserved on ties)", i, got[i].LessonID, id)
		}
	}
}

func TestRank_ReasonsInEvaluationOrder(t *testing.T) {
	dec := time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC)
	p := profile.Profile{PainPoint: "tax worries"}
	lessons := []catalog.Lesson{
		lesson("sa", catalog.CategoryTax, "Self Assessment", catalog.TagSelfAssessment),
	}
	got := NewScorer().Rank(lessons, p, []triggers.Trigger{urgentTrigger("sa")}, nil, dec)

	if len(got[0].Reasons) != 3 {
		t.Fatalf("got %d reasons, want 3: %v", len(got[0].Reasons), got[0].Reasons)
	}
	// Trigger reason first, then season, then pain point.
	if !strings.HasPrefix(got[0].Reasons[0], "🚨") {
		t.Errorf("first reason = %q, want the urgent-trigger reason", got[0].Reasons[0])
	}
	if !strings.HasPrefix(got[0].Reasons[1], "📅") {
		t.Errorf("second reason = %q, want the season reason", got[0].Reasons[1])
	}
}

func TestRank_UrgentOutranksDoubleCount(t *testing.T) {
	// A lesson referenced by both an urgent and a warning trigger gets
	// the urgent bonus only.
	lessons := []catalog.Lesson{lesson("x", catalog.CategoryTax, "X")}
	got := NewScorer().Rank(lessons, profile.Profile{},
		[]triggers.Trigger{urgentTrigger("x"), warningTrigger("x")}, nil, july)
	if got[0].PriorityScore != ScoreUrgentTrigger {
		t.Errorf("score = %d, want %d (no stacking)", got[0].PriorityScore, ScoreUrgentTrigger)
	}
}
