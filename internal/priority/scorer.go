// Package priority ranks catalog lessons for a user by combining active
// trigger output with lesson metadata and the user's declared pain point,
// goal and industry. Scoring is strictly additive and evaluated
// independently per lesson.
package priority

import (
	"sort"
	"time"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/profile"
	"github.com/finlearn/finlearn/internal/taxcal"
	"github.com/finlearn/finlearn/internal/triggers"
)

// Signal weights. Order here is also the reason evaluation order.
const (
	ScoreUrgentTrigger  = 100
	ScoreWarningTrigger = 70
	ScoreSeasonTag      = 40
	ScorePainPoint      = 30
	ScoreLearningGoal   = 25
	ScoreIndustry       = 20
)

// UrgencyTier is a display label derived from which signals fired. The
// final ordering is by raw score, not tier; the two can disagree and
// that is accepted behavior.
type UrgencyTier string

const (
	TierUrgent UrgencyTier = "urgent"
	TierHigh   UrgencyTier = "high"
	TierMedium UrgencyTier = "medium"
	TierLow    UrgencyTier = "low"
)

// mediumScoreCutoff promotes trigger-less lessons that still scored well.
const mediumScoreCutoff = 50

// PrioritizedLesson is a lesson with its relevance score and the
// human-readable reasons that produced it.
type PrioritizedLesson struct {
	LessonID      string
	PriorityScore int
	Reasons       []string
	Urgency       UrgencyTier
}

// Scorer ranks lessons. The three matchers default to the fixed keyword
// maps but are swappable.
type Scorer struct {
	PainPoint Matcher
	Goal      Matcher
	Industry  Matcher
}

// NewScorer returns a Scorer wired with the default keyword matchers.
func NewScorer() *Scorer {
	return &Scorer{
		PainPoint: painPointMatcher{},
		Goal:      goalMatcher{},
		Industry:  industryMatcher{},
	}
}

// Rank scores every lesson against the profile and active triggers and
// returns them sorted descending by raw score. The sort is stable:
// equal scores keep their catalog order.
func (s *Scorer) Rank(
	lessons []catalog.Lesson,
	p profile.Profile,
	seasonal []triggers.Trigger,
	thresholds []triggers.ThresholdTrigger,
	now time.Time,
) []PrioritizedLesson {
	urgentIDs, warningIDs := triggerLessonSets(seasonal, thresholds)
	season := taxcal.CurrentSeason(now)

	out := make([]PrioritizedLesson, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, s.score(l, p, urgentIDs, warningIDs, season))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PriorityScore > out[j].PriorityScore
	})
	return out
}

func (s *Scorer) score(
	l catalog.Lesson,
	p profile.Profile,
	urgentIDs, warningIDs map[string]bool,
	season taxcal.Season,
) PrioritizedLesson {
	pl := PrioritizedLesson{LessonID: l.ID, Urgency: TierLow}
	triggerBonus := false

	if urgentIDs[l.ID] {
		pl.PriorityScore += ScoreUrgentTrigger
		pl.Reasons = append(pl.Reasons, "🚨 Tied to an urgent deadline")
		pl.Urgency = TierUrgent
		triggerBonus = true
	} else if warningIDs[l.ID] {
		pl.PriorityScore += ScoreWarningTrigger
		pl.Reasons = append(pl.Reasons, "⚠️ Tied to an upcoming deadline")
		pl.Urgency = TierHigh
		triggerBonus = true
	}

	if l.HasTag(string(season)) {
		pl.PriorityScore += ScoreSeasonTag
		pl.Reasons = append(pl.Reasons, "📅 In season right now")
	}

	if s.PainPoint.Matches(p.PainPoint, l) {
		pl.PriorityScore += ScorePainPoint
		pl.Reasons = append(pl.Reasons, "🎯 Matches your biggest challenge")
	}

	if s.Goal.Matches(p.LearningGoal, l) {
		pl.PriorityScore += ScoreLearningGoal
		pl.Reasons = append(pl.Reasons, "🏁 Supports your learning goal")
	}

	if s.Industry.Matches(p.Industry, l) {
		pl.PriorityScore += ScoreIndustry
		pl.Reasons = append(pl.Reasons, "🏪 Relevant to your industry")
	}

	if !triggerBonus && pl.PriorityScore > mediumScoreCutoff {
		pl.Urgency = TierMedium
	}
	return pl
}

// triggerLessonSets collects lesson ids referenced by active triggers,
// split by priority. A lesson referenced by both an urgent and a warning
// trigger counts as urgent only.
func triggerLessonSets(seasonal []triggers.Trigger, thresholds []triggers.ThresholdTrigger) (urgent, warning map[string]bool) {
	urgent = make(map[string]bool)
	warning = make(map[string]bool)

	collect := func(t triggers.Trigger) {
		for _, id := range t.LessonIDs {
			switch t.Priority {
			case triggers.Urgent:
				urgent[id] = true
			case triggers.Warning:
				warning[id] = true
			}
		}
	}

	for _, t := range seasonal {
		collect(t)
	}
	for _, t := range thresholds {
		collect(t.Trigger)
	}

	for id := range urgent {
		delete(warning, id)
	}
	return urgent, warning
}
