// Package engine runs the full dashboard pipeline: fetch profile,
// catalog and progress, then evaluate triggers, priorities, seasonal
// groups, reviews and recommendations in one pass. Every evaluation
// step is pure; the engine owns the fetch boundary and its error
// policy.
package engine

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/priority"
	"github.com/finlearn/finlearn/internal/profile"
	"github.com/finlearn/finlearn/internal/progress"
	"github.com/finlearn/finlearn/internal/recommend"
	"github.com/finlearn/finlearn/internal/review"
	"github.com/finlearn/finlearn/internal/seasonal"
	"github.com/finlearn/finlearn/internal/taxcal"
	"github.com/finlearn/finlearn/internal/triggers"
)

// upcomingReviewDays is the look-ahead window for the review card.
const upcomingReviewDays = 7

// ProfileRepo loads the single stored user profile.
type ProfileRepo interface {
	Get(ctx context.Context) (profile.Profile, error)
}

// ProgressRepo loads all lesson progress rows.
type ProgressRepo interface {
	List(ctx context.Context) ([]progress.Record, error)
}

// DismissalRepo reports which seasonal groups the user has dismissed,
// keyed by deterministic group id.
type DismissalRepo interface {
	Dismissed(ctx context.Context) (map[string]bool, error)
}

// Dashboard is the aggregate the UI renders from.
type Dashboard struct {
	Profile         profile.Profile
	Season          taxcal.Season
	Seasonal        []triggers.Trigger
	Thresholds      []triggers.ThresholdTrigger
	Lessons         []priority.PrioritizedLesson
	Groups          []seasonal.Group
	ReviewsDue      []review.Lesson
	ReviewsUpcoming []review.Lesson
	Recommendations recommend.Result
}

// Engine wires the repos to the evaluation pipeline.
type Engine struct {
	Profiles   ProfileRepo
	Progress   ProgressRepo
	Dismissals DismissalRepo

	scorer      *priority.Scorer
	recommender *recommend.Recommender
	log         *logrus.Logger
}

func New(profiles ProfileRepo, prog ProgressRepo, dismissals DismissalRepo, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{
		Profiles:    profiles,
		Progress:    prog,
		Dismissals:  dismissals,
		scorer:      priority.NewScorer(),
		recommender: recommend.New(),
		log:         log,
	}
}

// BuildDashboard runs the pipeline at now. Fetch failures degrade to
// empty inputs so the dashboard renders with less data instead of
// erroring; the evaluation steps themselves cannot fail.
func (e *Engine) BuildDashboard(ctx context.Context, now time.Time) Dashboard {
	p, err := e.Profiles.Get(ctx)
	if err != nil {
		e.log.WithError(err).Warn("profile fetch failed, using empty profile")
		p = profile.Profile{}
	}

	var rows []progress.Record
	if e.Progress != nil {
		rows, err = e.Progress.List(ctx)
		if err != nil {
			e.log.WithError(err).Warn("progress fetch failed, using empty progress")
			rows = nil
		}
	}

	dismissed := map[string]bool{}
	if e.Dismissals != nil {
		dismissed, err = e.Dismissals.Dismissed(ctx)
		if err != nil {
			e.log.WithError(err).Warn("dismissal fetch failed, showing all groups")
			dismissed = map[string]bool{}
		}
	}

	lessons := catalog.All()

	seasonalTriggers := triggers.EvaluateSeasonal(p, now)
	thresholdTriggers := triggers.EvaluateThresholds(p, now)

	completion := make(map[string]int, len(rows))
	for _, r := range rows {
		completion[r.LessonID] = r.CompletionRate
	}

	groups := seasonal.Build(lessons, p, completion, now)
	groups = lo.Filter(groups, func(g seasonal.Group, _ int) bool {
		return !(g.Dismissible && dismissed[g.ID])
	})

	return Dashboard{
		Profile:         p,
		Season:          taxcal.CurrentSeason(now),
		Seasonal:        seasonalTriggers,
		Thresholds:      thresholdTriggers,
		Lessons:         e.scorer.Rank(lessons, p, seasonalTriggers, thresholdTriggers, now),
		Groups:          groups,
		ReviewsDue:      review.Due(lessons, rows, now),
		ReviewsUpcoming: review.Upcoming(lessons, rows, now, upcomingReviewDays),
		Recommendations: e.recommender.Build(lessons, p, rows, 0),
	}
}
