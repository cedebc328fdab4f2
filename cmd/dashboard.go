package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/engine"
	"github.com/finlearn/finlearn/internal/recommend"
	"github.com/finlearn/finlearn/internal/streaks"
	"github.com/finlearn/finlearn/internal/taxcal"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the learning dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return runDashboard(cmd, asJSON)
	},
}

func init() {
	dashboardCmd.Flags().Bool("json", false, "Emit the dashboard as JSON")
}

// dashboardOutput is the machine-readable dashboard shape.
type dashboardOutput struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Season      string           `json:"season"`
	Dashboard   engine.Dashboard `json:"dashboard"`
	Streak      streaks.Streak   `json:"streak"`
}

func runDashboard(cmd *cobra.Command, asJSON bool) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	now := time.Now()

	eng := engine.New(st.ProfileRepo(), st.ProgressRepo(), st.DismissalRepo(), logrus.StandardLogger())
	dash := eng.BuildDashboard(ctx, now)

	activity, err := st.EventRepo().ActivityTimes(ctx)
	if err != nil {
		logrus.WithError(err).Warn("activity fetch failed, streak unavailable")
	}
	streak := streaks.Compute(activity, now)

	if asJSON {
		out := dashboardOutput{
			GeneratedAt: now,
			Season:      string(dash.Season),
			Dashboard:   dash,
			Streak:      streak,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	renderDashboard(dash, streak)
	return nil
}

func renderDashboard(dash engine.Dashboard, streak streaks.Streak) {
	rule := strings.Repeat("─", 64)

	fmt.Printf("FinLearn — %s\n", seasonLabel(dash.Season))
	if streak.Current > 0 {
		fmt.Printf("★ %d-day streak (longest %d, next milestone %d)\n", streak.Current, streak.Longest, streak.NextMilestone)
	}
	fmt.Println(rule)

	if len(dash.Seasonal) > 0 {
		fmt.Println("\nSeasonal alerts")
		for _, t := range dash.Seasonal {
			line := fmt.Sprintf("  [%s] %s — %s", t.Priority, t.Title, t.Message)
			if t.DaysUntilExpiry != nil {
				line += fmt.Sprintf(" (%d days left)", *t.DaysUntilExpiry)
			}
			fmt.Println(line)
		}
	}

	if len(dash.Thresholds) > 0 {
		fmt.Println("\nThreshold checks")
		for _, t := range dash.Thresholds {
			fmt.Printf("  [%s] %s — %s (%.0f%% of £%.0f)\n",
				t.Priority, t.Title, t.Message, t.PercentageToThreshold, t.ThresholdValue)
		}
	}

	if len(dash.Groups) > 0 {
		fmt.Println("\nSeasonal lesson groups")
		for _, g := range dash.Groups {
			line := fmt.Sprintf("  %s %s [%s] — %s", g.Emoji, g.Title, g.Urgency, g.Message)
			if g.DaysRemaining != nil {
				line += fmt.Sprintf(" (%d days)", *g.DaysRemaining)
			}
			fmt.Println(line)
			for _, l := range g.Lessons {
				fmt.Printf("      %s %s (%d min)\n", l.Emoji, l.Title, l.DurationMin)
			}
			fmt.Printf("      id: %s\n", g.ID)
		}
	}

	fmt.Println("\nToday's picks")
	printSlot("Up next", dash.Recommendations.Primary)
	printSlot("Quick win", dash.Recommendations.QuickWin)
	printSlot("Challenge", dash.Recommendations.Challenge)
	printSlot("Review", dash.Recommendations.Review)

	if len(dash.ReviewsDue) > 0 {
		fmt.Println("\nReviews due")
		for _, r := range dash.ReviewsDue {
			fmt.Printf("  %s %s — %s, reviewed %dx\n", r.Emoji, r.Title, r.MasteryLabel, r.ReviewCount)
		}
	}
	if len(dash.ReviewsUpcoming) > 0 {
		fmt.Println("\nComing up this week")
		for _, r := range dash.ReviewsUpcoming {
			fmt.Printf("  %s %s — %s\n", r.Emoji, r.Title, r.NextReviewDate.Format("Mon 2 Jan"))
		}
	}

	if len(dash.Lessons) > 0 {
		fmt.Println("\nTop lessons for you")
		max := 5
		if len(dash.Lessons) < max {
			max = len(dash.Lessons)
		}
		for _, pl := range dash.Lessons[:max] {
			l, ok := catalog.Get(pl.LessonID)
			if !ok {
				continue
			}
			reason := ""
			if len(pl.Reasons) > 0 {
				reason = " — " + strings.Join(pl.Reasons, "; ")
			}
			fmt.Printf("  %s %s (score %d)%s\n", l.Emoji, l.Title, pl.PriorityScore, reason)
		}
	}
}

func printSlot(label string, s *recommend.Slot) {
	if s == nil {
		return
	}
	fmt.Printf("  %-10s %s %s — %s\n", label+":", s.Lesson.Emoji, s.Lesson.Title, s.Reason)
}

func seasonLabel(s taxcal.Season) string {
	switch s {
	case taxcal.SeasonSelfAssessment:
		return "Self Assessment season"
	case taxcal.SeasonTaxYearEnd:
		return "tax year end"
	case taxcal.SeasonNewTaxYear:
		return "new tax year"
	default:
		return "general season"
	}
}
