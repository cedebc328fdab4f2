package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/progress"
	"github.com/finlearn/finlearn/internal/quiz"
	"github.com/finlearn/finlearn/internal/quizui"
	"github.com/finlearn/finlearn/internal/review"
	"github.com/finlearn/finlearn/internal/store"
	"github.com/finlearn/finlearn/internal/streaks"
)

var completeCmd = &cobra.Command{
	Use:   "complete <lesson-id>",
	Short: "Finish a lesson by taking its quiz",
	Long:  "Runs the lesson's quiz, records the score, and schedules the first spaced review. Pass --score to record a result without the interactive quiz.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonID := args[0]
		lesson, ok := catalog.Get(lessonID)
		if !ok {
			return fmt.Errorf("unknown lesson %q (see: finlearn dashboard)", lessonID)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		now := time.Now()

		var result quiz.Result
		if cmd.Flags().Changed("score") {
			score, _ := cmd.Flags().GetInt("score")
			if score < 0 || score > 100 {
				return fmt.Errorf("score must be 0-100, got %d", score)
			}
			result = quiz.Result{Score: score, Passed: score >= quiz.PassScore}
		} else {
			q, ok := quiz.ForLesson(lessonID)
			if !ok {
				return fmt.Errorf("no quiz available for %q; record a result with --score", lessonID)
			}
			res, finished, err := quizui.Run(lesson.Title, q)
			if err != nil {
				return fmt.Errorf("run quiz: %w", err)
			}
			if !finished {
				fmt.Println("Quiz abandoned — nothing recorded.")
				return nil
			}
			result = res
		}

		rec, err := st.ProgressRepo().Get(ctx, lessonID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if rec == nil {
			rec = &progress.Record{LessonID: lessonID}
		}

		updated := quiz.Apply(*rec, result, review.LadderPolicy{}, now)
		if err := st.ProgressRepo().Upsert(ctx, updated); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		if err := st.EventRepo().AppendActivity(ctx, store.ActivityEventData{
			Kind:     "lesson_complete",
			LessonID: lessonID,
		}); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}

		fmt.Printf("%s — scored %d%%", lesson.Title, result.Score)
		if result.Passed {
			fmt.Print(" ✓")
		}
		fmt.Println()
		if updated.NextReviewDate != nil {
			fmt.Printf("Next review: %s\n", updated.NextReviewDate.Format("Mon 2 Jan"))
		}

		printStreakUpdate(cmd, st, now)
		return nil
	},
}

// printStreakUpdate reports milestone crossings after new activity.
func printStreakUpdate(cmd *cobra.Command, st *store.Store, now time.Time) {
	activity, err := st.EventRepo().ActivityTimes(cmd.Context())
	if err != nil {
		return
	}
	s := streaks.Compute(activity, now)
	if s.Current > 1 {
		fmt.Printf("★ %d-day streak\n", s.Current)
	}
	if streaks.IsMilestone(s.Current) {
		fmt.Printf("Milestone reached: %d days!\n", s.Current)
	}
}

func init() {
	completeCmd.Flags().Int("score", 0, "Record this quiz score (0-100) instead of running the quiz")
}
