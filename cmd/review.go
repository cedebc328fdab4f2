package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/llm"
	"github.com/finlearn/finlearn/internal/progress"
	"github.com/finlearn/finlearn/internal/quiz"
	"github.com/finlearn/finlearn/internal/quizui"
	"github.com/finlearn/finlearn/internal/review"
	"github.com/finlearn/finlearn/internal/store"
)

// upcomingWindowDays matches the dashboard's look-ahead.
const upcomingWindowDays = 7

// refresherQuestionCount is how many LLM questions a review session asks.
const refresherQuestionCount = 3

var reviewCmd = &cobra.Command{
	Use:   "review [lesson-id]",
	Short: "List due reviews, or review one lesson",
	Long:  "Without arguments, lists lessons due or coming up for review. With a lesson id, runs a review quiz — freshly generated questions when an LLM provider is configured, the built-in quiz otherwise.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		if len(args) == 0 {
			return listReviews(cmd, st)
		}
		return runReview(cmd, st, args[0])
	},
}

func listReviews(cmd *cobra.Command, st *store.Store) error {
	rows, err := st.ProgressRepo().List(cmd.Context())
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	now := time.Now()
	lessons := catalog.All()

	due := review.Due(lessons, rows, now)
	upcoming := review.Upcoming(lessons, rows, now, upcomingWindowDays)

	if len(due) == 0 && len(upcoming) == 0 {
		fmt.Println("Nothing due for review. Finish a lesson to start the schedule.")
		return nil
	}

	if len(due) > 0 {
		fmt.Println("Due now")
		for _, r := range due {
			fmt.Printf("  %s %s — %s, reviewed %dx  (finlearn review %s)\n",
				r.Emoji, r.Title, r.MasteryLabel, r.ReviewCount, r.ID)
		}
	}
	if len(upcoming) > 0 {
		fmt.Println("\nComing up")
		for _, r := range upcoming {
			fmt.Printf("  %s %s — %s\n", r.Emoji, r.Title, r.NextReviewDate.Format("Mon 2 Jan"))
		}
	}
	return nil
}

func runReview(cmd *cobra.Command, st *store.Store, lessonID string) error {
	lesson, ok := catalog.Get(lessonID)
	if !ok {
		return fmt.Errorf("unknown lesson %q", lessonID)
	}

	ctx := cmd.Context()
	now := time.Now()

	rec, err := st.ProgressRepo().Get(ctx, lessonID)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	if rec == nil || !rec.Complete() {
		return fmt.Errorf("%q has not been completed yet (try: finlearn complete %s)", lessonID, lessonID)
	}

	q := reviewQuiz(cmd, st, lesson)

	res, finished, err := quizui.Run("Review: "+lesson.Title, q)
	if err != nil {
		return fmt.Errorf("run review: %w", err)
	}
	if !finished {
		fmt.Println("Review abandoned — nothing recorded.")
		return nil
	}

	updated := quiz.Apply(*rec, res, review.LadderPolicy{}, now)
	if err := st.ProgressRepo().Upsert(ctx, updated); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	if err := st.EventRepo().AppendActivity(ctx, store.ActivityEventData{
		Kind:     "review",
		LessonID: lessonID,
	}); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	fmt.Printf("Review scored %d%% — now %s.\n", res.Score, progress.MasteryLabel(updated.MasteryLevel))
	if updated.NextReviewDate != nil {
		fmt.Printf("Next review: %s\n", updated.NextReviewDate.Format("Mon 2 Jan"))
	}
	printStreakUpdate(cmd, st, now)
	return nil
}

// reviewQuiz prefers freshly generated questions and falls back to the
// built-in bank when no provider is configured or generation fails.
func reviewQuiz(cmd *cobra.Command, st *store.Store, lesson catalog.Lesson) quiz.Quiz {
	llmCfg, err := resolveLLMConfig()
	if err == nil {
		provider, perr := llm.NewProvider(cmd.Context(), llmCfg, st.EventRepo())
		if perr == nil {
			gen := quiz.NewGenerator(provider)
			questions, gerr := gen.Refresher(cmd.Context(), lesson, refresherQuestionCount)
			if gerr == nil && len(questions) > 0 {
				return quiz.Quiz{LessonID: lesson.ID, Questions: questions}
			}
			fmt.Fprintln(os.Stderr, "Question generation unavailable, using the built-in quiz.")
		}
	}

	q, ok := quiz.ForLesson(lesson.ID)
	if !ok {
		return quiz.Quiz{LessonID: lesson.ID}
	}
	return q
}
