package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/finlearn/finlearn/internal/catalog"
	"github.com/finlearn/finlearn/internal/progress"
	"github.com/finlearn/finlearn/internal/streaks"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		now := time.Now()
		lessons := catalog.All()

		rows, err := st.ProgressRepo().List(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		activity, err := st.EventRepo().ActivityTimes(ctx)
		if err != nil {
			return fmt.Errorf("load activity: %w", err)
		}

		streak := streaks.Compute(activity, now)
		achievements := streaks.Earned(lessons, rows, streak)

		completed := lo.CountBy(rows, func(r progress.Record) bool { return r.Complete() })
		fmt.Printf("Lessons completed: %d of %d\n", completed, len(lessons))

		fmt.Printf("Streak: %d days (longest %d)", streak.Current, streak.Longest)
		if streak.ActiveToday {
			fmt.Print(" — active today ✓")
		}
		fmt.Println()
		if streak.Current > 0 {
			fmt.Printf("Next milestone: %d days\n", streak.NextMilestone)
		}

		byLesson := lo.KeyBy(rows, func(r progress.Record) string { return r.LessonID })

		fmt.Println("\nBy category")
		for _, cat := range categoryOrder(lessons) {
			inCat := lo.Filter(lessons, func(l catalog.Lesson, _ int) bool { return l.Category == cat })
			done := lo.CountBy(inCat, func(l catalog.Lesson) bool {
				r, ok := byLesson[l.ID]
				return ok && r.Complete()
			})
			fmt.Printf("  %-22s %s %d/%d\n", cat, bar(done, len(inCat), 20), done, len(inCat))
		}

		if len(achievements) > 0 {
			fmt.Println("\nAchievements")
			for _, a := range achievements {
				fmt.Printf("  %s %s\n", a.Icon, a.Title)
			}
		}
		return nil
	},
}

func categoryOrder(lessons []catalog.Lesson) []catalog.Category {
	return lo.Uniq(lo.Map(lessons, func(l catalog.Lesson, _ int) catalog.Category { return l.Category }))
}

func bar(done, total, width int) string {
	if total == 0 {
		return strings.Repeat("░", width)
	}
	filled := done * width / total
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
