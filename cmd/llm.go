package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finlearn/finlearn/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM configuration and usage",
}

// resolveLLMConfig builds the provider config from env with config
// file overlays, falling back to bare API key discovery.
func resolveLLMConfig() (llm.Config, error) {
	c := llm.ConfigFromEnv()
	if cfg != nil {
		c = cfg.ApplyLLM(c)
	}
	if err := c.Validate(); err != nil {
		if d, ok := llm.DiscoverConfig(); ok {
			return d, nil
		}
		return llm.Config{}, err
	}
	return c, nil
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured LLM provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := resolveLLMConfig()
		if err != nil {
			fmt.Println("No LLM provider configured.")
			fmt.Println("Set FINLEARN_LLM_PROVIDER and the matching API key,")
			fmt.Println("or export ANTHROPIC_API_KEY / OPENAI_API_KEY / GEMINI_API_KEY.")
			return nil
		}

		fmt.Printf("Provider:  %s\n", c.Provider)
		fmt.Printf("Model:     %s\n", modelFor(c))
		fmt.Printf("Timeout:   %s\n", c.Timeout)
		fmt.Printf("Retries:   %d attempts\n", c.Retry.MaxAttempts)
		return nil
	},
}

func modelFor(c llm.Config) string {
	switch c.Provider {
	case "anthropic":
		return c.Anthropic.Model
	case "openai":
		return c.OpenAI.Model
	case "gemini":
		return c.Gemini.Model
	case "openrouter":
		return c.OpenRouter.Model
	default:
		return "-"
	}
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo().RecentLLMRequests(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-14s  %-28s  %6s  %6s  %7s  %9s  %s\n",
			"Timestamp", "Purpose", "Model", "In", "Out", "Ms", "Cost", "OK")
		fmt.Println(strings.Repeat("─", 104))

		var totalCost float64
		costKnown := true
		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			costStr := "?"
			if c := llm.LookupCost(e.Model); c != nil {
				v := c.Cost(e.InputTokens, e.OutputTokens)
				totalCost += v
				costStr = fmt.Sprintf("$%.4f", v)
			} else {
				costKnown = false
			}
			fmt.Printf("%-19s  %-14s  %-28s  %6d  %6d  %7d  %9s  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				costStr,
				ok,
			)
		}

		fmt.Println(strings.Repeat("─", 104))
		label := "Estimated cost"
		if !costKnown {
			label = "Estimated cost (partial)"
		}
		fmt.Printf("%s: $%.4f\n", label, totalCost)
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (tutor, quiz-gen, profile-extract)")

	llmCmd.AddCommand(llmStatusCmd)
	llmCmd.AddCommand(llmListCmd)
}
