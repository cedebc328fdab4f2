package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/finlearn/finlearn/internal/chatui"
	"github.com/finlearn/finlearn/internal/llm"
	"github.com/finlearn/finlearn/internal/store"
	"github.com/finlearn/finlearn/internal/streaks"
	"github.com/finlearn/finlearn/internal/tutor"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Chat with the finance tutor",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()

		llmCfg, err := resolveLLMConfig()
		if err != nil {
			return fmt.Errorf("the tutor needs an LLM provider: %w", err)
		}
		provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo())
		if err != nil {
			return fmt.Errorf("initialize provider: %w", err)
		}

		p, err := st.ProfileRepo().Get(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		var opts []tutor.Option
		if cfg != nil && cfg.Tutor.MaxTokens > 0 {
			opts = append(opts, tutor.WithMaxTokens(cfg.Tutor.MaxTokens))
		}
		service := tutor.NewService(provider, st.EventRepo(), p, opts...)

		activity, err := st.EventRepo().ActivityTimes(ctx)
		if err != nil {
			activity = nil
		}
		streak := streaks.Compute(activity, time.Now())

		if err := chatui.Run(service, streak.Current); err != nil {
			return fmt.Errorf("run tutor: %w", err)
		}

		persistFacts(cmd, st, service)
		return nil
	},
}

// persistFacts runs the extraction side channel over the finished
// session and folds spotted facts into the stored profile. Extraction
// failures are silent: the chat itself already succeeded.
func persistFacts(cmd *cobra.Command, st *store.Store, service *tutor.Service) {
	ctx := cmd.Context()

	facts, err := service.Extract(ctx)
	if err != nil {
		logrus.WithError(err).Debug("profile extraction failed")
		return
	}
	if facts.Empty() {
		return
	}

	raw, err := st.ProfileRepo().Raw(ctx)
	if err != nil {
		logrus.WithError(err).Warn("profile load failed, facts not saved")
		return
	}
	if raw == nil {
		raw = &store.ProfileData{}
	}

	var saved []string
	if facts.AnnualTurnover != nil {
		raw.AnnualTurnover = *facts.AnnualTurnover
		saved = append(saved, "turnover")
	}
	if facts.VATRegistered != nil {
		raw.VATRegistered = *facts.VATRegistered
		saved = append(saved, "VAT registration")
	}
	if facts.BusinessStructure != nil {
		raw.BusinessStructure = *facts.BusinessStructure
		saved = append(saved, "business structure")
	}
	if facts.MTDStatus != nil {
		raw.MTDStatus = *facts.MTDStatus
		saved = append(saved, "MTD status")
	}
	if facts.Industry != nil {
		raw.Industry = *facts.Industry
		saved = append(saved, "industry")
	}

	if err := st.ProfileRepo().Save(ctx, *raw); err != nil {
		logrus.WithError(err).Warn("profile save failed, facts not saved")
		return
	}
	fmt.Printf("Updated your profile from the conversation: %s.\n", strings.Join(saved, ", "))
}
