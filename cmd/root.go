package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/finlearn/finlearn/internal/config"
	"github.com/finlearn/finlearn/internal/store"
)

// cfg is loaded once in the persistent pre-run and shared by all
// subcommands.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "finlearn",
	Short: "Finance learning for UK small businesses",
	Long:  "FinLearn — terminal companion that teaches UK small-business owners tax, VAT and bookkeeping, timed to the tax calendar.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		setupLogging(c)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FINLEARN_DB env var)")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(dismissCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(tutorCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
}

func setupLogging(c *config.Config) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)
	if c.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then the FINLEARN_DB env var, then the config file, then
// the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if os.Getenv("FINLEARN_DB") == "" && cfg != nil && cfg.Database.Path != "" {
		p := cfg.Database.Path
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the path and opens the database.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	p, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(p)
}
