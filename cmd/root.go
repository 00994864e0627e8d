package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizplayer/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "quizplayer",
	Short:         "Terminal quiz player",
	Long:          "quizplayer: work through multiple-choice tutorials, review your mistakes and track progress.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZPLAYER_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a question bank JSON file (overrides QUIZPLAYER_BANK env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(retakeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig reads the environment, then applies --db and --bank
// (highest priority).
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.FromEnv()
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		cfg.BankPath = p
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg.Resolve()
}
