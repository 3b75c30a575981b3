package cli

import (
	"github.com/spf13/cobra"
)

var configPath string

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termtrivia",
		Short: "Terminal trivia quiz with difficulty levels, timed questions and a local leaderboard",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to YAML config (optional)")
	cmd.AddCommand(NewPlayCmd(&configPath))
	cmd.AddCommand(NewLeaderboardCmd(&configPath))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	return cmd
}
