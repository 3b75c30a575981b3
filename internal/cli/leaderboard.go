package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"termtrivia/internal/config"
	"termtrivia/internal/quiz"
	"termtrivia/internal/term"
)

// NewLeaderboardCmd prints the top results without starting a game.
func NewLeaderboardCmd(configPath *string) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the ranked session history",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if top <= 0 {
				top = cfg.Scores.Top
			}
			styler := term.NewStyler(os.Stdout)
			showLeaderboard(cmd.Context(), newStore(cfg), styler, top)
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 0, "number of entries to show (default from config)")
	return cmd
}

func showLeaderboard(ctx context.Context, store quiz.LeaderboardStore, styler *term.Styler, top int) {
	entries, err := store.TopN(ctx, top)
	if err != nil || len(entries) == 0 {
		fmt.Println(styler.Cyan("No previous results found."))
		return
	}
	fmt.Println(styler.Green(fmt.Sprintf("\nTop %d Leaderboard:", len(entries))))
	for i, e := range entries {
		fmt.Printf("%d. %s — %d/%d (%.2f%%) — %s\n", i+1, e.User, e.Score, e.Total, e.Percentage, e.Timestamp)
	}
}
