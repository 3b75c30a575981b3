package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"termtrivia/internal/bank"
	"termtrivia/internal/config"
	"termtrivia/internal/domain"
	filestore "termtrivia/internal/infra/file"
	pgbank "termtrivia/internal/infra/postgres"
	redisstore "termtrivia/internal/infra/redis"
	"termtrivia/internal/quiz"
	"termtrivia/internal/term"
)

// NewPlayCmd builds the CLI subcommand that runs interactive quiz sessions.
func NewPlayCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive quiz session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath)
		},
	}
}

func runPlay(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	styler := term.NewStyler(os.Stdout)
	prompter := term.NewPrompter(os.Stdin, os.Stdout)

	store := newStore(cfg)
	loader, cleanup, err := newBankLoader(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	selector := quiz.NewSelector(nil)
	presenter := newConsolePresenter(styler)
	runner := quiz.NewRunner(loader, selector, prompter, presenter)

	// A keyboard interrupt ends the game with a farewell, not a stack trace.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		fmt.Println("\nInterrupted. Goodbye.")
		os.Exit(0)
	}()

	fmt.Println(styler.Bright("Welcome to the Advanced Quiz!"))
	fmt.Println()
	for {
		if err := playOnce(ctx, cfg, prompter, styler, runner, loader, store); err != nil {
			return err
		}
		if !isYes(prompter.ReadLine("\nPlay again? (y/N): ")) {
			break
		}
		fmt.Println()
	}
	fmt.Println("\nThanks for playing! Goodbye.")
	return nil
}

func playOnce(ctx context.Context, cfg config.Config, prompter *term.Prompter, styler *term.Styler, runner *quiz.Runner, loader bank.Loader, store quiz.LeaderboardStore) error {
	user := prompter.ReadLine("Enter your name (or nickname): ")
	if user == "" {
		user = "Anonymous"
	}

	fmt.Println("\nChoose difficulty: [1] Easy  [2] Medium  [3] Hard  [4] All")
	difficulty := difficultyFromMenu(prompter.ReadLine("Select (1-4): "))

	timed := isYes(prompter.ReadLine("Enable timed questions? (y/N): "))
	seconds := cfg.Quiz.DefaultSeconds
	if timed {
		raw := prompter.ReadLine(fmt.Sprintf("Seconds per question (default %d): ", seconds))
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			seconds = v
			if seconds < cfg.Quiz.MinSeconds {
				seconds = cfg.Quiz.MinSeconds
			}
		}
	}

	questions, err := loader.LoadBank(ctx)
	if err != nil {
		log.Printf("load bank: %v", err)
		fmt.Println(styler.Red("Could not load the question bank."))
		return nil
	}
	poolSize := 0
	for _, q := range questions {
		if difficulty == domain.DifficultyAll || q.Difficulty == difficulty {
			poolSize++
		}
	}
	if poolSize == 0 {
		fmt.Println(styler.Red("No questions match that difficulty."))
		return nil
	}

	count := 0
	raw := prompter.ReadLine(fmt.Sprintf("How many questions? (max %d, press Enter for all): ", poolSize))
	if v, err := strconv.Atoi(raw); err == nil && v > 0 {
		count = v
		if count > poolSize {
			count = poolSize
		}
	}

	if isYes(prompter.ReadLine("Show leaderboard before starting? (y/N): ")) {
		showLeaderboard(ctx, store, styler, cfg.Scores.Top)
	}
	fmt.Println()

	result, err := runner.Run(ctx, user, domain.SessionConfig{
		Difficulty:    difficulty,
		Timed:         timed,
		PerQuestion:   seconds,
		QuestionCount: count,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPool) {
			fmt.Println(styler.Red("No questions match that difficulty."))
			return nil
		}
		return err
	}

	// A failed write is the one storage problem the player must hear
	// about: the finished score would otherwise vanish silently.
	if err := store.Append(ctx, result); err != nil {
		log.Printf("persist result: %v", err)
		fmt.Println(styler.Yellow("Warning: result not saved."))
	} else {
		fmt.Println(styler.Cyan("\nResult saved to the leaderboard."))
	}

	if isYes(prompter.ReadLine("\nView leaderboard now? (y/N): ")) {
		showLeaderboard(ctx, store, styler, cfg.Scores.Top)
	}
	return nil
}

func isYes(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "y")
}

func difficultyFromMenu(choice string) domain.Difficulty {
	switch strings.TrimSpace(choice) {
	case "1":
		return domain.DifficultyEasy
	case "2":
		return domain.DifficultyMedium
	case "3":
		return domain.DifficultyHard
	default:
		return domain.DifficultyAll
	}
}

func newStore(cfg config.Config) quiz.LeaderboardStore {
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return redisstore.NewStore(client, "")
	}
	return filestore.NewStore(cfg.Scores.Path)
}

func newBankLoader(ctx context.Context, cfg config.Config) (bank.Loader, func(), error) {
	cleanup := func() {}

	var loader bank.Loader = bank.NewStaticLoader(bank.Default())
	if cfg.Quiz.BankPath != "" {
		loader = bank.NewFileLoader(cfg.Quiz.BankPath)
	}
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, nil, err
		}
		cleanup = pool.Close
		loader = pgbank.NewBankLoader(pool)
	}

	ttl := config.TTLDuration(cfg.Quiz.CacheTTL, 10*time.Minute)
	return bank.NewCachedBank(loader, ttl), cleanup, nil
}
