package quiz

import (
	"context"
	"fmt"
	"time"

	"termtrivia/internal/domain"
)

// BankLoader supplies the question bank.
type BankLoader interface {
	LoadBank(ctx context.Context) ([]domain.Question, error)
}

// AnswerReader acquires one raw answer from the player. ok is false when
// the deadline elapsed before any input arrived; timeout <= 0 blocks.
type AnswerReader interface {
	ReadAnswer(prompt string, timeout time.Duration) (string, bool)
}

// Presenter receives the session's display events. Implementations live in
// the CLI layer; the engine never writes to the terminal itself.
type Presenter interface {
	SessionStarted(user string, total int, timed bool)
	ShowQuestion(number, total int, text string, options []string)
	QuestionTimedOut()
	ShowOutcome(outcome domain.AnswerOutcome)
	ShowSummary(result domain.SessionResult, accuracy float64)
}

// LeaderboardStore persists finished sessions. Append is read-modify-write
// over a whole document: two processes appending at once can lose one of
// the writes (last writer wins). Sequential use is the supported mode.
type LeaderboardStore interface {
	Load(ctx context.Context) ([]domain.SessionResult, error)
	Append(ctx context.Context, result domain.SessionResult) error
	TopN(ctx context.Context, n int) ([]domain.SessionResult, error)
}

// Runner composes selection, answer acquisition, resolution and scoring
// into one complete quiz session.
type Runner struct {
	bank      BankLoader
	selector  *Selector
	reader    AnswerReader
	presenter Presenter
	now       func() time.Time
}

func NewRunner(bank BankLoader, selector *Selector, reader AnswerReader, presenter Presenter) *Runner {
	return NewRunnerWithClock(bank, selector, reader, presenter, time.Now)
}

// NewRunnerWithClock allows deterministic timestamps in tests.
func NewRunnerWithClock(bank BankLoader, selector *Selector, reader AnswerReader, presenter Presenter, now func() time.Time) *Runner {
	return &Runner{
		bank:      bank,
		selector:  selector,
		reader:    reader,
		presenter: presenter,
		now:       now,
	}
}

// Run plays one session and returns the finished result. Nothing is
// persisted here; the caller owns the result from this point on.
func (r *Runner) Run(ctx context.Context, user string, cfg domain.SessionConfig) (domain.SessionResult, error) {
	bank, err := r.bank.LoadBank(ctx)
	if err != nil {
		return domain.SessionResult{}, fmt.Errorf("%w: %v", domain.ErrBankUnavailable, err)
	}

	questions, err := r.selector.Select(bank, cfg.Difficulty, cfg.QuestionCount)
	if err != nil {
		return domain.SessionResult{}, err
	}

	total := len(questions)
	scorer := NewScorer()
	r.presenter.SessionStarted(user, total, cfg.Timed)

	for i, q := range questions {
		if err := ctx.Err(); err != nil {
			return domain.SessionResult{}, err
		}
		r.presenter.ShowQuestion(i+1, total, q.Text, q.Options)

		var timeout time.Duration
		if cfg.Timed {
			timeout = time.Duration(cfg.PerQuestion) * time.Second
		}
		prompt := fmt.Sprintf("Your answer (1-%d): ", len(q.Options))
		raw, ok := r.reader.ReadAnswer(prompt, timeout)
		if !ok {
			r.presenter.QuestionTimedOut()
			raw = ""
		}

		chosen, valid, correct := Resolve(raw, q.Options, q.Answer)
		outcome := domain.AnswerOutcome{
			Question: q.Text,
			Your:     chosen,
			Correct:  q.Answer,
			Result:   domain.ResultIncorrect,
		}
		if !valid {
			outcome.Your = domain.NoValidAnswer
		}
		if correct {
			outcome.Result = domain.ResultCorrect
		}
		scorer.Record(outcome)
		r.presenter.ShowOutcome(outcome)
	}

	summary := scorer.Finalize(total)
	result := domain.SessionResult{
		User:       user,
		Score:      summary.Score,
		Total:      total,
		Percentage: summary.Percentage,
		Timestamp:  r.now().Format(time.RFC3339),
		Details:    scorer.Details(),
	}
	r.presenter.ShowSummary(result, summary.Accuracy)
	return result, nil
}
