package cli

import (
	"fmt"

	"termtrivia/internal/domain"
	"termtrivia/internal/term"
)

// consolePresenter renders session events to the terminal in the game's
// classic look.
type consolePresenter struct {
	styler *term.Styler
}

func newConsolePresenter(styler *term.Styler) *consolePresenter {
	return &consolePresenter{styler: styler}
}

func (p *consolePresenter) SessionStarted(user string, total int, timed bool) {
	fmt.Println(p.styler.Cyan(fmt.Sprintf("Starting quiz for %s — %d questions. Timed mode: %v.", user, total, timed)))
	fmt.Println()
}

func (p *consolePresenter) ShowQuestion(number, total int, text string, options []string) {
	fmt.Println(p.styler.Bright(fmt.Sprintf("Q%d/%d: %s", number, total, text)))
	for i, opt := range options {
		fmt.Printf("  %d. %s\n", i+1, opt)
	}
}

func (p *consolePresenter) QuestionTimedOut() {
	fmt.Println()
	fmt.Println(p.styler.Yellow("Time's up!"))
}

func (p *consolePresenter) ShowOutcome(outcome domain.AnswerOutcome) {
	if outcome.Result == domain.ResultCorrect {
		fmt.Println(p.styler.Green("✔ Correct!"))
	} else {
		fmt.Println(p.styler.Red(fmt.Sprintf("✖ Incorrect. Correct answer: %s", outcome.Correct)))
	}
	fmt.Println()
}

func (p *consolePresenter) ShowSummary(result domain.SessionResult, accuracy float64) {
	fmt.Println(p.styler.Bright(p.styler.Blue("Quiz Completed!")))
	fmt.Printf("Score: %d/%d\n", result.Score, result.Total)
	fmt.Printf("Percentage: %.2f%%\n", result.Percentage)
	fmt.Printf("Accuracy: %.2f%%\n", accuracy)
}
