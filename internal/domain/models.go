package domain

// Difficulty classifies a question or narrows question selection.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	// DifficultyAll is only valid for selection, never on a question.
	DifficultyAll Difficulty = "all"
)

// Question models an MCQ question with exactly one correct option.
// Options keep their authored order; presentation shuffling happens on a copy.
type Question struct {
	Text       string     `json:"question"`
	Options    []string   `json:"options"`
	Answer     string     `json:"answer"`
	Difficulty Difficulty `json:"difficulty"`
}

// SessionConfig is the fully resolved configuration for one quiz run.
type SessionConfig struct {
	Difficulty    Difficulty
	Timed         bool
	PerQuestion   int // seconds per question when Timed
	QuestionCount int // 0 means the whole pool
}

// NoValidAnswer is recorded as the chosen text when a question went
// unanswered: timeout, blank input, or input matching no option.
const NoValidAnswer = "No valid answer"

// AnswerOutcome is the recorded result for a single question.
type AnswerOutcome struct {
	Question string `json:"question"`
	Your     string `json:"your"`
	Correct  string `json:"correct"`
	Result   string `json:"result"` // "correct" or "incorrect"
}

const (
	ResultCorrect   = "correct"
	ResultIncorrect = "incorrect"
)

// SessionResult is the persisted record of one finished session.
type SessionResult struct {
	User       string          `json:"user"`
	Score      int             `json:"score"`
	Total      int             `json:"total"`
	Percentage float64         `json:"percentage"`
	Timestamp  string          `json:"timestamp"` // RFC 3339
	Details    []AnswerOutcome `json:"details"`
}
