package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"termtrivia/internal/domain"
)

// Loader fetches the question bank from a backing store.
type Loader interface {
	LoadBank(ctx context.Context) ([]domain.Question, error)
}

// Validate checks bank invariants: a known difficulty, unique options,
// and an answer that is exactly one of the options.
func Validate(questions []domain.Question) error {
	for i, q := range questions {
		switch q.Difficulty {
		case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
		default:
			return fmt.Errorf("question %d (%q): unknown difficulty %q", i, q.Text, q.Difficulty)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d (%q): needs at least two options", i, q.Text)
		}
		seen := make(map[string]struct{}, len(q.Options))
		answerFound := false
		for _, opt := range q.Options {
			if _, dup := seen[opt]; dup {
				return fmt.Errorf("question %d (%q): duplicate option %q", i, q.Text, opt)
			}
			seen[opt] = struct{}{}
			if opt == q.Answer {
				answerFound = true
			}
		}
		if !answerFound {
			return fmt.Errorf("question %d (%q): answer %q is not among the options", i, q.Text, q.Answer)
		}
	}
	return nil
}

// StaticLoader serves a fixed in-memory bank (defaults, tests, demos).
type StaticLoader struct {
	questions []domain.Question
}

func NewStaticLoader(questions []domain.Question) *StaticLoader {
	return &StaticLoader{questions: questions}
}

func (l *StaticLoader) LoadBank(_ context.Context) ([]domain.Question, error) {
	out := make([]domain.Question, len(l.questions))
	copy(out, l.questions)
	return out, nil
}

// FileLoader reads the bank from a JSON document: an array of questions
// with "question", "options", "answer" and "difficulty" fields.
type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) LoadBank(_ context.Context) ([]domain.Question, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	var questions []domain.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}
	if err := Validate(questions); err != nil {
		return nil, err
	}
	return questions, nil
}
