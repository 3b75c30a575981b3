package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"termtrivia/internal/domain"
	"termtrivia/internal/quiz"
)

// Store persists the leaderboard as a single human-readable JSON document,
// rewritten in full on every append. Two processes appending at the same
// moment can lose one of the writes (last writer wins); sequential use is
// the supported mode.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns all persisted results. A missing or unparsable document
// reads as empty so a broken scores file never blocks a game.
func (s *Store) Load(_ context.Context) ([]domain.SessionResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil
	}
	var results []domain.SessionResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, nil
	}
	return results, nil
}

// Append loads the document, pushes result, and overwrites the whole file.
func (s *Store) Append(ctx context.Context, result domain.SessionResult) error {
	results, _ := s.Load(ctx)
	results = append(results, result)

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}
	return nil
}

// TopN returns the n best results by percentage, stable on ties.
func (s *Store) TopN(ctx context.Context, n int) ([]domain.SessionResult, error) {
	results, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return quiz.TopRanked(results, n), nil
}
