package memory

import (
	"context"
	"sync"

	"termtrivia/internal/domain"
	"termtrivia/internal/quiz"
)

// Store is an in-memory leaderboard, used in tests and when persistence
// is disabled.
type Store struct {
	mu      sync.RWMutex
	results []domain.SessionResult
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load(_ context.Context) ([]domain.SessionResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SessionResult, len(s.results))
	copy(out, s.results)
	return out, nil
}

func (s *Store) Append(_ context.Context, result domain.SessionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
	return nil
}

func (s *Store) TopN(ctx context.Context, n int) ([]domain.SessionResult, error) {
	results, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return quiz.TopRanked(results, n), nil
}
