package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"termtrivia/internal/domain"
	"termtrivia/internal/quiz"
)

const defaultKey = "quiz:leaderboard"

// Store keeps the leaderboard as a Redis list of JSON entries under one
// key, appended in session order. Reads are best-effort: an unreachable
// server or corrupt entries degrade to an empty (or shorter) leaderboard
// rather than failing the game.
type Store struct {
	client *redis.Client
	key    string
}

func NewStore(client *redis.Client, key string) *Store {
	if key == "" {
		key = defaultKey
	}
	return &Store{client: client, key: key}
}

func (s *Store) Load(ctx context.Context) ([]domain.SessionResult, error) {
	raw, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, nil
	}
	results := make([]domain.SessionResult, 0, len(raw))
	for _, entry := range raw {
		var result domain.SessionResult
		if err := json.Unmarshal([]byte(entry), &result); err != nil {
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *Store) Append(ctx context.Context, result domain.SessionResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}
	if err := s.client.RPush(ctx, s.key, data).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}
	return nil
}

func (s *Store) TopN(ctx context.Context, n int) ([]domain.SessionResult, error) {
	results, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return quiz.TopRanked(results, n), nil
}
