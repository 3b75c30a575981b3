package quiz

import (
	"math/rand"
	"time"

	"termtrivia/internal/domain"
)

// Selector draws a randomized question set from a bank.
type Selector struct {
	rnd *rand.Rand
}

// NewSelector builds a Selector. A nil rnd seeds one from the clock;
// tests pass a fixed source for deterministic draws.
func NewSelector(rnd *rand.Rand) *Selector {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rnd: rnd}
}

// Select filters bank by difficulty, shuffles the pool uniformly, truncates
// to count when count > 0, and shuffles each selected question's options.
// Questions are copied; the bank's own option ordering is never touched.
// Returns domain.ErrEmptyPool when nothing matches the difficulty.
func (s *Selector) Select(bank []domain.Question, difficulty domain.Difficulty, count int) ([]domain.Question, error) {
	pool := make([]domain.Question, 0, len(bank))
	for _, q := range bank {
		if difficulty == domain.DifficultyAll || q.Difficulty == difficulty {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		return nil, domain.ErrEmptyPool
	}

	s.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if count > 0 && count < len(pool) {
		pool = pool[:count]
	}

	for i := range pool {
		shuffled := make([]string, len(pool[i].Options))
		for dst, src := range s.rnd.Perm(len(pool[i].Options)) {
			shuffled[dst] = pool[i].Options[src]
		}
		pool[i].Options = shuffled
	}
	return pool, nil
}
