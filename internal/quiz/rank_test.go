package quiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"termtrivia/internal/domain"
	"termtrivia/internal/quiz"
)

func resultWith(user string, percentage float64) domain.SessionResult {
	return domain.SessionResult{User: user, Total: 10, Percentage: percentage}
}

func TestTopRankedStableOnTies(t *testing.T) {
	results := []domain.SessionResult{
		resultWith("first", 50),
		resultWith("second", 90),
		resultWith("third", 90),
		resultWith("fourth", 30),
	}

	top := quiz.TopRanked(results, 2)
	require.Len(t, top, 2)
	// The two 90% records keep their insertion order.
	assert.Equal(t, "second", top[0].User)
	assert.Equal(t, "third", top[1].User)
}

func TestTopRankedDoesNotMutateInput(t *testing.T) {
	results := []domain.SessionResult{
		resultWith("low", 10),
		resultWith("high", 80),
	}
	_ = quiz.TopRanked(results, 0)
	assert.Equal(t, "low", results[0].User)
	assert.Equal(t, "high", results[1].User)
}

func TestTopRankedBounds(t *testing.T) {
	results := []domain.SessionResult{resultWith("only", 40)}

	assert.Len(t, quiz.TopRanked(results, 5), 1)
	assert.Len(t, quiz.TopRanked(results, 0), 1)
	assert.Empty(t, quiz.TopRanked(nil, 5))
}
