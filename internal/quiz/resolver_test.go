package quiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"termtrivia/internal/quiz"
)

func TestResolveNumericPath(t *testing.T) {
	options := []string{"B", "A", "C", "D"}

	chosen, valid, correct := quiz.Resolve("1", options, "A")
	assert.Equal(t, "B", chosen)
	assert.True(t, valid)
	assert.False(t, correct)

	chosen, valid, correct = quiz.Resolve("2", options, "A")
	assert.Equal(t, "A", chosen)
	assert.True(t, valid)
	assert.True(t, correct)
}

func TestResolveTextFallbackIsCaseInsensitive(t *testing.T) {
	options := []string{"Central Processing Unit", "Computer Primary Unit", "Central Power Unit", "Control Processing Unit"}

	chosen, valid, correct := quiz.Resolve("central processing unit", options, "Central Processing Unit")
	assert.Equal(t, "Central Processing Unit", chosen)
	assert.True(t, valid)
	assert.True(t, correct)

	// Full-string matches only; substrings never count.
	_, valid, correct = quiz.Resolve("central", options, "Central Processing Unit")
	assert.False(t, valid)
	assert.False(t, correct)
}

func TestResolveInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"blank", ""},
		{"whitespace", "   "},
		{"out of range numeric", "9"},
		{"zero", "0"},
		{"negative", "-1"},
		{"unmatched text", "xyz"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chosen, valid, correct := quiz.Resolve(tc.raw, []string{"A", "B"}, "A")
			assert.Empty(t, chosen)
			assert.False(t, valid)
			assert.False(t, correct)
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	options := []string{"A", "B", "C", "D"}
	for i := 0; i < 5; i++ {
		chosen, valid, correct := quiz.Resolve("3", options, "C")
		assert.Equal(t, "C", chosen)
		assert.True(t, valid)
		assert.True(t, correct)
	}
}

func TestResolveNumericIsCaseSensitiveOnEquality(t *testing.T) {
	// The numeric path compares the selected option to the correct text
	// exactly; a casing mismatch in the bank would not count as correct.
	chosen, valid, correct := quiz.Resolve("1", []string{"go", "Java"}, "Go")
	assert.Equal(t, "go", chosen)
	assert.True(t, valid)
	assert.False(t, correct)
}
