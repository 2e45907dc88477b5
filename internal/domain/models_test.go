package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"trivia-palooza/internal/domain"
)

func TestQuestionAnswersIsUnionWithoutDuplicates(t *testing.T) {
	q := domain.Question{
		Prompt:           "Pick one",
		CorrectAnswer:    "B",
		IncorrectAnswers: []string{"A", "C", "A"},
	}
	assert.Equal(t, []string{"A", "C", "B"}, q.Answers())
}

func TestScorePercentageAndPerformance(t *testing.T) {
	cases := []struct {
		score     domain.ScoreResult
		percent   int
		message   string
		celebrate bool
	}{
		{domain.ScoreResult{Correct: 19, Total: 20}, 95, "🏆 LEGENDARY!", true},
		{domain.ScoreResult{Correct: 16, Total: 20}, 80, "🌟 AMAZING!", true},
		{domain.ScoreResult{Correct: 7, Total: 10}, 70, "🎉 GREAT JOB!", true},
		{domain.ScoreResult{Correct: 2, Total: 3}, 67, "👍 GOOD EFFORT!", false},
		{domain.ScoreResult{Correct: 1, Total: 2}, 50, "📚 KEEP STUDYING!", false},
		{domain.ScoreResult{Correct: 0, Total: 20}, 0, "💪 TRY AGAIN!", false},
		{domain.ScoreResult{}, 0, "💪 TRY AGAIN!", false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d/%d", tc.score.Correct, tc.score.Total), func(t *testing.T) {
			assert.Equal(t, tc.percent, tc.score.Percentage())
			perf := tc.score.Performance()
			assert.Equal(t, tc.message, perf.Message)
			assert.Equal(t, tc.celebrate, perf.Celebrate)
		})
	}
}

func TestDecodeText(t *testing.T) {
	assert.Equal(t, `Who said "Hi" & left?`, domain.DecodeText("Who said &quot;Hi&quot; &amp; left?"))
	assert.Equal(t, "Pokémon", domain.DecodeText("Pok&eacute;mon"))
}

func TestLoadErrorUnwraps(t *testing.T) {
	err := domain.NewLoadError("movies", domain.ErrEmptyBatch)
	assert.True(t, errors.Is(err, domain.ErrEmptyBatch))
	var le *domain.LoadError
	assert.True(t, errors.As(fmt.Errorf("start: %w", err), &le))
	assert.Equal(t, "movies", le.TopicID)
}
