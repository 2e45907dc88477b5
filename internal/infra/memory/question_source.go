package memory

import (
	"context"
	"fmt"

	"trivia-palooza/internal/domain"
)

// StaticSource serves question batches from an in-memory map keyed by topic id
// (useful for tests/demos).
type StaticSource struct {
	batches map[string][]domain.Question
}

func NewStaticSource(batches map[string][]domain.Question) *StaticSource {
	return &StaticSource{batches: batches}
}

func (s *StaticSource) FetchQuestions(ctx context.Context, topic domain.Topic) ([]domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	batch, ok := s.batches[topic.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTopicNotFound, topic.ID)
	}
	return append([]domain.Question(nil), batch...), nil
}

// NewSampleSource serves a SampleBatch of each topic's Amount for every topic.
func NewSampleSource(topics []domain.Topic) *StaticSource {
	batches := make(map[string][]domain.Question, len(topics))
	for _, t := range topics {
		batches[t.ID] = SampleBatch(t.Amount)
	}
	return NewStaticSource(batches)
}

// SampleBatch builds n distinct questions whose correct answer is always "right".
func SampleBatch(n int) []domain.Question {
	questions := make([]domain.Question, n)
	for i := range questions {
		questions[i] = domain.Question{
			Prompt:           fmt.Sprintf("Question %d?", i+1),
			CorrectAnswer:    "right",
			IncorrectAnswers: []string{"wrong 1", "wrong 2", "wrong 3"},
		}
	}
	return questions
}
