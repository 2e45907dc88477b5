package quiz

import (
	"github.com/google/uuid"

	"trivia-palooza/internal/domain"
)

// AnswerOption is one answer as shown for the current question.
type AnswerOption struct {
	Text     string
	Selected bool
	// Correct is only populated while the answer is revealed.
	Correct bool
}

// View is a read-only snapshot of a Session.
type View struct {
	SessionID uuid.UUID
	TopicID   string
	State     State
	Paused    bool
	Revealed  bool

	Index   int // 0-based; equals Total once completed
	Total   int
	Correct int

	Question string
	Options  []AnswerOption
	Selected string

	Result *domain.ScoreResult
}

// Answered is the number of questions with a recorded answer.
func (v View) Answered() int {
	if v.Revealed {
		return v.Index + 1
	}
	return v.Index
}

// Progress is the position of the current question as a percentage of the batch.
func (v View) Progress() int {
	if v.Total == 0 {
		return 0
	}
	pos := v.Index + 1
	if pos > v.Total {
		pos = v.Total
	}
	return pos * 100 / v.Total
}

func (s *Session) viewLocked() View {
	v := View{
		SessionID: s.id,
		TopicID:   s.topic.ID,
		State:     s.state,
		Paused:    s.paused,
		Revealed:  s.state == StateRevealing,
		Index:     s.index,
		Total:     len(s.questions),
		Correct:   s.correct,
		Selected:  s.selected,
	}
	if s.result != nil {
		r := *s.result
		v.Result = &r
	}
	if s.state == StateCompleted {
		return v
	}
	q := s.questions[s.index]
	v.Question = q.Prompt
	v.Options = make([]AnswerOption, len(s.options))
	for i, text := range s.options {
		v.Options[i] = AnswerOption{
			Text:     text,
			Selected: s.hasSelection && text == s.selected,
			Correct:  v.Revealed && s.matcher(text, q.CorrectAnswer),
		}
	}
	return v
}
