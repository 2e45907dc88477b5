package domain

import (
	"html"
	"math"
)

// Theme names the colour palette a topic is presented with.
type Theme struct {
	Primary    string
	Secondary  string
	Accent     string
	Background string
}

// Topic is a selectable trivia category with its question source parameters.
type Topic struct {
	ID         string
	Name       string
	Category   int    // Open Trivia DB category id
	Difficulty string // easy, medium or hard
	Amount     int    // questions per batch
	Theme      Theme
	Icon       string
}

// Question is a multiple-choice question as delivered by the source.
// Text fields may carry HTML entities.
type Question struct {
	Prompt           string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// Answers returns the union of the incorrect answers and the correct answer,
// without duplicates, in source order.
func (q Question) Answers() []string {
	answers := make([]string, 0, len(q.IncorrectAnswers)+1)
	seen := make(map[string]struct{}, len(q.IncorrectAnswers)+1)
	for _, a := range append(append([]string{}, q.IncorrectAnswers...), q.CorrectAnswer) {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		answers = append(answers, a)
	}
	return answers
}

// ScoreResult is the final tally of a completed session.
type ScoreResult struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Percentage returns the share of correct answers rounded to the nearest integer.
func (r ScoreResult) Percentage() int {
	if r.Total == 0 {
		return 0
	}
	return int(math.Round(float64(r.Correct) / float64(r.Total) * 100))
}

// Performance is the headline shown for a score.
type Performance struct {
	Message   string
	Celebrate bool
}

// Performance maps the percentage onto its tier.
func (r ScoreResult) Performance() Performance {
	p := r.Percentage()
	switch {
	case p >= 90:
		return Performance{Message: "🏆 LEGENDARY!", Celebrate: true}
	case p >= 80:
		return Performance{Message: "🌟 AMAZING!", Celebrate: true}
	case p >= 70:
		return Performance{Message: "🎉 GREAT JOB!", Celebrate: true}
	case p >= 60:
		return Performance{Message: "👍 GOOD EFFORT!"}
	case p >= 50:
		return Performance{Message: "📚 KEEP STUDYING!"}
	default:
		return Performance{Message: "💪 TRY AGAIN!"}
	}
}

// DecodeText resolves HTML entities for display.
func DecodeText(s string) string {
	return html.UnescapeString(s)
}
