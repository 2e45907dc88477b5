package quiz

import (
	"math/rand"

	"trivia-palooza/internal/domain"
)

// shuffle returns a uniformly random permutation of answers (Fisher-Yates).
func shuffle(r *rand.Rand, answers []string) []string {
	out := append([]string(nil), answers...)
	for i := len(out) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// distinctAnswers returns the question's answers with every incorrect answer
// the matcher would accept as correct, or as an earlier answer, left out.
func distinctAnswers(q domain.Question, match Matcher) []string {
	kept := []string{q.CorrectAnswer}
	out := make([]string, 0, len(q.IncorrectAnswers)+1)
next:
	for _, a := range q.Answers() {
		if a == q.CorrectAnswer {
			continue
		}
		for _, k := range kept {
			if match(a, k) {
				continue next
			}
		}
		kept = append(kept, a)
		out = append(out, a)
	}
	return append(out, q.CorrectAnswer)
}
