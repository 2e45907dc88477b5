package console

import (
	"fmt"
	"io"
	"strings"

	"trivia-palooza/internal/domain"
	"trivia-palooza/internal/quiz"
	"trivia-palooza/internal/screen"
)

const rule = "────────────────────────────────────────"

// Render writes a full screen for snap.
func Render(w io.Writer, snap screen.Snapshot, topics []domain.Topic) {
	fmt.Fprintln(w, rule)
	switch snap.State {
	case screen.StateHome:
		renderHome(w, topics)
	case screen.StateTopicChosen:
		renderTopic(w, snap.Topic)
	case screen.StateLoading:
		fmt.Fprintf(w, "%s Loading questions...\n", icon(snap.Topic))
	case screen.StateLoadFailed:
		fmt.Fprintln(w, "Failed to load questions")
		if snap.Err != nil {
			fmt.Fprintf(w, "  (%v)\n", snap.Err)
		}
		fmt.Fprintln(w, "h) 🏠 Return to Home")
	case screen.StateInQuiz:
		renderQuiz(w, snap)
	case screen.StateScored:
		renderScore(w, snap)
	}
}

func renderHome(w io.Writer, topics []domain.Topic) {
	fmt.Fprintln(w, "🎪 Trivia-Palooza! 🎪")
	fmt.Fprintln(w, "Choose your adventure and test your knowledge!")
	fmt.Fprintln(w)
	for i, t := range topics {
		fmt.Fprintf(w, "  %d) %s %s\n", i+1, t.Icon, t.Name)
	}
	fmt.Fprintf(w, "Pick a topic [1-%d], q to quit: ", len(topics))
}

func renderTopic(w io.Writer, topic *domain.Topic) {
	if topic == nil {
		return
	}
	fmt.Fprintf(w, "%s %s\n", topic.Icon, topic.Name)
	fmt.Fprintf(w, "  Questions: %d · No time limit · Multiple choice\n", topic.Amount)
	fmt.Fprint(w, "s) Start!   r) Return: ")
}

func renderQuiz(w io.Writer, snap screen.Snapshot) {
	v := snap.Quiz
	if v == nil {
		return
	}
	fmt.Fprintf(w, "%s Question %d/%d  %s  p) pause\n", icon(snap.Topic), v.Index+1, v.Total, progressBar(v.Progress()))
	if v.Paused {
		fmt.Fprintln(w, "⏸  Game Paused")
		fmt.Fprint(w, "r) ▶ Resume Game   x) Exit to Home: ")
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, domain.DecodeText(v.Question))
	fmt.Fprintln(w)
	for i, o := range v.Options {
		fmt.Fprintf(w, "  %c) %s%s\n", 'A'+i, domain.DecodeText(o.Text), marker(v, o))
	}
	if v.Revealed {
		fmt.Fprint(w, "Enter to continue: ")
		return
	}
	fmt.Fprintf(w, "Answer [A-%c]: ", 'A'+len(v.Options)-1)
}

func renderScore(w io.Writer, snap screen.Snapshot) {
	if snap.Score == nil {
		return
	}
	perf := snap.Score.Performance()
	fmt.Fprintln(w, "Quiz Complete!")
	fmt.Fprintln(w, perf.Message)
	fmt.Fprintf(w, "  %d/%d  %d%% Correct\n", snap.Score.Correct, snap.Score.Total, snap.Score.Percentage())
	if perf.Celebrate {
		fmt.Fprintln(w, "  🎊 🎉 🎊 🎉 🎊")
	}
	fmt.Fprint(w, "h) 🏠 Return to Home: ")
}

func marker(v *quiz.View, o quiz.AnswerOption) string {
	if !v.Revealed {
		return ""
	}
	switch {
	case o.Correct:
		return " ✅"
	case o.Selected:
		return " ❌"
	default:
		return ""
	}
}

func progressBar(percent int) string {
	const width = 20
	filled := percent * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func icon(t *domain.Topic) string {
	if t == nil {
		return ""
	}
	return t.Icon
}
