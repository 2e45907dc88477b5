package console_test

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trivia-palooza/internal/catalog"
	"trivia-palooza/internal/clock"
	"trivia-palooza/internal/console"
	"trivia-palooza/internal/domain"
	"trivia-palooza/internal/infra/memory"
	"trivia-palooza/internal/quiz"
	"trivia-palooza/internal/screen"
)

func newController(t *testing.T, batch []domain.Question) (*screen.Controller, []domain.Topic) {
	t.Helper()
	movies, err := catalog.Lookup("movies")
	require.NoError(t, err)
	clk := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctrl := screen.New(
		memory.NewStaticSource(map[string][]domain.Question{"movies": batch}),
		screen.WithSpawner(func(f func()) { f() }),
		screen.WithSessionOptions(quiz.WithClock(clk), quiz.WithRand(rand.New(rand.NewSource(1)))),
	)
	return ctrl, []domain.Topic{movies}
}

func run(t *testing.T, ctrl *screen.Controller, topics []domain.Topic, script string) string {
	t.Helper()
	var out bytes.Buffer
	c := console.New(ctrl, topics, strings.NewReader(script), &out, nil)
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestScriptedGameReachesScore(t *testing.T) {
	ctrl, topics := newController(t, memory.SampleBatch(1))

	out := run(t, ctrl, topics, "7\n1\ns\nz\na\n\nh\nq\n")

	assert.Contains(t, out, "Trivia-Palooza")
	assert.Contains(t, out, "pick a topic between 1 and 1")
	assert.Contains(t, out, "🎬 Movies")
	assert.Contains(t, out, "Questions: 20")
	assert.Contains(t, out, "Question 1/1")
	assert.Contains(t, out, "answer with a letter between A and D")
	assert.Contains(t, out, "Enter to continue")
	assert.Contains(t, out, "Quiz Complete!")
	assert.Contains(t, out, "% Correct")
	assert.Equal(t, screen.StateHome, ctrl.Snapshot().State)
}

func TestScriptedPauseAndExit(t *testing.T) {
	ctrl, topics := newController(t, memory.SampleBatch(3))

	out := run(t, ctrl, topics, "1\ns\np\na\nr\np\nx\n")

	assert.Contains(t, out, "Game Paused")
	assert.Contains(t, out, `unrecognised input "a"`)
	assert.Equal(t, screen.StateHome, ctrl.Snapshot().State)
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	ctrl, topics := newController(t, memory.SampleBatch(1))
	out := run(t, ctrl, topics, "1\n")
	assert.Contains(t, out, "s) Start!")
	assert.Equal(t, screen.StateTopicChosen, ctrl.Snapshot().State)
}

func TestRenderRevealMarksOptions(t *testing.T) {
	topic := domain.Topic{Icon: "🎬", Name: "Movies"}
	snap := screen.Snapshot{
		State: screen.StateInQuiz,
		Topic: &topic,
		Quiz: &quiz.View{
			State:    quiz.StateRevealing,
			Revealed: true,
			Index:    2,
			Total:    10,
			Question: "Who said &quot;Hi&quot;?",
			Options: []quiz.AnswerOption{
				{Text: "Ann"},
				{Text: "Bob", Selected: true},
				{Text: "Cy &amp; Di", Correct: true},
			},
		},
	}

	var out bytes.Buffer
	console.Render(&out, snap, nil)
	text := out.String()

	assert.Contains(t, text, "Question 3/10")
	assert.Contains(t, text, `Who said "Hi"?`)
	assert.Contains(t, text, "A) Ann\n")
	assert.Contains(t, text, "B) Bob ❌")
	assert.Contains(t, text, "C) Cy & Di ✅")
}

func TestRenderLoadFailedAndScore(t *testing.T) {
	var out bytes.Buffer
	console.Render(&out, screen.Snapshot{
		State: screen.StateLoadFailed,
		Err:   domain.NewLoadError("anime", domain.ErrEmptyBatch),
	}, nil)
	assert.Contains(t, out.String(), "Failed to load questions")
	assert.Contains(t, out.String(), "question batch is empty")

	out.Reset()
	console.Render(&out, screen.Snapshot{
		State: screen.StateScored,
		Score: &domain.ScoreResult{Correct: 18, Total: 20},
	}, nil)
	assert.Contains(t, out.String(), "🏆 LEGENDARY!")
	assert.Contains(t, out.String(), "18/20  90% Correct")
	assert.Contains(t, out.String(), "🎊")
}

type gatedSource struct {
	gate  chan struct{}
	batch []domain.Question
}

func (g gatedSource) FetchQuestions(ctx context.Context, _ domain.Topic) ([]domain.Question, error) {
	select {
	case <-g.gate:
		return g.batch, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestInputTypedWhileLoadingWaitsForQuiz(t *testing.T) {
	movies, err := catalog.Lookup("movies")
	require.NoError(t, err)
	src := gatedSource{gate: make(chan struct{}), batch: memory.SampleBatch(2)}
	clk := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctrl := screen.New(src, screen.WithSessionOptions(quiz.WithClock(clk)))
	time.AfterFunc(20*time.Millisecond, func() { close(src.gate) })

	out := run(t, ctrl, []domain.Topic{movies}, "1\ns\na\nq\n")

	assert.Contains(t, out, "Loading questions")
	assert.Contains(t, out, "Enter to continue")
	assert.Equal(t, screen.StateInQuiz, ctrl.Snapshot().State)
	assert.True(t, ctrl.Snapshot().Quiz.Revealed)
}
