package quiz

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trivia-palooza/internal/clock"
	"trivia-palooza/internal/domain"
)

// DefaultDwell is how long a revealed answer stays on screen before the
// session advances on its own.
const DefaultDwell = 2 * time.Second

// QuestionSource obtains a question batch for a topic.
type QuestionSource interface {
	FetchQuestions(ctx context.Context, topic domain.Topic) ([]domain.Question, error)
}

// State is the progression state of a session. Paused is tracked separately.
type State int

const (
	StateInProgress State = iota
	StateRevealing
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateRevealing:
		return "revealing"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Matcher decides whether a selected answer is the correct one.
type Matcher func(selected, correct string) bool

// RawMatch compares the answers exactly as delivered by the source.
func RawMatch(selected, correct string) bool {
	return selected == correct
}

// DecodedMatch compares both answers after HTML entity decoding.
func DecodedMatch(selected, correct string) bool {
	return domain.DecodeText(selected) == domain.DecodeText(correct)
}

// Selection is the outcome of SelectAnswer.
type Selection struct {
	Accepted bool
	Correct  bool
}

// Option configures a Session.
type Option func(*Session)

func WithClock(c clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithRand sets the source used to shuffle answers.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rnd = r }
}

func WithDwell(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.dwell = d
		}
	}
}

func WithMatcher(m Matcher) Option {
	return func(s *Session) {
		if m != nil {
			s.matcher = m
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// OnAdvance registers a callback invoked after the dwell timer moved the
// session to its next question.
func OnAdvance(f func(View)) Option {
	return func(s *Session) { s.onAdvance = f }
}

// OnComplete registers a callback invoked after the dwell timer completed the
// session.
func OnComplete(f func(id uuid.UUID, result domain.ScoreResult)) Option {
	return func(s *Session) { s.onComplete = f }
}

// Session is one pass through a fixed batch of questions.
type Session struct {
	id        uuid.UUID
	topic     domain.Topic
	questions []domain.Question

	clock   clock.Clock
	rnd     *rand.Rand
	dwell   time.Duration
	matcher Matcher
	log     *zap.Logger

	onAdvance  func(View)
	onComplete func(uuid.UUID, domain.ScoreResult)

	mu           sync.Mutex
	state        State
	paused       bool
	closed       bool
	index        int
	correct      int
	selected     string
	hasSelection bool
	options      []string
	result       *domain.ScoreResult

	timer     clock.Timer
	timerSeq  uint64
	deadline  time.Time
	remaining time.Duration
}

// Load fetches a batch for topic and starts a session on its first question.
// Any failure, including an empty batch, is reported as *domain.LoadError.
func Load(ctx context.Context, source QuestionSource, topic domain.Topic, opts ...Option) (*Session, error) {
	questions, err := source.FetchQuestions(ctx, topic)
	if err != nil {
		return nil, domain.NewLoadError(topic.ID, err)
	}
	session, err := NewSession(topic, questions, opts...)
	if err != nil {
		return nil, domain.NewLoadError(topic.ID, err)
	}
	return session, nil
}

// NewSession builds a session from an already loaded batch.
func NewSession(topic domain.Topic, questions []domain.Question, opts ...Option) (*Session, error) {
	if len(questions) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	s := &Session{
		id:        uuid.New(),
		topic:     topic,
		questions: append([]domain.Question(nil), questions...),
		clock:     clock.Real(),
		dwell:     DefaultDwell,
		matcher:   RawMatch,
		log:       zap.NewNop(),
		state:     StateInProgress,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.options = shuffle(s.rnd, distinctAnswers(s.questions[0], s.matcher))
	return s, nil
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Topic() domain.Topic { return s.topic }

// SelectAnswer records the answer for the current question. It is a no-op
// unless the session is in progress, unpaused, has no selection yet and the
// answer is one of the current options.
func (s *Session) SelectAnswer(answer string) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.paused || s.state != StateInProgress || s.hasSelection {
		return Selection{}
	}
	if !contains(s.options, answer) {
		return Selection{}
	}

	s.selected = answer
	s.hasSelection = true
	correct := s.matcher(answer, s.questions[s.index].CorrectAnswer)
	if correct {
		s.correct++
	}
	s.state = StateRevealing
	s.scheduleLocked(s.dwell)
	return Selection{Accepted: true, Correct: correct}
}

// Advance leaves the reveal state, either onto the next question or into
// completion. The dwell timer calls it implicitly.
func (s *Session) Advance() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.advanceLocked(); err != nil {
		return View{}, err
	}
	return s.viewLocked(), nil
}

// Pause suspends the session. A pending auto-advance is cancelled and its
// remaining delay kept for Resume.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrSessionClosed
	}
	if s.state == StateCompleted {
		return domain.ErrInvalidTransition
	}
	if s.paused {
		return nil
	}
	s.paused = true
	if s.state == StateRevealing && s.timer != nil {
		s.remaining = s.deadline.Sub(s.clock.Now())
		s.stopTimerLocked()
	}
	return nil
}

// Resume lifts a pause. If an answer was being revealed, the auto-advance is
// rescheduled for the remaining delay, or the full dwell when none is left.
func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrSessionClosed
	}
	if s.state == StateCompleted {
		return domain.ErrInvalidTransition
	}
	if !s.paused {
		return nil
	}
	s.paused = false
	if s.state == StateRevealing {
		d := s.remaining
		if d <= 0 {
			d = s.dwell
		}
		s.remaining = 0
		s.scheduleLocked(d)
	}
	return nil
}

// Close discards the session and cancels any pending auto-advance.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopTimerLocked()
}

// View returns a snapshot of the session for presentation.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) advanceLocked() error {
	if s.closed {
		return domain.ErrSessionClosed
	}
	if s.state != StateRevealing {
		return domain.ErrNotRevealing
	}
	if s.paused {
		return domain.ErrPaused
	}
	s.stopTimerLocked()

	s.selected = ""
	s.hasSelection = false
	if s.index+1 == len(s.questions) {
		s.index = len(s.questions)
		s.state = StateCompleted
		s.options = nil
		s.result = &domain.ScoreResult{Correct: s.correct, Total: len(s.questions)}
		return nil
	}
	s.index++
	s.state = StateInProgress
	s.options = shuffle(s.rnd, distinctAnswers(s.questions[s.index], s.matcher))
	return nil
}

func (s *Session) scheduleLocked(d time.Duration) {
	s.stopTimerLocked()
	seq := s.timerSeq
	s.deadline = s.clock.Now().Add(d)
	s.timer = s.clock.AfterFunc(d, func() { s.autoAdvance(seq) })
}

// stopTimerLocked cancels the pending timer and invalidates a callback that
// may already be running.
func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerSeq++
}

func (s *Session) autoAdvance(seq uint64) {
	s.mu.Lock()
	if seq != s.timerSeq || s.closed || s.paused || s.state != StateRevealing {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	if err := s.advanceLocked(); err != nil {
		s.mu.Unlock()
		s.log.Error("auto-advance failed", zap.Stringer("session", s.id), zap.Error(err))
		return
	}
	view := s.viewLocked()
	onAdvance, onComplete := s.onAdvance, s.onComplete
	s.mu.Unlock()

	s.log.Debug("auto-advanced",
		zap.Stringer("session", s.id),
		zap.Stringer("state", view.State),
		zap.Int("index", view.Index))

	if view.State == StateCompleted {
		if onComplete != nil {
			onComplete(view.SessionID, *view.Result)
		}
		return
	}
	if onAdvance != nil {
		onAdvance(view)
	}
}

func contains(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
