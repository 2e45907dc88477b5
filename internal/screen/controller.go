package screen

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trivia-palooza/internal/domain"
	"trivia-palooza/internal/quiz"
)

// Snapshot is an immutable picture of the controller for rendering.
type Snapshot struct {
	State State
	Topic *domain.Topic
	Quiz  *quiz.View
	Score *domain.ScoreResult
	Err   error
}

// Paused reports whether the quiz overlay is paused.
func (s Snapshot) Paused() bool {
	return s.Quiz != nil && s.Quiz.Paused
}

// Option configures a Controller.
type Option func(*Controller)

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSpawner replaces the goroutine used to run question loads.
func WithSpawner(spawn func(func())) Option {
	return func(c *Controller) {
		if spawn != nil {
			c.spawn = spawn
		}
	}
}

// WithSessionOptions are applied to every quiz session the controller starts.
func WithSessionOptions(opts ...quiz.Option) Option {
	return func(c *Controller) { c.sessionOpts = append(c.sessionOpts, opts...) }
}

// Controller owns the current screen and, while in a quiz, the session.
type Controller struct {
	source      quiz.QuestionSource
	log         *zap.Logger
	spawn       func(func())
	sessionOpts []quiz.Option

	mu         sync.Mutex
	state      State
	topic      *domain.Topic
	session    *quiz.Session
	score      *domain.ScoreResult
	loadErr    error
	ticket     uuid.UUID
	cancelLoad context.CancelFunc
	observers  []func(Snapshot)
}

func New(source quiz.QuestionSource, opts ...Option) *Controller {
	c := &Controller{
		source: source,
		log:    zap.NewNop(),
		spawn:  func(f func()) { go f() },
		state:  StateHome,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Observe registers f to receive a Snapshot after every state change.
// Callbacks may run on timer or loader goroutines.
func (c *Controller) Observe(f func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, f)
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// SelectTopic opens the confirmation prompt for topic.
func (c *Controller) SelectTopic(topic domain.Topic) error {
	c.mu.Lock()
	if err := c.transitionLocked(EventSelectTopic); err != nil {
		c.mu.Unlock()
		return err
	}
	c.topic = &topic
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

// CancelTopic closes the confirmation prompt without starting a quiz.
func (c *Controller) CancelTopic() error {
	c.mu.Lock()
	if err := c.transitionLocked(EventCancelTopic); err != nil {
		c.mu.Unlock()
		return err
	}
	c.topic = nil
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

// Confirm starts loading questions for the chosen topic. The load runs
// asynchronously; its outcome moves the controller to InQuiz or LoadFailed.
func (c *Controller) Confirm(ctx context.Context) error {
	c.mu.Lock()
	if err := c.transitionLocked(EventConfirm); err != nil {
		c.mu.Unlock()
		return err
	}
	ticket := uuid.New()
	c.ticket = ticket
	topic := *c.topic
	loadCtx, cancel := context.WithCancel(ctx)
	c.cancelLoad = cancel
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	c.log.Info("loading questions", zap.String("topic", topic.ID), zap.Stringer("ticket", ticket))

	opts := append(append([]quiz.Option(nil), c.sessionOpts...),
		quiz.WithLogger(c.log),
		quiz.OnAdvance(c.sessionAdvanced),
		quiz.OnComplete(c.sessionCompleted),
	)
	c.spawn(func() {
		defer cancel()
		session, err := quiz.Load(loadCtx, c.source, topic, opts...)
		c.finishLoad(ticket, topic, session, err)
	})
	return nil
}

// SelectAnswer forwards the answer to the running session.
func (c *Controller) SelectAnswer(answer string) (quiz.Selection, error) {
	c.mu.Lock()
	if _, ok := Next(c.state, EventAnswer); !ok {
		state := c.state
		c.mu.Unlock()
		return quiz.Selection{}, invalid(state, EventAnswer)
	}
	sel := c.session.SelectAnswer(answer)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if sel.Accepted {
		c.notify(snap)
	}
	return sel, nil
}

// Advance skips the remaining reveal delay.
func (c *Controller) Advance() error {
	c.mu.Lock()
	if _, ok := Next(c.state, EventAdvance); !ok {
		state := c.state
		c.mu.Unlock()
		return invalid(state, EventAdvance)
	}
	view, err := c.session.Advance()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if view.State == quiz.StateCompleted {
		c.completeLocked(*view.Result)
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

func (c *Controller) Pause() error {
	return c.toggle(EventPause, (*quiz.Session).Pause)
}

func (c *Controller) Resume() error {
	return c.toggle(EventResume, (*quiz.Session).Resume)
}

// ReturnHome discards the session, any score and any in-flight load.
func (c *Controller) ReturnHome() {
	c.mu.Lock()
	from := c.state
	c.state, _ = Next(c.state, EventReturnHome)
	if c.cancelLoad != nil {
		c.cancelLoad()
		c.cancelLoad = nil
	}
	c.ticket = uuid.Nil
	if c.session != nil {
		c.session.Close()
		c.session = nil
	}
	c.topic = nil
	c.score = nil
	c.loadErr = nil
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.log.Debug("returned home", zap.Stringer("from", from))
	c.notify(snap)
}

func (c *Controller) toggle(ev Event, apply func(*quiz.Session) error) error {
	c.mu.Lock()
	if _, ok := Next(c.state, ev); !ok {
		state := c.state
		c.mu.Unlock()
		return invalid(state, ev)
	}
	if err := apply(c.session); err != nil {
		c.mu.Unlock()
		return err
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

func (c *Controller) finishLoad(ticket uuid.UUID, topic domain.Topic, session *quiz.Session, err error) {
	c.mu.Lock()
	if ticket != c.ticket || c.state != StateLoading {
		c.mu.Unlock()
		if session != nil {
			session.Close()
		}
		c.log.Debug("ignoring stale load result", zap.String("topic", topic.ID), zap.Stringer("ticket", ticket))
		return
	}
	c.cancelLoad = nil

	ev := EventLoadSucceeded
	if err != nil {
		ev = EventLoadFailed
	}
	if terr := c.transitionLocked(ev); terr != nil {
		c.mu.Unlock()
		c.log.DPanic("load transition rejected", zap.Error(terr))
		return
	}
	if err != nil {
		c.loadErr = err
		c.log.Warn("failed to load questions", zap.String("topic", topic.ID), zap.Error(err))
	} else {
		c.session = session
		c.log.Info("quiz started",
			zap.String("topic", topic.ID),
			zap.Stringer("session", session.ID()),
			zap.Int("questions", session.View().Total))
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

func (c *Controller) sessionAdvanced(v quiz.View) {
	c.mu.Lock()
	if !c.isCurrentLocked(v.SessionID) {
		c.mu.Unlock()
		return
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

func (c *Controller) sessionCompleted(id uuid.UUID, result domain.ScoreResult) {
	c.mu.Lock()
	if !c.isCurrentLocked(id) {
		c.mu.Unlock()
		c.log.Debug("ignoring stale completion", zap.Stringer("session", id))
		return
	}
	c.completeLocked(result)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

func (c *Controller) completeLocked(result domain.ScoreResult) {
	if err := c.transitionLocked(EventComplete); err != nil {
		c.log.DPanic("completion rejected", zap.Error(err))
		return
	}
	c.log.Info("quiz completed",
		zap.Stringer("session", c.session.ID()),
		zap.Int("correct", result.Correct),
		zap.Int("total", result.Total))
	c.score = &result
	c.session.Close()
	c.session = nil
}

func (c *Controller) isCurrentLocked(id uuid.UUID) bool {
	return c.state == StateInQuiz && c.session != nil && c.session.ID() == id
}

func (c *Controller) transitionLocked(ev Event) error {
	next, ok := Next(c.state, ev)
	if !ok {
		return invalid(c.state, ev)
	}
	c.state = next
	return nil
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{State: c.state, Err: c.loadErr}
	if c.topic != nil {
		t := *c.topic
		snap.Topic = &t
	}
	if c.session != nil {
		v := c.session.View()
		snap.Quiz = &v
	}
	if c.score != nil {
		s := *c.score
		snap.Score = &s
	}
	return snap
}

func (c *Controller) notify(snap Snapshot) {
	c.mu.Lock()
	observers := append([]func(Snapshot){}, c.observers...)
	c.mu.Unlock()
	for _, f := range observers {
		f(snap)
	}
}

func invalid(state State, ev Event) error {
	return fmt.Errorf("%w: %s in %s", domain.ErrInvalidTransition, ev, state)
}
