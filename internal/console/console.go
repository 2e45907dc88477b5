// Package console plays the quiz on a line-oriented terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"trivia-palooza/internal/domain"
	"trivia-palooza/internal/screen"
)

var errQuit = errors.New("quit")

// Console reads commands from in and renders the controller to out.
type Console struct {
	ctrl   *screen.Controller
	topics []domain.Topic
	in     io.Reader
	out    io.Writer
	log    *zap.Logger

	wake chan struct{}
	done chan struct{}
}

func New(ctrl *screen.Controller, topics []domain.Topic, in io.Reader, out io.Writer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Console{
		ctrl:   ctrl,
		topics: topics,
		in:     in,
		out:    out,
		log:    logger,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	ctrl.Observe(func(screen.Snapshot) {
		select {
		case c.wake <- struct{}{}:
		default:
		}
	})
	return c
}

// Run renders and handles input until the user quits, input ends or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	defer close(c.done)
	lines := make(chan string)
	readErr := make(chan error, 1)
	go c.pump(lines, readErr)

	c.render()
	for {
		// input typed while loading is kept for the screen that follows
		input := lines
		if c.ctrl.Snapshot().State == screen.StateLoading {
			input = nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-c.wake:
			c.render()
		case line, ok := <-input:
			if !ok {
				return <-readErr
			}
			if err := c.handle(ctx, strings.TrimSpace(line)); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				fmt.Fprintf(c.out, "\n%v\n", err)
			}
			c.drainWake()
			c.render()
		}
	}
}

func (c *Console) pump(lines chan<- string, readErr chan<- error) {
	defer close(lines)
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-c.done:
			readErr <- nil
			return
		}
	}
	readErr <- scanner.Err()
}

func (c *Console) render() {
	Render(c.out, c.ctrl.Snapshot(), c.topics)
}

func (c *Console) drainWake() {
	select {
	case <-c.wake:
	default:
	}
}

func (c *Console) handle(ctx context.Context, input string) error {
	cmd := strings.ToLower(input)
	if cmd == "q" {
		return errQuit
	}
	snap := c.ctrl.Snapshot()
	switch snap.State {
	case screen.StateHome:
		n, err := strconv.Atoi(cmd)
		if err != nil || n < 1 || n > len(c.topics) {
			return fmt.Errorf("pick a topic between 1 and %d", len(c.topics))
		}
		return c.ctrl.SelectTopic(c.topics[n-1])
	case screen.StateTopicChosen:
		switch cmd {
		case "s":
			return c.ctrl.Confirm(ctx)
		case "r":
			return c.ctrl.CancelTopic()
		}
	case screen.StateLoadFailed, screen.StateScored:
		if cmd == "h" {
			c.ctrl.ReturnHome()
			return nil
		}
	case screen.StateInQuiz:
		return c.handleQuiz(snap, cmd)
	case screen.StateLoading:
		return nil
	}
	return fmt.Errorf("unrecognised input %q", input)
}

func (c *Console) handleQuiz(snap screen.Snapshot, cmd string) error {
	if snap.Paused() {
		switch cmd {
		case "r":
			return c.ctrl.Resume()
		case "x":
			c.ctrl.ReturnHome()
			return nil
		}
		return fmt.Errorf("unrecognised input %q", cmd)
	}
	if cmd == "p" {
		return c.ctrl.Pause()
	}
	v := snap.Quiz
	if v.Revealed {
		if cmd == "" {
			// the dwell timer may have advanced already
			if err := c.ctrl.Advance(); err != nil && !errors.Is(err, domain.ErrNotRevealing) {
				return err
			}
		}
		return nil
	}
	if len(cmd) != 1 || cmd[0] < 'a' || int(cmd[0]-'a') >= len(v.Options) {
		return fmt.Errorf("answer with a letter between A and %c", 'A'+len(v.Options)-1)
	}
	sel, err := c.ctrl.SelectAnswer(v.Options[cmd[0]-'a'].Text)
	if err != nil {
		return err
	}
	c.log.Debug("answer selected", zap.Bool("accepted", sel.Accepted), zap.Bool("correct", sel.Correct))
	return nil
}
