package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTopicNotFound is returned when a topic id is not in the catalog.
	ErrTopicNotFound = errors.New("topic not found")
	// ErrEmptyBatch indicates the question source answered with zero questions.
	ErrEmptyBatch = errors.New("question batch is empty")
	// ErrSourceStatus indicates the question source answered with a non-success status.
	ErrSourceStatus = errors.New("question source returned non-success status")
	// ErrMalformedPayload indicates the question source payload could not be decoded.
	ErrMalformedPayload = errors.New("malformed question payload")
	// ErrInvalidTransition is returned when an event is not allowed in the current screen state.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrNotRevealing is returned when advance is requested outside of the reveal state.
	ErrNotRevealing = errors.New("session is not revealing an answer")
	// ErrPaused is returned when an operation is attempted on a paused session.
	ErrPaused = errors.New("session is paused")
	// ErrSessionClosed is returned once a session has been discarded.
	ErrSessionClosed = errors.New("session closed")
)

// LoadError reports that a question batch for a topic could not be obtained.
type LoadError struct {
	TopicID string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load questions for %q: %v", e.TopicID, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError wraps err as a LoadError for topicID.
func NewLoadError(topicID string, err error) *LoadError {
	return &LoadError{TopicID: topicID, Err: err}
}
