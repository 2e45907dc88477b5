// Package screen drives top-level navigation between the home screen, topic
// confirmation, the quiz and the score screen.
package screen

// State is a top-level screen.
type State int

const (
	StateHome State = iota
	StateTopicChosen
	StateLoading
	StateLoadFailed
	StateInQuiz
	StateScored
)

func (s State) String() string {
	switch s {
	case StateHome:
		return "home"
	case StateTopicChosen:
		return "topic_chosen"
	case StateLoading:
		return "loading"
	case StateLoadFailed:
		return "load_failed"
	case StateInQuiz:
		return "in_quiz"
	case StateScored:
		return "scored"
	default:
		return "unknown"
	}
}

// Event is an input to the screen state machine.
type Event int

const (
	EventSelectTopic Event = iota
	EventCancelTopic
	EventConfirm
	EventLoadSucceeded
	EventLoadFailed
	EventAnswer
	EventAdvance
	EventPause
	EventResume
	EventComplete
	EventReturnHome
)

func (e Event) String() string {
	switch e {
	case EventSelectTopic:
		return "select_topic"
	case EventCancelTopic:
		return "cancel_topic"
	case EventConfirm:
		return "confirm"
	case EventLoadSucceeded:
		return "load_succeeded"
	case EventLoadFailed:
		return "load_failed"
	case EventAnswer:
		return "answer"
	case EventAdvance:
		return "advance"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventComplete:
		return "complete"
	case EventReturnHome:
		return "return_home"
	default:
		return "unknown"
	}
}

type transitionKey struct {
	from  State
	event Event
}

// transitions lists every allowed (state, event) pair. EventReturnHome is
// accepted from any state and is handled by Next.
var transitions = map[transitionKey]State{
	{StateHome, EventSelectTopic}:        StateTopicChosen,
	{StateTopicChosen, EventCancelTopic}: StateHome,
	{StateTopicChosen, EventConfirm}:     StateLoading,
	{StateLoading, EventLoadSucceeded}:   StateInQuiz,
	{StateLoading, EventLoadFailed}:      StateLoadFailed,
	{StateInQuiz, EventAnswer}:           StateInQuiz,
	{StateInQuiz, EventAdvance}:          StateInQuiz,
	{StateInQuiz, EventPause}:            StateInQuiz,
	{StateInQuiz, EventResume}:           StateInQuiz,
	{StateInQuiz, EventComplete}:         StateScored,
}

// Next returns the state reached from `from` on ev, and whether the event is
// allowed at all.
func Next(from State, ev Event) (State, bool) {
	if ev == EventReturnHome {
		return StateHome, true
	}
	next, ok := transitions[transitionKey{from: from, event: ev}]
	return next, ok
}
