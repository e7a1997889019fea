package interview

import "fmt"

// State is a position in the interview loop
type State string

const (
	StateIdle      State = "idle"
	StateListening State = "listening"
	StateThinking  State = "thinking"
	StateSpeaking  State = "speaking"
	StateEnded     State = "ended"
)

// EventKind names a state machine input
type EventKind string

const (
	EventStart        EventKind = "start"
	EventHeard        EventKind = "heard"
	EventHeardNothing EventKind = "heard_nothing"
	EventReplied      EventKind = "replied"
	EventSpoken       EventKind = "spoken"
	EventStop         EventKind = "stop"
)

// Event drives one transition; Text carries heard or replied content
type Event struct {
	Kind EventKind
	Text string
}

func Start() Event              { return Event{Kind: EventStart} }
func Heard(text string) Event   { return Event{Kind: EventHeard, Text: text} }
func HeardNothing() Event       { return Event{Kind: EventHeardNothing} }
func Replied(text string) Event { return Event{Kind: EventReplied, Text: text} }
func Spoken() Event             { return Event{Kind: EventSpoken} }
func Stop() Event               { return Event{Kind: EventStop} }

type transition struct {
	from State
	on   EventKind
}

var transitions = map[transition]State{
	{StateIdle, EventStart}:             StateThinking,
	{StateListening, EventHeard}:        StateThinking,
	{StateListening, EventHeardNothing}: StateListening,
	{StateThinking, EventReplied}:       StateSpeaking,
	{StateSpeaking, EventSpoken}:        StateListening,
}

// Next returns the state reached from s on ev
func Next(s State, ev Event) (State, error) {
	if ev.Kind == EventStop && s != StateEnded {
		return StateEnded, nil
	}
	if next, ok := transitions[transition{from: s, on: ev.Kind}]; ok {
		return next, nil
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, ev.Kind, s)
}
