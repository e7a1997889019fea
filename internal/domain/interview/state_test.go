package interview

import (
	"errors"
	"testing"
)

func TestNext(t *testing.T) {
	tests := []struct {
		from    State
		ev      Event
		want    State
		invalid bool
	}{
		{StateIdle, Start(), StateThinking, false},
		{StateListening, Heard("hello"), StateThinking, false},
		{StateListening, HeardNothing(), StateListening, false},
		{StateThinking, Replied("question"), StateSpeaking, false},
		{StateSpeaking, Spoken(), StateListening, false},
		{StateIdle, Stop(), StateEnded, false},
		{StateListening, Stop(), StateEnded, false},
		{StateThinking, Stop(), StateEnded, false},
		{StateSpeaking, Stop(), StateEnded, false},

		{StateEnded, Stop(), StateEnded, true},
		{StateEnded, Start(), StateEnded, true},
		{StateIdle, Heard("x"), StateIdle, true},
		{StateThinking, Heard("x"), StateThinking, true},
		{StateSpeaking, Replied("x"), StateSpeaking, true},
		{StateListening, Spoken(), StateListening, true},
		{StateListening, Start(), StateListening, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.ev.Kind), func(t *testing.T) {
			got, err := Next(tt.from, tt.ev)
			if tt.invalid {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("err = %v, want ErrInvalidTransition", err)
				}
				if got != tt.from {
					t.Fatalf("state changed on invalid transition: %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Next: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Next(%s, %s) = %s, want %s", tt.from, tt.ev.Kind, got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"":                    KindTechnical,
		"Technical Interview": KindTechnical,
		"behavioral":          KindBehavioral,
		"General Interview":   KindGeneral,
		" custom ":            KindCustom,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseKind("panel"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
}
