package interview

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Kind is the interview flavour chosen at start
type Kind string

const (
	KindTechnical  Kind = "technical"
	KindBehavioral Kind = "behavioral"
	KindGeneral    Kind = "general"
	KindCustom     Kind = "custom"
)

// ParseKind accepts "technical", "Technical Interview" and similar; empty means technical
func ParseKind(s string) (Kind, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimSpace(strings.TrimSuffix(v, "interview"))
	switch Kind(v) {
	case "":
		return KindTechnical, nil
	case KindTechnical, KindBehavioral, KindGeneral, KindCustom:
		return Kind(v), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Label renders the kind as used in prompts, e.g. "technical interview"
func (k Kind) Label() string {
	return string(k) + " interview"
}

// Role identifies who produced a turn
type Role string

const (
	RoleInterviewer Role = "interviewer"
	RoleCandidate   Role = "candidate"
	RoleSummary     Role = "summary"
)

func (r Role) title() string {
	switch r {
	case RoleInterviewer:
		return "Interviewer"
	case RoleCandidate:
		return "Candidate"
	default:
		return "Summary"
	}
}

// Turn is one transcript entry
type Turn struct {
	Role Role      `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Session is a single mock interview
type Session struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	Position   string    `json:"position,omitempty"`
	Context    string    `json:"context,omitempty"`
	State      State     `json:"state"`
	Transcript []Turn    `json:"transcript"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (s Session) clone() Session {
	s.Transcript = slices.Clone(s.Transcript)
	if s.Transcript == nil {
		s.Transcript = []Turn{}
	}
	return s
}

// LastTurn returns the most recent turn by role
func (s Session) LastTurn(role Role) (Turn, bool) {
	for i := len(s.Transcript) - 1; i >= 0; i-- {
		if s.Transcript[i].Role == role {
			return s.Transcript[i], true
		}
	}
	return Turn{}, false
}

// TranscriptText renders the whole conversation for download
func (s Session) TranscriptText() string {
	parts := make([]string, 0, len(s.Transcript))
	for _, t := range s.Transcript {
		parts = append(parts, fmt.Sprintf("[%s] %s:\n%s", t.At.Format(time.TimeOnly), t.Role.title(), t.Text))
	}
	return strings.Join(parts, "\n\n")
}

// conversation renders the last n interviewer and candidate turns for prompting
func (s Session) conversation(n int) string {
	turns := make([]string, 0, n)
	for _, t := range s.Transcript {
		if t.Role == RoleSummary {
			continue
		}
		turns = append(turns, t.Role.title()+": "+t.Text)
	}
	if n > 0 && len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	return strings.Join(turns, "\n\n")
}
