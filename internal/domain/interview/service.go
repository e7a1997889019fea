package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/resume-assistant/pkg/llm"
	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

const (
	// MaxContextRunes bounds the resume excerpt kept on a session
	MaxContextRunes = 1000

	// recentTurns is how much conversation is replayed to the interviewer
	recentTurns = 5

	// minTurnsForSummary skips feedback for interviews that never got going
	minTurnsForSummary = 3

	// DefaultIdleTTL is how long an untouched session, ended or not, is kept
	DefaultIdleTTL = 2 * time.Hour
	sweepInterval  = time.Minute

	// ApologyText replaces an interviewer reply that could not be generated
	ApologyText = "Sorry, I encountered an error generating the next question. Please answer again or end the interview."

	interviewerPrompt = `You are an experienced technical interviewer conducting a professional interview.
Your role is to:
- Ask thoughtful, relevant questions about the candidate's experience and skills
- Evaluate responses critically but fairly
- Provide constructive feedback when appropriate
- Probe deeper into technical concepts to assess understanding
- Maintain a professional yet friendly demeanor
- Ask follow-up questions based on the candidate's answers
Keep your responses concise and focused (2-4 sentences).`
)

var (
	ErrSessionNotFound   = errors.New("interview: session not found")
	ErrInvalidTransition = errors.New("interview: invalid transition")
	ErrSessionEnded      = errors.New("interview: session has ended")
	ErrUnknownKind       = errors.New("interview: unknown interview kind")
)

// Listener captures one candidate utterance; empty text means nothing was heard
type Listener interface {
	Listen(ctx context.Context) (string, error)
}

// Speaker plays back one interviewer reply
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// StartParams configure a new session
type StartParams struct {
	Kind       Kind
	Position   string
	ResumeText string
}

// Option configures Service
type Option func(*Service)

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator overrides uuid.NewString
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// WithIdleTTL sets how long sessions survive without activity; zero keeps them forever
func WithIdleTTL(d time.Duration) Option {
	return func(s *Service) {
		s.idleTTL = d
	}
}

// Service runs mock interviews against a Completer
type Service struct {
	repo      Repository
	completer llm.Completer
	logger    *logging.Logger
	now       func() time.Time
	newID     func() string
	idleTTL   time.Duration

	locks sync.Map

	sweepMu   sync.Mutex
	lastSweep time.Time
}

// NewService creates interview Service
func NewService(repo Repository, completer llm.Completer, logger *logging.Logger, opts ...Option) *Service {
	if repo == nil {
		repo = NewMemoryRepository()
	}
	if completer == nil {
		completer = llm.Unavailable{}
	}

	s := &Service{
		repo:      repo,
		completer: completer,
		logger:    logging.OrNop(logger).Named("interview"),
		now:       time.Now,
		newID:     uuid.NewString,
		idleTTL:   DefaultIdleTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start creates a session and asks the opening question
func (s *Service) Start(ctx context.Context, p StartParams) (Session, error) {
	kind := p.Kind
	if kind == "" {
		kind = KindTechnical
	}
	s.sweep(ctx)

	sess := Session{
		ID:         s.newID(),
		Kind:       kind,
		Position:   strings.TrimSpace(p.Position),
		Context:    llm.Excerpt(strings.TrimSpace(p.ResumeText), MaxContextRunes),
		State:      StateIdle,
		Transcript: []Turn{},
		CreatedAt:  s.now(),
	}
	sess.UpdatedAt = sess.CreatedAt

	if err := s.repo.Create(ctx, sess); err != nil {
		return Session{}, err
	}

	unlock := s.lock(sess.ID)
	defer unlock()

	if err := s.apply(&sess, Start()); err != nil {
		return Session{}, err
	}

	opening := "Start a " + kind.Label()
	if sess.Position != "" {
		opening += " for a " + sess.Position + " position"
	}
	opening += ". Introduce yourself briefly and ask the first interview question."

	if err := s.respond(ctx, &sess, opening); err != nil {
		return Session{}, err
	}

	s.logger.Info("interview started", "session_id", sess.ID, "kind", sess.Kind, "position", sess.Position)
	return sess, s.save(ctx, &sess)
}

// Reply records a typed candidate answer and returns the interviewer's next turn
func (s *Service) Reply(ctx context.Context, id, text string) (Turn, error) {
	text = strings.TrimSpace(text)

	unlock := s.lock(id)
	defer unlock()

	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return Turn{}, err
	}
	if sess.State == StateEnded {
		return Turn{}, ErrSessionEnded
	}
	if text == "" {
		return Turn{}, fmt.Errorf("%w: empty reply", ErrInvalidTransition)
	}

	// text mode has no playback step
	if sess.State == StateSpeaking {
		if err := s.apply(&sess, Spoken()); err != nil {
			return Turn{}, err
		}
	}

	if err := s.hear(ctx, &sess, text); err != nil {
		return Turn{}, err
	}
	if err := s.save(ctx, &sess); err != nil {
		return Turn{}, err
	}

	turn, _ := sess.LastTurn(RoleInterviewer)
	return turn, nil
}

// Advance applies one externally driven event. Heard appends a candidate turn
// and Replied an interviewer turn; no completion is requested. Heard with
// blank text counts as HeardNothing.
func (s *Service) Advance(ctx context.Context, id string, ev Event) (Session, error) {
	ev.Text = strings.TrimSpace(ev.Text)
	if ev.Kind == EventHeard && ev.Text == "" {
		ev = HeardNothing()
	}

	unlock := s.lock(id)
	defer unlock()

	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if sess.State == StateEnded {
		return Session{}, ErrSessionEnded
	}

	if err := s.apply(&sess, ev); err != nil {
		return Session{}, err
	}
	switch ev.Kind {
	case EventHeard:
		s.appendTurn(&sess, RoleCandidate, ev.Text)
	case EventReplied:
		s.appendTurn(&sess, RoleInterviewer, ev.Text)
	}

	return sess, s.save(ctx, &sess)
}

// Step performs one hands-free action: playback when speaking, capture when
// listening. A captured utterance is answered before Step returns.
func (s *Service) Step(ctx context.Context, id string, listener Listener, speaker Speaker) (Session, error) {
	unlock := s.lock(id)
	defer unlock()

	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}

	switch sess.State {
	case StateSpeaking:
		if last, ok := sess.LastTurn(RoleInterviewer); ok && speaker != nil {
			if err := speaker.Speak(ctx, last.Text); err != nil {
				s.logger.Warn("playback failed", "session_id", id, "err", err)
			}
		}
		err = s.apply(&sess, Spoken())

	case StateListening:
		var heard string
		if listener != nil {
			heard, err = listener.Listen(ctx)
			if err != nil {
				s.logger.Warn("capture failed", "session_id", id, "err", err)
			}
		}
		if heard = strings.TrimSpace(heard); heard == "" {
			err = s.apply(&sess, HeardNothing())
		} else {
			err = s.hear(ctx, &sess, heard)
		}

	case StateEnded:
		return Session{}, ErrSessionEnded

	default:
		return Session{}, fmt.Errorf("%w: no action in state %s", ErrInvalidTransition, sess.State)
	}
	if err != nil {
		return Session{}, err
	}

	return sess, s.save(ctx, &sess)
}

// End stops the session and appends feedback when there was a conversation.
// The ended session stays readable until it goes idle.
func (s *Service) End(ctx context.Context, id string) (Session, error) {
	ended := false
	defer func() {
		if ended {
			s.locks.Delete(id)
		}
	}()
	unlock := s.lock(id)
	defer unlock()

	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if sess.State == StateEnded {
		return Session{}, ErrSessionEnded
	}
	if err := s.apply(&sess, Stop()); err != nil {
		return Session{}, err
	}

	if len(sess.Transcript) >= minTurnsForSummary {
		prompt := "Based on this interview conversation, provide a brief summary of the candidate's performance, strengths, and areas for improvement:\n\n" +
			sess.conversation(0)
		summary, err := s.completer.Complete(ctx, llm.Request{
			SystemPrompt: interviewerPrompt,
			UserPrompt:   prompt,
			Temperature:  0.7,
			MaxTokens:    300,
		})
		if err != nil {
			s.logger.Warn("interview summary failed", "session_id", id, "err", err)
		} else if summary = strings.TrimSpace(summary); summary != "" {
			s.appendTurn(&sess, RoleSummary, summary)
		}
	}

	s.logger.Info("interview ended", "session_id", id, "turns", len(sess.Transcript))
	if err := s.save(ctx, &sess); err != nil {
		return Session{}, err
	}
	ended = true
	return sess, nil
}

// Get returns a session snapshot
func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	return s.repo.Get(ctx, id)
}

// hear moves Listening -> Thinking -> Speaking around one candidate answer
func (s *Service) hear(ctx context.Context, sess *Session, text string) error {
	if err := s.apply(sess, Heard(text)); err != nil {
		return err
	}
	s.appendTurn(sess, RoleCandidate, text)

	prompt := "Based on this conversation:\n" + sess.conversation(recentTurns) + "\n\nProvide your next question or feedback."
	return s.respond(ctx, sess, prompt)
}

// respond asks the completer for the interviewer's turn and fires Replied.
// A failed completion is replaced with ApologyText.
func (s *Service) respond(ctx context.Context, sess *Session, prompt string) error {
	system := interviewerPrompt
	if sess.Context != "" {
		system += "\n\nAdditional context about the candidate:\nCandidate's Resume:\n" + sess.Context
	}

	reply, err := s.completer.Complete(ctx, llm.Request{
		SystemPrompt: system,
		UserPrompt:   prompt,
		Temperature:  0.7,
		MaxTokens:    300,
	})
	reply = strings.TrimSpace(reply)
	if err != nil || reply == "" {
		s.logger.Warn("interviewer reply failed", "session_id", sess.ID, "err", err)
		reply = ApologyText
	}

	if err := s.apply(sess, Replied(reply)); err != nil {
		return err
	}
	s.appendTurn(sess, RoleInterviewer, reply)
	return nil
}

func (s *Service) apply(sess *Session, ev Event) error {
	next, err := Next(sess.State, ev)
	if err != nil {
		return err
	}
	s.logger.Debug("interview transition", "session_id", sess.ID, "from", sess.State, "event", ev.Kind, "to", next)
	sess.State = next
	return nil
}

func (s *Service) appendTurn(sess *Session, role Role, text string) {
	sess.Transcript = append(sess.Transcript, Turn{Role: role, Text: text, At: s.now()})
}

func (s *Service) save(ctx context.Context, sess *Session) error {
	sess.UpdatedAt = s.now()
	return s.repo.Update(ctx, *sess)
}

// sweep drops idle sessions and their locks, at most once per sweepInterval
func (s *Service) sweep(ctx context.Context) {
	if s.idleTTL <= 0 {
		return
	}

	now := s.now()
	s.sweepMu.Lock()
	if now.Sub(s.lastSweep) < sweepInterval {
		s.sweepMu.Unlock()
		return
	}
	s.lastSweep = now
	s.sweepMu.Unlock()

	ids, err := s.repo.DeleteIdle(ctx, now.Add(-s.idleTTL))
	if err != nil {
		s.logger.Warn("idle session sweep failed", "err", err)
		return
	}
	for _, id := range ids {
		s.locks.Delete(id)
	}
	if len(ids) > 0 {
		s.logger.Info("idle interview sessions removed", "count", len(ids))
	}
}

func (s *Service) lock(id string) func() {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
