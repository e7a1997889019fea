package interview

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Repository stores interview sessions
type Repository interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error
	// DeleteIdle removes sessions last updated before cutoff and returns their IDs
	DeleteIdle(ctx context.Context, cutoff time.Time) ([]string, error)
}

// MemoryRepository keeps sessions for the lifetime of the process
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryRepository creates an empty MemoryRepository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]Session)}
}

func (r *MemoryRepository) Create(_ context.Context, s Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[s.ID]; exists {
		return fmt.Errorf("interview: session %s already exists", s.ID)
	}
	r.sessions[s.ID] = s.clone()
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s.clone(), nil
}

func (r *MemoryRepository) Update(_ context.Context, s Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, s.ID)
	}
	r.sessions[s.ID] = s.clone()
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

func (r *MemoryRepository) DeleteIdle(_ context.Context, cutoff time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []string
	for id, s := range r.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(r.sessions, id)
			ids = append(ids, id)
		}
	}
	return ids, nil
}

var _ Repository = (*MemoryRepository)(nil)
