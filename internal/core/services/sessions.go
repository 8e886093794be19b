package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/keycalc/internal/core/domain"
	"github.com/custodia-labs/keycalc/internal/core/ports/driving"
	"github.com/custodia-labs/keycalc/internal/logger"
)

// Ensure SessionRegistry implements the interface.
var _ driving.SessionService = (*SessionRegistry)(nil)

// ErrSessionNotFound is returned for an unknown or closed session ID.
var ErrSessionNotFound = errors.New("session not found")

// session confines one engine behind its own lock.
type session struct {
	mu     sync.Mutex
	engine driving.Calculator
}

// SessionRegistry hosts independent calculator engines keyed by UUID.
// Engines are not safe for concurrent use, so every call into a session
// holds that session's lock.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*session
	factory  func() driving.Calculator
}

// NewSessionRegistry creates a registry that builds engines with factory.
// A nil factory builds default engines.
func NewSessionRegistry(factory func() driving.Calculator) *SessionRegistry {
	if factory == nil {
		factory = func() driving.Calculator { return NewEngine() }
	}
	return &SessionRegistry{
		sessions: make(map[string]*session),
		factory:  factory,
	}
}

// Create starts a new session.
func (r *SessionRegistry) Create() string {
	id := uuid.NewString()

	r.mu.Lock()
	r.sessions[id] = &session{engine: r.factory()}
	r.mu.Unlock()

	logger.Info("calculator session %s opened", id)
	return id
}

// Apply dispatches actions to a session in order. Every action is validated
// before any is applied.
func (r *SessionRegistry) Apply(id string, actions ...domain.Action) (domain.State, error) {
	s, err := r.lookup(id)
	if err != nil {
		return domain.State{}, err
	}
	for _, a := range actions {
		if err := a.Validate(); err != nil {
			return domain.State{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range actions {
		s.engine.Dispatch(a)
	}
	return s.engine.State(), nil
}

// State returns a session snapshot.
func (r *SessionRegistry) State(id string) (domain.State, error) {
	return r.Apply(id)
}

// Close removes a session.
func (r *SessionRegistry) Close(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	logger.Info("calculator session %s closed", id)
	return nil
}

// Count returns the number of open sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *SessionRegistry) lookup(id string) (*session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}
