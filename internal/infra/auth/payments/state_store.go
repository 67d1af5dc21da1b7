package payments

import (
	"sync"
	"time"

	"kioskdash/internal/domain/service"
)

// stateTTL bounds how long a user may take on the provider consent screen.
const stateTTL = 10 * time.Minute

type pendingState struct {
	organizationID string
	expiresAt      time.Time
}

// StateStore is an in-process, single-use OAuth state store.
type StateStore struct {
	mu     sync.Mutex
	states map[string]pendingState
	now    func() time.Time
}

// NewStateStore creates an empty state store.
func NewStateStore() service.OAuthStateStore {
	return newStateStore(time.Now)
}

func newStateStore(now func() time.Time) *StateStore {
	return &StateStore{
		states: make(map[string]pendingState),
		now:    now,
	}
}

// Put remembers state for stateTTL.
func (s *StateStore) Put(state, organizationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.cleanupExpired(now)
	s.states[state] = pendingState{organizationID: organizationID, expiresAt: now.Add(stateTTL)}
}

// Take consumes state. A state can be taken once.
func (s *StateStore) Take(state string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.states[state]
	if !ok {
		return "", false
	}
	delete(s.states, state)

	if s.now().After(pending.expiresAt) {
		return "", false
	}

	return pending.organizationID, true
}

func (s *StateStore) cleanupExpired(now time.Time) {
	for state, pending := range s.states {
		if now.After(pending.expiresAt) {
			delete(s.states, state)
		}
	}
}
