package session

import (
	"context"
	"fmt"
	"sync"

	"contactsdemo/pkg/platform/sentinel"
)

// InMemoryStore keeps the session in process memory. Used in tests and as the
// fallback when no Redis is configured; registrations then last one process
// lifetime.
type InMemoryStore struct {
	notifier *Notifier

	mu      sync.RWMutex
	current *Session
}

func NewInMemoryStore(notifier *Notifier) *InMemoryStore {
	return &InMemoryStore{notifier: notifier}
}

func (s *InMemoryStore) Get(_ context.Context) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, nil
	}
	copied := *s.current
	return &copied, nil
}

func (s *InMemoryStore) Write(_ context.Context, sess Session) error {
	if !sess.Registered() {
		return fmt.Errorf("refusing to persist incomplete session: %w", sentinel.ErrInvalidState)
	}

	s.mu.Lock()
	copied := sess
	s.current = &copied
	s.mu.Unlock()

	s.notifier.Publish(Change{Registered: true, UserID: sess.UserID})
	return nil
}

func (s *InMemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.notifier.Publish(Change{Registered: false})
	return nil
}
