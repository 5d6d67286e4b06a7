package memory

import (
	"context"
	"sync"

	"contactsdemo/pkg/platform/journal"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	events map[string][]journal.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[string][]journal.Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event journal.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.UserID] = append(s.events[event.UserID], event)
	return nil
}

func (s *InMemoryStore) ListByUser(_ context.Context, userID string) ([]journal.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]journal.Event{}, s.events[userID]...), nil
}

// ListAll returns every event across users, ordered by user then insertion.
func (s *InMemoryStore) ListAll(_ context.Context) ([]journal.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []journal.Event
	for _, userEvents := range s.events {
		all = append(all, userEvents...)
	}
	return all, nil
}
