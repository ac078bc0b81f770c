package audit

import (
	"context"
	"sync"
)

// MemoryStore is the default sink; it doubles as the queryable in-process
// audit trail and as the test double for external sinks.
type MemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// All returns a copy of every recorded event in append order.
func (s *MemoryStore) All() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events...)
}

// ListByAgency returns the events attributed to one agency, in append order.
func (s *MemoryStore) ListByAgency(agencyID string) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Event
	for _, e := range s.events {
		if e.AgencyID == agencyID {
			out = append(out, e)
		}
	}
	return out
}
