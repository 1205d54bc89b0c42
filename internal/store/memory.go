package store

import (
	"context"
	"sync"
)

// MemoryRosterStore keeps rosters in memory; they are lost on restart
type MemoryRosterStore struct {
	rosters map[string][]string
	mu      sync.RWMutex
}

// NewMemoryRosterStore creates a new in-memory roster store
func NewMemoryRosterStore() *MemoryRosterStore {
	return &MemoryRosterStore{
		rosters: make(map[string][]string),
	}
}

// Load returns the saved names of owner, or nil if there are none
func (s *MemoryRosterStore) Load(_ context.Context, owner string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names, ok := s.rosters[owner]
	if !ok {
		return nil, nil
	}
	return append([]string(nil), names...), nil
}

// Save replaces the saved names of owner
func (s *MemoryRosterStore) Save(_ context.Context, owner string, names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(names) == 0 {
		delete(s.rosters, owner)
		return nil
	}
	s.rosters[owner] = append([]string(nil), names...)
	return nil
}
