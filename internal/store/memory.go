package store

import (
	"context"
	"sync"
)

// DefaultContacts is the address book every user sees until editing is wired to the web app.
var DefaultContacts = []Contact{
	{Name: "Maman"},
	{Name: "Manou"},
	{Name: "Petit Claude"},
	{Name: "Nicolas"},
}

// MemoryStore keeps per-user address books in memory, falling back to a shared default list.
type MemoryStore struct {
	mu       sync.RWMutex
	defaults []Contact
	byUser   map[string][]Contact
}

func NewMemoryStore(defaults []Contact) *MemoryStore {
	return &MemoryStore{
		defaults: append([]Contact(nil), defaults...),
		byUser:   make(map[string][]Contact),
	}
}

func (s *MemoryStore) ListContacts(ctx context.Context, userID string) ([]Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	contacts, ok := s.byUser[userID]
	if !ok {
		contacts = s.defaults
	}
	return append([]Contact(nil), contacts...), nil
}

// SetContacts replaces the address book of a single user.
func (s *MemoryStore) SetContacts(userID string, contacts []Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byUser[userID] = append([]Contact(nil), contacts...)
}
