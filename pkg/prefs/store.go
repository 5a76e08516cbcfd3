// Package prefs keeps per-user provider and voice selections in memory.
// Nothing here survives a restart; selections are re-seeded from the
// configured defaults on first contact.
package prefs

import (
	"sync"

	"github.com/rahulz09/scriptvoice/pkg/catalog"
)

// Preferences is a snapshot of one user's current selections.
type Preferences struct {
	Provider catalog.Provider
	Voices   map[catalog.Provider]string
}

// Voice returns the selected voice for the user's current provider.
func (p Preferences) Voice() string {
	return p.Voices[p.Provider]
}

type record struct {
	provider catalog.Provider
	voices   map[catalog.Provider]string
}

// Store is a mutex-guarded user preference map. The store-level lock
// serializes concurrent selection events from the same user (a
// double-tapped button races safely, last write wins).
type Store struct {
	mu       sync.RWMutex
	users    map[int64]*record
	defaults Preferences
}

// NewStore creates a store seeding new users with the given defaults.
func NewStore(defaultProvider catalog.Provider, defaultVoices map[catalog.Provider]string) *Store {
	voices := make(map[catalog.Provider]string, len(defaultVoices))
	for p, v := range defaultVoices {
		voices[p] = v
	}
	return &Store{
		users: make(map[int64]*record),
		defaults: Preferences{
			Provider: defaultProvider,
			Voices:   voices,
		},
	}
}

// GetOrCreate returns the user's preferences, creating the record from
// defaults on first contact. The returned value is a snapshot; mutations
// go through SetProvider and SetVoice.
func (s *Store) GetOrCreate(userID int64) Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(userID).snapshot()
}

// SetProvider records the user's provider selection.
func (s *Store) SetProvider(userID int64, p catalog.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreateLocked(userID).provider = p
}

// SetVoice records the user's voice selection for the given provider.
func (s *Store) SetVoice(userID int64, p catalog.Provider, voiceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreateLocked(userID).voices[p] = voiceID
}

// Len returns the number of known users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func (s *Store) getOrCreateLocked(userID int64) *record {
	if rec, ok := s.users[userID]; ok {
		return rec
	}
	voices := make(map[catalog.Provider]string, len(s.defaults.Voices))
	for p, v := range s.defaults.Voices {
		voices[p] = v
	}
	rec := &record{provider: s.defaults.Provider, voices: voices}
	s.users[userID] = rec
	return rec
}

func (r *record) snapshot() Preferences {
	voices := make(map[catalog.Provider]string, len(r.voices))
	for p, v := range r.voices {
		voices[p] = v
	}
	return Preferences{Provider: r.provider, Voices: voices}
}
