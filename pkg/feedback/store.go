// Package feedback owns the canonical in-memory feedback collection and the
// company profile shared by the analysis components. State lives for the
// process lifetime only; durability is deliberately out of scope.
package feedback

import (
	"sync"

	"github.com/brandpulseai/brandpulse/pkg/types"
)

// Store is the append-only record collection. It is the single source of
// truth for every derived view; all other components hold read-only copies.
type Store struct {
	mu    sync.RWMutex
	items []types.FeedbackItem
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{items: []types.FeedbackItem{}}
}

// Append adds an item to the end of the collection. There is no
// deduplication and no size cap; unbounded growth is accepted.
func (s *Store) Append(item types.FeedbackItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// All returns the collection in insertion order. The result is a copy, so
// readers never observe a partially appended record and cannot mutate the
// canonical sequence.
func (s *Store) All() []types.FeedbackItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.FeedbackItem, len(s.items))
	copy(out, s.items)
	return out
}

// Recent returns up to n items, most recent first, for the activity feed.
// n <= 0 returns the whole collection reversed.
func (s *Store) Recent(n int) []types.FeedbackItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > len(s.items) {
		n = len(s.items)
	}
	out := make([]types.FeedbackItem, 0, n)
	for i := len(s.items) - 1; i >= len(s.items)-n; i-- {
		out = append(out, s.items[i])
	}
	return out
}

// Len reports the current number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Profiles holds the mutable company profile. The profile is replaced
// wholesale on each settings save and read by the ingestion and report
// components when building prompts.
type Profiles struct {
	mu      sync.RWMutex
	profile types.CompanyProfile
}

// NewProfiles creates a holder with an empty profile.
func NewProfiles() *Profiles {
	return &Profiles{}
}

// Get returns the current profile.
func (p *Profiles) Get() types.CompanyProfile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.profile
}

// Set replaces the profile wholesale.
func (p *Profiles) Set(profile types.CompanyProfile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profile = profile
}
