package server

import (
	"time"

	"github.com/etnz/positions"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Store keeps finished analyses in memory until they expire.
type Store struct {
	c *cache.Cache
}

// NewStore returns a store whose entries live for 'ttl' after their last access.
func NewStore(ttl time.Duration) *Store {
	return &Store{c: cache.New(ttl, 2*ttl)}
}

// Put stores 'a' and returns its new identifier.
func (s *Store) Put(a *positions.Analysis) string {
	id := uuid.NewString()
	s.c.SetDefault(id, a)
	return id
}

// Get returns the analysis stored under 'id' and extends its life.
func (s *Store) Get(id string) (*positions.Analysis, bool) {
	v, ok := s.c.Get(id)
	if !ok {
		return nil, false
	}
	a := v.(*positions.Analysis)
	s.c.SetDefault(id, a)
	return a, true
}

// Len returns the number of stored analyses, expired ones included until cleaned up.
func (s *Store) Len() int { return s.c.ItemCount() }
