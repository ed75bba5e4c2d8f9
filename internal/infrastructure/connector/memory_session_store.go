package connector

import (
	"context"
	"sync"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
)

// memorySessionStore is the in-process fallback used when Redis is disabled
type memorySessionStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemorySessionStore creates a SessionStore held in process memory
func NewMemorySessionStore() accounts.SessionStore {
	return &memorySessionStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *memorySessionStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, until := range s.revoked {
		if !now.Before(until) {
			delete(s.revoked, id)
		}
	}
	s.revoked[tokenID] = now.Add(ttl)
	return nil
}

func (s *memorySessionStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[tokenID]
	return ok && s.now().Before(until), nil
}
