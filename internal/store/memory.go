package store

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/attune-health/attune/internal/domain"
)

const (
	DefaultContextTTL  = 30 * time.Minute
	DefaultMaxSessions = 10000
)

type memoryEntry struct {
	sessionID string
	cc        *domain.ConversationContext
	expiresAt time.Time
	elem      *list.Element
}

// MemoryStore is the in-process context store. A single mutex serializes
// all read-modify-write cycles, so concurrent turns for the same session
// cannot drop each other's updates. Memory is bounded by a TTL plus an LRU
// cap on session count.
type MemoryStore struct {
	mu         sync.Mutex
	entries    map[string]*memoryEntry
	lru        *list.List // front = most recently used
	ttl        time.Duration
	maxEntries int
}

// NewMemoryStore creates an in-memory store. Non-positive arguments take
// the package defaults.
func NewMemoryStore(ttl time.Duration, maxEntries int) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultContextTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxSessions
	}
	return &MemoryStore{
		entries:    make(map[string]*memoryEntry),
		lru:        list.New(),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*domain.ConversationContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		if ok {
			s.removeLocked(e)
		}
		return nil, domain.ErrContextNotFound
	}
	s.touchLocked(e)
	return e.cc.Clone(), nil
}

func (s *MemoryStore) Update(ctx context.Context, sessionID string, fn func(*domain.ConversationContext)) (*domain.ConversationContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if ok && time.Now().After(e.expiresAt) {
		s.removeLocked(e)
		ok = false
	}
	if !ok {
		e = &memoryEntry{
			sessionID: sessionID,
			cc:        domain.NewConversationContext(sessionID),
		}
		e.elem = s.lru.PushFront(e)
		s.entries[sessionID] = e
		s.evictOverCapLocked()
	}

	// Work on a copy so a panicking fn cannot leave a half-written snapshot.
	next := e.cc.Clone()
	fn(next)
	next.UpdatedAt = time.Now().UTC()
	e.cc = next
	s.touchLocked(e)

	return next.Clone(), nil
}

func (s *MemoryStore) Evict(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[sessionID]; ok {
		s.removeLocked(e)
	}
	return nil
}

func (s *MemoryStore) PruneExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	pruned := 0
	for _, e := range s.entries {
		if now.After(e.expiresAt) {
			s.removeLocked(e)
			pruned++
		}
	}
	return pruned, nil
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) touchLocked(e *memoryEntry) {
	e.expiresAt = time.Now().Add(s.ttl)
	s.lru.MoveToFront(e.elem)
}

func (s *MemoryStore) removeLocked(e *memoryEntry) {
	s.lru.Remove(e.elem)
	delete(s.entries, e.sessionID)
}

func (s *MemoryStore) evictOverCapLocked() {
	for len(s.entries) > s.maxEntries {
		oldest := s.lru.Back()
		if oldest == nil {
			return
		}
		s.removeLocked(oldest.Value.(*memoryEntry))
	}
}
