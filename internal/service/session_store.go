package service

import (
	"context"
	"sync"
	"time"
)

// SessionStore holds string-keyed fields scoped to one session ID. No
// guarantees beyond per-key get/set and explicit deletion; SetFields writes
// its map in one call so the verification slot lands together.
type SessionStore interface {
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
	Set(ctx context.Context, sessionID, key, value string) error
	SetFields(ctx context.Context, sessionID string, fields map[string]string) error
	Delete(ctx context.Context, sessionID, key string) error
	Clear(ctx context.Context, sessionID string) error
}

type memorySessionEntry struct {
	fields    map[string]string
	expiresAt time.Time
}

type InMemorySessionStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]*memorySessionEntry
	cleanup time.Time
}

func NewInMemorySessionStore(ttl time.Duration) *InMemorySessionStore {
	return &InMemorySessionStore{
		ttl:     ttl,
		entries: map[string]*memorySessionEntry{},
		cleanup: time.Now().Add(ttl),
	}
}

func (s *InMemorySessionStore) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	now := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[sessionID]
	if !ok || now.After(entry.expiresAt) {
		return "", false, nil
	}
	value, ok := entry.fields[key]
	return value, ok, nil
}

func (s *InMemorySessionStore) Set(ctx context.Context, sessionID, key, value string) error {
	return s.SetFields(ctx, sessionID, map[string]string{key: value})
}

func (s *InMemorySessionStore) SetFields(_ context.Context, sessionID string, fields map[string]string) error {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(now)
	entry, ok := s.entries[sessionID]
	if !ok || now.After(entry.expiresAt) {
		entry = &memorySessionEntry{fields: map[string]string{}}
		s.entries[sessionID] = entry
	}
	for k, v := range fields {
		entry.fields[k] = v
	}
	entry.expiresAt = now.Add(s.ttl)
	return nil
}

func (s *InMemorySessionStore) Delete(_ context.Context, sessionID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.entries[sessionID]; ok {
		delete(entry.fields, key)
	}
	return nil
}

func (s *InMemorySessionStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}

func (s *InMemorySessionStore) sweepLocked(now time.Time) {
	if now.Before(s.cleanup) {
		return
	}
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
	s.cleanup = now.Add(s.ttl)
}
