package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests and one-shot commands
// that should not touch the on-disk session.
type MemoryStore struct {
	mu       sync.RWMutex
	token    string
	username string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryStore) Username(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username, nil
}

func (s *MemoryStore) SaveLogin(ctx context.Context, username, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
	s.token = token
	return nil
}

func (s *MemoryStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) ClearToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.username = ""
	return nil
}

func (s *MemoryStore) Close() error { return nil }
