package session

import (
	"context"
	"encoding/json"
	"sync"

	"tesotunes/internal/domain/entity"
	"tesotunes/internal/domain/repository"
	"tesotunes/internal/errors"
)

// memoryStore is an in-process RegistrationStore for tests and local
// development without Redis. Sessions round-trip through JSON the same
// way the Redis store serializes them, so data bags behave identically.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

// NewMemoryStore is the constructor for memoryStore.
func NewMemoryStore() repository.RegistrationStore {
	return &memoryStore{
		sessions: make(map[string][]byte),
	}
}

// Get retrieves the session for a key.
func (s *memoryStore) Get(_ context.Context, key string) (*entity.RegistrationSession, error) {
	s.mu.RLock()
	raw, ok := s.sessions[key]
	s.mu.RUnlock()

	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	var session entity.RegistrationSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode registration session")
	}

	return &session, nil
}

// Put stores or replaces the session for a key.
func (s *memoryStore) Put(_ context.Context, key string, session *entity.RegistrationSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode registration session")
	}

	s.mu.Lock()
	s.sessions[key] = raw
	s.mu.Unlock()

	return nil
}

// Delete discards the session for a key. Deleting a missing key is not an error.
func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.sessions, key)
	s.mu.Unlock()

	return nil
}
