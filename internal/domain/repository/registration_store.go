// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"tesotunes/internal/domain/entity"
)

// ErrSessionNotFound is returned when no registration session exists for the key.
var ErrSessionNotFound = errors.New("registration session not found")

// RegistrationStore is a keyed store for in-flight onboarding wizard
// sessions. State is scoped per browser session key, injected rather
// than ambient, so tests can substitute an in-memory implementation.
type RegistrationStore interface {
	// Get retrieves the session for a key.
	Get(ctx context.Context, key string) (*entity.RegistrationSession, error)

	// Put stores or replaces the session for a key.
	Put(ctx context.Context, key string, session *entity.RegistrationSession) error

	// Delete discards the session for a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
