// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tesotunes/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity, including its artist profile, to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// ExistsByEmail reports whether any account already uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByPhone reports whether any account already uses the phone number.
	ExistsByPhone(ctx context.Context, phone string) (bool, error)

	// ExistsByUsername reports whether the derived handle is already taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByStageName reports whether any artist already uses the stage name.
	ExistsByStageName(ctx context.Context, stageName string) (bool, error)

	// ExistsByNationalID reports whether any artist already registered the NIN.
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)

	// AssignRole grants a capability role to the user.
	AssignRole(ctx context.Context, userID uuid.UUID, role entity.Role) error

	// FindRoles returns all roles granted to the user.
	FindRoles(ctx context.Context, userID uuid.UUID) (entity.Roles, error)
}
