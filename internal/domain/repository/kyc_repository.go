// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"tesotunes/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDocumentNotFound is returned when a KYC document does not exist.
var ErrDocumentNotFound = errors.New("kyc document not found")

// KYCRepository defines the operations for KYC document persistence.
// Documents are written once during onboarding and mutated only by
// admin review actions.
type KYCRepository interface {
	// Create persists one uploaded identity document.
	Create(ctx context.Context, doc *entity.KYCDocument) error

	// FindByID retrieves a single document.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.KYCDocument, error)

	// FindByUserID retrieves all documents uploaded by a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.KYCDocument, error)

	// ListByStatus retrieves documents in a given review state, for the admin queue.
	ListByStatus(ctx context.Context, status entity.DocumentStatus) ([]*entity.KYCDocument, error)

	// Update persists a review decision on a document.
	Update(ctx context.Context, doc *entity.KYCDocument) error
}
