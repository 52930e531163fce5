package usecase

import (
	"context"

	"tesotunes/internal/domain/entity"

	"github.com/google/uuid"
)

// KYCUsecase defines the admin review surface for uploaded identity
// documents. Applicants never mutate a document after upload.
type KYCUsecase interface {
	// ListPending retrieves documents awaiting review.
	ListPending(ctx context.Context) ([]*entity.KYCDocument, error)

	// Approve marks a pending document active.
	Approve(ctx context.Context, documentID, reviewerID uuid.UUID) (*entity.KYCDocument, error)

	// Reject marks a pending document rejected with a reason.
	Reject(ctx context.Context, documentID, reviewerID uuid.UUID, reason string) (*entity.KYCDocument, error)
}
