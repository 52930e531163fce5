package impl

import (
	"context"
	"log/slog"

	deliverycontext "tesotunes/internal/delivery/context"
	"tesotunes/internal/domain/entity"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/repository"
	"tesotunes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// kycService implements the KYCUsecase interface.
type kycService struct {
	txManager repository.TransactionManager
	kycRepo   repository.KYCRepository
	logger    *slog.Logger
}

// KYCServiceParams holds dependencies for KYCService, injected by Fx.
type KYCServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	KYCRepo   repository.KYCRepository
	Logger    *slog.Logger
}

// NewKYCService is the constructor for kycService.
func NewKYCService(params KYCServiceParams) usecase.KYCUsecase {
	return &kycService{
		txManager: params.TxManager,
		kycRepo:   params.KYCRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *kycService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPending retrieves documents awaiting review.
func (srv *kycService) ListPending(ctx context.Context) ([]*entity.KYCDocument, error) {
	docs, err := srv.kycRepo.ListByStatus(ctx, entity.DocumentPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending documents")
	}

	return docs, nil
}

// Approve marks a pending document active.
func (srv *kycService) Approve(ctx context.Context, documentID, reviewerID uuid.UUID) (*entity.KYCDocument, error) {
	return srv.review(ctx, documentID, reviewerID, entity.DocumentActive, "")
}

// Reject marks a pending document rejected. The reason travels back to
// the applicant.
func (srv *kycService) Reject(ctx context.Context, documentID, reviewerID uuid.UUID, reason string) (*entity.KYCDocument, error) {
	if reason == "" {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field: "reason", Code: "REQUIRED", Message: "A rejection reason is required",
		})
	}

	return srv.review(ctx, documentID, reviewerID, entity.DocumentRejected, reason)
}

// review applies one admin decision. A document is reviewed at most
// once; the applicant can never mutate it after upload.
func (srv *kycService) review(ctx context.Context, documentID, reviewerID uuid.UUID, status entity.DocumentStatus, reason string) (*entity.KYCDocument, error) {
	var reviewed *entity.KYCDocument

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		kycRepo := repoFactory.KYCRepo()
		auditRepo := repoFactory.AuditRepo()

		doc, err := kycRepo.FindByID(ctx, documentID)
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return errors.Wrap(domainerrors.ErrDocumentNotFound, "document lookup failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find document")
		}

		if doc.Reviewed() {
			return errors.Wrap(domainerrors.ErrDocumentAlreadyReviewed, "document review rejected")
		}

		doc.Status = status
		doc.VerifiedBy = &reviewerID
		doc.RejectionReason = reason

		if err := kycRepo.Update(ctx, doc); err != nil {
			return errors.Wrap(err, "failed to persist document review")
		}

		entry := &entity.AuditLog{
			ActorID:     &reviewerID,
			Action:      "kyc." + string(status),
			SubjectType: "kyc_document",
			SubjectID:   doc.ID,
			Detail: map[string]any{
				"type":   doc.Type.String(),
				"owner":  doc.UserID.String(),
				"reason": reason,
			},
		}
		if err := auditRepo.Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to write review audit entry")
		}

		reviewed = doc

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute document review transaction", slog.Any("documentID", documentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute document review transaction")
	}

	srv.log(ctx).Info("KYC document reviewed", slog.Any("documentID", documentID), slog.String("status", string(status)))

	return reviewed, nil
}
