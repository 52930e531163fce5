// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tesotunes/internal/domain/entity"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/repository"
	"tesotunes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// kycRepository implements the domain.KYCRepository interface using GORM.
type kycRepository struct {
	db *gorm.DB
}

// NewKYCRepository is the constructor for kycRepository.
func NewKYCRepository(db *gorm.DB) repository.KYCRepository {
	return &kycRepository{db: db}
}

// Create persists one uploaded identity document.
func (repo *kycRepository) Create(ctx context.Context, doc *entity.KYCDocument) error {
	docM := fromKYCDomain(doc)

	if err := repo.db.WithContext(ctx).Create(docM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create kyc document")
	}

	doc.ID = docM.ID
	doc.CreatedAt = docM.CreatedAt
	doc.UpdatedAt = docM.UpdatedAt

	return nil
}

// FindByID retrieves a single document.
func (repo *kycRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.KYCDocument, error) {
	var docM model.KYCDocumentModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&docM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find kyc document by id")
	}

	return toKYCDomain(&docM), nil
}

// FindByUserID retrieves all documents uploaded by a user.
func (repo *kycRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.KYCDocument, error) {
	var docModels []model.KYCDocumentModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&docModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find kyc documents by user id")
	}

	return toKYCDomainList(docModels), nil
}

// ListByStatus retrieves documents in a given review state, oldest first
// so the admin queue is worked in upload order.
func (repo *kycRepository) ListByStatus(ctx context.Context, status entity.DocumentStatus) ([]*entity.KYCDocument, error) {
	var docModels []model.KYCDocumentModel
	err := repo.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at ASC").
		Find(&docModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list kyc documents by status")
	}

	return toKYCDomainList(docModels), nil
}

// Update persists a review decision on a document.
func (repo *kycRepository) Update(ctx context.Context, doc *entity.KYCDocument) error {
	docM := fromKYCDomain(doc)

	if err := repo.db.WithContext(ctx).Save(docM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update kyc document")
	}

	doc.UpdatedAt = docM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toKYCDomain converts a GORM KYCDocumentModel to a domain KYCDocument entity.
func toKYCDomain(data *model.KYCDocumentModel) *entity.KYCDocument {
	if data == nil {
		return nil
	}

	return &entity.KYCDocument{
		ID:              data.ID,
		UserID:          data.UserID,
		Type:            entity.DocumentType(data.Type),
		Path:            data.Path,
		OriginalName:    data.OriginalName,
		MimeType:        data.MimeType,
		SizeBytes:       data.SizeBytes,
		Status:          entity.DocumentStatus(data.Status),
		VerifiedBy:      data.VerifiedBy,
		RejectionReason: data.RejectionReason,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toKYCDomainList(models []model.KYCDocumentModel) []*entity.KYCDocument {
	docs := make([]*entity.KYCDocument, 0, len(models))
	for i := range models {
		docs = append(docs, toKYCDomain(&models[i]))
	}

	return docs
}

// fromKYCDomain converts a domain KYCDocument entity to a GORM KYCDocumentModel.
func fromKYCDomain(data *entity.KYCDocument) *model.KYCDocumentModel {
	if data == nil {
		return nil
	}

	return &model.KYCDocumentModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Type:            data.Type.String(),
		Path:            data.Path,
		OriginalName:    data.OriginalName,
		MimeType:        data.MimeType,
		SizeBytes:       data.SizeBytes,
		Status:          string(data.Status),
		VerifiedBy:      data.VerifiedBy,
		RejectionReason: data.RejectionReason,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
