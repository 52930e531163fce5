// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tesotunes/internal/domain/entity"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/repository"
	"tesotunes/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authRepository implements the domain.AuthRepository interface using GORM.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateAuthentication persists a new authentication method.
func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authM := fromAuthDomain(auth)

	if err := repo.db.WithContext(ctx).Create(authM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.ID = authM.ID
	auth.CreatedAt = authM.CreatedAt

	return nil
}

// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
func (repo *authRepository) FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error) {
	var authM model.AuthenticationModel
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&authM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	return toAuthDomain(&authM), nil
}

// --- Mapper Functions ---

// toAuthDomain converts a GORM AuthenticationModel to a domain Authentication entity.
func toAuthDomain(data *model.AuthenticationModel) *entity.Authentication {
	if data == nil {
		return nil
	}

	return &entity.Authentication{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}

// fromAuthDomain converts a domain Authentication entity to a GORM AuthenticationModel.
func fromAuthDomain(data *entity.Authentication) *model.AuthenticationModel {
	if data == nil {
		return nil
	}

	return &model.AuthenticationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}
