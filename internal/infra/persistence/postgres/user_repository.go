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
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the artist profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("ArtistProfile").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading the artist profile.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("ArtistProfile").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its artist profile, to the database.
// GORM's Create with associations inserts into users and artist_profiles together.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return uniqueViolationError(err)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.ArtistProfile != nil && userM.ArtistProfile != nil {
		user.ArtistProfile.UserID = userM.ArtistProfile.UserID
		user.ArtistProfile.UpdatedAt = userM.ArtistProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing user entity, including its artist profile, in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	// Use Session with FullSaveAssociations to update the nested profile.
	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return uniqueViolationError(err)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInternal.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// ExistsByEmail reports whether any account already uses the email.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return repo.exists(ctx, "email = ?", email)
}

// ExistsByPhone reports whether any account already uses the phone number.
func (repo *userRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return repo.exists(ctx, "phone = ?", phone)
}

// ExistsByUsername reports whether the derived handle is already taken.
func (repo *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return repo.exists(ctx, "username = ?", username)
}

// ExistsByStageName reports whether any artist already uses the stage name.
// Stage names are matched case-insensitively, the way they collide for listeners.
func (repo *userRepository) ExistsByStageName(ctx context.Context, stageName string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ArtistProfileModel{}).
		Where("LOWER(stage_name) = LOWER(?)", stageName).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count artist profiles by stage name")
	}

	return count > 0, nil
}

// ExistsByNationalID reports whether any artist already registered the NIN.
func (repo *userRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ArtistProfileModel{}).
		Where("national_id_number = ?", nationalID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count artist profiles by national id")
	}

	return count > 0, nil
}

// AssignRole grants a capability role to the user. Granting an already
// held role is a no-op.
func (repo *userRepository) AssignRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	roleM := model.UserRoleModel{
		UserID: userID,
		Role:   role.String(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&roleM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to assign role")
	}

	return nil
}

// FindRoles returns all roles granted to the user.
func (repo *userRepository) FindRoles(ctx context.Context, userID uuid.UUID) (entity.Roles, error) {
	var roleModels []model.UserRoleModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&roleModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user roles")
	}

	roles := make(entity.Roles, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, entity.Role(roleM.Role))
	}

	return roles, nil
}

func (repo *userRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where(query, arg).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count users")
	}

	return count > 0, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                    data.ID,
		Email:                 data.Email,
		Phone:                 data.Phone,
		Username:              data.Username,
		FullName:              data.FullName,
		IsArtist:              data.IsArtist,
		ApplicationStatus:     entity.ApplicationStatus(data.ApplicationStatus),
		Status:                entity.AccountStatus(data.Status),
		PhoneVerifiedAt:       data.PhoneVerifiedAt,
		VerificationCode:      data.VerificationCode,
		VerificationExpiresAt: data.VerificationExpiresAt,
		ArtistProfile:         toArtistProfileDomain(data.ArtistProfile),
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                    data.ID,
		Email:                 data.Email,
		Phone:                 data.Phone,
		Username:              data.Username,
		FullName:              data.FullName,
		IsArtist:              data.IsArtist,
		ApplicationStatus:     string(data.ApplicationStatus),
		Status:                string(data.Status),
		PhoneVerifiedAt:       data.PhoneVerifiedAt,
		VerificationCode:      data.VerificationCode,
		VerificationExpiresAt: data.VerificationExpiresAt,
		ArtistProfile:         fromArtistProfileDomain(data.ArtistProfile),
	}
}

// toArtistProfileDomain converts a GORM ArtistProfileModel to a domain ArtistProfile entity.
func toArtistProfileDomain(data *model.ArtistProfileModel) *entity.ArtistProfile {
	if data == nil {
		return nil
	}

	return &entity.ArtistProfile{
		UserID:              data.UserID,
		StageName:           data.StageName,
		GenreID:             data.GenreID,
		Bio:                 data.Bio,
		AvatarPath:          data.AvatarPath,
		MobileMoneyProvider: data.MobileMoneyProvider,
		MobileMoneyNumber:   data.MobileMoneyNumber,
		NationalIDNumber:    data.NationalIDNumber,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromArtistProfileDomain converts a domain ArtistProfile entity to a GORM ArtistProfileModel.
func fromArtistProfileDomain(data *entity.ArtistProfile) *model.ArtistProfileModel {
	if data == nil {
		return nil
	}

	return &model.ArtistProfileModel{
		UserID:              data.UserID,
		StageName:           data.StageName,
		GenreID:             data.GenreID,
		Bio:                 data.Bio,
		AvatarPath:          data.AvatarPath,
		MobileMoneyProvider: data.MobileMoneyProvider,
		MobileMoneyNumber:   data.MobileMoneyNumber,
		NationalIDNumber:    data.NationalIDNumber,
		UpdatedAt:           data.UpdatedAt,
	}
}
