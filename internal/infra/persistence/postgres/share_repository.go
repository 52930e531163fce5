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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// shareRepository implements the domain.ShareRepository interface using GORM.
type shareRepository struct {
	db *gorm.DB
}

// NewShareRepository is the constructor for shareRepository.
func NewShareRepository(db *gorm.DB) repository.ShareRepository {
	return &shareRepository{db: db}
}

// FindByMemberID retrieves one member's share account.
func (repo *shareRepository) FindByMemberID(ctx context.Context, memberID uuid.UUID) (*entity.ShareAccount, error) {
	var accountM model.ShareAccountModel
	err := repo.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find share account by member id")
	}

	return toShareAccountDomain(&accountM), nil
}

// ListActiveHolders retrieves active accounts with shares held > 0.
func (repo *shareRepository) ListActiveHolders(ctx context.Context) ([]*entity.ShareAccount, error) {
	var accountModels []model.ShareAccountModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ? AND shares_held > 0", true).
		Order("created_at ASC").
		Find(&accountModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active share holders")
	}

	accounts := make([]*entity.ShareAccount, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, toShareAccountDomain(&accountModels[i]))
	}

	return accounts, nil
}

// TotalShares sums shares held across all active accounts.
func (repo *shareRepository) TotalShares(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := repo.db.WithContext(ctx).
		Model(&model.ShareAccountModel{}).
		Where("is_active = ?", true).
		Select("COALESCE(SUM(shares_held), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum active shares")
	}

	return total, nil
}

// CreditBalance adds the given net amount to a member's balance. The
// increment happens in SQL so concurrent credits never lose an update.
func (repo *shareRepository) CreditBalance(ctx context.Context, memberID uuid.UUID, amount decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShareAccountModel{}).
		Where("member_id = ?", memberID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to credit member balance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toShareAccountDomain converts a GORM ShareAccountModel to a domain ShareAccount entity.
func toShareAccountDomain(data *model.ShareAccountModel) *entity.ShareAccount {
	if data == nil {
		return nil
	}

	return &entity.ShareAccount{
		MemberID:   data.MemberID,
		SharesHeld: data.SharesHeld,
		Balance:    data.Balance,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
