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

// dividendRepository implements the domain.DividendRepository interface using GORM.
type dividendRepository struct {
	db *gorm.DB
}

// NewDividendRepository is the constructor for dividendRepository.
func NewDividendRepository(db *gorm.DB) repository.DividendRepository {
	return &dividendRepository{db: db}
}

// Create persists a newly calculated dividend. The unique index on year
// is the final guard against two calculations for the same fiscal year.
func (repo *dividendRepository) Create(ctx context.Context, dividend *entity.Dividend) error {
	dividendM := fromDividendDomain(dividend)

	if err := repo.db.WithContext(ctx).Create(dividendM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDividendYearExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dividend")
	}

	dividend.ID = dividendM.ID
	dividend.CreatedAt = dividendM.CreatedAt
	dividend.UpdatedAt = dividendM.UpdatedAt

	return nil
}

// FindByID retrieves a single dividend.
func (repo *dividendRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dividend, error) {
	var dividendM model.DividendModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dividendM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDividendNotFound
		}

		return nil, errors.Wrap(err, "failed to find dividend by id")
	}

	return toDividendDomain(&dividendM), nil
}

// FindByYear retrieves the dividend for a fiscal year.
func (repo *dividendRepository) FindByYear(ctx context.Context, year int) (*entity.Dividend, error) {
	var dividendM model.DividendModel
	err := repo.db.WithContext(ctx).
		Where("year = ?", year).
		First(&dividendM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDividendNotFound
		}

		return nil, errors.Wrap(err, "failed to find dividend by year")
	}

	return toDividendDomain(&dividendM), nil
}

// Update persists a status transition or cancellation reason.
func (repo *dividendRepository) Update(ctx context.Context, dividend *entity.Dividend) error {
	dividendM := fromDividendDomain(dividend)

	if err := repo.db.WithContext(ctx).Save(dividendM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update dividend")
	}

	dividend.UpdatedAt = dividendM.UpdatedAt

	return nil
}

// CreateDistribution persists one member's payout record.
func (repo *dividendRepository) CreateDistribution(ctx context.Context, dist *entity.DividendDistribution) error {
	distM := fromDistributionDomain(dist)

	if err := repo.db.WithContext(ctx).Create(distM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("member already has a distribution for this dividend")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dividend distribution")
	}

	dist.ID = distM.ID
	dist.CreatedAt = distM.CreatedAt
	dist.UpdatedAt = distM.UpdatedAt

	return nil
}

// FindDistributions retrieves all payout records of a dividend.
func (repo *dividendRepository) FindDistributions(ctx context.Context, dividendID uuid.UUID) ([]*entity.DividendDistribution, error) {
	var distModels []model.DividendDistributionModel
	err := repo.db.WithContext(ctx).
		Where("dividend_id = ?", dividendID).
		Order("created_at ASC").
		Find(&distModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find dividend distributions")
	}

	dists := make([]*entity.DividendDistribution, 0, len(distModels))
	for i := range distModels {
		dists = append(dists, toDistributionDomain(&distModels[i]))
	}

	return dists, nil
}

// UpdateDistribution persists a payout state change.
func (repo *dividendRepository) UpdateDistribution(ctx context.Context, dist *entity.DividendDistribution) error {
	distM := fromDistributionDomain(dist)

	if err := repo.db.WithContext(ctx).Save(distM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update dividend distribution")
	}

	dist.UpdatedAt = distM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toDividendDomain converts a GORM DividendModel to a domain Dividend entity.
func toDividendDomain(data *model.DividendModel) *entity.Dividend {
	if data == nil {
		return nil
	}

	return &entity.Dividend{
		ID:                       data.ID,
		Year:                     data.Year,
		TotalProfit:              data.TotalProfit,
		DistributionPercentage:   data.DistributionPercentage,
		DistributableAmount:      data.DistributableAmount,
		TotalShares:              data.TotalShares,
		RatePerShare:             data.RatePerShare,
		WithholdingTaxPercentage: data.WithholdingTaxPercentage,
		Status:                   entity.DividendStatus(data.Status),
		CancellationReason:       data.CancellationReason,
		ApprovedBy:               data.ApprovedBy,
		DistributedAt:            data.DistributedAt,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}

// fromDividendDomain converts a domain Dividend entity to a GORM DividendModel.
func fromDividendDomain(data *entity.Dividend) *model.DividendModel {
	if data == nil {
		return nil
	}

	return &model.DividendModel{
		ID:                       data.ID,
		Year:                     data.Year,
		TotalProfit:              data.TotalProfit,
		DistributionPercentage:   data.DistributionPercentage,
		DistributableAmount:      data.DistributableAmount,
		TotalShares:              data.TotalShares,
		RatePerShare:             data.RatePerShare,
		WithholdingTaxPercentage: data.WithholdingTaxPercentage,
		Status:                   data.Status.String(),
		CancellationReason:       data.CancellationReason,
		ApprovedBy:               data.ApprovedBy,
		DistributedAt:            data.DistributedAt,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}

// toDistributionDomain converts a GORM DividendDistributionModel to a domain entity.
func toDistributionDomain(data *model.DividendDistributionModel) *entity.DividendDistribution {
	if data == nil {
		return nil
	}

	return &entity.DividendDistribution{
		ID:             data.ID,
		DividendID:     data.DividendID,
		MemberID:       data.MemberID,
		SharesHeld:     data.SharesHeld,
		GrossAmount:    data.GrossAmount,
		WithholdingTax: data.WithholdingTax,
		NetAmount:      data.NetAmount,
		Status:         entity.DistributionStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromDistributionDomain converts a domain DividendDistribution entity to a GORM model.
func fromDistributionDomain(data *entity.DividendDistribution) *model.DividendDistributionModel {
	if data == nil {
		return nil
	}

	return &model.DividendDistributionModel{
		ID:             data.ID,
		DividendID:     data.DividendID,
		MemberID:       data.MemberID,
		SharesHeld:     data.SharesHeld,
		GrossAmount:    data.GrossAmount,
		WithholdingTax: data.WithholdingTax,
		NetAmount:      data.NetAmount,
		Status:         string(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
