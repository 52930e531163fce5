// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"tesotunes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for dividend persistence.
var (
	// ErrDividendNotFound is returned when a dividend does not exist.
	ErrDividendNotFound = errors.New("dividend not found")
	// ErrDividendYearExists is returned when a dividend already exists for the year.
	ErrDividendYearExists = errors.New("dividend for this year already exists")
)

// DividendRepository defines the operations for dividend persistence.
type DividendRepository interface {
	// Create persists a newly calculated dividend.
	Create(ctx context.Context, dividend *entity.Dividend) error

	// FindByID retrieves a single dividend.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dividend, error)

	// FindByYear retrieves the dividend for a fiscal year.
	FindByYear(ctx context.Context, year int) (*entity.Dividend, error)

	// Update persists a status transition or cancellation reason.
	Update(ctx context.Context, dividend *entity.Dividend) error

	// CreateDistribution persists one member's payout record.
	CreateDistribution(ctx context.Context, dist *entity.DividendDistribution) error

	// FindDistributions retrieves all payout records of a dividend.
	FindDistributions(ctx context.Context, dividendID uuid.UUID) ([]*entity.DividendDistribution, error)

	// UpdateDistribution persists a payout state change.
	UpdateDistribution(ctx context.Context, dist *entity.DividendDistribution) error
}

// ShareRepository defines the operations for member share accounts.
type ShareRepository interface {
	// FindByMemberID retrieves one member's share account.
	FindByMemberID(ctx context.Context, memberID uuid.UUID) (*entity.ShareAccount, error)

	// ListActiveHolders retrieves active accounts with shares held > 0.
	ListActiveHolders(ctx context.Context) ([]*entity.ShareAccount, error)

	// TotalShares sums shares held across all active accounts.
	TotalShares(ctx context.Context) (decimal.Decimal, error)

	// CreditBalance adds the given net amount to a member's balance.
	CreditBalance(ctx context.Context, memberID uuid.UUID, amount decimal.Decimal) error
}
