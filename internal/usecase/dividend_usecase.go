package usecase

import (
	"context"

	"tesotunes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CalculateDividendInput defines the data required to compute a fiscal
// year's dividend and its per-member distributions.
type CalculateDividendInput struct {
	Year                     int
	TotalProfit              decimal.Decimal
	DistributionPercentage   decimal.Decimal
	WithholdingTaxPercentage decimal.Decimal
	ActorID                  uuid.UUID
}

// DividendDetailOutput returns a dividend together with its
// per-member distribution records.
type DividendDetailOutput struct {
	Dividend      *entity.Dividend
	Distributions []*entity.DividendDistribution
}

// DividendUsecase defines the interface for the dividend distribution
// engine. A dividend moves strictly forward: calculated → approved →
// distributed, or cancelled from either pre-distributed state; once
// distributed it is immutable.
type DividendUsecase interface {
	// Calculate creates the dividend and one distribution per active
	// member with shares held, inside one transaction.
	Calculate(ctx context.Context, input *CalculateDividendInput) (*entity.Dividend, error)

	// Get retrieves a dividend and its distributions.
	Get(ctx context.Context, dividendID uuid.UUID) (*DividendDetailOutput, error)

	// Approve authorizes a calculated dividend.
	Approve(ctx context.Context, dividendID, approverID uuid.UUID) (*entity.Dividend, error)

	// Distribute moves the funds: re-checks the over-distribution
	// invariant, credits member balances, marks distributions paid, and
	// stamps distributed_at, all in one transaction.
	Distribute(ctx context.Context, dividendID, actorID uuid.UUID) (*entity.Dividend, error)

	// Cancel abandons a calculated or approved dividend. A reason is
	// mandatory and kept for audit.
	Cancel(ctx context.Context, dividendID, actorID uuid.UUID, reason string) (*entity.Dividend, error)
}
