package impl

import (
	"context"
	"log/slog"
	"time"

	"tesotunes/config"
	deliverycontext "tesotunes/internal/delivery/context"
	"tesotunes/internal/domain/entity"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/repository"
	"tesotunes/internal/infra/metrics"
	"tesotunes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// dividendService implements the DividendUsecase interface.
type dividendService struct {
	txManager    repository.TransactionManager
	dividendRepo repository.DividendRepository
	defaultTax   decimal.Decimal
	logger       *slog.Logger
}

// DividendServiceParams holds dependencies for DividendService, injected by Fx.
type DividendServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DividendRepo repository.DividendRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDividendService is the constructor for dividendService.
func NewDividendService(params DividendServiceParams) usecase.DividendUsecase {
	defaultTax := decimal.Zero
	if params.Config != nil && params.Config.Sacco != nil {
		defaultTax = decimal.NewFromFloat(params.Config.Sacco.DefaultWithholdingTaxPct)
	}

	return &dividendService{
		txManager:    params.TxManager,
		dividendRepo: params.DividendRepo,
		defaultTax:   defaultTax,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dividendService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Calculate creates the year's dividend and one distribution per active
// member holding shares, all inside one transaction. The dividend lands
// in the calculated state: nothing is authorized and no balance moves.
func (srv *dividendService) Calculate(ctx context.Context, input *usecase.CalculateDividendInput) (*entity.Dividend, error) {
	if !input.TotalProfit.IsPositive() || !input.DistributionPercentage.IsPositive() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field: "total_profit", Code: "INVALID", Message: "Profit and distribution percentage must be positive",
		})
	}

	taxPct := input.WithholdingTaxPercentage
	if taxPct.IsZero() {
		taxPct = srv.defaultTax
	}

	var created *entity.Dividend

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dividendRepo := repoFactory.DividendRepo()
		shareRepo := repoFactory.ShareRepo()
		auditRepo := repoFactory.AuditRepo()

		_, err := dividendRepo.FindByYear(ctx, input.Year)
		if err == nil {
			return errors.Wrapf(domainerrors.ErrDividendYearExists, "dividend for %d already calculated", input.Year)
		}
		if !errors.Is(err, repository.ErrDividendNotFound) {
			return errors.Wrap(err, "failed to check existing dividend")
		}

		totalShares, err := shareRepo.TotalShares(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to sum outstanding shares")
		}
		if !totalShares.IsPositive() {
			return errors.Wrap(domainerrors.ErrValidationFailed, "no outstanding shares to distribute over")
		}

		dividend := &entity.Dividend{
			Year:                     input.Year,
			TotalProfit:              input.TotalProfit,
			DistributionPercentage:   input.DistributionPercentage,
			TotalShares:              totalShares,
			WithholdingTaxPercentage: taxPct,
			Status:                   entity.DividendCalculated,
		}
		dividend.ComputeDerived()

		if err := dividendRepo.Create(ctx, dividend); err != nil {
			return errors.Wrap(err, "failed to create dividend")
		}

		holders, err := shareRepo.ListActiveHolders(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list active shareholders")
		}

		for _, holder := range holders {
			if !holder.SharesHeld.IsPositive() {
				continue
			}
			dist := &entity.DividendDistribution{
				DividendID: dividend.ID,
				MemberID:   holder.MemberID,
				SharesHeld: holder.SharesHeld,
				Status:     entity.DistributionPending,
			}
			dist.ComputeAmounts(dividend.RatePerShare, dividend.WithholdingTaxPercentage)

			if err := dividendRepo.CreateDistribution(ctx, dist); err != nil {
				return errors.Wrapf(err, "failed to create distribution for member %s", holder.MemberID)
			}
		}

		entry := &entity.AuditLog{
			ActorID:     &input.ActorID,
			Action:      "dividend.calculated",
			SubjectType: "dividend",
			SubjectID:   dividend.ID,
			Detail: map[string]any{
				"year":                 dividend.Year,
				"distributable_amount": dividend.DistributableAmount.String(),
				"rate_per_share":       dividend.RatePerShare.String(),
			},
		}
		if err := auditRepo.Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to write dividend audit entry")
		}

		created = dividend

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute dividend calculation transaction", slog.Int("year", input.Year), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute dividend calculation transaction")
	}

	srv.log(ctx).Info("Dividend calculated", slog.Any("dividendID", created.ID), slog.Int("year", created.Year))

	return created, nil
}

// Get retrieves a dividend with its distributions.
func (srv *dividendService) Get(ctx context.Context, dividendID uuid.UUID) (*usecase.DividendDetailOutput, error) {
	dividend, err := srv.dividendRepo.FindByID(ctx, dividendID)
	if errors.Is(err, repository.ErrDividendNotFound) {
		return nil, errors.Wrap(domainerrors.ErrDividendNotFound, "dividend lookup failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find dividend")
	}

	distributions, err := srv.dividendRepo.FindDistributions(ctx, dividendID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dividend distributions")
	}

	return &usecase.DividendDetailOutput{
		Dividend:      dividend,
		Distributions: distributions,
	}, nil
}

// Approve authorizes a calculated dividend. Funds do not move here.
func (srv *dividendService) Approve(ctx context.Context, dividendID, approverID uuid.UUID) (*entity.Dividend, error) {
	return srv.transition(ctx, dividendID, approverID, entity.DividendApproved, "dividend.approved", func(dividend *entity.Dividend) {
		dividend.ApprovedBy = &approverID
	})
}

// Distribute moves the funds: the over-distribution invariant is
// re-checked against the persisted rows, member balances are credited,
// distributions marked paid, and the timestamp set, all in one
// transaction. After this the dividend is immutable.
func (srv *dividendService) Distribute(ctx context.Context, dividendID, actorID uuid.UUID) (*entity.Dividend, error) {
	var distributed *entity.Dividend

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dividendRepo := repoFactory.DividendRepo()
		shareRepo := repoFactory.ShareRepo()
		auditRepo := repoFactory.AuditRepo()

		dividend, err := dividendRepo.FindByID(ctx, dividendID)
		if errors.Is(err, repository.ErrDividendNotFound) {
			return errors.Wrap(domainerrors.ErrDividendNotFound, "dividend lookup failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find dividend")
		}

		if dividend.Status == entity.DividendDistributed {
			return errors.Wrap(domainerrors.ErrDividendImmutable, "dividend already distributed")
		}
		if !dividend.Status.CanTransitionTo(entity.DividendDistributed) {
			return errors.Wrapf(domainerrors.ErrDividendTransitionInvalid, "cannot distribute a %s dividend", dividend.Status)
		}

		distributions, err := dividendRepo.FindDistributions(ctx, dividendID)
		if err != nil {
			return errors.Wrap(err, "failed to load dividend distributions")
		}

		// Share totals can drift between calculation and distribution
		// time. Whether that is a bug upstream is unresolved; here the
		// invariant fails loudly instead of being silently capped.
		totalGross := decimal.Zero
		for _, dist := range distributions {
			totalGross = totalGross.Add(dist.GrossAmount)
		}
		if totalGross.GreaterThan(dividend.DistributableAmount) {
			return errors.Wrapf(domainerrors.ErrDividendOverDistribution,
				"gross sum %s exceeds distributable %s", totalGross, dividend.DistributableAmount)
		}

		for _, dist := range distributions {
			if dist.Status == entity.DistributionPaid {
				continue
			}
			if err := shareRepo.CreditBalance(ctx, dist.MemberID, dist.NetAmount); err != nil {
				return errors.Wrapf(err, "failed to credit member %s", dist.MemberID)
			}
			dist.Status = entity.DistributionPaid
			if err := dividendRepo.UpdateDistribution(ctx, dist); err != nil {
				return errors.Wrapf(err, "failed to mark distribution %s paid", dist.ID)
			}
		}

		now := time.Now()
		dividend.Status = entity.DividendDistributed
		dividend.DistributedAt = &now
		if err := dividendRepo.Update(ctx, dividend); err != nil {
			return errors.Wrap(err, "failed to persist distributed dividend")
		}

		entry := &entity.AuditLog{
			ActorID:     &actorID,
			Action:      "dividend.distributed",
			SubjectType: "dividend",
			SubjectID:   dividend.ID,
			Detail: map[string]any{
				"year":        dividend.Year,
				"total_gross": totalGross.String(),
				"members":     len(distributions),
			},
		}
		if err := auditRepo.Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to write distribution audit entry")
		}

		distributed = dividend

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute dividend distribution transaction", slog.Any("dividendID", dividendID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute dividend distribution transaction")
	}

	srv.log(ctx).Info("Dividend distributed", slog.Any("dividendID", dividendID), slog.Int("year", distributed.Year))
	metrics.DividendsDistributedTotal.Inc()

	return distributed, nil
}

// Cancel abandons a calculated or approved dividend. The reason is
// mandatory and kept for audit.
func (srv *dividendService) Cancel(ctx context.Context, dividendID, actorID uuid.UUID, reason string) (*entity.Dividend, error) {
	if reason == "" {
		return nil, errors.Wrap(domainerrors.ErrCancellationReasonRequired, "dividend cancellation")
	}

	return srv.transition(ctx, dividendID, actorID, entity.DividendCancelled, "dividend.cancelled", func(dividend *entity.Dividend) {
		dividend.CancellationReason = reason
	})
}

// transition applies a simple gate move with an audit entry.
func (srv *dividendService) transition(
	ctx context.Context,
	dividendID, actorID uuid.UUID,
	next entity.DividendStatus,
	auditAction string,
	mutate func(*entity.Dividend),
) (*entity.Dividend, error) {
	var updated *entity.Dividend

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dividendRepo := repoFactory.DividendRepo()
		auditRepo := repoFactory.AuditRepo()

		dividend, err := dividendRepo.FindByID(ctx, dividendID)
		if errors.Is(err, repository.ErrDividendNotFound) {
			return errors.Wrap(domainerrors.ErrDividendNotFound, "dividend lookup failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find dividend")
		}

		if dividend.Status == entity.DividendDistributed {
			return errors.Wrap(domainerrors.ErrDividendImmutable, "dividend already distributed")
		}
		if !dividend.Status.CanTransitionTo(next) {
			return errors.Wrapf(domainerrors.ErrDividendTransitionInvalid, "cannot move dividend from %s to %s", dividend.Status, next)
		}

		dividend.Status = next
		mutate(dividend)

		if err := dividendRepo.Update(ctx, dividend); err != nil {
			return errors.Wrap(err, "failed to persist dividend status")
		}

		entry := &entity.AuditLog{
			ActorID:     &actorID,
			Action:      auditAction,
			SubjectType: "dividend",
			SubjectID:   dividend.ID,
			Detail:      map[string]any{"year": dividend.Year},
		}
		if err := auditRepo.Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to write dividend audit entry")
		}

		updated = dividend

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute dividend transition transaction", slog.Any("dividendID", dividendID), slog.String("next", next.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute dividend transition transaction")
	}

	srv.log(ctx).Info("Dividend status changed", slog.Any("dividendID", dividendID), slog.String("status", next.String()))

	return updated, nil
}
