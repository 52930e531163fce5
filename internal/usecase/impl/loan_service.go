package impl

import (
	"context"
	"log/slog"

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

// loanService implements the LoanUsecase interface.
type loanService struct {
	txManager repository.TransactionManager
	loanRepo  repository.LoanRepository
	logger    *slog.Logger
}

// LoanServiceParams holds dependencies for LoanService, injected by Fx.
type LoanServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	LoanRepo  repository.LoanRepository
	Logger    *slog.Logger
}

// NewLoanService is the constructor for loanService.
func NewLoanService(params LoanServiceParams) usecase.LoanUsecase {
	return &loanService{
		txManager: params.TxManager,
		loanRepo:  params.LoanRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *loanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Apply creates a pending loan application with its derived fields
// computed before the row is written.
func (srv *loanService) Apply(ctx context.Context, input *usecase.ApplyLoanInput) (*entity.Loan, error) {
	if input.Principal.IsNegative() || input.InterestRate.IsNegative() || input.TenureMonths < 0 {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field: "principal", Code: "INVALID", Message: "Loan inputs must not be negative",
		})
	}

	loan := &entity.Loan{
		MemberID:     input.MemberID,
		Principal:    input.Principal,
		InterestRate: input.InterestRate,
		TenureMonths: input.TenureMonths,
		Status:       entity.LoanPending,
		Purpose:      input.Purpose,
	}
	loan.Recalculate()

	if err := srv.loanRepo.Create(ctx, loan); err != nil {
		srv.log(ctx).Error("Failed to create loan", slog.Any("memberID", input.MemberID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create loan")
	}

	srv.log(ctx).Info("Loan application created", slog.Any("loanID", loan.ID), slog.Any("memberID", loan.MemberID))
	metrics.LoansRecalculatedTotal.Inc()

	return loan, nil
}

// Get retrieves a single loan.
func (srv *loanService) Get(ctx context.Context, loanID uuid.UUID) (*entity.Loan, error) {
	loan, err := srv.loanRepo.FindByID(ctx, loanID)
	if errors.Is(err, repository.ErrLoanNotFound) {
		return nil, errors.Wrap(domainerrors.ErrLoanNotFound, "loan lookup failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find loan")
	}

	return loan, nil
}

// ListByMember retrieves all loans of one member.
func (srv *loanService) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Loan, error) {
	loans, err := srv.loanRepo.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list loans by member")
	}

	return loans, nil
}

// UpdateTerms changes principal, rate or tenure. The four derived fields
// are always refreshed together inside the same transaction as the write.
func (srv *loanService) UpdateTerms(ctx context.Context, input *usecase.UpdateLoanTermsInput) (*entity.Loan, error) {
	var updated *entity.Loan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loanRepo := repoFactory.LoanRepo()

		loan, err := loanRepo.FindByID(ctx, input.LoanID)
		if errors.Is(err, repository.ErrLoanNotFound) {
			return errors.Wrap(domainerrors.ErrLoanNotFound, "loan lookup failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find loan")
		}

		loan.Principal = input.Principal
		loan.InterestRate = input.InterestRate
		loan.TenureMonths = input.TenureMonths
		loan.Recalculate()

		if err := loanRepo.Update(ctx, loan); err != nil {
			return errors.Wrap(err, "failed to update loan terms")
		}
		updated = loan

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute loan terms update transaction", slog.Any("loanID", input.LoanID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute loan terms update transaction")
	}

	metrics.LoansRecalculatedTotal.Inc()

	return updated, nil
}

// RecordRepayment adds to amount paid and refreshes the balance; the
// loan auto-completes when the balance reaches zero.
func (srv *loanService) RecordRepayment(ctx context.Context, input *usecase.RecordRepaymentInput) (*entity.Loan, error) {
	if !input.Amount.IsPositive() {
		return nil, errors.Wrap(domainerrors.ErrRepaymentInvalid, "repayment amount must be positive")
	}

	var updated *entity.Loan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loanRepo := repoFactory.LoanRepo()

		loan, err := loanRepo.FindByID(ctx, input.LoanID)
		if errors.Is(err, repository.ErrLoanNotFound) {
			return errors.Wrap(domainerrors.ErrLoanNotFound, "loan lookup failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find loan")
		}

		if loan.Status != entity.LoanActive && loan.Status != entity.LoanOverdue {
			return errors.Wrap(domainerrors.ErrRepaymentInvalid, "loan is not accepting repayments")
		}
		if input.Amount.GreaterThan(loan.BalanceRemaining) {
			return errors.Wrap(domainerrors.ErrRepaymentInvalid, "repayment exceeds outstanding balance")
		}

		loan.AmountPaid = loan.AmountPaid.Add(input.Amount)
		loan.Recalculate()
		if loan.Settled() {
			loan.Status = entity.LoanCompleted
		} else if loan.Status == entity.LoanOverdue {
			loan.Status = entity.LoanActive
		}

		if err := loanRepo.Update(ctx, loan); err != nil {
			return errors.Wrap(err, "failed to persist repayment")
		}
		updated = loan

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute repayment transaction", slog.Any("loanID", input.LoanID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute repayment transaction")
	}

	srv.log(ctx).Info("Repayment recorded", slog.Any("loanID", updated.ID), slog.String("amount", input.Amount.String()), slog.String("balance", updated.BalanceRemaining.String()))
	metrics.LoansRecalculatedTotal.Inc()

	return updated, nil
}

// TransitionStatus moves the loan along a legal workflow edge.
func (srv *loanService) TransitionStatus(ctx context.Context, loanID uuid.UUID, next entity.LoanStatus) (*entity.Loan, error) {
	if !next.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrLoanTransitionInvalid, "unknown loan status")
	}

	var updated *entity.Loan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loanRepo := repoFactory.LoanRepo()

		loan, err := loanRepo.FindByID(ctx, loanID)
		if errors.Is(err, repository.ErrLoanNotFound) {
			return errors.Wrap(domainerrors.ErrLoanNotFound, "loan lookup failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find loan")
		}

		if !loan.Status.CanTransitionTo(next) {
			return errors.Wrapf(domainerrors.ErrLoanTransitionInvalid, "cannot move loan from %s to %s", loan.Status, next)
		}

		loan.Status = next
		if next == entity.LoanDisbursed {
			// Disbursement starts the repayment clock.
			loan.AmountPaid = decimal.Zero
			loan.Recalculate()
		}

		if err := loanRepo.Update(ctx, loan); err != nil {
			return errors.Wrap(err, "failed to persist loan status")
		}
		updated = loan

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute loan transition transaction", slog.Any("loanID", loanID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute loan transition transaction")
	}

	srv.log(ctx).Info("Loan status changed", slog.Any("loanID", loanID), slog.String("status", next.String()))

	return updated, nil
}
