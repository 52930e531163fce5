package usecase

import (
	"context"

	"tesotunes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApplyLoanInput defines the data required to open a loan application.
type ApplyLoanInput struct {
	MemberID     uuid.UUID
	Principal    decimal.Decimal
	InterestRate decimal.Decimal
	TenureMonths int
	Purpose      string
}

// UpdateLoanTermsInput changes the three computation inputs of a loan.
type UpdateLoanTermsInput struct {
	LoanID       uuid.UUID
	Principal    decimal.Decimal
	InterestRate decimal.Decimal
	TenureMonths int
}

// RecordRepaymentInput records a repayment against a loan.
type RecordRepaymentInput struct {
	LoanID uuid.UUID
	Amount decimal.Decimal
}

// LoanUsecase defines the interface for loan management use cases.
// The four derived fields are recomputed together before every persisted
// write that touches principal, rate, or tenure.
type LoanUsecase interface {
	// Apply creates a loan application in pending status with its
	// derived fields computed.
	Apply(ctx context.Context, input *ApplyLoanInput) (*entity.Loan, error)

	// Get retrieves a single loan.
	Get(ctx context.Context, loanID uuid.UUID) (*entity.Loan, error)

	// ListByMember retrieves all loans of one member.
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Loan, error)

	// UpdateTerms changes principal/rate/tenure and recomputes the
	// derived fields before persisting.
	UpdateTerms(ctx context.Context, input *UpdateLoanTermsInput) (*entity.Loan, error)

	// RecordRepayment adds to amount_paid, refreshes the balance, and
	// completes the loan when the balance reaches zero.
	RecordRepayment(ctx context.Context, input *RecordRepaymentInput) (*entity.Loan, error)

	// TransitionStatus moves the loan along a legal status edge.
	TransitionStatus(ctx context.Context, loanID uuid.UUID, next entity.LoanStatus) (*entity.Loan, error)
}
