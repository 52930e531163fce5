package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tesotunes/internal/domain/entity"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/repository"
	mockRepo "tesotunes/internal/mocks/repository"
	"tesotunes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// loanServiceFixtures holds all test dependencies for loan service tests.
type loanServiceFixtures struct {
	service   usecase.LoanUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	loanRepo  *mockRepo.MockLoanRepository
}

func createTestLoanService(t *testing.T) loanServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	loanRepo := mockRepo.NewMockLoanRepository(t)

	service := NewLoanService(LoanServiceParams{
		TxManager: txManager,
		LoanRepo:  loanRepo,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return loanServiceFixtures{
		service:   service,
		txManager: txManager,
		factory:   factory,
		loanRepo:  loanRepo,
	}
}

// expectTransaction makes the transaction manager run the callback
// against the mock repository factory, as the real manager would
// against a transactional factory.
func (fx loanServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestLoanService_Apply_ComputesDerivedFields(t *testing.T) {
	fx := createTestLoanService(t)

	ctx := context.Background()
	memberID := uuid.New()

	fx.loanRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Loan")).
		Return(nil)

	loan, err := fx.service.Apply(ctx, &usecase.ApplyLoanInput{
		MemberID:     memberID,
		Principal:    decimal.NewFromInt(1_200_000),
		InterestRate: decimal.NewFromInt(10),
		TenureMonths: 12,
		Purpose:      "studio equipment",
	})
	require.NoError(t, err)
	require.NotNil(t, loan)

	assert.Equal(t, memberID, loan.MemberID)
	assert.Equal(t, entity.LoanPending, loan.Status)
	// 1,200,000 at 10% p.a. over 12 months.
	assert.True(t, loan.TotalInterest.Equal(decimal.NewFromInt(120_000)), "interest = %s", loan.TotalInterest)
	assert.True(t, loan.TotalPayable.Equal(decimal.NewFromInt(1_320_000)), "payable = %s", loan.TotalPayable)
	assert.True(t, loan.MonthlyInstallment.Equal(decimal.NewFromInt(110_000)), "installment = %s", loan.MonthlyInstallment)
	assert.True(t, loan.BalanceRemaining.Equal(decimal.NewFromInt(1_320_000)), "balance = %s", loan.BalanceRemaining)
}

func TestLoanService_Apply_RejectsNegativeInputs(t *testing.T) {
	fx := createTestLoanService(t)

	ctx := context.Background()

	loan, err := fx.service.Apply(ctx, &usecase.ApplyLoanInput{
		MemberID:     uuid.New(),
		Principal:    decimal.NewFromInt(-500_000),
		InterestRate: decimal.NewFromInt(10),
		TenureMonths: 12,
	})
	require.Error(t, err)
	assert.Nil(t, loan)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.True(t, validationErr.HasField("principal"))
}

func TestLoanService_Get_NotFound(t *testing.T) {
	fx := createTestLoanService(t)

	ctx := context.Background()
	loanID := uuid.New()

	fx.loanRepo.EXPECT().
		FindByID(ctx, loanID).
		Return(nil, repository.ErrLoanNotFound)

	loan, err := fx.service.Get(ctx, loanID)
	require.Error(t, err)
	assert.Nil(t, loan)
	assert.True(t, errors.Is(err, domainerrors.ErrLoanNotFound))
}

func TestLoanService_RecordRepayment_PartialPayment(t *testing.T) {
	fx := createTestLoanService(t)

	ctx := context.Background()
	loanID := uuid.New()

	loan := &entity.Loan{
		ID:           loanID,
		MemberID:     uuid.New(),
		Principal:    decimal.NewFromInt(1_200_000),
		InterestRate: decimal.NewFromInt(10),
		TenureMonths: 12,
		Status:       entity.LoanOverdue,
	}
	loan.Recalculate()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().LoanRepo().Return(fx.loanRepo)
	fx.loanRepo.EXPECT().FindByID(ctx, loanID).Return(loan, nil)
	fx.loanRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)

	updated, err := fx.service.RecordRepayment(ctx, &usecase.RecordRepaymentInput{
		LoanID: loanID,
		Amount: decimal.NewFromInt(320_000),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// A partial payment on an overdue loan brings it back to active.
	assert.Equal(t, entity.LoanActive, updated.Status)
	assert.True(t, updated.AmountPaid.Equal(decimal.NewFromInt(320_000)))
	assert.True(t, updated.BalanceRemaining.Equal(decimal.NewFromInt(1_000_000)), "balance = %s", updated.BalanceRemaining)
}

func TestLoanService_RecordRepayment_FinalPaymentCompletesLoan(t *testing.T) {
	fx := createTestLoanService(t)

	ctx := context.Background()
	loanID := uuid.New()

	loan := &entity.Loan{
		ID:           loanID,
		MemberID:     uuid.New(),
		Principal:    decimal.NewFromInt(1_200_000),
		InterestRate: decimal.NewFromInt(10),
		TenureMonths: 12,
		AmountPaid:   decimal.NewFromInt(1_210_000),
		Status:       entity.LoanActive,
	}
	loan.Recalculate()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().LoanRepo().Return(fx.loanRepo)
	fx.loanRepo.EXPECT().FindByID(ctx, loanID).Return(loan, nil)
	fx.loanRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)

	updated, err := fx.service.RecordRepayment(ctx, &usecase.RecordRepaymentInput{
		LoanID: loanID,
		Amount: decimal.NewFromInt(110_000),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.LoanCompleted, updated.Status)
	assert.True(t, updated.BalanceRemaining.IsZero())
}

func TestLoanService_RecordRepayment_RejectsNonPositiveAmount(t *testing.T) {
	fx := createTestLoanService(t)

	ctx := context.Background()

	updated, err := fx.service.RecordRepayment(ctx, &usecase.RecordRepaymentInput{
		LoanID: uuid.New(),
		Amount: decimal.Zero,
	})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrRepaymentInvalid))
}

func TestLoanService_RecordRepayment_RejectsPendingLoan(t *testing.T) {
	fx := createTestLoanService(t)

	ctx := context.Background()
	loanID := uuid.New()

	loan := &entity.Loan{
		ID:           loanID,
		Principal:    decimal.NewFromInt(1_200_000),
		InterestRate: decimal.NewFromInt(10),
		TenureMonths: 12,
		Status:       entity.LoanPending,
	}
	loan.Recalculate()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().LoanRepo().Return(fx.loanRepo)
	fx.loanRepo.EXPECT().FindByID(ctx, loanID).Return(loan, nil)

	updated, err := fx.service.RecordRepayment(ctx, &usecase.RecordRepaymentInput{
		LoanID: loanID,
		Amount: decimal.NewFromInt(100_000),
	})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrRepaymentInvalid))
}

func TestLoanService_RecordRepayment_RejectsOverpayment(t *testing.T) {
	fx := createTestLoanService(t)

	ctx := context.Background()
	loanID := uuid.New()

	loan := &entity.Loan{
		ID:           loanID,
		Principal:    decimal.NewFromInt(1_200_000),
		InterestRate: decimal.NewFromInt(10),
		TenureMonths: 12,
		AmountPaid:   decimal.NewFromInt(1_300_000),
		Status:       entity.LoanActive,
	}
	loan.Recalculate()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().LoanRepo().Return(fx.loanRepo)
	fx.loanRepo.EXPECT().FindByID(ctx, loanID).Return(loan, nil)

	updated, err := fx.service.RecordRepayment(ctx, &usecase.RecordRepaymentInput{
		LoanID: loanID,
		Amount: decimal.NewFromInt(50_000),
	})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrRepaymentInvalid))
}

func TestLoanService_UpdateTerms_RefreshesDerivedFields(t *testing.T) {
	fx := createTestLoanService(t)

	ctx := context.Background()
	loanID := uuid.New()

	loan := &entity.Loan{
		ID:           loanID,
		Principal:    decimal.NewFromInt(1_200_000),
		InterestRate: decimal.NewFromInt(10),
		TenureMonths: 12,
		Status:       entity.LoanPending,
	}
	loan.Recalculate()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().LoanRepo().Return(fx.loanRepo)
	fx.loanRepo.EXPECT().FindByID(ctx, loanID).Return(loan, nil)
	fx.loanRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)

	updated, err := fx.service.UpdateTerms(ctx, &usecase.UpdateLoanTermsInput{
		LoanID:       loanID,
		Principal:    decimal.NewFromInt(2_400_000),
		InterestRate: decimal.NewFromInt(12),
		TenureMonths: 24,
	})
	require.NoError(t, err)

	// 2,400,000 at 12% p.a. over 24 months.
	assert.True(t, updated.TotalInterest.Equal(decimal.NewFromInt(576_000)), "interest = %s", updated.TotalInterest)
	assert.True(t, updated.TotalPayable.Equal(decimal.NewFromInt(2_976_000)), "payable = %s", updated.TotalPayable)
	assert.True(t, updated.MonthlyInstallment.Equal(decimal.NewFromInt(124_000)), "installment = %s", updated.MonthlyInstallment)
}

func TestLoanService_TransitionStatus_ApprovesPendingLoan(t *testing.T) {
	fx := createTestLoanService(t)

	ctx := context.Background()
	loanID := uuid.New()

	loan := &entity.Loan{
		ID:     loanID,
		Status: entity.LoanPending,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().LoanRepo().Return(fx.loanRepo)
	fx.loanRepo.EXPECT().FindByID(ctx, loanID).Return(loan, nil)
	fx.loanRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)

	updated, err := fx.service.TransitionStatus(ctx, loanID, entity.LoanApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.LoanApproved, updated.Status)
}

func TestLoanService_TransitionStatus_RejectsIllegalEdge(t *testing.T) {
	fx := createTestLoanService(t)

	ctx := context.Background()
	loanID := uuid.New()

	loan := &entity.Loan{
		ID:     loanID,
		Status: entity.LoanPending,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().LoanRepo().Return(fx.loanRepo)
	fx.loanRepo.EXPECT().FindByID(ctx, loanID).Return(loan, nil)

	updated, err := fx.service.TransitionStatus(ctx, loanID, entity.LoanActive)
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrLoanTransitionInvalid))
}

func TestLoanService_TransitionStatus_RejectsUnknownStatus(t *testing.T) {
	fx := createTestLoanService(t)

	ctx := context.Background()

	updated, err := fx.service.TransitionStatus(ctx, uuid.New(), entity.LoanStatus("vaporized"))
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrLoanTransitionInvalid))
}

func TestLoanService_TransitionStatus_DisbursementResetsRepaymentClock(t *testing.T) {
	fx := createTestLoanService(t)

	ctx := context.Background()
	loanID := uuid.New()

	loan := &entity.Loan{
		ID:           loanID,
		Principal:    decimal.NewFromInt(1_200_000),
		InterestRate: decimal.NewFromInt(10),
		TenureMonths: 12,
		AmountPaid:   decimal.NewFromInt(99_999),
		Status:       entity.LoanApproved,
	}
	loan.Recalculate()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().LoanRepo().Return(fx.loanRepo)
	fx.loanRepo.EXPECT().FindByID(ctx, loanID).Return(loan, nil)
	fx.loanRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)

	updated, err := fx.service.TransitionStatus(ctx, loanID, entity.LoanDisbursed)
	require.NoError(t, err)
	assert.Equal(t, entity.LoanDisbursed, updated.Status)
	assert.True(t, updated.AmountPaid.IsZero())
	assert.True(t, updated.BalanceRemaining.Equal(updated.TotalPayable))
}
