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

// dividendServiceFixtures holds all test dependencies for dividend service tests.
type dividendServiceFixtures struct {
	service      usecase.DividendUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	dividendRepo *mockRepo.MockDividendRepository
	shareRepo    *mockRepo.MockShareRepository
	auditRepo    *mockRepo.MockAuditRepository
}

func createTestDividendService(t *testing.T) dividendServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	dividendRepo := mockRepo.NewMockDividendRepository(t)
	shareRepo := mockRepo.NewMockShareRepository(t)
	auditRepo := mockRepo.NewMockAuditRepository(t)

	service := NewDividendService(DividendServiceParams{
		TxManager:    txManager,
		DividendRepo: dividendRepo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return dividendServiceFixtures{
		service:      service,
		txManager:    txManager,
		factory:      factory,
		dividendRepo: dividendRepo,
		shareRepo:    shareRepo,
		auditRepo:    auditRepo,
	}
}

func (fx dividendServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestDividendService_Calculate_DistributesAcrossShareholders(t *testing.T) {
	fx := createTestDividendService(t)

	ctx := context.Background()
	actorID := uuid.New()
	memberA := uuid.New()
	memberB := uuid.New()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().DividendRepo().Return(fx.dividendRepo)
	fx.factory.EXPECT().ShareRepo().Return(fx.shareRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)

	fx.dividendRepo.EXPECT().
		FindByYear(ctx, 2025).
		Return(nil, repository.ErrDividendNotFound)
	fx.shareRepo.EXPECT().
		TotalShares(ctx).
		Return(decimal.NewFromInt(1_000), nil)
	fx.dividendRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Dividend")).
		Return(nil)
	fx.shareRepo.EXPECT().
		ListActiveHolders(ctx).
		Return([]*entity.ShareAccount{
			{MemberID: memberA, SharesHeld: decimal.NewFromInt(50), IsActive: true},
			{MemberID: memberB, SharesHeld: decimal.NewFromInt(950), IsActive: true},
		}, nil)

	var distributions []*entity.DividendDistribution
	fx.dividendRepo.EXPECT().
		CreateDistribution(ctx, mock.AnythingOfType("*entity.DividendDistribution")).
		Run(func(_ context.Context, dist *entity.DividendDistribution) {
			distributions = append(distributions, dist)
		}).
		Return(nil).
		Times(2)
	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLog")).
		Return(nil)

	dividend, err := fx.service.Calculate(ctx, &usecase.CalculateDividendInput{
		Year:                     2025,
		TotalProfit:              decimal.NewFromInt(10_000_000),
		DistributionPercentage:   decimal.NewFromInt(70),
		WithholdingTaxPercentage: decimal.NewFromInt(15),
		ActorID:                  actorID,
	})
	require.NoError(t, err)
	require.NotNil(t, dividend)

	assert.Equal(t, entity.DividendCalculated, dividend.Status)
	// 70% of 10,000,000 over 1,000 shares.
	assert.True(t, dividend.DistributableAmount.Equal(decimal.NewFromInt(7_000_000)), "distributable = %s", dividend.DistributableAmount)
	assert.True(t, dividend.RatePerShare.Equal(decimal.NewFromInt(7_000)), "rate = %s", dividend.RatePerShare)

	require.Len(t, distributions, 2)
	first := distributions[0]
	assert.Equal(t, memberA, first.MemberID)
	assert.True(t, first.GrossAmount.Equal(decimal.NewFromInt(350_000)), "gross = %s", first.GrossAmount)
	assert.True(t, first.WithholdingTax.Equal(decimal.NewFromInt(52_500)), "tax = %s", first.WithholdingTax)
	assert.True(t, first.NetAmount.Equal(decimal.NewFromInt(297_500)), "net = %s", first.NetAmount)
	assert.Equal(t, entity.DistributionPending, first.Status)
}

func TestDividendService_Calculate_RejectsDuplicateYear(t *testing.T) {
	fx := createTestDividendService(t)

	ctx := context.Background()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().DividendRepo().Return(fx.dividendRepo)
	fx.factory.EXPECT().ShareRepo().Return(fx.shareRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)

	fx.dividendRepo.EXPECT().
		FindByYear(ctx, 2025).
		Return(&entity.Dividend{Year: 2025}, nil)

	dividend, err := fx.service.Calculate(ctx, &usecase.CalculateDividendInput{
		Year:                   2025,
		TotalProfit:            decimal.NewFromInt(10_000_000),
		DistributionPercentage: decimal.NewFromInt(70),
		ActorID:                uuid.New(),
	})
	require.Error(t, err)
	assert.Nil(t, dividend)
	assert.True(t, errors.Is(err, domainerrors.ErrDividendYearExists))
}

func TestDividendService_Calculate_RejectsNonPositiveProfit(t *testing.T) {
	fx := createTestDividendService(t)

	ctx := context.Background()

	dividend, err := fx.service.Calculate(ctx, &usecase.CalculateDividendInput{
		Year:                   2025,
		TotalProfit:            decimal.Zero,
		DistributionPercentage: decimal.NewFromInt(70),
		ActorID:                uuid.New(),
	})
	require.Error(t, err)
	assert.Nil(t, dividend)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.True(t, validationErr.HasField("total_profit"))
}

func TestDividendService_Calculate_RejectsZeroOutstandingShares(t *testing.T) {
	fx := createTestDividendService(t)

	ctx := context.Background()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().DividendRepo().Return(fx.dividendRepo)
	fx.factory.EXPECT().ShareRepo().Return(fx.shareRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)

	fx.dividendRepo.EXPECT().
		FindByYear(ctx, 2025).
		Return(nil, repository.ErrDividendNotFound)
	fx.shareRepo.EXPECT().
		TotalShares(ctx).
		Return(decimal.Zero, nil)

	dividend, err := fx.service.Calculate(ctx, &usecase.CalculateDividendInput{
		Year:                   2025,
		TotalProfit:            decimal.NewFromInt(10_000_000),
		DistributionPercentage: decimal.NewFromInt(70),
		ActorID:                uuid.New(),
	})
	require.Error(t, err)
	assert.Nil(t, dividend)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDividendService_Approve_RecordsApprover(t *testing.T) {
	fx := createTestDividendService(t)

	ctx := context.Background()
	dividendID := uuid.New()
	approverID := uuid.New()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().DividendRepo().Return(fx.dividendRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)

	fx.dividendRepo.EXPECT().
		FindByID(ctx, dividendID).
		Return(&entity.Dividend{ID: dividendID, Year: 2025, Status: entity.DividendCalculated}, nil)
	fx.dividendRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Dividend")).
		Return(nil)
	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLog")).
		Return(nil)

	dividend, err := fx.service.Approve(ctx, dividendID, approverID)
	require.NoError(t, err)

	assert.Equal(t, entity.DividendApproved, dividend.Status)
	require.NotNil(t, dividend.ApprovedBy)
	assert.Equal(t, approverID, *dividend.ApprovedBy)
}

func TestDividendService_Distribute_CreditsNetAmounts(t *testing.T) {
	fx := createTestDividendService(t)

	ctx := context.Background()
	dividendID := uuid.New()
	memberA := uuid.New()
	memberB := uuid.New()

	dividend := &entity.Dividend{
		ID:                  dividendID,
		Year:                2025,
		DistributableAmount: decimal.NewFromInt(7_000_000),
		Status:              entity.DividendApproved,
	}
	distributions := []*entity.DividendDistribution{
		{
			ID: uuid.New(), DividendID: dividendID, MemberID: memberA,
			GrossAmount: decimal.NewFromInt(350_000), NetAmount: decimal.NewFromInt(297_500),
			Status: entity.DistributionPending,
		},
		{
			ID: uuid.New(), DividendID: dividendID, MemberID: memberB,
			GrossAmount: decimal.NewFromInt(6_650_000), NetAmount: decimal.NewFromInt(5_652_500),
			Status: entity.DistributionPending,
		},
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().DividendRepo().Return(fx.dividendRepo)
	fx.factory.EXPECT().ShareRepo().Return(fx.shareRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)

	fx.dividendRepo.EXPECT().FindByID(ctx, dividendID).Return(dividend, nil)
	fx.dividendRepo.EXPECT().FindDistributions(ctx, dividendID).Return(distributions, nil)
	fx.shareRepo.EXPECT().CreditBalance(ctx, memberA, decimal.NewFromInt(297_500)).Return(nil)
	fx.shareRepo.EXPECT().CreditBalance(ctx, memberB, decimal.NewFromInt(5_652_500)).Return(nil)
	fx.dividendRepo.EXPECT().
		UpdateDistribution(ctx, mock.AnythingOfType("*entity.DividendDistribution")).
		Return(nil).
		Times(2)
	fx.dividendRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Dividend")).Return(nil)
	fx.auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	updated, err := fx.service.Distribute(ctx, dividendID, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, entity.DividendDistributed, updated.Status)
	require.NotNil(t, updated.DistributedAt)
	for _, dist := range distributions {
		assert.Equal(t, entity.DistributionPaid, dist.Status)
	}
}

func TestDividendService_Distribute_RejectsCalculatedDividend(t *testing.T) {
	fx := createTestDividendService(t)

	ctx := context.Background()
	dividendID := uuid.New()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().DividendRepo().Return(fx.dividendRepo)
	fx.factory.EXPECT().ShareRepo().Return(fx.shareRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)

	fx.dividendRepo.EXPECT().
		FindByID(ctx, dividendID).
		Return(&entity.Dividend{ID: dividendID, Status: entity.DividendCalculated}, nil)

	updated, err := fx.service.Distribute(ctx, dividendID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrDividendTransitionInvalid))
}

func TestDividendService_Distribute_RejectsOverDistribution(t *testing.T) {
	fx := createTestDividendService(t)

	ctx := context.Background()
	dividendID := uuid.New()

	dividend := &entity.Dividend{
		ID:                  dividendID,
		DistributableAmount: decimal.NewFromInt(7_000_000),
		Status:              entity.DividendApproved,
	}
	distributions := []*entity.DividendDistribution{
		{ID: uuid.New(), MemberID: uuid.New(), GrossAmount: decimal.NewFromInt(7_000_001), Status: entity.DistributionPending},
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().DividendRepo().Return(fx.dividendRepo)
	fx.factory.EXPECT().ShareRepo().Return(fx.shareRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)

	fx.dividendRepo.EXPECT().FindByID(ctx, dividendID).Return(dividend, nil)
	fx.dividendRepo.EXPECT().FindDistributions(ctx, dividendID).Return(distributions, nil)

	updated, err := fx.service.Distribute(ctx, dividendID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrDividendOverDistribution))
}

func TestDividendService_Distribute_RejectsAlreadyDistributed(t *testing.T) {
	fx := createTestDividendService(t)

	ctx := context.Background()
	dividendID := uuid.New()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().DividendRepo().Return(fx.dividendRepo)
	fx.factory.EXPECT().ShareRepo().Return(fx.shareRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)

	fx.dividendRepo.EXPECT().
		FindByID(ctx, dividendID).
		Return(&entity.Dividend{ID: dividendID, Status: entity.DividendDistributed}, nil)

	updated, err := fx.service.Distribute(ctx, dividendID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrDividendImmutable))
}

func TestDividendService_Cancel_RequiresReason(t *testing.T) {
	fx := createTestDividendService(t)

	ctx := context.Background()

	updated, err := fx.service.Cancel(ctx, uuid.New(), uuid.New(), "")
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrCancellationReasonRequired))
}

func TestDividendService_Cancel_KeepsReason(t *testing.T) {
	fx := createTestDividendService(t)

	ctx := context.Background()
	dividendID := uuid.New()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().DividendRepo().Return(fx.dividendRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)

	fx.dividendRepo.EXPECT().
		FindByID(ctx, dividendID).
		Return(&entity.Dividend{ID: dividendID, Year: 2025, Status: entity.DividendApproved}, nil)
	fx.dividendRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Dividend")).
		Return(nil)
	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLog")).
		Return(nil)

	updated, err := fx.service.Cancel(ctx, dividendID, uuid.New(), "figures restated after audit")
	require.NoError(t, err)

	assert.Equal(t, entity.DividendCancelled, updated.Status)
	assert.Equal(t, "figures restated after audit", updated.CancellationReason)
}
