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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// kycServiceFixtures holds all test dependencies for KYC service tests.
type kycServiceFixtures struct {
	service   usecase.KYCUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	kycRepo   *mockRepo.MockKYCRepository
	auditRepo *mockRepo.MockAuditRepository
}

func createTestKYCService(t *testing.T) kycServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	kycRepo := mockRepo.NewMockKYCRepository(t)
	auditRepo := mockRepo.NewMockAuditRepository(t)

	service := NewKYCService(KYCServiceParams{
		TxManager: txManager,
		KYCRepo:   kycRepo,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return kycServiceFixtures{
		service:   service,
		txManager: txManager,
		factory:   factory,
		kycRepo:   kycRepo,
		auditRepo: auditRepo,
	}
}

func (fx kycServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestKYCService_ListPending(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	docs := []*entity.KYCDocument{
		{ID: uuid.New(), Type: entity.DocumentNationalIDFront, Status: entity.DocumentPending},
		{ID: uuid.New(), Type: entity.DocumentSelfie, Status: entity.DocumentPending},
	}

	fx.kycRepo.EXPECT().
		ListByStatus(ctx, entity.DocumentPending).
		Return(docs, nil)

	listed, err := fx.service.ListPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, docs, listed)
}

func TestKYCService_Approve_Success(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	documentID := uuid.New()
	reviewerID := uuid.New()
	doc := &entity.KYCDocument{
		ID:     documentID,
		UserID: uuid.New(),
		Type:   entity.DocumentNationalIDFront,
		Status: entity.DocumentPending,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().KYCRepo().Return(fx.kycRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)
	fx.kycRepo.EXPECT().FindByID(ctx, documentID).Return(doc, nil)
	fx.kycRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.KYCDocument")).Return(nil)
	fx.auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	reviewed, err := fx.service.Approve(ctx, documentID, reviewerID)
	require.NoError(t, err)

	assert.Equal(t, entity.DocumentActive, reviewed.Status)
	require.NotNil(t, reviewed.VerifiedBy)
	assert.Equal(t, reviewerID, *reviewed.VerifiedBy)
	assert.Empty(t, reviewed.RejectionReason)
}

func TestKYCService_Reject_RequiresReason(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()

	reviewed, err := fx.service.Reject(ctx, uuid.New(), uuid.New(), "")
	require.Error(t, err)
	assert.Nil(t, reviewed)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.True(t, validationErr.HasField("reason"))
}

func TestKYCService_Reject_KeepsReason(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	documentID := uuid.New()
	reviewerID := uuid.New()
	doc := &entity.KYCDocument{
		ID:     documentID,
		UserID: uuid.New(),
		Type:   entity.DocumentSelfie,
		Status: entity.DocumentPending,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().KYCRepo().Return(fx.kycRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)
	fx.kycRepo.EXPECT().FindByID(ctx, documentID).Return(doc, nil)
	fx.kycRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.KYCDocument")).Return(nil)
	fx.auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	reviewed, err := fx.service.Reject(ctx, documentID, reviewerID, "face does not match the ID photo")
	require.NoError(t, err)

	assert.Equal(t, entity.DocumentRejected, reviewed.Status)
	assert.Equal(t, "face does not match the ID photo", reviewed.RejectionReason)
}

func TestKYCService_Review_SecondDecisionRejected(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	documentID := uuid.New()
	firstReviewer := uuid.New()
	doc := &entity.KYCDocument{
		ID:         documentID,
		Type:       entity.DocumentNationalIDBack,
		Status:     entity.DocumentActive,
		VerifiedBy: &firstReviewer,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().KYCRepo().Return(fx.kycRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)
	fx.kycRepo.EXPECT().FindByID(ctx, documentID).Return(doc, nil)

	reviewed, err := fx.service.Approve(ctx, documentID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, reviewed)
	assert.True(t, errors.Is(err, domainerrors.ErrDocumentAlreadyReviewed))
}

func TestKYCService_Review_DocumentNotFound(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	documentID := uuid.New()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().KYCRepo().Return(fx.kycRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)
	fx.kycRepo.EXPECT().FindByID(ctx, documentID).Return(nil, repository.ErrDocumentNotFound)

	reviewed, err := fx.service.Approve(ctx, documentID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, reviewed)
	assert.True(t, errors.Is(err, domainerrors.ErrDocumentNotFound))
}
