package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tesotunes/internal/domain/entity"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/repository"
	mockRepo "tesotunes/internal/mocks/repository"
	mockService "tesotunes/internal/mocks/service"
	"tesotunes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// verificationServiceFixtures holds all test dependencies for verification service tests.
type verificationServiceFixtures struct {
	service    usecase.VerificationUsecase
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	userRepo   *mockRepo.MockUserRepository
	smsService *mockService.MockSMSService
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	smsService := mockService.NewMockSMSService(t)

	service := NewVerificationService(VerificationServiceParams{
		TxManager:  txManager,
		UserRepo:   userRepo,
		SMSService: smsService,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return verificationServiceFixtures{
		service:    service,
		txManager:  txManager,
		factory:    factory,
		userRepo:   userRepo,
		smsService: smsService,
	}
}

func (fx verificationServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestVerificationService_VerifyPhone_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	expiry := time.Now().Add(10 * time.Minute)
	user := &entity.User{
		ID:                    userID,
		Phone:                 "256771234567",
		VerificationCode:      "482913",
		VerificationExpiresAt: &expiry,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	err := fx.service.VerifyPhone(ctx, userID, "482913")
	require.NoError(t, err)

	require.NotNil(t, user.PhoneVerifiedAt)
	assert.Empty(t, user.VerificationCode)
	assert.Nil(t, user.VerificationExpiresAt)
}

func TestVerificationService_VerifyPhone_AlreadyVerifiedIsIdempotent(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	verifiedAt := time.Now().Add(-24 * time.Hour)
	user := &entity.User{
		ID:              userID,
		PhoneVerifiedAt: &verifiedAt,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	// No Update expected: a second verification must not touch the row.

	err := fx.service.VerifyPhone(ctx, userID, "000000")
	require.NoError(t, err)
}

func TestVerificationService_VerifyPhone_WrongCode(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	expiry := time.Now().Add(10 * time.Minute)
	user := &entity.User{
		ID:                    userID,
		VerificationCode:      "482913",
		VerificationExpiresAt: &expiry,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	err := fx.service.VerifyPhone(ctx, userID, "111111")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationCodeInvalid))
	assert.Nil(t, user.PhoneVerifiedAt)
}

func TestVerificationService_VerifyPhone_ExpiredCode(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	expiry := time.Now().Add(-time.Minute)
	user := &entity.User{
		ID:                    userID,
		VerificationCode:      "482913",
		VerificationExpiresAt: &expiry,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	err := fx.service.VerifyPhone(ctx, userID, "482913")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationCodeInvalid))
	assert.Nil(t, user.PhoneVerifiedAt)
}

func TestVerificationService_VerifyPhone_UserNotFound(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := fx.service.VerifyPhone(ctx, userID, "482913")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestVerificationService_ResendCode_GeneratesAndDispatchesNewCode(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:               userID,
		Phone:            "256771234567",
		VerificationCode: "482913",
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.smsService.EXPECT().
		SendVerificationCode(ctx, "256771234567", mock.AnythingOfType("string")).
		Return(nil)

	output, err := fx.service.ResendCode(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.True(t, output.ExpiresAt.After(time.Now()))
	assert.NotEqual(t, "482913", user.VerificationCode, "old code must be invalidated")
	assert.Len(t, user.VerificationCode, 6)
	require.NotNil(t, user.VerificationExpiresAt)
}

func TestVerificationService_ResendCode_SMSFailureIsNotFatal(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:    userID,
		Phone: "256771234567",
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.smsService.EXPECT().
		SendVerificationCode(ctx, "256771234567", mock.AnythingOfType("string")).
		Return(errors.New("gateway timeout"))

	output, err := fx.service.ResendCode(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestVerificationService_ResendCode_RejectsVerifiedAccount(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	verifiedAt := time.Now()
	user := &entity.User{
		ID:              userID,
		PhoneVerifiedAt: &verifiedAt,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	output, err := fx.service.ResendCode(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyVerified))
}
