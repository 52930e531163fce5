package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
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

const testSessionKey = "reg:session:test"

// registrationServiceFixtures holds all test dependencies for registration service tests.
type registrationServiceFixtures struct {
	service          usecase.RegistrationUsecase
	store            *mockRepo.MockRegistrationStore
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	kycRepo          *mockRepo.MockKYCRepository
	auditRepo        *mockRepo.MockAuditRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
	smsService       *mockService.MockSMSService
	storage          *mockService.MockFileStorage
}

func createTestRegistrationService(t *testing.T) registrationServiceFixtures {
	store := mockRepo.NewMockRegistrationStore(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	kycRepo := mockRepo.NewMockKYCRepository(t)
	auditRepo := mockRepo.NewMockAuditRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	smsService := mockService.NewMockSMSService(t)
	storage := mockService.NewMockFileStorage(t)

	service := NewRegistrationService(RegistrationServiceParams{
		Store:            store,
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		SMSService:       smsService,
		Storage:          storage,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return registrationServiceFixtures{
		service:          service,
		store:            store,
		txManager:        txManager,
		factory:          factory,
		userRepo:         userRepo,
		authRepo:         authRepo,
		kycRepo:          kycRepo,
		auditRepo:        auditRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		smsService:       smsService,
		storage:          storage,
	}
}

func (fx registrationServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

// sessionAtStep builds a live session with the wizard advanced to the
// given step, with realistic bag content for every completed step.
func sessionAtStep(step int) *entity.RegistrationSession {
	session := entity.NewRegistrationSession(time.Now())
	if step >= entity.StepIdentity {
		session.SaveStepData(entity.StepProfile, map[string]any{
			"stage_name": "Etop Cultural Band",
			"genre_id":   7,
			"bio":        "Akogo fusion from Soroti",
		})
	}
	if step >= entity.StepPayment {
		session.UpdateStepData(entity.StepIdentity, "document_national_id_front", entity.UploadedFile{
			Path: "kyc/front.jpg", OriginalName: "front.jpg", MimeType: "image/jpeg", Size: 120_000,
		})
		session.UpdateStepData(entity.StepIdentity, "document_national_id_back", entity.UploadedFile{
			Path: "kyc/back.jpg", OriginalName: "back.jpg", MimeType: "image/jpeg", Size: 118_000,
		})
		session.UpdateStepData(entity.StepIdentity, "document_selfie", entity.UploadedFile{
			Path: "kyc/selfie.jpg", OriginalName: "selfie.jpg", MimeType: "image/jpeg", Size: 95_000,
		})
		session.SaveStepData(entity.StepIdentity, map[string]any{
			"full_name":          "Okello John Robert",
			"national_id_number": "CM93012345ABCD",
			"phone":              "256771234567",
		})
	}

	return session
}

func TestRegistrationService_Initialize_ResetsWizard(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()

	fx.store.EXPECT().
		Put(ctx, testSessionKey, mock.AnythingOfType("*entity.RegistrationSession")).
		Return(nil)

	output, err := fx.service.Initialize(ctx, testSessionKey)
	require.NoError(t, err)

	assert.Equal(t, entity.StepProfile, output.CurrentStep)
	assert.Empty(t, output.CompletedSteps)
	assert.True(t, output.Active)
}

func TestRegistrationService_Status_MissingSession(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()

	fx.store.EXPECT().
		Get(ctx, testSessionKey).
		Return(nil, repository.ErrSessionNotFound)

	output, err := fx.service.Status(ctx, testSessionKey)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestRegistrationService_SubmitStep1_Success(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := entity.NewRegistrationSession(time.Now())

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)
	fx.userRepo.EXPECT().ExistsByStageName(ctx, "Etop Cultural Band").Return(false, nil)
	fx.store.EXPECT().
		Put(ctx, testSessionKey, mock.AnythingOfType("*entity.RegistrationSession")).
		Return(nil)

	output, err := fx.service.SubmitStep1(ctx, &usecase.SubmitStep1Input{
		SessionKey: testSessionKey,
		StageName:  "Etop Cultural Band",
		GenreID:    7,
		Bio:        "Akogo fusion from Soroti",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StepIdentity, output.CurrentStep)
	assert.Contains(t, output.CompletedSteps, entity.StepProfile)
}

func TestRegistrationService_SubmitStep1_MissingFields(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := entity.NewRegistrationSession(time.Now())

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)

	output, err := fx.service.SubmitStep1(ctx, &usecase.SubmitStep1Input{SessionKey: testSessionKey})
	require.Error(t, err)
	assert.Nil(t, output)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.True(t, validationErr.HasField("stage_name"))
	assert.True(t, validationErr.HasField("genre_id"))
}

func TestRegistrationService_SubmitStep1_StageNameTaken(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := entity.NewRegistrationSession(time.Now())

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)
	fx.userRepo.EXPECT().ExistsByStageName(ctx, "Etop Cultural Band").Return(true, nil)

	output, err := fx.service.SubmitStep1(ctx, &usecase.SubmitStep1Input{
		SessionKey: testSessionKey,
		StageName:  "Etop Cultural Band",
		GenreID:    7,
	})
	require.Error(t, err)
	assert.Nil(t, output)

	assert.True(t, errors.Is(err, domainerrors.ErrStageNameTaken))
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.True(t, validationErr.HasField("stage_name"))
}

func TestRegistrationService_SubmitStep1_ExpiredSession(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	stale := entity.NewRegistrationSession(time.Now().Add(-3 * time.Hour))

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(stale, nil)

	output, err := fx.service.SubmitStep1(ctx, &usecase.SubmitStep1Input{
		SessionKey: testSessionKey,
		StageName:  "Etop Cultural Band",
		GenreID:    7,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestRegistrationService_SubmitStep2_BeforeStep1Rejected(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := entity.NewRegistrationSession(time.Now())

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)

	output, err := fx.service.SubmitStep2(ctx, &usecase.SubmitStep2Input{
		SessionKey:       testSessionKey,
		FullName:         "Okello John Robert",
		NationalIDNumber: "CM93012345ABCD",
		Phone:            "256771234567",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrStepNotCompleted))
}

func TestRegistrationService_SubmitStep2_ValidationFields(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := sessionAtStep(entity.StepIdentity)

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)

	output, err := fx.service.SubmitStep2(ctx, &usecase.SubmitStep2Input{
		SessionKey:       testSessionKey,
		FullName:         "",
		NationalIDNumber: "TOOSHORT",
		Phone:            "0771234567",
	})
	require.Error(t, err)
	assert.Nil(t, output)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.True(t, validationErr.HasField("full_name"))
	assert.True(t, validationErr.HasField("national_id_number"))
	assert.True(t, validationErr.HasField("phone"))
	// No documents uploaded yet either.
	assert.True(t, validationErr.HasField("document_national_id_front"))
	assert.True(t, validationErr.HasField("document_national_id_back"))
	assert.True(t, validationErr.HasField("document_selfie"))
}

func TestRegistrationService_SubmitStep2_NationalIDConflict(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := sessionAtStep(entity.StepPayment)
	// Roll back the step-2 submission but keep the uploaded documents.
	session.CompletedSteps = []int{entity.StepProfile}
	session.CurrentStep = entity.StepIdentity

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)
	fx.userRepo.EXPECT().ExistsByNationalID(ctx, "CM93012345ABCD").Return(true, nil)

	output, err := fx.service.SubmitStep2(ctx, &usecase.SubmitStep2Input{
		SessionKey:       testSessionKey,
		FullName:         "Okello John Robert",
		NationalIDNumber: "CM93012345ABCD",
		Phone:            "256771234567",
	})
	require.Error(t, err)
	assert.Nil(t, output)

	assert.True(t, errors.Is(err, domainerrors.ErrNationalIDTaken))
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.True(t, validationErr.HasField("national_id_number"))
}

func TestRegistrationService_UploadDocument_RecordsBagEntry(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := sessionAtStep(entity.StepIdentity)
	content := strings.NewReader("jpeg bytes")

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)
	fx.storage.EXPECT().
		Upload(ctx, "kyc", "front.jpg", "image/jpeg", int64(120_000), content).
		Return(&entity.UploadedFile{
			Path: "kyc/ab12.jpg", OriginalName: "front.jpg", MimeType: "image/jpeg", Size: 120_000,
		}, nil)
	fx.store.EXPECT().
		Put(ctx, testSessionKey, mock.AnythingOfType("*entity.RegistrationSession")).
		Return(nil)

	file, err := fx.service.UploadDocument(ctx, &usecase.UploadDocumentInput{
		SessionKey:   testSessionKey,
		Type:         entity.DocumentNationalIDFront,
		OriginalName: "front.jpg",
		MimeType:     "image/jpeg",
		Size:         120_000,
		Content:      content,
	})
	require.NoError(t, err)

	assert.Equal(t, "kyc/ab12.jpg", file.Path)
	bag := session.StepData(entity.StepIdentity)
	require.NotNil(t, bag)
	assert.Contains(t, bag, "document_national_id_front")
}

func TestRegistrationService_UploadDocument_BeforeStep1Rejected(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := entity.NewRegistrationSession(time.Now())

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)

	file, err := fx.service.UploadDocument(ctx, &usecase.UploadDocumentInput{
		SessionKey: testSessionKey,
		Type:       entity.DocumentSelfie,
	})
	require.Error(t, err)
	assert.Nil(t, file)
	assert.True(t, errors.Is(err, domainerrors.ErrStepNotCompleted))
}

func TestRegistrationService_SubmitStep3_Success(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := sessionAtStep(entity.StepPayment)
	userID := uuid.New()

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)
	fx.hasher.EXPECT().ValidatePasswordStrength("Chorus!2024").Return(nil)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "etop@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("Chorus!2024").Return("bcrypt-hash", nil)
	fx.userRepo.EXPECT().ExistsByUsername(ctx, "etop-cultural-band").Return(false, nil)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.factory.EXPECT().KYCRepo().Return(fx.kycRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Return(nil)
	fx.userRepo.EXPECT().AssignRole(ctx, userID, entity.RoleArtist).Return(nil)
	fx.userRepo.EXPECT().AssignRole(ctx, userID, entity.RoleMember).Return(nil)
	fx.kycRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.KYCDocument")).
		Return(nil).
		Times(3)
	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLog")).
		Return(nil)

	fx.smsService.EXPECT().
		SendVerificationCode(ctx, "256771234567", mock.AnythingOfType("string")).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"artist", "member"}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
	fx.store.EXPECT().Delete(ctx, testSessionKey).Return(nil)

	output, err := fx.service.SubmitStep3(ctx, &usecase.SubmitStep3Input{
		SessionKey:          testSessionKey,
		MobileMoneyProvider: "mtn",
		MobileMoneyNumber:   "256771234567",
		Email:               "etop@example.com",
		Password:            "Chorus!2024",
		TermsAccepted:       true,
	})
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.True(t, output.VerificationExpiresAt.After(time.Now()))

	user := output.User
	require.NotNil(t, user)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "etop-cultural-band", user.Username)
	assert.Equal(t, "Okello John Robert", user.FullName)
	assert.Equal(t, "256771234567", user.Phone)
	assert.True(t, user.IsArtist)
	assert.Equal(t, entity.ApplicationPending, user.ApplicationStatus)
	assert.Equal(t, entity.AccountActive, user.Status)
	assert.Len(t, user.VerificationCode, 6)
	require.NotNil(t, user.ArtistProfile)
	assert.Equal(t, "Etop Cultural Band", user.ArtistProfile.StageName)
	assert.Equal(t, "mtn", user.ArtistProfile.MobileMoneyProvider)
	assert.Equal(t, "CM93012345ABCD", user.ArtistProfile.NationalIDNumber)
}

func TestRegistrationService_SubmitStep3_UsernameCollisionGetsSuffix(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := sessionAtStep(entity.StepPayment)
	userID := uuid.New()

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)
	fx.hasher.EXPECT().ValidatePasswordStrength("Chorus!2024").Return(nil)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "etop@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("Chorus!2024").Return("bcrypt-hash", nil)
	fx.userRepo.EXPECT().ExistsByUsername(ctx, "etop-cultural-band").Return(true, nil)
	fx.userRepo.EXPECT().ExistsByUsername(ctx, "etop-cultural-band-1").Return(false, nil)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.factory.EXPECT().KYCRepo().Return(fx.kycRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Return(nil)
	fx.userRepo.EXPECT().AssignRole(ctx, userID, entity.RoleArtist).Return(nil)
	fx.userRepo.EXPECT().AssignRole(ctx, userID, entity.RoleMember).Return(nil)
	fx.kycRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.KYCDocument")).
		Return(nil).
		Times(3)
	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLog")).
		Return(nil)

	fx.smsService.EXPECT().
		SendVerificationCode(ctx, "256771234567", mock.AnythingOfType("string")).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"artist", "member"}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
	fx.store.EXPECT().Delete(ctx, testSessionKey).Return(nil)

	output, err := fx.service.SubmitStep3(ctx, &usecase.SubmitStep3Input{
		SessionKey:          testSessionKey,
		MobileMoneyProvider: "airtel",
		MobileMoneyNumber:   "256751234567",
		Email:               "etop@example.com",
		Password:            "Chorus!2024",
		TermsAccepted:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, "etop-cultural-band-1", output.User.Username)
}

func TestRegistrationService_SubmitStep3_ValidationFields(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := sessionAtStep(entity.StepPayment)

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)

	output, err := fx.service.SubmitStep3(ctx, &usecase.SubmitStep3Input{
		SessionKey:          testSessionKey,
		MobileMoneyProvider: "zaad",
		MobileMoneyNumber:   "0771234567",
		Email:               "",
		Password:            "Chorus!2024",
		TermsAccepted:       false,
	})
	require.Error(t, err)
	assert.Nil(t, output)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.True(t, validationErr.HasField("mobile_money_provider"))
	assert.True(t, validationErr.HasField("mobile_money_number"))
	assert.True(t, validationErr.HasField("terms_accepted"))
	assert.True(t, validationErr.HasField("email"))
}

func TestRegistrationService_SubmitStep3_WeakPassword(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := sessionAtStep(entity.StepPayment)

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)
	fx.hasher.EXPECT().
		ValidatePasswordStrength("short").
		Return(errors.New("password too short"))

	output, err := fx.service.SubmitStep3(ctx, &usecase.SubmitStep3Input{
		SessionKey:          testSessionKey,
		MobileMoneyProvider: "mtn",
		MobileMoneyNumber:   "256771234567",
		Email:               "etop@example.com",
		Password:            "short",
		TermsAccepted:       true,
	})
	require.Error(t, err)
	assert.Nil(t, output)

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.True(t, validationErr.HasField("password"))
}

func TestRegistrationService_SubmitStep3_BeforeStep2Rejected(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := sessionAtStep(entity.StepIdentity)

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)

	output, err := fx.service.SubmitStep3(ctx, &usecase.SubmitStep3Input{
		SessionKey:          testSessionKey,
		MobileMoneyProvider: "mtn",
		MobileMoneyNumber:   "256771234567",
		Email:               "etop@example.com",
		Password:            "Chorus!2024",
		TermsAccepted:       true,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrStepNotCompleted))
}

func TestRegistrationService_SubmitStep3_TransactionFailureRollsBack(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := sessionAtStep(entity.StepPayment)

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)
	fx.hasher.EXPECT().ValidatePasswordStrength("Chorus!2024").Return(nil)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "etop@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("Chorus!2024").Return("bcrypt-hash", nil)
	fx.userRepo.EXPECT().ExistsByUsername(ctx, "etop-cultural-band").Return(false, nil)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.factory.EXPECT().KYCRepo().Return(fx.kycRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.New("connection reset by peer"))

	output, err := fx.service.SubmitStep3(ctx, &usecase.SubmitStep3Input{
		SessionKey:          testSessionKey,
		MobileMoneyProvider: "mtn",
		MobileMoneyNumber:   "256771234567",
		Email:               "etop@example.com",
		Password:            "Chorus!2024",
		TermsAccepted:       true,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountCreationFailed))
}

func TestRegistrationService_SubmitStep3_ConflictPassesThrough(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	session := sessionAtStep(entity.StepPayment)

	fx.store.EXPECT().Get(ctx, testSessionKey).Return(session, nil)
	fx.hasher.EXPECT().ValidatePasswordStrength("Chorus!2024").Return(nil)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "etop@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("Chorus!2024").Return("bcrypt-hash", nil)
	fx.userRepo.EXPECT().ExistsByUsername(ctx, "etop-cultural-band").Return(false, nil)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo)
	fx.factory.EXPECT().KYCRepo().Return(fx.kycRepo)
	fx.factory.EXPECT().AuditRepo().Return(fx.auditRepo)

	// A concurrent registration won the uniqueness race inside the
	// transaction; the specific conflict must surface, not the generic
	// retryable failure.
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.Wrap(domainerrors.ErrEmailTaken, "unique constraint"))

	output, err := fx.service.SubmitStep3(ctx, &usecase.SubmitStep3Input{
		SessionKey:          testSessionKey,
		MobileMoneyProvider: "mtn",
		MobileMoneyNumber:   "256771234567",
		Email:               "etop@example.com",
		Password:            "Chorus!2024",
		TermsAccepted:       true,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	assert.False(t, errors.Is(err, domainerrors.ErrAccountCreationFailed))
}
