// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"tesotunes/config"
	deliverycontext "tesotunes/internal/delivery/context"
	"tesotunes/internal/domain/entity"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/repository"
	"tesotunes/internal/domain/service"
	"tesotunes/internal/infra/metrics"
	"tesotunes/internal/usecase"
	"tesotunes/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Session bag keys. The bags survive a JSON round trip through the
// session store, so readers must tolerate decoded types (float64 for
// numbers, map[string]any for upload metadata).
const (
	bagStageName  = "stage_name"
	bagGenreID    = "genre_id"
	bagBio        = "bio"
	bagAvatar     = "avatar"
	bagFullName   = "full_name"
	bagNationalID = "national_id_number"
	bagPhone      = "phone"
)

const (
	nationalIDLength    = 14
	maxUsernameAttempts = 100
	defaultCodeTTL      = 10 * time.Minute
)

var phonePattern = regexp.MustCompile(`^256[0-9]{9}$`)

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	store            repository.RegistrationStore
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	smsService       service.SMSService
	storage          service.FileStorage
	contact          contactRequirements
	codeTTL          time.Duration
	logger           *slog.Logger
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	Store            repository.RegistrationStore
	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	SMSService       service.SMSService
	Storage          service.FileStorage
	Config           *config.Config
	Logger           *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	contact := contactRules(true, true)
	codeTTL := defaultCodeTTL
	if params.Config != nil && params.Config.Registration != nil {
		contact = contactRules(params.Config.Registration.EmailEnabled, params.Config.Registration.PhoneEnabled)
		if params.Config.Registration.CodeTTL > 0 {
			codeTTL = params.Config.Registration.CodeTTL
		}
	}

	return &registrationService{
		store:            params.Store,
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		smsService:       params.SMSService,
		storage:          params.Storage,
		contact:          contact,
		codeTTL:          codeTTL,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Initialize resets the wizard to a pristine step-1 state. Any prior
// session under the key is overwritten unconditionally.
func (srv *registrationService) Initialize(ctx context.Context, sessionKey string) (*usecase.RegistrationStatusOutput, error) {
	session := entity.NewRegistrationSession(time.Now())
	if err := srv.store.Put(ctx, sessionKey, session); err != nil {
		return nil, errors.Wrap(err, "failed to store new registration session")
	}

	srv.log(ctx).Info("Registration session initialized")

	return statusOutput(session, time.Now()), nil
}

// Status reports the current wizard state without mutating it.
func (srv *registrationService) Status(ctx context.Context, sessionKey string) (*usecase.RegistrationStatusOutput, error) {
	session, err := srv.store.Get(ctx, sessionKey)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, errors.Wrap(domainerrors.ErrSessionExpired, "no registration session")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load registration session")
	}

	return statusOutput(session, time.Now()), nil
}

// SubmitStep1 validates and records the profile basics.
func (srv *registrationService) SubmitStep1(ctx context.Context, input *usecase.SubmitStep1Input) (*usecase.RegistrationStatusOutput, error) {
	session, err := srv.loadActiveSession(ctx, input.SessionKey)
	if err != nil {
		return nil, err
	}

	var fields []domainerrors.FieldError
	if input.StageName == "" {
		fields = append(fields, domainerrors.FieldError{Field: bagStageName, Code: "REQUIRED", Message: "Stage name is required"})
	}
	if input.GenreID <= 0 {
		fields = append(fields, domainerrors.FieldError{Field: bagGenreID, Code: "REQUIRED", Message: "Genre is required"})
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields...)
	}

	taken, err := srv.userRepo.ExistsByStageName(ctx, input.StageName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check stage name uniqueness")
	}
	if taken {
		return nil, domainerrors.NewFieldError(domainerrors.ErrStageNameTaken, bagStageName)
	}

	session.SaveStepData(entity.StepProfile, map[string]any{
		bagStageName: input.StageName,
		bagGenreID:   input.GenreID,
		bagBio:       input.Bio,
	})

	if err := srv.store.Put(ctx, input.SessionKey, session); err != nil {
		return nil, errors.Wrap(err, "failed to store registration session")
	}

	srv.log(ctx).Info("Registration step 1 recorded", slog.String("stageName", input.StageName))
	metrics.RegistrationStepsTotal.WithLabelValues("1").Inc()

	return statusOutput(session, time.Now()), nil
}

// UploadAvatar stores the avatar image and records its metadata tuple in
// the step-1 bag.
func (srv *registrationService) UploadAvatar(ctx context.Context, input *usecase.UploadAvatarInput) (*entity.UploadedFile, error) {
	session, err := srv.loadActiveSession(ctx, input.SessionKey)
	if err != nil {
		return nil, err
	}

	file, err := srv.storage.Upload(ctx, "avatars", input.OriginalName, input.MimeType, input.Size, input.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store avatar upload")
	}

	session.UpdateStepData(entity.StepProfile, bagAvatar, file)
	if err := srv.store.Put(ctx, input.SessionKey, session); err != nil {
		return nil, errors.Wrap(err, "failed to store registration session")
	}

	return file, nil
}

// UploadDocument stores one KYC document and records its metadata tuple
// in the step-2 bag. Step 1 must be completed first.
func (srv *registrationService) UploadDocument(ctx context.Context, input *usecase.UploadDocumentInput) (*entity.UploadedFile, error) {
	session, err := srv.loadActiveSession(ctx, input.SessionKey)
	if err != nil {
		return nil, err
	}
	if !session.CanAccessStep(entity.StepIdentity) {
		return nil, errors.Wrap(domainerrors.ErrStepNotCompleted, "step 2 not yet accessible")
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field: "type", Code: "INVALID", Message: "Unknown document type",
		})
	}

	file, err := srv.storage.Upload(ctx, "kyc", input.OriginalName, input.MimeType, input.Size, input.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store document upload")
	}

	session.UpdateStepData(entity.StepIdentity, documentBagKey(input.Type), file)
	if err := srv.store.Put(ctx, input.SessionKey, session); err != nil {
		return nil, errors.Wrap(err, "failed to store registration session")
	}

	srv.log(ctx).Info("KYC document uploaded", slog.String("type", input.Type.String()))

	return file, nil
}

// SubmitStep2 validates and records the identity data. The national-ID
// and phone uniqueness side-lookups run before anything is persisted so
// a conflict comes back as a field error with no state mutated.
func (srv *registrationService) SubmitStep2(ctx context.Context, input *usecase.SubmitStep2Input) (*usecase.RegistrationStatusOutput, error) {
	session, err := srv.loadActiveSession(ctx, input.SessionKey)
	if err != nil {
		return nil, err
	}
	if !session.CanAccessStep(entity.StepIdentity) {
		return nil, errors.Wrap(domainerrors.ErrStepNotCompleted, "step 2 not yet accessible")
	}

	var fields []domainerrors.FieldError
	if input.FullName == "" {
		fields = append(fields, domainerrors.FieldError{Field: bagFullName, Code: "REQUIRED", Message: "Full name is required"})
	}
	if len(input.NationalIDNumber) != nationalIDLength {
		fields = append(fields, domainerrors.FieldError{Field: bagNationalID, Code: "INVALID", Message: "National ID number must be 14 characters"})
	}
	if !phonePattern.MatchString(input.Phone) {
		fields = append(fields, domainerrors.FieldError{Field: bagPhone, Code: "INVALID", Message: "Phone number must match 256XXXXXXXXX"})
	}
	for _, docType := range entity.RequiredDocumentTypes {
		if _, ok := fileFromBag(session.StepData(entity.StepIdentity), documentBagKey(docType)); !ok {
			fields = append(fields, domainerrors.FieldError{
				Field: documentBagKey(docType), Code: "REQUIRED",
				Message: fmt.Sprintf("Document %s must be uploaded", docType),
			})
		}
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields...)
	}

	ninTaken, err := srv.userRepo.ExistsByNationalID(ctx, input.NationalIDNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check national id uniqueness")
	}
	if ninTaken {
		return nil, domainerrors.NewFieldError(domainerrors.ErrNationalIDTaken, bagNationalID)
	}

	phoneTaken, err := srv.userRepo.ExistsByPhone(ctx, input.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check phone uniqueness")
	}
	if phoneTaken {
		return nil, domainerrors.NewFieldError(domainerrors.ErrPhoneTaken, bagPhone)
	}

	session.SaveStepData(entity.StepIdentity, map[string]any{
		bagFullName:   input.FullName,
		bagNationalID: input.NationalIDNumber,
		bagPhone:      input.Phone,
	})

	if err := srv.store.Put(ctx, input.SessionKey, session); err != nil {
		return nil, errors.Wrap(err, "failed to store registration session")
	}

	srv.log(ctx).Info("Registration step 2 recorded")
	metrics.RegistrationStepsTotal.WithLabelValues("2").Inc()

	return statusOutput(session, time.Now()), nil
}

// SubmitStep3 validates the final step and finalizes the draft into a
// real account. Everything persisted lands in one transaction; a failure
// anywhere rolls the whole creation back and surfaces a single generic
// retryable error with the precise cause logged for operators.
func (srv *registrationService) SubmitStep3(ctx context.Context, input *usecase.SubmitStep3Input) (*usecase.FinalizeOutput, error) {
	session, err := srv.loadActiveSession(ctx, input.SessionKey)
	if err != nil {
		return nil, err
	}
	if !session.CanAccessStep(entity.StepPayment) {
		return nil, errors.Wrap(domainerrors.ErrStepNotCompleted, "step 3 not yet accessible")
	}

	if err := srv.validateStep3(ctx, input); err != nil {
		return nil, err
	}

	draft, err := buildDraft(session, input)
	if err != nil {
		srv.log(ctx).Error("Registration session bags incomplete at finalize", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrAccountCreationFailed, "registration draft incomplete")
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	username, err := srv.deriveUsername(ctx, draft.StageName)
	if err != nil {
		return nil, err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}
	codeExpiry := time.Now().Add(srv.codeTTL)

	newUser, err := srv.finalizeDraft(ctx, draft, username, passwordHash, code, codeExpiry)
	if err != nil {
		return nil, err
	}

	// The account exists now. SMS delivery is best effort; the client
	// can always request a resend.
	if err := srv.smsService.SendVerificationCode(ctx, newUser.Phone, code); err != nil {
		srv.log(ctx).Warn("Failed to dispatch verification SMS", slog.Any("userID", newUser.ID), slog.Any("error", err))
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(newUser.ID, entity.Roles{entity.RoleArtist, entity.RoleMember}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens after registration")
	}
	newRefreshToken := &entity.RefreshToken{
		UserID:    newUser.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token after registration")
	}

	if err := srv.store.Delete(ctx, input.SessionKey); err != nil {
		srv.log(ctx).Warn("Failed to clear registration session", slog.Any("error", err))
	}

	srv.log(ctx).Info("Artist registration completed", slog.Any("userID", newUser.ID), slog.String("username", username))
	metrics.RegistrationStepsTotal.WithLabelValues("3").Inc()
	metrics.RegistrationsCompletedTotal.Inc()

	return &usecase.FinalizeOutput{
		User:                  newUser,
		AccessToken:           accessToken,
		RefreshToken:          refreshTokenString,
		VerificationExpiresAt: codeExpiry,
	}, nil
}

func (srv *registrationService) validateStep3(ctx context.Context, input *usecase.SubmitStep3Input) error {
	var fields []domainerrors.FieldError
	if input.MobileMoneyProvider != "mtn" && input.MobileMoneyProvider != "airtel" {
		fields = append(fields, domainerrors.FieldError{Field: "mobile_money_provider", Code: "INVALID", Message: "Provider must be mtn or airtel"})
	}
	if !phonePattern.MatchString(input.MobileMoneyNumber) {
		fields = append(fields, domainerrors.FieldError{Field: "mobile_money_number", Code: "INVALID", Message: "Mobile money number must match 256XXXXXXXXX"})
	}
	if !input.TermsAccepted {
		fields = append(fields, domainerrors.FieldError{Field: "terms_accepted", Code: "REQUIRED", Message: "Terms must be accepted"})
	}
	if srv.contact.EmailRequired && input.Email == "" {
		fields = append(fields, domainerrors.FieldError{Field: "email", Code: "REQUIRED", Message: "Email is required"})
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return domainerrors.NewFieldError(domainerrors.ErrPasswordStrength, "password")
	}

	if input.Email != "" {
		taken, err := srv.userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email uniqueness")
		}
		if taken {
			return domainerrors.NewFieldError(domainerrors.ErrEmailTaken, "email")
		}
	}

	return nil
}

// finalizeDraft runs the all-or-nothing account creation: user, artist
// profile, pending KYC documents, role grants, and the audit entry.
func (srv *registrationService) finalizeDraft(
	ctx context.Context,
	draft *registrationDraft,
	username, passwordHash, code string,
	codeExpiry time.Time,
) (*entity.User, error) {
	var newUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()
		kycRepo := repoFactory.KYCRepo()
		auditRepo := repoFactory.AuditRepo()

		user := &entity.User{
			Email:                 draft.Email,
			Phone:                 draft.Phone,
			Username:              username,
			FullName:              draft.FullName,
			IsArtist:              true,
			ApplicationStatus:     entity.ApplicationPending,
			Status:                entity.AccountActive,
			VerificationCode:      code,
			VerificationExpiresAt: &codeExpiry,
			ArtistProfile: &entity.ArtistProfile{
				StageName:           draft.StageName,
				GenreID:             draft.GenreID,
				Bio:                 draft.Bio,
				AvatarPath:          draft.AvatarPath,
				MobileMoneyProvider: draft.MobileMoneyProvider,
				MobileMoneyNumber:   draft.MobileMoneyNumber,
				NationalIDNumber:    draft.NationalIDNumber,
			},
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: draft.Email,
			PasswordHash:   passwordHash,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		for _, role := range []entity.Role{entity.RoleArtist, entity.RoleMember} {
			if err := userRepo.AssignRole(ctx, user.ID, role); err != nil {
				return errors.Wrapf(err, "failed to assign %s role during registration", role)
			}
		}

		for _, docType := range entity.RequiredDocumentTypes {
			file := draft.Documents[docType]
			doc := &entity.KYCDocument{
				UserID:       user.ID,
				Type:         docType,
				Path:         file.Path,
				OriginalName: file.OriginalName,
				MimeType:     file.MimeType,
				SizeBytes:    file.Size,
				Status:       entity.DocumentPending,
			}
			if err := kycRepo.Create(ctx, doc); err != nil {
				return errors.Wrapf(err, "failed to persist %s document during registration", docType)
			}
		}

		entry := &entity.AuditLog{
			ActorID:     &user.ID,
			Action:      "artist.registered",
			SubjectType: "user",
			SubjectID:   user.ID,
			Detail: map[string]any{
				"stage_name": draft.StageName,
				"username":   username,
			},
		}
		if err := auditRepo.Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to write registration audit entry")
		}

		newUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("stageName", draft.StageName), slog.Any("error", err))

		// A uniqueness constraint lost a race with a concurrent
		// registration; surface it as the specific conflict. Anything
		// else becomes the generic retryable failure.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrAccountCreationFailed, "registration transaction failed")
	}

	return newUser, nil
}

// deriveUsername slugifies the stage name and appends a numeric suffix
// until the handle is free. Best-effort pre-check only; the database
// uniqueness constraint stays the final authority under races.
func (srv *registrationService) deriveUsername(ctx context.Context, stageName string) (string, error) {
	base := util.Slugify(stageName)
	if base == "" {
		base = "artist"
	}

	candidate := base
	for i := 1; i <= maxUsernameAttempts; i++ {
		taken, err := srv.userRepo.ExistsByUsername(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check username uniqueness")
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}

	return "", errors.Wrap(domainerrors.ErrAccountCreationFailed, "could not derive a free username")
}

func (srv *registrationService) loadActiveSession(ctx context.Context, sessionKey string) (*entity.RegistrationSession, error) {
	session, err := srv.store.Get(ctx, sessionKey)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, errors.Wrap(domainerrors.ErrSessionExpired, "no registration session")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load registration session")
	}
	if !session.Active(time.Now()) {
		return nil, errors.Wrap(domainerrors.ErrSessionExpired, "registration session inactive")
	}

	return session, nil
}

func statusOutput(session *entity.RegistrationSession, now time.Time) *usecase.RegistrationStatusOutput {
	return &usecase.RegistrationStatusOutput{
		CurrentStep:    session.CurrentStep,
		CompletedSteps: append([]int(nil), session.CompletedSteps...),
		StartedAt:      session.StartedAt,
		Active:         session.Active(now),
	}
}

func documentBagKey(t entity.DocumentType) string {
	return "document_" + t.String()
}

// registrationDraft is the builder aggregate assembled from the three
// step bags right before finalization.
type registrationDraft struct {
	StageName           string
	GenreID             int
	Bio                 string
	AvatarPath          string
	FullName            string
	NationalIDNumber    string
	Phone               string
	Email               string
	MobileMoneyProvider string
	MobileMoneyNumber   string
	Documents           map[entity.DocumentType]entity.UploadedFile
}

func buildDraft(session *entity.RegistrationSession, input *usecase.SubmitStep3Input) (*registrationDraft, error) {
	step1 := session.StepData(entity.StepProfile)
	step2 := session.StepData(entity.StepIdentity)
	if step1 == nil || step2 == nil {
		return nil, errors.New("step bags not accessible")
	}

	draft := &registrationDraft{
		StageName:           stringFromBag(step1, bagStageName),
		GenreID:             intFromBag(step1, bagGenreID),
		Bio:                 stringFromBag(step1, bagBio),
		FullName:            stringFromBag(step2, bagFullName),
		NationalIDNumber:    stringFromBag(step2, bagNationalID),
		Phone:               stringFromBag(step2, bagPhone),
		Email:               input.Email,
		MobileMoneyProvider: input.MobileMoneyProvider,
		MobileMoneyNumber:   input.MobileMoneyNumber,
		Documents:           make(map[entity.DocumentType]entity.UploadedFile, len(entity.RequiredDocumentTypes)),
	}
	if avatar, ok := fileFromBag(step1, bagAvatar); ok {
		draft.AvatarPath = avatar.Path
	}

	if draft.StageName == "" || draft.NationalIDNumber == "" || draft.Phone == "" {
		return nil, errors.New("required step data missing")
	}

	for _, docType := range entity.RequiredDocumentTypes {
		file, ok := fileFromBag(step2, documentBagKey(docType))
		if !ok {
			return nil, errors.Errorf("document %s missing from step bag", docType)
		}
		draft.Documents[docType] = file
	}

	return draft, nil
}

func stringFromBag(bag map[string]any, key string) string {
	if s, ok := bag[key].(string); ok {
		return s
	}

	return ""
}

func intFromBag(bag map[string]any, key string) int {
	switch v := bag[key].(type) {
	case int:
		return v
	case float64: // JSON numbers decode as float64
		return int(v)
	default:
		return 0
	}
}

// fileFromBag reads an upload metadata tuple, whether it is still the
// in-process struct or the map a JSON round trip turned it into.
func fileFromBag(bag map[string]any, key string) (entity.UploadedFile, bool) {
	switch v := bag[key].(type) {
	case entity.UploadedFile:
		return v, true
	case *entity.UploadedFile:
		return *v, true
	case map[string]any:
		file := entity.UploadedFile{
			Path:         stringFromBag(v, "path"),
			OriginalName: stringFromBag(v, "original_name"),
			MimeType:     stringFromBag(v, "mime_type"),
		}
		switch size := v["size"].(type) {
		case int64:
			file.Size = size
		case float64:
			file.Size = int64(size)
		}

		return file, file.Path != ""
	default:
		return entity.UploadedFile{}, false
	}
}
