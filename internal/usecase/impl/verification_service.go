package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"tesotunes/config"
	deliverycontext "tesotunes/internal/delivery/context"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/repository"
	"tesotunes/internal/domain/service"
	"tesotunes/internal/infra/metrics"
	"tesotunes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const verificationCodeSpace = 1000000 // 6 digits, zero padded

// generateVerificationCode produces a 6-digit numeric code from a
// cryptographic source.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(verificationCodeSpace))
	if err != nil {
		return "", errors.Wrap(err, "failed to read random verification code")
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	smsService service.SMSService
	codeTTL    time.Duration
	logger     *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	SMSService service.SMSService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	codeTTL := defaultCodeTTL
	if params.Config != nil && params.Config.Registration != nil && params.Config.Registration.CodeTTL > 0 {
		codeTTL = params.Config.Registration.CodeTTL
	}

	return &verificationService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		smsService: params.SMSService,
		codeTTL:    codeTTL,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// VerifyPhone marks the account verified when the submitted code matches
// the stored one before its expiry. Verifying an already-verified
// account succeeds without touching anything; a wrong or expired code
// fails without mutating state.
func (srv *verificationService) VerifyPhone(ctx context.Context, userID uuid.UUID, code string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for verification")
		}

		if user.PhoneVerified() {
			metrics.PhoneVerificationsTotal.WithLabelValues("already_verified").Inc()

			return nil
		}

		if user.VerificationCode == "" || user.VerificationCode != code {
			return errors.Wrap(domainerrors.ErrVerificationCodeInvalid, "verification code mismatch")
		}
		if user.VerificationExpiresAt == nil || time.Now().After(*user.VerificationExpiresAt) {
			return errors.Wrap(domainerrors.ErrVerificationCodeInvalid, "verification code expired")
		}

		now := time.Now()
		user.PhoneVerifiedAt = &now
		user.VerificationCode = ""
		user.VerificationExpiresAt = nil

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to persist phone verification")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Phone verification failed", slog.Any("userID", userID), slog.Any("error", err))
		metrics.PhoneVerificationsTotal.WithLabelValues("rejected").Inc()

		return errors.Wrap(err, "failed to execute phone verification transaction")
	}

	srv.log(ctx).Info("Phone verified", slog.Any("userID", userID))
	metrics.PhoneVerificationsTotal.WithLabelValues("verified").Inc()

	return nil
}

// ResendCode regenerates the code, invalidating any prior unconsumed
// one, and redispatches it. Rejected when the account is already verified.
func (srv *verificationService) ResendCode(ctx context.Context, userID uuid.UUID) (*usecase.ResendCodeOutput, error) {
	code, err := generateVerificationCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}
	expiry := time.Now().Add(srv.codeTTL)

	var phone string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for code resend")
		}

		if user.PhoneVerified() {
			return errors.Wrap(domainerrors.ErrAlreadyVerified, "resend rejected")
		}

		user.VerificationCode = code
		user.VerificationExpiresAt = &expiry
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to persist new verification code")
		}
		phone = user.Phone

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Code resend failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute code resend transaction")
	}

	if err := srv.smsService.SendVerificationCode(ctx, phone, code); err != nil {
		srv.log(ctx).Warn("Failed to dispatch verification SMS", slog.Any("userID", userID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Verification code resent", slog.Any("userID", userID))

	return &usecase.ResendCodeOutput{ExpiresAt: expiry}, nil
}
