package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tesotunes/internal/delivery/context"
	"tesotunes/internal/domain/entity"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/repository"
	"tesotunes/internal/domain/service"
	"tesotunes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login orchestrates the user login process. Only finalized, active
// accounts can log in.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	authRecord, err := srv.loadLoginAuth(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	loggedInUser, roles, err := srv.loadLoginUser(ctx, authRecord.UserID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	if loggedInUser.Status != entity.AccountActive {
		srv.log(ctx).Warn("Login rejected for inactive account", slog.Any("userID", loggedInUser.ID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "account is not active")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newRefreshToken := &entity.RefreshToken{
		UserID:    loggedInUser.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

func (srv *userService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Load authentication from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		var findAuthErr error
		authRecord, findAuthErr = authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findAuthErr != nil {
			if errors.Is(findAuthErr, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findAuthErr, "failed to find authentication")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login auth transaction")
	}

	return authRecord, nil
}

func (srv *userService) loadLoginUser(ctx context.Context, userID uuid.UUID) (*entity.User, entity.Roles, error) {
	var (
		loggedInUser *entity.User
		roles        entity.Roles
	)

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var findErr error
		loggedInUser, findErr = userRepo.FindByID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find user by id")
		}

		roles, findErr = userRepo.FindRoles(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load user roles")
		}

		return nil
	}); err != nil {
		return nil, nil, errors.Wrap(err, "failed to execute login user transaction")
	}

	return loggedInUser, roles, nil
}

// RefreshToken issues a new access token from a valid refresh token.
// The refresh token itself remains unchanged.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token validation failed")
	}

	var newAccessToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		tokenHash := srv.tokenService.HashToken(input.RefreshToken)
		if _, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		roles, err := userRepo.FindRoles(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load user roles")
		}

		// Only a new access token; the refresh token is not rotated.
		newAccessToken, _, err = srv.tokenService.GenerateTokens(user.ID, roles.ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken: newAccessToken,
	}, nil
}

// Logout invalidates a session by deleting its refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}
