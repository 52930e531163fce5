package usecase

import (
	"context"

	"tesotunes/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the raw refresh token presented for renewal.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token to invalidate.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns a fresh access token. The refresh token
// itself is not rotated.
type RefreshTokenOutput struct {
	AccessToken string
}

// UserUsecase defines the interface for account session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
