package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ResendCodeOutput returns the expiry of the freshly issued code.
type ResendCodeOutput struct {
	ExpiresAt time.Time
}

// VerificationUsecase manages the mandatory phone-verification sub-flow
// that follows account creation.
type VerificationUsecase interface {
	// VerifyPhone marks the account verified when the code matches and
	// has not expired. Verifying an already-verified account is a no-op
	// success; a wrong or expired code fails without mutating state.
	VerifyPhone(ctx context.Context, userID uuid.UUID, code string) error

	// ResendCode regenerates and redispatches the code, invalidating any
	// prior unconsumed one. Rejected when the account is already verified.
	ResendCode(ctx context.Context, userID uuid.UUID) (*ResendCodeOutput, error)
}
