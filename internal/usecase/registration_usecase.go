// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"
	"time"

	"tesotunes/internal/domain/entity"
)

// --- Input DTOs ---

// SubmitStep1Input carries the profile-basics submission of the wizard.
type SubmitStep1Input struct {
	SessionKey string
	StageName  string
	GenreID    int
	Bio        string
}

// UploadAvatarInput carries an avatar upload during step 1.
type UploadAvatarInput struct {
	SessionKey   string
	OriginalName string
	MimeType     string
	Size         int64
	Content      io.Reader
}

// UploadDocumentInput carries one KYC document upload during step 2.
type UploadDocumentInput struct {
	SessionKey   string
	Type         entity.DocumentType
	OriginalName string
	MimeType     string
	Size         int64
	Content      io.Reader
}

// SubmitStep2Input carries the identity/KYC submission of the wizard.
type SubmitStep2Input struct {
	SessionKey       string
	FullName         string
	NationalIDNumber string
	Phone            string
}

// SubmitStep3Input carries the payment-and-credentials submission that
// finalizes the wizard into a real account.
type SubmitStep3Input struct {
	SessionKey          string
	MobileMoneyProvider string
	MobileMoneyNumber   string
	Email               string
	Password            string
	TermsAccepted       bool
}

// --- Output DTOs ---

// RegistrationStatusOutput reflects the wizard state back to the client.
type RegistrationStatusOutput struct {
	CurrentStep    int
	CompletedSteps []int
	StartedAt      time.Time
	Active         bool
}

// FinalizeOutput returns the newly created artist account together with
// its first token pair and the phone-verification deadline.
type FinalizeOutput struct {
	User                  *entity.User
	AccessToken           string
	RefreshToken          string
	VerificationExpiresAt time.Time
}

// RegistrationUsecase drives the three-step artist onboarding wizard.
// Step N+1 is inaccessible until step N's validated submission has been
// recorded; the final submission creates the account atomically.
type RegistrationUsecase interface {
	// Initialize resets the wizard to a pristine step-1 state,
	// unconditionally overwriting any prior session under the key.
	Initialize(ctx context.Context, sessionKey string) (*RegistrationStatusOutput, error)

	// Status reports the current wizard state without mutating it.
	Status(ctx context.Context, sessionKey string) (*RegistrationStatusOutput, error)

	// SubmitStep1 validates and records the profile basics.
	SubmitStep1(ctx context.Context, input *SubmitStep1Input) (*RegistrationStatusOutput, error)

	// UploadAvatar stores an avatar image and records its metadata in the
	// step-1 bag. Only the metadata tuple enters the session.
	UploadAvatar(ctx context.Context, input *UploadAvatarInput) (*entity.UploadedFile, error)

	// UploadDocument stores one KYC document and records its metadata in
	// the step-2 bag. Requires step 1 to be completed.
	UploadDocument(ctx context.Context, input *UploadDocumentInput) (*entity.UploadedFile, error)

	// SubmitStep2 validates and records the identity data. National-ID
	// and phone uniqueness are pre-checked and returned as field errors.
	SubmitStep2(ctx context.Context, input *SubmitStep2Input) (*RegistrationStatusOutput, error)

	// SubmitStep3 validates the final step and atomically creates the
	// account, artist profile, pending KYC documents, role grant, and
	// audit entry; then issues the phone-verification code, dispatches
	// it, logs the new account in, and clears the session.
	SubmitStep3(ctx context.Context, input *SubmitStep3Input) (*FinalizeOutput, error)
}
