// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus tracks where an artist application sits in review.
type ApplicationStatus string

const (
	// ApplicationPending means the artist account was created but KYC review is outstanding.
	ApplicationPending ApplicationStatus = "pending"
	// ApplicationApproved means an admin accepted the application.
	ApplicationApproved ApplicationStatus = "approved"
	// ApplicationRejected means an admin declined the application.
	ApplicationRejected ApplicationStatus = "rejected"
)

// AccountStatus is the operational state of an account.
type AccountStatus string

const (
	// AccountActive is the normal state; the account can log in and act.
	AccountActive AccountStatus = "active"
	// AccountSuspended blocks the account from all authenticated actions.
	AccountSuspended AccountStatus = "suspended"
)

// User is the core entity in the system, representing a unique account.
// An artist account additionally carries an ArtistProfile.
type User struct {
	ID                    uuid.UUID         // The Global Unique Identifier (GUID) for the user.
	Email                 string            // Primary contact email, used as a login identifier.
	Phone                 string            // Mobile number in 256XXXXXXXXX form.
	Username              string            // Unique handle derived from the stage name at registration.
	FullName              string            // Legal name, from KYC step 2.
	IsArtist              bool              // True for accounts created through artist onboarding.
	ApplicationStatus     ApplicationStatus // Artist application review state.
	Status                AccountStatus     // Operational account state.
	PhoneVerifiedAt       *time.Time        // When phone verification succeeded; nil until then.
	VerificationCode      string            // Current unconsumed OTP; empty once verified.
	VerificationExpiresAt *time.Time        // When the current OTP stops being accepted.
	ArtistProfile         *ArtistProfile    // Artist-specific data. Nil for non-artist accounts.
	CreatedAt             time.Time         // Timestamp of when this account was created.
	UpdatedAt             time.Time         // Timestamp of the last modification.
}

// PhoneVerified reports whether the account has completed phone verification.
func (u *User) PhoneVerified() bool {
	return u.PhoneVerifiedAt != nil
}

// ArtistProfile holds data specific to the artist role, collected during
// the three-step onboarding wizard.
type ArtistProfile struct {
	UserID              uuid.UUID // Foreign Key that links this profile to a core User entity.
	StageName           string    // Public display name, distinct from the legal name. Unique.
	GenreID             int       // Primary genre the artist performs.
	Bio                 string    // Free-text biography shown on the artist page.
	AvatarPath          string    // Storage path of the uploaded avatar, if any.
	MobileMoneyProvider string    // Payout provider, "mtn" or "airtel".
	MobileMoneyNumber   string    // Payout number in 256XXXXXXXXX form.
	NationalIDNumber    string    // 14-character Ugandan NIN. Unique.
	UpdatedAt           time.Time // Timestamp of the last modification.
}
