// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType identifies which identity artifact a KYC upload is.
type DocumentType string

const (
	// DocumentNationalIDFront is the front face of the national ID card.
	DocumentNationalIDFront DocumentType = "national_id_front"
	// DocumentNationalIDBack is the back face of the national ID card.
	DocumentNationalIDBack DocumentType = "national_id_back"
	// DocumentSelfie is the applicant's selfie for face matching.
	DocumentSelfie DocumentType = "selfie"
)

// String returns the string representation of the DocumentType.
func (t DocumentType) String() string {
	return string(t)
}

// IsValid checks if the DocumentType is a valid value.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentNationalIDFront, DocumentNationalIDBack, DocumentSelfie:
		return true
	default:
		return false
	}
}

// RequiredDocumentTypes lists the uploads step 2 of onboarding must contain.
var RequiredDocumentTypes = []DocumentType{
	DocumentNationalIDFront,
	DocumentNationalIDBack,
	DocumentSelfie,
}

// DocumentStatus is the review state of a KYC document.
type DocumentStatus string

const (
	// DocumentPending means the document awaits admin review.
	DocumentPending DocumentStatus = "pending"
	// DocumentActive means an admin approved the document.
	DocumentActive DocumentStatus = "active"
	// DocumentRejected means an admin rejected the document.
	DocumentRejected DocumentStatus = "rejected"
)

// KYCDocument is one uploaded identity artifact. It is created during
// step 2 of registration and mutated only by an admin review action,
// never by the applicant after upload.
type KYCDocument struct {
	ID              uuid.UUID      // The Global Unique Identifier (GUID) for the document.
	UserID          uuid.UUID      // The applicant who owns this document.
	Type            DocumentType   // Which identity artifact this is.
	Path            string         // Storage path inside the upload bucket.
	OriginalName    string         // The file name as uploaded by the applicant.
	MimeType        string         // Detected MIME type of the upload.
	SizeBytes       int64          // Upload size in bytes.
	Status          DocumentStatus // Review state.
	VerifiedBy      *uuid.UUID     // Admin who reviewed the document; nil while pending.
	RejectionReason string         // Reason captured on rejection.
	CreatedAt       time.Time      // Timestamp of the upload.
	UpdatedAt       time.Time      // Timestamp of the last modification.
}

// Reviewed reports whether an admin has already acted on the document.
func (d *KYCDocument) Reviewed() bool {
	return d.Status != DocumentPending
}
