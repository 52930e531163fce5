package model

import (
	"time"

	"github.com/google/uuid"
)

// KYCDocumentModel mirrors the 'kyc_documents' table.
type KYCDocumentModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type            string     `gorm:"type:varchar(30);not null"`
	Path            string     `gorm:"type:varchar(512);not null"`
	OriginalName    string     `gorm:"type:varchar(255);not null"`
	MimeType        string     `gorm:"type:varchar(100)"`
	SizeBytes       int64      `gorm:"not null"`
	Status          string     `gorm:"type:varchar(20);not null;index"`
	VerifiedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string     `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (KYCDocumentModel) TableName() string {
	return "kyc_documents"
}
