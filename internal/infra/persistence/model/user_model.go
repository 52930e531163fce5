// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email                 string    `gorm:"type:varchar(255);unique;not null"`
	Phone                 string    `gorm:"type:varchar(20);unique"`
	Username              string    `gorm:"type:varchar(100);unique;not null"`
	FullName              string    `gorm:"type:varchar(255)"`
	IsArtist              bool      `gorm:"not null;default:false"`
	ApplicationStatus     string    `gorm:"type:varchar(20)"`
	Status                string    `gorm:"type:varchar(20);not null"`
	PhoneVerifiedAt       *time.Time
	VerificationCode      string `gorm:"type:varchar(10)"`
	VerificationExpiresAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             *time.Time `gorm:"index"`

	ArtistProfile *ArtistProfileModel `gorm:"foreignKey:UserID"`
	Roles         []UserRoleModel     `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ArtistProfileModel mirrors the 'artist_profiles' table. UserID references users.id (UUID).
type ArtistProfileModel struct {
	UserID              uuid.UUID `gorm:"primaryKey"`
	StageName           string    `gorm:"type:varchar(100);not null;unique"`
	GenreID             int       `gorm:"not null"`
	Bio                 string    `gorm:"type:text"`
	AvatarPath          string    `gorm:"type:varchar(512)"`
	MobileMoneyProvider string    `gorm:"type:varchar(20);not null"`
	MobileMoneyNumber   string    `gorm:"type:varchar(20);not null"`
	NationalIDNumber    string    `gorm:"type:varchar(14);not null;unique"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArtistProfileModel) TableName() string {
	return "artist_profiles"
}

// UserRoleModel mirrors the 'user_roles' table, one row per granted role.
type UserRoleModel struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	Role      string    `gorm:"type:varchar(20);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserRoleModel) TableName() string {
	return "user_roles"
}
