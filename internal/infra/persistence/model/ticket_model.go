package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table.
type EventModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Venue     string    `gorm:"type:varchar(255)"`
	StartsAt  time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// TicketModel mirrors the 'tickets' table, one row per admission.
type TicketModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EventID     uuid.UUID `gorm:"type:uuid;not null;index"`
	HolderName  string    `gorm:"type:varchar(255);not null"`
	HolderPhone string    `gorm:"type:varchar(20)"`
	Code        string    `gorm:"type:varchar(30);not null;uniqueIndex"`
	Status      string    `gorm:"type:varchar(20);not null"`
	CheckedInAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TicketModel) TableName() string {
	return "tickets"
}
