package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel mirrors the append-only 'audit_logs' table.
// Detail carries the structured context as raw JSONB.
type AuditLogModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActorID     *uuid.UUID `gorm:"type:uuid"`
	Action      string     `gorm:"type:varchar(100);not null;index"`
	SubjectType string     `gorm:"type:varchar(50);not null"`
	SubjectID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Detail      []byte     `gorm:"type:jsonb"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
