// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"tesotunes/internal/domain/entity"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/repository"
	"tesotunes/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditRepository implements the domain.AuditRepository interface using GORM.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

// Create appends one audit entry. Detail is stored as JSONB.
func (repo *auditRepository) Create(ctx context.Context, entry *entity.AuditLog) error {
	entryM := &model.AuditLogModel{
		ID:          entry.ID,
		ActorID:     entry.ActorID,
		Action:      entry.Action,
		SubjectType: entry.SubjectType,
		SubjectID:   entry.SubjectID,
	}

	if entry.Detail != nil {
		detail, err := json.Marshal(entry.Detail)
		if err != nil {
			return errors.Wrap(err, "failed to marshal audit detail")
		}
		entryM.Detail = detail
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit log entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}
