// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tesotunes/internal/domain/entity"
)

// AuditRepository appends operator-facing audit entries. Entries are
// written inside the same transaction as the action they describe.
type AuditRepository interface {
	// Create appends one audit entry.
	Create(ctx context.Context, entry *entity.AuditLog) error
}
