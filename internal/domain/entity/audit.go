// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is one append-only operator-facing record of a sensitive
// action, such as account creation or a dividend distribution.
type AuditLog struct {
	ID          uuid.UUID      // The Global Unique Identifier (GUID) for the entry.
	ActorID     *uuid.UUID     // Acting user; nil for system actions.
	Action      string         // Machine-readable action name, e.g. "artist.registered".
	SubjectType string         // Entity kind the action touched, e.g. "user".
	SubjectID   uuid.UUID      // Entity the action touched.
	Detail      map[string]any // Structured context for operators.
	CreatedAt   time.Time      // Timestamp of the action.
}
