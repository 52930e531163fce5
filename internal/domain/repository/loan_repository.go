// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"tesotunes/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLoanNotFound is returned when a loan does not exist.
var ErrLoanNotFound = errors.New("loan not found")

// LoanRepository defines the operations for loan persistence.
type LoanRepository interface {
	// Create persists a new loan application.
	Create(ctx context.Context, loan *entity.Loan) error

	// FindByID retrieves a single loan.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error)

	// FindByMemberID retrieves all loans belonging to a member.
	FindByMemberID(ctx context.Context, memberID uuid.UUID) ([]*entity.Loan, error)

	// Update persists changes to a loan, computed fields included.
	Update(ctx context.Context, loan *entity.Loan) error
}
