// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"tesotunes/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for ticket persistence.
var (
	// ErrEventNotFound is returned when an event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrTicketNotFound is returned when a ticket does not exist.
	ErrTicketNotFound = errors.New("ticket not found")
)

// TicketRepository defines the operations for event and ticket persistence.
type TicketRepository interface {
	// CreateEvent persists a new event.
	CreateEvent(ctx context.Context, event *entity.Event) error

	// FindEventByID retrieves a single event.
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// CreateTicket persists a newly issued ticket.
	CreateTicket(ctx context.Context, ticket *entity.Ticket) error

	// FindTicketByCode retrieves a ticket by its check-in code.
	FindTicketByCode(ctx context.Context, code string) (*entity.Ticket, error)

	// UpdateTicket persists a ticket state change.
	UpdateTicket(ctx context.Context, ticket *entity.Ticket) error
}
