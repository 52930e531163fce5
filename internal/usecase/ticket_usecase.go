package usecase

import (
	"context"
	"time"

	"tesotunes/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateEventInput defines the data required to create an event.
type CreateEventInput struct {
	Name     string
	Venue    string
	StartsAt time.Time
}

// IssueTicketInput defines the data required to issue a ticket.
type IssueTicketInput struct {
	EventID     uuid.UUID
	HolderName  string
	HolderPhone string
}

// IssueTicketOutput returns the issued ticket and its QR code image.
type IssueTicketOutput struct {
	Ticket *entity.Ticket
	QRCode []byte
}

// TicketUsecase defines the interface for event ticketing use cases.
type TicketUsecase interface {
	// CreateEvent creates an event.
	CreateEvent(ctx context.Context, input *CreateEventInput) (*entity.Event, error)

	// IssueTicket issues a ticket with a unique check-in code and its QR
	// code rendering.
	IssueTicket(ctx context.Context, input *IssueTicketInput) (*IssueTicketOutput, error)

	// CheckIn consumes a ticket by its code. A second check-in of the
	// same ticket fails with a specific already-checked-in error.
	CheckIn(ctx context.Context, code string) (*entity.Ticket, error)
}
