// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a live show that sells tickets with QR check-in at the gate.
type Event struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the event.
	Name      string    // Public event name.
	Venue     string    // Where the event takes place.
	StartsAt  time.Time // Scheduled start time.
	CreatedAt time.Time // Timestamp of when the event was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// TicketStatus is the gate state of a ticket.
type TicketStatus string

const (
	// TicketIssued means the ticket is valid and unused.
	TicketIssued TicketStatus = "issued"
	// TicketCheckedIn means the ticket was consumed at the gate.
	TicketCheckedIn TicketStatus = "checked_in"
)

// Ticket is a single admission, identified by a unique code embedded in
// its QR image. Check-in is single-use.
type Ticket struct {
	ID          uuid.UUID    // The Global Unique Identifier (GUID) for the ticket.
	EventID     uuid.UUID    // The event this ticket admits to.
	HolderName  string       // Name of the ticket holder.
	HolderPhone string       // Holder contact number.
	Code        string       // Unique check-in code carried by the QR image.
	Status      TicketStatus // Gate state.
	CheckedInAt *time.Time   // When the ticket was consumed; nil while issued.
	CreatedAt   time.Time    // Timestamp of issuance.
	UpdatedAt   time.Time    // Timestamp of the last modification.
}
