// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tesotunes/internal/domain/entity"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/repository"
	"tesotunes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ticketRepository implements the domain.TicketRepository interface using GORM.
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository is the constructor for ticketRepository.
func NewTicketRepository(db *gorm.DB) repository.TicketRepository {
	return &ticketRepository{db: db}
}

// CreateEvent persists a new event.
func (repo *ticketRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindEventByID retrieves a single event.
func (repo *ticketRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by id")
	}

	return toEventDomain(&eventM), nil
}

// CreateTicket persists a newly issued ticket.
func (repo *ticketRepository) CreateTicket(ctx context.Context, ticket *entity.Ticket) error {
	ticketM := fromTicketDomain(ticket)

	if err := repo.db.WithContext(ctx).Create(ticketM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("ticket code already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEventNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ticket")
	}

	ticket.ID = ticketM.ID
	ticket.CreatedAt = ticketM.CreatedAt
	ticket.UpdatedAt = ticketM.UpdatedAt

	return nil
}

// FindTicketByCode retrieves a ticket by its check-in code.
func (repo *ticketRepository) FindTicketByCode(ctx context.Context, code string) (*entity.Ticket, error) {
	var ticketM model.TicketModel
	err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&ticketM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to find ticket by code")
	}

	return toTicketDomain(&ticketM), nil
}

// UpdateTicket persists a ticket state change.
func (repo *ticketRepository) UpdateTicket(ctx context.Context, ticket *entity.Ticket) error {
	ticketM := fromTicketDomain(ticket)

	if err := repo.db.WithContext(ctx).Save(ticketM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update ticket")
	}

	ticket.UpdatedAt = ticketM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toEventDomain converts a GORM EventModel to a domain Event entity.
func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:        data.ID,
		Name:      data.Name,
		Venue:     data.Venue,
		StartsAt:  data.StartsAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromEventDomain converts a domain Event entity to a GORM EventModel.
func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:        data.ID,
		Name:      data.Name,
		Venue:     data.Venue,
		StartsAt:  data.StartsAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toTicketDomain converts a GORM TicketModel to a domain Ticket entity.
func toTicketDomain(data *model.TicketModel) *entity.Ticket {
	if data == nil {
		return nil
	}

	return &entity.Ticket{
		ID:          data.ID,
		EventID:     data.EventID,
		HolderName:  data.HolderName,
		HolderPhone: data.HolderPhone,
		Code:        data.Code,
		Status:      entity.TicketStatus(data.Status),
		CheckedInAt: data.CheckedInAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTicketDomain converts a domain Ticket entity to a GORM TicketModel.
func fromTicketDomain(data *entity.Ticket) *model.TicketModel {
	if data == nil {
		return nil
	}

	return &model.TicketModel{
		ID:          data.ID,
		EventID:     data.EventID,
		HolderName:  data.HolderName,
		HolderPhone: data.HolderPhone,
		Code:        data.Code,
		Status:      string(data.Status),
		CheckedInAt: data.CheckedInAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
