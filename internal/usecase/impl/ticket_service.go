package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	deliverycontext "tesotunes/internal/delivery/context"
	"tesotunes/internal/domain/entity"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/repository"
	"tesotunes/internal/domain/service"
	"tesotunes/internal/infra/metrics"
	"tesotunes/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ticketService implements the TicketUsecase interface.
type ticketService struct {
	txManager  repository.TransactionManager
	ticketRepo repository.TicketRepository
	qrService  service.QRCodeService
	logger     *slog.Logger
}

// TicketServiceParams holds dependencies for TicketService, injected by Fx.
type TicketServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	TicketRepo repository.TicketRepository
	QRService  service.QRCodeService
	Logger     *slog.Logger
}

// NewTicketService is the constructor for ticketService.
func NewTicketService(params TicketServiceParams) usecase.TicketUsecase {
	return &ticketService{
		txManager:  params.TxManager,
		ticketRepo: params.TicketRepo,
		qrService:  params.QRService,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *ticketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEvent creates an event.
func (srv *ticketService) CreateEvent(ctx context.Context, input *usecase.CreateEventInput) (*entity.Event, error) {
	var fields []domainerrors.FieldError
	if input.Name == "" {
		fields = append(fields, domainerrors.FieldError{Field: "name", Code: "REQUIRED", Message: "Event name is required"})
	}
	if input.StartsAt.IsZero() {
		fields = append(fields, domainerrors.FieldError{Field: "starts_at", Code: "REQUIRED", Message: "Event start time is required"})
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields...)
	}

	event := &entity.Event{
		Name:     input.Name,
		Venue:    input.Venue,
		StartsAt: input.StartsAt,
	}
	if err := srv.ticketRepo.CreateEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.log(ctx).Info("Event created", slog.Any("eventID", event.ID), slog.String("name", event.Name))

	return event, nil
}

// IssueTicket issues a ticket with a unique check-in code and renders
// its QR image.
func (srv *ticketService) IssueTicket(ctx context.Context, input *usecase.IssueTicketInput) (*usecase.IssueTicketOutput, error) {
	if _, err := srv.ticketRepo.FindEventByID(ctx, input.EventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "event lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	code, err := generateTicketCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate ticket code")
	}

	ticket := &entity.Ticket{
		EventID:     input.EventID,
		HolderName:  input.HolderName,
		HolderPhone: input.HolderPhone,
		Code:        code,
		Status:      entity.TicketIssued,
	}
	if err := srv.ticketRepo.CreateTicket(ctx, ticket); err != nil {
		return nil, errors.Wrap(err, "failed to create ticket")
	}

	qrCode, err := srv.qrService.GenerateTicketQR(code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render ticket QR code")
	}

	srv.log(ctx).Info("Ticket issued", slog.Any("ticketID", ticket.ID), slog.Any("eventID", input.EventID))

	return &usecase.IssueTicketOutput{
		Ticket: ticket,
		QRCode: qrCode,
	}, nil
}

// CheckIn consumes a ticket by its code. Tickets are single-use: the
// second scan of the same code fails with a specific error.
func (srv *ticketService) CheckIn(ctx context.Context, code string) (*entity.Ticket, error) {
	var checked *entity.Ticket

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ticketRepo := repoFactory.TicketRepo()

		ticket, err := ticketRepo.FindTicketByCode(ctx, code)
		if errors.Is(err, repository.ErrTicketNotFound) {
			return errors.Wrap(domainerrors.ErrTicketNotFound, "ticket lookup failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find ticket")
		}

		if ticket.Status == entity.TicketCheckedIn {
			return errors.Wrap(domainerrors.ErrTicketAlreadyCheckedIn, "check-in rejected")
		}

		now := time.Now()
		ticket.Status = entity.TicketCheckedIn
		ticket.CheckedInAt = &now

		if err := ticketRepo.UpdateTicket(ctx, ticket); err != nil {
			return errors.Wrap(err, "failed to persist check-in")
		}
		checked = ticket

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Ticket check-in failed", slog.String("code", code), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute check-in transaction")
	}

	srv.log(ctx).Info("Ticket checked in", slog.Any("ticketID", checked.ID))
	metrics.TicketsCheckedInTotal.Inc()

	return checked, nil
}

// generateTicketCode produces a short unguessable code for the QR payload.
func generateTicketCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random ticket code")
	}

	return "TKT-" + strings.ToUpper(hex.EncodeToString(buf)), nil
}
