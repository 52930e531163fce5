package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"tesotunes/internal/domain/entity"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/repository"
	mockRepo "tesotunes/internal/mocks/repository"
	mockService "tesotunes/internal/mocks/service"
	"tesotunes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ticketServiceFixtures holds all test dependencies for ticket service tests.
type ticketServiceFixtures struct {
	service    usecase.TicketUsecase
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	ticketRepo *mockRepo.MockTicketRepository
	qrService  *mockService.MockQRCodeService
}

func createTestTicketService(t *testing.T) ticketServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	ticketRepo := mockRepo.NewMockTicketRepository(t)
	qrService := mockService.NewMockQRCodeService(t)

	service := NewTicketService(TicketServiceParams{
		TxManager:  txManager,
		TicketRepo: ticketRepo,
		QRService:  qrService,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return ticketServiceFixtures{
		service:    service,
		txManager:  txManager,
		factory:    factory,
		ticketRepo: ticketRepo,
		qrService:  qrService,
	}
}

func (fx ticketServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestTicketService_CreateEvent_Success(t *testing.T) {
	fx := createTestTicketService(t)

	ctx := context.Background()
	startsAt := time.Date(2026, time.December, 12, 19, 0, 0, 0, time.UTC)

	fx.ticketRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.Event")).
		Return(nil)

	event, err := fx.service.CreateEvent(ctx, &usecase.CreateEventInput{
		Name:     "Teso Night Live",
		Venue:    "Soroti Sports Grounds",
		StartsAt: startsAt,
	})
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, "Teso Night Live", event.Name)
	assert.Equal(t, "Soroti Sports Grounds", event.Venue)
	assert.Equal(t, startsAt, event.StartsAt)
}

func TestTicketService_CreateEvent_RequiresNameAndStart(t *testing.T) {
	fx := createTestTicketService(t)

	ctx := context.Background()

	event, err := fx.service.CreateEvent(ctx, &usecase.CreateEventInput{Venue: "Soroti Sports Grounds"})
	require.Error(t, err)
	assert.Nil(t, event)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.True(t, validationErr.HasField("name"))
	assert.True(t, validationErr.HasField("starts_at"))
}

func TestTicketService_IssueTicket_Success(t *testing.T) {
	fx := createTestTicketService(t)

	ctx := context.Background()
	eventID := uuid.New()
	qrImage := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.ticketRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(&entity.Event{ID: eventID, Name: "Teso Night Live"}, nil)
	fx.ticketRepo.EXPECT().
		CreateTicket(ctx, mock.AnythingOfType("*entity.Ticket")).
		Return(nil)
	fx.qrService.EXPECT().
		GenerateTicketQR(mock.AnythingOfType("string")).
		Return(qrImage, nil)

	output, err := fx.service.IssueTicket(ctx, &usecase.IssueTicketInput{
		EventID:     eventID,
		HolderName:  "Akello Grace",
		HolderPhone: "256771234567",
	})
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, eventID, output.Ticket.EventID)
	assert.Equal(t, entity.TicketIssued, output.Ticket.Status)
	assert.True(t, strings.HasPrefix(output.Ticket.Code, "TKT-"), "code = %s", output.Ticket.Code)
	assert.Equal(t, qrImage, output.QRCode)
}

func TestTicketService_IssueTicket_UnknownEvent(t *testing.T) {
	fx := createTestTicketService(t)

	ctx := context.Background()
	eventID := uuid.New()

	fx.ticketRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(nil, repository.ErrEventNotFound)

	output, err := fx.service.IssueTicket(ctx, &usecase.IssueTicketInput{EventID: eventID})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestTicketService_CheckIn_Success(t *testing.T) {
	fx := createTestTicketService(t)

	ctx := context.Background()
	ticket := &entity.Ticket{
		ID:     uuid.New(),
		Code:   "TKT-4F9A1B2C3D5E",
		Status: entity.TicketIssued,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().TicketRepo().Return(fx.ticketRepo)
	fx.ticketRepo.EXPECT().FindTicketByCode(ctx, "TKT-4F9A1B2C3D5E").Return(ticket, nil)
	fx.ticketRepo.EXPECT().UpdateTicket(ctx, mock.AnythingOfType("*entity.Ticket")).Return(nil)

	checked, err := fx.service.CheckIn(ctx, "TKT-4F9A1B2C3D5E")
	require.NoError(t, err)

	assert.Equal(t, entity.TicketCheckedIn, checked.Status)
	require.NotNil(t, checked.CheckedInAt)
}

func TestTicketService_CheckIn_SecondScanRejected(t *testing.T) {
	fx := createTestTicketService(t)

	ctx := context.Background()
	checkedInAt := time.Now().Add(-time.Hour)
	ticket := &entity.Ticket{
		ID:          uuid.New(),
		Code:        "TKT-4F9A1B2C3D5E",
		Status:      entity.TicketCheckedIn,
		CheckedInAt: &checkedInAt,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().TicketRepo().Return(fx.ticketRepo)
	fx.ticketRepo.EXPECT().FindTicketByCode(ctx, "TKT-4F9A1B2C3D5E").Return(ticket, nil)

	checked, err := fx.service.CheckIn(ctx, "TKT-4F9A1B2C3D5E")
	require.Error(t, err)
	assert.Nil(t, checked)
	assert.True(t, errors.Is(err, domainerrors.ErrTicketAlreadyCheckedIn))
}

func TestTicketService_CheckIn_UnknownCode(t *testing.T) {
	fx := createTestTicketService(t)

	ctx := context.Background()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().TicketRepo().Return(fx.ticketRepo)
	fx.ticketRepo.EXPECT().FindTicketByCode(ctx, "TKT-MISSING").Return(nil, repository.ErrTicketNotFound)

	checked, err := fx.service.CheckIn(ctx, "TKT-MISSING")
	require.Error(t, err)
	assert.Nil(t, checked)
	assert.True(t, errors.Is(err, domainerrors.ErrTicketNotFound))
}
