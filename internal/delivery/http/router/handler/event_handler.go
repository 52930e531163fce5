package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"tesotunes/internal/delivery/http/response"
	"tesotunes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for event ticketing handlers.
type EventHandler struct {
	uc     usecase.TicketUsecase
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.TicketUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		uc:     uc,
		logger: logger,
	}
}

type createEventRequest struct {
	Name     string    `json:"name" validate:"required"`
	Venue    string    `json:"venue"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
}

type issueTicketRequest struct {
	HolderName  string `json:"holder_name" validate:"required"`
	HolderPhone string `json:"holder_phone"`
}

type checkInRequest struct {
	Code string `json:"code" validate:"required"`
}

// CreateEvent creates an event.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	event, err := h.uc.CreateEvent(c.Request().Context(), &usecase.CreateEventInput{
		Name:     req.Name,
		Venue:    req.Venue,
		StartsAt: req.StartsAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created")
}

// IssueTicket issues a ticket for an event. The QR PNG travels base64
// encoded inside the JSON envelope.
func (h *EventHandler) IssueTicket(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	var req issueTicketRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ticket input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.IssueTicket(c.Request().Context(), &usecase.IssueTicketInput{
		EventID:     eventID,
		HolderName:  req.HolderName,
		HolderPhone: req.HolderPhone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"ticket":  output.Ticket,
		"qr_code": base64.StdEncoding.EncodeToString(output.QRCode),
	}, "Ticket issued")
}

// CheckIn consumes a ticket at the gate.
func (h *EventHandler) CheckIn(c echo.Context) error {
	var req checkInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ticket, err := h.uc.CheckIn(c.Request().Context(), req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ticket, "Ticket checked in")
}
