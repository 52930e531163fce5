package handler

import (
	"log/slog"
	"net/http"

	"tesotunes/internal/delivery/http/middleware"
	"tesotunes/internal/delivery/http/response"
	"tesotunes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// KYCHandler holds dependencies for the admin KYC review handlers.
type KYCHandler struct {
	uc     usecase.KYCUsecase
	logger *slog.Logger
}

// NewKYCHandler is the constructor for KYCHandler, injected by Fx.
func NewKYCHandler(uc usecase.KYCUsecase, logger *slog.Logger) *KYCHandler {
	return &KYCHandler{
		uc:     uc,
		logger: logger,
	}
}

type rejectDocumentRequest struct {
	Reason string `json:"reason"`
}

// ListPending retrieves the review queue, oldest upload first.
func (h *KYCHandler) ListPending(c echo.Context) error {
	docs, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, docs, "")
}

// Approve marks a pending document active.
func (h *KYCHandler) Approve(c echo.Context) error {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid document id")
	}

	doc, err := h.uc.Approve(c.Request().Context(), documentID, middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, doc, "Document approved")
}

// Reject marks a pending document rejected with a reason.
func (h *KYCHandler) Reject(c echo.Context) error {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid document id")
	}

	var req rejectDocumentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	doc, err := h.uc.Reject(c.Request().Context(), documentID, middleware.UserID(c), req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, doc, "Document rejected")
}
