package handler

import (
	"log/slog"
	"net/http"

	"tesotunes/internal/delivery/http/middleware"
	"tesotunes/internal/delivery/http/response"
	"tesotunes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VerificationHandler holds dependencies for phone verification handlers.
type VerificationHandler struct {
	uc     usecase.VerificationUsecase
	logger *slog.Logger
}

// NewVerificationHandler is the constructor for VerificationHandler, injected by Fx.
func NewVerificationHandler(uc usecase.VerificationUsecase, logger *slog.Logger) *VerificationHandler {
	return &VerificationHandler{
		uc:     uc,
		logger: logger,
	}
}

type verifyPhoneRequest struct {
	Code string `json:"code" validate:"required"`
}

// VerifyPhone confirms the authenticated account's phone number.
func (h *VerificationHandler) VerifyPhone(c echo.Context) error {
	var req verifyPhoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID := middleware.UserID(c)
	if err := h.uc.VerifyPhone(c.Request().Context(), userID, req.Code); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Phone verified")
}

// ResendCode issues a fresh verification code to the authenticated account.
func (h *VerificationHandler) ResendCode(c echo.Context) error {
	userID := middleware.UserID(c)

	output, err := h.uc.ResendCode(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"expires_at": output.ExpiresAt}, "Verification code sent")
}
