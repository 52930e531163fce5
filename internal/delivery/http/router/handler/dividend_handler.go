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
	"github.com/shopspring/decimal"
)

// DividendHandler holds dependencies for dividend administration handlers.
type DividendHandler struct {
	uc     usecase.DividendUsecase
	logger *slog.Logger
}

// NewDividendHandler is the constructor for DividendHandler, injected by Fx.
func NewDividendHandler(uc usecase.DividendUsecase, logger *slog.Logger) *DividendHandler {
	return &DividendHandler{
		uc:     uc,
		logger: logger,
	}
}

type calculateDividendRequest struct {
	Year                     int             `json:"year" validate:"required"`
	TotalProfit              decimal.Decimal `json:"total_profit" validate:"required"`
	DistributionPercentage   decimal.Decimal `json:"distribution_percentage" validate:"required"`
	WithholdingTaxPercentage decimal.Decimal `json:"withholding_tax_percentage"`
}

type cancelDividendRequest struct {
	Reason string `json:"reason"`
}

// Calculate computes a fiscal year's dividend and its distributions.
func (h *DividendHandler) Calculate(c echo.Context) error {
	var req calculateDividendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dividend calculation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	dividend, err := h.uc.Calculate(c.Request().Context(), &usecase.CalculateDividendInput{
		Year:                     req.Year,
		TotalProfit:              req.TotalProfit,
		DistributionPercentage:   req.DistributionPercentage,
		WithholdingTaxPercentage: req.WithholdingTaxPercentage,
		ActorID:                  middleware.UserID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, dividend, "Dividend calculated")
}

// Get retrieves a dividend and its distributions.
func (h *DividendHandler) Get(c echo.Context) error {
	dividendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dividend id")
	}

	output, err := h.uc.Get(c.Request().Context(), dividendID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"dividend":      output.Dividend,
		"distributions": output.Distributions,
	}, "")
}

// Approve authorizes a calculated dividend.
func (h *DividendHandler) Approve(c echo.Context) error {
	dividendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dividend id")
	}

	dividend, err := h.uc.Approve(c.Request().Context(), dividendID, middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dividend, "Dividend approved")
}

// Distribute moves the approved dividend's funds to member accounts.
func (h *DividendHandler) Distribute(c echo.Context) error {
	dividendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dividend id")
	}

	dividend, err := h.uc.Distribute(c.Request().Context(), dividendID, middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dividend, "Dividend distributed")
}

// Cancel abandons a not-yet-distributed dividend.
func (h *DividendHandler) Cancel(c echo.Context) error {
	dividendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dividend id")
	}

	var req cancelDividendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancellation input")
	}

	dividend, err := h.uc.Cancel(c.Request().Context(), dividendID, middleware.UserID(c), req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dividend, "Dividend cancelled")
}
