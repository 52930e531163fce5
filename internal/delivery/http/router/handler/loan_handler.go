package handler

import (
	"log/slog"
	"net/http"

	"tesotunes/internal/delivery/http/middleware"
	"tesotunes/internal/delivery/http/response"
	"tesotunes/internal/domain/entity"
	"tesotunes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// LoanHandler holds dependencies for SACCO loan handlers.
type LoanHandler struct {
	uc     usecase.LoanUsecase
	logger *slog.Logger
}

// NewLoanHandler is the constructor for LoanHandler, injected by Fx.
func NewLoanHandler(uc usecase.LoanUsecase, logger *slog.Logger) *LoanHandler {
	return &LoanHandler{
		uc:     uc,
		logger: logger,
	}
}

type applyLoanRequest struct {
	Principal    decimal.Decimal `json:"principal" validate:"required"`
	InterestRate decimal.Decimal `json:"interest_rate" validate:"required"`
	TenureMonths int             `json:"tenure_months" validate:"required,gt=0"`
	Purpose      string          `json:"purpose"`
}

type updateLoanTermsRequest struct {
	Principal    decimal.Decimal `json:"principal" validate:"required"`
	InterestRate decimal.Decimal `json:"interest_rate" validate:"required"`
	TenureMonths int             `json:"tenure_months" validate:"required,gt=0"`
}

type repaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

type transitionRequest struct {
	Status string `json:"status" validate:"required"`
}

// Apply opens a loan application for the authenticated member.
func (h *LoanHandler) Apply(c echo.Context) error {
	var req applyLoanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid loan application input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	loan, err := h.uc.Apply(c.Request().Context(), &usecase.ApplyLoanInput{
		MemberID:     middleware.UserID(c),
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
		TenureMonths: req.TenureMonths,
		Purpose:      req.Purpose,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, loan, "Loan application submitted")
}

// Get retrieves one loan. Members see only their own loans; admins see
// every loan.
func (h *LoanHandler) Get(c echo.Context) error {
	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid loan id")
	}

	loan, err := h.uc.Get(c.Request().Context(), loanID)
	if err != nil {
		return errors.WithStack(err)
	}

	if !canAccessLoan(c, loan) {
		return response.Forbidden(c, "FORBIDDEN", "Loan belongs to another member")
	}

	return response.Success(c, http.StatusOK, loan, "")
}

// ListMine retrieves the authenticated member's loans.
func (h *LoanHandler) ListMine(c echo.Context) error {
	loans, err := h.uc.ListByMember(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loans, "")
}

// UpdateTerms changes a loan's computation inputs.
func (h *LoanHandler) UpdateTerms(c echo.Context) error {
	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid loan id")
	}

	var req updateLoanTermsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid loan terms input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	loan, err := h.uc.UpdateTerms(c.Request().Context(), &usecase.UpdateLoanTermsInput{
		LoanID:       loanID,
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
		TenureMonths: req.TenureMonths,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loan, "Loan terms updated")
}

// RecordRepayment records a repayment against a loan. Members repay
// only their own loans; admins can record a repayment on any loan.
func (h *LoanHandler) RecordRepayment(c echo.Context) error {
	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid loan id")
	}

	var req repaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid repayment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	existing, err := h.uc.Get(c.Request().Context(), loanID)
	if err != nil {
		return errors.WithStack(err)
	}

	if !canAccessLoan(c, existing) {
		return response.Forbidden(c, "FORBIDDEN", "Loan belongs to another member")
	}

	loan, err := h.uc.RecordRepayment(c.Request().Context(), &usecase.RecordRepaymentInput{
		LoanID: loanID,
		Amount: req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loan, "Repayment recorded")
}

// Transition moves a loan along a workflow edge.
func (h *LoanHandler) Transition(c echo.Context) error {
	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid loan id")
	}

	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transition input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	loan, err := h.uc.TransitionStatus(c.Request().Context(), loanID, entity.LoanStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loan, "Loan status updated")
}

// canAccessLoan gates member access to a single loan: the owner or an
// admin account.
func canAccessLoan(c echo.Context, loan *entity.Loan) bool {
	return loan.MemberID == middleware.UserID(c) || middleware.HasRole(c, entity.RoleAdmin.String())
}
