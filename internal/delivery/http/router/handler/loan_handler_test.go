package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tesotunes/internal/delivery/http/middleware"
	"tesotunes/internal/delivery/http/validator"
	"tesotunes/internal/domain/entity"
	mockUsecase "tesotunes/internal/mocks/usecase"
	"tesotunes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type loanHandlerFixtures struct {
	handler *LoanHandler
	loanUC  *mockUsecase.MockLoanUsecase
}

func createTestLoanHandler(t *testing.T) loanHandlerFixtures {
	t.Helper()

	loanUC := mockUsecase.NewMockLoanUsecase(t)

	return loanHandlerFixtures{
		handler: &LoanHandler{
			uc:     loanUC,
			logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		loanUC: loanUC,
	}
}

// newAuthedContext builds an echo context the way the authentication
// middleware leaves it: user id and roles set on the context.
func newAuthedContext(t *testing.T, method, target, body string, userID uuid.UUID, roles []string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRoles, roles)

	return c, rec
}

func TestLoanHandler_Get_OwnerReadsOwnLoan(t *testing.T) {
	fx := createTestLoanHandler(t)
	memberID := uuid.New()
	loan := &entity.Loan{ID: uuid.New(), MemberID: memberID, Status: entity.LoanActive}

	fx.loanUC.EXPECT().Get(mock.Anything, loan.ID).Return(loan, nil)

	c, rec := newAuthedContext(t, http.MethodGet, "/sacco/loans/"+loan.ID.String(), "", memberID, []string{entity.RoleMember.String()})
	c.SetParamNames("id")
	c.SetParamValues(loan.ID.String())

	err := fx.handler.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoanHandler_Get_OtherMembersLoanForbidden(t *testing.T) {
	fx := createTestLoanHandler(t)
	loan := &entity.Loan{ID: uuid.New(), MemberID: uuid.New(), Status: entity.LoanActive}

	fx.loanUC.EXPECT().Get(mock.Anything, loan.ID).Return(loan, nil)

	c, rec := newAuthedContext(t, http.MethodGet, "/sacco/loans/"+loan.ID.String(), "", uuid.New(), []string{entity.RoleMember.String()})
	c.SetParamNames("id")
	c.SetParamValues(loan.ID.String())

	err := fx.handler.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestLoanHandler_Get_AdminReadsAnyLoan(t *testing.T) {
	fx := createTestLoanHandler(t)
	loan := &entity.Loan{ID: uuid.New(), MemberID: uuid.New(), Status: entity.LoanActive}

	fx.loanUC.EXPECT().Get(mock.Anything, loan.ID).Return(loan, nil)

	c, rec := newAuthedContext(t, http.MethodGet, "/sacco/loans/"+loan.ID.String(), "", uuid.New(), []string{entity.RoleAdmin.String()})
	c.SetParamNames("id")
	c.SetParamValues(loan.ID.String())

	err := fx.handler.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoanHandler_RecordRepayment_OwnerRepays(t *testing.T) {
	fx := createTestLoanHandler(t)
	memberID := uuid.New()
	loan := &entity.Loan{ID: uuid.New(), MemberID: memberID, Status: entity.LoanActive}

	fx.loanUC.EXPECT().Get(mock.Anything, loan.ID).Return(loan, nil)
	fx.loanUC.EXPECT().RecordRepayment(mock.Anything, mock.AnythingOfType("*usecase.RecordRepaymentInput")).Return(loan, nil)

	c, rec := newAuthedContext(t, http.MethodPost, "/sacco/loans/"+loan.ID.String()+"/repayments",
		`{"amount":"200000"}`, memberID, []string{entity.RoleMember.String()})
	c.SetParamNames("id")
	c.SetParamValues(loan.ID.String())

	err := fx.handler.RecordRepayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoanHandler_RecordRepayment_OtherMembersLoanForbidden(t *testing.T) {
	fx := createTestLoanHandler(t)
	loan := &entity.Loan{ID: uuid.New(), MemberID: uuid.New(), Status: entity.LoanActive}

	// Only the ownership lookup fires; the repayment itself must never
	// reach the usecase for a foreign loan.
	fx.loanUC.EXPECT().Get(mock.Anything, loan.ID).Return(loan, nil)

	c, rec := newAuthedContext(t, http.MethodPost, "/sacco/loans/"+loan.ID.String()+"/repayments",
		`{"amount":"200000"}`, uuid.New(), []string{entity.RoleMember.String()})
	c.SetParamNames("id")
	c.SetParamValues(loan.ID.String())

	err := fx.handler.RecordRepayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	fx.loanUC.AssertNotCalled(t, "RecordRepayment", mock.Anything, mock.Anything)
}

func TestLoanHandler_Apply_MissingFieldsRejected(t *testing.T) {
	fx := createTestLoanHandler(t)

	c, rec := newAuthedContext(t, http.MethodPost, "/sacco/loans", `{}`, uuid.New(), []string{entity.RoleMember.String()})

	err := fx.handler.Apply(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	fx.loanUC.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
}

func TestLoanHandler_Apply_ValidInputReachesUsecase(t *testing.T) {
	fx := createTestLoanHandler(t)
	memberID := uuid.New()
	loan := &entity.Loan{ID: uuid.New(), MemberID: memberID, Status: entity.LoanPending}

	fx.loanUC.EXPECT().Apply(mock.Anything, mock.AnythingOfType("*usecase.ApplyLoanInput")).
		Run(func(ctx context.Context, input *usecase.ApplyLoanInput) {
			assert.Equal(t, memberID, input.MemberID)
			assert.True(t, input.Principal.Equal(decimal.NewFromInt(1200000)), "principal = %s", input.Principal)
		}).
		Return(loan, nil)

	c, rec := newAuthedContext(t, http.MethodPost, "/sacco/loans",
		`{"principal":"1200000","interest_rate":"10","tenure_months":12,"purpose":"equipment"}`,
		memberID, []string{entity.RoleMember.String()})

	err := fx.handler.Apply(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
