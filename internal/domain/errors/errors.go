package errors

import (
	"net/http"

	"tesotunes/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"This email address is already registered",
		"",
	)

	ErrPhoneTaken = NewBaseError(
		http.StatusConflict,
		"PHONE_TAKEN",
		"This phone number is already registered",
		"",
	)

	ErrStageNameTaken = NewBaseError(
		http.StatusConflict,
		"STAGE_NAME_TAKEN",
		"This stage name is already in use",
		"",
	)

	ErrNationalIDTaken = NewBaseError(
		http.StatusConflict,
		"NATIONAL_ID_TAKEN",
		"This national ID number is already registered",
		"",
	)

	ErrAccountCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_CREATION_FAILED",
		"Registration could not be completed, please try again",
		"",
	)

	// Registration wizard errors
	ErrStepNotCompleted = NewBaseError(
		http.StatusBadRequest,
		"STEP_NOT_COMPLETED",
		"Previous registration steps must be completed first",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusGone,
		"SESSION_EXPIRED",
		"Your registration session has expired, please start again",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet security requirements",
		"",
	)

	// Phone verification errors
	ErrVerificationCodeInvalid = NewBaseError(
		http.StatusBadRequest,
		"VERIFICATION_CODE_INVALID",
		"The verification code is incorrect or has expired",
		"",
	)

	ErrAlreadyVerified = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_VERIFIED",
		"This phone number is already verified",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// KYC errors
	ErrDocumentNotFound = NewBaseError(
		http.StatusNotFound,
		"DOCUMENT_NOT_FOUND",
		"KYC document not found",
		"",
	)

	ErrDocumentAlreadyReviewed = NewBaseError(
		http.StatusConflict,
		"DOCUMENT_ALREADY_REVIEWED",
		"This document has already been reviewed",
		"",
	)

	// Loan errors
	ErrLoanNotFound = NewBaseError(
		http.StatusNotFound,
		"LOAN_NOT_FOUND",
		"Loan not found",
		"",
	)

	ErrLoanTransitionInvalid = NewBaseError(
		http.StatusConflict,
		"LOAN_TRANSITION_INVALID",
		"This loan cannot move to the requested status",
		"",
	)

	ErrRepaymentInvalid = NewBaseError(
		http.StatusBadRequest,
		"REPAYMENT_INVALID",
		"Repayment amount is invalid for this loan",
		"",
	)

	// Dividend errors
	ErrDividendNotFound = NewBaseError(
		http.StatusNotFound,
		"DIVIDEND_NOT_FOUND",
		"Dividend not found",
		"",
	)

	ErrDividendYearExists = NewBaseError(
		http.StatusConflict,
		"DIVIDEND_YEAR_EXISTS",
		"A dividend for this year already exists",
		"",
	)

	ErrDividendTransitionInvalid = NewBaseError(
		http.StatusConflict,
		"DIVIDEND_TRANSITION_INVALID",
		"This dividend cannot move to the requested status",
		"",
	)

	ErrDividendImmutable = NewBaseError(
		http.StatusConflict,
		"DIVIDEND_IMMUTABLE",
		"A distributed dividend can no longer be changed",
		"",
	)

	ErrDividendOverDistribution = NewBaseError(
		http.StatusConflict,
		"DIVIDEND_OVER_DISTRIBUTION",
		"Member payouts exceed the distributable amount",
		"",
	)

	ErrCancellationReasonRequired = NewBaseError(
		http.StatusBadRequest,
		"CANCELLATION_REASON_REQUIRED",
		"A cancellation reason is required",
		"",
	)

	// Ticket errors
	ErrTicketNotFound = NewBaseError(
		http.StatusNotFound,
		"TICKET_NOT_FOUND",
		"Ticket not found",
		"",
	)

	ErrTicketAlreadyCheckedIn = NewBaseError(
		http.StatusConflict,
		"TICKET_ALREADY_CHECKED_IN",
		"This ticket has already been checked in",
		"",
	)

	// Generic errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Permission denied",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error as an internal
// AppError. The original error is kept for logs, never for clients.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(ErrInternal.WithDetails(message), err.Error())
}
