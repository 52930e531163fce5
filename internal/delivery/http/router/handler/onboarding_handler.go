// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"tesotunes/internal/delivery/http/response"
	"tesotunes/internal/domain/entity"
	"tesotunes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Session key transport for the wizard: a cookie for browsers, a header
// for API clients. The cookie wins when both are present.
const (
	sessionCookieName   = "registration_session"
	sessionHeaderName   = "X-Registration-Session"
	sessionCookieMaxAge = int(entity.SessionTTL / time.Second)
)

// OnboardingHandler holds dependencies for the artist onboarding wizard.
type OnboardingHandler struct {
	uc     usecase.RegistrationUsecase
	logger *slog.Logger
}

// NewOnboardingHandler is the constructor for OnboardingHandler, injected by Fx.
func NewOnboardingHandler(uc usecase.RegistrationUsecase, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		uc:     uc,
		logger: logger,
	}
}

type step1Request struct {
	StageName string `json:"stage_name" validate:"required"`
	GenreID   int    `json:"genre_id" validate:"required"`
	Bio       string `json:"bio"`
}

type step2Request struct {
	FullName         string `json:"full_name" validate:"required"`
	NationalIDNumber string `json:"national_id_number" validate:"required"`
	Phone            string `json:"phone" validate:"required"`
}

type step3Request struct {
	MobileMoneyProvider string `json:"mobile_money_provider" validate:"required"`
	MobileMoneyNumber   string `json:"mobile_money_number" validate:"required"`
	Email               string `json:"email" validate:"omitempty,email"`
	Password            string `json:"password" validate:"required"`
	TermsAccepted       bool   `json:"terms_accepted"`
}

type statusResponse struct {
	CurrentStep    int       `json:"current_step"`
	CompletedSteps []int     `json:"completed_steps"`
	StartedAt      time.Time `json:"started_at"`
	Active         bool      `json:"active"`
}

type finalizeResponse struct {
	User                  *userResponse `json:"user"`
	AccessToken           string        `json:"access_token"`
	RefreshToken          string        `json:"refresh_token"`
	VerificationExpiresAt time.Time     `json:"verification_expires_at"`
}

// Initialize resets the wizard, issuing a fresh session key when the
// client does not carry one yet.
func (h *OnboardingHandler) Initialize(c echo.Context) error {
	key := h.sessionKey(c)
	if key == "" {
		key = uuid.NewString()
	}
	h.setSessionCookie(c, key)

	output, err := h.uc.Initialize(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStatusResponse(output), "Registration started")
}

// Status reports the wizard state without mutating it.
func (h *OnboardingHandler) Status(c echo.Context) error {
	key := h.sessionKey(c)
	if key == "" {
		return response.NotFound(c, "SESSION_NOT_FOUND", "No registration session")
	}

	output, err := h.uc.Status(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStatusResponse(output), "")
}

// SubmitStep1 handles the profile-basics submission.
func (h *OnboardingHandler) SubmitStep1(c echo.Context) error {
	key := h.sessionKey(c)
	if key == "" {
		return response.NotFound(c, "SESSION_NOT_FOUND", "No registration session")
	}

	var req step1Request
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid step 1 input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.SubmitStep1(c.Request().Context(), &usecase.SubmitStep1Input{
		SessionKey: key,
		StageName:  req.StageName,
		GenreID:    req.GenreID,
		Bio:        req.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStatusResponse(output), "Step 1 completed")
}

// UploadAvatar handles the optional avatar upload during step 1.
func (h *OnboardingHandler) UploadAvatar(c echo.Context) error {
	key := h.sessionKey(c)
	if key == "" {
		return response.NotFound(c, "SESSION_NOT_FOUND", "No registration session")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing avatar file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded avatar")
	}
	defer func() { _ = file.Close() }()

	uploaded, err := h.uc.UploadAvatar(c.Request().Context(), &usecase.UploadAvatarInput{
		SessionKey:   key,
		OriginalName: fileHeader.Filename,
		MimeType:     contentType(fileHeader),
		Size:         fileHeader.Size,
		Content:      file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, uploaded, "Avatar uploaded")
}

// UploadDocument handles one KYC document upload during step 2. The
// document type arrives as a form field next to the file.
func (h *OnboardingHandler) UploadDocument(c echo.Context) error {
	key := h.sessionKey(c)
	if key == "" {
		return response.NotFound(c, "SESSION_NOT_FOUND", "No registration session")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing document file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded document")
	}
	defer func() { _ = file.Close() }()

	uploaded, err := h.uc.UploadDocument(c.Request().Context(), &usecase.UploadDocumentInput{
		SessionKey:   key,
		Type:         entity.DocumentType(c.FormValue("type")),
		OriginalName: fileHeader.Filename,
		MimeType:     contentType(fileHeader),
		Size:         fileHeader.Size,
		Content:      file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, uploaded, "Document uploaded")
}

// SubmitStep2 handles the identity/KYC submission.
func (h *OnboardingHandler) SubmitStep2(c echo.Context) error {
	key := h.sessionKey(c)
	if key == "" {
		return response.NotFound(c, "SESSION_NOT_FOUND", "No registration session")
	}

	var req step2Request
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid step 2 input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.SubmitStep2(c.Request().Context(), &usecase.SubmitStep2Input{
		SessionKey:       key,
		FullName:         req.FullName,
		NationalIDNumber: req.NationalIDNumber,
		Phone:            req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStatusResponse(output), "Step 2 completed")
}

// SubmitStep3 handles the final submission, creating the account.
func (h *OnboardingHandler) SubmitStep3(c echo.Context) error {
	key := h.sessionKey(c)
	if key == "" {
		return response.NotFound(c, "SESSION_NOT_FOUND", "No registration session")
	}

	var req step3Request
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid step 3 input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.SubmitStep3(c.Request().Context(), &usecase.SubmitStep3Input{
		SessionKey:          key,
		MobileMoneyProvider: req.MobileMoneyProvider,
		MobileMoneyNumber:   req.MobileMoneyNumber,
		Email:               req.Email,
		Password:            req.Password,
		TermsAccepted:       req.TermsAccepted,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// The wizard is done; the session cookie has nothing left to key.
	h.clearSessionCookie(c)

	return response.Success(c, http.StatusCreated, finalizeResponse{
		User:                  toUserResponse(output.User),
		AccessToken:           output.AccessToken,
		RefreshToken:          output.RefreshToken,
		VerificationExpiresAt: output.VerificationExpiresAt,
	}, "Account created, verification code sent")
}

func (h *OnboardingHandler) sessionKey(c echo.Context) string {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return c.Request().Header.Get(sessionHeaderName)
}

func (h *OnboardingHandler) setSessionCookie(c echo.Context, key string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    key,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *OnboardingHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func toStatusResponse(output *usecase.RegistrationStatusOutput) statusResponse {
	return statusResponse{
		CurrentStep:    output.CurrentStep,
		CompletedSteps: output.CompletedSteps,
		StartedAt:      output.StartedAt,
		Active:         output.Active,
	}
}

func contentType(fileHeader *multipart.FileHeader) string {
	ct := fileHeader.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}

	return ct
}
