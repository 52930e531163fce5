package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tesotunes/internal/delivery/http/response"
	"tesotunes/internal/domain/entity"
	"tesotunes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for session-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type loginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *userResponse `json:"user"`
}

// userResponse is the client-facing projection of an account. Sensitive
// fields, the verification code above all, never leave the server.
type userResponse struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Username          string    `json:"username"`
	FullName          string    `json:"full_name"`
	IsArtist          bool      `json:"is_artist"`
	ApplicationStatus string    `json:"application_status"`
	Status            string    `json:"status"`
	PhoneVerified     bool      `json:"phone_verified"`
	StageName         string    `json:"stage_name,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) *userResponse {
	if user == nil {
		return nil
	}

	resp := &userResponse{
		ID:                user.ID,
		Email:             user.Email,
		Phone:             user.Phone,
		Username:          user.Username,
		FullName:          user.FullName,
		IsArtist:          user.IsArtist,
		ApplicationStatus: string(user.ApplicationStatus),
		Status:            string(user.Status),
		PhoneVerified:     user.PhoneVerified(),
		CreatedAt:         user.CreatedAt,
	}
	if user.ArtistProfile != nil {
		resp.StageName = user.ArtistProfile.StageName
	}

	return resp
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         toUserResponse(output.User),
	}, "Login successful")
}

// RefreshToken handles the token refresh request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"access_token": output.AccessToken}, "Token refreshed successfully")
}

// Logout handles the user logout request.
func (h *UserHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{
		RefreshToken: req.RefreshToken,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}
