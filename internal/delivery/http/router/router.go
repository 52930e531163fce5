// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tesotunes/internal/delivery/http/middleware"
	"tesotunes/internal/delivery/http/router/handler"
	"tesotunes/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OnboardingHandler   *handler.OnboardingHandler
	UserHandler         *handler.UserHandler
	VerificationHandler *handler.VerificationHandler
	LoanHandler         *handler.LoanHandler
	DividendHandler     *handler.DividendHandler
	KYCHandler          *handler.KYCHandler
	EventHandler        *handler.EventHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Artist onboarding wizard. Session-keyed, no authentication: the
	// account does not exist until step 3 completes.
	registerGroup := e.Group("/register/artist")
	{
		registerGroup.POST("", r.params.OnboardingHandler.Initialize)
		registerGroup.GET("/status", r.params.OnboardingHandler.Status)
		registerGroup.POST("/step1", r.params.OnboardingHandler.SubmitStep1)
		registerGroup.POST("/step1/avatar", r.params.OnboardingHandler.UploadAvatar)
		registerGroup.POST("/step2/documents", r.params.OnboardingHandler.UploadDocument)
		registerGroup.POST("/step2", r.params.OnboardingHandler.SubmitStep2)
		registerGroup.POST("/step3", r.params.OnboardingHandler.SubmitStep3)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/refresh", r.params.UserHandler.RefreshToken)
		authGroup.POST("/logout", r.params.UserHandler.Logout)
	}

	// Phone verification requires a logged-in account.
	verifyGroup := e.Group("/verification")
	verifyGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		verifyGroup.POST("/phone", r.params.VerificationHandler.VerifyPhone)
		verifyGroup.POST("/phone/resend", r.params.VerificationHandler.ResendCode)
	}

	// SACCO loans: members apply and repay, admins approve and disburse.
	loanGroup := e.Group("/sacco/loans")
	loanGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		loanGroup.POST("", r.params.LoanHandler.Apply, r.params.AuthMiddleware.RequireRole(entity.RoleMember.String()))
		loanGroup.GET("", r.params.LoanHandler.ListMine)
		loanGroup.GET("/:id", r.params.LoanHandler.Get)
		loanGroup.POST("/:id/repayments", r.params.LoanHandler.RecordRepayment)
		loanGroup.PUT("/:id/terms", r.params.LoanHandler.UpdateTerms, r.params.AuthMiddleware.RequireRole(entity.RoleAdmin.String()))
		loanGroup.POST("/:id/transition", r.params.LoanHandler.Transition, r.params.AuthMiddleware.RequireRole(entity.RoleAdmin.String()))
	}

	// Dividend engine and KYC review are admin-only surfaces.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.POST("/dividends", r.params.DividendHandler.Calculate)
		adminGroup.GET("/dividends/:id", r.params.DividendHandler.Get)
		adminGroup.POST("/dividends/:id/approve", r.params.DividendHandler.Approve)
		adminGroup.POST("/dividends/:id/distribute", r.params.DividendHandler.Distribute)
		adminGroup.POST("/dividends/:id/cancel", r.params.DividendHandler.Cancel)

		adminGroup.GET("/kyc/pending", r.params.KYCHandler.ListPending)
		adminGroup.POST("/kyc/:id/approve", r.params.KYCHandler.Approve)
		adminGroup.POST("/kyc/:id/reject", r.params.KYCHandler.Reject)

		adminGroup.POST("/events", r.params.EventHandler.CreateEvent)
		adminGroup.POST("/events/:id/tickets", r.params.EventHandler.IssueTicket)
	}

	// Gate check-in is performed by event staff with an artist or admin account.
	ticketGroup := e.Group("/tickets")
	ticketGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		ticketGroup.POST("/check-in", r.params.EventHandler.CheckIn,
			r.params.AuthMiddleware.RequireAnyRole(entity.RoleArtist.String(), entity.RoleAdmin.String()))
	}
}
