// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passage/internal/delivery/http/middleware"
	"passage/internal/delivery/http/router/handler"
	"passage/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	VerificationHandler *handler.VerificationHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	verificationHandler *handler.VerificationHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		verificationHandler: params.VerificationHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.loggerMiddleware.AttachRequestScope)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		// Public routes
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.GET("/verify-email", r.verificationHandler.VerifyEmail)
		authGroup.POST("/resend-confirmation", r.verificationHandler.ResendConfirmation)
		authGroup.POST("/forgot-password", r.verificationHandler.ForgotPassword)

		// Routes guarded by a purpose-scoped token strategy. Every gated
		// route except logout also requires a verified email.
		authGroup.POST("/refresh", r.authHandler.Refresh,
			r.authMiddleware.Authenticate(service.PurposeRefresh),
			r.authMiddleware.RequireVerifiedEmail)
		authGroup.POST("/logout", r.authHandler.LogOut,
			r.authMiddleware.Authenticate(service.PurposeAccess))
		authGroup.POST("/reset-password", r.authHandler.ResetPassword,
			r.authMiddleware.Authenticate(service.PurposeAccess),
			r.authMiddleware.RequireVerifiedEmail)
		authGroup.POST("/change-forgotten-password", r.verificationHandler.ChangeForgottenPassword,
			r.authMiddleware.Authenticate(service.PurposeForgotPassword),
			r.authMiddleware.RequireVerifiedEmail)
		authGroup.POST("/change-email", r.authHandler.ChangeEmail,
			r.authMiddleware.Authenticate(service.PurposeAccess),
			r.authMiddleware.RequireVerifiedEmail)
		authGroup.POST("/complete-email-change", r.verificationHandler.CompleteEmailChange,
			r.authMiddleware.Authenticate(service.PurposeChangeEmail),
			r.authMiddleware.RequireVerifiedEmail)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate(service.PurposeAccess))
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.GET("/stats", r.adminHandler.Stats)
	}
}
