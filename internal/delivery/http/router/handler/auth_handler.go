// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"passage/internal/delivery/http/middleware"
	"passage/internal/delivery/http/response"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type signUpRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type resetPasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type changeEmailRequest struct {
	Password string `json:"password" validate:"required"`
	NewEmail string `json:"newEmail" validate:"required,email"`
}

// AuthHandler holds dependencies for session and password handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// SignUp handles the account registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input signUpRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign up input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authUC.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:     input.Email,
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		Password:  input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// SignIn handles the login request. Absent account, inactive account and a
// wrong password all produce the same rejection.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var input signInRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authUC.ValidateByPassword(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		return domainerrors.ErrInvalidCredentials
	}

	output, err := h.authUC.SignIn(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Refresh rotates the session for the principal attached by the refresh
// token strategy.
func (h *AuthHandler) Refresh(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domainerrors.ErrUserNotValid
	}

	output, err := h.authUC.Refresh(c.Request().Context(), user.ID, middleware.PresentedRefreshToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// LogOut clears the stored refresh token for the authenticated user.
func (h *AuthHandler) LogOut(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domainerrors.ErrUserNotValid
	}

	if err := h.authUC.LogOut(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// ResetPassword changes the password after checking the current one.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domainerrors.ErrUserNotValid
	}

	var input resetPasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	err := h.authUC.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		UserID:      user.ID,
		OldPassword: input.OldPassword,
		NewPassword: input.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated successfully")
}

// ChangeEmail verifies the password and dispatches a confirmation link to the
// requested address. The mutation happens when that link is followed.
func (h *AuthHandler) ChangeEmail(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domainerrors.ErrUserNotValid
	}

	var input changeEmailRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid change email input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	err := h.authUC.HandleEmailUpdate(c.Request().Context(), usecase.EmailUpdateInput{
		UserID:   user.ID,
		Password: input.Password,
		NewEmail: input.NewEmail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Confirmation sent to the new address")
}
