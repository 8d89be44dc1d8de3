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

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type changeForgottenPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// VerificationHandler holds dependencies for the mailed-token workflows.
type VerificationHandler struct {
	verificationUC usecase.VerificationUsecase
	authUC         usecase.AuthUsecase
	logger         *slog.Logger
}

// NewVerificationHandler is the constructor for VerificationHandler, injected by Fx.
func NewVerificationHandler(verificationUC usecase.VerificationUsecase, authUC usecase.AuthUsecase, logger *slog.Logger) *VerificationHandler {
	return &VerificationHandler{
		verificationUC: verificationUC,
		authUC:         authUC,
		logger:         logger,
	}
}

// VerifyEmail consumes the confirmation token from the mailed link.
// Verifying an already-verified account succeeds again.
func (h *VerificationHandler) VerifyEmail(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Verification token is missing")
	}

	user, err := h.verificationUC.VerifyEmail(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Email verified successfully")
}

// ResendConfirmation dispatches a fresh confirmation link.
func (h *VerificationHandler) ResendConfirmation(c echo.Context) error {
	var input emailRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend confirmation input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.verificationUC.ResendConfirmation(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Confirmation email sent")
}

// ForgotPassword dispatches a reset link to the account's email.
func (h *VerificationHandler) ForgotPassword(c echo.Context) error {
	var input emailRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forgot password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.verificationUC.ForgotPassword(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset email sent")
}

// ChangeForgottenPassword completes the forgot-password flow. The mailed
// token was already consumed by the forgot-password strategy, which attached
// the principal, so no old-password check happens here.
func (h *VerificationHandler) ChangeForgottenPassword(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domainerrors.ErrUserNotValid
	}

	var input changeForgottenPasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid change password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.authUC.ChangePassword(c.Request().Context(), user.Email, input.NewPassword); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// CompleteEmailChange applies the email mutation for the principal attached
// by the change-email token strategy.
func (h *VerificationHandler) CompleteEmailChange(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domainerrors.ErrUserNotValid
	}

	newEmail := middleware.RequestedNewEmail(c)
	if err := h.verificationUC.CompleteEmailChange(c.Request().Context(), user.ID, newEmail); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"updated": true}, "Email updated successfully")
}
