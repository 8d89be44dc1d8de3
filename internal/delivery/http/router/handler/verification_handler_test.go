package handler

import (
	"net/http"
	"testing"

	"passage/internal/delivery/http/middleware"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	mockusecase "passage/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVerificationHandler(t *testing.T) (*VerificationHandler, *mockusecase.MockVerificationUsecase, *mockusecase.MockAuthUsecase) {
	t.Helper()

	verificationUC := mockusecase.NewMockVerificationUsecase(t)
	authUC := mockusecase.NewMockAuthUsecase(t)

	return NewVerificationHandler(verificationUC, authUC, testLogger()), verificationUC, authUC
}

func TestVerificationHandler_VerifyEmail_Success(t *testing.T) {
	handler, verificationUC, _ := newVerificationHandler(t)

	user := &entity.AuthUser{ID: uuid.New(), Email: "smith@mail.com", EmailVerified: true}
	verificationUC.EXPECT().VerifyEmail(mock.Anything, "mailed-token").Return(user, nil)

	c, rec := newTestContext(http.MethodGet, "/auth/verify-email?token=mailed-token", "")

	require.NoError(t, handler.VerifyEmail(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"emailVerified":true`)
}

func TestVerificationHandler_VerifyEmail_MissingToken(t *testing.T) {
	handler, _, _ := newVerificationHandler(t)

	c, rec := newTestContext(http.MethodGet, "/auth/verify-email", "")

	require.NoError(t, handler.VerifyEmail(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerificationHandler_VerifyEmail_BadToken(t *testing.T) {
	handler, verificationUC, _ := newVerificationHandler(t)

	verificationUC.EXPECT().VerifyEmail(mock.Anything, "garbage").
		Return(nil, domainerrors.ErrInvalidToken)

	c, _ := newTestContext(http.MethodGet, "/auth/verify-email?token=garbage", "")

	err := handler.VerifyEmail(c)
	require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestVerificationHandler_ResendConfirmation_AlreadyVerified(t *testing.T) {
	handler, verificationUC, _ := newVerificationHandler(t)

	verificationUC.EXPECT().ResendConfirmation(mock.Anything, "smith@mail.com").
		Return(domainerrors.ErrEmailAlreadyVerified)

	c, _ := newTestContext(http.MethodPost, "/auth/resend-confirmation",
		`{"email":"smith@mail.com"}`)

	err := handler.ResendConfirmation(c)
	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyVerified)
}

func TestVerificationHandler_ForgotPassword_Success(t *testing.T) {
	handler, verificationUC, _ := newVerificationHandler(t)

	verificationUC.EXPECT().ForgotPassword(mock.Anything, "smith@mail.com").Return(nil)

	c, rec := newTestContext(http.MethodPost, "/auth/forgot-password",
		`{"email":"smith@mail.com"}`)

	require.NoError(t, handler.ForgotPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerificationHandler_ForgotPassword_UnknownAccount(t *testing.T) {
	handler, verificationUC, _ := newVerificationHandler(t)

	verificationUC.EXPECT().ForgotPassword(mock.Anything, "ghost@mail.com").
		Return(domainerrors.ErrUserNotFound)

	c, _ := newTestContext(http.MethodPost, "/auth/forgot-password",
		`{"email":"ghost@mail.com"}`)

	err := handler.ForgotPassword(c)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestVerificationHandler_ChangeForgottenPassword_Success(t *testing.T) {
	handler, _, authUC := newVerificationHandler(t)

	user := &entity.AuthUser{ID: uuid.New(), Email: "smith@mail.com", IsActive: true, EmailVerified: true}
	authUC.EXPECT().ChangePassword(mock.Anything, "smith@mail.com", "brand-new-password").
		Return(nil)

	c, rec := newTestContext(http.MethodPost, "/auth/change-forgotten-password",
		`{"newPassword":"brand-new-password"}`)
	c.Set(middleware.ContextKeyUser, user)

	require.NoError(t, handler.ChangeForgottenPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerificationHandler_ChangeForgottenPassword_MissingPrincipal(t *testing.T) {
	handler, _, _ := newVerificationHandler(t)

	c, _ := newTestContext(http.MethodPost, "/auth/change-forgotten-password",
		`{"newPassword":"brand-new-password"}`)

	err := handler.ChangeForgottenPassword(c)
	require.ErrorIs(t, err, domainerrors.ErrUserNotValid)
}

func TestVerificationHandler_CompleteEmailChange_Success(t *testing.T) {
	handler, verificationUC, _ := newVerificationHandler(t)

	user := &entity.AuthUser{ID: uuid.New(), Email: "smith@mail.com", IsActive: true}
	verificationUC.EXPECT().CompleteEmailChange(mock.Anything, user.ID, "smith.new@mail.com").
		Return(nil)

	c, rec := newTestContext(http.MethodPost, "/auth/complete-email-change", "")
	c.Set(middleware.ContextKeyUser, user)
	c.Set(middleware.ContextKeyNewEmail, "smith.new@mail.com")

	require.NoError(t, handler.CompleteEmailChange(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":true`)
}

func TestVerificationHandler_CompleteEmailChange_MissingPrincipal(t *testing.T) {
	handler, _, _ := newVerificationHandler(t)

	c, _ := newTestContext(http.MethodPost, "/auth/complete-email-change", "")

	err := handler.CompleteEmailChange(c)
	require.ErrorIs(t, err, domainerrors.ErrUserNotValid)
}

func TestAdminHandler_Stats(t *testing.T) {
	authUC := mockusecase.NewMockAuthUsecase(t)
	handler := NewAdminHandler(authUC)

	authUC.EXPECT().CountUsers(mock.Anything).Return(int64(42), nil)

	c, rec := newTestContext(http.MethodGet, "/admin/stats", "")

	require.NoError(t, handler.Stats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalUsers":42`)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
