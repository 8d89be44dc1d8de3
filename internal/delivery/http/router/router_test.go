package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passage/config"
	"passage/internal/delivery/http/middleware"
	"passage/internal/delivery/http/router/handler"
	"passage/internal/delivery/http/validator"
	"passage/internal/domain/entity"
	"passage/internal/domain/service"
	mockservice "passage/internal/mocks/service"
	mockusecase "passage/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// routerFixture serves requests through the real route table, middleware
// chains and error handler, with the codec and usecases mocked out.
type routerFixture struct {
	codec          *mockservice.MockTokenCodec
	authUC         *mockusecase.MockAuthUsecase
	verificationUC *mockusecase.MockVerificationUsecase
	app            *echo.Echo
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	codec := mockservice.NewMockTokenCodec(t)
	authUC := mockusecase.NewMockAuthUsecase(t)
	verificationUC := mockusecase.NewMockVerificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := echo.New()
	app.Validator = validator.New()
	app.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	params := RouterParams{
		AuthHandler:         handler.NewAuthHandler(authUC, logger),
		VerificationHandler: handler.NewVerificationHandler(verificationUC, authUC, logger),
		AdminHandler:        handler.NewAdminHandler(authUC),
		AuthMiddleware:      middleware.NewAuthMiddleware(codec, authUC),
		LoggerMiddleware:    middleware.NewLoggerMiddleware(logger, &config.Config{}),
	}
	NewRouter(params).RegisterRoutes(app)

	return &routerFixture{
		codec:          codec,
		authUC:         authUC,
		verificationUC: verificationUC,
		app:            app,
	}
}

func (f *routerFixture) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.app.ServeHTTP(rec, req)

	return rec
}

// expectPrincipalByID arranges the codec and validator so the given token
// resolves to the given principal for id-keyed strategies.
func (f *routerFixture) expectPrincipalByID(token string, purpose service.Purpose, user *entity.AuthUser) {
	f.codec.EXPECT().Verify(token, purpose).Return(&service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID.String()},
	}, nil)
	f.authUC.EXPECT().ValidateByID(mock.Anything, user.ID).Return(user, nil)
}

func (f *routerFixture) expectPrincipalByEmail(token string, purpose service.Purpose, user *entity.AuthUser) {
	f.codec.EXPECT().Verify(token, purpose).Return(&service.Claims{Email: user.Email}, nil)
	f.authUC.EXPECT().ValidateByEmail(mock.Anything, user.Email).Return(user, nil)
}

func verifiedUser() *entity.AuthUser {
	return &entity.AuthUser{
		ID:            uuid.New(),
		Email:         "smith@mail.com",
		IsActive:      true,
		EmailVerified: true,
		Roles:         []string{"user"},
	}
}

func unverifiedUser() *entity.AuthUser {
	user := verifiedUser()
	user.EmailVerified = false

	return user
}

func TestRoutes_ResetPassword_UnverifiedEmailRejected(t *testing.T) {
	f := newRouterFixture(t)
	f.expectPrincipalByID("access-token", service.PurposeAccess, unverifiedUser())

	rec := f.do(http.MethodPost, "/auth/reset-password", "access-token",
		`{"oldPassword":"old-password","newPassword":"brand-new-password"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email is not verified yet")
}

func TestRoutes_ResetPassword_VerifiedEmailPasses(t *testing.T) {
	f := newRouterFixture(t)
	user := verifiedUser()
	f.expectPrincipalByID("access-token", service.PurposeAccess, user)
	f.authUC.EXPECT().ResetPassword(mock.Anything, mock.Anything).Return(nil)

	rec := f.do(http.MethodPost, "/auth/reset-password", "access-token",
		`{"oldPassword":"old-password","newPassword":"brand-new-password"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_Refresh_UnverifiedEmailRejected(t *testing.T) {
	f := newRouterFixture(t)
	f.expectPrincipalByID("refresh-token", service.PurposeRefresh, unverifiedUser())

	rec := f.do(http.MethodPost, "/auth/refresh", "refresh-token", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email is not verified yet")
}

func TestRoutes_ChangeForgottenPassword_UnverifiedEmailRejected(t *testing.T) {
	f := newRouterFixture(t)
	f.expectPrincipalByEmail("reset-token", service.PurposeForgotPassword, unverifiedUser())

	rec := f.do(http.MethodPost, "/auth/change-forgotten-password", "reset-token",
		`{"newPassword":"brand-new-password"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email is not verified yet")
}

func TestRoutes_ChangeForgottenPassword_VerifiedEmailPasses(t *testing.T) {
	f := newRouterFixture(t)
	user := verifiedUser()
	f.expectPrincipalByEmail("reset-token", service.PurposeForgotPassword, user)
	f.authUC.EXPECT().ChangePassword(mock.Anything, user.Email, "brand-new-password").Return(nil)

	rec := f.do(http.MethodPost, "/auth/change-forgotten-password", "reset-token",
		`{"newPassword":"brand-new-password"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_CompleteEmailChange_UnverifiedEmailRejected(t *testing.T) {
	f := newRouterFixture(t)
	f.codec.EXPECT().Verify("change-token", service.PurposeChangeEmail).Return(&service.Claims{
		Email:    "smith@mail.com",
		NewEmail: "smith.new@mail.com",
	}, nil)
	f.authUC.EXPECT().ValidateByEmail(mock.Anything, "smith@mail.com").Return(unverifiedUser(), nil)

	rec := f.do(http.MethodPost, "/auth/complete-email-change", "change-token", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email is not verified yet")
}

func TestRoutes_Logout_UnverifiedEmailStillAllowed(t *testing.T) {
	f := newRouterFixture(t)
	user := unverifiedUser()
	f.expectPrincipalByID("access-token", service.PurposeAccess, user)
	f.authUC.EXPECT().LogOut(mock.Anything, user.ID).Return(nil)

	rec := f.do(http.MethodPost, "/auth/logout", "access-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_AdminStats_RoleGate(t *testing.T) {
	t.Run("non-admin rejected", func(t *testing.T) {
		f := newRouterFixture(t)
		f.expectPrincipalByID("access-token", service.PurposeAccess, verifiedUser())

		rec := f.do(http.MethodGet, "/admin/stats", "access-token", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		f := newRouterFixture(t)
		admin := verifiedUser()
		admin.Roles = []string{"user", "admin"}
		f.expectPrincipalByID("access-token", service.PurposeAccess, admin)
		f.authUC.EXPECT().CountUsers(mock.Anything).Return(int64(7), nil)

		rec := f.do(http.MethodGet, "/admin/stats", "access-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"totalUsers":7`)
	})
}

func TestRoutes_GatedRouteWithoutToken(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/auth/reset-password", "",
		`{"oldPassword":"old-password","newPassword":"brand-new-password"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "User is not valid")
}
