package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/service"
	mockservice "passage/internal/mocks/service"
	mockusecase "passage/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type middlewareFixture struct {
	codec  *mockservice.MockTokenCodec
	authUC *mockusecase.MockAuthUsecase
	mw     *AuthMiddleware
}

func newMiddlewareFixture(t *testing.T) *middlewareFixture {
	t.Helper()

	codec := mockservice.NewMockTokenCodec(t)
	authUC := mockusecase.NewMockAuthUsecase(t)

	return &middlewareFixture{
		codec:  codec,
		authUC: authUC,
		mw:     NewAuthMiddleware(codec, authUC),
	}
}

func newEchoContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthenticate_AccessStrategy_Success(t *testing.T) {
	fixture := newMiddlewareFixture(t)
	userID := uuid.New()
	user := &entity.AuthUser{ID: userID, Email: "smith@mail.com", IsActive: true}

	fixture.codec.EXPECT().Verify("access-token", service.PurposeAccess).Return(&service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}, nil)
	fixture.authUC.EXPECT().ValidateByID(mock.Anything, userID).Return(user, nil)

	c := newEchoContext("Bearer access-token")
	called := false
	err := fixture.mw.Authenticate(service.PurposeAccess)(okHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, user, CurrentUser(c))
	assert.Empty(t, PresentedRefreshToken(c))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	fixture := newMiddlewareFixture(t)

	c := newEchoContext("")
	called := false
	err := fixture.mw.Authenticate(service.PurposeAccess)(okHandler(&called))(c)

	require.ErrorIs(t, err, domainerrors.ErrUserNotValid)
	assert.False(t, called)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	fixture := newMiddlewareFixture(t)

	c := newEchoContext("Token abc")
	called := false
	err := fixture.mw.Authenticate(service.PurposeAccess)(okHandler(&called))(c)

	require.ErrorIs(t, err, domainerrors.ErrUserNotValid)
	assert.False(t, called)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	fixture := newMiddlewareFixture(t)

	fixture.codec.EXPECT().Verify("garbage", service.PurposeAccess).
		Return(nil, domainerrors.ErrInvalidToken)

	c := newEchoContext("Bearer garbage")
	called := false
	err := fixture.mw.Authenticate(service.PurposeAccess)(okHandler(&called))(c)

	require.ErrorIs(t, err, domainerrors.ErrUserNotValid)
	assert.False(t, called)
}

func TestAuthenticate_PrincipalNoLongerValid(t *testing.T) {
	fixture := newMiddlewareFixture(t)
	userID := uuid.New()

	fixture.codec.EXPECT().Verify("access-token", service.PurposeAccess).Return(&service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}, nil)
	fixture.authUC.EXPECT().ValidateByID(mock.Anything, userID).Return(nil, nil)

	c := newEchoContext("Bearer access-token")
	called := false
	err := fixture.mw.Authenticate(service.PurposeAccess)(okHandler(&called))(c)

	require.ErrorIs(t, err, domainerrors.ErrUserNotValid)
	assert.False(t, called)
}

func TestAuthenticate_RefreshStrategy_AttachesRawToken(t *testing.T) {
	fixture := newMiddlewareFixture(t)
	userID := uuid.New()
	user := &entity.AuthUser{ID: userID, Email: "smith@mail.com", IsActive: true}

	fixture.codec.EXPECT().Verify("refresh-token", service.PurposeRefresh).Return(&service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}, nil)
	fixture.authUC.EXPECT().ValidateByID(mock.Anything, userID).Return(user, nil)

	c := newEchoContext("Bearer refresh-token")
	called := false
	err := fixture.mw.Authenticate(service.PurposeRefresh)(okHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "refresh-token", PresentedRefreshToken(c))
}

func TestAuthenticate_ChangeEmailStrategy_AttachesNewEmail(t *testing.T) {
	fixture := newMiddlewareFixture(t)
	user := &entity.AuthUser{ID: uuid.New(), Email: "smith@mail.com", IsActive: true}

	fixture.codec.EXPECT().Verify("change-token", service.PurposeChangeEmail).Return(&service.Claims{
		Email:    "smith@mail.com",
		NewEmail: "smith.new@mail.com",
	}, nil)
	fixture.authUC.EXPECT().ValidateByEmail(mock.Anything, "smith@mail.com").Return(user, nil)

	c := newEchoContext("Bearer change-token")
	called := false
	err := fixture.mw.Authenticate(service.PurposeChangeEmail)(okHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, user, CurrentUser(c))
	assert.Equal(t, "smith.new@mail.com", RequestedNewEmail(c))
}

func TestAuthenticate_VerificationPurposeRejected(t *testing.T) {
	fixture := newMiddlewareFixture(t)

	fixture.codec.EXPECT().Verify("some-token", service.PurposeVerification).
		Return(&service.Claims{Email: "smith@mail.com"}, nil)

	c := newEchoContext("Bearer some-token")
	called := false
	err := fixture.mw.Authenticate(service.PurposeVerification)(okHandler(&called))(c)

	require.ErrorIs(t, err, domainerrors.ErrUserNotValid)
	assert.False(t, called)
}

func TestRequireVerifiedEmail(t *testing.T) {
	fixture := newMiddlewareFixture(t)

	t.Run("no principal", func(t *testing.T) {
		c := newEchoContext("")
		called := false
		err := fixture.mw.RequireVerifiedEmail(okHandler(&called))(c)

		require.ErrorIs(t, err, domainerrors.ErrUserNotValid)
		assert.False(t, called)
	})

	t.Run("unverified", func(t *testing.T) {
		c := newEchoContext("")
		c.Set(ContextKeyUser, &entity.AuthUser{ID: uuid.New(), EmailVerified: false})
		called := false
		err := fixture.mw.RequireVerifiedEmail(okHandler(&called))(c)

		require.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
		assert.False(t, called)
	})

	t.Run("verified", func(t *testing.T) {
		c := newEchoContext("")
		c.Set(ContextKeyUser, &entity.AuthUser{ID: uuid.New(), EmailVerified: true})
		called := false
		err := fixture.mw.RequireVerifiedEmail(okHandler(&called))(c)

		require.NoError(t, err)
		assert.True(t, called)
	})
}

func TestRequireRole(t *testing.T) {
	fixture := newMiddlewareFixture(t)

	t.Run("no overlap", func(t *testing.T) {
		c := newEchoContext("")
		c.Set(ContextKeyUser, &entity.AuthUser{ID: uuid.New(), Roles: []string{"user"}})
		called := false
		err := fixture.mw.RequireRole("admin")(okHandler(&called))(c)

		require.ErrorIs(t, err, domainerrors.ErrForbidden)
		assert.False(t, called)
	})

	t.Run("overlap passes", func(t *testing.T) {
		c := newEchoContext("")
		c.Set(ContextKeyUser, &entity.AuthUser{ID: uuid.New(), Roles: []string{"user", "admin"}})
		called := false
		err := fixture.mw.RequireRole("admin", "support")(okHandler(&called))(c)

		require.NoError(t, err)
		assert.True(t, called)
	})
}
