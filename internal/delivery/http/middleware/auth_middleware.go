package middleware

import (
	"strings"

	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/service"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by the authentication middleware for handlers to read.
const (
	ContextKeyUser         = "authUser"
	ContextKeyRefreshToken = "refreshToken"
	ContextKeyNewEmail     = "newEmail"
)

// AuthMiddleware guards routes with purpose-scoped token strategies.
// Every strategy re-validates the principal against the store, so a token
// minted before a deactivation stops working immediately.
type AuthMiddleware struct {
	codec  service.TokenCodec
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(codec service.TokenCodec, authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{codec: codec, authUC: authUC}
}

// Authenticate returns the middleware for the given token purpose.
//
// The refresh strategy additionally attaches the raw presented token so the
// handler can match it against the stored hash. The change-email strategy
// resolves the principal by the claimed current email and attaches the
// claimed new email.
func (m *AuthMiddleware) Authenticate(purpose service.Purpose) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := bearerToken(c)
			if err != nil {
				return err
			}

			claims, err := m.codec.Verify(tokenString, purpose)
			if err != nil {
				return domainerrors.ErrUserNotValid
			}

			user, err := m.resolvePrincipal(c, claims, purpose)
			if err != nil {
				return err
			}
			if user == nil {
				return domainerrors.ErrUserNotValid
			}

			c.Set(ContextKeyUser, user)
			if purpose == service.PurposeRefresh {
				c.Set(ContextKeyRefreshToken, tokenString)
			}
			if purpose == service.PurposeChangeEmail {
				c.Set(ContextKeyNewEmail, claims.NewEmail)
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) resolvePrincipal(c echo.Context, claims *service.Claims, purpose service.Purpose) (*entity.AuthUser, error) {
	ctx := c.Request().Context()

	switch purpose {
	case service.PurposeAccess, service.PurposeRefresh:
		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return nil, domainerrors.ErrUserNotValid
		}

		return m.authUC.ValidateByID(ctx, userID)
	case service.PurposeForgotPassword, service.PurposeChangeEmail:
		if claims.Email == "" {
			return nil, domainerrors.ErrUserNotValid
		}

		return m.authUC.ValidateByEmail(ctx, claims.Email)
	default:
		return nil, domainerrors.ErrUserNotValid
	}
}

// RequireVerifiedEmail rejects principals that have not confirmed their email.
// It must be used AFTER an Authenticate middleware.
func (m *AuthMiddleware) RequireVerifiedEmail(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return domainerrors.ErrUserNotValid
		}
		if !user.EmailVerified {
			return domainerrors.ErrEmailNotVerified
		}

		return next(c)
	}
}

// RequireRole passes when the principal holds at least one of the required
// roles. It must be used AFTER an Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return domainerrors.ErrUserNotValid
			}

			if !entity.RoleNames(user.Roles).Intersects(requiredRoles) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// CurrentUser reads the authenticated principal set by Authenticate.
func CurrentUser(c echo.Context) *entity.AuthUser {
	user, ok := c.Get(ContextKeyUser).(*entity.AuthUser)
	if !ok {
		return nil
	}

	return user
}

// PresentedRefreshToken reads the raw refresh token attached by the refresh
// strategy.
func PresentedRefreshToken(c echo.Context) string {
	token, ok := c.Get(ContextKeyRefreshToken).(string)
	if !ok {
		return ""
	}

	return token
}

// RequestedNewEmail reads the new email attached by the change-email strategy.
func RequestedNewEmail(c echo.Context) string {
	email, ok := c.Get(ContextKeyNewEmail).(string)
	if !ok {
		return ""
	}

	return email
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", domainerrors.ErrUserNotValid
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", domainerrors.ErrUserNotValid
	}

	return tokenString, nil
}
