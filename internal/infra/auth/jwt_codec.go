package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"passage/config"
	"passage/internal/domain/service"
)

// purposeKey bundles a purpose's signing secret with its token lifetime.
type purposeKey struct {
	secret []byte
	ttl    time.Duration
}

// jwtCodec is a concrete implementation of the TokenCodec interface using the JWT standard.
// Every purpose signs with HS256 under its own secret.
type jwtCodec struct {
	keys map[service.Purpose]purposeKey
}

// NewJWTCodec is the constructor for jwtCodec.
// It takes configuration values to create a new token codec instance.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	keys := map[service.Purpose]purposeKey{
		service.PurposeAccess:         {secret: []byte(cfg.SecretKey.Access), ttl: cfg.TokenTTL.Access},
		service.PurposeRefresh:        {secret: []byte(cfg.SecretKey.Refresh), ttl: cfg.TokenTTL.Refresh},
		service.PurposeVerification:   {secret: []byte(cfg.SecretKey.Verification), ttl: cfg.TokenTTL.Verification},
		service.PurposeForgotPassword: {secret: []byte(cfg.SecretKey.ForgotPassword), ttl: cfg.TokenTTL.ForgotPassword},
		service.PurposeChangeEmail:    {secret: []byte(cfg.SecretKey.ChangeEmail), ttl: cfg.TokenTTL.ChangeEmail},
	}

	for purpose, key := range keys {
		if len(key.secret) == 0 {
			return nil, errors.Errorf("jwt secret for %s tokens must be provided", purpose)
		}
		if key.ttl <= 0 {
			return nil, errors.Errorf("jwt ttl for %s tokens must be positive", purpose)
		}
	}

	return &jwtCodec{keys: keys}, nil
}

// Sign produces a signed token for the given purpose. The registered time
// claims are set here from the purpose's configured lifetime.
func (c *jwtCodec) Sign(claims *service.Claims, purpose service.Purpose) (string, error) {
	key, ok := c.keys[purpose]
	if !ok {
		return "", errors.Errorf("unknown token purpose: %s", purpose)
	}

	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(key.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key.secret)
	if err != nil {
		return "", errors.Wrapf(err, "sign %s token", purpose)
	}

	return signed, nil
}

// Verify parses the token string and checks its signature against the
// purpose's secret. jwt's parser enforces expiry.
func (c *jwtCodec) Verify(tokenString string, purpose service.Purpose) (*service.Claims, error) {
	key, ok := c.keys[purpose]
	if !ok {
		return nil, errors.Errorf("unknown token purpose: %s", purpose)
	}

	claims := new(service.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return key.secret, nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "verify %s token", purpose)
	}
	if !token.Valid {
		return nil, errors.Errorf("invalid %s token", purpose)
	}

	return claims, nil
}

// TTL returns the configured lifetime for tokens of the given purpose.
func (c *jwtCodec) TTL(purpose service.Purpose) time.Duration {
	return c.keys[purpose].ttl
}
