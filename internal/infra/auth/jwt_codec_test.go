package auth

import (
	"testing"
	"time"

	"passage/config"
	"passage/internal/domain/entity"
	"passage/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCodecConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.SecretKey.Verification = "test_verification_secret_key_for_testing"
	cfg.SecretKey.ForgotPassword = "test_forgot_password_secret_key_for_testing"
	cfg.SecretKey.ChangeEmail = "test_change_email_secret_key_for_testing"
	cfg.TokenTTL.Access = 45 * time.Minute
	cfg.TokenTTL.Refresh = 24 * time.Hour
	cfg.TokenTTL.Verification = time.Hour
	cfg.TokenTTL.ForgotPassword = time.Hour
	cfg.TokenTTL.ChangeEmail = time.Hour

	return cfg
}

func TestJWTCodec_SignAndVerify(t *testing.T) {
	codec, err := NewJWTCodec(testCodecConfig())
	require.NoError(t, err)

	user := &entity.AuthUser{
		ID:            uuid.New(),
		Email:         "smith@mail.com",
		Firstname:     "John",
		Lastname:      "Smith",
		IsActive:      true,
		EmailVerified: true,
		Roles:         []string{"user", "admin"},
	}

	accessToken, err := codec.Sign(&service.Claims{User: user}, service.PurposeAccess)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := codec.Verify(accessToken, service.PurposeAccess)
	require.NoError(t, err)
	require.NotNil(t, claims.User)
	assert.Equal(t, user.ID, claims.User.ID)
	assert.Equal(t, user.Email, claims.User.Email)
	assert.Equal(t, user.Roles, claims.User.Roles)
	assert.WithinDuration(t, time.Now().Add(45*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTCodec_PurposeIsolation(t *testing.T) {
	codec, err := NewJWTCodec(testCodecConfig())
	require.NoError(t, err)

	token, err := codec.Sign(&service.Claims{Email: "smith@mail.com"}, service.PurposeVerification)
	require.NoError(t, err)

	// A token signed for one purpose must not verify under another.
	for _, purpose := range []service.Purpose{
		service.PurposeAccess,
		service.PurposeRefresh,
		service.PurposeForgotPassword,
		service.PurposeChangeEmail,
	} {
		_, err := codec.Verify(token, purpose)
		assert.Error(t, err, "purpose %s accepted a verification token", purpose)
	}

	claims, err := codec.Verify(token, service.PurposeVerification)
	require.NoError(t, err)
	assert.Equal(t, "smith@mail.com", claims.Email)
}

func TestJWTCodec_ChangeEmailClaims(t *testing.T) {
	codec, err := NewJWTCodec(testCodecConfig())
	require.NoError(t, err)

	token, err := codec.Sign(&service.Claims{
		Email:    "smith@mail.com",
		NewEmail: "smith.new@mail.com",
	}, service.PurposeChangeEmail)
	require.NoError(t, err)

	claims, err := codec.Verify(token, service.PurposeChangeEmail)
	require.NoError(t, err)
	assert.Equal(t, "smith@mail.com", claims.Email)
	assert.Equal(t, "smith.new@mail.com", claims.NewEmail)
}

func TestJWTCodec_ExpiredToken(t *testing.T) {
	cfg := testCodecConfig()
	cfg.TokenTTL.Access = time.Nanosecond

	codec, err := NewJWTCodec(cfg)
	require.NoError(t, err)

	token, err := codec.Sign(&service.Claims{Email: "smith@mail.com"}, service.PurposeAccess)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = codec.Verify(token, service.PurposeAccess)
	assert.Error(t, err)
}

func TestJWTCodec_GarbageToken(t *testing.T) {
	codec, err := NewJWTCodec(testCodecConfig())
	require.NoError(t, err)

	_, err = codec.Verify("not-a-jwt", service.PurposeAccess)
	assert.Error(t, err)
}

func TestNewJWTCodec_MissingSecret(t *testing.T) {
	cfg := testCodecConfig()
	cfg.SecretKey.ForgotPassword = ""

	_, err := NewJWTCodec(cfg)
	assert.Error(t, err)
}
