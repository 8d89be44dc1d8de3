package impl

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/repository"
	"passage/internal/domain/service"
	mockRepo "passage/internal/mocks/repository"
	mockService "passage/internal/mocks/service"
	mockUsecase "passage/internal/mocks/usecase"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	codec        *mockService.MockTokenCodec
	verification *mockUsecase.MockVerificationUsecase
	service      usecase.AuthUsecase
}

func newAuthFixture(t *testing.T) *authFixture {
	f := &authFixture{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		codec:        mockService.NewMockTokenCodec(t),
		verification: mockUsecase.NewMockVerificationUsecase(t),
	}
	f.service = NewAuthService(AuthServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		Hasher:       f.hasher,
		Codec:        f.codec,
		Verification: f.verification,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func activeUser() *entity.User {
	hash := "stored-refresh-hash"

	return &entity.User{
		ID:               uuid.New(),
		Email:            "smith@mail.com",
		Firstname:        "John",
		Lastname:         "Smith",
		PasswordHash:     "stored-password-hash",
		IsActive:         true,
		EmailVerified:    true,
		RefreshTokenHash: &hash,
	}
}

func TestAuthService_ValidateByPassword_Success(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := activeUser()

	f.userRepo.EXPECT().FindByEmail(ctx, "smith@mail.com").Return(user, nil)
	f.hasher.EXPECT().Check("password12345", "stored-password-hash").Return(true)
	f.userRepo.EXPECT().GetRoles(ctx, user.ID).Return([]entity.Role{{ID: uuid.New(), Name: entity.RoleUser}}, nil)

	authUser, err := f.service.ValidateByPassword(ctx, "smith@mail.com", "password12345")

	require.NoError(t, err)
	require.NotNil(t, authUser)
	assert.Equal(t, user.ID, authUser.ID)
	assert.Equal(t, "smith@mail.com", authUser.Email)
	assert.Equal(t, []string{"user"}, authUser.Roles)
}

func TestAuthService_ValidateByPassword_UnknownUser(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "ghost@mail.com").Return(nil, repository.ErrUserNotFound)

	authUser, err := f.service.ValidateByPassword(ctx, "ghost@mail.com", "whatever")

	require.NoError(t, err)
	assert.Nil(t, authUser)
}

func TestAuthService_ValidateByPassword_InactiveUser(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := activeUser()
	user.Email = "sanchezr@mail.com"
	user.IsActive = false

	f.userRepo.EXPECT().FindByEmail(ctx, "sanchezr@mail.com").Return(user, nil)

	// The password is never even checked for an inactive account.
	authUser, err := f.service.ValidateByPassword(ctx, "sanchezr@mail.com", "password12345")

	require.NoError(t, err)
	assert.Nil(t, authUser)
}

func TestAuthService_ValidateByPassword_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := activeUser()

	f.userRepo.EXPECT().FindByEmail(ctx, "smith@mail.com").Return(user, nil)
	f.hasher.EXPECT().Check("wrong-password", "stored-password-hash").Return(false)

	authUser, err := f.service.ValidateByPassword(ctx, "smith@mail.com", "wrong-password")

	require.NoError(t, err)
	assert.Nil(t, authUser)
}

func TestAuthService_ValidateByID_Inactive(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := activeUser()
	user.IsActive = false

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	authUser, err := f.service.ValidateByID(ctx, user.ID)

	require.NoError(t, err)
	assert.Nil(t, authUser)
}

func TestAuthService_SignIn_IssuesPairAndStoresHash(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	authUser := &entity.AuthUser{ID: uuid.New(), Email: "smith@mail.com", IsActive: true, EmailVerified: true}

	f.codec.EXPECT().Sign(mock.Anything, service.PurposeAccess).Return("new-access-token", nil)
	f.codec.EXPECT().Sign(mock.Anything, service.PurposeRefresh).Return("new-refresh-token", nil)
	f.codec.EXPECT().TTL(service.PurposeAccess).Return(45 * time.Minute)
	f.hasher.EXPECT().Hash("new-refresh-token").Return("hashed-refresh-token", nil)
	f.userRepo.EXPECT().
		Update(ctx, authUser.ID, mock.MatchedBy(func(patch repository.UserPatch) bool {
			return patch.RefreshTokenHash != nil &&
				patch.RefreshTokenHash.Valid &&
				patch.RefreshTokenHash.String == "hashed-refresh-token"
		})).
		Return(nil)

	out, err := f.service.SignIn(ctx, authUser)

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", out.AccessToken)
	assert.Equal(t, "new-refresh-token", out.RefreshToken)
	assert.Equal(t, int64(2700), out.ExpiresIn)
	assert.Equal(t, authUser.ID, out.User.ID)
}

func TestAuthService_Refresh_RotatesStoredHash(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := activeUser()

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.hasher.EXPECT().Check("presented-refresh-token", "stored-refresh-hash").Return(true)
	f.userRepo.EXPECT().GetRoles(ctx, user.ID).Return(nil, nil)
	f.codec.EXPECT().Sign(mock.Anything, service.PurposeAccess).Return("rotated-access", nil)
	f.codec.EXPECT().Sign(mock.Anything, service.PurposeRefresh).Return("rotated-refresh", nil)
	f.codec.EXPECT().TTL(service.PurposeAccess).Return(45 * time.Minute)
	f.hasher.EXPECT().Hash("rotated-refresh").Return("rotated-hash", nil)
	f.userRepo.EXPECT().
		Update(ctx, user.ID, mock.MatchedBy(func(patch repository.UserPatch) bool {
			return patch.RefreshTokenHash != nil &&
				patch.RefreshTokenHash.Valid &&
				patch.RefreshTokenHash.String == "rotated-hash"
		})).
		Return(nil)

	out, err := f.service.Refresh(ctx, user.ID, "presented-refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "rotated-access", out.AccessToken)
	assert.Equal(t, "rotated-refresh", out.RefreshToken)
}

func TestAuthService_Refresh_UnknownUser(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Refresh(ctx, userID, "token")

	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestAuthService_Refresh_NoStoredHash(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := activeUser()
	user.RefreshTokenHash = nil

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := f.service.Refresh(ctx, user.ID, "token")

	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestAuthService_Refresh_HashMismatch(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := activeUser()

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.hasher.EXPECT().Check("stolen-token", "stored-refresh-hash").Return(false)

	_, err := f.service.Refresh(ctx, user.ID, "stolen-token")

	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestAuthService_LogOut_ClearsStoredHash(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().
		Update(ctx, userID, repository.UserPatch{RefreshTokenHash: &sql.NullString{Valid: false}}).
		Return(nil)

	require.NoError(t, f.service.LogOut(ctx, userID))
}

func TestAuthService_SignUp_Success(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("password12345").Return("fresh-password-hash", nil)
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			txUserRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
					return user.Email == "smith@mail.com" &&
						user.PasswordHash == "fresh-password-hash" &&
						user.IsActive && !user.EmailVerified
				})).
				RunAndReturn(func(_ context.Context, user *entity.User) error {
					user.ID = uuid.New()

					return nil
				})

			_ = fn(mockFactory)
		}).
		Return(nil)
	f.verification.EXPECT().SendConfirmation(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	f.userRepo.EXPECT().GetRoles(ctx, mock.AnythingOfType("uuid.UUID")).Return(nil, nil)

	authUser, err := f.service.SignUp(ctx, usecase.SignUpInput{
		Email:     "smith@mail.com",
		Firstname: "John",
		Lastname:  "Smith",
		Password:  "password12345",
	})

	require.NoError(t, err)
	assert.Equal(t, "smith@mail.com", authUser.Email)
	assert.True(t, authUser.IsActive)
	assert.False(t, authUser.EmailVerified)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("password12345").Return("fresh-password-hash", nil)
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrEmailConflict)

	_, err := f.service.SignUp(ctx, usecase.SignUpInput{
		Email:    "smith@mail.com",
		Password: "password12345",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailConflict)
}

func TestAuthService_ResetPassword_WrongOldPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := activeUser()

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.hasher.EXPECT().Check("not-the-password", "stored-password-hash").Return(false)

	err := f.service.ResetPassword(ctx, usecase.ResetPasswordInput{
		UserID:      user.ID,
		OldPassword: "not-the-password",
		NewPassword: "new-password12345",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordIncorrect)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := activeUser()

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.hasher.EXPECT().Check("password12345", "stored-password-hash").Return(true)
	f.hasher.EXPECT().Hash("new-password12345").Return("new-password-hash", nil)
	f.userRepo.EXPECT().UpdatePassword(ctx, user.ID, "new-password-hash").Return(nil)

	err := f.service.ResetPassword(ctx, usecase.ResetPasswordInput{
		UserID:      user.ID,
		OldPassword: "password12345",
		NewPassword: "new-password12345",
	})

	require.NoError(t, err)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := activeUser()

	f.userRepo.EXPECT().FindByEmail(ctx, "smith@mail.com").Return(user, nil)
	f.hasher.EXPECT().Hash("reset-password").Return("reset-password-hash", nil)
	f.userRepo.EXPECT().UpdatePassword(ctx, user.ID, "reset-password-hash").Return(nil)

	require.NoError(t, f.service.ChangePassword(ctx, "smith@mail.com", "reset-password"))
}

func TestAuthService_HandleEmailUpdate_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := activeUser()

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.hasher.EXPECT().Check("bad-password", "stored-password-hash").Return(false)

	err := f.service.HandleEmailUpdate(ctx, usecase.EmailUpdateInput{
		UserID:   user.ID,
		Password: "bad-password",
		NewEmail: "smith.new@mail.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordIncorrect)
}

func TestAuthService_HandleEmailUpdate_EmailTaken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := activeUser()
	other := activeUser()
	other.ID = uuid.New()
	other.Email = "taken@mail.com"

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.hasher.EXPECT().Check("password12345", "stored-password-hash").Return(true)
	f.userRepo.EXPECT().FindByEmail(ctx, "taken@mail.com").Return(other, nil)

	// No dispatch happens when the address belongs to someone else.
	err := f.service.HandleEmailUpdate(ctx, usecase.EmailUpdateInput{
		UserID:   user.ID,
		Password: "password12345",
		NewEmail: "taken@mail.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_HandleEmailUpdate_Success(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := activeUser()

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.hasher.EXPECT().Check("password12345", "stored-password-hash").Return(true)
	f.userRepo.EXPECT().FindByEmail(ctx, "smith.new@mail.com").Return(nil, repository.ErrUserNotFound)
	f.verification.EXPECT().RequestEmailChange(ctx, user, "smith.new@mail.com").Return(nil)

	err := f.service.HandleEmailUpdate(ctx, usecase.EmailUpdateInput{
		UserID:   user.ID,
		Password: "password12345",
		NewEmail: "smith.new@mail.com",
	})

	require.NoError(t, err)
}

func TestAuthService_CountUsers(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().CountAll(ctx).Return(int64(42), nil)

	count, err := f.service.CountUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}
