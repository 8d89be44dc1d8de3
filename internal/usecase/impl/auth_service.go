// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"database/sql"
	"log/slog"

	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/repository"
	"passage/internal/domain/service"
	"passage/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	codec        service.TokenCodec
	verification usecase.VerificationUsecase
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	Codec        service.TokenCodec
	Verification usecase.VerificationUsecase
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		codec:        params.Codec,
		verification: params.Verification,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ValidateByPassword checks the email/password pair against the stored
// credentials. Absent user, inactive account and password mismatch all
// return (nil, nil) so callers cannot tell the cases apart.
func (srv *authService) ValidateByPassword(ctx context.Context, email, password string) (*entity.AuthUser, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.IsActive {
		return nil, nil
	}
	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, nil
	}

	return srv.buildAuthUser(ctx, user)
}

// ValidateByID re-validates a principal by ID. Absent or inactive users
// yield (nil, nil).
func (srv *authService) ValidateByID(ctx context.Context, id uuid.UUID) (*entity.AuthUser, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if !user.IsActive {
		return nil, nil
	}

	return srv.buildAuthUser(ctx, user)
}

// ValidateByEmail re-validates a principal by email. Absent or inactive
// users yield (nil, nil).
func (srv *authService) ValidateByEmail(ctx context.Context, email string) (*entity.AuthUser, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.IsActive {
		return nil, nil
	}

	return srv.buildAuthUser(ctx, user)
}

// SignUp registers a new account and dispatches the confirmation mail.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.AuthUser, error) {
	srv.log(ctx).Info("Starting sign up", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.Wrap(err)
	}

	user := &entity.User{
		Email:         input.Email,
		Firstname:     input.Firstname,
		Lastname:      input.Lastname,
		PasswordHash:  passwordHash,
		IsActive:      true,
		EmailVerified: false,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	// Delivery failures do not fail the registration. The user can ask for
	// the link again through the resend endpoint.
	if err := srv.verification.SendConfirmation(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to dispatch confirmation mail",
			slog.String("email", user.Email),
			slog.Any("error", err),
		)
	}

	return srv.buildAuthUser(ctx, user)
}

// SignIn mints a session token pair for a validated principal and stores
// the hashed refresh token in the user record.
func (srv *authService) SignIn(ctx context.Context, user *entity.AuthUser) (*usecase.LoginOutput, error) {
	pair, err := srv.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := srv.storeRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Session issued", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		TokenPair: *pair,
		ExpiresIn: int64(srv.codec.TTL(service.PurposeAccess).Seconds()),
		User:      user,
	}, nil
}

// Refresh rotates the session. The presented token must match the stored
// hash; every successful refresh replaces the stored hash with the new one.
func (srv *authService) Refresh(ctx context.Context, userID uuid.UUID, refreshToken string) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrAccessDenied
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if user.RefreshTokenHash == nil {
		return nil, domainerrors.ErrAccessDenied
	}
	if !srv.hasher.Check(refreshToken, *user.RefreshTokenHash) {
		return nil, domainerrors.ErrAccessDenied
	}

	authUser, err := srv.buildAuthUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return srv.SignIn(ctx, authUser)
}

// LogOut clears the stored refresh token hash, ending the session.
func (srv *authService) LogOut(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Logging out", slog.String("userID", userID.String()))

	return srv.userRepo.Update(ctx, userID, repository.UserPatch{
		RefreshTokenHash: &sql.NullString{Valid: false},
	})
}

// ResetPassword changes the password after checking the old one.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user by id")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		return domainerrors.ErrPasswordIncorrect
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.Wrap(err)
	}

	return srv.userRepo.UpdatePassword(ctx, user.ID, newHash)
}

// ChangePassword sets a new password without checking the old one. Used by
// the forgot-password flow after the mailed token has been verified.
func (srv *authService) ChangePassword(ctx context.Context, email, newPassword string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user by email")
	}

	newHash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.Wrap(err)
	}

	return srv.userRepo.UpdatePassword(ctx, user.ID, newHash)
}

// HandleEmailUpdate validates the password and the new address, then
// dispatches a confirmation mail to the new address. The email itself is
// not changed until the recipient follows the link.
func (srv *authService) HandleEmailUpdate(ctx context.Context, input usecase.EmailUpdateInput) error {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user by id")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return domainerrors.ErrPasswordIncorrect
	}

	taken, err := srv.userRepo.FindByEmail(ctx, input.NewEmail)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check new email")
	}
	if taken != nil && taken.ID != user.ID {
		return domainerrors.ErrEmailTaken
	}

	return srv.verification.RequestEmailChange(ctx, user, input.NewEmail)
}

// CountUsers returns the total number of registered accounts.
func (srv *authService) CountUsers(ctx context.Context) (int64, error) {
	return srv.userRepo.CountAll(ctx)
}

// issueTokens signs the access and refresh tokens concurrently. Both carry
// the same user projection.
func (srv *authService) issueTokens(ctx context.Context, user *entity.AuthUser) (*usecase.TokenPair, error) {
	var pair usecase.TokenPair

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		token, err := srv.codec.Sign(sessionClaims(user), service.PurposeAccess)
		if err != nil {
			return errors.Wrap(err, "sign access token")
		}
		pair.AccessToken = token

		return nil
	})
	eg.Go(func() error {
		token, err := srv.codec.Sign(sessionClaims(user), service.PurposeRefresh)
		if err != nil {
			return errors.Wrap(err, "sign refresh token")
		}
		pair.RefreshToken = token

		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &pair, nil
}

// storeRefreshToken hashes the raw refresh token and writes it into the
// user record's single refresh slot.
func (srv *authService) storeRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	hash, err := srv.hasher.Hash(refreshToken)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.Wrap(err)
	}

	return srv.userRepo.Update(ctx, userID, repository.UserPatch{
		RefreshTokenHash: &sql.NullString{String: hash, Valid: true},
	})
}

// buildAuthUser resolves roles and strips secrets from the persisted record.
func (srv *authService) buildAuthUser(ctx context.Context, user *entity.User) (*entity.AuthUser, error) {
	roles, err := srv.userRepo.GetRoles(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roles")
	}

	return entity.NewAuthUser(user, roles), nil
}

func sessionClaims(user *entity.AuthUser) *service.Claims {
	return &service.Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.ID.String(),
		},
	}
}
