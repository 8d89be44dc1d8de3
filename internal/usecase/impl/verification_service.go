package impl

import (
	"context"
	"log/slog"
	"net/url"

	"passage/config"
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
)

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	userRepo                repository.UserRepository
	codec                   service.TokenCodec
	notifier                service.Notifier
	links                   config.LinksConfig
	requireVerifiedForReset bool
	logger                  *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Codec    service.TokenCodec
	Notifier service.Notifier
	Config   *config.Config
	Logger   *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	requireVerified := false
	if params.Config.Auth != nil {
		requireVerified = params.Config.Auth.RequireVerifiedEmailForReset
	}

	return &verificationService{
		userRepo:                params.UserRepo,
		codec:                   params.Codec,
		notifier:                params.Notifier,
		links:                   params.Config.Links,
		requireVerifiedForReset: requireVerified,
		logger:                  params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendConfirmation issues a verification token for the user and mails the
// confirmation link.
func (srv *verificationService) SendConfirmation(ctx context.Context, user *entity.User) error {
	token, err := srv.codec.Sign(workflowClaims(user.Email, ""), service.PurposeVerification)
	if err != nil {
		return errors.Wrap(err, "sign verification token")
	}

	link := buildTokenLink(srv.links.EmailConfirmationURL, token)

	srv.log(ctx).Info("Dispatching confirmation mail", slog.String("email", user.Email))

	return srv.notifier.SendConfirmation(ctx, user.Email, user.DisplayName(), link)
}

// ResendConfirmation re-sends the confirmation link. Already verified
// addresses are rejected without dispatching anything.
func (srv *verificationService) ResendConfirmation(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user by email")
	}

	if user.EmailVerified {
		return domainerrors.ErrEmailAlreadyVerified
	}

	return srv.SendConfirmation(ctx, user)
}

// VerifyEmail consumes a verification token and marks the address verified.
// Verifying an already verified address succeeds idempotently.
func (srv *verificationService) VerifyEmail(ctx context.Context, token string) (*entity.AuthUser, error) {
	claims, err := srv.codec.Verify(token, service.PurposeVerification)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.Wrap(err)
	}
	if claims.Email == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	if err := srv.userRepo.MarkEmailVerified(ctx, user.Email); err != nil {
		return nil, err
	}
	user.EmailVerified = true

	roles, err := srv.userRepo.GetRoles(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roles")
	}

	srv.log(ctx).Info("Email verified", slog.String("email", user.Email))

	return entity.NewAuthUser(user, roles), nil
}

// ForgotPassword issues a forgot-password token and mails the reset link.
// The account must exist and be active. Requiring a verified email as well
// is a configurable policy.
func (srv *verificationService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user by email")
	}

	if !user.IsActive {
		return domainerrors.ErrUserInactive
	}
	if srv.requireVerifiedForReset && !user.EmailVerified {
		return domainerrors.ErrEmailNotVerified
	}

	token, err := srv.codec.Sign(workflowClaims(user.Email, ""), service.PurposeForgotPassword)
	if err != nil {
		return errors.Wrap(err, "sign forgot password token")
	}

	link := buildTokenLink(srv.links.ForgotPasswordURL, token)

	srv.log(ctx).Info("Dispatching forgot password mail", slog.String("email", user.Email))

	return srv.notifier.SendForgotPassword(ctx, user.Email, user.DisplayName(), link)
}

// RequestEmailChange issues a change-email token and mails the confirmation
// link to the proposed new address.
func (srv *verificationService) RequestEmailChange(ctx context.Context, user *entity.User, newEmail string) error {
	token, err := srv.codec.Sign(workflowClaims(user.Email, newEmail), service.PurposeChangeEmail)
	if err != nil {
		return errors.Wrap(err, "sign change email token")
	}

	link := buildTokenLink(srv.links.NewEmailConfirmationURL, token)

	srv.log(ctx).Info("Dispatching change email mail",
		slog.String("email", user.Email),
		slog.String("newEmail", newEmail),
	)

	return srv.notifier.SendChangeEmailConfirmation(ctx, newEmail, user.DisplayName(), link)
}

// CompleteEmailChange moves the account to the new address. The change-email
// token was already verified at the authorization gate, which resolved the
// principal and attached the new address. Following the mailed link proves
// control of the new address, so it is marked verified.
func (srv *verificationService) CompleteEmailChange(ctx context.Context, userID uuid.UUID, newEmail string) error {
	if newEmail == "" {
		return domainerrors.ErrInvalidToken
	}

	taken, err := srv.userRepo.FindByEmail(ctx, newEmail)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check new email")
	}
	if taken != nil && taken.ID != userID {
		return domainerrors.ErrEmailTaken
	}

	verified := true
	err = srv.userRepo.Update(ctx, userID, repository.UserPatch{
		Email:         &newEmail,
		EmailVerified: &verified,
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Email change completed",
		slog.String("userID", userID.String()),
		slog.String("newEmail", newEmail),
	)

	return nil
}

func workflowClaims(email, newEmail string) *service.Claims {
	return &service.Claims{
		Email:    email,
		NewEmail: newEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: email,
		},
	}
}

// buildTokenLink appends the token as a query parameter to the configured
// frontend base URL.
func buildTokenLink(base, token string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + "?token=" + url.QueryEscape(token)
	}

	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return u.String()
}
