package postgres

import (
	"context"
	"strings"

	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/repository"
	"passage/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address. Emails are
// stored lower-cased, so the lookup folds case first.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailConflict.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.Email = userM.Email
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update applies a partial update to an existing user record. Only fields
// set in the patch are written.
func (repo *userRepository) Update(ctx context.Context, id uuid.UUID, patch repository.UserPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	values := map[string]any{}
	if patch.Firstname != nil {
		values["firstname"] = *patch.Firstname
	}
	if patch.Lastname != nil {
		values["lastname"] = *patch.Lastname
	}
	if patch.Email != nil {
		values["email"] = normalizeEmail(*patch.Email)
	}
	if patch.EmailVerified != nil {
		values["email_verified"] = *patch.EmailVerified
	}
	if patch.RefreshTokenHash != nil {
		if patch.RefreshTokenHash.Valid {
			values["refresh_token_hash"] = patch.RefreshTokenHash.String
		} else {
			values["refresh_token_hash"] = nil
		}
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(values)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailConflict.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces the stored password hash.
func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// MarkEmailVerified flips the email-verified flag for the given address.
// Verifying an already verified address is a no-op, not an error.
func (repo *userRepository) MarkEmailVerified(ctx context.Context, email string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", normalizeEmail(email)).
		Update("email_verified", true)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark email verified")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// GetRoles returns the roles linked to the user through the join table.
func (repo *userRepository) GetRoles(ctx context.Context, userID uuid.UUID) ([]entity.Role, error) {
	var roleMs []model.RoleModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Find(&roleMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to load user roles")
	}

	roles := make([]entity.Role, 0, len(roleMs))
	for _, roleM := range roleMs {
		roles = append(roles, entity.Role{
			ID:   roleM.ID,
			Name: entity.RoleName(roleM.Name),
		})
	}

	return roles, nil
}

// CountAll returns the total number of user records.
func (repo *userRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// toUserDomain maps the persistence model to the pure domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:               userM.ID,
		Email:            userM.Email,
		Firstname:        userM.Firstname,
		Lastname:         userM.Lastname,
		PasswordHash:     userM.PasswordHash,
		IsActive:         userM.IsActive,
		EmailVerified:    userM.EmailVerified,
		RefreshTokenHash: userM.RefreshTokenHash,
		CreatedAt:        userM.CreatedAt,
		UpdatedAt:        userM.UpdatedAt,
	}
}

// fromUserDomain maps the domain entity to the GORM persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:               user.ID,
		Email:            normalizeEmail(user.Email),
		Firstname:        user.Firstname,
		Lastname:         user.Lastname,
		PasswordHash:     user.PasswordHash,
		IsActive:         user.IsActive,
		EmailVerified:    user.EmailVerified,
		RefreshTokenHash: user.RefreshTokenHash,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}
