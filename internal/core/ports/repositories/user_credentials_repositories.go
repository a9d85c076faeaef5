package repositories

import (
	"context"

	"github.com/SscSPs/finances_app/internal/core/domain"
	"github.com/google/uuid"
)

// UserCredentialsReader defines read operations for credentials.
type UserCredentialsReader interface {
	// FindByLogin returns apperrors.ErrNotFound when no credentials use login.
	FindByLogin(ctx context.Context, login string) (*domain.UserCredentials, error)

	// FindByUserID returns apperrors.ErrNotFound when the user has no credentials.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserCredentials, error)
}

// UserCredentialsWriter defines write operations for credentials.
type UserCredentialsWriter interface {
	// CreateUserCredentials persists new credentials and returns their ID.
	CreateUserCredentials(ctx context.Context, credentials domain.UserCredentials) (uuid.UUID, error)

	// UpdatePassword stores a new password hash for userID. Returns false when none exist.
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) (bool, error)

	// DeleteUserCredentials removes the credentials of userID. Returns false when none exist.
	DeleteUserCredentials(ctx context.Context, userID uuid.UUID) (bool, error)
}

// UserCredentialsRepositoryFacade combines all credentials repository interfaces
type UserCredentialsRepositoryFacade interface {
	UserCredentialsReader
	UserCredentialsWriter
}
