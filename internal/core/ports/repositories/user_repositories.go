package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finances_app/internal/core/domain"
	"github.com/google/uuid"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by ID. Returns apperrors.ErrNotFound when absent.
	FindUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// FindUserByEmail retrieves a user by email. Returns apperrors.ErrNotFound when absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ListUsersRegisteredAfter retrieves users registered strictly after t.
	ListUsersRegisteredAfter(ctx context.Context, t time.Time) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// CreateUser persists a new user and returns its ID.
	CreateUser(ctx context.Context, user domain.User) (uuid.UUID, error)

	// UpdateUser replaces the editable fields of a user. Returns false when the ID is unknown.
	UpdateUser(ctx context.Context, user domain.User) (bool, error)

	// DeleteUser removes a user. Returns false when the ID is unknown.
	DeleteUser(ctx context.Context, userID uuid.UUID) (bool, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
