package services

import (
	"context"
	"time"

	"github.com/SscSPs/finances_app/internal/core/domain"
	"github.com/google/uuid"
)

// CreateUserCommand registers a new user.
type CreateUserCommand struct {
	Name         string
	Email        string
	DateOfBirth  time.Time
	ProfileImage string
}

// UpdateUserCommand replaces the editable fields of a user.
type UpdateUserCommand struct {
	UserID       uuid.UUID
	Name         string
	Email        string
	DateOfBirth  time.Time
	ProfileImage string
}

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID returns the user or the empty sentinel.
	GetUserByID(ctx context.Context, userID uuid.UUID) domain.User

	// GetUserByEmail returns the user or the empty sentinel.
	GetUserByEmail(ctx context.Context, email string) domain.User

	// GetUsers returns all users.
	GetUsers(ctx context.Context) []domain.User

	// GetUsersRegisteredAfter returns users registered after t.
	GetUsersRegisteredAfter(ctx context.Context, t time.Time) []domain.User
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser validates and stores a user, returning its ID.
	// Returns apperrors.ErrDuplicate when the email is taken.
	CreateUser(ctx context.Context, cmd CreateUserCommand) (uuid.UUID, error)

	// UpdateUser stores the new field values without validation.
	UpdateUser(ctx context.Context, cmd UpdateUserCommand) bool

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, userID uuid.UUID) bool
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
