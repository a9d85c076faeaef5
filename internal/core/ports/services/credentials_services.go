package services

import (
	"context"

	"github.com/SscSPs/finances_app/internal/core/domain"
	"github.com/google/uuid"
)

// RegisterUserCredentialsCommand creates credentials for a user.
type RegisterUserCredentialsCommand struct {
	UserID        uuid.UUID
	Login         string
	PlainPassword string
}

// UpdateUserCredentialsCommand replaces a user's password.
type UpdateUserCredentialsCommand struct {
	UserID           uuid.UUID
	NewPlainPassword string
}

// CredentialsReaderSvc defines read operations for credentials.
type CredentialsReaderSvc interface {
	// GetUserCredentialsByUserID returns the credentials or the empty sentinel.
	GetUserCredentialsByUserID(ctx context.Context, userID uuid.UUID) domain.UserCredentials

	// GetUserCredentialsByLogin returns the credentials or the empty sentinel.
	GetUserCredentialsByLogin(ctx context.Context, login string) domain.UserCredentials

	// VerifyUserCredentials reports whether password matches the stored hash for login.
	VerifyUserCredentials(ctx context.Context, login, password string) bool
}

// CredentialsWriterSvc defines write operations for credentials.
type CredentialsWriterSvc interface {
	// RegisterUserCredentials validates, hashes and stores credentials, returning their ID.
	// Returns apperrors.ErrDuplicate when the login is taken.
	RegisterUserCredentials(ctx context.Context, cmd RegisterUserCredentialsCommand) (uuid.UUID, error)

	// UpdateUserCredentials validates and stores a new password hash.
	UpdateUserCredentials(ctx context.Context, cmd UpdateUserCredentialsCommand) (bool, error)

	// DeleteUserCredentials removes a user's credentials.
	DeleteUserCredentials(ctx context.Context, userID uuid.UUID) bool
}

// CredentialsSvcFacade combines all credentials service interfaces
type CredentialsSvcFacade interface {
	CredentialsReaderSvc
	CredentialsWriterSvc
}
