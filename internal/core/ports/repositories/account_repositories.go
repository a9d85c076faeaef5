package repositories

import (
	"context"

	"github.com/SscSPs/finances_app/internal/core/domain"
	"github.com/google/uuid"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account by its ID. Returns apperrors.ErrNotFound when absent.
	FindAccountByID(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListActiveAccounts retrieves accounts whose status is Active.
	ListActiveAccounts(ctx context.Context) ([]domain.Account, error)

	// ListAccountsByType retrieves accounts of a single type.
	ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, account domain.Account) (bool, error)

	// UpdateAccount replaces a stored account. Returns false when the ID is unknown.
	UpdateAccount(ctx context.Context, account domain.Account) (bool, error)

	// DeleteAccount removes an account. Returns false when the ID is unknown.
	DeleteAccount(ctx context.Context, accountID uuid.UUID) (bool, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
