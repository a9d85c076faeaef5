package services

import (
	"context"
	"time"

	"github.com/SscSPs/finances_app/internal/core/domain"
	"github.com/google/uuid"
)

// CreateAccountCommand opens a new account.
type CreateAccountCommand struct {
	UserID  *uuid.UUID
	Name    string
	Balance domain.Money
	Type    domain.AccountType
}

// RenameAccountCommand changes the name of an active account.
type RenameAccountCommand struct {
	AccountID uuid.UUID
	Name      string
}

// ApplyAccountDeltaCommand moves money in or out of an account.
type ApplyAccountDeltaCommand struct {
	AccountID uuid.UUID
	Delta     domain.Money
	Operation domain.OperationType
}

// ScheduleAccountPaymentCommand sets the payment and due dates of an account.
type ScheduleAccountPaymentCommand struct {
	AccountID   uuid.UUID
	PaymentDate *time.Time
	DueDate     *time.Time
}

// AccountReaderSvc defines read operations for account data.
// Absence and storage failures yield the empty sentinel or an empty slice.
type AccountReaderSvc interface {
	// GetAccountByID returns the account or the empty sentinel.
	GetAccountByID(ctx context.Context, accountID uuid.UUID) domain.Account

	// GetAccounts returns all accounts.
	GetAccounts(ctx context.Context) []domain.Account

	// GetActiveAccounts returns accounts that are not closed.
	GetActiveAccounts(ctx context.Context) []domain.Account

	// GetAccountsByType returns accounts of one type.
	GetAccountsByType(ctx context.Context, accountType domain.AccountType) []domain.Account
}

// AccountWriterSvc defines write operations for account data.
// Domain rule violations are returned as errors; storage failures are logged
// and reported as false / uuid.Nil.
type AccountWriterSvc interface {
	// CreateAccount opens an account and returns its ID.
	CreateAccount(ctx context.Context, cmd CreateAccountCommand) (uuid.UUID, error)

	// RenameAccount renames an account. Returns apperrors.ErrNotFound when absent.
	RenameAccount(ctx context.Context, cmd RenameAccountCommand) (bool, error)

	// ApplyAccountDelta applies a delta. Returns apperrors.ErrNotFound when absent.
	ApplyAccountDelta(ctx context.Context, cmd ApplyAccountDeltaCommand) (bool, error)

	// ScheduleAccountPayment sets payment dates. Returns apperrors.ErrNotFound when absent.
	ScheduleAccountPayment(ctx context.Context, cmd ScheduleAccountPaymentCommand) (bool, error)

	// CloseAccount closes a zero-balance account. Returns apperrors.ErrNotFound when absent.
	CloseAccount(ctx context.Context, accountID uuid.UUID) (bool, error)

	// DeleteAccount removes an account without any domain checks.
	DeleteAccount(ctx context.Context, accountID uuid.UUID) bool
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
