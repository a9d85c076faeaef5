package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finances_app/internal/apperrors"
	"github.com/SscSPs/finances_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finances_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finances_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountReader portsrepo.AccountReader
	accountWriter portsrepo.AccountWriter
}

// NewAccountService creates a new account service. repo may be a caching
// decorator as long as its writes keep the cache consistent.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountReader: repo,
		accountWriter: repo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, cmd portssvc.CreateAccountCommand) (uuid.UUID, error) {
	account, err := domain.NewAccount(cmd.UserID, cmd.Name, cmd.Balance, cmd.Type)
	if err != nil {
		s.LogWarn(ctx, err, "Account creation rejected", slog.String("account_type", string(cmd.Type)))
		return uuid.Nil, err
	}

	ok, err := s.accountWriter.CreateAccount(ctx, *account)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("account_id", account.ID.String()))
		return uuid.Nil, nil
	}
	if !ok {
		return uuid.Nil, nil
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.ID.String()), slog.String("account_type", string(account.Type)))
	return account.ID, nil
}

func (s *accountService) RenameAccount(ctx context.Context, cmd portssvc.RenameAccountCommand) (bool, error) {
	return s.mutate(ctx, cmd.AccountID, "rename", func(a *domain.Account) error {
		return a.UpdateName(cmd.Name)
	})
}

func (s *accountService) ApplyAccountDelta(ctx context.Context, cmd portssvc.ApplyAccountDeltaCommand) (bool, error) {
	return s.mutate(ctx, cmd.AccountID, "apply_delta", func(a *domain.Account) error {
		return a.ApplyDelta(cmd.Delta, cmd.Operation)
	})
}

func (s *accountService) ScheduleAccountPayment(ctx context.Context, cmd portssvc.ScheduleAccountPaymentCommand) (bool, error) {
	return s.mutate(ctx, cmd.AccountID, "schedule_payment", func(a *domain.Account) error {
		return a.SetPaymentSchedule(cmd.PaymentDate, cmd.DueDate)
	})
}

func (s *accountService) CloseAccount(ctx context.Context, accountID uuid.UUID) (bool, error) {
	return s.mutate(ctx, accountID, "close", func(a *domain.Account) error {
		return a.Close()
	})
}

// mutate loads an account, applies fn and stores the result. Rule violations
// from fn are returned; storage failures are logged and reported as false.
func (s *accountService) mutate(ctx context.Context, accountID uuid.UUID, op string, fn func(*domain.Account) error) (bool, error) {
	account, err := s.accountReader.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to load account", slog.String("account_id", accountID.String()), slog.String("operation", op))
		return false, nil
	}

	if err := fn(account); err != nil {
		s.LogWarn(ctx, err, "Account operation rejected", slog.String("account_id", accountID.String()), slog.String("operation", op))
		return false, err
	}

	ok, err := s.accountWriter.UpdateAccount(ctx, *account)
	if err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID.String()), slog.String("operation", op))
		return false, nil
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID.String()), slog.String("operation", op), slog.Bool("stored", ok))
	return ok, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID uuid.UUID) bool {
	ok, err := s.accountWriter.DeleteAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID.String()))
		return false
	}
	return ok
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID uuid.UUID) domain.Account {
	account, err := s.accountReader.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get account", slog.String("account_id", accountID.String()))
		}
		return domain.Account{}
	}
	return *account
}

func (s *accountService) GetAccounts(ctx context.Context) []domain.Account {
	return s.list(ctx, "all", s.accountReader.ListAccounts)
}

func (s *accountService) GetActiveAccounts(ctx context.Context) []domain.Account {
	return s.list(ctx, "active", s.accountReader.ListActiveAccounts)
}

func (s *accountService) GetAccountsByType(ctx context.Context, accountType domain.AccountType) []domain.Account {
	return s.list(ctx, string(accountType), func(ctx context.Context) ([]domain.Account, error) {
		return s.accountReader.ListAccountsByType(ctx, accountType)
	})
}

func (s *accountService) list(ctx context.Context, filter string, fetch func(context.Context) ([]domain.Account, error)) []domain.Account {
	accounts, err := fetch(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("filter", filter))
		return []domain.Account{}
	}
	if accounts == nil {
		return []domain.Account{}
	}
	return accounts
}
