package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/finances_app/internal/apperrors"
	"github.com/SscSPs/finances_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finances_app/internal/core/ports/repositories"
	"github.com/SscSPs/finances_app/internal/models"
	"github.com/SscSPs/finances_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, user_id, name, balance_amount, balance_currency, credit_limit_amount, credit_limit_currency,
        current_debt_amount, current_debt_currency, type, status, payment_date, due_date, created_at, closed_at`

// PgxAccountRepository implements portsrepo.AccountRepositoryFacade using pgx.
type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(db DB) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository{db: db}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Name,
		&m.BalanceAmount,
		&m.BalanceCurrency,
		&m.CreditLimitAmount,
		&m.CreditLimitCurrency,
		&m.CurrentDebtAmount,
		&m.CurrentDebtCurrency,
		&m.Type,
		&m.Status,
		&m.PaymentDate,
		&m.DueDate,
		&m.CreatedAt,
		&m.ClosedAt,
	)
	return m, err
}

// CreateAccount inserts a new account.
func (r *PgxAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (bool, error) {
	m := mapping.ToModelAccount(account)
	query := `
        INSERT INTO accounts (` + accountColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.ID,
		m.UserID,
		m.Name,
		m.BalanceAmount,
		m.BalanceCurrency,
		m.CreditLimitAmount,
		m.CreditLimitCurrency,
		m.CurrentDebtAmount,
		m.CurrentDebtCurrency,
		m.Type,
		m.Status,
		m.PaymentDate,
		m.DueDate,
		m.CreatedAt,
		m.ClosedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("account %s: %w", m.ID, apperrors.ErrDuplicate)
		}
		return false, fmt.Errorf("failed to insert account %s: %w", m.ID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// UpdateAccount replaces every mutable column of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) (bool, error) {
	m := mapping.ToModelAccount(account)
	query := `
        UPDATE accounts
        SET user_id = $1, name = $2,
            balance_amount = $3, balance_currency = $4,
            credit_limit_amount = $5, credit_limit_currency = $6,
            current_debt_amount = $7, current_debt_currency = $8,
            type = $9, status = $10, payment_date = $11, due_date = $12, closed_at = $13
        WHERE id = $14;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.BalanceAmount,
		m.BalanceCurrency,
		m.CreditLimitAmount,
		m.CreditLimitCurrency,
		m.CurrentDebtAmount,
		m.CurrentDebtCurrency,
		m.Type,
		m.Status,
		m.PaymentDate,
		m.DueDate,
		m.ClosedAt,
		m.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update account %s: %w", m.ID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// DeleteAccount removes an account row.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID uuid.UUID) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1;`, accountID)
	if err != nil {
		return false, fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// FindAccountByID retrieves a single account.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1;`

	m, err := scanAccount(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	account, err := mapping.ToDomainAccount(m)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ListAccounts retrieves all accounts, newest first.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC;`
	return r.queryAccounts(ctx, query)
}

// ListActiveAccounts retrieves accounts that are not closed.
func (r *PgxAccountRepository) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE status = $1 ORDER BY created_at DESC;`
	return r.queryAccounts(ctx, query, string(domain.AccountStatusActive))
}

// ListAccountsByType retrieves accounts of one type.
func (r *PgxAccountRepository) ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE type = $1 ORDER BY created_at DESC;`
	return r.queryAccounts(ctx, query, string(accountType))
}

func (r *PgxAccountRepository) queryAccounts(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	modelAccounts := []models.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		modelAccounts = append(modelAccounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return mapping.ToDomainAccountSlice(modelAccounts)
}
