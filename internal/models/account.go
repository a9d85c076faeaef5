package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is the storage shape of a row in the accounts table.
type Account struct {
	ID                  uuid.UUID       `db:"id"`
	UserID              *uuid.UUID      `db:"user_id"`
	Name                string          `db:"name"`
	BalanceAmount       decimal.Decimal `db:"balance_amount"`
	BalanceCurrency     string          `db:"balance_currency"`
	CreditLimitAmount   decimal.Decimal `db:"credit_limit_amount"`
	CreditLimitCurrency string          `db:"credit_limit_currency"`
	CurrentDebtAmount   decimal.Decimal `db:"current_debt_amount"`
	CurrentDebtCurrency string          `db:"current_debt_currency"`
	Type                string          `db:"type"`
	Status              string          `db:"status"`
	PaymentDate         *time.Time      `db:"payment_date"`
	DueDate             *time.Time      `db:"due_date"`
	CreatedAt           time.Time       `db:"created_at"`
	ClosedAt            *time.Time      `db:"closed_at"`
}
