package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/finances_app/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType defines how an account holds money.
type AccountType string

const (
	AccountTypeCash       AccountType = "CASH"
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeCreditCard AccountType = "CREDIT_CARD"
)

// ParseAccountType maps a stored or requested value onto a known AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch t := AccountType(strings.ToUpper(strings.TrimSpace(s))); t {
	case AccountTypeCash, AccountTypeChecking, AccountTypeCreditCard:
		return t, nil
	default:
		return "", apperrors.NewArgumentOutOfRangeError("Unknown account type.")
	}
}

// AccountStatus is the lifecycle state of an account. Closed is terminal.
type AccountStatus string

const (
	AccountStatusActive AccountStatus = "ACTIVE"
	AccountStatusClosed AccountStatus = "CLOSED"
)

// ParseAccountStatus maps a stored value onto a known AccountStatus.
func ParseAccountStatus(s string) (AccountStatus, error) {
	switch st := AccountStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case AccountStatusActive, AccountStatusClosed:
		return st, nil
	default:
		return "", apperrors.NewArgumentOutOfRangeError("Unknown account status.")
	}
}

// OperationType qualifies a delta applied to an account.
type OperationType string

const (
	OperationMoneyTransaction OperationType = "MONEY_TRANSACTION"
	OperationPayment          OperationType = "PAYMENT"
	OperationCreditPurchase   OperationType = "CREDIT_PURCHASE"
)

// ParseOperationType maps a requested value onto a known OperationType.
// An empty value means a plain money transaction.
func ParseOperationType(s string) (OperationType, error) {
	if strings.TrimSpace(s) == "" {
		return OperationMoneyTransaction, nil
	}
	switch op := OperationType(strings.ToUpper(strings.TrimSpace(s))); op {
	case OperationMoneyTransaction, OperationPayment, OperationCreditPurchase:
		return op, nil
	default:
		return "", apperrors.NewArgumentOutOfRangeError("Unknown operation type.")
	}
}

var (
	creditCardLimit        = decimal.NewFromInt(4500)
	defaultCreditLimit     = decimal.NewFromInt(500)
	defaultLimitCeiling    = decimal.NewFromInt(350)
	creditLimitBalanceMult = decimal.NewFromInt(2)
)

// Account is a user's cash, checking or credit-card account.
// The zero value is the empty sentinel returned when an account is absent.
type Account struct {
	ID          uuid.UUID     `json:"id"`
	UserID      *uuid.UUID    `json:"userId,omitempty"`
	Name        string        `json:"name"`
	Balance     Money         `json:"balance"`
	CreditLimit Money         `json:"creditLimit"`
	CurrentDebt Money         `json:"currentDebt"`
	Status      AccountStatus `json:"status"`
	Type        AccountType   `json:"type"`
	PaymentDate *time.Time    `json:"paymentDate,omitempty"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	ClosedAt    *time.Time    `json:"closedAt,omitempty"`
}

// NewAccount opens an active account with a fresh ID.
func NewAccount(userID *uuid.UUID, name string, balance Money, accountType AccountType) (*Account, error) {
	return NewAccountWithID(uuid.New(), userID, name, balance, accountType)
}

// NewAccountWithID opens an active account under a caller supplied ID.
func NewAccountWithID(id uuid.UUID, userID *uuid.UUID, name string, balance Money, accountType AccountType) (*Account, error) {
	if balance.IsNegative() && accountType != AccountTypeCreditCard {
		return nil, apperrors.NewInvalidOperationError("Initial balance cannot be negative for non credit-card accounts.")
	}

	a := &Account{
		ID:        id,
		UserID:    userID,
		Name:      name,
		Balance:   balance,
		Status:    AccountStatusActive,
		Type:      accountType,
		CreatedAt: time.Now().UTC(),
	}
	a.CreditLimit = initialCreditLimit(balance, accountType)
	a.CurrentDebt = Money{amount: decimal.Zero, currency: balance.currency}
	return a, nil
}

// ReconstructAccount rebuilds an account from storage without validation.
func ReconstructAccount(
	id uuid.UUID,
	userID *uuid.UUID,
	name string,
	balance, creditLimit, currentDebt Money,
	status AccountStatus,
	accountType AccountType,
	paymentDate, dueDate *time.Time,
	createdAt time.Time,
	closedAt *time.Time,
) *Account {
	return &Account{
		ID:          id,
		UserID:      userID,
		Name:        name,
		Balance:     balance,
		CreditLimit: creditLimit,
		CurrentDebt: currentDebt,
		Status:      status,
		Type:        accountType,
		PaymentDate: paymentDate,
		DueDate:     dueDate,
		CreatedAt:   createdAt,
		ClosedAt:    closedAt,
	}
}

func initialCreditLimit(balance Money, accountType AccountType) Money {
	if accountType == AccountTypeCreditCard {
		return Money{amount: creditCardLimit, currency: balance.currency}
	}
	if balance.amount.LessThanOrEqual(defaultLimitCeiling) {
		return Money{amount: defaultCreditLimit, currency: balance.currency}
	}
	return Money{amount: balance.amount.Mul(creditLimitBalanceMult).Ceil(), currency: balance.currency}
}

// IsEmpty reports whether a is the empty sentinel.
func (a Account) IsEmpty() bool {
	return a.ID == uuid.Nil
}

// IsActive reports whether the account still accepts mutations.
func (a Account) IsActive() bool {
	return a.Status != AccountStatusClosed
}

func (a *Account) ensureActive() error {
	if a.Status == AccountStatusClosed {
		return apperrors.NewInvalidOperationError("Account is closed.")
	}
	return nil
}

// UpdateName renames an active account.
func (a *Account) UpdateName(name string) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	a.Name = name
	return nil
}

// SetPaymentSchedule records the next payment and due dates. Either may be nil.
func (a *Account) SetPaymentSchedule(paymentDate, dueDate *time.Time) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	if paymentDate != nil && dueDate != nil && dueDate.Before(*paymentDate) {
		return apperrors.NewValidationError("Due date cannot be before payment date.")
	}
	a.PaymentDate = paymentDate
	a.DueDate = dueDate
	return nil
}

// ApplyDelta moves money in or out of the account. Credit cards and credit
// purchases change the current debt, everything else changes the balance.
func (a *Account) ApplyDelta(delta Money, op OperationType) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	if err := a.ensureCurrency(delta.currency); err != nil {
		return err
	}

	if a.Type == AccountTypeCreditCard || op == OperationCreditPurchase {
		return a.updateCredit(delta, op)
	}

	newBalance, err := a.Balance.Add(delta)
	if err != nil {
		return err
	}
	if a.Type == AccountTypeCash && newBalance.IsNegative() {
		return apperrors.NewInvalidOperationError("Insufficient funds in cash account.")
	}
	a.Balance = newBalance
	return nil
}

func (a *Account) ensureCurrency(currency string) error {
	if strings.TrimSpace(currency) == "" {
		return apperrors.NewValidationError("Currency is required.")
	}

	var reference string
	switch a.Type {
	case AccountTypeCash, AccountTypeChecking:
		reference = a.Balance.currency
	case AccountTypeCreditCard:
		reference = a.CreditLimit.currency
	default:
		return apperrors.NewArgumentOutOfRangeError("Unknown account type.")
	}

	if !strings.EqualFold(reference, currency) {
		return apperrors.NewInvalidOperationError("Currency mismatch.")
	}
	return nil
}

// updateCredit checks the limit before clamping a negative debt to zero.
func (a *Account) updateCredit(delta Money, op OperationType) error {
	var (
		newDebt Money
		err     error
	)
	if op == OperationPayment {
		newDebt, err = a.CurrentDebt.Subtract(delta.Abs())
	} else {
		newDebt, err = a.CurrentDebt.Add(delta.Abs())
	}
	if err != nil {
		return err
	}

	if newDebt.amount.GreaterThan(a.CreditLimit.amount) {
		return apperrors.NewInvalidOperationError("Credit limit exceeded.")
	}
	if newDebt.IsNegative() {
		newDebt = Money{amount: decimal.Zero, currency: delta.currency}
	}
	a.CurrentDebt = newDebt
	return nil
}

// Close moves an active, zero-balance account to Closed.
func (a *Account) Close() error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	if !a.Balance.IsZero() {
		return apperrors.NewInvalidOperationError("Account must have zero balance before closing.")
	}
	now := time.Now().UTC()
	a.Status = AccountStatusClosed
	a.ClosedAt = &now
	return nil
}
