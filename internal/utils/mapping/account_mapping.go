package mapping

import (
	"fmt"

	"github.com/SscSPs/finances_app/internal/core/domain"
	"github.com/SscSPs/finances_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:                  d.ID,
		UserID:              d.UserID,
		Name:                d.Name,
		BalanceAmount:       d.Balance.Amount(),
		BalanceCurrency:     d.Balance.Currency(),
		CreditLimitAmount:   d.CreditLimit.Amount(),
		CreditLimitCurrency: d.CreditLimit.Currency(),
		CurrentDebtAmount:   d.CurrentDebt.Amount(),
		CurrentDebtCurrency: d.CurrentDebt.Currency(),
		Type:                string(d.Type),
		Status:              string(d.Status),
		PaymentDate:         d.PaymentDate,
		DueDate:             d.DueDate,
		CreatedAt:           d.CreatedAt,
		ClosedAt:            d.ClosedAt,
	}
}

// ToDomainAccount converts a model Account to a domain Account.
// It fails only when a stored currency or enum value is corrupt.
func ToDomainAccount(m models.Account) (domain.Account, error) {
	balance, err := domain.NewMoney(m.BalanceAmount, m.BalanceCurrency)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s balance: %w", m.ID, err)
	}
	creditLimit, err := domain.NewMoney(m.CreditLimitAmount, m.CreditLimitCurrency)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s credit limit: %w", m.ID, err)
	}
	currentDebt, err := domain.NewMoney(m.CurrentDebtAmount, m.CurrentDebtCurrency)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s current debt: %w", m.ID, err)
	}
	accountType, err := domain.ParseAccountType(m.Type)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s type %q: %w", m.ID, m.Type, err)
	}
	status, err := domain.ParseAccountStatus(m.Status)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s status %q: %w", m.ID, m.Status, err)
	}

	return *domain.ReconstructAccount(
		m.ID,
		m.UserID,
		m.Name,
		balance,
		creditLimit,
		currentDebt,
		status,
		accountType,
		m.PaymentDate,
		m.DueDate,
		m.CreatedAt,
		m.ClosedAt,
	), nil
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) ([]domain.Account, error) {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		d, err := ToDomainAccount(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
