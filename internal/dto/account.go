package dto

import (
	"time"

	"github.com/SscSPs/finances_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyRequest is an amount in a currency as sent by clients.
type MoneyRequest struct {
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
	Currency string          `json:"currency" example:"USD"`
}

// MoneyResponse is an amount rendered with two decimals.
type MoneyResponse struct {
	Amount   string `json:"amount" example:"100.00"`
	Currency string `json:"currency" example:"USD"`
}

// CreateAccountRequest defines the data needed to open an account.
type CreateAccountRequest struct {
	UserID  *string      `json:"userId" binding:"omitempty,uuid"`
	Name    string       `json:"name" binding:"required"`
	Balance MoneyRequest `json:"balance"`
	Type    string       `json:"type" binding:"required" example:"CHECKING"`
}

// RenameAccountRequest defines the new name of an account.
type RenameAccountRequest struct {
	Name string `json:"name" binding:"required"`
}

// ApplyDeltaRequest moves money in or out of an account.
// Operation defaults to MONEY_TRANSACTION when empty.
type ApplyDeltaRequest struct {
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"-25.00"`
	Currency  string          `json:"currency" example:"USD"`
	Operation string          `json:"operation" example:"PAYMENT"`
}

// SchedulePaymentRequest sets the payment and due dates of an account.
type SchedulePaymentRequest struct {
	PaymentDate *time.Time `json:"paymentDate"`
	DueDate     *time.Time `json:"dueDate"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Type string `form:"type"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID          string        `json:"id"`
	UserID      *string       `json:"userId,omitempty"`
	Name        string        `json:"name"`
	Balance     MoneyResponse `json:"balance"`
	CreditLimit MoneyResponse `json:"creditLimit"`
	CurrentDebt MoneyResponse `json:"currentDebt"`
	Status      string        `json:"status"`
	Type        string        `json:"type"`
	PaymentDate *time.Time    `json:"paymentDate,omitempty"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	ClosedAt    *time.Time    `json:"closedAt,omitempty"`
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToMoneyResponse converts a domain.Money to MoneyResponse.
func ToMoneyResponse(m domain.Money) MoneyResponse {
	return MoneyResponse{
		Amount:   m.Amount().StringFixed(2),
		Currency: m.Currency(),
	}
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc domain.Account) AccountResponse {
	var userID *string
	if acc.UserID != nil {
		s := acc.UserID.String()
		userID = &s
	}
	return AccountResponse{
		ID:          acc.ID.String(),
		UserID:      userID,
		Name:        acc.Name,
		Balance:     ToMoneyResponse(acc.Balance),
		CreditLimit: ToMoneyResponse(acc.CreditLimit),
		CurrentDebt: ToMoneyResponse(acc.CurrentDebt),
		Status:      string(acc.Status),
		Type:        string(acc.Type),
		PaymentDate: acc.PaymentDate,
		DueDate:     acc.DueDate,
		CreatedAt:   acc.CreatedAt,
		ClosedAt:    acc.ClosedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to ListAccountsResponse
func ToListAccountResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(acc)
	}
	return ListAccountsResponse{Accounts: res}
}
