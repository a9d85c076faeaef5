package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/finances_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

const moneyScale = 2

// Money is an immutable amount in a single currency. The amount is always
// rounded to two decimals (half away from zero) and the currency is a
// 3-letter upper-case code.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney validates the currency and rounds the amount.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	code, err := normalizeCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: amount.Round(moneyScale), currency: code}, nil
}

// MustMoney is NewMoney for values known to be valid (constants, tests).
func MustMoney(amount string, currency string) Money {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	m, err := NewMoney(d, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns 0.00 in the given currency.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

func normalizeCurrency(currency string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		return "", apperrors.NewValidationError("Currency is required.")
	}
	if len(code) != 3 {
		return "", apperrors.NewValidationError("Currency must be a 3-letter ISO code (e.g., BRL).")
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", apperrors.NewValidationError("Currency must be a 3-letter ISO code (e.g., BRL).")
		}
	}
	return code, nil
}

func (m Money) Amount() decimal.Decimal { return m.amount }

func (m Money) Currency() string { return m.currency }

func (m Money) IsZero() bool { return m.amount.IsZero() }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

func (m Money) sameCurrency(other Money) bool {
	return strings.EqualFold(m.currency, other.currency)
}

// Add returns m + other. Both must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if !m.sameCurrency(other) {
		return Money{}, currencyMismatch(m, other)
	}
	return Money{amount: m.amount.Add(other.amount).Round(moneyScale), currency: m.currency}, nil
}

// Subtract returns m - other. Both must share a currency.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.sameCurrency(other) {
		return Money{}, currencyMismatch(m, other)
	}
	return Money{amount: m.amount.Sub(other.amount).Round(moneyScale), currency: m.currency}, nil
}

// Negate flips the sign of the amount.
func (m Money) Negate() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// Abs drops the sign of the amount.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs(), currency: m.currency}
}

// Equal compares amount and currency.
func (m Money) Equal(other Money) bool {
	return m.sameCurrency(other) && m.amount.Equal(other.amount)
}

// String renders e.g. "100.00 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(moneyScale), m.currency)
}

func currencyMismatch(a, b Money) error {
	return apperrors.NewInvalidOperationError(fmt.Sprintf("Currency mismatch: %s vs %s", a.currency, b.currency))
}

type moneyJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	}{Amount: m.amount.StringFixed(moneyScale), Currency: m.currency})
}

// UnmarshalJSON goes through NewMoney so decoded values hold the same invariants.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewMoney(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
