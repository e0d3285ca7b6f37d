package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a bank account within the core domain.
// This is the primary representation used by services.
//
// The balance is always denominated in the home currency; foreign currencies
// enter only via conversion at deposit/withdraw time. The balance never goes
// below zero.
type Account struct {
	AccountID    string          `json:"accountID"`    // Primary Key (UUID)
	Name         string          `json:"name"`         // Owner name, unique across the registry
	CurrencyCode string          `json:"currencyCode"` // Always the home currency
	Balance      decimal.Decimal `json:"balance"`
	AuditFields
}
