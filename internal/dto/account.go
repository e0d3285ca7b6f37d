package dto

import (
	"time"

	"github.com/pesobank/pesobank/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterAccountRequest defines the structure for creating a new account.
type RegisterAccountRequest struct {
	Name string `json:"name" validate:"required"`
}

// DepositRequest defines the structure for depositing into an account.
// The amount may be in any catalog currency; it is converted to the home
// currency before it touches the balance.
type DepositRequest struct {
	AccountName  string          `json:"accountName" validate:"required"`
	CurrencyCode string          `json:"currencyCode" validate:"required,len=3,uppercase"`
	Amount       decimal.Decimal `json:"amount"` // Positivity is a service-level check
}

// WithdrawRequest defines the structure for withdrawing from an account.
type WithdrawRequest struct {
	AccountName  string          `json:"accountName" validate:"required"`
	CurrencyCode string          `json:"currencyCode" validate:"required,len=3,uppercase"`
	Amount       decimal.Decimal `json:"amount"`
}

// AccountResponse defines the structure for responses containing account details.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	CurrencyCode  string          `json:"currencyCode"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     account.AccountID,
		Name:          account.Name,
		CurrencyCode:  account.CurrencyCode,
		Balance:       account.Balance,
		CreatedAt:     account.CreatedAt,
		LastUpdatedAt: account.LastUpdatedAt,
	}
}
