package repositories

import (
	"context"
	"time"

	"github.com/pesobank/pesobank/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByName retrieves a specific account by its owner name (exact match).
	FindAccountByName(ctx context.Context, name string) (*domain.Account, error)

	// ListAccounts retrieves all accounts in insertion order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. Names are unique across the registry.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountBalance replaces the balance of an existing account.
	UpdateAccountBalance(ctx context.Context, name string, balance decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
