package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pesobank/pesobank/internal/apperrors"
	"github.com/pesobank/pesobank/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository implements the account repository ports with an
// insertion-ordered in-memory registry. State lives for one session; there is
// no persistence across runs.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []domain.Account // insertion order
	index    map[string]int   // name → position in accounts
}

// NewAccountRepository creates an empty in-memory account registry.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		index: make(map[string]int),
	}
}

// SaveAccount appends a new account to the registry. Names are the primary
// key; inserting an existing name fails without modifying the registry.
func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[account.Name]; exists {
		return fmt.Errorf("%w: account with name %q already exists", apperrors.ErrDuplicate, account.Name)
	}

	r.index[account.Name] = len(r.accounts)
	r.accounts = append(r.accounts, account)
	return nil
}

// FindAccountByName retrieves an account by exact name match.
func (r *AccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, exists := r.index[name]
	if !exists {
		return nil, fmt.Errorf("%w: no account with name %q", apperrors.ErrNotFound, name)
	}

	account := r.accounts[idx]
	return &account, nil
}

// ListAccounts retrieves all accounts in insertion order.
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.Account, len(r.accounts))
	copy(accounts, r.accounts)
	return accounts, nil
}

// UpdateAccountBalance replaces the balance of an existing account.
func (r *AccountRepository) UpdateAccountBalance(ctx context.Context, name string, balance decimal.Decimal, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, exists := r.index[name]
	if !exists {
		return fmt.Errorf("%w: no account with name %q", apperrors.ErrNotFound, name)
	}

	r.accounts[idx].Balance = balance
	r.accounts[idx].LastUpdatedAt = now
	return nil
}
