package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pesobank/pesobank/internal/apperrors"
	"github.com/pesobank/pesobank/internal/core/domain"
)

// ExchangeRateRepository implements the exchange rate repository ports with an
// in-memory table keyed by foreign currency code.
type ExchangeRateRepository struct {
	mu    sync.RWMutex
	rates map[string]domain.ExchangeRate
}

// NewExchangeRateRepository creates an empty in-memory rate table.
func NewExchangeRateRepository() *ExchangeRateRepository {
	return &ExchangeRateRepository{
		rates: make(map[string]domain.ExchangeRate),
	}
}

// SaveExchangeRate inserts or replaces the rate for a currency. Entries are
// never deleted during a session.
func (r *ExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.rates[rate.CurrencyCode]; exists {
		rate.CreatedAt = existing.CreatedAt
	}
	r.rates[rate.CurrencyCode] = rate
	return nil
}

// FindExchangeRateByCode retrieves the stored rate for a currency.
func (r *ExchangeRateRepository) FindExchangeRateByCode(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rate, exists := r.rates[currencyCode]
	if !exists {
		return nil, fmt.Errorf("%w: no exchange rate for currency %q", apperrors.ErrNotFound, currencyCode)
	}
	return &rate, nil
}
