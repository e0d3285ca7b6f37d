package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pesobank/pesobank/internal/apperrors"
	"github.com/pesobank/pesobank/internal/core/domain"
)

// CurrencyService answers catalog queries. The catalog is fixed at compile
// time, so the service is stateless and never fails for reasons other than
// an unknown code.
type CurrencyService struct{}

func NewCurrencyService() *CurrencyService {
	return &CurrencyService{}
}

// GetCurrencyByCode retrieves a catalog currency by its code. The code is
// trimmed and uppercased before lookup.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	for _, c := range domain.Currencies {
		if c.CurrencyCode == code {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: no currency with code %q", apperrors.ErrUnknownCurrency, currencyCode)
}

// ListCurrencies retrieves all catalog currencies in menu order.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies := make([]domain.Currency, len(domain.Currencies))
	copy(currencies, domain.Currencies)
	return currencies, nil
}

// HomeCurrency returns the currency every balance is denominated in.
func (s *CurrencyService) HomeCurrency() domain.Currency {
	for _, c := range domain.Currencies {
		if c.CurrencyCode == domain.HomeCurrencyCode {
			return c
		}
	}
	// The catalog always contains the home currency.
	panic("currency catalog is missing the home currency")
}
