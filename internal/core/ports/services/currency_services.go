package services

import (
	"context"

	"github.com/pesobank/pesobank/internal/core/domain"
	"github.com/pesobank/pesobank/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all catalog currencies in menu order.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// HomeCurrency returns the currency every balance is denominated in.
	HomeCurrency() domain.Currency
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetRate returns the foreign→home multiplier for a catalog currency.
	// The home currency always yields 1.
	GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error)

	// Convert converts an amount between two catalog currencies by pivoting
	// through the home currency.
	Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// RecordExchangeRate stores a new foreign→home rate.
	RecordExchangeRate(ctx context.Context, req dto.RecordExchangeRateRequest) (*domain.ExchangeRate, error)

	// InitializeRates seeds every foreign currency at rate 1.
	InitializeRates(ctx context.Context) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
