package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pesobank/pesobank/internal/apperrors"
	"github.com/pesobank/pesobank/internal/core/domain"
	portsrepo "github.com/pesobank/pesobank/internal/core/ports/repositories"
	portssvc "github.com/pesobank/pesobank/internal/core/ports/services"
	"github.com/pesobank/pesobank/internal/dto"
	"github.com/pesobank/pesobank/internal/platform/logging"
	"github.com/shopspring/decimal"
)

// ExchangeRateService provides business logic for the rate table and for
// currency conversion. Rates are foreign→home multipliers:
// home_amount = foreign_amount × rate(foreign_code).
type ExchangeRateService struct {
	rateRepo        portsrepo.ExchangeRateRepositoryFacade
	currencyService portssvc.CurrencySvcFacade
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyService portssvc.CurrencySvcFacade) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
	}
}

// InitializeRates seeds every foreign catalog currency at rate 1.
func (s *ExchangeRateService) InitializeRates(ctx context.Context) error {
	currencies, err := s.currencyService.ListCurrencies(ctx)
	if err != nil {
		return fmt.Errorf("failed to list currencies for rate init: %w", err)
	}

	now := time.Now()
	for _, c := range currencies {
		if domain.IsHome(c.CurrencyCode) {
			continue
		}
		rate := domain.ExchangeRate{
			CurrencyCode: c.CurrencyCode,
			Rate:         decimal.NewFromInt(1),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
			return fmt.Errorf("failed to seed rate for %s: %w", c.CurrencyCode, err)
		}
	}
	return nil
}

// GetRate returns the foreign→home multiplier for a catalog currency.
// The home currency always yields 1 and has no stored entry.
func (s *ExchangeRateService) GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error) {
	currency, err := s.currencyService.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if domain.IsHome(currency.CurrencyCode) {
		return decimal.NewFromInt(1), nil
	}

	rate, err := s.rateRepo.FindExchangeRateByCode(ctx, currency.CurrencyCode)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate.Rate, nil
}

// RecordExchangeRate validates and stores a new rate for a foreign currency.
// All inputs are checked before the table is written.
func (s *ExchangeRateService) RecordExchangeRate(ctx context.Context, req dto.RecordExchangeRateRequest) (*domain.ExchangeRate, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	currency, err := s.currencyService.GetCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		return nil, err
	}
	if domain.IsHome(currency.CurrencyCode) {
		return nil, fmt.Errorf("%w: the home currency %s has a fixed rate of 1", apperrors.ErrUnknownCurrency, currency.CurrencyCode)
	}
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrInvalidRate)
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		CurrencyCode: currency.CurrencyCode,
		Rate:         req.Rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		logger.Error("Failed to save exchange rate in repository",
			slog.String("currency_code", rate.CurrencyCode),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record exchange rate in service: %w", err)
	}

	return &rate, nil
}

// Convert converts an amount between two catalog currencies by pivoting
// through the home currency. Both legs multiply by the stored rate: the
// home→foreign leg applies the same multiplier as foreign→home and never
// divides.
func (s *ExchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	fromRate, err := s.GetRate(ctx, fromCode)
	if err != nil {
		return decimal.Decimal{}, err
	}
	toRate, err := s.GetRate(ctx, toCode)
	if err != nil {
		return decimal.Decimal{}, err
	}

	homeAmount := amount.Mul(fromRate)
	return homeAmount.Mul(toRate), nil
}
