package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pesobank/pesobank/internal/apperrors"
	"github.com/pesobank/pesobank/internal/core/domain"
	portsrepo "github.com/pesobank/pesobank/internal/core/ports/repositories"
	portssvc "github.com/pesobank/pesobank/internal/core/ports/services"
	"github.com/pesobank/pesobank/internal/dto"
	"github.com/pesobank/pesobank/internal/platform/logging"
	"github.com/shopspring/decimal"
)

// AccountService provides business logic for the account registry and for
// balance mutations. Balances are always in the home currency; deposits and
// withdrawals in foreign currencies are converted on the way in.
type AccountService struct {
	accountRepo     portsrepo.AccountRepositoryFacade
	currencyService portssvc.CurrencySvcFacade
	rateService     portssvc.ExchangeRateReaderSvc
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, currencyService portssvc.CurrencySvcFacade, rateService portssvc.ExchangeRateReaderSvc) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		currencyService: currencyService,
		rateService:     rateService,
	}
}

// RegisterAccount creates a new account with a zero balance in the home currency.
func (s *AccountService) RegisterAccount(ctx context.Context, req dto.RegisterAccountRequest) (*domain.Account, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		Name:         name,
		CurrencyCode: domain.HomeCurrencyCode,
		Balance:      decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		// ErrDuplicate passes through for the caller to match on.
		return nil, err
	}

	logger.Info("Account registered", slog.String("account_id", account.AccountID), slog.String("name", account.Name))
	return &account, nil
}

// GetAccountByName retrieves a specific account by its owner name.
func (s *AccountService) GetAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Deposit converts the amount to the home currency and adds it to the balance.
// All inputs are validated before the registry is written.
func (s *AccountService) Deposit(ctx context.Context, req dto.DepositRequest) (*domain.Account, error) {
	homeDelta, account, err := s.prepareAmount(ctx, req.AccountName, req.CurrencyCode, req.Amount)
	if err != nil {
		return nil, err
	}

	return s.applyBalance(ctx, account, account.Balance.Add(homeDelta))
}

// Withdraw converts the amount to the home currency and subtracts it from the
// balance. If the balance would go negative the registry is left untouched.
func (s *AccountService) Withdraw(ctx context.Context, req dto.WithdrawRequest) (*domain.Account, error) {
	homeDelta, account, err := s.prepareAmount(ctx, req.AccountName, req.CurrencyCode, req.Amount)
	if err != nil {
		return nil, err
	}

	newBalance := account.Balance.Sub(homeDelta)
	if newBalance.IsNegative() {
		return nil, fmt.Errorf("%w: withdraw amount exceeds the current balance", apperrors.ErrInsufficientFunds)
	}

	return s.applyBalance(ctx, account, newBalance)
}

// prepareAmount validates the currency and amount, resolves the account, and
// converts the amount into a home-currency delta.
func (s *AccountService) prepareAmount(ctx context.Context, accountName, currencyCode string, amount decimal.Decimal) (decimal.Decimal, *domain.Account, error) {
	currency, err := s.currencyService.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return decimal.Decimal{}, nil, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidAmount)
	}

	account, err := s.accountRepo.FindAccountByName(ctx, accountName)
	if err != nil {
		return decimal.Decimal{}, nil, err
	}

	homeDelta, err := s.rateService.Convert(ctx, amount, currency.CurrencyCode, domain.HomeCurrencyCode)
	if err != nil {
		return decimal.Decimal{}, nil, err
	}
	return homeDelta, account, nil
}

func (s *AccountService) applyBalance(ctx context.Context, account *domain.Account, balance decimal.Decimal) (*domain.Account, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	now := time.Now()
	if err := s.accountRepo.UpdateAccountBalance(ctx, account.Name, balance, now); err != nil {
		logger.Error("Failed to update account balance in repository",
			slog.String("account_id", account.AccountID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update balance in service: %w", err)
	}

	account.Balance = balance
	account.LastUpdatedAt = now
	return account, nil
}
