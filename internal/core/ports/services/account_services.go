package services

import (
	"context"

	"github.com/pesobank/pesobank/internal/core/domain"
	"github.com/pesobank/pesobank/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByName retrieves a specific account by its owner name.
	GetAccountByName(ctx context.Context, name string) (*domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// RegisterAccount creates a new account with a zero home-currency balance.
	RegisterAccount(ctx context.Context, req dto.RegisterAccountRequest) (*domain.Account, error)

	// Deposit converts the amount to the home currency and adds it to the balance.
	Deposit(ctx context.Context, req dto.DepositRequest) (*domain.Account, error)

	// Withdraw converts the amount to the home currency and subtracts it from
	// the balance. The balance is left unchanged if it would go negative.
	Withdraw(ctx context.Context, req dto.WithdrawRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
