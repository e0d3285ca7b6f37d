package services

import (
	portsrepo "github.com/pesobank/pesobank/internal/core/ports/repositories"
	portssvc "github.com/pesobank/pesobank/internal/core/ports/services"
	"github.com/pesobank/pesobank/internal/platform/config"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies. The currency service comes first since the rate and account
// services depend on it.
func NewServiceContainer(cfg *config.Config, accountRepo portsrepo.AccountRepositoryFacade, rateRepo portsrepo.ExchangeRateRepositoryFacade) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService()
	container.ExchangeRate = NewExchangeRateService(rateRepo, container.Currency)
	container.Account = NewAccountService(accountRepo, container.Currency, container.ExchangeRate)
	container.Interest = NewInterestService(container.Account, cfg.AnnualInterestRate)

	return container
}

// Interface implementation checks at compile time
var (
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.AccountSvcFacade      = (*AccountService)(nil)
	_ portssvc.InterestSvcFacade     = (*InterestService)(nil)
)
