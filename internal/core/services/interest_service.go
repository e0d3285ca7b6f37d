package services

import (
	"context"

	"github.com/pesobank/pesobank/internal/core/domain"
	portssvc "github.com/pesobank/pesobank/internal/core/ports/services"
	"github.com/pesobank/pesobank/internal/dto"
	"github.com/shopspring/decimal"
)

const daysPerYear = 365

// InterestService projects daily interest on an account balance.
//
// The daily amount is computed once from the starting balance and re-added
// each day, so the schedule grows linearly: it is simple interest paid daily,
// not compound interest.
type InterestService struct {
	accountService portssvc.AccountReaderSvc
	annualRate     decimal.Decimal
}

// NewInterestService creates a new InterestService with a fixed annual rate.
func NewInterestService(accountService portssvc.AccountReaderSvc, annualRate decimal.Decimal) *InterestService {
	return &InterestService{
		accountService: accountService,
		annualRate:     annualRate,
	}
}

// AnnualRatePercent returns the annual rate truncated to a whole percent,
// e.g. 0.05 yields 5.
func (s *InterestService) AnnualRatePercent() int64 {
	return s.annualRate.Mul(decimal.NewFromInt(100)).IntPart()
}

// ProjectInterest produces the per-day schedule for the requested horizon.
// Day counts fit in uint32, so a zero-day projection yields an empty schedule
// rather than an error.
func (s *InterestService) ProjectInterest(ctx context.Context, req dto.InterestProjectionRequest) (*domain.InterestSchedule, error) {
	account, err := s.accountService.GetAccountByName(ctx, req.AccountName)
	if err != nil {
		return nil, err
	}

	// Rounded half away from zero to whole cents.
	daily := account.Balance.
		Mul(s.annualRate).
		Div(decimal.NewFromInt(daysPerYear)).
		Round(2)

	schedule := &domain.InterestSchedule{
		StartingBalance:   account.Balance,
		CurrencyCode:      account.CurrencyCode,
		AnnualRatePercent: s.AnnualRatePercent(),
		DailyInterest:     daily,
		Entries:           make([]domain.InterestEntry, 0, req.Days),
	}

	balance := account.Balance
	for day := uint32(1); day <= req.Days; day++ {
		balance = balance.Add(daily)
		schedule.Entries = append(schedule.Entries, domain.InterestEntry{
			Day:      int(day),
			Interest: daily,
			Balance:  balance,
		})
	}

	return schedule, nil
}
