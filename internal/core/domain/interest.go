package domain

import (
	"github.com/shopspring/decimal"
)

// InterestEntry is one row of a projection schedule.
type InterestEntry struct {
	Day      int             `json:"day"`
	Interest decimal.Decimal `json:"interest"`
	Balance  decimal.Decimal `json:"balance"`
}

// InterestSchedule is a per-day projection of interest added to a balance.
//
// DailyInterest is computed once from the starting balance and re-added each
// day, so the schedule grows linearly rather than compounding.
type InterestSchedule struct {
	StartingBalance   decimal.Decimal `json:"startingBalance"`
	CurrencyCode      string          `json:"currencyCode"`
	AnnualRatePercent int64           `json:"annualRatePercent"` // Truncated to a whole percent for display
	DailyInterest     decimal.Decimal `json:"dailyInterest"`
	Entries           []InterestEntry `json:"entries"`
}
