package dto

import (
	"github.com/shopspring/decimal"
)

// RecordExchangeRateRequest defines the structure for recording a new
// foreign→home exchange rate.
type RecordExchangeRateRequest struct {
	CurrencyCode string          `json:"currencyCode" validate:"required,len=3,uppercase"`
	Rate         decimal.Decimal `json:"rate"` // Must be > 0; validated in the service
}
