package domain

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate is a foreign→home multiplier: one unit of CurrencyCode is worth
// Rate units of the home currency. Rates exist only for foreign currencies;
// the home currency carries an implicit rate of 1 and is never stored.
type ExchangeRate struct {
	CurrencyCode string          `json:"currencyCode"` // Foreign catalog code
	Rate         decimal.Decimal `json:"rate"`         // Strictly positive
	AuditFields
}
