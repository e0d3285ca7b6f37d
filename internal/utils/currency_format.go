package utils

import (
	"github.com/shopspring/decimal"
)

// FormatAmount formats a monetary amount with two decimal places.
// Example: amount 100 returns "100.00", amount 1.369 returns "1.37"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
