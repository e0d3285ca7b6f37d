package domain

import "fmt"

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string `json:"name"`         // e.g., "United States Dollar"
}

// Title renders the menu form of the currency, e.g. "United States Dollar (USD)".
func (c Currency) Title() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.CurrencyCode)
}

// HomeCurrencyCode is the pivot for all conversions and the unit of every
// stored balance. Every other catalog currency is foreign.
const HomeCurrencyCode = "PHP"

// Currencies is the closed, ordered catalog of supported currencies.
// The order is load-bearing: menus present currencies 1-based in this order.
var Currencies = []Currency{
	{CurrencyCode: "PHP", Name: "Philippine Peso"},
	{CurrencyCode: "USD", Name: "United States Dollar"},
	{CurrencyCode: "JPY", Name: "Japanese Yen"},
	{CurrencyCode: "GBP", Name: "British Pound Sterling"},
	{CurrencyCode: "EUR", Name: "Euro"},
	{CurrencyCode: "CNY", Name: "Chinese Yuan Renminbi"},
}

// IsHome reports whether code is the home currency.
func IsHome(code string) bool {
	return code == HomeCurrencyCode
}
