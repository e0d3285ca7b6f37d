package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnknownCurrency indicates a currency code outside the supported catalog,
// or the home currency where only a foreign one is allowed.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrInvalidRate indicates an exchange rate that is not a positive finite number.
var ErrInvalidRate = errors.New("invalid exchange rate")

// ErrInvalidAmount indicates a transaction amount that is not a positive finite number.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInsufficientFunds indicates a withdrawal larger than the current balance.
// The balance is guaranteed unchanged when this is returned.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidDayCount indicates a projection horizon that is not a non-negative
// integer within the unsigned 32-bit range.
var ErrInvalidDayCount = errors.New("invalid day count")

// ErrUnknownTransaction indicates a menu selection outside the transaction table.
var ErrUnknownTransaction = errors.New("unknown transaction")
