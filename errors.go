package monetary

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when a result exceeds the maximum 128-bit amount.
	ErrOverflow = errors.New("amount overflow")
	// ErrUnderflow is returned when a result would be negative.
	ErrUnderflow = errors.New("amount underflow")
	// ErrDivisionByZero is returned when dividing an amount by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrCurrencyMismatch is returned when operands are denominated in
	// different currencies or carry different decimal counts.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrZeroRate is returned when constructing a rate equal to zero.
	ErrZeroRate = errors.New("zero rate")
	// ErrNegativeRate is returned when constructing a rate below zero.
	ErrNegativeRate = errors.New("negative rate")
	// ErrRateRange is returned when a rate, or a rescaled or composed rate,
	// falls outside of the range [1e-18, 1e18] or cannot be represented
	// without rounding.
	ErrRateRange = errors.New("rate out of range")
	// ErrPrecisionMismatch is returned when an exchange rate is built
	// between currencies in different precision states.
	ErrPrecisionMismatch = errors.New("precision mismatch")
	// ErrDecimalsMismatch is returned when an unverified decimal count does
	// not match the authoritative one.
	ErrDecimalsMismatch = errors.New("decimals mismatch")
	// ErrNoDecimals is returned when an operation needs decimal places of an
	// imprecise currency.
	ErrNoDecimals = errors.New("no decimals")
	// ErrAlreadyInitialized is returned when a lazy denomination is
	// initialized a second time with a different value.
	ErrAlreadyInitialized = errors.New("denomination already initialized")
	// ErrTooManyDenoms is returned when funds contain more than one entry.
	ErrTooManyDenoms = errors.New("too many denoms")

	errInvalidDenom = errors.New("invalid denomination")
	errInvalidCoin  = errors.New("invalid coin")
	errSelfRate     = errors.New("exchange rate of a currency to itself must be 1")
	errInexact      = errors.New("value has more fractional digits than decimal places")
)

// DenomMismatchError is returned when a wire coin is validated against a
// currency with a different denomination.
type DenomMismatchError struct {
	Actual   string // denomination of the wire coin
	Expected string // denomination of the currency
}

func (e *DenomMismatchError) Error() string {
	return fmt.Sprintf("denomination mismatch: %s != %s", e.Actual, e.Expected)
}

// DenomNotFoundError is returned by [MustPay] and [MayPay] when funds
// do not contain the requested denomination.
type DenomNotFoundError struct {
	Denom string
}

func (e *DenomNotFoundError) Error() string {
	return fmt.Sprintf("denom not found: %s", e.Denom)
}
