package monetary

import (
	"fmt"

	"github.com/govalues/decimal"
)

// ExchangeRate represents a unidirectional exchange rate between two
// precision-tagged currencies.
// It binds a [Rate] operating on minor units to the currencies it was
// built for, so that coins can be converted with a run-time check of
// their denominations.
// The zero value is not a valid exchange rate.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate[F, T Precision] struct {
	from F          // currency being exchanged
	to   T          // currency being obtained in exchange for the from currency
	rate Rate[F, T] // how many minor units of to are obtained for one minor unit of from
}

// newExchRate returns an exchange rate where d is the human-scaled ratio.
// If both currencies carry decimal places, d is rescaled to minor units.
func newExchRate[F, T Precision](from F, to T, d decimal.Decimal) (ExchangeRate[F, T], error) {
	var (
		r   Rate[F, T]
		err error
	)
	fdec, fok := from.decimals()
	tdec, tok := to.decimals()
	if fok && tok {
		r, err = rescaledRate[F, T](d, fdec, tdec)
	} else {
		r, err = NewRate[F, T](d)
	}
	if err != nil {
		return ExchangeRate[F, T]{}, fmt.Errorf("%v/%v: %w", from.Denom(), to.Denom(), err)
	}
	return NewExchRateFromRate(from, to, r)
}

// NewExchRateFromRate returns an exchange rate for a rate that already
// operates on minor units.
// Both currencies must be in the same precision state, so a precise coin
// can only be obtained in exchange for a precise coin.
// Use [NewPreciseImpreciseExchRate] and similar constructors to downgrade
// one side explicitly.
//
// NewExchRateFromRate returns an error if:
//   - the currencies are in different precision states;
//   - the currencies have the same denomination and decimal information,
//     but the rate is not equal to 1.
func NewExchRateFromRate[F, T Precision](from F, to T, r Rate[F, T]) (ExchangeRate[F, T], error) {
	if !sameKind(from, to) {
		return ExchangeRate[F, T]{}, fmt.Errorf("%v/%v: %w", from, to, ErrPrecisionMismatch)
	}
	fdec, fok := from.decimals()
	tdec, tok := to.decimals()
	if from.Denom() == to.Denom() && fok == tok && fdec == tdec && !r.IsOne() {
		return ExchangeRate[F, T]{}, fmt.Errorf("%v/%v %v: %w", from.Denom(), to.Denom(), r, errSelfRate)
	}
	return ExchangeRate[F, T]{from: from, to: to, rate: r}, nil
}

// NewPreciseExchRate returns an exchange rate between precise currencies,
// where d is the number of whole units of B per whole unit of A.
// The rate is rescaled to minor units, see [NewPreciseRate].
//
// NewPreciseExchRate returns an error if:
//   - the rate is not positive;
//   - the rescaled rate is outside of the range [1e-18, 1e18];
//   - the currencies are the same, but the rate is not equal to 1.
func NewPreciseExchRate[A, B Currency](from Precise[A], to Precise[B], d decimal.Decimal) (ExchangeRate[Precise[A], Precise[B]], error) {
	return newExchRate(from, to, d)
}

// NewUnverifiedExchRate is like [NewPreciseExchRate], but for currencies
// with unverified decimal places.
// The result can only convert coins with unverified decimal places.
func NewUnverifiedExchRate[A, B Currency](from Unverified[A], to Unverified[B], d decimal.Decimal) (ExchangeRate[Unverified[A], Unverified[B]], error) {
	return newExchRate(from, to, d)
}

// NewImpreciseExchRate returns an exchange rate between currencies
// without decimal information.
// The rate is not rescaled: d is the number of minor units of B per
// minor unit of A.
func NewImpreciseExchRate[A, B Currency](from Imprecise[A], to Imprecise[B], d decimal.Decimal) (ExchangeRate[Imprecise[A], Imprecise[B]], error) {
	return newExchRate(from, to, d)
}

// NewPreciseImpreciseExchRate returns an exchange rate from a precise
// currency to an imprecise one.
// The from currency is downgraded to imprecise, so the result converts
// imprecise coins only, and d is applied to minor units without rescaling.
func NewPreciseImpreciseExchRate[A, B Currency](from Precise[A], to Imprecise[B], d decimal.Decimal) (ExchangeRate[Imprecise[A], Imprecise[B]], error) {
	return newExchRate(from.IntoImprecise(), to, d)
}

// NewImprecisePreciseExchRate is like [NewPreciseImpreciseExchRate],
// but downgrades the to currency.
func NewImprecisePreciseExchRate[A, B Currency](from Imprecise[A], to Precise[B], d decimal.Decimal) (ExchangeRate[Imprecise[A], Imprecise[B]], error) {
	return newExchRate(from, to.IntoImprecise(), d)
}

// NewPreciseUnverifiedExchRate returns an exchange rate from a precise
// currency to a currency with unverified decimal places.
// The from currency is downgraded to unverified, which keeps its decimal
// places, so d is rescaled as in [NewPreciseExchRate].
func NewPreciseUnverifiedExchRate[A, B Currency](from Precise[A], to Unverified[B], d decimal.Decimal) (ExchangeRate[Unverified[A], Unverified[B]], error) {
	return newExchRate(from.IntoUnverified(), to, d)
}

// NewUnverifiedPreciseExchRate is like [NewPreciseUnverifiedExchRate],
// but downgrades the to currency.
func NewUnverifiedPreciseExchRate[A, B Currency](from Unverified[A], to Precise[B], d decimal.Decimal) (ExchangeRate[Unverified[A], Unverified[B]], error) {
	return newExchRate(from, to.IntoUnverified(), d)
}

// MustNewPreciseExchRate is like [NewPreciseExchRate] but panics if the
// exchange rate cannot be constructed.
// It simplifies safe initialization of global variables holding rates.
func MustNewPreciseExchRate[A, B Currency](from Precise[A], to Precise[B], d decimal.Decimal) ExchangeRate[Precise[A], Precise[B]] {
	r, err := NewPreciseExchRate(from, to, d)
	if err != nil {
		panic(fmt.Sprintf("NewPreciseExchRate(%v, %v, %v) failed: %v", from, to, d, err))
	}
	return r
}

// From returns the currency being exchanged.
func (r ExchangeRate[F, T]) From() F {
	return r.from
}

// To returns the currency being obtained.
func (r ExchangeRate[F, T]) To() T {
	return r.to
}

// Rate returns the rate on minor units.
func (r ExchangeRate[F, T]) Rate() Rate[F, T] {
	return r.rate
}

// IsPrecise returns true if the decimal places of both currencies
// are verified.
func (r ExchangeRate[F, T]) IsPrecise() bool {
	return r.from.verified() && r.to.verified()
}

// IsOne returns:
//
//	true  if r = 1
//	false otherwise
func (r ExchangeRate[F, T]) IsOne() bool {
	return r.rate.IsOne()
}

// WithinOne returns:
//
//	true  if 0 < r < 1
//	false otherwise
func (r ExchangeRate[F, T]) WithinOne() bool {
	return r.rate.WithinOne()
}

// Inv returns the inverse of the exchange rate.
// The inverse is exact, see [Rate.Inv].
// The inverse of the zero value is the zero value.
func (r ExchangeRate[F, T]) Inv() ExchangeRate[T, F] {
	return ExchangeRate[T, F]{from: r.to, to: r.from, rate: r.rate.Inv()}
}

// SameCurr returns true if exchange rates are denominated in the same
// currencies with the same decimal information.
func (r ExchangeRate[F, T]) SameCurr(q ExchangeRate[F, T]) bool {
	return sameTag(r.from, q.from) && sameTag(r.to, q.to)
}

// ApplyFloor converts coin c to the to currency, rounding towards zero.
// See also methods [ExchangeRate.ApplyCeil] and [ExchangeRate.ApplyInvFloor].
//
// ApplyFloor returns an error if:
//   - the coin is not denominated in the from currency;
//   - the result exceeds [MaxAmount].
func (r ExchangeRate[F, T]) ApplyFloor(c Coin[F]) (Coin[T], error) {
	if !sameTag(c.denom, r.from) {
		return Coin[T]{}, fmt.Errorf("converting %v at %v: %w", c, r, ErrCurrencyMismatch)
	}
	a, err := r.rate.ApplyFloor(c.amount)
	if err != nil {
		return Coin[T]{}, err
	}
	return NewCoin(r.to, a), nil
}

// ApplyCeil converts coin c to the to currency, rounding away from zero.
//
// ApplyCeil returns an error if:
//   - the coin is not denominated in the from currency;
//   - the result exceeds [MaxAmount].
func (r ExchangeRate[F, T]) ApplyCeil(c Coin[F]) (Coin[T], error) {
	if !sameTag(c.denom, r.from) {
		return Coin[T]{}, fmt.Errorf("converting %v at %v: %w", c, r, ErrCurrencyMismatch)
	}
	a, err := r.rate.ApplyCeil(c.amount)
	if err != nil {
		return Coin[T]{}, err
	}
	return NewCoin(r.to, a), nil
}

// ApplyInvFloor converts coin c back to the from currency,
// rounding towards zero.
//
// ApplyInvFloor returns an error if:
//   - the coin is not denominated in the to currency;
//   - the result exceeds [MaxAmount].
func (r ExchangeRate[F, T]) ApplyInvFloor(c Coin[T]) (Coin[F], error) {
	if !sameTag(c.denom, r.to) {
		return Coin[F]{}, fmt.Errorf("converting %v at %v: %w", c, r, ErrCurrencyMismatch)
	}
	a, err := r.rate.ApplyInvFloor(c.amount)
	if err != nil {
		return Coin[F]{}, err
	}
	return NewCoin(r.from, a), nil
}

// ApplyInvCeil converts coin c back to the from currency,
// rounding away from zero.
//
// ApplyInvCeil returns an error if:
//   - the coin is not denominated in the to currency;
//   - the result exceeds [MaxAmount].
func (r ExchangeRate[F, T]) ApplyInvCeil(c Coin[T]) (Coin[F], error) {
	if !sameTag(c.denom, r.to) {
		return Coin[F]{}, fmt.Errorf("converting %v at %v: %w", c, r, ErrCurrencyMismatch)
	}
	a, err := r.rate.ApplyInvCeil(c.amount)
	if err != nil {
		return Coin[F]{}, err
	}
	return NewCoin(r.from, a), nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, such as "ueur/uusd 1.08".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate[F, T]) String() string {
	return r.from.Denom() + "/" + r.to.Denom() + " " + r.rate.String()
}
