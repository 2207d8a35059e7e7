package monetary

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

var (
	minRate = decimal.MustParse("0.000000000000000001")
	maxRate = decimal.MustParse("1000000000000000000")
)

// Rate represents a directed exchange ratio between currencies A and B:
// one minor unit of A exchanges for rate minor units of B.
// A and B are brands without run-time representation; they are usually
// currencies or precision-tagged currencies.
//
// Rates are strictly positive and lie within the range [1e-18, 1e18].
// This range is closed under inversion, so [Rate.Inv] never fails.
// A rate is either a decimal or the exact reciprocal of a decimal, such as
// the inverse of 3, so inversion never loses precision.
// The zero value is not a valid rate; use [NewRate] or [ParseRate].
// Rate is designed to be safe for concurrent use by multiple goroutines.
type Rate[A, B any] struct {
	value decimal.Decimal
	inv   bool // the rate is 1 / value, and 1 / value has no decimal form
}

// newRateUnsafe creates a new rate without checking its range.
// Use it only if you are absolutely sure that the argument is valid.
func newRateUnsafe[A, B any](d decimal.Decimal) Rate[A, B] {
	return Rate[A, B]{value: d.Trim(0)}
}

// newRateSafe creates a new rate and checks its range.
func newRateSafe[A, B any](d decimal.Decimal) (Rate[A, B], error) {
	switch {
	case d.IsZero():
		return Rate[A, B]{}, ErrZeroRate
	case d.IsNeg():
		return Rate[A, B]{}, ErrNegativeRate
	case d.Cmp(minRate) < 0, d.Cmp(maxRate) > 0:
		return Rate[A, B]{}, fmt.Errorf("%w: %v", ErrRateRange, d)
	}
	return newRateUnsafe[A, B](d), nil
}

// NewRate returns a rate between currencies A and B.
//
// NewRate returns an error if:
//   - the rate is zero;
//   - the rate is negative;
//   - the rate is less than 1e-18 or greater than 1e18.
func NewRate[A, B any](d decimal.Decimal) (Rate[A, B], error) {
	r, err := newRateSafe[A, B](d)
	if err != nil {
		return Rate[A, B]{}, fmt.Errorf("rate construction: %w", err)
	}
	return r, nil
}

// MustNewRate is like [NewRate] but panics if the rate cannot be constructed.
// It simplifies safe initialization of global variables holding rates.
func MustNewRate[A, B any](d decimal.Decimal) Rate[A, B] {
	r, err := NewRate[A, B](d)
	if err != nil {
		panic(fmt.Sprintf("NewRate(%v) failed: %v", d, err))
	}
	return r
}

// ParseRate converts a decimal string to a rate.
// See also constructor [decimal.Parse].
func ParseRate[A, B any](s string) (Rate[A, B], error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Rate[A, B]{}, fmt.Errorf("rate parsing: %w", err)
	}
	return NewRate[A, B](d)
}

// MustParseRate is like [ParseRate] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rates.
func MustParseRate[A, B any](s string) Rate[A, B] {
	r, err := ParseRate[A, B](s)
	if err != nil {
		panic(fmt.Sprintf("ParseRate(%q) failed: %v", s, err))
	}
	return r
}

// NewPreciseRate returns a rate between precise currencies, where d is the
// human-scaled ratio: one whole unit of A exchanges for d whole units of B.
// The returned rate operates on minor units, so d is multiplied by
// 10^(to.Decimals() - from.Decimals()).
// For example, with 1 EUR = 1.08 USD, EUR having 6 decimals and USD
// having 2 decimals, the resulting rate is 0.000108.
//
// NewPreciseRate returns an error if the rescaled rate is not valid
// or cannot be represented without rounding.
func NewPreciseRate[A, B Currency](d decimal.Decimal, from Precise[A], to Precise[B]) (Rate[Precise[A], Precise[B]], error) {
	return rescaledRate[Precise[A], Precise[B]](d, from.Decimals(), to.Decimals())
}

func rescaledRate[A, B any](d decimal.Decimal, from, to uint8) (Rate[A, B], error) {
	if err := checkRate(d); err != nil {
		return Rate[A, B]{}, fmt.Errorf("rate construction: %w", err)
	}
	e, err := shiftDecimal(d, int(to)-int(from))
	if err != nil {
		return Rate[A, B]{}, fmt.Errorf("rescaling %v by 10^%v: %w", d, int(to)-int(from), err)
	}
	return NewRate[A, B](e)
}

func checkRate(d decimal.Decimal) error {
	switch {
	case d.IsZero():
		return ErrZeroRate
	case d.IsNeg():
		return ErrNegativeRate
	}
	return nil
}

// MulRate returns the composition of rates ab and bc, A/B * B/C = A/C.
// The shared currency B must match, so rates cannot be chained through
// an unrelated currency.
//
// MulRate returns an error if the product is outside of the valid range.
func MulRate[A, B, C any](ab Rate[A, B], bc Rate[B, C]) (Rate[A, C], error) {
	an, ad := ab.ratio()
	bn, bd := bc.ratio()
	r, ok, err := ratioRate[A, C](an.Mul(an, bn), ad.Mul(ad, bd))
	if !ok {
		d, e := ab.Decimal().Mul(bc.Decimal())
		r, err = composedRate[A, C](d, e)
	}
	if err != nil {
		return Rate[A, C]{}, fmt.Errorf("computing [%v * %v]: %w", ab, bc, err)
	}
	return r, nil
}

// QuoRate returns the quotient of rates ab and cb, (A/B) / (C/B) = A/C.
// The shared currency B must match.
//
// QuoRate returns an error if the quotient is outside of the valid range.
func QuoRate[A, B, C any](ab Rate[A, B], cb Rate[C, B]) (Rate[A, C], error) {
	an, ad := ab.ratio()
	cn, cd := cb.ratio()
	r, ok, err := ratioRate[A, C](an.Mul(an, cd), ad.Mul(ad, cn))
	if !ok {
		d, e := ab.Decimal().Quo(cb.Decimal())
		r, err = composedRate[A, C](d, e)
	}
	if err != nil {
		return Rate[A, C]{}, fmt.Errorf("computing [%v / %v]: %w", ab, cb, err)
	}
	return r, nil
}

// ratioRate returns the rate equal to num / den if it or its inverse
// has an exact decimal representation.
// Otherwise it returns false, and the caller has to round.
func ratioRate[A, B any](num, den *big.Int) (Rate[A, B], bool, error) {
	if d, ok := exactDecimal(num, den); ok {
		r, err := newRateSafe[A, B](d)
		return r, true, err
	}
	if d, ok := exactDecimal(den, num); ok {
		r, err := newRateSafe[B, A](d)
		if err != nil {
			return Rate[A, B]{}, true, err
		}
		return Rate[A, B]{value: r.value, inv: true}, true, nil
	}
	return Rate[A, B]{}, false, nil
}

// composedRate checks the result of a decimal operation on rates.
// Results that overflow the decimal or round to zero are out of range.
func composedRate[A, B any](d decimal.Decimal, err error) (Rate[A, B], error) {
	switch {
	case err != nil:
		return Rate[A, B]{}, fmt.Errorf("%w: %w", ErrRateRange, err)
	case d.IsZero():
		return Rate[A, B]{}, ErrRateRange
	}
	return newRateSafe[A, B](d)
}

// Decimal returns the rate as a decimal.
// If the rate has no exact decimal representation, as the inverse of 3,
// the result is rounded to 19 digits.
func (r Rate[A, B]) Decimal() decimal.Decimal {
	if !r.inv {
		return r.value
	}
	d, err := r.value.Inv()
	if err != nil {
		panic(fmt.Sprintf("%v.Decimal() failed: %v", r.value, err))
	}
	return d
}

// ratio returns the rate as a fraction num / den.
func (r Rate[A, B]) ratio() (num, den *big.Int) {
	num, den = fraction(r.value)
	if r.inv {
		return den, num
	}
	return num, den
}

// Inv returns the inverse of the rate.
// The inverse is exact, so r.Inv().Inv() == r.
// The inverse of the zero value is the zero value.
func (r Rate[A, B]) Inv() Rate[B, A] {
	switch {
	case r.value.IsZero():
		return Rate[B, A]{}
	case r.inv:
		return Rate[B, A]{value: r.value}
	}
	num, den := fraction(r.value)
	if d, ok := exactDecimal(den, num); ok {
		return newRateUnsafe[B, A](d)
	}
	return Rate[B, A]{value: r.value, inv: true}
}

// IsOne returns:
//
//	true  if r = 1
//	false otherwise
func (r Rate[A, B]) IsOne() bool {
	return !r.inv && r.value.IsOne()
}

// WithinOne returns:
//
//	true  if 0 < r < 1
//	false otherwise
func (r Rate[A, B]) WithinOne() bool {
	if r.inv {
		return !r.value.WithinOne() && !r.value.IsOne()
	}
	return r.value.WithinOne()
}

// Add returns the rate increased by an untyped decimal e.
// This is useful for applying a directly calculated spread to a typed rate.
// A rate without an exact decimal form is rounded to 19 digits first.
//
// Add returns an error if the result is not a valid rate.
func (r Rate[A, B]) Add(e decimal.Decimal) (Rate[A, B], error) {
	d, err := r.Decimal().Add(e)
	if err != nil {
		return Rate[A, B]{}, fmt.Errorf("computing [%v + %v]: %w", r, e, err)
	}
	q, err := newRateSafe[A, B](d)
	if err != nil {
		return Rate[A, B]{}, fmt.Errorf("computing [%v + %v]: %w", r, e, err)
	}
	return q, nil
}

// Sub returns the rate decreased by an untyped decimal e.
//
// Sub returns an error if the result is not a valid rate.
func (r Rate[A, B]) Sub(e decimal.Decimal) (Rate[A, B], error) {
	d, err := r.Decimal().Sub(e)
	if err != nil {
		return Rate[A, B]{}, fmt.Errorf("computing [%v - %v]: %w", r, e, err)
	}
	q, err := newRateSafe[A, B](d)
	if err != nil {
		return Rate[A, B]{}, fmt.Errorf("computing [%v - %v]: %w", r, e, err)
	}
	return q, nil
}

// Cmp compares rates and returns:
//
//	-1 if r < q
//	 0 if r = q
//	+1 if r > q
func (r Rate[A, B]) Cmp(q Rate[A, B]) int {
	rn, rd := r.ratio()
	qn, qd := q.ratio()
	return rn.Mul(rn, qd).Cmp(qn.Mul(qn, rd))
}

// ApplyFloor converts amount a of currency A to currency B,
// rounding towards zero.
// See also methods [Rate.ApplyCeil] and [Rate.ApplyInvFloor].
//
// ApplyFloor returns an error if the result exceeds [MaxAmount].
func (r Rate[A, B]) ApplyFloor(a Amount[A]) (Amount[B], error) {
	num, den := r.ratio()
	return applyRate[A, B](a, num, den, false, r)
}

// ApplyCeil converts amount a of currency A to currency B,
// rounding away from zero.
//
// ApplyCeil returns an error if the result exceeds [MaxAmount].
func (r Rate[A, B]) ApplyCeil(a Amount[A]) (Amount[B], error) {
	num, den := r.ratio()
	return applyRate[A, B](a, num, den, true, r)
}

// ApplyInvFloor converts amount b of currency B back to currency A,
// rounding towards zero.
// The amount is divided by the rate exactly, so
// ApplyInvFloor(ApplyFloor(a)) <= a.
//
// ApplyInvFloor returns an error if the result exceeds [MaxAmount].
func (r Rate[A, B]) ApplyInvFloor(b Amount[B]) (Amount[A], error) {
	num, den := r.ratio()
	return applyRate[B, A](b, den, num, false, r)
}

// ApplyInvCeil converts amount b of currency B back to currency A,
// rounding away from zero, so ApplyInvCeil(ApplyCeil(a)) >= a.
//
// ApplyInvCeil returns an error if the result exceeds [MaxAmount].
func (r Rate[A, B]) ApplyInvCeil(b Amount[B]) (Amount[A], error) {
	num, den := r.ratio()
	return applyRate[B, A](b, den, num, true, r)
}

func applyRate[X, Y any](a Amount[X], num, den *big.Int, ceil bool, r fmt.Stringer) (Amount[Y], error) {
	u, err := mulDiv(a.Uint128(), num, den, ceil)
	if err != nil {
		return Amount[Y]{}, fmt.Errorf("converting %v at %v: %w", a, r, err)
	}
	return NewAmount[Y](u), nil
}

// String implements the [fmt.Stringer] interface and returns the rate
// in its canonical decimal form, such as "0.5".
// See [Rate.Decimal] for rates without an exact decimal form.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rate[A, B]) String() string {
	return r.Decimal().String()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both quoted and unquoted decimals are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (r *Rate[A, B]) UnmarshalJSON(text []byte) error {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*r, err = ParseRate[A, B](string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rate[A, B]{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The rate is encoded as a quoted decimal string, such as "0.5".
// A rate without an exact decimal form is encoded rounded to 19 digits.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (r Rate[A, B]) MarshalJSON() ([]byte, error) {
	s := r.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rate[A, B]) UnmarshalText(text []byte) error {
	var err error
	*r, err = ParseRate[A, B](string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rate[A, B]{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rate[A, B]) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
