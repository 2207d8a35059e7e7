package monetary

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/govalues/decimal"
	"lukechampine.com/uint128"
)

// Amount represents a non-negative quantity of minor units of currency C.
// The type parameter C is a brand: it has no run-time representation,
// so Amount[C] has the size of a 128-bit integer, but amounts branded with
// different currencies are different types and cannot be mixed without
// an explicit conversion through a [Rate].
//
// C is usually a [Currency] or one of the precision states [Precise],
// [Imprecise] and [Unverified] wrapping a currency.
// The zero value is an amount of 0.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount[C any] struct {
	value uint128.Uint128
}

// NewAmount returns an amount of u minor units.
func NewAmount[C any](u uint128.Uint128) Amount[C] {
	return Amount[C]{value: u}
}

// NewAmountFromUint64 returns an amount of u minor units.
func NewAmountFromUint64[C any](u uint64) Amount[C] {
	return NewAmount[C](uint128.From64(u))
}

// MaxAmount returns the largest representable amount, 2^128 - 1 minor units.
func MaxAmount[C any]() Amount[C] {
	return NewAmount[C](uint128.Max)
}

// ParseAmount converts a base-10 string of minor units to an amount.
//
// ParseAmount returns an error if the string is not a non-negative
// integer or if it does not fit into 128 bits.
func ParseAmount[C any](s string) (Amount[C], error) {
	u, err := parseUint128(s)
	if err != nil {
		return Amount[C]{}, fmt.Errorf("parsing amount: %w", err)
	}
	return NewAmount[C](u), nil
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount[C any](s string) Amount[C] {
	a, err := ParseAmount[C](s)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", s, err))
	}
	return a
}

func parseUint128(s string) (uint128.Uint128, error) {
	if s == "" {
		return uint128.Zero, fmt.Errorf("empty string")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return uint128.Zero, fmt.Errorf("invalid character %q", s[i])
		}
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return uint128.Zero, fmt.Errorf("invalid number %q", s)
	}
	if b.BitLen() > 128 {
		return uint128.Zero, ErrOverflow
	}
	return uint128.FromBig(b), nil
}

// Uint128 returns the number of minor units.
func (a Amount[C]) Uint128() uint128.Uint128 {
	return a.value
}

// Big returns the number of minor units as a [big.Int].
func (a Amount[C]) Big() *big.Int {
	return a.value.Big()
}

// Uint64 returns the number of minor units and true if it fits into uint64.
func (a Amount[C]) Uint64() (uint64, bool) {
	if a.value.Hi != 0 {
		return 0, false
	}
	return a.value.Lo, true
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount[C]) IsZero() bool {
	return a.value.IsZero()
}

// Add returns the sum of amounts a and b.
//
// Add returns an error if the result exceeds [MaxAmount].
func (a Amount[C]) Add(b Amount[C]) (Amount[C], error) {
	c, err := a.add(b)
	if err != nil {
		return Amount[C]{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount[C]) add(b Amount[C]) (Amount[C], error) {
	s := a.value.AddWrap(b.value)
	if s.Cmp(a.value) < 0 {
		return Amount[C]{}, ErrOverflow
	}
	return NewAmount[C](s), nil
}

// Sub returns the difference between amounts a and b.
// See also method [Amount.SubAbs].
//
// Sub returns an error if b is greater than a.
func (a Amount[C]) Sub(b Amount[C]) (Amount[C], error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount[C]{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount[C]) sub(b Amount[C]) (Amount[C], error) {
	if a.value.Cmp(b.value) < 0 {
		return Amount[C]{}, ErrUnderflow
	}
	return NewAmount[C](a.value.Sub(b.value)), nil
}

// SubAbs returns the absolute difference between amounts a and b.
func (a Amount[C]) SubAbs(b Amount[C]) Amount[C] {
	if a.value.Cmp(b.value) < 0 {
		return NewAmount[C](b.value.Sub(a.value))
	}
	return NewAmount[C](a.value.Sub(b.value))
}

// Mul returns the product of amounts a and b.
//
// Mul returns an error if the result exceeds [MaxAmount].
func (a Amount[C]) Mul(b Amount[C]) (Amount[C], error) {
	c, err := a.mul(b)
	if err != nil {
		return Amount[C]{}, fmt.Errorf("computing [%v * %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount[C]) mul(b Amount[C]) (Amount[C], error) {
	p := new(big.Int).Mul(a.value.Big(), b.value.Big())
	if p.BitLen() > 128 {
		return Amount[C]{}, ErrOverflow
	}
	return NewAmount[C](uint128.FromBig(p)), nil
}

// Quo returns the quotient of amounts a and b truncated towards zero.
//
// Quo returns an error if b is 0.
func (a Amount[C]) Quo(b Amount[C]) (Amount[C], error) {
	if b.IsZero() {
		return Amount[C]{}, fmt.Errorf("computing [%v / %v]: %w", a, b, ErrDivisionByZero)
	}
	return NewAmount[C](a.value.Div(b.value)), nil
}

// SaturatingAdd returns the sum of amounts a and b, or [MaxAmount]
// if the sum overflows.
func (a Amount[C]) SaturatingAdd(b Amount[C]) Amount[C] {
	c, err := a.add(b)
	if err != nil {
		return MaxAmount[C]()
	}
	return c
}

// SaturatingSub returns the difference between amounts a and b, or 0
// if b is greater than a.
func (a Amount[C]) SaturatingSub(b Amount[C]) Amount[C] {
	c, err := a.sub(b)
	if err != nil {
		return Amount[C]{}
	}
	return c
}

// SaturatingMul returns the product of amounts a and b, or [MaxAmount]
// if the product overflows.
func (a Amount[C]) SaturatingMul(b Amount[C]) Amount[C] {
	c, err := a.mul(b)
	if err != nil {
		return MaxAmount[C]()
	}
	return c
}

// MulFloor returns the product of amount a and factor e rounded towards zero.
// See also method [Amount.MulCeil].
//
// MulFloor returns an error if:
//   - the factor is negative;
//   - the result exceeds [MaxAmount].
func (a Amount[C]) MulFloor(e decimal.Decimal) (Amount[C], error) {
	c, err := a.mulDec(e, false)
	if err != nil {
		return Amount[C]{}, fmt.Errorf("computing [floor(%v * %v)]: %w", a, e, err)
	}
	return c, nil
}

// MulCeil returns the product of amount a and factor e rounded away from zero.
// See also method [Amount.MulFloor].
//
// MulCeil returns an error if:
//   - the factor is negative;
//   - the result exceeds [MaxAmount].
func (a Amount[C]) MulCeil(e decimal.Decimal) (Amount[C], error) {
	c, err := a.mulDec(e, true)
	if err != nil {
		return Amount[C]{}, fmt.Errorf("computing [ceil(%v * %v)]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount[C]) mulDec(e decimal.Decimal, ceil bool) (Amount[C], error) {
	if e.IsNeg() {
		return Amount[C]{}, fmt.Errorf("factor must not be negative")
	}
	num, den := fraction(e)
	u, err := mulDiv(a.value, num, den, ceil)
	if err != nil {
		return Amount[C]{}, err
	}
	return NewAmount[C](u), nil
}

// QuoFloor returns the quotient of amount a and divisor e rounded towards zero.
// See also method [Amount.QuoCeil].
//
// QuoFloor returns an error if:
//   - the divisor is not positive;
//   - the result exceeds [MaxAmount].
func (a Amount[C]) QuoFloor(e decimal.Decimal) (Amount[C], error) {
	c, err := a.quoDec(e, false)
	if err != nil {
		return Amount[C]{}, fmt.Errorf("computing [floor(%v / %v)]: %w", a, e, err)
	}
	return c, nil
}

// QuoCeil returns the quotient of amount a and divisor e rounded away from zero.
// See also method [Amount.QuoFloor].
//
// QuoCeil returns an error if:
//   - the divisor is not positive;
//   - the result exceeds [MaxAmount].
func (a Amount[C]) QuoCeil(e decimal.Decimal) (Amount[C], error) {
	c, err := a.quoDec(e, true)
	if err != nil {
		return Amount[C]{}, fmt.Errorf("computing [ceil(%v / %v)]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount[C]) quoDec(e decimal.Decimal, ceil bool) (Amount[C], error) {
	if e.IsZero() {
		return Amount[C]{}, ErrDivisionByZero
	}
	if e.IsNeg() {
		return Amount[C]{}, fmt.Errorf("divisor must not be negative")
	}
	num, den := fraction(e)
	u, err := mulDiv(a.value, den, num, ceil)
	if err != nil {
		return Amount[C]{}, err
	}
	return NewAmount[C](u), nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
func (a Amount[C]) Cmp(b Amount[C]) int {
	return a.value.Cmp(b.value)
}

// Min returns the smaller amount.
func (a Amount[C]) Min(b Amount[C]) Amount[C] {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger amount.
func (a Amount[C]) Max(b Amount[C]) Amount[C] {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// String implements the [fmt.Stringer] interface and returns the number
// of minor units in base 10.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount[C]) String() string {
	return a.value.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description   |
//	| ---------- | ------- | ------------- |
//	| %s, %v, %d | 1000000 | Minor units   |
//	| %q         | "1000"  | Quoted amount |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount[C]) Format(state fmt.State, verb rune) {
	s := a.String()
	switch verb {
	case 'q', 'Q':
		s = strconv.Quote(s)
	case 's', 'S', 'v', 'V', 'd', 'D':
		// as is
	default:
		s = "%!" + string(verb) + "(monetary.Amount=" + s + ")"
	}
	if w, ok := state.Width(); ok && w > len(s) {
		pad := make([]byte, w-len(s))
		for i := range pad {
			pad[i] = ' '
		}
		if state.Flag('-') {
			s += string(pad)
		} else {
			s = string(pad) + s
		}
	}
	//nolint:errcheck
	state.Write([]byte(s))
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both quoted and unquoted integers are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount[C]) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*a, err = ParseAmount[C](string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount[C]{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is always quoted, because many JSON decoders cannot
// represent 128-bit integers exactly.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount[C]) MarshalJSON() ([]byte, error) {
	s := a.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount[C]) UnmarshalText(text []byte) error {
	var err error
	*a, err = ParseAmount[C](string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount[C]{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount[C]) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
