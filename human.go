package monetary

import (
	"fmt"

	shopspring "github.com/shopspring/decimal"
	"lukechampine.com/uint128"
)

// ToHuman returns the value of coin c in whole units of its currency,
// for example 1.5 for a coin of 1500000uusd with 6 decimal places.
// The conversion is exact.
//
// ToHuman returns [ErrNoDecimals] if the coin has no decimal information.
func ToHuman[P Precision](c Coin[P]) (shopspring.Decimal, error) {
	dec, ok := c.denom.decimals()
	if !ok {
		return shopspring.Decimal{}, fmt.Errorf("converting %v to whole units: %w", c, ErrNoDecimals)
	}
	return shopspring.NewFromBigInt(c.amount.Big(), -int32(dec)), nil
}

// FromHuman returns a coin for a value d in whole units of currency p.
// See also [ParseHuman].
//
// FromHuman returns an error if:
//   - the currency has no decimal information;
//   - the value is negative;
//   - the value has more fractional digits than the currency has decimal places;
//   - the number of minor units exceeds [MaxAmount].
func FromHuman[P Precision](d shopspring.Decimal, p P) (Coin[P], error) {
	dec, ok := p.decimals()
	if !ok {
		return Coin[P]{}, fmt.Errorf("converting %v %v to minor units: %w", d, p.Denom(), ErrNoDecimals)
	}
	if d.IsNegative() {
		return Coin[P]{}, fmt.Errorf("converting %v %v to minor units: %w", d, p.Denom(), ErrUnderflow)
	}
	m := d.Shift(int32(dec))
	if !m.IsInteger() {
		return Coin[P]{}, fmt.Errorf("converting %v %v to minor units: %w", d, p.Denom(), errInexact)
	}
	n := m.BigInt()
	if n.BitLen() > 128 {
		return Coin[P]{}, fmt.Errorf("converting %v %v to minor units: %w", d, p.Denom(), ErrOverflow)
	}
	return NewCoin(p, NewAmount[P](uint128.FromBig(n))), nil
}

// ParseHuman converts a decimal string of whole units, such as "1.5",
// to a coin of currency p.
// See also [FromHuman].
func ParseHuman[P Precision](s string, p P) (Coin[P], error) {
	d, err := shopspring.NewFromString(s)
	if err != nil {
		return Coin[P]{}, fmt.Errorf("parsing human value %q: %w", s, err)
	}
	return FromHuman(d, p)
}
