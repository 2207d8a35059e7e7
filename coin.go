package monetary

import (
	"fmt"

	"github.com/goccy/go-json"
	"lukechampine.com/uint128"
)

// WireCoin is the untyped representation of a coin used by the host chain:
// a denomination string and an amount of minor units.
// Its JSON form is {"denom":"uatom","amount":"1000000"}, where the amount
// is a base-10 string.
type WireCoin struct {
	Denom  string
	Amount uint128.Uint128
}

type wireCoinJSON struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// ParseWireCoin converts a string in the compact host chain notation,
// such as "1000000uatom" or "5ibc/27394FB0...", to a wire coin.
//
// ParseWireCoin returns an error if the string does not start with
// an amount followed by a denomination.
func ParseWireCoin(s string) (WireCoin, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) {
		return WireCoin{}, fmt.Errorf("parsing coin %q: %w", s, errInvalidCoin)
	}
	u, err := parseUint128(s[:i])
	if err != nil {
		return WireCoin{}, fmt.Errorf("parsing coin %q: %w", s, err)
	}
	return WireCoin{Denom: s[i:], Amount: u}, nil
}

// String implements the [fmt.Stringer] interface and returns the coin in
// the compact host chain notation, for example "1000000uatom".
func (w WireCoin) String() string {
	return w.Amount.String() + w.Denom
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (w *WireCoin) UnmarshalJSON(text []byte) error {
	var aux wireCoinJSON
	if err := json.Unmarshal(text, &aux); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", WireCoin{}, err)
	}
	u, err := parseUint128(aux.Amount)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", WireCoin{}, err)
	}
	w.Denom, w.Amount = aux.Denom, u
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (w WireCoin) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireCoinJSON{Denom: w.Denom, Amount: w.Amount.String()})
}

// Coin represents an amount of a precision-tagged currency, such as
// Coin[Precise[USD]] or Coin[Imprecise[USD]].
// Coins are obtained by validating a [WireCoin] against a currency, see
// [FromWire], and converted back with [Coin.ToWire].
// Coin is designed to be safe for concurrent use by multiple goroutines.
type Coin[P Precision] struct {
	amount Amount[P]
	denom  P
}

// NewCoin returns a coin of the given amount.
func NewCoin[P Precision](denom P, amount Amount[P]) Coin[P] {
	return Coin[P]{amount: amount, denom: denom}
}

// ParseCoin validates a wire coin against a precision-tagged currency.
// See also [FromWire] and [FromWirePrecise].
//
// ParseCoin returns a [*DenomMismatchError] if the denomination of the
// wire coin differs from the denomination of the currency.
func ParseCoin[P Precision](w WireCoin, denom P) (Coin[P], error) {
	if w.Denom != denom.Denom() {
		return Coin[P]{}, &DenomMismatchError{Actual: w.Denom, Expected: denom.Denom()}
	}
	return NewCoin(denom, NewAmount[P](w.Amount)), nil
}

// FromWire validates a wire coin against a currency.
// The result carries no decimal information, see [WithPrecision].
//
// FromWire returns a [*DenomMismatchError] if the denominations differ.
func FromWire[C Currency](w WireCoin, c C) (Coin[Imprecise[C]], error) {
	return ParseCoin(w, NewImprecise(c))
}

// FromWirePrecise validates a wire coin against a currency with
// a known number of decimal places.
//
// FromWirePrecise returns a [*DenomMismatchError] if the denominations differ.
func FromWirePrecise[C Currency](w WireCoin, p Precise[C]) (Coin[Precise[C]], error) {
	return ParseCoin(w, p)
}

// WithPrecision hydrates an imprecise coin with an authoritative number
// of decimal places.
func WithPrecision[C Currency](c Coin[Imprecise[C]], decimals uint8) Coin[Precise[C]] {
	return retag(c, c.denom.IntoPrecise(decimals))
}

// WithoutPrecision discards the number of decimal places of a coin.
func WithoutPrecision[C Currency](c Coin[Precise[C]]) Coin[Imprecise[C]] {
	return retag(c, c.denom.IntoImprecise())
}

// WithUnverifiedPrecision marks the number of decimal places of a coin
// as not independently verified.
func WithUnverifiedPrecision[C Currency](c Coin[Precise[C]]) Coin[Unverified[C]] {
	return retag(c, c.denom.IntoUnverified())
}

// VerifyCoin checks the unverified number of decimal places of a coin
// against an authoritative one.
// See also method [Unverified.Verify].
func VerifyCoin[C Currency](c Coin[Unverified[C]], decimals uint8) (Coin[Precise[C]], error) {
	p, err := c.denom.Verify(decimals)
	if err != nil {
		return Coin[Precise[C]]{}, err
	}
	return retag(c, p), nil
}

func retag[P, Q Precision](c Coin[P], q Q) Coin[Q] {
	return NewCoin(q, NewAmount[Q](c.amount.Uint128()))
}

// Amount returns the amount of the coin.
func (c Coin[P]) Amount() Amount[P] {
	return c.amount
}

// Denom returns the precision-tagged currency of the coin.
func (c Coin[P]) Denom() P {
	return c.denom
}

// IsZero returns true if the amount of the coin is 0.
func (c Coin[P]) IsZero() bool {
	return c.amount.IsZero()
}

// ToWire returns the untyped representation of the coin.
func (c Coin[P]) ToWire() WireCoin {
	return WireCoin{Denom: c.denom.Denom(), Amount: c.amount.Uint128()}
}

// Coins returns the coin as a single-element list of wire coins, the form
// expected by host chain transfer messages.
func (c Coin[P]) Coins() []WireCoin {
	return []WireCoin{c.ToWire()}
}

// SameDenom returns true if coins have the same denomination and decimal
// information.
func (c Coin[P]) SameDenom(d Coin[P]) bool {
	return sameTag(c.denom, d.denom)
}

// Add returns the sum of coins c and d.
//
// Add returns an error if:
//   - coins have different denominations or decimal information;
//   - the sum overflows.
func (c Coin[P]) Add(d Coin[P]) (Coin[P], error) {
	if !c.SameDenom(d) {
		return Coin[P]{}, fmt.Errorf("computing [%v + %v]: %w", c, d, ErrCurrencyMismatch)
	}
	return c.AddAmount(d.amount)
}

// Sub returns the difference between coins c and d.
//
// Sub returns an error if:
//   - coins have different denominations or decimal information;
//   - d is greater than c.
func (c Coin[P]) Sub(d Coin[P]) (Coin[P], error) {
	if !c.SameDenom(d) {
		return Coin[P]{}, fmt.Errorf("computing [%v - %v]: %w", c, d, ErrCurrencyMismatch)
	}
	return c.SubAmount(d.amount)
}

// AddAmount returns the coin increased by amount a.
//
// AddAmount returns an error if the sum overflows.
func (c Coin[P]) AddAmount(a Amount[P]) (Coin[P], error) {
	s, err := c.amount.Add(a)
	if err != nil {
		return Coin[P]{}, err
	}
	return NewCoin(c.denom, s), nil
}

// SubAmount returns the coin decreased by amount a.
//
// SubAmount returns an error if a is greater than the amount of the coin.
func (c Coin[P]) SubAmount(a Amount[P]) (Coin[P], error) {
	s, err := c.amount.Sub(a)
	if err != nil {
		return Coin[P]{}, err
	}
	return NewCoin(c.denom, s), nil
}

// String implements the [fmt.Stringer] interface and returns the coin in
// the compact host chain notation, for example "1000000uatom".
func (c Coin[P]) String() string {
	return c.amount.String() + c.denom.Denom()
}
