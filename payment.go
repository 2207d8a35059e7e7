package monetary

import "fmt"

// MustPay extracts the payment of currency c from funds attached to a
// message.
// Funds must consist of exactly one non-zero coin of the currency.
// See also [MayPay].
//
// MustPay returns a [*DenomNotFoundError] otherwise.
func MustPay[C Currency](funds []WireCoin, c C) (Coin[Imprecise[C]], error) {
	if len(funds) != 1 {
		return Coin[Imprecise[C]]{}, &DenomNotFoundError{Denom: c.Denom()}
	}
	w := funds[0]
	if w.Amount.IsZero() || w.Denom != c.Denom() {
		return Coin[Imprecise[C]]{}, &DenomNotFoundError{Denom: c.Denom()}
	}
	return FromWire(w, c)
}

// MayPay is like [MustPay], but the payment is optional.
// If funds are empty, MayPay returns a zero coin.
//
// MayPay returns an error if:
//   - funds consist of a single coin of a different currency;
//   - funds consist of more than one coin.
func MayPay[C Currency](funds []WireCoin, c C) (Coin[Imprecise[C]], error) {
	switch len(funds) {
	case 0:
		return NewCoin(NewImprecise(c), Amount[Imprecise[C]]{}), nil
	case 1:
		if funds[0].Denom != c.Denom() {
			return Coin[Imprecise[C]]{}, &DenomNotFoundError{Denom: c.Denom()}
		}
		return FromWire(funds[0], c)
	default:
		return Coin[Imprecise[C]]{}, fmt.Errorf("paying %v with %v coins: %w", c.Denom(), len(funds), ErrTooManyDenoms)
	}
}
