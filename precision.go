package monetary

import (
	"fmt"
	"strconv"
)

// Precision is implemented by the three precision states of a currency:
// [Precise], [Imprecise] and [Unverified].
// The interface is sealed: no other types can implement it.
//
// Transitions between states are explicit:
//
//	Imprecise --IntoPrecise-->    Precise     (hydration)
//	Precise   --IntoImprecise-->  Imprecise   (always legal)
//	Precise   --IntoUnverified--> Unverified
//	Imprecise --IntoUnverified--> Unverified
//	Unverified --Verify/Trust-->  Precise
//	Unverified --IntoImprecise--> Imprecise
type Precision interface {
	Currency
	// decimals returns the number of decimal places and true,
	// or false if the number is not known.
	decimals() (uint8, bool)
	// verified returns true only for Precise.
	verified() bool
}

// Precise represents a currency together with a verified number of
// decimal places, such as "uusd" with 6 decimals.
// Coins on chain carry no decimal information, so Precise values usually
// come from configuration or code.
// Operations between two Precise values are the only ones that produce
// a Precise result.
type Precise[C Currency] struct {
	curr C
	dec  uint8
}

// NewPrecise returns the currency with an authoritative number of
// decimal places.
func NewPrecise[C Currency](c C, decimals uint8) Precise[C] {
	return Precise[C]{curr: c, dec: decimals}
}

// Currency returns the underlying currency.
func (p Precise[C]) Currency() C {
	return p.curr
}

// Denom returns the denomination of the underlying currency.
func (p Precise[C]) Denom() string {
	return p.curr.Denom()
}

// Decimals returns the number of decimal places.
func (p Precise[C]) Decimals() uint8 {
	return p.dec
}

// IntoImprecise discards the number of decimal places.
func (p Precise[C]) IntoImprecise() Imprecise[C] {
	return Imprecise[C]{curr: p.curr}
}

// IntoUnverified keeps the number of decimal places, but marks it as
// not independently verified.
func (p Precise[C]) IntoUnverified() Unverified[C] {
	return Unverified[C]{curr: p.curr, dec: p.dec}
}

// String implements the [fmt.Stringer] interface.
// It returns the denomination followed by the number of decimal
// places in parentheses, for example "uusd(6)".
func (p Precise[C]) String() string {
	return p.Denom() + "(" + strconv.Itoa(int(p.dec)) + ")"
}

func (p Precise[C]) decimals() (uint8, bool) { return p.dec, true }

func (p Precise[C]) verified() bool { return true }

// Imprecise represents a currency without any decimal information.
// This is what the host chain provides for raw coins.
type Imprecise[C Currency] struct {
	curr C
}

// NewImprecise returns the currency without decimal information.
func NewImprecise[C Currency](c C) Imprecise[C] {
	return Imprecise[C]{curr: c}
}

// Currency returns the underlying currency.
func (p Imprecise[C]) Currency() C {
	return p.curr
}

// Denom returns the denomination of the underlying currency.
func (p Imprecise[C]) Denom() string {
	return p.curr.Denom()
}

// IntoPrecise attaches an authoritative number of decimal places.
// The caller asserts that the number is correct.
func (p Imprecise[C]) IntoPrecise(decimals uint8) Precise[C] {
	return Precise[C]{curr: p.curr, dec: decimals}
}

// IntoUnverified attaches a number of decimal places whose origin
// is not trusted, for example one inferred from another currency.
func (p Imprecise[C]) IntoUnverified(decimals uint8) Unverified[C] {
	return Unverified[C]{curr: p.curr, dec: decimals}
}

// String implements the [fmt.Stringer] interface and returns the denomination.
func (p Imprecise[C]) String() string {
	return p.Denom()
}

func (p Imprecise[C]) decimals() (uint8, bool) { return 0, false }

func (p Imprecise[C]) verified() bool { return false }

// Unverified represents a currency with a number of decimal places
// of uncertain provenance.
// It has the same shape as [Precise], but it is a different type, so it
// cannot be used where Precise is expected without [Unverified.Verify]
// or [Unverified.Trust].
type Unverified[C Currency] struct {
	curr C
	dec  uint8
}

// NewUnverified returns the currency with a number of decimal places
// that has not been verified.
func NewUnverified[C Currency](c C, decimals uint8) Unverified[C] {
	return Unverified[C]{curr: c, dec: decimals}
}

// LookupDecimals returns the conventional number of decimal places of
// a well-known denomination, such as 6 for "uatom".
// The result is Unverified, because a static table is not an
// authoritative source for the decimals of a particular deployment.
// LookupDecimals returns false if the denomination is not well-known.
func LookupDecimals[C Currency](c C) (Unverified[C], bool) {
	dec, ok := decimalsLookup[c.Denom()]
	if !ok {
		return Unverified[C]{}, false
	}
	return NewUnverified(c, dec), true
}

// Currency returns the underlying currency.
func (p Unverified[C]) Currency() C {
	return p.curr
}

// Denom returns the denomination of the underlying currency.
func (p Unverified[C]) Denom() string {
	return p.curr.Denom()
}

// Decimals returns the unverified number of decimal places.
func (p Unverified[C]) Decimals() uint8 {
	return p.dec
}

// Verify compares the number of decimal places with an authoritative one.
//
// Verify returns an error if the numbers differ.
func (p Unverified[C]) Verify(decimals uint8) (Precise[C], error) {
	if p.dec != decimals {
		return Precise[C]{}, fmt.Errorf("verifying %v against %v decimals: %w", p, decimals, ErrDecimalsMismatch)
	}
	return Precise[C]{curr: p.curr, dec: p.dec}, nil
}

// Trust returns a Precise currency with the same number of decimal places.
// The caller explicitly acknowledges that the number is correct.
func (p Unverified[C]) Trust() Precise[C] {
	return Precise[C]{curr: p.curr, dec: p.dec}
}

// IntoImprecise discards the number of decimal places.
func (p Unverified[C]) IntoImprecise() Imprecise[C] {
	return Imprecise[C]{curr: p.curr}
}

// String implements the [fmt.Stringer] interface.
// It returns the denomination followed by the number of decimal
// places and a question mark in parentheses, for example "uusd(6?)".
func (p Unverified[C]) String() string {
	return p.Denom() + "(" + strconv.Itoa(int(p.dec)) + "?)"
}

func (p Unverified[C]) decimals() (uint8, bool) { return p.dec, true }

func (p Unverified[C]) verified() bool { return false }

// sameKind returns true if precision tags are in the same state:
// both precise, both imprecise or both unverified.
func sameKind(p, q Precision) bool {
	_, pok := p.decimals()
	_, qok := q.decimals()
	return pok == qok && p.verified() == q.verified()
}

// sameTag returns true if precision tags have the same denomination and
// the same decimal information.
func sameTag[P Precision](p, q P) bool {
	pd, pok := p.decimals()
	qd, qok := q.decimals()
	return p.Denom() == q.Denom() && pok == qok && pd == qd
}
