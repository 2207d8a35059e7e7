package monetary

import (
	"fmt"
	"sync/atomic"
)

//go:generate go run scripts/denom/codegen.go

// Currency is implemented by types that identify an asset class.
// Denom returns the denomination used by the host chain, such as "uatom",
// "ibc/27394FB0..." or "factory/kujira1.../uusk".
// The returned value must not change during the lifetime of the process.
//
// A currency is usually declared as a zero-size struct:
//
//	type EUR struct{}
//
//	func (EUR) Denom() string { return "ueur" }
//
// Such declarations for well-known denominations are generated into
// denom_data.go, see [ATOM] for example.
// Currencies known only at run time can use [Unknown] or a [LazyDenom].
type Currency interface {
	Denom() string
}

// Unknown is a currency whose denomination is only known at run time.
// All Unknown values share the same type, so amounts of different Unknown
// denominations are only told apart by run-time checks.
type Unknown string

// Denom returns the denomination.
func (u Unknown) Denom() string {
	return string(u)
}

// String implements the [fmt.Stringer] interface.
func (u Unknown) String() string {
	return string(u)
}

// LazyDenom holds a denomination that is set exactly once, typically during
// program start-up, and read many times afterwards.
// It backs currency markers whose denomination comes from configuration:
//
//	var usk monetary.LazyDenom
//
//	type USK struct{}
//
//	func (USK) Denom() string { return usk.Denom() }
//
// The zero value is an uninitialized denomination.
// LazyDenom is safe for concurrent use by multiple goroutines.
type LazyDenom struct {
	denom atomic.Pointer[string]
}

// Init sets the denomination.
// Repeating Init with the same denomination is a no-op.
//
// Init returns an error if:
//   - the denomination is empty;
//   - the denomination has already been set to a different value.
func (l *LazyDenom) Init(denom string) error {
	if denom == "" {
		return fmt.Errorf("initializing denomination: %w", errInvalidDenom)
	}
	if l.denom.CompareAndSwap(nil, &denom) {
		return nil
	}
	if curr := *l.denom.Load(); curr != denom {
		return fmt.Errorf("initializing denomination %q: %w as %q", denom, ErrAlreadyInitialized, curr)
	}
	return nil
}

// MustInit is like [LazyDenom.Init] but panics if the denomination cannot be set.
func (l *LazyDenom) MustInit(denom string) {
	if err := l.Init(denom); err != nil {
		panic(fmt.Sprintf("Init(%q) failed: %v", denom, err))
	}
}

// Get returns the denomination and true if it has been initialized.
func (l *LazyDenom) Get() (string, bool) {
	p := l.denom.Load()
	if p == nil {
		return "", false
	}
	return *p, true
}

// Denom returns the denomination.
//
// Denom panics if the denomination has not been initialized.
// To avoid this panic, use [LazyDenom.Get].
func (l *LazyDenom) Denom() string {
	d, ok := l.Get()
	if !ok {
		panic("Denom() failed: denomination is not initialized")
	}
	return d
}
