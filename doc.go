/*
Package monetary implements amounts of host chain currencies whose
denominations are checked by the Go type system.
It combines the [decimal] package for exchange rates with 128-bit unsigned
integers for amounts of minor units.

# Features

  - Amounts branded with a currency type, so that amounts of different
    currencies cannot be mixed at compile time
  - Checked and saturating arithmetic that never silently loses precision
  - Precision states that track whether the number of decimal places of a
    currency is verified, unverified or unknown
  - Exchange rates between minor units with explicit rounding direction
  - Validation of untyped host chain coins against currencies

# Representation

An [Amount] is a non-negative number of minor units, such as 1000000 for
1 ATOM, stored as a 128-bit unsigned integer.
Its type parameter is a brand without run-time representation.
Currencies are types implementing [Currency], usually zero-size structs.

A currency can be wrapped into one of three precision states:
[Precise] carries a verified number of decimal places,
[Unverified] carries a number of decimal places of uncertain origin
and [Imprecise] carries none.
Host chain coins carry no decimal information, so [FromWire] returns
coins of imprecise currencies.
Transitions between the states are always explicit, see [Precision].

# Supported Ranges

Amounts range from 0 to 2^128 - 1 minor units.
Exchange rates are positive decimals, or exact inverses of such decimals,
ranging from 1e-18 to 1e18 with at most 19 significant digits.
For more information, refer to the Supported Ranges section of the [decimal]
package description.

# Operations

Arithmetic operations on amounts return an error on overflow,
underflow or division by zero.
Saturating variants clamp the result to the supported range instead.

A [Rate] converts amounts of one currency to another, always rounding in an
explicitly chosen direction.
Rates are composed with [MulRate] and [QuoRate], which require the shared
currency to match.
An [ExchangeRate] additionally binds the rate to precision-tagged
currencies and converts coins.
Both currencies of an exchange rate are in the same precision state, so only
a precise coin can be converted into a precise coin.

# Errors

Errors are returned when parsing values, when wire coins are validated
against a different denomination and when arithmetic operations cannot be
completed exactly.
Callers can distinguish them with [errors.Is] and [errors.As].
Functions with the Must prefix panic instead.
*/
package monetary
