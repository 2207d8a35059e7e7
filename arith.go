package monetary

import (
	"math/big"
	"strings"

	"github.com/govalues/decimal"
	"lukechampine.com/uint128"
)

var (
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)
)

// pow10 returns 10^n.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// fraction returns the numerator and denominator of a non-negative decimal,
// such that d = num / den.
func fraction(d decimal.Decimal) (num, den *big.Int) {
	return new(big.Int).SetUint64(d.Coef()), pow10(d.Scale())
}

// mulDiv computes x * num / den rounded towards zero or, if ceil is true,
// away from zero.
// The intermediate product is computed without overflow.
func mulDiv(x uint128.Uint128, num, den *big.Int, ceil bool) (uint128.Uint128, error) {
	if den.Sign() == 0 {
		return uint128.Zero, ErrDivisionByZero
	}
	q, r := new(big.Int), new(big.Int)
	q.Mul(x.Big(), num)
	q.QuoRem(q, den, r)
	if ceil && r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	if q.BitLen() > 128 {
		return uint128.Zero, ErrOverflow
	}
	return uint128.FromBig(q), nil
}

// shiftDecimal returns d * 10^exp without rounding.
// It returns an error if the result cannot be represented exactly.
func shiftDecimal(d decimal.Decimal, exp int) (decimal.Decimal, error) {
	if d.IsNeg() {
		return decimal.Decimal{}, ErrNegativeRate
	}
	return newDecimal(new(big.Int).SetUint64(d.Coef()), d.Scale()-exp)
}

// exactDecimal returns num / den as a decimal.
// It returns false if the quotient is not positive or has no exact
// decimal representation within [decimal.MaxPrec] digits.
func exactDecimal(num, den *big.Int) (decimal.Decimal, bool) {
	if num.Sign() <= 0 || den.Sign() <= 0 {
		return decimal.Decimal{}, false
	}
	g := new(big.Int).GCD(nil, nil, num, den)
	n := new(big.Int).Quo(num, g)
	m := new(big.Int).Quo(den, g)

	// Only denominators of the form 2^a * 5^b terminate
	scale := 0
	for m.Cmp(bigOne) != 0 {
		switch {
		case m.Bit(0) == 0:
			m.Rsh(m, 1)
			n.Mul(n, bigFive)
		case new(big.Int).Rem(m, bigFive).Sign() == 0:
			m.Quo(m, bigFive)
			n.Mul(n, bigTwo)
		default:
			return decimal.Decimal{}, false
		}
		scale++
	}
	d, err := newDecimal(n, scale)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// newDecimal returns coef / 10^scale without rounding.
// It returns an error if the result cannot be represented exactly.
func newDecimal(coef *big.Int, scale int) (decimal.Decimal, error) {
	coef = new(big.Int).Set(coef)
	if scale < 0 {
		coef.Mul(coef, pow10(-scale))
		scale = 0
	}

	// Trailing zeros
	r := new(big.Int)
	for scale > 0 && coef.Sign() != 0 {
		q, m := new(big.Int).QuoRem(coef, bigTen, r)
		if m.Sign() != 0 {
			break
		}
		coef = q
		scale--
	}

	digs := coef.String()
	if scale > decimal.MaxScale || len(digs) > decimal.MaxPrec {
		return decimal.Decimal{}, ErrRateRange
	}

	// Decimal point
	if scale > 0 {
		if len(digs) <= scale {
			digs = strings.Repeat("0", scale-len(digs)+1) + digs
		}
		digs = digs[:len(digs)-scale] + "." + digs[len(digs)-scale:]
	}
	return decimal.Parse(digs)
}
