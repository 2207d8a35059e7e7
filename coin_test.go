package monetary

import (
	"errors"
	"slices"
	"testing"

	"github.com/goccy/go-json"
	"lukechampine.com/uint128"
)

func TestWireCoin_JSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			w    WireCoin
			want string
		}{
			{WireCoin{Denom: "uatom", Amount: uint128.From64(1_000_000)}, `{"denom":"uatom","amount":"1000000"}`},
			{WireCoin{Denom: "inj", Amount: uint128.Max}, `{"denom":"inj","amount":"` + maxU128 + `"}`},
			{WireCoin{Denom: "ueur"}, `{"denom":"ueur","amount":"0"}`},
		}
		for _, tt := range tests {
			text, err := json.Marshal(tt.w)
			if err != nil {
				t.Errorf("json.Marshal(%v) failed: %v", tt.w, err)
				continue
			}
			if string(text) != tt.want {
				t.Errorf("json.Marshal(%v) = %s, want %s", tt.w, text, tt.want)
			}
			var got WireCoin
			if err := json.Unmarshal(text, &got); err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", text, err)
				continue
			}
			if got != tt.w {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", text, got, tt.w)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"negative": `{"denom":"uatom","amount":"-1"}`,
			"fraction": `{"denom":"uatom","amount":"1.5"}`,
			"empty":    `{"denom":"uatom","amount":""}`,
			"overflow": `{"denom":"uatom","amount":"340282366920938463463374607431768211456"}`,
			"syntax":   `{"denom":`,
		}
		for name, s := range tests {
			var w WireCoin
			if err := json.Unmarshal([]byte(s), &w); err == nil {
				t.Errorf("%v: json.Unmarshal(%s) did not fail", name, s)
			}
		}
	})
}

func TestParseWireCoin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s         string
			wantDenom string
			wantAmt   uint64
		}{
			{"1000000uatom", "uatom", 1_000_000},
			{"0ueur", "ueur", 0},
			{"5ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", 5},
			{"12factory/kujira1abc/uusk", "factory/kujira1abc/uusk", 12},
		}
		for _, tt := range tests {
			got, err := ParseWireCoin(tt.s)
			if err != nil {
				t.Errorf("ParseWireCoin(%q) failed: %v", tt.s, err)
				continue
			}
			want := WireCoin{Denom: tt.wantDenom, Amount: uint128.From64(tt.wantAmt)}
			if got != want {
				t.Errorf("ParseWireCoin(%q) = %v, want %v", tt.s, got, want)
			}
			if got.String() != tt.s {
				t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.s)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "uatom", "1000000", "-1uatom", "340282366920938463463374607431768211456uatom"}
		for _, s := range tests {
			if _, err := ParseWireCoin(s); err == nil {
				t.Errorf("ParseWireCoin(%q) did not fail", s)
			}
		}
	})
}

func TestFromWire(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		w := WireCoin{Denom: "ueur", Amount: uint128.From64(1_000_000)}
		got, err := FromWire(w, EUR{})
		if err != nil {
			t.Fatalf("FromWire(%v, ueur) failed: %v", w, err)
		}
		if got.String() != "1000000ueur" {
			t.Errorf("FromWire(%v, ueur) = %v, want 1000000ueur", w, got)
		}
		if got.ToWire() != w {
			t.Errorf("%v.ToWire() = %v, want %v", got, got.ToWire(), w)
		}
		if got.Denom() != NewImprecise(EUR{}) {
			t.Errorf("%v.Denom() = %v, want %v", got, got.Denom(), NewImprecise(EUR{}))
		}
	})

	t.Run("error", func(t *testing.T) {
		w := WireCoin{Denom: "uusd", Amount: uint128.From64(1_000_000)}
		_, err := FromWire(w, EUR{})
		var mismatch *DenomMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("FromWire(%v, ueur) = %v, want %T", w, err, mismatch)
		}
		if want := (DenomMismatchError{Actual: "uusd", Expected: "ueur"}); *mismatch != want {
			t.Errorf("FromWire(%v, ueur) = %+v, want %+v", w, *mismatch, want)
		}
		if got, want := err.Error(), "denomination mismatch: uusd != ueur"; got != want {
			t.Errorf("FromWire(%v, ueur) = %q, want %q", w, got, want)
		}
	})
}

func TestFromWirePrecise(t *testing.T) {
	p := NewPrecise(USD{}, 6)
	w := WireCoin{Denom: "uusd", Amount: uint128.From64(1_500_000)}
	got, err := FromWirePrecise(w, p)
	if err != nil {
		t.Fatalf("FromWirePrecise(%v, %v) failed: %v", w, p, err)
	}
	if got.Denom() != p {
		t.Errorf("%v.Denom() = %v, want %v", got, got.Denom(), p)
	}
	if want := NewAmountFromUint64[Precise[USD]](1_500_000); got.Amount() != want {
		t.Errorf("%v.Amount() = %v, want %v", got, got.Amount(), want)
	}

	w = WireCoin{Denom: "ueur"}
	if _, err := FromWirePrecise(w, p); err == nil {
		t.Errorf("FromWirePrecise(%v, %v) did not fail", w, p)
	}
}

func TestCoin_Transitions(t *testing.T) {
	w := WireCoin{Denom: "uatom", Amount: uint128.From64(42)}
	imprecise, err := FromWire(w, ATOM{})
	if err != nil {
		t.Fatalf("FromWire(%v, uatom) failed: %v", w, err)
	}

	precise := WithPrecision(imprecise, 6)
	if want := NewPrecise(ATOM{}, 6); precise.Denom() != want {
		t.Errorf("WithPrecision(%v, 6).Denom() = %v, want %v", imprecise, precise.Denom(), want)
	}
	if precise.ToWire() != imprecise.ToWire() {
		t.Errorf("WithPrecision(%v, 6).ToWire() = %v, want %v", imprecise, precise.ToWire(), imprecise.ToWire())
	}
	if got := WithoutPrecision(precise); got != imprecise {
		t.Errorf("WithoutPrecision(%v) = %v, want %v", precise, got, imprecise)
	}

	unverified := WithUnverifiedPrecision(precise)
	if want := NewUnverified(ATOM{}, 6); unverified.Denom() != want {
		t.Errorf("WithUnverifiedPrecision(%v).Denom() = %v, want %v", precise, unverified.Denom(), want)
	}
	verified, err := VerifyCoin(unverified, 6)
	if err != nil {
		t.Fatalf("VerifyCoin(%v, 6) failed: %v", unverified, err)
	}
	if verified != precise {
		t.Errorf("VerifyCoin(%v, 6) = %v, want %v", unverified, verified, precise)
	}
	if _, err := VerifyCoin(unverified, 18); !errors.Is(err, ErrDecimalsMismatch) {
		t.Errorf("VerifyCoin(%v, 18) = %v, want %v", unverified, err, ErrDecimalsMismatch)
	}
}

func TestCoin_Arithmetic(t *testing.T) {
	p := NewPrecise(EUR{}, 6)
	a := NewCoin(p, NewAmountFromUint64[Precise[EUR]](1_000_000))
	b := NewCoin(p, NewAmountFromUint64[Precise[EUR]](80_000))

	t.Run("success", func(t *testing.T) {
		sum, err := a.Add(b)
		if err != nil {
			t.Fatalf("%v.Add(%v) failed: %v", a, b, err)
		}
		if sum.String() != "1080000ueur" {
			t.Errorf("%v.Add(%v) = %v, want 1080000ueur", a, b, sum)
		}
		diff, err := sum.Sub(b)
		if err != nil {
			t.Fatalf("%v.Sub(%v) failed: %v", sum, b, err)
		}
		if diff != a {
			t.Errorf("%v.Sub(%v) = %v, want %v", sum, b, diff, a)
		}
		got, err := a.SubAmount(NewAmountFromUint64[Precise[EUR]](1))
		if err != nil {
			t.Fatalf("%v.SubAmount(1) failed: %v", a, err)
		}
		if got.String() != "999999ueur" {
			t.Errorf("%v.SubAmount(1) = %v, want 999999ueur", a, got)
		}
		if a.IsZero() {
			t.Errorf("%v.IsZero() = true, want false", a)
		}
		if z := NewCoin(p, Amount[Precise[EUR]]{}); !z.IsZero() {
			t.Errorf("%v.IsZero() = false, want true", z)
		}
	})

	t.Run("error", func(t *testing.T) {
		if _, err := b.Sub(a); !errors.Is(err, ErrUnderflow) {
			t.Errorf("%v.Sub(%v) = %v, want %v", b, a, err, ErrUnderflow)
		}
		c := NewCoin(p, MaxAmount[Precise[EUR]]())
		if _, err := c.AddAmount(NewAmountFromUint64[Precise[EUR]](1)); !errors.Is(err, ErrOverflow) {
			t.Errorf("%v.AddAmount(1) = %v, want %v", c, err, ErrOverflow)
		}
	})
}

func TestCoin_Mismatch(t *testing.T) {
	// Coins of the same type can still differ at run time.
	a := NewCoin(NewPrecise(EUR{}, 6), NewAmountFromUint64[Precise[EUR]](1))
	b := NewCoin(NewPrecise(EUR{}, 2), NewAmountFromUint64[Precise[EUR]](1))
	if a.SameDenom(b) {
		t.Errorf("%v.SameDenom(%v) = true, want false", a, b)
	}
	if _, err := a.Add(b); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("%v.Add(%v) = %v, want %v", a, b, err, ErrCurrencyMismatch)
	}
	if _, err := a.Sub(b); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("%v.Sub(%v) = %v, want %v", a, b, err, ErrCurrencyMismatch)
	}

	c := NewCoin(NewImprecise(Unknown("uatom")), NewAmountFromUint64[Imprecise[Unknown]](1))
	d := NewCoin(NewImprecise(Unknown("uosmo")), NewAmountFromUint64[Imprecise[Unknown]](1))
	if _, err := c.Add(d); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("%v.Add(%v) = %v, want %v", c, d, err, ErrCurrencyMismatch)
	}
}

func TestCoin_Coins(t *testing.T) {
	c := NewCoin(NewImprecise(OSMO{}), NewAmountFromUint64[Imprecise[OSMO]](7))
	want := []WireCoin{{Denom: "uosmo", Amount: uint128.From64(7)}}
	if got := c.Coins(); !slices.Equal(got, want) {
		t.Errorf("%v.Coins() = %v, want %v", c, got, want)
	}
}
