package monetary

import (
	"errors"
	"fmt"
	"testing"
)

func TestPrecision_Interfaces(t *testing.T) {
	var i any = NewPrecise(USD{}, 6)
	if _, ok := i.(Precision); !ok {
		t.Errorf("%T does not implement Precision", i)
	}
	i = NewImprecise(USD{})
	if _, ok := i.(Precision); !ok {
		t.Errorf("%T does not implement Precision", i)
	}
	i = NewUnverified(USD{}, 6)
	if _, ok := i.(fmt.Stringer); !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
}

func TestPrecision_String(t *testing.T) {
	tests := []struct {
		p    Precision
		want string
	}{
		{NewPrecise(USD{}, 6), "uusd(6)"},
		{NewPrecise(EVMOS{}, 18), "aevmos(18)"},
		{NewImprecise(USD{}), "uusd"},
		{NewUnverified(USD{}, 6), "uusd(6?)"},
		{NewUnverified(Unknown("ibc/ABC"), 0), "ibc/ABC(0?)"},
	}
	for _, tt := range tests {
		got := fmt.Sprint(tt.p)
		if got != tt.want {
			t.Errorf("fmt.Sprint(%T) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestPrecision_Transitions(t *testing.T) {
	p := NewPrecise(EUR{}, 6)

	i := p.IntoImprecise()
	if got := i.Denom(); got != "ueur" {
		t.Errorf("%v.IntoImprecise().Denom() = %q, want \"ueur\"", p, got)
	}
	if got := i.IntoPrecise(6); got != p {
		t.Errorf("%v.IntoPrecise(6) = %v, want %v", i, got, p)
	}

	u := p.IntoUnverified()
	if got := u.Decimals(); got != 6 {
		t.Errorf("%v.IntoUnverified().Decimals() = %v, want 6", p, got)
	}
	if got := i.IntoUnverified(6); got != u {
		t.Errorf("%v.IntoUnverified(6) = %v, want %v", i, got, u)
	}
	if got := u.Trust(); got != p {
		t.Errorf("%v.Trust() = %v, want %v", u, got, p)
	}
	if got := u.IntoImprecise(); got != i {
		t.Errorf("%v.IntoImprecise() = %v, want %v", u, got, i)
	}
	if got := p.Currency(); got != (EUR{}) {
		t.Errorf("%v.Currency() = %v, want EUR{}", p, got)
	}
}

func TestUnverified_Verify(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		u := NewUnverified(USD{}, 6)
		got, err := u.Verify(6)
		if err != nil {
			t.Fatalf("%v.Verify(6) failed: %v", u, err)
		}
		if want := NewPrecise(USD{}, 6); got != want {
			t.Errorf("%v.Verify(6) = %v, want %v", u, got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		u := NewUnverified(USD{}, 6)
		_, err := u.Verify(2)
		if !errors.Is(err, ErrDecimalsMismatch) {
			t.Errorf("%v.Verify(2) = %v, want %v", u, err, ErrDecimalsMismatch)
		}
	})
}

func TestPrecision_decimals(t *testing.T) {
	tests := []struct {
		p            Precision
		wantDec      uint8
		wantOk       bool
		wantVerified bool
	}{
		{NewPrecise(USD{}, 6), 6, true, true},
		{NewUnverified(USD{}, 2), 2, true, false},
		{NewImprecise(USD{}), 0, false, false},
	}
	for _, tt := range tests {
		dec, ok := tt.p.decimals()
		if dec != tt.wantDec || ok != tt.wantOk {
			t.Errorf("%v.decimals() = (%v, %v), want (%v, %v)", tt.p, dec, ok, tt.wantDec, tt.wantOk)
		}
		if got := tt.p.verified(); got != tt.wantVerified {
			t.Errorf("%v.verified() = %v, want %v", tt.p, got, tt.wantVerified)
		}
	}
}

func TestSameTag(t *testing.T) {
	tests := []struct {
		p, q Unverified[Unknown]
		want bool
	}{
		{NewUnverified(Unknown("uusd"), 6), NewUnverified(Unknown("uusd"), 6), true},
		{NewUnverified(Unknown("uusd"), 6), NewUnverified(Unknown("uusd"), 2), false},
		{NewUnverified(Unknown("uusd"), 6), NewUnverified(Unknown("ueur"), 6), false},
	}
	for _, tt := range tests {
		got := sameTag(tt.p, tt.q)
		if got != tt.want {
			t.Errorf("sameTag(%v, %v) = %v, want %v", tt.p, tt.q, got, tt.want)
		}
	}
}
