// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedness(signed bool) string {
	if signed {
		return "s"
	}
	return "u"
}

func TestParseFormatAllWidths(t *testing.T) {
	a := assert.New(t)
	for n := 1; n < 32; n++ {
		for m := 1; m < 32; m++ {
			for _, signed := range []bool{false, true} {
				s := fmt.Sprintf("%d.%d%s", n, m, signedness(signed))
				integral, fractional, sgn, err := parseFormat(s)
				if a.NoError(err, s) {
					a.Equal(n, integral, s)
					a.Equal(m, fractional, s)
					a.Equal(signed, sgn, s)
				}
			}
		}
	}
}

func TestFormatRoundtrip(t *testing.T) {
	a := assert.New(t)
	for n := 1; n < 32; n++ {
		for m := 1; m < 32; m++ {
			for _, signed := range []bool{false, true} {
				s := fmt.Sprintf("%d.%d%s", n, m, signedness(signed))
				f, err := ParseFormat(s)
				if a.NoError(err, s) {
					a.Equal(s, f.String())
				}
			}
		}
	}
}

func TestParseFormatErrors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		pos int
	}{
		{".1s", 1},
		{"1", 2},
		{"1,1s", 2},
		{"1.s", 3},
		{"1.1", 4},
		{"1.1x", 4},
		{"1.1S", 4},
		{"1.1ss", 5},
		{" 1.1s", 1},
		{"1.1s ", 5},
		{"-1.1s", 1},
		{"1.+1s", 3},
		{"1.1.1s", 4},
		{"١.1s", 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := ParseFormat(test.s)
			if a.Error(err) {
				a.True(FormatError.Has(err), err.Error())
				var pe *posError
				if a.True(errors.As(err, &pe)) {
					a.Equal(test.pos, pe.pos)
				}
			}
		})
	}
	_, err := ParseFormat("")
	a.True(FormatError.Has(err))
}

func TestParseFormatRange(t *testing.T) {
	a := assert.New(t)
	tests := []string{
		"99999999999999999999999.1s",
		"1.99999999999999999999999u",
		"63.0u",
		"0.63u",
		"31.32s",
		"32.32s",
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := ParseFormat(test)
			if a.Error(err) {
				a.True(ValidationError.Has(err), err.Error())
				a.False(FormatError.Has(err), err.Error())
			}
		})
	}
}

func TestNewFormat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		integral, fractional int
		signed               bool
		width                int
		scale                int64
		maxUlps, minUlps     int64
		err                  bool
	}{
		{1, 31, true, 32, 1 << 31, 1<<31 - 1, -1 << 31, false},
		{1, 7, false, 8, 128, 255, 0, false},
		{8, 0, true, 8, 1, 127, -128, false},
		{0, 8, false, 8, 256, 255, 0, false},
		{0, 0, false, 0, 1, 0, 0, false},
		{0, 1, true, 1, 2, 0, -1, false},
		{31, 31, true, 62, 1 << 31, 1<<61 - 1, -1 << 61, false},
		{31, 31, false, 62, 1 << 31, 1<<62 - 1, 0, false},
		{0, 62, false, 62, 1 << 62, 1<<62 - 1, 0, false},
		{0, 0, true, 0, 0, 0, 0, true},
		{-1, 1, true, 0, 0, 0, 0, true},
		{1, -1, false, 0, 0, 0, 0, true},
		{32, 31, true, 0, 0, 0, 0, true},
		{math.MaxInt64, 1, true, 0, 0, 0, 0, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := NewFormat(test.integral, test.fractional, test.signed)
			if test.err {
				if a.Error(err) {
					a.True(ValidationError.Has(err), err.Error())
				}
				return
			}
			if !a.NoError(err) {
				return
			}
			a.Equal(test.integral, f.Integral())
			a.Equal(test.fractional, f.Fractional())
			a.Equal(test.signed, f.Signed())
			a.Equal(test.width, f.Width())
			a.Equal(test.scale, f.Scale())
			a.Equal(test.maxUlps, f.MostPositiveUlps())
			a.Equal(test.minUlps, f.MostNegativeUlps())
			a.Equal(1/float64(test.scale), f.UlpSize())
		})
	}
}

func TestUS(t *testing.T) {
	a := assert.New(t)
	u, err := U(1, 7)
	require.NoError(t, err)
	a.Equal("1.7u", u.String())
	s, err := S(1, 31)
	require.NoError(t, err)
	a.Equal("1.31s", s.String())
	a.True(s.Equal(MustParseFormat("1.31s")))
	a.False(s.Equal(u))
	a.False(s.Equal(nil))
	_, err = S(-1, 2)
	a.True(ValidationError.Has(err))
	a.Panics(func() { MustParseFormat("1.1") })
	a.Panics(func() { MustNewFormat(-1, 0, false) })
}

func TestRepresentable(t *testing.T) {
	a := assert.New(t)
	for i, s := range []string{"1.31s", "1.7u", "8.8s", "0.8u", "31.31s", "31.31u", "0.1s"} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f := MustParseFormat(s)
			a.True(f.Representable(f.MostNegativeUlps()))
			a.True(f.Representable(f.MostPositiveUlps()))
			a.True(f.Representable(0))
			a.False(f.Representable(f.MostPositiveUlps() + 1))
			a.False(f.Representable(f.MostNegativeUlps() - 1))
			a.True(f.MostPositive().Representable())
			a.True(f.MostNegative().Representable())
		})
	}
}

func TestConstants(t *testing.T) {
	a := assert.New(t)
	f := MustNewFormat(1, 31, true)
	a.Equal(int64(0), f.Zero().Ulps())
	a.Equal(int64(1), f.Ulp().Ulps())
	a.Equal(int64(1<<31), f.One().Ulps())
	half, err := f.Half()
	require.NoError(t, err)
	a.Equal(int64(1<<30), half.Ulps())
	a.Equal(int64(1<<31-1), f.MostPositive().Ulps())
	a.Equal(int64(-1<<31), f.MostNegative().Ulps())
	a.Same(f, f.One().Format())
	a.Equal(int64(42), f.Ulps(42).Ulps())
	a.Equal(int64(1<<40), f.Ulps(1<<40).Ulps())
	a.False(f.One().Representable())

	_, err = MustParseFormat("8.0s").Half()
	a.True(ValidationError.Has(err))
	half, err = MustParseFormat("8.1u").Half()
	require.NoError(t, err)
	a.Equal(int64(1), half.Ulps())
}

func TestCheckedUlps(t *testing.T) {
	a := assert.New(t)
	f := MustParseFormat("4.4s")
	v, err := f.CheckedUlps(127)
	if a.NoError(err) {
		a.Equal(int64(127), v.Ulps())
	}
	_, err = f.CheckedUlps(128)
	a.True(OverflowError.Has(err))
	_, err = f.CheckedUlps(-129)
	a.True(OverflowError.Has(err))
}

func TestFromInt(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f    string
		n    int64
		ulps int64
		err  bool
	}{
		{"4.4s", 0, 0, false},
		{"4.4s", 7, 112, false},
		{"4.4s", -8, -128, false},
		{"4.4s", 8, 0, true},
		{"4.4s", -9, 0, true},
		{"4.4u", 15, 240, false},
		{"4.4u", -1, 0, true},
		{"0.4s", 0, 0, false},
		{"0.4s", -1, 0, true},
		{"0.4u", 1, 0, true},
		{"31.31s", 1<<30 - 1, (1<<30 - 1) << 31, false},
		{"31.31s", -1 << 30, -1 << 61, false},
		{"31.31s", math.MaxInt64, 0, true},
		{"31.31s", math.MinInt64, 0, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := MustParseFormat(test.f).FromInt(test.n)
			if test.err {
				a.True(OverflowError.Has(err))
				return
			}
			if a.NoError(err) {
				a.Equal(test.ulps, v.Ulps())
				a.Equal(test.n, v.Int())
			}
		})
	}
}

func TestDesc(t *testing.T) {
	a := assert.New(t)
	a.Equal("width: 8, composed of 4.4\nscale: 16\nulp size: 0.0625", MustParseFormat("4.4u").Desc())
	a.Equal("width: 32, composed of 1.31\nscale: 2147483648\nulp size: 4.656612873077393e-10", MustParseFormat("1.31s").Desc())
	a.Equal(MustParseFormat("8.8u").Desc(), MustParseFormat("8.8s").Desc())
}

func BenchmarkParseFormat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ParseFormat("16.16s"); err != nil {
			b.Fatal(err)
		}
	}
}
