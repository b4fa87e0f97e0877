// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fxp implements binary fixed-point numbers.
//
// A Format describes the layout of a number: integral bits, fractional bits,
// and signedness. A Value is an integer count of ulps (units in the last
// place, 2^-fractional each) interpreted under a Format.
// Formats are immutable and may be shared between goroutines.
package fxp

import (
	"strconv"
	"strings"

	"github.com/avdva/fxp/internal/mathutil"
)

// MaxWidth is the widest supported format, in bits.
// For formats up to this width every derived quantity and the negation of
// any representable count fit an int64.
// Wider layouts, such as 32.32s, are rejected with ValidationError.
const MaxWidth = 62

// Format is an immutable description of a fixed-point layout.
type Format struct {
	integral   int
	fractional int
	signed     bool

	width   int
	scale   int64
	maxUlps int64
	minUlps int64
}

// NewFormat returns a format with given integral and fractional bit counts.
// Bit counts must be non-negative, the total width must not exceed MaxWidth,
// and signed formats need at least one bit for the sign.
func NewFormat(integral, fractional int, signed bool) (*Format, error) {
	if integral < 0 || fractional < 0 {
		return nil, ValidationError.New("negative bit count: %d.%d", integral, fractional)
	}
	if integral > MaxWidth || fractional > MaxWidth || integral+fractional > MaxWidth {
		return nil, ValidationError.New("width %d.%d exceeds %d bits", integral, fractional, MaxWidth)
	}
	f := &Format{
		integral:   integral,
		fractional: fractional,
		signed:     signed,
		width:      integral + fractional,
		scale:      mathutil.Pow2(fractional),
	}
	if signed {
		if f.width == 0 {
			return nil, ValidationError.New("signed format %s has no bits", f)
		}
		f.maxUlps = mathutil.Pow2(f.width-1) - 1
		f.minUlps = -mathutil.Pow2(f.width - 1)
	} else {
		f.maxUlps = mathutil.Pow2(f.width) - 1
	}
	return f, nil
}

// ParseFormat parses a format string like "1.31s" or "8.8u".
func ParseFormat(s string) (*Format, error) {
	integral, fractional, signed, err := parseFormat(s)
	if err != nil {
		return nil, err
	}
	return NewFormat(integral, fractional, signed)
}

// MustParseFormat is like ParseFormat, but panics on error.
func MustParseFormat(s string) *Format {
	f, err := ParseFormat(s)
	if err != nil {
		panic(err)
	}
	return f
}

// MustNewFormat is like NewFormat, but panics on error.
func MustNewFormat(integral, fractional int, signed bool) *Format {
	f, err := NewFormat(integral, fractional, signed)
	if err != nil {
		panic(err)
	}
	return f
}

// U returns an unsigned format.
func U(integral, fractional int) (*Format, error) {
	return NewFormat(integral, fractional, false)
}

// S returns a signed format.
func S(integral, fractional int) (*Format, error) {
	return NewFormat(integral, fractional, true)
}

func (f *Format) Integral() int   { return f.integral }
func (f *Format) Fractional() int { return f.fractional }
func (f *Format) Signed() bool    { return f.signed }

// Width returns integral + fractional bits.
func (f *Format) Width() int { return f.width }

// Scale returns 2^fractional, the number of ulps in 1.
func (f *Format) Scale() int64 { return f.scale }

// UlpSize returns the real value of a single ulp.
func (f *Format) UlpSize() float64 { return 1 / float64(f.scale) }

// MostPositiveUlps returns the largest representable ulp count.
func (f *Format) MostPositiveUlps() int64 { return f.maxUlps }

// MostNegativeUlps returns the smallest representable ulp count.
func (f *Format) MostNegativeUlps() int64 { return f.minUlps }

// Ulp returns the smallest positive value.
func (f *Format) Ulp() Value {
	return f.Ulps(1)
}

// Ulps returns a value of n ulps. n is not range-checked, see CheckedUlps.
func (f *Format) Ulps(n int64) Value {
	return Value{ulps: n, fmt: f}
}

// CheckedUlps returns a value of n ulps, or an error if n is not representable.
func (f *Format) CheckedUlps(n int64) (Value, error) {
	if !f.Representable(n) {
		return Value{}, OverflowError.New("%d ulps out of bounds for %s", n, f)
	}
	return f.Ulps(n), nil
}

// FromInt returns the value equal to integer n.
func (f *Format) FromInt(n int64) (Value, error) {
	if n < mathutil.CeilDivPow2(f.minUlps, f.fractional) || n > mathutil.FloorDivPow2(f.maxUlps, f.fractional) {
		return Value{}, OverflowError.New("%d out of bounds for %s", n, f)
	}
	return f.Ulps(n << uint(f.fractional)), nil
}

// Zero returns 0.
func (f *Format) Zero() Value {
	return f.Ulps(0)
}

// One returns 1. It may not be representable, for example in a 0.8u format.
func (f *Format) One() Value {
	return f.Ulps(f.scale)
}

// Half returns 1/2. Formats without fractional bits return an error.
func (f *Format) Half() (Value, error) {
	if f.fractional == 0 {
		return Value{}, ValidationError.New("%s has no fractional bits for 1/2", f)
	}
	return f.Ulps(f.scale >> 1), nil
}

// MostPositive returns the largest representable value.
func (f *Format) MostPositive() Value {
	return f.Ulps(f.maxUlps)
}

// MostNegative returns the smallest representable value.
func (f *Format) MostNegative() Value {
	return f.Ulps(f.minUlps)
}

// Representable returns true if ulps is within [MostNegativeUlps, MostPositiveUlps].
func (f *Format) Representable(ulps int64) bool {
	return ulps >= f.minUlps && ulps <= f.maxUlps
}

// Equal returns true if both formats have the same layout.
func (f *Format) Equal(other *Format) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.integral == other.integral && f.fractional == other.fractional && f.signed == other.signed
}

// String returns the canonical form, which ParseFormat accepts.
func (f *Format) String() string {
	var builder strings.Builder
	f.writeToStringsBuilder(&builder)
	return builder.String()
}

func (f *Format) writeToStringsBuilder(builder *strings.Builder) {
	builder.WriteString(strconv.Itoa(f.integral))
	builder.WriteRune(delim)
	builder.WriteString(strconv.Itoa(f.fractional))
	if f.signed {
		builder.WriteByte(signedMark)
	} else {
		builder.WriteByte(unsignedMark)
	}
}

// Desc returns a human-readable description of the format.
func (f *Format) Desc() string {
	var builder strings.Builder
	builder.WriteString("width: ")
	builder.WriteString(strconv.Itoa(f.width))
	builder.WriteString(", composed of ")
	builder.WriteString(strconv.Itoa(f.integral))
	builder.WriteRune(delim)
	builder.WriteString(strconv.Itoa(f.fractional))
	builder.WriteString("\nscale: ")
	builder.WriteString(strconv.FormatInt(f.scale, 10))
	builder.WriteString("\nulp size: ")
	builder.WriteString(strconv.FormatFloat(f.UlpSize(), 'g', -1, 64))
	return builder.String()
}
