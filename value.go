// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"strconv"
	"strings"

	"github.com/avdva/fxp/internal/mathutil"
	"github.com/shopspring/decimal"
)

// Kind is a conversion target for Value.As.
type Kind int

const (
	// KindInt converts to an int64, rounding towards negative infinity.
	KindInt Kind = iota
	// KindFloat converts to a float64.
	KindFloat
	// KindDecimal converts to an exact decimal.Decimal.
	KindDecimal
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a number of ulps interpreted under a Format.
// The ulp count is not required to be representable by the format,
// use Representable to check it.
// Values do not own their formats, many values may share one.
// The zero Value has no format and must not be used.
type Value struct {
	ulps int64
	fmt  *Format
}

// NewValue returns a value of ulps units of f.
func NewValue(ulps int64, f *Format) Value {
	return f.Ulps(ulps)
}

// Ulps returns the raw unit count.
func (v Value) Ulps() int64 { return v.ulps }

// Format returns the value's format.
func (v Value) Format() *Format { return v.fmt }

// Representable returns true if the value is within its format's range.
func (v Value) Representable() bool {
	return v.fmt.Representable(v.ulps)
}

// As converts the value to the given kind.
// The result is an int64, a float64, or a decimal.Decimal.
func (v Value) As(kind Kind) (interface{}, error) {
	switch kind {
	case KindInt:
		return v.Int(), nil
	case KindFloat:
		return v.Float64(), nil
	case KindDecimal:
		return v.Decimal(), nil
	default:
		return nil, ConversionError.New("cannot convert %s to %v", v, kind)
	}
}

// Int returns the integer part of the value, rounded towards negative infinity.
// So, for a 4.4s format, -1.5 becomes -2, not -1.
func (v Value) Int() int64 {
	return mathutil.FloorDivPow2(v.ulps, v.fmt.fractional)
}

// Float64 returns the value as a float64.
// Precision may be lost for values wider than 53 bits.
func (v Value) Float64() float64 {
	return float64(v.ulps) / float64(v.fmt.scale)
}

// Decimal returns the exact decimal value.
func (v Value) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(mathutil.ScaledPow5(v.ulps, v.fmt.fractional), -int32(v.fmt.fractional))
}

// Text returns the value as a decimal string with prec digits after the point.
// Halves are rounded away from zero, so -0.0625 becomes "-0.063" for prec = 3.
func (v Value) Text(prec int32) string {
	return v.Decimal().StringFixed(prec)
}

// Neg returns -v.
// Unsigned values cannot be negated. The most negative value of a signed
// format has no positive counterpart, so negating it overflows.
func (v Value) Neg() (Value, error) {
	if !v.fmt.signed {
		return Value{}, DomainError.New("cannot negate an unsigned value %s", v)
	}
	ulps := -v.ulps
	if !v.fmt.Representable(ulps) {
		return Value{}, OverflowError.New("negating %s puts the result out of bounds for %s", v, v.fmt)
	}
	return v.fmt.Ulps(ulps), nil
}

// String returns a debug representation, like `<fxp/1.31s #1073741824 ≈ 0.5>`.
func (v Value) String() string {
	if v.fmt == nil {
		return "<fxp/nil #" + strconv.FormatInt(v.ulps, 10) + ">"
	}
	var builder strings.Builder
	builder.WriteString("<fxp/")
	v.fmt.writeToStringsBuilder(&builder)
	builder.WriteString(" #")
	builder.WriteString(strconv.FormatInt(v.ulps, 10))
	builder.WriteString(" ≈ ")
	builder.WriteString(strconv.FormatFloat(v.Float64(), 'g', -1, 64))
	builder.WriteRune('>')
	return builder.String()
}
