// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import "golang.org/x/exp/constraints"

// ToFloat converts v to a float type.
func ToFloat[T constraints.Float](v Value) T {
	return T(v.ulps) / T(v.fmt.scale)
}

// ToInt converts v to an integer type, rounding towards negative infinity.
// Returns an error if the result does not fit T.
func ToInt[T constraints.Integer](v Value) (T, error) {
	i := v.Int()
	t := T(i)
	if int64(t) != i || (t < 0) != (i < 0) {
		return 0, OverflowError.New("%d does not fit %T", i, t)
	}
	return t, nil
}
