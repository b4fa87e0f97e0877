// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"fmt"
	"strconv"
)

const (
	delim        = '.'
	signedMark   = 's'
	unsignedMark = 'u'
)

// parseFormat splits a format string of the form <digits>.<digits>(s|u)
// into its fields. Bit counts are not range-checked beyond fitting an int.
func parseFormat(s string) (integral, fractional int, signed bool, err error) {
	if len(s) == 0 {
		return 0, 0, false, FormatError.New("empty input")
	}
	intEnd := scanDigits(s, 0)
	if intEnd == 0 {
		return 0, 0, false, formatPosError(s, "expected integral bits", 0)
	}
	if intEnd == len(s) || s[intEnd] != delim {
		return 0, 0, false, formatPosError(s, "expected delimiter", intEnd)
	}
	fracEnd := scanDigits(s, intEnd+1)
	if fracEnd == intEnd+1 {
		return 0, 0, false, formatPosError(s, "expected fractional bits", fracEnd)
	}
	if fracEnd == len(s) {
		return 0, 0, false, formatPosError(s, "expected signedness", fracEnd)
	}
	switch s[fracEnd] {
	case signedMark:
		signed = true
	case unsignedMark:
	default:
		return 0, 0, false, formatPosError(s, fmt.Sprintf("unexpected symbol %q", s[fracEnd]), fracEnd)
	}
	if fracEnd+1 != len(s) {
		return 0, 0, false, formatPosError(s, "unexpected trailing symbols", fracEnd+1)
	}
	if integral, err = parseBits(s[:intEnd]); err != nil {
		return 0, 0, false, err
	}
	if fractional, err = parseBits(s[intEnd+1 : fracEnd]); err != nil {
		return 0, 0, false, err
	}
	return integral, fractional, signed, nil
}

// scanDigits returns the index of the first non-digit byte in s at or after from.
func scanDigits(s string, from int) int {
	i := from
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	return i
}

func parseBits(digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, ValidationError.New("bit count %s out of range", digits)
	}
	return n, nil
}

// formatPosError reports an error at a zero-based offset; positions are shown starting from 1.
func formatPosError(s, msg string, offset int) error {
	return FormatError.Wrap(fmt.Errorf("invalid format %q: %w", s, newPosError(msg, offset+1)))
}
