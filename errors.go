// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error classes returned by the package. Use Class.Has to test an error's kind.
var (
	// FormatError is returned when a format string does not match <digits>.<digits>(s|u).
	FormatError = errs.Class("format")
	// ValidationError is returned for bit counts a Format cannot be built from.
	ValidationError = errs.Class("validation")
	// ConversionError is returned when a value is converted to an unsupported kind.
	ConversionError = errs.Class("conversion")
	// DomainError is returned when an operation is undefined for the value's format.
	DomainError = errs.Class("domain")
	// OverflowError is returned when a result is not representable by its format.
	OverflowError = errs.Class("overflow")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}
