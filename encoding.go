// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
)

var (
	cborEncMode = mustEncMode()
)

func mustEncMode() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// valueWire is a value on the wire: its format in the canonical form, and ulps.
type valueWire struct {
	_    struct{} `cbor:",toarray"`
	Fmt  string   `json:"fmt"`
	Ulps int64    `json:"ulps"`
}

// MarshalText returns the canonical form of the format.
func (f *Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText parses a format string into f.
// Formats are immutable, so f must not be shared with any values yet.
func (f *Format) UnmarshalText(data []byte) error {
	parsed, err := ParseFormat(string(data))
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}

// MarshalCBOR encodes the format as a CBOR text string.
func (f *Format) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(f.String())
}

// UnmarshalCBOR decodes a CBOR text string into f.
func (f *Format) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return FormatError.Wrap(err)
	}
	return f.UnmarshalText([]byte(s))
}

func (v Value) toWire() (valueWire, error) {
	if v.fmt == nil {
		return valueWire{}, ValidationError.New("value has no format")
	}
	return valueWire{Fmt: v.fmt.String(), Ulps: v.ulps}, nil
}

func (v *Value) fromWire(w valueWire) error {
	f, err := ParseFormat(w.Fmt)
	if err != nil {
		return err
	}
	*v = f.Ulps(w.Ulps)
	return nil
}

// MarshalJSON marshals the value as an object, like `{"fmt":"1.31s","ulps":1073741824}`.
func (v Value) MarshalJSON() ([]byte, error) {
	w, err := v.toWire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalJSON unmarshals an object produced by MarshalJSON.
// Every decoded value gets its own format.
func (v *Value) UnmarshalJSON(data []byte) error {
	var w valueWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return v.fromWire(w)
}

// MarshalCBOR encodes the value as a two-element array: [format, ulps].
func (v Value) MarshalCBOR() ([]byte, error) {
	w, err := v.toWire()
	if err != nil {
		return nil, err
	}
	return cborEncMode.Marshal(w)
}

// UnmarshalCBOR decodes a value produced by MarshalCBOR.
func (v *Value) UnmarshalCBOR(data []byte) error {
	var w valueWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}
	return v.fromWire(w)
}
