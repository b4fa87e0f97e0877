package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

const (
	outputText    = "text"
	outputJSON    = "json"
	outputCBORHex = "cbor-hex"
)

// printer writes command results in the selected output encoding.
type printer struct {
	w    io.Writer
	mode string
}

func (p *printer) print(v interface{}, text func() string) error {
	switch p.mode {
	case outputJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.w, string(data))
		return err
	case outputCBORHex:
		data, err := cbor.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.w, hex.EncodeToString(data))
		return err
	default:
		_, err := fmt.Fprintln(p.w, text())
		return err
	}
}
