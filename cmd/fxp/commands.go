package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/avdva/fxp"
)

// formatReport describes a format and its extrema.
type formatReport struct {
	Format       *fxp.Format `json:"format" cbor:"format"`
	Width        int         `json:"width" cbor:"width"`
	Scale        int64       `json:"scale" cbor:"scale"`
	UlpSize      float64     `json:"ulp_size" cbor:"ulp_size"`
	MostPositive fxp.Value   `json:"most_positive" cbor:"most_positive"`
	MostNegative fxp.Value   `json:"most_negative" cbor:"most_negative"`
}

type constsReport struct {
	Zero         fxp.Value  `json:"zero" cbor:"zero"`
	Ulp          fxp.Value  `json:"ulp" cbor:"ulp"`
	One          fxp.Value  `json:"one" cbor:"one"`
	Half         *fxp.Value `json:"half,omitempty" cbor:"half,omitempty"`
	MostPositive fxp.Value  `json:"most_positive" cbor:"most_positive"`
	MostNegative fxp.Value  `json:"most_negative" cbor:"most_negative"`
}

type checkReport struct {
	Value         fxp.Value `json:"value" cbor:"value"`
	Representable bool      `json:"representable" cbor:"representable"`
}

type convertReport struct {
	Value  fxp.Value   `json:"value" cbor:"value"`
	Kind   string      `json:"kind" cbor:"kind"`
	Result interface{} `json:"result" cbor:"result"`
}

func parseFormat(g *Globals, logger *slog.Logger) (*fxp.Format, error) {
	f, err := fxp.ParseFormat(g.Format)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed format", "format", f.String(), "width", f.Width(), "scale", f.Scale())
	return f, nil
}

// DescCmd prints the description of a format.
type DescCmd struct{}

func (c *DescCmd) Run(g *Globals, logger *slog.Logger, p *printer) error {
	f, err := parseFormat(g, logger)
	if err != nil {
		return err
	}
	report := formatReport{
		Format:       f,
		Width:        f.Width(),
		Scale:        f.Scale(),
		UlpSize:      f.UlpSize(),
		MostPositive: f.MostPositive(),
		MostNegative: f.MostNegative(),
	}
	return p.print(report, func() string {
		return fmt.Sprintf("%s\nmost positive: %v\nmost negative: %v", f.Desc(), report.MostPositive, report.MostNegative)
	})
}

// ConstsCmd prints zero, ulp, one, half and the extrema of a format.
type ConstsCmd struct{}

func (c *ConstsCmd) Run(g *Globals, logger *slog.Logger, p *printer) error {
	f, err := parseFormat(g, logger)
	if err != nil {
		return err
	}
	report := constsReport{
		Zero:         f.Zero(),
		Ulp:          f.Ulp(),
		One:          f.One(),
		MostPositive: f.MostPositive(),
		MostNegative: f.MostNegative(),
	}
	if half, err := f.Half(); err == nil {
		report.Half = &half
	} else {
		logger.Debug("no half", "format", f.String(), "err", err)
	}
	if !report.One.Representable() {
		logger.Warn("one is not representable", "format", f.String())
	}
	return p.print(report, func() string {
		var b strings.Builder
		fmt.Fprintf(&b, "zero: %v\nulp: %v\none: %v\n", report.Zero, report.Ulp, report.One)
		if report.Half != nil {
			fmt.Fprintf(&b, "half: %v\n", *report.Half)
		}
		fmt.Fprintf(&b, "most positive: %v\nmost negative: %v", report.MostPositive, report.MostNegative)
		return b.String()
	})
}

// CheckCmd reports whether an ulp count is representable.
type CheckCmd struct {
	Ulps int64 `arg:"" help:"Raw unit count."`
}

func (c *CheckCmd) Run(g *Globals, logger *slog.Logger, p *printer) error {
	f, err := parseFormat(g, logger)
	if err != nil {
		return err
	}
	report := checkReport{Value: f.Ulps(c.Ulps), Representable: f.Representable(c.Ulps)}
	return p.print(report, func() string {
		return fmt.Sprintf("%v representable: %t", report.Value, report.Representable)
	})
}

// NegCmd negates a value.
type NegCmd struct {
	Ulps int64 `arg:"" help:"Raw unit count."`
}

func (c *NegCmd) Run(g *Globals, logger *slog.Logger, p *printer) error {
	f, err := parseFormat(g, logger)
	if err != nil {
		return err
	}
	v := f.Ulps(c.Ulps)
	if !v.Representable() {
		logger.Warn("negating a value out of range", "value", v.String())
	}
	res, err := v.Neg()
	if err != nil {
		return err
	}
	return p.print(res, res.String)
}

// ConvertCmd converts a value to another kind.
type ConvertCmd struct {
	Ulps int64  `arg:"" help:"Raw unit count."`
	To   string `short:"t" enum:"int,float,decimal" default:"float" help:"Target kind (int, float, decimal)."`
}

var kinds = map[string]fxp.Kind{
	fxp.KindInt.String():     fxp.KindInt,
	fxp.KindFloat.String():   fxp.KindFloat,
	fxp.KindDecimal.String(): fxp.KindDecimal,
}

func (c *ConvertCmd) Run(g *Globals, logger *slog.Logger, p *printer) error {
	f, err := parseFormat(g, logger)
	if err != nil {
		return err
	}
	kind, ok := kinds[c.To]
	if !ok {
		return fxp.ConversionError.New("unknown kind %q", c.To)
	}
	v := f.Ulps(c.Ulps)
	res, err := v.As(kind)
	if err != nil {
		return err
	}
	logger.Debug("converted", "value", v.String(), "kind", kind.String())
	report := convertReport{Value: v, Kind: kind.String(), Result: res}
	if kind == fxp.KindDecimal {
		// decimals go on the wire as exact strings.
		report.Result = v.Decimal().String()
	}
	return p.print(report, func() string {
		return fmt.Sprint(report.Result)
	})
}
