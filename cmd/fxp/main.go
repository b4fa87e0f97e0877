// Command fxp inspects binary fixed-point formats and values.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// CLI defines the fxp command-line interface.
type CLI struct {
	Globals

	Desc    DescCmd    `cmd:"" help:"Describe a format."`
	Consts  ConstsCmd  `cmd:"" help:"Print the canonical constants of a format."`
	Check   CheckCmd   `cmd:"" help:"Check whether an ulp count is representable."`
	Neg     NegCmd     `cmd:"" help:"Negate a value."`
	Convert ConvertCmd `cmd:"" help:"Convert a value to an integer, a float, or a decimal."`
}

// Globals are flags shared by all commands.
type Globals struct {
	Format  string `short:"f" required:"" env:"FXP_FORMAT" help:"Format, like 1.31s or 8.8u."`
	Output  string `short:"o" enum:"text,json,cbor-hex" default:"text" help:"Output encoding (text, json, cbor-hex)."`
	Verbose bool   `short:"v" help:"Enable verbose diagnostics."`
}

func newParser(cli *CLI, stdout, stderr io.Writer, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("fxp"),
		kong.Description("Inspect binary fixed-point formats and values."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, os.Stdout, os.Stderr)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	ctx.FatalIfErrorf(run(ctx, &cli))
}

func run(ctx *kong.Context, cli *CLI) error {
	logger := newLogger(ctx.Stderr, cli.Verbose)
	p := &printer{w: ctx.Stdout, mode: cli.Output}
	return ctx.Run(&cli.Globals, logger, p)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
