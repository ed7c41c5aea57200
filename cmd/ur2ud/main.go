// Command ur2ud reads romanized Indic text (ISO 15919 by default, IAST
// with --scheme iast) from standard input and writes Devanagari to
// standard output. It is a plain filter: nothing is logged on success and
// the exit code is non-zero only for flag or I/O failures.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jusunglee/ur2ud/internal/devanagari"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/text/transform"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("ur2ud")
	var (
		schemeName  = fs.StringEnumLong("scheme", "romanization convention of the input", "iso15919", "iast")
		numerals    = fs.BoolLong("numerals", "convert decimal digits to Devanagari numerals")
		showVersion = fs.BoolLong("version", "print version and exit")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		if errors.Is(err, ff.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *showVersion {
		fmt.Println("ur2ud " + version)
		return nil
	}

	scheme, err := devanagari.ParseScheme(*schemeName)
	if err != nil {
		return err
	}

	var opts []devanagari.Option
	if *numerals {
		opts = append(opts, devanagari.WithNumerals())
	}
	tr := devanagari.New(scheme, opts...)

	// Stream rather than slurp: the transformer keeps only a grapheme's
	// worth of lookahead, so input size is unbounded.
	in := transform.NewReader(os.Stdin, tr.Transformer())
	if _, err := io.Copy(os.Stdout, in); err != nil {
		return fmt.Errorf("transliterating stdin: %w", err)
	}
	return nil
}
