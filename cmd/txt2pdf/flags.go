package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// marginSentinel detects if --margin was left unset. Valid margins are
// positive; a negative sentinel is safely out of range.
const marginSentinel = -1.0

// cliFlags holds all flags for the txt2pdf command.
type cliFlags struct {
	output      string
	config      string
	markdown    bool
	markdownSet bool // whether --markdown was explicitly given
	pageSize    string
	orientation string
	margin      float64
	workers     int
	verbose     bool
	version     bool
}

const usageText = `txt2pdf converts plain text or Markdown files to simple PDF documents.

Usage:
  txt2pdf [flags] [file ...]

With no file arguments, txt2pdf reads from standard input and treats the
content as Markdown unless --markdown=false is given. For file arguments
the .md extension selects Markdown treatment; --markdown overrides the
inference either way.

Flags:
`

// parseFlags parses command-line flags and returns them with the
// remaining positional arguments (input files).
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("txt2pdf", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		fmt.Fprintln(os.Stderr, fs.FlagUsages())
	}

	fs.StringVarP(&flags.output, "output", "o", "", "output file, or directory for multiple inputs")
	fs.StringVarP(&flags.config, "config", "c", "", "YAML config file with defaults")
	fs.BoolVarP(&flags.markdown, "markdown", "m", false, "treat input as Markdown (overrides extension inference)")
	fs.StringVar(&flags.pageSize, "page-size", "", "page size: letter, a4, legal")
	fs.StringVar(&flags.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&flags.margin, "margin", marginSentinel, "page margin in inches")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "parallel conversions for multiple inputs (0 = auto)")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "log recovered rendering failures to stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	flags.markdownSet = fs.Changed("markdown")

	return flags, fs.Args(), nil
}
