package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the cornellfmt command.
type cliFlags struct {
	config  string
	quiet   bool
	verbose bool
	jsonLog bool

	output  string
	write   bool
	check   bool
	workers int

	blankCap        int
	distinctSummary bool

	initConfig bool
	version    bool
}

// parseFlags parses command-line flags and returns positional args
// (input file paths; none means stdin).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("cornellfmt", flag.ContinueOnError)
	f := &cliFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: stdout)")
	fs.BoolVarP(&f.write, "write", "w", false, "rewrite input files in place")
	fs.BoolVar(&f.check, "check", false, "validate only; report issues without rewriting")
	fs.IntVar(&f.workers, "workers", 0, "parallel workers for multiple files (0 = auto)")

	// Policy flags
	fs.IntVar(&f.blankCap, "blank-cap", 0, "max consecutive blank lines, 1 or 2 (0 = config)")
	fs.BoolVar(&f.distinctSummary, "distinct-summary", false, "recognize summary only via [!summary]")

	// Common flags
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed diagnostics")
	fs.BoolVar(&f.jsonLog, "log-json", false, "emit diagnostics as JSON")

	fs.BoolVar(&f.initConfig, "init-config", false, "write a default cornellfmt.yaml and exit")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the command help text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: cornellfmt [flags] [file ...]

Normalizes Cornell-note Markdown structure. With no files, reads from
stdin and writes the normalized note to stdout.

Flags:
  -o, --output DIR      write normalized files into DIR
  -w, --write           rewrite input files in place
      --check           validate only; print issues, exit 4 if invalid
      --workers N       parallel workers for multiple files (0 = auto)
      --blank-cap N     max consecutive blank lines, 1 or 2
      --distinct-summary  recognize summary only via [!summary]
  -c, --config NAME     config file name or path
  -q, --quiet           only show errors
  -v, --verbose         show detailed diagnostics
      --log-json        emit diagnostics as JSON
      --init-config     write a default cornellfmt.yaml and exit
      --version         print version and exit
`)
}
