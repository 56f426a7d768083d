// internal/splitcli/options.go
package splitcli

import (
	"errors"
	"flag"
	"fmt"

	"fxtools/internal/cliutil"
	"fxtools/internal/version"
)

// Options holds all CLI flags and arguments for fxsplit.
type Options struct {
	Input     string // '-' is stdin
	Output    string // '-' is stdout
	ChunkSize int    // maximum bases per output record

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: split FASTA/FASTQ records into fixed-size chunks

Version: %s

Usage: %s --chunk-size N [options] [input]
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.ChunkSize, "chunk-size", 0, "maximum length of output records [*]")
	fs.StringVar(&opt.Output, "output", "-", "output file ('-' = stdout) [-]")
	fs.StringVar(&opt.Output, "o", "-", "alias of --output")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	pos, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	switch len(pos) {
	case 0:
		opt.Input = "-"
	case 1:
		opt.Input = pos[0]
	default:
		return opt, fmt.Errorf("expected at most one input, got %d", len(pos))
	}
	if opt.ChunkSize <= 0 {
		return opt, errors.New("--chunk-size must be > 0")
	}
	return opt, nil
}
