// internal/convertcli/options.go
package convertcli

import (
	"errors"
	"flag"
	"fmt"

	"fxtools/internal/cliutil"
	"fxtools/internal/version"
)

// Options holds all CLI flags and arguments for fxconvert.
type Options struct {
	Code     string // conversion code, from->to: qq | aa | aq | qa
	Input    string // '-' is stdin
	Output   string // '-' is stdout
	DiscardQ bool   // drop real quality, use the mock value (qq only)
	MockQ    int    // quality value for synthesized quality strings

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: convert between fasta<->fastq

Version: %s

Usage: %s CODE [options] [input]

CODE is from->to, with 'a'=fasta and 'q'=fastq: qq | aa | aq | qa.
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.BoolVar(&opt.DiscardQ, "discard-q", false, "discard quality from fastq input, use with --mock-q [false]")
	fs.IntVar(&opt.MockQ, "mock-q", 10, "mock quality value, valid for aq|qq [10]")
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
	if len(pos) == 0 {
		return opt, errors.New("conversion code is required (qq | aa | aq | qa)")
	}
	opt.Code = pos[0]
	switch opt.Code {
	case "qq", "aa", "aq", "qa":
	default:
		return opt, fmt.Errorf("convert must be 'qq', 'aq', 'qa', or 'aa', got %q", opt.Code)
	}
	switch len(pos) {
	case 1:
		opt.Input = "-"
	case 2:
		opt.Input = pos[1]
	default:
		return opt, fmt.Errorf("expected at most one input after the code, got %d", len(pos)-1)
	}
	// Synthesized quality must stay a printable phred+33 character.
	if opt.MockQ < 0 || opt.MockQ > 93 {
		return opt, errors.New("--mock-q must be between 0 and 93")
	}
	if opt.DiscardQ && opt.Code != "qq" {
		return opt, errors.New("--discard-q only applies to convert=qq")
	}
	return opt, nil
}
