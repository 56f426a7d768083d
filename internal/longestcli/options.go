// internal/longestcli/options.go
package longestcli

import (
	"errors"
	"flag"
	"fmt"

	"fxtools/internal/cliutil"
	"fxtools/internal/version"
)

// Unset marks a selection flag the user did not supply.
const Unset = -1

// Options holds all CLI flags and arguments for fxlongest.
type Options struct {
	Input  string
	Output string
	Others string // optional file for the unselected reads

	Longest int // percentage of longest reads to keep (Unset when absent)
	Bases   int // maximum total bases to keep (Unset when absent)

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: extract the longest reads from a fastq (or fasta) file

Version: %s

Usage: %s [options] input output
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.Longest, "longest", Unset, "percentage of longest reads to partition [*]")
	fs.IntVar(&opt.Bases, "bases", Unset, "maximum number of bases (at least one read is kept) [*]")
	fs.StringVar(&opt.Others, "others", "", "write all other reads to this file")
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
	if len(pos) != 2 {
		return opt, fmt.Errorf("expected input and output arguments, got %d", len(pos))
	}
	opt.Input, opt.Output = pos[0], pos[1]

	// Mode validation mirrors the library contract so that misuse is a
	// usage error rather than a runtime one.
	switch {
	case opt.Longest != Unset && opt.Bases != Unset:
		return opt, errors.New("--longest conflicts with --bases")
	case opt.Longest == Unset && opt.Bases == Unset:
		return opt, errors.New("provide --longest or --bases")
	}
	if opt.Longest != Unset && (opt.Longest < 0 || opt.Longest > 100) {
		return opt, errors.New("--longest must be between 0 and 100")
	}
	if opt.Bases != Unset && opt.Bases < 0 {
		return opt, errors.New("--bases must be >= 0")
	}
	return opt, nil
}
