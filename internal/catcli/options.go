// internal/catcli/options.go
package catcli

import (
	"errors"
	"flag"
	"fmt"

	"fxtools/internal/cliutil"
	"fxtools/internal/version"
)

// Options holds all CLI flags and arguments for fxcat.
type Options struct {
	Files  []string // inputs, in command-line order; '-' is stdin
	Output string   // '-' is stdout

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: concatenate sequence files byte for byte

Version: %s

Usage: %s [options] FILE...
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positionals (the input files) may appear anywhere and globs are expanded.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

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

	files, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Files = files
	if len(opt.Files) == 0 {
		return opt, errors.New("at least one input file is required")
	}
	return opt, nil
}
