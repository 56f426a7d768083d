// internal/regioncli/options.go
package regioncli

import (
	"errors"
	"flag"
	"fmt"

	"fxtools/internal/cliutil"
	"fxtools/internal/version"
)

// Options holds all CLI flags and arguments for fxregion.
type Options struct {
	Regions    []string // specifiers, in command-line order
	RefLengths string   // optional name/length file (.fai works)
	Output     string   // text | json
	Header     bool     // true unless --no-header

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: parse genomic region strings (name[:start[-end]])

Version: %s

Usage: %s [options] REGION...
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool

	fs.StringVar(&opt.RefLengths, "ref-lengths", "", "name/length file used to close open-ended regions")
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")
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
	opt.Header = !noHeader

	opt.Regions = posArgs
	if len(opt.Regions) == 0 {
		return opt, errors.New("at least one region is required")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
