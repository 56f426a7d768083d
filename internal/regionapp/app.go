// internal/regionapp/app.go
package regionapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"fxtools-core/region"
	"fxtools/internal/apprun"
	"fxtools/internal/reflen"
	"fxtools/internal/regioncli"
	"fxtools/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := regioncli.NewFlagSet("fxregion")
	fs.SetOutput(io.Discard)

	opts, err := regioncli.ParseArgs(fs, argv)
	if err != nil {
		return apprun.ParseError(fs, outw, stderr, err)
	}
	if opts.Version {
		return apprun.VersionLine(outw, stderr, "fxregion")
	}

	var lengths map[string]int
	if opts.RefLengths != "" {
		lengths, err = reflen.Load(opts.RefLengths)
		if err != nil {
			return apprun.Fail(stderr, err)
		}
	}

	regs, err := region.ParseAll(opts.Regions, lengths)
	if err != nil {
		// Bad region strings are a command-line problem.
		_, _ = fmt.Fprintln(stderr, err)
		return apprun.ExitUsage
	}

	if err := writers.WriteRegions(opts.Output, outw, regs, opts.Header); err != nil {
		if writers.IsBrokenPipe(err) {
			return apprun.ExitOK
		}
		return apprun.Fail(stderr, err)
	}
	return apprun.Flush(outw, stderr)
}
