// internal/longestapp/app.go
package longestapp

import (
	"bufio"
	"context"
	"io"

	"github.com/charmbracelet/log"

	"fxtools-core/fastx"
	"fxtools-core/readsel"
	"fxtools/internal/apprun"
	"fxtools/internal/longestcli"
	"fxtools/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := longestcli.NewFlagSet("fxlongest")
	fs.SetOutput(io.Discard)

	opts, err := longestcli.ParseArgs(fs, argv)
	if err != nil {
		return apprun.ParseError(fs, outw, stderr, err)
	}
	if opts.Version {
		return apprun.VersionLine(outw, stderr, "fxlongest")
	}

	logger := log.New(stderr)

	// First pass: index ids and lengths only.
	logger.Info("loading reads", "input", opts.Input)
	index, format, err := fastx.Lengths(ctx, opts.Input)
	if err != nil {
		return apprun.Fail(stderr, err)
	}
	logger.Info("loaded reads", "count", len(index), "format", format.String())

	reads := make([]readsel.Read, len(index))
	for i, e := range index {
		reads[i] = readsel.Read{ID: e.ID, Length: e.Length}
	}

	logger.Info("sorting reads")
	res, err := readsel.Select(reads, readsel.Options{Longest: opts.Longest, Bases: opts.Bases})
	if err != nil {
		return apprun.Fail(stderr, err)
	}
	logger.Info("selected reads", "selected", len(res.Selected), "others", len(res.Others))

	selected := make(map[string]bool, len(res.Selected))
	for _, id := range res.Selected {
		selected[id] = true
	}

	if err := writePartition(ctx, opts, format, selected, outw); err != nil {
		return apprun.Fail(stderr, err)
	}
	return apprun.Flush(outw, stderr)
}

// writePartition re-scans the input and routes each record to the output
// file or, when requested, the others file.
func writePartition(ctx context.Context, opts longestcli.Options, format fastx.Format, selected map[string]bool, stdout io.Writer) error {
	out, err := writers.Open(opts.Output, stdout)
	if err != nil {
		return err
	}
	ow := bufio.NewWriterSize(out, 64<<10)

	var others io.WriteCloser
	var otherw *bufio.Writer
	if opts.Others != "" {
		others, err = writers.Open(opts.Others, stdout)
		if err != nil {
			_ = out.Close()
			return err
		}
		otherw = bufio.NewWriterSize(others, 64<<10)
	}
	closeAll := func() error {
		var first error
		if err := ow.Flush(); err != nil && first == nil {
			first = err
		}
		if err := out.Close(); err != nil && first == nil {
			first = err
		}
		if others != nil {
			if err := otherw.Flush(); err != nil && first == nil {
				first = err
			}
			if err := others.Close(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}

	_, err = fastx.ScanPathCtx(ctx, opts.Input, func(rec fastx.Record) error {
		if selected[rec.ID] {
			return fastx.Write(ow, rec, format, 0)
		}
		if otherw != nil {
			return fastx.Write(otherw, rec, format, 0)
		}
		return nil
	})
	if err != nil {
		_ = closeAll()
		return err
	}
	return closeAll()
}
