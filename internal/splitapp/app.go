// internal/splitapp/app.go
package splitapp

import (
	"bufio"
	"context"
	"io"

	"fxtools-core/fastx"
	"fxtools/internal/apprun"
	"fxtools/internal/splitcli"
	"fxtools/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	defer func() { _ = outw.Flush() }()

	fs := splitcli.NewFlagSet("fxsplit")
	fs.SetOutput(io.Discard)

	opts, err := splitcli.ParseArgs(fs, argv)
	if err != nil {
		return apprun.ParseError(fs, outw, stderr, err)
	}
	if opts.Version {
		return apprun.VersionLine(outw, stderr, "fxsplit")
	}

	out, err := writers.Open(opts.Output, outw)
	if err != nil {
		return apprun.Fail(stderr, err)
	}
	ow := bufio.NewWriterSize(out, 64<<10)

	// Records are re-emitted in the format they arrived in.
	_, err = fastx.ScanPathCtx(ctx, opts.Input, func(rec fastx.Record) error {
		format := fastx.FormatFasta
		if rec.IsFastq() {
			format = fastx.FormatFastq
		}
		for _, c := range fastx.SplitRecord(rec, opts.ChunkSize) {
			if err := fastx.Write(ow, c, format, 0); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		err = ow.Flush()
	}
	if err != nil {
		_ = out.Close()
		if writers.IsBrokenPipe(err) {
			return apprun.ExitOK
		}
		return apprun.Fail(stderr, err)
	}
	if err := out.Close(); err != nil {
		return apprun.Fail(stderr, err)
	}
	return apprun.Flush(outw, stderr)
}
