// internal/convertapp/app.go
package convertapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"fxtools-core/fastx"
	"fxtools/internal/apprun"
	"fxtools/internal/convertcli"
	"fxtools/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	defer func() { _ = outw.Flush() }()

	fs := convertcli.NewFlagSet("fxconvert")
	fs.SetOutput(io.Discard)

	opts, err := convertcli.ParseArgs(fs, argv)
	if err != nil {
		return apprun.ParseError(fs, outw, stderr, err)
	}
	if opts.Version {
		return apprun.VersionLine(outw, stderr, "fxconvert")
	}

	inFormat, outFormat := formats(opts.Code)
	// aq always synthesizes quality; qq only rewrites it on request.
	mock := opts.Code == "aq" || (opts.Code == "qq" && opts.DiscardQ)

	logger := log.New(stderr)
	if mock {
		logger.Info("creating/ignoring quality information in input", "mock_q", opts.MockQ)
	}

	out, err := writers.Open(opts.Output, outw)
	if err != nil {
		return apprun.Fail(stderr, err)
	}
	ow := bufio.NewWriterSize(out, 64<<10)

	checked := false
	_, err = fastx.ScanPathCtx(ctx, opts.Input, func(rec fastx.Record) error {
		if !checked {
			checked = true
			if got := recFormat(rec); got != inFormat {
				return fmt.Errorf("input is %v, but convert=%s expects %v", got, opts.Code, inFormat)
			}
		}
		if mock {
			rec.Qual = nil
		}
		return fastx.Write(ow, rec, outFormat, opts.MockQ)
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

func recFormat(rec fastx.Record) fastx.Format {
	if rec.IsFastq() {
		return fastx.FormatFastq
	}
	return fastx.FormatFasta
}

// formats maps a conversion code ('a'=fasta, 'q'=fastq) to input and output
// formats. Codes are validated by the CLI layer.
func formats(code string) (in, out fastx.Format) {
	conv := func(c byte) fastx.Format {
		if c == 'a' {
			return fastx.FormatFasta
		}
		return fastx.FormatFastq
	}
	return conv(code[0]), conv(code[1])
}
