// internal/catapp/app.go
package catapp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"fxtools/internal/apprun"
	"fxtools/internal/catcli"
	"fxtools/internal/writers"
)

// copyBufSize is the buffer used for file copies (10 MiB).
const copyBufSize = 10 * 1024 * 1024

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	defer func() { _ = outw.Flush() }()

	fs := catcli.NewFlagSet("fxcat")
	fs.SetOutput(io.Discard)

	opts, err := catcli.ParseArgs(fs, argv)
	if err != nil {
		return apprun.ParseError(fs, outw, stderr, err)
	}
	if opts.Version {
		return apprun.VersionLine(outw, stderr, "fxcat")
	}

	out, err := writers.Open(opts.Output, outw)
	if err != nil {
		return apprun.Fail(stderr, err)
	}

	if err := catFiles(ctx, out, opts.Files); err != nil {
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

// catFiles copies each input to w in order, without touching the bytes
// (gzip input stays gzip).
func catFiles(ctx context.Context, w io.Writer, files []string) error {
	buf := make([]byte, copyBufSize)
	for _, f := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		var rc io.ReadCloser
		if f == "-" {
			rc = io.NopCloser(os.Stdin)
		} else {
			fh, err := os.Open(f)
			if err != nil {
				return err
			}
			rc = fh
		}
		if _, err := io.CopyBuffer(w, rc, buf); err != nil {
			_ = rc.Close()
			return fmt.Errorf("cat %s: %w", f, err)
		}
		if err := rc.Close(); err != nil {
			return err
		}
	}
	return nil
}
