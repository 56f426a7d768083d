// internal/apprun/apprun.go
package apprun

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"fxtools/internal/version"
	"fxtools/internal/writers"
)

// Exit codes shared by every tool.
const (
	ExitOK    = 0
	ExitFail  = 1 // runtime/domain failure
	ExitUsage = 2 // bad command line
	ExitIO    = 3 // could not even flush output
)

// Flush flushes w, treating a broken pipe (e.g. piping into head) as
// success.
func Flush(w *bufio.Writer, stderr io.Writer) int {
	if err := w.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return ExitOK
}

// Usage prints the flag set's usage to out and returns code (unless the
// flush itself fails).
func Usage(fs *flag.FlagSet, out *bufio.Writer, stderr io.Writer, code int) int {
	fs.SetOutput(out)
	fs.Usage()
	if c := Flush(out, stderr); c != ExitOK {
		return c
	}
	return code
}

// ParseError reports a bad command line: -h gets usage and exit 0, anything
// else gets the message on stderr, usage, and exit 2.
func ParseError(fs *flag.FlagSet, out *bufio.Writer, stderr io.Writer, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return Usage(fs, out, stderr, ExitOK)
	}
	_, _ = fmt.Fprintln(stderr, err)
	return Usage(fs, out, stderr, ExitUsage)
}

// VersionLine prints "<name> version <v>" and flushes.
func VersionLine(out *bufio.Writer, stderr io.Writer, name string) int {
	_, _ = fmt.Fprintf(out, "%s version %s\n", name, version.Version)
	return Flush(out, stderr)
}

// Fail reports a runtime error on stderr and returns ExitFail.
func Fail(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintln(stderr, err)
	return ExitFail
}
