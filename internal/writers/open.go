package writers

import (
	"io"
	"os"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Open returns a write target for path. "" and "-" mean the provided
// stdout writer (whose Close is a no-op); anything else creates the file.
func Open(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	return os.Create(path)
}
