// core/fastx/scan.go
package fastx

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// allow very long single-line sequences (64 MiB)
const maxLine = 64 * 1024 * 1024

// ScanCtx parses FASTA or FASTQ from r and calls emit for every record.
// The format is sniffed from the first record marker ('>' vs '@') and
// returned alongside any error. Cancellation via ctx is honored between
// records. emit may return a non-nil error (e.g. ctx.Err()) to stop early.
func ScanCtx(ctx context.Context, r io.Reader, emit func(Record) error) (Format, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		switch line[0] {
		case '>':
			return FormatFasta, scanFasta(ctx, sc, line, emit)
		case '@':
			return FormatFastq, scanFastq(ctx, sc, line, emit)
		default:
			return FormatUnknown, fmt.Errorf("fastx: input starts with %q, want '>' or '@'", line[0])
		}
	}
	if err := sc.Err(); err != nil {
		return FormatUnknown, fmt.Errorf("fastx scan: %w", err)
	}
	return FormatUnknown, nil // empty input
}

// ScanPathCtx opens path (stdin and gzip aware) and scans it.
func ScanPathCtx(ctx context.Context, path string, emit func(Record) error) (Format, error) {
	rc, err := openReader(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer rc.Close()
	return ScanCtx(ctx, rc, emit)
}

// scanFasta consumes multi-line FASTA records. header is the '>' line
// already read by the sniffer.
func scanFasta(ctx context.Context, sc *bufio.Scanner, header []byte, emit func(Record) error) error {
	id, comment := splitHeader(header[1:])
	seq := make([]byte, 0, 1<<20)

	flush := func() error {
		return emit(Record{ID: id, Comment: comment, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, comment = splitHeader(line[1:])
			seq = seq[:0]
			continue
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fastx scan: %w", err)
	}
	return flush()
}

// scanFastq consumes FASTQ records. Sequence and quality may span multiple
// lines; quality is read until it is at least as long as the sequence, so a
// quality line starting with '@' cannot be mistaken for a header.
func scanFastq(ctx context.Context, sc *bufio.Scanner, header []byte, emit func(Record) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		id, comment := splitHeader(header[1:])
		var seq []byte
		qual := make([]byte, 0) // non-nil even for empty records, so IsFastq holds
		inQual := false
		done := false
		for !done && sc.Scan() {
			line := bytes.TrimSpace(sc.Bytes())
			if len(line) == 0 {
				continue
			}
			switch {
			case !inQual && line[0] == '+':
				inQual = true
				done = len(seq) == 0
			case !inQual:
				seq = append(seq, line...)
			default:
				qual = append(qual, line...)
				done = len(qual) >= len(seq)
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("fastx scan: %w", err)
		}
		if !inQual {
			return fmt.Errorf("fastx: record %q truncated before '+' separator", id)
		}
		if len(qual) != len(seq) {
			return fmt.Errorf("fastx: record %q quality length %d != sequence length %d", id, len(qual), len(seq))
		}
		if err := emit(Record{ID: id, Comment: comment, Seq: seq, Qual: qual}); err != nil {
			return err
		}

		// Next header, or EOF.
		header = nil
		for sc.Scan() {
			line := bytes.TrimSpace(sc.Bytes())
			if len(line) == 0 {
				continue
			}
			if line[0] != '@' {
				return fmt.Errorf("fastx: expected '@' header after record %q, got %q", id, line)
			}
			header = append([]byte(nil), line...)
			break
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("fastx scan: %w", err)
		}
		if header == nil {
			return nil
		}
	}
}

func splitHeader(hdr []byte) (id, comment string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
