// core/fastx/lengths.go
package fastx

import "context"

// ReadLength is the (id, length) pair produced by an index pass.
type ReadLength struct {
	ID     string
	Length int
}

// Lengths scans path once and returns one entry per record in file order,
// plus the detected format. Sequence data is not retained.
func Lengths(ctx context.Context, path string) ([]ReadLength, Format, error) {
	var out []ReadLength
	format, err := ScanPathCtx(ctx, path, func(rec Record) error {
		out = append(out, ReadLength{ID: rec.ID, Length: len(rec.Seq)})
		return nil
	})
	if err != nil {
		return nil, format, err
	}
	return out, format, nil
}
