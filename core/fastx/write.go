// core/fastx/write.go
package fastx

import (
	"fmt"
	"io"
)

// Write emits rec to w in the given format. Writing a record without
// quality as FASTQ synthesizes a uniform quality at mockQual; writing as
// FASTA simply drops any quality.
func Write(w io.Writer, rec Record, format Format, mockQual int) error {
	switch format {
	case FormatFasta:
		_, err := fmt.Fprintf(w, ">%s\n%s\n", rec.Header(), rec.Seq)
		return err
	case FormatFastq:
		qual := rec.Qual
		if qual == nil {
			qual = MockQuality(len(rec.Seq), mockQual)
		}
		_, err := fmt.Fprintf(w, "@%s\n%s\n+\n%s\n", rec.Header(), rec.Seq, qual)
		return err
	default:
		return fmt.Errorf("fastx: cannot write format %v", format)
	}
}

// MockQuality returns n copies of the phred+33 character for quality q.
func MockQuality(n, q int) []byte {
	b := make([]byte, n)
	ch := byte(q + 33)
	for i := range b {
		b[i] = ch
	}
	return b
}
