// core/fastx/record.go
package fastx

// Format identifies the on-disk flavour of a sequence file.
type Format int

const (
	FormatUnknown Format = iota
	FormatFasta
	FormatFastq
)

func (f Format) String() string {
	switch f {
	case FormatFasta:
		return "fasta"
	case FormatFastq:
		return "fastq"
	default:
		return "unknown"
	}
}

// Record is one FASTA or FASTQ record. Qual is nil for FASTA records and
// the same length as Seq otherwise.
type Record struct {
	ID      string
	Comment string
	Seq     []byte
	Qual    []byte
}

// IsFastq reports whether the record carries quality values.
func (r Record) IsFastq() bool { return r.Qual != nil }

// Header returns the id plus comment as written after '>' or '@'.
func (r Record) Header() string {
	if r.Comment == "" {
		return r.ID
	}
	return r.ID + " " + r.Comment
}
