// core/fastx/chunk.go
package fastx

import "fmt"

// SplitRecord cuts rec into chunks of at most chunkSize bases. Chunks are
// named <id>_chunk<i> and their comment gains "chunk_length=<chunkSize>";
// quality is cut in lockstep with the sequence. A record no longer than
// chunkSize still comes back as a single renamed chunk; an empty sequence
// yields no chunks at all.
func SplitRecord(rec Record, chunkSize int) []Record {
	if chunkSize <= 0 || len(rec.Seq) == 0 {
		return nil
	}
	comment := fmt.Sprintf("chunk_length=%d", chunkSize)
	if rec.Comment != "" {
		comment = rec.Comment + " " + comment
	}
	out := make([]Record, 0, (len(rec.Seq)+chunkSize-1)/chunkSize)
	for i, off := 0, 0; off < len(rec.Seq); i, off = i+1, off+chunkSize {
		end := min(off+chunkSize, len(rec.Seq))
		c := Record{
			ID:      fmt.Sprintf("%s_chunk%d", rec.ID, i),
			Comment: comment,
			Seq:     append([]byte(nil), rec.Seq[off:end]...),
		}
		if rec.Qual != nil {
			c.Qual = append([]byte(nil), rec.Qual[off:end]...)
		}
		out = append(out, c)
	}
	return out
}
