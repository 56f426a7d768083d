package fastx

import (
	"bytes"
	"testing"
)

func TestWriteFasta(t *testing.T) {
	var buf bytes.Buffer
	rec := Record{ID: "s1", Comment: "len=4", Seq: []byte("ACGT"), Qual: []byte("IIII")}
	if err := Write(&buf, rec, FormatFasta, 0); err != nil {
		t.Fatal(err)
	}
	if buf.String() != ">s1 len=4\nACGT\n" {
		t.Fatalf("fasta output %q", buf.String())
	}
}

func TestWriteFastqMockQuality(t *testing.T) {
	var buf bytes.Buffer
	rec := Record{ID: "s1", Seq: []byte("ACGT")}
	if err := Write(&buf, rec, FormatFastq, 10); err != nil {
		t.Fatal(err)
	}
	// phred 10 + 33 = '+'
	if buf.String() != "@s1\nACGT\n+\n++++\n" {
		t.Fatalf("fastq output %q", buf.String())
	}
}

func TestWriteFastqKeepsRealQuality(t *testing.T) {
	var buf bytes.Buffer
	rec := Record{ID: "s1", Seq: []byte("AC"), Qual: []byte("!~")}
	if err := Write(&buf, rec, FormatFastq, 10); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "@s1\nAC\n+\n!~\n" {
		t.Fatalf("fastq output %q", buf.String())
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, Record{}, FormatUnknown, 0); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
