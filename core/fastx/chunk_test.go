package fastx

import (
	"bytes"
	"testing"
)

func TestSplitRecordFasta(t *testing.T) {
	rec := Record{ID: "ctg", Seq: []byte("ACGTACGTAC")}
	got := SplitRecord(rec, 4)
	if len(got) != 3 {
		t.Fatalf("got %d chunks, want 3", len(got))
	}
	wantSeq := []string{"ACGT", "ACGT", "AC"}
	for i, c := range got {
		if c.ID != "ctg_chunk"+string(rune('0'+i)) {
			t.Errorf("chunk %d id = %q", i, c.ID)
		}
		if string(c.Seq) != wantSeq[i] {
			t.Errorf("chunk %d seq = %q, want %q", i, c.Seq, wantSeq[i])
		}
		if c.Comment != "chunk_length=4" {
			t.Errorf("chunk %d comment = %q", i, c.Comment)
		}
		if c.Qual != nil {
			t.Errorf("chunk %d grew quality", i)
		}
	}
}

func TestSplitRecordFastqLockstep(t *testing.T) {
	rec := Record{ID: "r", Seq: []byte("ACGTA"), Qual: []byte("IJKLM")}
	got := SplitRecord(rec, 2)
	if len(got) != 3 {
		t.Fatalf("got %d chunks, want 3", len(got))
	}
	for i, c := range got {
		if len(c.Seq) != len(c.Qual) {
			t.Fatalf("chunk %d seq/qual lengths differ: %q %q", i, c.Seq, c.Qual)
		}
	}
	if !bytes.Equal(got[2].Seq, []byte("A")) || !bytes.Equal(got[2].Qual, []byte("M")) {
		t.Fatalf("tail chunk wrong: %+v", got[2])
	}
}

func TestSplitRecordKeepsExistingComment(t *testing.T) {
	rec := Record{ID: "r", Comment: "run=3", Seq: []byte("ACGT")}
	got := SplitRecord(rec, 100)
	if len(got) != 1 {
		t.Fatalf("short record must still yield one chunk, got %d", len(got))
	}
	if got[0].ID != "r_chunk0" || got[0].Comment != "run=3 chunk_length=100" {
		t.Fatalf("bad chunk %+v", got[0])
	}
}

func TestSplitRecordEmptySequence(t *testing.T) {
	if got := SplitRecord(Record{ID: "empty"}, 10); got != nil {
		t.Fatalf("empty sequence must yield no chunks, got %v", got)
	}
}
