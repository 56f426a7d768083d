// internal/integration/split_test.go
package integration

import (
	"bytes"
	"strings"
	"testing"

	"fxtools/internal/splitapp"
)

func TestSplitFasta(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "in.fa", ">ctg desc\nACGTACGTAC\n")

	var out, errBuf bytes.Buffer
	code := splitapp.Run([]string{"--chunk-size", "4", fa}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errBuf.String())
	}
	want := ">ctg_chunk0 desc chunk_length=4\nACGT\n" +
		">ctg_chunk1 desc chunk_length=4\nACGT\n" +
		">ctg_chunk2 desc chunk_length=4\nAC\n"
	if out.String() != want {
		t.Fatalf("output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestSplitFastqKeepsQuality(t *testing.T) {
	dir := t.TempDir()
	fq := write(t, dir, "in.fq", "@r1\nACGTA\n+\nIJKLM\n")

	var out, errBuf bytes.Buffer
	code := splitapp.Run([]string{"--chunk-size", "3", fq}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errBuf.String())
	}
	want := "@r1_chunk0 chunk_length=3\nACG\n+\nIJK\n" +
		"@r1_chunk1 chunk_length=3\nTA\n+\nLM\n"
	if out.String() != want {
		t.Fatalf("output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestSplitRequiresChunkSize(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := splitapp.Run([]string{"in.fa"}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(errBuf.String(), "chunk-size") {
		t.Fatalf("error %q does not mention chunk-size", errBuf.String())
	}
}
