package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var s string
	fs.BoolVar(&b, "bool", false, "")
	fs.StringVar(&s, "str", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{
		"--bool", "pos1", "--str", "v", "-", "--", "--pos2",
	})
	if len(flagArgs) != 3 || flagArgs[1] != "--str" || flagArgs[2] != "v" {
		t.Fatalf("flagArgs = %v", flagArgs)
	}
	if len(posArgs) != 3 || posArgs[0] != "pos1" || posArgs[1] != "-" || posArgs[2] != "--pos2" {
		t.Fatalf("posArgs = %v", posArgs)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.fq", "b.fq"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("@r\nA\n+\nI\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fq"), "-"})
	if err != nil || len(got) != 3 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.none")}); err == nil {
		t.Fatal("expected error for glob with no matches")
	}
}
