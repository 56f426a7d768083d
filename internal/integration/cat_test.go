// internal/integration/cat_test.go
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fxtools/internal/catapp"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestCatConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.fa", ">a\nACGT\n")
	b := write(t, dir, "b.fa", ">b\nTTTT\n")

	var out, errBuf bytes.Buffer
	code := catapp.Run([]string{a, b}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errBuf.String())
	}
	if out.String() != ">a\nACGT\n>b\nTTTT\n" {
		t.Fatalf("output %q", out.String())
	}
}

func TestCatToFile(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.fq", "@r\nAC\n+\nII\n")
	dst := filepath.Join(dir, "out.fq")

	var out, errBuf bytes.Buffer
	code := catapp.Run([]string{"-o", dst, a, a}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errBuf.String())
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "@r\nAC\n+\nII\n@r\nAC\n+\nII\n" {
		t.Fatalf("file content %q", got)
	}
}

func TestCatMissingInput(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := catapp.Run([]string{"no-such-file.fa"}, &out, &errBuf)
	if code != 1 || errBuf.Len() == 0 {
		t.Fatalf("exit %d, err=%q", code, errBuf.String())
	}
}

func TestCatNoArgsIsUsageError(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := catapp.Run([]string{"-o", "x"}, &out, &errBuf); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}
