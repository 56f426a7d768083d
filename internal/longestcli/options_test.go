// internal/longestcli/options_test.go
package longestcli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestLongestOK(t *testing.T) {
	o := mustParse(t, "--longest", "10", "in.fq", "out.fq")
	if o.Longest != 10 || o.Bases != Unset || o.Input != "in.fq" || o.Output != "out.fq" {
		t.Errorf("bad parse %+v", o)
	}
}

func TestBasesWithOthersOK(t *testing.T) {
	o := mustParse(t, "--bases", "5000", "--others", "rest.fq", "in.fq", "out.fq")
	if o.Bases != 5000 || o.Others != "rest.fq" {
		t.Errorf("bad parse %+v", o)
	}
}

func TestFlagsAfterPositionals(t *testing.T) {
	o := mustParse(t, "in.fq", "out.fq", "--longest", "50")
	if o.Longest != 50 || o.Input != "in.fq" {
		t.Errorf("bad parse %+v", o)
	}
}

func TestErrorBothModes(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--longest", "10", "--bases", "100", "a", "b"}); err == nil {
		t.Fatal("expected mutual-exclusion error")
	}
}

func TestErrorNoMode(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"a", "b"}); err == nil {
		t.Fatal("expected error with no selection mode")
	}
}

func TestErrorPercentRange(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--longest", "101", "a", "b"}); err == nil {
		t.Fatal("expected range error")
	}
}

func TestErrorMissingPositionals(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--longest", "10", "a"}); err == nil {
		t.Fatal("expected error when output is missing")
	}
}
