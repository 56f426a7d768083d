// internal/convertcli/options_test.go
package convertcli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func TestCodeAndDefaults(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"qa"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.Code != "qa" || o.Input != "-" || o.Output != "-" || o.MockQ != 10 {
		t.Errorf("bad parse %+v", o)
	}
}

func TestInputFileAndMockQ(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"aq", "--mock-q", "30", "reads.fa"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.Input != "reads.fa" || o.MockQ != 30 {
		t.Errorf("bad parse %+v", o)
	}
}

func TestErrors(t *testing.T) {
	cases := map[string][]string{
		"no code":            {},
		"bad code":           {"qx"},
		"mock-q range":       {"aq", "--mock-q", "94"},
		"discard-q misuse":   {"qa", "--discard-q"},
		"too many arguments": {"qa", "a.fq", "b.fq"},
	}
	for name, argv := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseArgs(newFS(), argv); err == nil {
				t.Fatalf("expected error for %v", argv)
			}
		})
	}
}
