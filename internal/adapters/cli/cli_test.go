package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRunReportsDimensionsAndSolution(t *testing.T) {
	d := New()
	in := strings.NewReader("100\n010\n001\n")
	var out bytes.Buffer
	if err := d.Run(context.Background(), in, &out, Options{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out.String())
	}
	if lines[0] != "Dimensions: [3, 3]" {
		t.Fatalf("line 1 = %q", lines[0])
	}
	if lines[1] != "0,1,2" {
		t.Fatalf("line 2 = %q", lines[1])
	}
}

func TestRunNoSolutionIsAnError(t *testing.T) {
	d := New()
	in := strings.NewReader("10\n10\n")
	var out bytes.Buffer
	if err := d.Run(context.Background(), in, &out, Options{}); err == nil {
		t.Fatal("expected an error for an unsatisfiable instance")
	}
}

func TestRunMalformedInputPropagatesAsError(t *testing.T) {
	d := New()
	in := strings.NewReader("10x\n")
	var out bytes.Buffer
	if err := d.Run(context.Background(), in, &out, Options{}); err == nil {
		t.Fatal("expected a malformed-input error")
	}
}

func TestRunNthSolution(t *testing.T) {
	// four rows, two columns, two disjoint pairs of rows each covering
	// both columns: four exact covers exist (knuth-style small example).
	d := New()
	in := strings.NewReader("10\n01\n10\n01\n")
	var out bytes.Buffer
	if err := d.Run(context.Background(), in, &out, Options{N: 2}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Dimensions: [4, 2]") {
		t.Fatalf("got %q", out.String())
	}
}

func TestParseForced(t *testing.T) {
	got, err := ParseForced("1, 3 ,5")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestParseForcedEmpty(t *testing.T) {
	got, err := ParseForced("  ")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestParseForcedBadInput(t *testing.T) {
	if _, err := ParseForced("1,x"); err == nil {
		t.Fatal("expected an error")
	}
}
