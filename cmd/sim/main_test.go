package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, options{Script: "demo.tengo", Ticks: 480, DT: 1.0 / 60, Every: 0})
	if err != nil {
		t.Fatal(err)
	}
	got := out.String()

	for _, want := range []string{
		"event jump_started",
		"event landed",
		"event clip_changed idle->walk",
		"event clip_changed walk->run",
		"final ",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("trace missing %q:\n%s", want, got)
		}
	}
	if strings.Count(got, "event jump_started") != 2 {
		t.Fatalf("expected two jumps:\n%s", got)
	}
	if !strings.Contains(got, "final ") || !strings.Contains(got, "phase=grounded") {
		t.Fatalf("expected to end grounded:\n%s", got)
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	cases := []options{
		{Script: "demo.tengo", Ticks: -1, DT: 0.1},
		{Script: "demo.tengo", Ticks: 1, DT: 0},
		{Script: "demo.tengo", Ticks: 1, DT: 0.1, Every: -1},
	}
	for _, opts := range cases {
		if err := run(&bytes.Buffer{}, opts); !errors.Is(err, errBadOptions) {
			t.Fatalf("%+v: expected errBadOptions, got %v", opts, err)
		}
	}
}

func TestRunMissingScript(t *testing.T) {
	if err := run(&bytes.Buffer{}, options{Script: "nope.tengo", Ticks: 1, DT: 0.1}); err == nil {
		t.Fatalf("expected an error for a missing script")
	}
}
