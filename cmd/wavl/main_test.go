package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo", "--no-color", "--width", "40")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"tree is empty: true",
		"min is 2, max is 12",
		"keys:   [2 5 6 10 12]",
		"size:   5",
		"select(0) is out of range",
		"select(2) = 5",
		"search(7) not found",
		"search(12) = 12",
		"delete 10: 0 rebalancing steps",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected demo output to contain %q", want)
		}
	}
}

func TestLoad(t *testing.T) {
	out, err := execute(t, "load", "--no-color", "../../textfile/testdata/capitals.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Japan: Tokyo") {
		t.Errorf("expected tree to list Japan, have\n%s", out)
	}
	out, err = execute(t, "load", "--html", "../../textfile/testdata/capitals.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<dt>Japan</dt><dd>Tokyo</dd>") {
		t.Errorf("expected HTML entry for Japan, have\n%s", out)
	}
	out, err = execute(t, "load", "--dot", "../../textfile/testdata/capitals.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("expected DOT output, have\n%s", out)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := execute(t, "load"); err == nil {
		t.Errorf("expected error for missing file argument")
	}
	if _, err := execute(t, "load", "--dot", "--html", "../../textfile/testdata/capitals.txt"); err == nil {
		t.Errorf("expected error for conflicting flags")
	}
	if _, err := execute(t, "load", "../../textfile/testdata/duplicates.txt"); err == nil {
		t.Errorf("expected error for duplicate keys")
	}
}
