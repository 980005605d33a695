package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/bibsym/snapshot"
	"github.com/chazu/bibsym/symtab"
)

func TestRunInternsStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	in := strings.NewReader("knuth lamport\nknuth  turing\n")

	code := run([]string{"-ilk", "cite", "-lookup", "turing", "-lookup", "hopper", "-"}, in, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "interned 3 new words") {
		t.Errorf("missing count in output:\n%s", out)
	}
	if !strings.Contains(out, "turing: found at slot") {
		t.Errorf("turing should be found:\n%s", out)
	}
	if !strings.Contains(out, "hopper: not found") {
		t.Errorf("hopper should be missing:\n%s", out)
	}
}

func TestRunListAndDump(t *testing.T) {
	dir := t.TempDir()
	dump := filepath.Join(dir, "table.cbor")
	db := filepath.Join(dir, "table.db")
	if err := os.WriteFile(filepath.Join(dir, "bibsym.toml"), []byte("[pool]\nsize = 128\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", dir, "-list", "-dump", dump, "-db", db}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), `"substring$"`) {
		t.Error("listing should include substring$")
	}

	data, err := os.ReadFile(dump)
	if err != nil {
		t.Fatal(err)
	}
	snap, err := snapshot.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := snap.Find("\\bibdata", symtab.IlkAuxCommand); !ok {
		t.Error(`dump should contain \bibdata`)
	}
	if _, err := os.Stat(db); err != nil {
		t.Errorf("database not written: %v", err)
	}
}

func TestRunVerboseShowsConfigPath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bibsym.toml"), []byte("[cites]\nmax-cites = 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"-v", "1", "-config", dir}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	want := "config: " + filepath.Join(dir, "bibsym.toml")
	if !strings.Contains(stdout.String(), want) {
		t.Errorf("output should contain %q:\n%s", want, stdout.String())
	}

	stdout.Reset()
	if code := run([]string{"-config", dir}, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	if strings.Contains(stdout.String(), "config:") {
		t.Error("config path should only print with -v")
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"bad flag", []string{"-nope"}, 2},
		{"bad ilk", []string{"-ilk", "bogus"}, 1},
		{"missing file", []string{filepath.Join(t.TempDir(), "absent.txt")}, 1},
		{"missing config", []string{"-config", t.TempDir()}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, strings.NewReader(""), &stdout, &stderr); code != tt.code {
				t.Errorf("exit: got %d, want %d (%s)", code, tt.code, stderr.String())
			}
		})
	}
}
