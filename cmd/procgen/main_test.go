package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkg.jsn.cam/procgen/internal/generator"
	"pkg.jsn.cam/procgen/internal/history"
)

func TestRunPrompted(t *testing.T) {
	out := filepath.Join(t.TempDir(), "processes.txt")
	var stdout bytes.Buffer

	err := run(config{output: out, count: -1}, strings.NewReader("4\n"), &stdout)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if stdout.String() != generator.Prompt {
		t.Errorf("stdout = %q, want prompt", stdout.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 5 {
		t.Errorf("got %d lines, want 5", len(lines))
	}
}

func TestRunInvalidCount(t *testing.T) {
	out := filepath.Join(t.TempDir(), "processes.txt")

	err := run(config{output: out, count: -1}, strings.NewReader("lots\n"), &bytes.Buffer{})
	if !errors.Is(err, generator.ErrInput) {
		t.Fatalf("expected ErrInput, got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output file should not be created on invalid input")
	}
}

func TestRunIOError(t *testing.T) {
	dir := t.TempDir()

	err := run(config{output: dir, count: 2}, strings.NewReader(""), &bytes.Buffer{})
	if !errors.Is(err, generator.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestRunReplay(t *testing.T) {
	dir := t.TempDir()
	ledger := filepath.Join(dir, "history.db")
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")

	if err := run(config{output: first, count: 20, history: ledger}, nil, &bytes.Buffer{}); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	store, err := history.OpenBbolt(ledger)
	if err != nil {
		t.Fatalf("OpenBbolt failed: %v", err)
	}
	runs, err := store.ListRuns()
	store.Close()
	if err != nil || len(runs) != 1 {
		t.Fatalf("expected one recorded run, got %d (%v)", len(runs), err)
	}
	if runs[0].Records != 20 {
		t.Errorf("Records = %d, want 20", runs[0].Records)
	}

	err = run(config{output: second, count: -1, history: ledger, replay: runs[0].ID}, nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Error("replayed output differs from the original run")
	}

	var listing bytes.Buffer
	if err := run(config{history: ledger, list: true}, nil, &listing); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(listing.String(), runs[0].ID) {
		t.Errorf("listing missing run %s:\n%s", runs[0].ID, listing.String())
	}
}

func TestRunReplayRequiresHistory(t *testing.T) {
	err := run(config{output: filepath.Join(t.TempDir(), "p.txt"), replay: "abc"}, nil, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for -replay without -history")
	}
}

func TestRunFixedSeed(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")

	for _, out := range []string{a, b} {
		if err := run(config{output: out, count: 15, seed: 1234}, nil, &bytes.Buffer{}); err != nil {
			t.Fatalf("run failed: %v", err)
		}
	}

	da, _ := os.ReadFile(a)
	db, _ := os.ReadFile(b)
	if !bytes.Equal(da, db) {
		t.Error("same seed produced different files")
	}
}
