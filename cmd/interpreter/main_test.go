package main

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/dimbata23/minischeme/pkg/interpreter"
)

func TestRunExpression(t *testing.T) {
	if code := run([]string{"-e", "(+ 1 2)"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if code := run([]string{"-e", "(car 1)"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.scm")
	bad := filepath.Join(dir, "bad.scm")
	if err := os.WriteFile(good, []byte("(define (sq x) (* x x))\n(sq 4)\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("(define x 1)\n(undefined-fn x)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := run([]string{good}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if code := run([]string{bad}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if code := run([]string{filepath.Join(dir, "missing.scm")}); code != 1 {
		t.Fatalf("expected exit code 1 for a missing file, got %d", code)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	if code := run([]string{"-log-level", "loud", "-e", "1"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if code := run([]string{"-config", filepath.Join(t.TempDir(), "missing.yml"), "-e", "1"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestCompleter(t *testing.T) {
	interp := interpreter.New()
	if _, err := interp.Run("(define list-length 0)"); err != nil {
		t.Fatal(err)
	}
	complete := completer(interp)

	got := complete("(list-")
	sort.Strings(got)
	expected := []string{"(list-length", "(list-ref", "(list-tail"}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	}

	if got := complete("(car "); got != nil {
		t.Fatalf("expected no completions for an empty prefix, got %v", got)
	}
}
