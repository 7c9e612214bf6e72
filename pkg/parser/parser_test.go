package parser

import (
	"errors"
	"io"
	"testing"

	"github.com/dimbata23/minischeme/pkg/runtime"
)

func expectRoundTrip(t *testing.T, input, expected string) {
	t.Helper()
	v, err := Parse(input)
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	if got := runtime.Serialize(v); got != expected {
		t.Fatalf("parse %q: expected %q, got %q", input, expected, got)
	}
}

func expectSyntaxError(t *testing.T, input string) {
	t.Helper()
	_, err := Parse(input)
	if !runtime.IsSyntaxError(err) {
		t.Fatalf("parse %q: expected syntax error, got %v", input, err)
	}
}

func TestParseAtoms(t *testing.T) {
	expectRoundTrip(t, "5", "5")
	expectRoundTrip(t, "-7", "-7")
	expectRoundTrip(t, "x", "x")
	expectRoundTrip(t, "#t", "#t")
}

func TestParseNumberValue(t *testing.T) {
	v, err := Parse("+42")
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := v.(runtime.Number); !ok || n != 42 {
		t.Fatalf("expected Number 42, got %#v", v)
	}
}

func TestParseLists(t *testing.T) {
	expectRoundTrip(t, "(1 2 3)", "(1 2 3)")
	expectRoundTrip(t, "( 1  (2 3) )", "(1 (2 3))")
	expectRoundTrip(t, "(1 . 2)", "(1 . 2)")
	expectRoundTrip(t, "(1 2 . 3)", "(1 2 . 3)")
	expectRoundTrip(t, "(1 . (2 3))", "(1 2 3)")
	expectRoundTrip(t, "(())", "(())")
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "()", "\n"} {
		v, err := Parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if v != nil {
			t.Fatalf("parse %q: expected empty list, got %s", input, runtime.Serialize(v))
		}
	}
}

func TestParseQuote(t *testing.T) {
	expectRoundTrip(t, "'x", "(quote x)")
	expectRoundTrip(t, "'(1 2)", "(quote (1 2))")
	expectRoundTrip(t, "''a", "(quote (quote a))")
}

func TestParseSyntaxErrors(t *testing.T) {
	for _, input := range []string{
		"(1 2",
		")",
		"(1 2))",
		"1 2",
		"(. 1)",
		"(1 . 2 3)",
		"(1 .)",
		".",
		"'",
		"99999999999999999999",
	} {
		expectSyntaxError(t, input)
	}
}

func TestIsIncomplete(t *testing.T) {
	for _, input := range []string{"(1 2", "(define (f x)", "'"} {
		if _, err := Parse(input); !IsIncomplete(err) {
			t.Errorf("Parse(%q): expected incomplete input, got %v", input, err)
		}
	}
	for _, input := range []string{")", "(1 2))", "1 2"} {
		if _, err := Parse(input); IsIncomplete(err) {
			t.Errorf("Parse(%q): unexpected incomplete input error %v", input, err)
		}
	}
}

func TestParserStream(t *testing.T) {
	p := New("(define x 1) x ; trailing comment\n'y")
	var got []string
	for {
		v, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		got = append(got, runtime.Serialize(v))
	}
	expected := []string{"(define x 1)", "x", "(quote y)"}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expression %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}
