package bracket_test

import (
	"testing"

	"github.com/craftide/textcore/pkg/bracket"
	"github.com/craftide/textcore/pkg/text"
)

func snapshotOf(content string) *text.Snapshot {
	return text.NewSnapshot("Test.java", []byte(content))
}

func TestMatch_ForwardScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		cursor   int
		expected bracket.Pair
		ok       bool
	}{
		{
			name:     "simple parens",
			content:  "f(x)",
			cursor:   1,
			expected: bracket.Pair{Opener: 1, Closer: 3, Kind: bracket.KindParen},
			ok:       true,
		},
		{
			name:     "nested braces skip inner pair",
			content:  "{ { } }",
			cursor:   0,
			expected: bracket.Pair{Opener: 0, Closer: 6, Kind: bracket.KindBrace},
			ok:       true,
		},
		{
			name:     "square brackets",
			content:  "a[i[j]]",
			cursor:   1,
			expected: bracket.Pair{Opener: 1, Closer: 6, Kind: bracket.KindSquare},
			ok:       true,
		},
		{
			name:    "unbalanced opener",
			content: "((x)",
			cursor:  0,
			ok:      false,
		},
		{
			name:    "mixed kinds do not close each other",
			content: "(]",
			cursor:  0,
			ok:      false,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			pair, ok := bracket.Match(snapshotOf(testCase.content), testCase.cursor)
			if ok != testCase.ok {
				t.Fatalf("expected ok=%v, got ok=%v", testCase.ok, ok)
			}
			if ok && pair != testCase.expected {
				t.Errorf("expected %+v, got %+v", testCase.expected, pair)
			}
		})
	}
}

func TestMatch_BackwardScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		cursor   int
		expected bracket.Pair
		ok       bool
	}{
		{
			name:     "cursor just after closer",
			content:  "f(x)",
			cursor:   4,
			expected: bracket.Pair{Opener: 1, Closer: 3, Kind: bracket.KindParen},
			ok:       true,
		},
		{
			name:     "nested braces skip inner pair",
			content:  "{ { } }",
			cursor:   7,
			expected: bracket.Pair{Opener: 0, Closer: 6, Kind: bracket.KindBrace},
			ok:       true,
		},
		{
			name:    "unbalanced closer",
			content: "x))",
			cursor:  2,
			ok:      false,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			pair, ok := bracket.Match(snapshotOf(testCase.content), testCase.cursor)
			if ok != testCase.ok {
				t.Fatalf("expected ok=%v, got ok=%v", testCase.ok, ok)
			}
			if ok && pair != testCase.expected {
				t.Errorf("expected %+v, got %+v", testCase.expected, pair)
			}
		})
	}
}

func TestMatch_Symmetry(t *testing.T) {
	t.Parallel()

	// Matching from the opener and from just after its closer must agree.
	content := "void run() { int[] a = f(g(x), y); }"
	snapshot := snapshotOf(content)

	for cursor, char := range []byte(content) {
		if char != '(' && char != '[' && char != '{' {
			continue
		}

		forward, ok := bracket.Match(snapshot, cursor)
		if !ok {
			t.Errorf("no pair for opener at %d", cursor)
			continue
		}

		backward, ok := bracket.Match(snapshot, forward.Closer+1)
		if !ok {
			t.Errorf("no pair scanning back from %d", forward.Closer+1)
			continue
		}

		if forward != backward {
			t.Errorf("asymmetric result at %d: forward %+v, backward %+v", cursor, forward, backward)
		}
	}
}

func TestMatch_NoBracketAtCursor(t *testing.T) {
	t.Parallel()

	snapshot := snapshotOf("plain text")

	if _, ok := bracket.Match(snapshot, 2); ok {
		t.Error("expected no pair on a non-bracket character")
	}
	if _, ok := bracket.Match(snapshot, -1); ok {
		t.Error("expected no pair for negative cursor")
	}
	if _, ok := bracket.Match(snapshot, 99); ok {
		t.Error("expected no pair for cursor past end")
	}
	if _, ok := bracket.Match(nil, 0); ok {
		t.Error("expected no pair for nil snapshot")
	}
}

func TestBalanced(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{"empty", "", true},
		{"no brackets", "plain text", true},
		{"balanced nesting", "void f() { a[i] = g(x); }", true},
		{"unclosed opener", "f(", false},
		{"stray closer", "f)", false},
		{"interleaved kinds", "([)]", false},
		{"closed out of order", "}{", false},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := bracket.Balanced(snapshotOf(testCase.content)); got != testCase.expected {
				t.Errorf("Balanced(%q): expected %v, got %v", testCase.content, testCase.expected, got)
			}
		})
	}

	if !bracket.Balanced(nil) {
		t.Error("expected nil snapshot to count as balanced")
	}
}

func TestMatch_OpenerWinsOverPrecedingCloser(t *testing.T) {
	t.Parallel()

	// Cursor sits between ")(": the opening bracket at the cursor takes
	// precedence over the closing bracket before it.
	snapshot := snapshotOf("()()")

	pair, ok := bracket.Match(snapshot, 2)
	if !ok {
		t.Fatal("expected a pair")
	}
	if pair != (bracket.Pair{Opener: 2, Closer: 3, Kind: bracket.KindParen}) {
		t.Errorf("got %+v", pair)
	}
}

func TestMatch_BracketsInsideStringsCount(t *testing.T) {
	t.Parallel()

	// The scan is lexical: a bracket inside a string literal still
	// participates in depth counting.
	snapshot := snapshotOf(`f(")")`)

	pair, ok := bracket.Match(snapshot, 1)
	if !ok {
		t.Fatal("expected a pair")
	}
	if pair.Closer != 3 {
		t.Errorf("expected the quoted closer at 3 to pair, got %d", pair.Closer)
	}
}
