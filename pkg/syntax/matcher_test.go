package syntax_test

import (
	"testing"

	"github.com/craftide/textcore/pkg/syntax"
	"github.com/craftide/textcore/pkg/text"
)

func spansOf(t *testing.T, m syntax.Matcher, content string) []text.Span {
	t.Helper()
	return m.Matches([]byte(content))
}

func TestWordSetMatcher(t *testing.T) {
	t.Parallel()

	matcher := syntax.NewWordSetMatcher([]string{"public", "class", "if"})

	tests := []struct {
		name     string
		content  string
		expected []text.Span
	}{
		{
			name:    "two keywords",
			content: "public class Main",
			expected: []text.Span{
				{Start: 0, End: 6},
				{Start: 7, End: 12},
			},
		},
		{
			name:     "keyword inside identifier is not a token",
			content:  "classify ifs publicly",
			expected: nil,
		},
		{
			name:     "case sensitive",
			content:  "Public CLASS If",
			expected: nil,
		},
		{
			name:    "bounded by punctuation",
			content: "if(x)",
			expected: []text.Span{
				{Start: 0, End: 2},
			},
		},
		{
			name:    "dollar and underscore extend the token",
			content: "if$ if_x if",
			expected: []text.Span{
				{Start: 9, End: 11},
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := spansOf(t, matcher, testCase.content)
			assertSpans(t, testCase.expected, got)
		})
	}
}

func TestStringMatcher(t *testing.T) {
	t.Parallel()

	matcher := syntax.NewStringMatcher()

	tests := []struct {
		name     string
		content  string
		expected []text.Span
	}{
		{
			name:    "double quoted",
			content: `x = "hello";`,
			expected: []text.Span{
				{Start: 4, End: 11},
			},
		},
		{
			name:    "single quoted char",
			content: `c = 'a';`,
			expected: []text.Span{
				{Start: 4, End: 7},
			},
		},
		{
			name:    "escaped quote stays inside",
			content: `s = "he said \"hi\"";`,
			expected: []text.Span{
				{Start: 4, End: 20},
			},
		},
		{
			name:    "two literals are separate non-greedy matches",
			content: `a = "x"; b = "y";`,
			expected: []text.Span{
				{Start: 4, End: 7},
				{Start: 13, End: 16},
			},
		},
		{
			name:    "unterminated literal runs to end of text",
			content: `s = "never closed`,
			expected: []text.Span{
				{Start: 4, End: 17},
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := spansOf(t, matcher, testCase.content)
			assertSpans(t, testCase.expected, got)
		})
	}
}

func TestCommentMatcher(t *testing.T) {
	t.Parallel()

	matcher := syntax.NewCommentMatcher()

	tests := []struct {
		name     string
		content  string
		expected []text.Span
	}{
		{
			name:    "line comment stops at newline",
			content: "int x; // count\nint y;",
			expected: []text.Span{
				{Start: 7, End: 15},
			},
		},
		{
			name:    "line comment at end of text",
			content: "// trailing",
			expected: []text.Span{
				{Start: 0, End: 11},
			},
		},
		{
			name:    "block comment spans lines",
			content: "a /* one\ntwo */ b",
			expected: []text.Span{
				{Start: 2, End: 15},
			},
		},
		{
			name:    "unterminated block comment runs to end of text",
			content: "a /* open",
			expected: []text.Span{
				{Start: 2, End: 9},
			},
		},
		{
			name:    "line comment wins at shared start",
			content: "// also /* not a block\nx",
			expected: []text.Span{
				{Start: 0, End: 22},
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := spansOf(t, matcher, testCase.content)
			assertSpans(t, testCase.expected, got)
		})
	}
}

func TestCharSetMatcher(t *testing.T) {
	t.Parallel()

	matcher := syntax.NewCharSetMatcher(syntax.OperatorChars)

	got := spansOf(t, matcher, "a += b * 2")
	expected := []text.Span{
		{Start: 2, End: 3},
		{Start: 3, End: 4},
		{Start: 7, End: 8},
	}
	assertSpans(t, expected, got)
}

func assertSpans(t *testing.T, expected, got []text.Span) {
	t.Helper()

	if len(got) != len(expected) {
		t.Fatalf("expected %d spans %v, got %d spans %v", len(expected), expected, len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("span %d: expected %+v, got %+v", i, expected[i], got[i])
		}
	}
}
