// Package search builds ordered match sets over a snapshot and supports
// cyclic navigation and offset-safe replacement. A MatchSet is valid only
// for the exact text it was built from; any edit to the text invalidates it
// and callers must rebuild.
package search

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/craftide/textcore/pkg/text"
)

// ErrInvalidPattern reports a malformed regex-mode search term.
// No partial MatchSet accompanies this error; callers keep whatever
// MatchSet they already had.
var ErrInvalidPattern = errors.New("invalid search pattern")

// Query holds the parameters of one search invocation.
type Query struct {
	// Term is the literal text or, in regex mode, the pattern source.
	Term string

	// CaseSensitive controls case folding. Literal folding is ASCII-only;
	// in regex mode insensitivity is applied as a pattern flag rather than
	// by folding the text.
	CaseSensitive bool

	// WholeWord discards matches adjacent to alphanumeric characters.
	// It applies to literal searches only.
	WholeWord bool

	// Regex selects pattern matching instead of substring search.
	Regex bool
}

// Build scans the snapshot and returns the ordered MatchSet for the query.
// An empty term or empty snapshot produces an empty set, not an error.
func Build(snapshot *text.Snapshot, query Query) (*MatchSet, error) {
	set := &MatchSet{query: query, current: -1}

	if snapshot == nil || len(snapshot.Content) == 0 || query.Term == "" {
		return set, nil
	}

	content := string(snapshot.Content)

	if query.Regex {
		spans, err := regexSpans(content, query)
		if err != nil {
			return nil, err
		}
		set.matches = spans
	} else {
		set.matches = literalSpans(content, query)
	}

	if len(set.matches) > 0 {
		set.current = 0
	}
	set.content = content
	return set, nil
}

// regexSpans compiles the term and collects all pattern matches.
func regexSpans(content string, query Query) ([]text.Span, error) {
	source := query.Term
	if !query.CaseSensitive {
		source = "(?i)" + source
	}

	pattern, err := regexp.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	locs := pattern.FindAllStringIndex(content, -1)
	spans := make([]text.Span, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, text.Span{Start: loc[0], End: loc[1]})
	}
	return spans, nil
}

// literalSpans scans substring occurrences left to right.
//
// After recording a match the scan resumes at start+1, not at the match
// end. Multi-character terms can therefore yield overlapping matches; the
// editor has always counted matches this way and the behavior is kept.
func literalSpans(content string, query Query) []text.Span {
	haystack := content
	needle := query.Term
	if !query.CaseSensitive {
		haystack = foldASCII(content)
		needle = foldASCII(needle)
	}

	var spans []text.Span

	start := 0
	for {
		rel := strings.Index(haystack[start:], needle)
		if rel < 0 {
			break
		}
		pos := start + rel

		if query.WholeWord && !isWholeWord(content, pos, pos+len(needle)) {
			start = pos + 1
			continue
		}

		spans = append(spans, text.Span{Start: pos, End: pos + len(needle)})
		start = pos + 1
	}

	return spans
}

// isWholeWord reports whether the characters flanking [start, end) are both
// non-alphanumeric (or absent).
func isWholeWord(content string, start, end int) bool {
	if start > 0 && isAlnum(content[start-1]) {
		return false
	}
	if end < len(content) && isAlnum(content[end]) {
		return false
	}
	return true
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// foldASCII lowercases A-Z byte by byte. Unlike strings.ToLower it never
// changes byte length, so an index found in the folded string is valid in
// the original. Non-ASCII runes pass through unchanged and compare
// case-sensitively, matching the ASCII word rules in isAlnum.
func foldASCII(s string) string {
	folded := []byte(s)
	for i, b := range folded {
		if b >= 'A' && b <= 'Z' {
			folded[i] = b + 'a' - 'A'
		}
	}
	return string(folded)
}
