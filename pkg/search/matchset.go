package search

import "github.com/craftide/textcore/pkg/text"

// MatchSet is the ordered result of one search invocation: the matched
// spans, the query that produced them, and a current-index cursor for
// cyclic navigation. The cursor is -1 when the set is empty, so empty-set
// handling is explicit rather than leaning on modulo-by-zero guards.
type MatchSet struct {
	matches []text.Span
	current int
	query   Query
	content string
}

// Query returns the search parameters that produced this set.
func (ms *MatchSet) Query() Query {
	return ms.query
}

// Matches returns the matched spans in ascending start order.
func (ms *MatchSet) Matches() []text.Span {
	return ms.matches
}

// Len returns the number of matches.
func (ms *MatchSet) Len() int {
	return len(ms.matches)
}

// IsEmpty returns true if the set holds no matches.
func (ms *MatchSet) IsEmpty() bool {
	return len(ms.matches) == 0
}

// CurrentIndex returns the cursor index, or -1 for an empty set.
func (ms *MatchSet) CurrentIndex() int {
	return ms.current
}

// Current returns the match under the cursor.
func (ms *MatchSet) Current() (text.Span, bool) {
	if ms.current < 0 || ms.current >= len(ms.matches) {
		return text.Span{}, false
	}
	return ms.matches[ms.current], true
}

// Next advances the cursor cyclically and returns the new current match.
// On an empty set it is a no-op.
func (ms *MatchSet) Next() (text.Span, bool) {
	if len(ms.matches) == 0 {
		return text.Span{}, false
	}
	ms.current = (ms.current + 1) % len(ms.matches)
	return ms.matches[ms.current], true
}

// Previous moves the cursor backward cyclically, wrapping from the first
// match to the last. On an empty set it is a no-op.
func (ms *MatchSet) Previous() (text.Span, bool) {
	if len(ms.matches) == 0 {
		return text.Span{}, false
	}
	ms.current = (ms.current - 1 + len(ms.matches)) % len(ms.matches)
	return ms.matches[ms.current], true
}

// ReplaceCurrent replaces the currently-selected match with replacement and
// returns the mutated text along with a MatchSet rebuilt from it. Rebuilding
// is a correctness requirement, not an optimization choice: every offset
// downstream of the edit is stale the moment the text changes.
//
// The rebuilt set's cursor stays near the edit by clamping the previous
// index into the new match count.
func (ms *MatchSet) ReplaceCurrent(replacement string) (string, *MatchSet, error) {
	span, ok := ms.Current()
	if !ok {
		return ms.content, ms, nil
	}

	mutated := ms.content[:span.Start] + replacement + ms.content[span.End:]

	rebuilt, err := Build(text.NewSnapshot("", []byte(mutated)), ms.query)
	if err != nil {
		return ms.content, ms, err
	}

	if rebuilt.Len() > 0 && ms.current < rebuilt.Len() {
		rebuilt.current = ms.current
	}

	return mutated, rebuilt, nil
}

// ReplaceAll replaces every match with replacement and returns the mutated
// text and the number of replacements performed.
//
// Replacements are applied in strictly descending offset order, last match
// first, so no replacement ever shifts the offsets of matches still
// waiting to be processed. Afterwards the set is cleared, not rebuilt:
// every match has been consumed.
func (ms *MatchSet) ReplaceAll(replacement string) (string, int) {
	if len(ms.matches) == 0 {
		return ms.content, 0
	}

	mutated := ms.content
	count := 0
	for idx := len(ms.matches) - 1; idx >= 0; idx-- {
		span := ms.matches[idx]
		mutated = mutated[:span.Start] + replacement + mutated[span.End:]
		count++
	}

	ms.matches = nil
	ms.current = -1
	ms.content = mutated

	return mutated, count
}
