package syntax

import (
	"regexp"

	"github.com/craftide/textcore/pkg/text"
)

// Matcher is one category's recognition rule. Implementations scan the full
// content and return every matching span in ascending start order.
//
// Three variants cover the catalog: fixed word-set lookup (keywords),
// delimited spans (strings and comments), and compiled patterns or single
// character classes for the rest. New rule kinds slot in without touching
// the highlighter loop.
type Matcher interface {
	Matches(content []byte) []text.Span
}

// isWordByte reports whether b is an identifier character.
func isWordByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// wordSetMatcher matches whole tokens against a closed set of words.
// Matches are case-sensitive and must be bounded by non-identifier bytes.
type wordSetMatcher struct {
	words map[string]struct{}
}

// NewWordSetMatcher builds a matcher for a fixed set of reserved words.
func NewWordSetMatcher(words []string) Matcher {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return &wordSetMatcher{words: set}
}

func (m *wordSetMatcher) Matches(content []byte) []text.Span {
	var spans []text.Span

	idx := 0
	for idx < len(content) {
		if !isWordByte(content[idx]) {
			idx++
			continue
		}

		start := idx
		for idx < len(content) && isWordByte(content[idx]) {
			idx++
		}

		if _, ok := m.words[string(content[start:idx])]; ok {
			spans = append(spans, text.Span{Start: start, End: idx})
		}
	}

	return spans
}

// delimRule describes one delimited-span form: an opening delimiter, a
// closing delimiter, and whether backslash escapes the closer. A rule with
// toLineEnd set terminates at the end of the line instead of a closer.
type delimRule struct {
	open      string
	close     string
	escapable bool
	toLineEnd bool
}

// delimMatcher matches delimited spans such as string literals and
// comments. A span left unterminated at end of text is tagged from its
// opening delimiter to the end of text.
type delimMatcher struct {
	rules []delimRule
}

// NewStringMatcher matches double- and single-quoted literals with
// backslash-escaped delimiters, non-greedy to the first unescaped closer.
func NewStringMatcher() Matcher {
	return &delimMatcher{rules: []delimRule{
		{open: `"`, close: `"`, escapable: true},
		{open: `'`, close: `'`, escapable: true},
	}}
}

// NewCommentMatcher matches line comments to end of line and block
// comments to the nearest following closer, spanning lines if needed.
func NewCommentMatcher() Matcher {
	return &delimMatcher{rules: []delimRule{
		{open: "//", toLineEnd: true},
		{open: "/*", close: "*/"},
	}}
}

func (m *delimMatcher) Matches(content []byte) []text.Span {
	var spans []text.Span

	idx := 0
	for idx < len(content) {
		rule, ok := m.ruleAt(content, idx)
		if !ok {
			idx++
			continue
		}

		end := m.scanClose(content, idx+len(rule.open), rule)
		spans = append(spans, text.Span{Start: idx, End: end})
		idx = end
	}

	return spans
}

// ruleAt returns the first rule whose opening delimiter starts at idx.
func (m *delimMatcher) ruleAt(content []byte, idx int) (delimRule, bool) {
	for _, rule := range m.rules {
		if hasPrefixAt(content, idx, rule.open) {
			return rule, true
		}
	}
	return delimRule{}, false
}

// scanClose finds the end of a span opened just before idx.
// Unterminated spans run to end of text.
func (m *delimMatcher) scanClose(content []byte, idx int, rule delimRule) int {
	for idx < len(content) {
		if rule.toLineEnd {
			if content[idx] == '\n' {
				return idx
			}
			idx++
			continue
		}

		if rule.escapable && content[idx] == '\\' {
			idx += 2
			continue
		}

		if hasPrefixAt(content, idx, rule.close) {
			return idx + len(rule.close)
		}
		idx++
	}

	return len(content)
}

func hasPrefixAt(content []byte, idx int, prefix string) bool {
	if idx+len(prefix) > len(content) {
		return false
	}
	return string(content[idx:idx+len(prefix)]) == prefix
}

// regexpMatcher matches a compiled pattern over the full content.
type regexpMatcher struct {
	pattern *regexp.Regexp
}

// NewRegexpMatcher wraps a compiled regular expression as a Matcher.
func NewRegexpMatcher(pattern *regexp.Regexp) Matcher {
	return &regexpMatcher{pattern: pattern}
}

func (m *regexpMatcher) Matches(content []byte) []text.Span {
	locs := m.pattern.FindAllIndex(content, -1)
	if len(locs) == 0 {
		return nil
	}

	spans := make([]text.Span, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, text.Span{Start: loc[0], End: loc[1]})
	}
	return spans
}

// charSetMatcher matches any single byte drawn from a fixed set.
type charSetMatcher struct {
	set [256]bool
}

// NewCharSetMatcher builds a matcher for single characters from chars.
func NewCharSetMatcher(chars string) Matcher {
	m := &charSetMatcher{}
	for i := 0; i < len(chars); i++ {
		m.set[chars[i]] = true
	}
	return m
}

func (m *charSetMatcher) Matches(content []byte) []text.Span {
	var spans []text.Span
	for idx := range content {
		if m.set[content[idx]] {
			spans = append(spans, text.Span{Start: idx, End: idx + 1})
		}
	}
	return spans
}
