// Package complete provides static prefix completion over the editor's
// keyword, method, and API type catalogs. The index is immutable after
// construction and safe for concurrent lookups.
package complete

import "strings"

// Kind categorizes a completion candidate by its source catalog.
type Kind string

// Candidate kinds, in catalog search order.
const (
	KindKeyword Kind = "keyword"
	KindMethod  Kind = "method"
	KindClass   Kind = "class"
)

// Candidate is one completion suggestion.
type Candidate struct {
	Kind Kind
	Text string
}

// MinPrefixLen is the shortest prefix that yields candidates. Single-letter
// prefixes match too much of every catalog to be useful in a popup.
const MinPrefixLen = 2

// MaxCandidates caps the number of candidates returned per lookup.
const MaxCandidates = 10

// Index holds the three candidate catalogs in fixed search order:
// keywords, then methods, then API types.
type Index struct {
	keywords []string
	methods  []string
	apiTypes []string
	limit    int
}

// NewIndex creates an Index over the built-in catalogs.
func NewIndex() *Index {
	return &Index{
		keywords: Keywords,
		methods:  Methods,
		apiTypes: APITypes,
		limit:    MaxCandidates,
	}
}

// NewIndexWith creates an Index with extra entries appended to each
// catalog and an optional candidate limit (0 keeps the default).
func NewIndexWith(extraKeywords, extraMethods, extraTypes []string, limit int) *Index {
	if limit <= 0 {
		limit = MaxCandidates
	}
	return &Index{
		keywords: append(append([]string{}, Keywords...), extraKeywords...),
		methods:  append(append([]string{}, Methods...), extraMethods...),
		apiTypes: append(append([]string{}, APITypes...), extraTypes...),
		limit:    limit,
	}
}

// Complete returns candidates whose text starts with prefix,
// case-insensitively, in catalog order, truncated to the index limit.
// Prefixes shorter than MinPrefixLen yield no candidates.
func (ix *Index) Complete(prefix string) []Candidate {
	if len(prefix) < MinPrefixLen {
		return nil
	}

	folded := strings.ToLower(prefix)
	var out []Candidate

	appendMatches := func(kind Kind, catalog []string) {
		for _, entry := range catalog {
			if len(out) >= ix.limit {
				return
			}
			if strings.HasPrefix(strings.ToLower(entry), folded) {
				out = append(out, Candidate{Kind: kind, Text: entry})
			}
		}
	}

	appendMatches(KindKeyword, ix.keywords)
	appendMatches(KindMethod, ix.methods)
	appendMatches(KindClass, ix.apiTypes)

	return out
}
