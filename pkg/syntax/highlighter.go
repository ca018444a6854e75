package syntax

import "github.com/craftide/textcore/pkg/text"

// Highlighter runs a catalog's rules over full snapshots.
// It is read-only over its input and safe for concurrent use against
// different snapshots.
type Highlighter struct {
	catalog Catalog
}

// NewHighlighter creates a Highlighter for the given catalog.
func NewHighlighter(catalog Catalog) *Highlighter {
	return &Highlighter{catalog: catalog}
}

// NewDefaultHighlighter creates a Highlighter with the Java catalog.
func NewDefaultHighlighter() *Highlighter {
	return NewHighlighter(DefaultCatalog())
}

// Highlight scans the entire snapshot and returns every category match as
// a Tag, in catalog order and then ascending start offset within each
// category. The scan covers the whole snapshot on every call; callers
// throttle invocation frequency, not the engine.
//
// A span whose endpoints cannot be resolved to positions is skipped: the
// snapshot may be stale relative to the surface that requested the pass.
func (h *Highlighter) Highlight(snapshot *text.Snapshot) []Tag {
	if snapshot == nil || len(snapshot.Content) == 0 {
		return nil
	}

	var tags []Tag

	for _, entry := range h.catalog {
		for _, span := range entry.Matcher.Matches(snapshot.Content) {
			start, ok := snapshot.PositionAt(span.Start)
			if !ok {
				continue
			}
			end, ok := snapshot.PositionAt(span.End)
			if !ok {
				continue
			}

			tags = append(tags, Tag{
				Category: entry.Category,
				Span:     span,
				Start:    start,
				End:      end,
			})
		}
	}

	return tags
}
