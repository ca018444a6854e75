package pretty

import (
	"fmt"
	"strings"

	"github.com/craftide/textcore/pkg/syntax"
	"github.com/craftide/textcore/pkg/text"
)

// noCategory marks bytes no tag covers.
const noCategory = -1

// categoryMap assigns each byte of the snapshot the category of the last
// tag covering it. Tags arrive in catalog application order, so overwriting
// gives later categories visual precedence over earlier ones.
func categoryMap(snapshot *text.Snapshot, tags []syntax.Tag) []int {
	byteCategory := make([]int, snapshot.Len())
	for i := range byteCategory {
		byteCategory[i] = noCategory
	}
	for _, tag := range tags {
		for i := tag.Span.Start; i < tag.Span.End && i < len(byteCategory); i++ {
			byteCategory[i] = int(tag.Category)
		}
	}
	return byteCategory
}

// RenderSource renders snapshot content with per-category styling and a
// dimmed line-number gutter.
func (s *Styles) RenderSource(snapshot *text.Snapshot, tags []syntax.Tag) string {
	if snapshot == nil || snapshot.Len() == 0 {
		return ""
	}

	byteCategory := categoryMap(snapshot, tags)
	gutterWidth := len(fmt.Sprintf("%d", snapshot.LineCount()))

	var builder strings.Builder
	for lineNum := 1; lineNum <= snapshot.LineCount(); lineNum++ {
		info := snapshot.Lines[lineNum-1]

		builder.WriteString(s.LineNumber.Render(fmt.Sprintf("%*d", gutterWidth, lineNum)))
		builder.WriteString("  ")
		builder.WriteString(s.renderRuns(snapshot.Content, byteCategory, info.StartOffset, info.NewlineStart))
		builder.WriteString("\n")
	}
	return builder.String()
}

// renderRuns styles the bytes in [start, end), batching consecutive bytes
// of the same category into one styled run.
func (s *Styles) renderRuns(content []byte, byteCategory []int, start, end int) string {
	var builder strings.Builder

	runStart := start
	for i := start + 1; i <= end; i++ {
		if i < end && byteCategory[i] == byteCategory[runStart] {
			continue
		}
		run := string(content[runStart:i])
		if cat := byteCategory[runStart]; cat == noCategory {
			builder.WriteString(s.SourceText.Render(run))
		} else {
			builder.WriteString(s.CategoryStyle(syntax.Category(cat)).Render(run))
		}
		runStart = i
	}
	return builder.String()
}
