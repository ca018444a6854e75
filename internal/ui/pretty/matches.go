package pretty

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/craftide/textcore/pkg/search"
	"github.com/craftide/textcore/pkg/text"
)

const defaultTermWidth = 120

// terminalWidth returns the width of the attached terminal, or a default
// when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

// RenderMatches renders every match in the set as path:line:col lines with
// the matched text emphasized inside its source line. The current match of
// the set gets the stronger style.
func (s *Styles) RenderMatches(snapshot *text.Snapshot, set *search.MatchSet) string {
	if set == nil || set.IsEmpty() {
		return ""
	}

	width := terminalWidth()

	var builder strings.Builder
	for i, span := range set.Matches() {
		pos, ok := snapshot.PositionAt(span.Start)
		if !ok {
			continue
		}

		matchStyle := s.Match
		if i == set.CurrentIndex() {
			matchStyle = s.CurrentMatch
		}

		location := fmt.Sprintf("%s:%d:%d",
			s.FilePath.Render(snapshot.Path),
			pos.Line,
			pos.Column+1,
		)

		builder.WriteString(location)
		builder.WriteString(": ")
		builder.WriteString(s.renderMatchLine(snapshot, span, pos, matchStyle, width))
		builder.WriteString("\n")
	}
	return builder.String()
}

// renderMatchLine renders the source line holding the match, styling the
// matched bytes and truncating long lines to the terminal width.
func (s *Styles) renderMatchLine(snapshot *text.Snapshot, span text.Span, pos text.Position, matchStyle lipgloss.Style, width int) string {
	line := snapshot.LineContent(pos.Line)
	info := snapshot.Lines[pos.Line-1]

	matchStart := span.Start - info.StartOffset
	matchEnd := span.End - info.StartOffset
	if matchEnd > len(line) {
		matchEnd = len(line)
	}
	if matchStart < 0 || matchStart > matchEnd {
		return s.SourceText.Render(string(line))
	}

	before := string(line[:matchStart])
	matched := string(line[matchStart:matchEnd])
	after := string(line[matchEnd:])

	// Truncate the trailing context; the match itself is never cut
	budget := width - len(before) - len(matched) - 16
	if budget > 0 && len(after) > budget {
		after = after[:budget] + "..."
	}

	return s.SourceText.Render(before) + matchStyle.Render(matched) + s.SourceText.Render(after)
}

// FormatMatchSummary formats a one-line count of matches for a term.
// Example: "3 matches for \"foo\" in src/Main.java".
func (s *Styles) FormatMatchSummary(set *search.MatchSet, path string) string {
	if set == nil || set.IsEmpty() {
		term := ""
		if set != nil {
			term = set.Query().Term
		}
		return s.Dim.Render(fmt.Sprintf("no matches for %q", term)) + "\n"
	}

	matchWord := "matches"
	if set.Len() == 1 {
		matchWord = "match"
	}
	msg := fmt.Sprintf("%d %s for %q", set.Len(), matchWord, set.Query().Term)
	if path != "" {
		msg += " in " + path
	}
	return s.Bold.Render(msg) + "\n"
}
