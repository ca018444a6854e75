package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/craftide/textcore/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "42 tags in 3 files (1 skipped)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	fileWord := wordFiles
	if stats.FilesAnalyzed == 1 {
		fileWord = wordFile
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%d tags in %d %s", stats.TagsTotal, stats.FilesAnalyzed, fileWord))

	if stats.MatchesTotal > 0 {
		parts = append(parts, s.Bold.Render(fmt.Sprintf("%d matches", stats.MatchesTotal)))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d errored", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files analyzed:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesAnalyzed)) + "\n")

	if stats.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:     " +
			s.Dim.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:     " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString("  Tags:              " +
		s.SummaryValue.Render(strconv.Itoa(stats.TagsTotal)) + "\n")
	builder.WriteString("  Matches:           " +
		s.SummaryValue.Render(strconv.Itoa(stats.MatchesTotal)) + "\n")

	builder.WriteString("\n")
	if stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Completed with errors"))
	} else {
		builder.WriteString(s.Success.Render("Completed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
