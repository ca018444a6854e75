// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/craftide/textcore/pkg/syntax"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Category styles
	Keyword    lipgloss.Style
	String     lipgloss.Style
	Comment    lipgloss.Style
	Number     lipgloss.Style
	Operator   lipgloss.Style
	Annotation lipgloss.Style
	ClassName  lipgloss.Style

	// Search match components
	Match        lipgloss.Style
	CurrentMatch lipgloss.Style

	// Source components
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	LineNumber lipgloss.Style
	SourceText lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles for the given theme and color mode.
func NewStyles(theme RenderTheme, colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles(theme)
}

func newColorStyles(theme RenderTheme) *Styles {
	return &Styles{
		// Category colors come from the theme; keywords take the accent
		Keyword:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Bold(true),
		String:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.String)),
		Comment:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Comment)).Italic(true),
		Number:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Number)),
		Operator:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Operator)),
		Annotation: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Annotation)),
		ClassName:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ClassName)),

		// Search matches
		Match:        lipgloss.NewStyle().Reverse(true),
		CurrentMatch: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Reverse(true).Bold(true),

		// Source components
		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Dim)),
		SourceText: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text)),

		// Summary styles
		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		// Misc
		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Keyword:      plain,
		String:       plain,
		Comment:      plain,
		Number:       plain,
		Operator:     plain,
		Annotation:   plain,
		ClassName:    plain,
		Match:        plain,
		CurrentMatch: plain,
		FilePath:     plain,
		Location:     plain,
		LineNumber:   plain,
		SourceText:   plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Success:      plain,
		Failure:      plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// CategoryStyle returns the style for a highlight category.
func (s *Styles) CategoryStyle(category syntax.Category) lipgloss.Style {
	switch category {
	case syntax.CategoryKeyword:
		return s.Keyword
	case syntax.CategoryString:
		return s.String
	case syntax.CategoryComment:
		return s.Comment
	case syntax.CategoryNumber:
		return s.Number
	case syntax.CategoryAnnotation:
		return s.Annotation
	case syntax.CategoryClassName:
		return s.ClassName
	case syntax.CategoryOperator:
		return s.Operator
	default:
		return s.SourceText
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
