package pretty

import "github.com/craftide/textcore/pkg/config"

// RenderTheme is an immutable color assignment for rendering highlighted
// source. The engine is theme-agnostic; themes exist only in this layer.
// Category colors are fixed across themes except the keyword accent, which
// is what distinguishes the named themes.
type RenderTheme struct {
	Name string

	// Accent colors keywords and the current search match.
	Accent string

	// Per-category colors.
	String     string
	Comment    string
	Number     string
	Operator   string
	Annotation string
	ClassName  string

	// Chrome colors.
	Text string
	Dim  string
}

// baseTheme carries the category colors shared by every named theme.
func baseTheme(name, accent string) RenderTheme {
	return RenderTheme{
		Name:       name,
		Accent:     accent,
		String:     "#90ee90",
		Comment:    "#999999",
		Number:     "#87ceeb",
		Operator:   "#ff6b6b",
		Annotation: "#ffd700",
		ClassName:  "#dda0dd",
		Text:       "#ffffff",
		Dim:        "#999999",
	}
}

// Themes returns the built-in render themes keyed by config theme name.
func Themes() map[string]RenderTheme {
	return map[string]RenderTheme{
		config.ThemeDarkOrange:  baseTheme(config.ThemeDarkOrange, "#ff8c42"),
		config.ThemeDarkBlue:    baseTheme(config.ThemeDarkBlue, "#007acc"),
		config.ThemeForestGreen: baseTheme(config.ThemeForestGreen, "#4caf50"),
		config.ThemePurpleHaze:  baseTheme(config.ThemePurpleHaze, "#9c27b0"),
	}
}

// ThemeByName resolves a theme name, falling back to dark-orange.
func ThemeByName(name string) RenderTheme {
	if theme, ok := Themes()[name]; ok {
		return theme
	}
	return Themes()[config.ThemeDarkOrange]
}
