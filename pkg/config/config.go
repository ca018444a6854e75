// Package config defines textcore's configuration: which categories the
// highlighter runs, search defaults for the find panel, extra completion
// catalog entries, and the name of the render theme used by the terminal
// rendering layer. The engine itself takes no style input; themes are
// resolved entirely in the rendering collaborator.
package config

import (
	"fmt"
	"slices"
)

// Theme names understood by the rendering layer.
const (
	ThemeDarkOrange  = "dark-orange"
	ThemeDarkBlue    = "dark-blue"
	ThemeForestGreen = "forest-green"
	ThemePurpleHaze  = "purple-haze"
)

// KnownThemes lists the built-in render themes.
var KnownThemes = []string{
	ThemeDarkOrange,
	ThemeDarkBlue,
	ThemeForestGreen,
	ThemePurpleHaze,
}

// KnownCategories lists the highlight category names accepted in
// Categories. Order here is informational; application order is fixed by
// the syntax catalog.
var KnownCategories = []string{
	"keyword", "string", "comment", "number", "annotation", "classname", "operator",
}

// SearchDefaults holds the find panel's default flags.
type SearchDefaults struct {
	CaseSensitive bool `yaml:"case_sensitive"`
	WholeWord     bool `yaml:"whole_word"`
	Regex         bool `yaml:"regex"`
}

// Completion holds additions to the static completion catalogs.
type Completion struct {
	ExtraKeywords []string `yaml:"extra_keywords,omitempty"`
	ExtraMethods  []string `yaml:"extra_methods,omitempty"`
	ExtraTypes    []string `yaml:"extra_types,omitempty"`

	// MaxCandidates caps completion results; 0 keeps the built-in cap.
	MaxCandidates int `yaml:"max_candidates,omitempty"`
}

// Config is the full textcore configuration.
type Config struct {
	// Theme names the render theme. Empty means dark-orange.
	Theme string `yaml:"theme,omitempty"`

	// Categories restricts which highlight categories run.
	// Empty means all categories.
	Categories []string `yaml:"categories,omitempty"`

	Search     SearchDefaults `yaml:"search,omitempty"`
	Completion Completion     `yaml:"completion,omitempty"`

	// Jobs is the worker count for multi-file runs; 0 means NumCPU.
	Jobs int `yaml:"jobs,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Theme: ThemeDarkOrange,
	}
}

// Validate checks theme and category names.
func (c *Config) Validate() error {
	if c.Theme != "" && !slices.Contains(KnownThemes, c.Theme) {
		return fmt.Errorf("unknown theme %q (known: %v)", c.Theme, KnownThemes)
	}

	for _, name := range c.Categories {
		if !slices.Contains(KnownCategories, name) {
			return fmt.Errorf("unknown category %q (known: %v)", name, KnownCategories)
		}
	}

	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be non-negative, got %d", c.Jobs)
	}
	if c.Completion.MaxCandidates < 0 {
		return fmt.Errorf("completion.max_candidates must be non-negative, got %d", c.Completion.MaxCandidates)
	}

	return nil
}

// EffectiveTheme returns the configured theme name, defaulting when unset.
func (c *Config) EffectiveTheme() string {
	if c.Theme == "" {
		return ThemeDarkOrange
	}
	return c.Theme
}
