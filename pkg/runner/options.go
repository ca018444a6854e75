package runner

import (
	"github.com/craftide/textcore/pkg/search"
	"github.com/craftide/textcore/pkg/syntax"
)

// defaultExtensions are the file extensions analyzed when none are given.
var defaultExtensions = []string{".java"}

// Options controls discovery and analysis for a multi-file run.
type Options struct {
	// Paths are the files or directories to analyze.
	// Empty means the working directory.
	Paths []string

	// WorkingDir anchors relative paths; empty means os.Getwd().
	WorkingDir string

	// Extensions filters discovered files; empty means .java.
	Extensions []string

	// Jobs is the worker count; <= 0 means NumCPU.
	Jobs int

	// Catalog is the highlight catalog; nil skips highlighting.
	Catalog syntax.Catalog

	// Query, when non-nil, builds a MatchSet per file.
	Query *search.Query

	// DetectLanguage skips files whose content does not look like Java.
	DetectLanguage bool
}

// effectiveExtensions returns the extension filter, defaulted.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return defaultExtensions
	}
	return o.Extensions
}

// effectivePaths returns the input paths, defaulted to the working dir.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
