package runner

import (
	"github.com/craftide/textcore/pkg/search"
	"github.com/craftide/textcore/pkg/syntax"
	"github.com/craftide/textcore/pkg/text"
)

// FileOutcome is the per-file product of a run: the snapshot, its highlight
// tags, and the match set when a query was supplied.
type FileOutcome struct {
	// Path is the absolute file path.
	Path string

	// Snapshot is the file content as analyzed. Nil when reading failed.
	Snapshot *text.Snapshot

	// Tags are the highlight results, in catalog order.
	Tags []syntax.Tag

	// Matches is the search result for the run's query, if one was set.
	Matches *search.MatchSet

	// Skipped is true when language detection rejected the file.
	Skipped bool

	// Err records a per-file failure (read error, bad pattern).
	Err error
}

// Stats aggregates counts across a run.
type Stats struct {
	FilesDiscovered int
	FilesAnalyzed   int
	FilesSkipped    int
	FilesErrored    int
	TagsTotal       int
	MatchesTotal    int
}

// Result is the aggregate outcome of one run, in deterministic path order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// accumulate folds one outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Err != nil:
		r.Stats.FilesErrored++
	case outcome.Skipped:
		r.Stats.FilesSkipped++
	default:
		r.Stats.FilesAnalyzed++
		r.Stats.TagsTotal += len(outcome.Tags)
		if outcome.Matches != nil {
			r.Stats.MatchesTotal += outcome.Matches.Len()
		}
	}
}
