package analysis

import "time"

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// Totals aggregates counts across the whole run.
type Totals struct {
	Files           int            `json:"files"`
	FilesAnalyzed   int            `json:"files_analyzed"`
	FilesSkipped    int            `json:"files_skipped"`
	FilesErrored    int            `json:"files_errored"`
	FilesUnbalanced int            `json:"files_unbalanced,omitempty"`
	Tags            int            `json:"tags"`
	Matches         int            `json:"matches"`
	ByCategory      map[string]int `json:"by_category,omitempty"`
}

// FileAnalysis is the per-file rollup.
type FileAnalysis struct {
	Path       string         `json:"path"`
	Lines      int            `json:"lines"`
	Tags       int            `json:"tags"`
	Matches    int            `json:"matches"`
	ByCategory map[string]int `json:"by_category,omitempty"`
	Unbalanced bool           `json:"unbalanced,omitempty"`
	Skipped    bool           `json:"skipped,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// Report is the aggregated view of one engine run over many files.
type Report struct {
	Version   string         `json:"version"`
	Timestamp time.Time      `json:"timestamp"`
	Totals    Totals         `json:"totals"`
	ByFile    []FileAnalysis `json:"by_file,omitempty"`
}
