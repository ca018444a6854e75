package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Run fields.
	FieldJobs          = "jobs"
	FieldFilesAnalyzed = "files_analyzed"
	FieldFilesSkipped  = "files_skipped"
	FieldFilesErrored  = "files_errored"

	// Engine fields.
	FieldTerm     = "term"
	FieldMatches  = "matches"
	FieldTags     = "tags"
	FieldCategory = "category"
	FieldOffset   = "offset"
	FieldPrefix   = "prefix"
	FieldReplaced = "replaced"
	FieldTheme    = "theme"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
