package analysis

// SortField selects the ordering of per-file entries.
type SortField string

// Sort fields for ByFile.
const (
	SortByPath SortField = "path"
	SortByTags SortField = "tags"
)

// Options controls report construction.
type Options struct {
	// WorkingDir, when set, makes file paths relative to it.
	WorkingDir string

	// IncludeByFile adds the per-file breakdown.
	IncludeByFile bool

	// SortBy orders the per-file breakdown; default is by path.
	SortBy SortField

	// SortDesc reverses tag-count ordering.
	SortDesc bool
}
