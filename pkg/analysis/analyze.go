// Package analysis aggregates runner outcomes into a single report:
// how many files, how many tags per category, how many search matches.
// It is the summary view collaborators consume when they do not need the
// raw tag and match data.
package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/craftide/textcore/pkg/bracket"
	"github.com/craftide/textcore/pkg/runner"
)

// makeRelativePath converts an absolute path to a path relative to
// workDir. If workDir is empty or conversion fails, the original path is
// returned.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// Analyze transforms a runner.Result into a Report in a single pass.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	report.Totals.ByCategory = make(map[string]int)

	for _, file := range result.Files {
		report.Totals.Files++

		fa := FileAnalysis{
			Path: makeRelativePath(file.Path, opts.WorkingDir),
		}

		switch {
		case file.Err != nil:
			report.Totals.FilesErrored++
			fa.Error = file.Err.Error()
		case file.Skipped:
			report.Totals.FilesSkipped++
			fa.Skipped = true
		default:
			report.Totals.FilesAnalyzed++

			if file.Snapshot != nil {
				fa.Lines = file.Snapshot.LineCount()

				if !bracket.Balanced(file.Snapshot) {
					fa.Unbalanced = true
					report.Totals.FilesUnbalanced++
				}
			}

			fa.Tags = len(file.Tags)
			report.Totals.Tags += fa.Tags

			if len(file.Tags) > 0 {
				fa.ByCategory = make(map[string]int)
				for _, tag := range file.Tags {
					name := tag.Category.String()
					fa.ByCategory[name]++
					report.Totals.ByCategory[name]++
				}
			}

			if file.Matches != nil {
				fa.Matches = file.Matches.Len()
				report.Totals.Matches += fa.Matches
			}
		}

		if opts.IncludeByFile {
			report.ByFile = append(report.ByFile, fa)
		}
	}

	if len(report.Totals.ByCategory) == 0 {
		report.Totals.ByCategory = nil
	}

	sortByFile(report.ByFile, opts)
	return report
}

func sortByFile(files []FileAnalysis, opts Options) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		switch opts.SortBy {
		case SortByTags:
			result := cmp.Compare(left.Tags, right.Tags)
			if opts.SortDesc {
				result = -result
			}
			if result == 0 {
				result = cmp.Compare(left.Path, right.Path)
			}
			return result
		default:
			return cmp.Compare(left.Path, right.Path)
		}
	})
}
