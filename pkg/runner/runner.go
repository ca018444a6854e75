// Package runner discovers Java source files and runs the analysis engine
// over them concurrently. It exists for the CLI and batch collaborators;
// the engine packages themselves stay single-snapshot and synchronous.
package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/craftide/textcore/internal/logging"
	"github.com/craftide/textcore/pkg/langdetect"
	"github.com/craftide/textcore/pkg/search"
	"github.com/craftide/textcore/pkg/syntax"
	"github.com/craftide/textcore/pkg/text"
)

// Run discovers files under opts.Paths and analyzes them concurrently.
// Results are returned in deterministic path order regardless of worker
// completion order.
func Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	var highlighter *syntax.Highlighter
	if opts.Catalog != nil {
		highlighter = syntax.NewHighlighter(opts.Catalog)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh, highlighter, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; key outcomes by path and rebuild in
	// discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker analyzes files from workCh and sends outcomes to outCh.
func worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	highlighter *syntax.Highlighter,
	opts Options,
) {
	logger := logging.FromContext(ctx)

	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := analyzeFile(path, highlighter, opts)
		logger.Debug("file analyzed",
			logging.FieldPath, path, "skipped", outcome.Skipped)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// analyzeFile reads one file and runs the configured analyses over it.
func analyzeFile(path string, highlighter *syntax.Highlighter, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		outcome.Err = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	if opts.DetectLanguage && !langdetect.IsJava(path, content) {
		outcome.Skipped = true
		return outcome
	}

	snapshot := text.NewSnapshot(path, content)
	outcome.Snapshot = snapshot

	if highlighter != nil {
		outcome.Tags = highlighter.Highlight(snapshot)
	}

	if opts.Query != nil {
		matches, err := search.Build(snapshot, *opts.Query)
		if err != nil {
			outcome.Err = err
			return outcome
		}
		outcome.Matches = matches
	}

	return outcome
}
