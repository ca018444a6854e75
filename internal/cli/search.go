package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/craftide/textcore/internal/logging"
	"github.com/craftide/textcore/pkg/fsutil"
	"github.com/craftide/textcore/pkg/runner"
	"github.com/craftide/textcore/pkg/search"
)

// ErrNoMatchesFound is returned when a search finds nothing. It exists as
// an exit-code signal; main does not log it.
var ErrNoMatchesFound = errors.New("no matches found")

type searchFlags struct {
	regex         bool
	caseSensitive bool
	word          bool
	replaceAll    string
	write         bool
	jobs          int
	detect        bool
}

func newSearchCommand() *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search <term> [paths...]",
		Short: "Search Java source for a term or pattern",
		Long:  searchLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.regex, "regex", false, "treat the term as a regular expression")
	cmd.Flags().BoolVar(&flags.caseSensitive, "case-sensitive", false, "match case exactly")
	cmd.Flags().BoolVar(&flags.word, "word", false, "match whole words only (literal mode)")
	cmd.Flags().StringVar(&flags.replaceAll, "replace-all", "", "replace every match with the given text")
	cmd.Flags().BoolVar(&flags.write, "write", false, "write replacement results back to the files")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.detect, "detect", false, "skip files whose content does not look like Java")

	return cmd
}

const searchLongDescription = `Search Java source files for a term.

Literal search is case-insensitive by default and can be restricted to
whole words. Regex mode compiles the term as a pattern instead. With
--replace-all every match is replaced; add --write to update the files in
place, otherwise the mutated text goes to stdout.

Examples:
  textcore search onEnable src/                 # Find a method name
  textcore search --word item src/              # Whole words only
  textcore search --regex 'get\w+' src/         # Pattern search
  textcore search --replace-all getStack getItem src/ --write`

func runSearch(cmd *cobra.Command, args []string, flags *searchFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Config supplies the defaults; explicit flags win.
	query := search.Query{
		Term:          args[0],
		CaseSensitive: cfg.Search.CaseSensitive,
		WholeWord:     cfg.Search.WholeWord,
		Regex:         cfg.Search.Regex,
	}
	if cmd.Flags().Changed("case-sensitive") {
		query.CaseSensitive = flags.caseSensitive
	}
	if cmd.Flags().Changed("word") {
		query.WholeWord = flags.word
	}
	if cmd.Flags().Changed("regex") {
		query.Regex = flags.regex
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	jobs := flags.jobs
	if jobs == 0 {
		jobs = cfg.Jobs
	}

	runOpts := runner.Options{
		Paths:          args[1:],
		WorkingDir:     workDir,
		Jobs:           jobs,
		Query:          &query,
		DetectLanguage: flags.detect,
	}

	logger.Debug("starting search run",
		logging.FieldTerm, query.Term,
		logging.FieldPaths, runOpts.Paths,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("search run failed"), err)
	}

	for _, file := range result.Files {
		if file.Err != nil {
			logger.Error("search failed", logging.FieldPath, file.Path, logging.FieldError, file.Err)
		}
	}

	if cmd.Flags().Changed("replace-all") {
		return runReplaceAll(ctx, cmd, result, flags)
	}

	styles := stylesFor(cmd, cfg)
	out := cmd.OutOrStdout()

	for _, file := range result.Files {
		if file.Matches == nil || file.Matches.IsEmpty() {
			continue
		}
		fmt.Fprint(out, styles.RenderMatches(file.Snapshot, file.Matches))
	}

	matchWord := "matches"
	if result.Stats.MatchesTotal == 1 {
		matchWord = "match"
	}
	fmt.Fprintln(out, styles.Bold.Render(
		fmt.Sprintf("%d %s for %q", result.Stats.MatchesTotal, matchWord, query.Term)))

	if result.Stats.MatchesTotal == 0 {
		return ErrNoMatchesFound
	}

	return nil
}

// runReplaceAll applies the replacement to every matched file, either
// writing the files in place or streaming the mutated text to stdout.
func runReplaceAll(ctx context.Context, cmd *cobra.Command, result *runner.Result, flags *searchFlags) error {
	logger := logging.Default()
	out := cmd.OutOrStdout()

	totalReplaced := 0
	for _, file := range result.Files {
		if file.Matches == nil || file.Matches.IsEmpty() {
			continue
		}

		mutated, count := file.Matches.ReplaceAll(flags.replaceAll)
		totalReplaced += count

		if flags.write {
			if err := fsutil.WritePreservingMode(ctx, file.Path, []byte(mutated)); err != nil {
				return fmt.Errorf("write %s: %w", file.Path, err)
			}
			logger.Info("replaced", logging.FieldPath, file.Path, logging.FieldReplaced, count)
		} else {
			fmt.Fprint(out, mutated)
		}
	}

	if totalReplaced == 0 {
		return ErrNoMatchesFound
	}

	logger.Debug("replace-all complete", logging.FieldReplaced, totalReplaced)
	return nil
}
