package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/craftide/textcore/internal/logging"
	"github.com/craftide/textcore/pkg/analysis"
	"github.com/craftide/textcore/pkg/config"
	"github.com/craftide/textcore/pkg/runner"
	"github.com/craftide/textcore/pkg/syntax"
)

type highlightFlags struct {
	categories []string
	format     string
	jobs       int
	detect     bool
	summary    bool
}

func newHighlightCommand() *cobra.Command {
	flags := &highlightFlags{}

	cmd := &cobra.Command{
		Use:   "highlight [paths...]",
		Short: "Highlight Java source by lexical category",
		Long:  highlightLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, args, flags)
		},
	}

	cmd.Flags().StringSliceVar(&flags.categories, "categories", nil,
		"highlight categories to run (default all)")
	cmd.Flags().StringVar(&flags.format, "format", "pretty", "output format: pretty, json")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.detect, "detect", false, "skip files whose content does not look like Java")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a summary block after the output")

	return cmd
}

const highlightLongDescription = `Highlight Java source files by lexical category.

Each file is tagged by seven category rules applied in a fixed order:
keyword, string, comment, number, annotation, classname, operator. When
categories overlap, the later category wins visually.

Examples:
  textcore highlight Main.java              # Highlight one file
  textcore highlight src/                   # Highlight a source tree
  textcore highlight --categories keyword,string Main.java
  textcore highlight --format json src/     # Tag counts as JSON for tooling`

func runHighlight(cmd *cobra.Command, args []string, flags *highlightFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	catalog, err := catalogFor(cfg, flags.categories)
	if err != nil {
		return err
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
		Paths:          args,
		WorkingDir:     workDir,
		Jobs:           jobs,
		Catalog:        catalog,
		DetectLanguage: flags.detect,
	}

	logger.Debug("starting highlight run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("highlight run failed"), err)
	}

	styles := stylesFor(cmd, cfg)
	out := cmd.OutOrStdout()

	switch flags.format {
	case "json":
		report := analysis.Analyze(result, analysis.Options{
			WorkingDir:    workDir,
			IncludeByFile: true,
		})
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	case "pretty":
		for _, file := range result.Files {
			if file.Err != nil || file.Skipped || file.Snapshot == nil {
				continue
			}
			fmt.Fprintln(out, styles.FilePath.Render(file.Path))
			fmt.Fprint(out, styles.RenderSource(file.Snapshot, file.Tags))
		}
		fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	default:
		return fmt.Errorf("invalid format %q (valid: pretty, json)", flags.format)
	}

	if flags.summary {
		fmt.Fprint(out, styles.FormatSummary(result.Stats))
	}

	for _, file := range result.Files {
		if file.Err != nil {
			logger.Error("analysis failed", logging.FieldPath, file.Path, logging.FieldError, file.Err)
		}
	}

	return nil
}

// catalogFor builds the highlight catalog from the config's category list,
// with the --categories flag taking precedence when given.
func catalogFor(cfg *config.Config, flagCategories []string) (syntax.Catalog, error) {
	names := cfg.Categories
	if len(flagCategories) > 0 {
		names = flagCategories
	}

	if len(names) == 0 {
		return syntax.DefaultCatalog(), nil
	}

	enabled := make([]syntax.Category, 0, len(names))
	for _, name := range names {
		cat, ok := syntax.ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("unknown category %q (known: %v)", name, config.KnownCategories)
		}
		enabled = append(enabled, cat)
	}

	return syntax.DefaultCatalog().Filter(enabled), nil
}
