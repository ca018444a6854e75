package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftide/textcore/internal/logging"
	"github.com/craftide/textcore/pkg/complete"
)

func newCompleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <prefix>",
		Short: "Suggest completions for an identifier prefix",
		Long: `Suggest completions for an identifier prefix.

Candidates come from three catalogs searched in order: Java keywords,
common method names, and API type names. Matching is case-insensitive and
the prefix must be at least two characters. Extra catalog entries can be
added through the configuration file.

Examples:
  textcore complete cla          # class, ClassCastException, ...
  textcore complete getE         # getEntity, getEventName, ...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComplete(cmd, args)
		},
	}

	return cmd
}

func runComplete(cmd *cobra.Command, args []string) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	index := complete.NewIndexWith(
		cfg.Completion.ExtraKeywords,
		cfg.Completion.ExtraMethods,
		cfg.Completion.ExtraTypes,
		cfg.Completion.MaxCandidates,
	)

	prefix := args[0]
	candidates := index.Complete(prefix)
	logger.Debug("completion lookup", logging.FieldPrefix, prefix, "candidates", len(candidates))

	styles := stylesFor(cmd, cfg)
	out := cmd.OutOrStdout()

	if len(candidates) == 0 {
		fmt.Fprintln(out, styles.Dim.Render(fmt.Sprintf("no completions for %q", prefix)))
		return ErrNoMatchesFound
	}

	for _, candidate := range candidates {
		fmt.Fprintf(out, "%-8s %s\n",
			styles.Dim.Render(string(candidate.Kind)),
			styles.Bold.Render(candidate.Text),
		)
	}

	return nil
}
