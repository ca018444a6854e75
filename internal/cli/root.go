// Package cli provides the Cobra command structure for textcore.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/craftide/textcore/internal/logging"
	"github.com/craftide/textcore/internal/ui/pretty"
	"github.com/craftide/textcore/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root textcore command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "textcore",
		Short: "Syntax highlighting, search, and completion for Java source",
		Long: `textcore is the text-analysis engine behind a Java editor, exposed as a CLI.

It highlights Java source by lexical category, finds and replaces text with
literal, whole-word, and regex modes, matches bracket pairs at a cursor
offset, and completes identifier prefixes against keyword, method, and API
type catalogs.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newBracketsCommand())
	rootCmd.AddCommand(newCompleteCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// configFileNames are probed in the working directory when --config is not
// given, in order.
var configFileNames = []string{".textcore.yaml", "textcore.yaml"}

// ErrConfigLoad marks a configuration file that could not be read or
// parsed. main maps it to a dedicated exit code.
var ErrConfigLoad = errors.New("failed to load configuration")

// loadConfig resolves and loads the configuration for a command. The
// explicit --config path wins; otherwise the working directory is probed.
// No file at all yields the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path = ""
	}

	if path == "" {
		for _, name := range configFileNames {
			if _, statErr := os.Stat(name); statErr == nil {
				path = name
				break
			}
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.Join(ErrConfigLoad, err)
	}
	return cfg, nil
}

// stylesFor builds the styled renderer for a command from its color flag
// and the configured theme.
func stylesFor(cmd *cobra.Command, cfg *config.Config) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	theme := pretty.ThemeByName(cfg.EffectiveTheme())
	return pretty.NewStyles(theme, pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
}
