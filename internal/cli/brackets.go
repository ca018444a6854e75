package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/craftide/textcore/pkg/bracket"
	"github.com/craftide/textcore/pkg/text"
)

type bracketsFlags struct {
	offset int
}

func newBracketsCommand() *cobra.Command {
	flags := &bracketsFlags{}

	cmd := &cobra.Command{
		Use:   "brackets <file>",
		Short: "Find the matching bracket pair at a cursor offset",
		Long: `Find the bracket pair at a cursor offset in a Java source file.

The offset is a byte position, matching what editors report as the cursor
index. An opening bracket at the offset scans forward; a closing bracket
immediately before the offset scans backward. Each endpoint is printed as
line:column.

Examples:
  textcore brackets Main.java --offset 120`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrackets(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.offset, "offset", 0, "cursor byte offset")
	_ = cmd.MarkFlagRequired("offset")

	return cmd
}

func runBrackets(cmd *cobra.Command, args []string, flags *bracketsFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	snapshot := text.NewSnapshot(path, content)
	styles := stylesFor(cmd, cfg)
	out := cmd.OutOrStdout()

	pair, ok := bracket.Match(snapshot, flags.offset)
	if !ok {
		fmt.Fprintln(out, styles.Dim.Render(
			fmt.Sprintf("no bracket pair at offset %d", flags.offset)))
		return ErrNoMatchesFound
	}

	openPos, _ := snapshot.PositionAt(pair.Opener)
	closePos, _ := snapshot.PositionAt(pair.Closer)

	fmt.Fprintf(out, "%s %s %s  %s %s %s\n",
		styles.Bold.Render(string(pair.Kind)),
		styles.Location.Render(fmt.Sprintf("%d:%d", openPos.Line, openPos.Column+1)),
		styles.Dim.Render(fmt.Sprintf("(offset %d)", pair.Opener)),
		styles.Bold.Render(string(closingChar(pair.Kind))),
		styles.Location.Render(fmt.Sprintf("%d:%d", closePos.Line, closePos.Column+1)),
		styles.Dim.Render(fmt.Sprintf("(offset %d)", pair.Closer)),
	)

	return nil
}

func closingChar(kind bracket.Kind) byte {
	switch kind {
	case bracket.KindParen:
		return ')'
	case bracket.KindSquare:
		return ']'
	case bracket.KindBrace:
		return '}'
	default:
		return '?'
	}
}
