package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/craftide/textcore/internal/cli"
)

func newRoot() *cobra.Command {
	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
	return cli.NewRootCommand(info)
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := newRoot()

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}
	if cmd.Use != "textcore" {
		t.Errorf("expected Use to be 'textcore', got %q", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}
	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := newRoot()

	expectedSubcommands := []string{"highlight", "search", "brackets", "complete", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}
		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := newRoot()

	for _, flagName := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestSearchCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := newRoot()
	searchCmd, _, err := cmd.Find([]string{"search"})
	if err != nil {
		t.Fatalf("search command not found: %v", err)
	}

	expectedFlags := []string{
		"regex",
		"case-sensitive",
		"word",
		"replace-all",
		"write",
		"jobs",
		"detect",
	}

	for _, flagName := range expectedFlags {
		if searchCmd.Flags().Lookup(flagName) == nil {
			t.Errorf("expected flag %q to exist on search command", flagName)
		}
	}
}

func TestHighlightCommand_RunsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Main.java")
	if err := os.WriteFile(path, []byte("public class Main {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"highlight", "--color", "never", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("highlight failed: %v", err)
	}

	if !strings.Contains(out.String(), "public class Main {}") {
		t.Errorf("expected highlighted source in output, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "tags in 1 file") {
		t.Errorf("expected one-line summary, got:\n%s", out.String())
	}
}

func TestHighlightCommand_JSONFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Main.java")
	if err := os.WriteFile(path, []byte("int x = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"highlight", "--format", "json", "--color", "never", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("highlight failed: %v", err)
	}

	if !strings.Contains(out.String(), `"totals"`) {
		t.Errorf("expected JSON report, got:\n%s", out.String())
	}
}

func TestHighlightCommand_UnknownCategory(t *testing.T) {
	var out bytes.Buffer
	cmd := newRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"highlight", "--categories", "emphasis"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown category")
	}
}

func TestSearchCommand_FindsMatches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Main.java")
	if err := os.WriteFile(path, []byte("foo bar foo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"search", "foo", "--color", "never", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if !strings.Contains(out.String(), `2 matches for "foo"`) {
		t.Errorf("expected match summary, got:\n%s", out.String())
	}
}

func TestSearchCommand_NoMatchesSignalsExitCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Main.java")
	if err := os.WriteFile(path, []byte("nothing here\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"search", "absent", "--color", "never", path})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected ErrNoMatchesFound")
	}
	if err != cli.ErrNoMatchesFound {
		t.Errorf("expected ErrNoMatchesFound, got %v", err)
	}
}

func TestSearchCommand_ReplaceAllWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Main.java")
	if err := os.WriteFile(path, []byte("aXaXa"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"search", "X", path,
		"--case-sensitive", "--replace-all", "YY", "--write", "--color", "never",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("replace-all failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "aYYaYYa" {
		t.Errorf("expected %q on disk, got %q", "aYYaYYa", content)
	}
}

func TestSearchCommand_ReplaceAllWriteMultibyte(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Main.java")
	if err := os.WriteFile(path, []byte("İ foo İ FOO"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"search", "foo", path,
		"--replace-all", "qux", "--write", "--color", "never",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("replace-all failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// Case-insensitive matching over multi-byte runes must not shift the
	// replacement offsets.
	if string(content) != "İ qux İ qux" {
		t.Errorf("expected %q on disk, got %q", "İ qux İ qux", content)
	}
}

func TestCommand_InvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "textcore.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"complete", "cla", "--config", path, "--color", "never"})

	err := cmd.Execute()
	if !errors.Is(err, cli.ErrConfigLoad) {
		t.Errorf("expected ErrConfigLoad, got %v", err)
	}
}

func TestBracketsCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Main.java")
	if err := os.WriteFile(path, []byte("f(x)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"brackets", path, "--offset", "1", "--color", "never"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("brackets failed: %v", err)
	}

	if !strings.Contains(out.String(), "(offset 1)") || !strings.Contains(out.String(), "(offset 3)") {
		t.Errorf("expected both pair offsets, got:\n%s", out.String())
	}
}

func TestBracketsCommand_NoPair(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Main.java")
	if err := os.WriteFile(path, []byte("plain\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"brackets", path, "--offset", "2", "--color", "never"})

	if err := cmd.Execute(); err != cli.ErrNoMatchesFound {
		t.Errorf("expected ErrNoMatchesFound, got %v", err)
	}
}

func TestCompleteCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"complete", "cla", "--color", "never"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	if !strings.Contains(out.String(), "class") {
		t.Errorf("expected 'class' candidate, got:\n%s", out.String())
	}
}

func TestCompleteCommand_ShortPrefix(t *testing.T) {
	var out bytes.Buffer
	cmd := newRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"complete", "c", "--color", "never"})

	if err := cmd.Execute(); err != cli.ErrNoMatchesFound {
		t.Errorf("expected ErrNoMatchesFound for a short prefix, got %v", err)
	}
}
