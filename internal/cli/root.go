// Package cli implements the md2conf command line using Cobra.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// ErrDifferent is returned by compare when the documents differ. It maps to
// exit status 1 without an error message.
var ErrDifferent = errors.New("documents differ")

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "md2conf",
		Short: "Convert Markdown into Confluence storage format",
		Long: `md2conf renders Markdown pages into the Confluence storage XHTML dialect.
Images, links and fenced code blocks become Confluence macros.

Usage:
  md2conf convert page.md --report json
  md2conf sanitize published.xml
  md2conf compare published.xml generated.xml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newConvertCmd(), newSanitizeCmd(), newCompareCmd(), newLanguagesCmd())
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, ErrDifferent) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// readInput reads a named file, or stdin when name is "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}
