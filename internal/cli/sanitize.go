package cli

import (
	"fmt"
	"io"

	"github.com/dgallion1/md2conf/internal/storage"
	"github.com/spf13/cobra"
)

func newSanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize <file>",
		Short: "Strip volatile attributes from storage-format markup",
		Long: `Sanitize removes the ac:macro-id and ri:version-at-save attributes that
Confluence injects on save, and writes the cleaned markup to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			out, err := storage.Sanitize(string(src))
			if err != nil {
				return fmt.Errorf("sanitizing %s: %w", args[0], err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out+"\n")
			return err
		},
	}
}
