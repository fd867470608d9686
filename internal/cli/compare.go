package cli

import (
	"fmt"
	"strings"

	"github.com/dgallion1/md2conf/internal/storage"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	colorSame = color.New(color.FgGreen, color.Bold)
	colorDiff = color.New(color.FgRed, color.Bold)
	colorBold = color.New(color.Bold)
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Check whether two storage documents match after sanitizing",
		Long: `Compare sanitizes both files and compares the results. It exits with
status 0 when they are equivalent and 1 when they differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			b, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}

			eq, err := storage.Equivalent(string(a), string(b))
			if err != nil {
				return fmt.Errorf("comparing %s and %s: %w", args[0], args[1], err)
			}

			out := cmd.OutOrStdout()
			if eq {
				colorSame.Fprintln(out, "equivalent")
				return nil
			}
			colorDiff.Fprintln(out, "different")
			colorBold.Fprintf(out, "%s\n", strings.Join(args, " <> "))
			return ErrDifferent
		},
	}
}
