package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dgallion1/md2conf/internal/convert"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	reportYAML = "yaml"
	reportJSON = "json"
	reportNone = "none"
)

func newConvertCmd() *cobra.Command {
	var report string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a Markdown file to Confluence storage format",
		Long: `Convert renders a Markdown page and writes the storage XHTML to stdout.
The page must carry a <!-- confluence-page-id: NNN --> comment.

A report with the page id, title, relative links and image paths goes to stderr.
Pass "-" as the file to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch report {
			case reportYAML, reportJSON, reportNone:
			default:
				return fmt.Errorf("invalid --report %q (want yaml, json or none)", report)
			}

			src, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := convert.Markdown(src)
			if err != nil {
				return fmt.Errorf("converting %s: %w", args[0], err)
			}

			if _, err := io.WriteString(cmd.OutOrStdout(), res.XHTML+"\n"); err != nil {
				return err
			}
			return writeReport(cmd.ErrOrStderr(), report, res)
		},
	}
	cmd.Flags().StringVar(&report, "report", reportYAML, "Report format on stderr: yaml, json or none")
	return cmd
}

func writeReport(w io.Writer, format string, res *convert.Result) error {
	// Empty lists print as [] rather than null.
	r := *res
	if r.Links == nil {
		r.Links = []string{}
	}
	if r.Images == nil {
		r.Images = []string{}
	}

	switch format {
	case reportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			PageID string   `json:"page_id"`
			Title  string   `json:"title,omitempty"`
			Links  []string `json:"links"`
			Images []string `json:"images"`
		}{r.PageID, r.Title, r.Links, r.Images})
	case reportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return nil
}
