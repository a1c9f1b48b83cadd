package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/draftignore/cmd/draftignore/opts"
	"github.com/walteh/draftignore/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// NewListCmd creates a new list command
func NewListCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles and their published status",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.Operator.Scan(cmd.Context())
			if err != nil {
				return errors.Errorf("listing articles: %w", err)
			}

			if len(result.Documents) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no articles found in %s\n", opts.Config.Documents.Dir)
				return nil
			}

			data := pterm.TableData{{"ARTICLE", "STATUS", "IGNORED"}}
			for _, doc := range result.Documents {
				ignored := "no"
				if doc.Status == scan.StatusUnpublished {
					ignored = "yes"
				}
				data = append(data, []string{doc.Path, statusColor(doc.Status).Sprint(doc.Status), ignored})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)

			return nil
		},
	}

	return cmd
}

func statusColor(s scan.Status) pterm.Color {
	switch s {
	case scan.StatusPublished:
		return pterm.FgGreen
	case scan.StatusUnpublished:
		return pterm.FgYellow
	default:
		return pterm.FgGray
	}
}
