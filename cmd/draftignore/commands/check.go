package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/draftignore/cmd/draftignore/opts"
	"github.com/walteh/draftignore/pkg/log"
	"github.com/walteh/draftignore/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether the ignore file is out of sync",
		Long: `Check computes what sync would change without writing anything.
It prints the pending entries and a diff of the ignore file, and exits
with an error when the file is out of sync so it can gate CI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "check").Logger().WithContext(cmd.Context())
			console := log.FromContext(ctx)

			console.Header("checking " + opts.Config.Ignore.File)

			outcome, err := opts.Operator.Check(ctx)
			if err != nil {
				return errors.Errorf("checking ignore file: %w", err)
			}

			if !outcome.Report.Changed {
				console.LogReport(opts.Config.Ignore.File, outcome.Report)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), outcome.Plan.Diff())
			console.LogNewline()
			console.Warningf("%s needs %d added, %d removed, %d dropped; run sync",
				opts.Config.Ignore.File, len(outcome.Report.Added), len(outcome.Report.Removed), len(outcome.Report.Dropped))

			return errors.WithStack(operation.ErrOutOfSync)
		},
	}

	return cmd
}
