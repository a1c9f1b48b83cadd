package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/draftignore/cmd/draftignore/opts"
	"github.com/walteh/draftignore/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewSyncCmd creates a new sync command
func NewSyncCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Update the ignore file from the articles' published flags",
		Long: `Sync brings the ignore file in line with the articles.
It will:
1. Scan the articles directory for "published: true|false"
2. Strip every managed entry from the ignore file
3. Insert one entry per unpublished article after the marker line
4. Write the file only if its content changed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "sync").Logger().WithContext(cmd.Context())
			console := log.FromContext(ctx)

			console.Header("syncing " + opts.Config.Ignore.File)

			outcome, err := opts.Operator.Sync(ctx)
			if err != nil {
				return errors.Errorf("syncing ignore file: %w", err)
			}

			if len(outcome.Scan.Unpublished) == 0 {
				console.Info("no unpublished articles found")
			}

			console.LogReport(opts.Config.Ignore.File, outcome.Report)

			return nil
		},
	}

	return cmd
}
