// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/draftignore/cmd/draftignore/commands"
	"github.com/walteh/draftignore/cmd/draftignore/opts"
	"github.com/walteh/draftignore/pkg/config"
	"github.com/walteh/draftignore/pkg/log"
	"github.com/walteh/draftignore/pkg/operation"
	"github.com/walteh/draftignore/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the persistent flags shared by every command
type rootFlags struct {
	configFile string
	root       string
	debug      bool
}

// newRootCmd creates the root command with all subcommands attached
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "draftignore",
		Short: "Keep unpublished articles out of version control",
		Long: `draftignore scans a directory of articles, reads the "published:" flag of
each one, and keeps the ignore file in step: every unpublished article gets an
entry after the marker line, published articles lose theirs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd, flags)
			return initRootOpts(cmd, flags, rootOpts)
		},
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewSyncCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
		commands.NewListCmd(rootOpts),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", ".draftignore.yaml", "config file path, relative to --root")
	cmd.PersistentFlags().StringVarP(&flags.root, "root", "r", ".", "directory holding the articles and the ignore file")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog and the console logger based on flags
func setupLogging(cmd *cobra.Command, flags *rootFlags) {
	level := zerolog.InfoLevel
	if flags.debug {
		level = zerolog.DebugLevel
	}
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level).With().Timestamp().Logger()

	ctx := zlog.WithContext(cmd.Context())
	ctx = log.NewContext(ctx, log.New(cmd.OutOrStdout(), zlog))
	cmd.SetContext(ctx)
}

// initRootOpts loads the config and wires the operator
func initRootOpts(cmd *cobra.Command, flags *rootFlags, rootOpts *opts.RootOpts) error {
	ctx := cmd.Context()

	root, err := filepath.Abs(flags.root)
	if err != nil {
		return errors.Errorf("resolving root: %w", err)
	}

	configPath := flags.configFile
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(root, configPath)
	}

	var cfg *config.Config
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(ctx, configPath)
	} else {
		cfg, err = config.LoadOrDefault(ctx, status.New(root), configPath)
	}
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	op, err := operation.FromConfig(cfg, root)
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	rootOpts.Root = root
	rootOpts.Config = cfg
	rootOpts.Operator = op

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Str("root", root).Msg("initialized")

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// version needs no config
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), FormatVersion())
		},
	}
}
