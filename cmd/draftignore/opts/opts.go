package opts

import (
	"github.com/walteh/draftignore/pkg/config"
	"github.com/walteh/draftignore/pkg/operation"
)

// RootOpts contains shared options used by all commands. It is filled in
// before any subcommand runs.
type RootOpts struct {
	Root     string
	Config   *config.Config
	Operator operation.Operator
}
