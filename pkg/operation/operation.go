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

package operation

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/draftignore/pkg/config"
	"github.com/walteh/draftignore/pkg/ignorefile"
	"github.com/walteh/draftignore/pkg/scan"
	"github.com/walteh/draftignore/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ErrOutOfSync is returned by callers that treat a pending change as a failure
var ErrOutOfSync = errors.Base("ignore file is out of sync")

// 🎯 Operator defines the main interface for draftignore operations
type Operator interface {
	// Scan classifies the documents without touching the ignore file
	Scan(ctx context.Context) (*scan.Result, error)
	// Sync scans the documents and rewrites the ignore file if needed
	Sync(ctx context.Context) (*Outcome, error)
	// Check computes what Sync would do without writing anything
	Check(ctx context.Context) (*Outcome, error)
}

// 🔎 DocumentScanner classifies the documents of a directory
type DocumentScanner interface {
	Scan(ctx context.Context, dir string) (*scan.Result, error)
}

// 🔄 IgnoreSynchronizer rewrites the ignore file
type IgnoreSynchronizer interface {
	Plan(ctx context.Context, path string, unpublished, published []string) (*ignorefile.Plan, error)
	Sync(ctx context.Context, path string, unpublished, published []string) (*ignorefile.Report, error)
}

// 📦 Outcome is the result of a sync or a check
type Outcome struct {
	Scan   *scan.Result
	Report *ignorefile.Report
	Plan   *ignorefile.Plan // Only set by Check
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config holds the documents directory and the ignore file path
	Config *config.Config
	// Scanner classifies documents
	Scanner DocumentScanner
	// Synchronizer owns the ignore file
	Synchronizer IgnoreSynchronizer
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Scanner == nil {
		return nil, errors.Errorf("scanner is required")
	}
	if opts.Synchronizer == nil {
		return nil, errors.Errorf("synchronizer is required")
	}
	return &operator{
		config:  opts.Config,
		scanner: opts.Scanner,
		sync:    opts.Synchronizer,
	}, nil
}

// 🏗️ FromConfig wires the file store, scanner and synchronizer for cfg,
// with relative paths anchored at root
func FromConfig(cfg *config.Config, root string) (Operator, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("getting absolute root path: %w", err)
	}

	files := status.New(root)
	return New(Options{
		Config:  cfg.Resolve(root),
		Scanner: scan.New(files, cfg.Documents.Folder, cfg.Documents.Pattern),
		Synchronizer: ignorefile.NewSynchronizer(files, ignorefile.Options{
			Folder: cfg.Documents.Folder,
			Marker: cfg.Ignore.Marker,
		}),
	})
}

// 🎮 operator implements the Operator interface
type operator struct {
	config  *config.Config
	scanner DocumentScanner
	sync    IgnoreSynchronizer
}

func (o *operator) Scan(ctx context.Context) (*scan.Result, error) {
	result, err := o.scanner.Scan(ctx, o.config.Documents.Dir)
	if err != nil {
		return nil, errors.Errorf("scanning documents: %w", err)
	}
	return result, nil
}

func (o *operator) Sync(ctx context.Context) (*Outcome, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("config", o.config.String()).Msg("starting sync")

	result, err := o.Scan(ctx)
	if err != nil {
		return nil, err
	}

	report, err := o.sync.Sync(ctx, o.config.Ignore.File, result.Unpublished, result.Published)
	if err != nil {
		return nil, errors.Errorf("synchronizing ignore file: %w", err)
	}

	logger.Debug().Bool("changed", report.Changed).Msg("sync complete")

	return &Outcome{Scan: result, Report: report}, nil
}

func (o *operator) Check(ctx context.Context) (*Outcome, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("config", o.config.String()).Msg("starting check")

	result, err := o.Scan(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := o.sync.Plan(ctx, o.config.Ignore.File, result.Unpublished, result.Published)
	if err != nil {
		return nil, errors.Errorf("planning ignore file update: %w", err)
	}

	logger.Debug().Bool("changed", plan.Report.Changed).Msg("check complete")

	return &Outcome{Scan: result, Report: &plan.Report, Plan: plan}, nil
}
