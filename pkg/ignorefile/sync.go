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

package ignorefile

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrTargetRead  = errors.Base("reading ignore file")
	ErrTargetWrite = errors.Base("writing ignore file")
)

// 💾 FileStore reads and replaces whole files
type FileStore interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, content []byte) error
}

// 🔄 Synchronizer owns every mutation of the ignore file
type Synchronizer struct {
	files FileStore
	opts  Options
}

// 🏭 NewSynchronizer creates a synchronizer for entries under opts.Folder
func NewSynchronizer(files FileStore, opts Options) *Synchronizer {
	return &Synchronizer{
		files: files,
		opts:  opts,
	}
}

// 🔍 Plan computes the new content of the ignore file without writing it
func (s *Synchronizer) Plan(ctx context.Context, path string, unpublished, published []string) (*Plan, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("planning ignore file update")

	original, err := s.files.ReadFile(ctx, path)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %w", ErrTargetRead, path, err)
	}

	plan := Merge(string(original), s.opts, unpublished, published)

	logger.Debug().
		Bool("changed", plan.Report.Changed).
		Strs("added", plan.Report.Added).
		Strs("removed", plan.Report.Removed).
		Strs("dropped", plan.Report.Dropped).
		Msg("planned ignore file update")

	return &plan, nil
}

// 🏃 Sync rewrites the ignore file when its content changes. Nothing is
// written when the rebuilt content equals the original byte for byte.
func (s *Synchronizer) Sync(ctx context.Context, path string, unpublished, published []string) (*Report, error) {
	plan, err := s.Plan(ctx, path, unpublished, published)
	if err != nil {
		return nil, err
	}

	if !plan.Report.Changed {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("ignore file unchanged, skipping write")
		return &plan.Report, nil
	}

	if err := s.files.WriteFile(ctx, path, []byte(plan.Content)); err != nil {
		return nil, errors.Errorf("%w: %s: %w", ErrTargetWrite, path, err)
	}

	zerolog.Ctx(ctx).Info().Str("path", path).Msg("ignore file updated")

	return &plan.Report, nil
}
