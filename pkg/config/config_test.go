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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/draftignore/pkg/status"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "valid_yaml",
			filename: ".draftignore.yaml",
			config: `
documents:
  dir: content/posts
  folder: posts
  pattern: "*.markdown"
ignore:
  file: .gitignore
  marker: "# drafts"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, filepath.Clean("content/posts"), cfg.Documents.Dir, "dir should match")
				assert.Equal(t, "posts", cfg.Documents.Folder, "folder should match")
				assert.Equal(t, "*.markdown", cfg.Documents.Pattern, "pattern should match")
				assert.Equal(t, ".gitignore", cfg.Ignore.File, "file should match")
				assert.Equal(t, "# drafts", cfg.Ignore.Marker, "marker should match")
			},
		},
		{
			name:     "empty_yaml_uses_defaults",
			filename: "config.yml",
			config:   "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg, "empty config should equal defaults")
			},
		},
		{
			name:     "partial_yaml_fills_defaults",
			filename: "config.yaml",
			config: `
ignore:
  marker: "# hidden"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultDocumentsDir, cfg.Documents.Dir, "dir should have default value")
				assert.Equal(t, DefaultPattern, cfg.Documents.Pattern, "pattern should have default value")
				assert.Equal(t, "# hidden", cfg.Ignore.Marker, "marker should match")
			},
		},
		{
			name:     "valid_hcl",
			filename: "draftignore.hcl",
			config: `
documents {
  dir    = "blog"
  folder = "blog"
}
ignore {
  marker = default_marker
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "blog", cfg.Documents.Dir, "dir should match")
				assert.Equal(t, "blog", cfg.Documents.Folder, "folder should match")
				assert.Equal(t, DefaultMarker, cfg.Ignore.Marker, "marker should resolve the variable")
				assert.Equal(t, DefaultIgnoreFile, cfg.Ignore.File, "file should have default value")
			},
		},
		{
			name:        "unknown_yaml_field",
			filename:    "config.yaml",
			config:      "unknown: true\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:     "folder_with_slash",
			filename: "config.yaml",
			config: `
documents:
  folder: a/b
`,
			wantErr:     true,
			errContains: "single folder name",
		},
		{
			name:     "invalid_pattern",
			filename: "config.yaml",
			config: `
documents:
  pattern: "[.md"
`,
			wantErr:     true,
			errContains: "not a valid glob",
		},
		{
			name:     "blank_marker",
			filename: "config.yaml",
			config: `
ignore:
  marker: "   "
`,
			wantErr:     true,
			errContains: "ignore.marker must not be blank",
		},
		{
			name:        "unsupported_extension",
			filename:    "config.toml",
			config:      "a = 1",
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set up test environment
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, tt.filename)
			err := os.WriteFile(configPath, []byte(tt.config), 0644)
			require.NoError(t, err, "writing config file")

			// Set up logger
			logger := zerolog.New(zerolog.NewTestWriter(t))
			ctx := logger.WithContext(context.Background())

			// Load config
			cfg, err := Load(ctx, configPath)
			if tt.wantErr {
				require.Error(t, err, "Load should fail")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Load should succeed")
			require.NotNil(t, cfg, "config should not be nil")
			tt.check(t, cfg)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_file", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := LoadOrDefault(ctx, status.New(dir), filepath.Join(dir, ".draftignore.yaml"))
		require.NoError(t, err, "missing config should not fail")
		assert.Equal(t, Default(), cfg, "missing config should fall back to defaults")
	})

	t.Run("existing_file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".draftignore.yaml")
		require.NoError(t, os.WriteFile(path, []byte("documents:\n  folder: notes\n"), 0644))

		cfg, err := LoadOrDefault(ctx, status.New(dir), path)
		require.NoError(t, err, "existing config should load")
		assert.Equal(t, "notes", cfg.Documents.Folder, "folder should come from the file")
	})
}

func TestResolve(t *testing.T) {
	cfg := Default()
	root := t.TempDir()

	resolved := cfg.Resolve(root)
	assert.Equal(t, filepath.Join(root, DefaultDocumentsDir), resolved.Documents.Dir, "dir should be anchored at root")
	assert.Equal(t, filepath.Join(root, DefaultIgnoreFile), resolved.Ignore.File, "file should be anchored at root")
	assert.Equal(t, DefaultDocumentsDir, cfg.Documents.Dir, "original config should be untouched")

	abs := &Config{Documents: DocumentsArgs{Dir: "/srv/articles"}, Ignore: IgnoreArgs{File: "/srv/.gitignore"}}
	resolved = abs.Resolve(root)
	assert.Equal(t, "/srv/articles", resolved.Documents.Dir, "absolute dir should be kept")
	assert.Equal(t, "/srv/.gitignore", resolved.Ignore.File, "absolute file should be kept")
}
