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

package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/draftignore/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Status
	}{
		{
			name:    "unpublished",
			content: "---\ntitle: a\npublished: false\n---\nbody\n",
			want:    StatusUnpublished,
		},
		{
			name:    "published",
			content: "---\ntitle: b\npublished: true\n---\n",
			want:    StatusPublished,
		},
		{
			name:    "no_space_after_colon",
			content: "published:false\n",
			want:    StatusUnpublished,
		},
		{
			name:    "extra_spaces",
			content: "published:    true\n",
			want:    StatusPublished,
		},
		{
			name:    "no_flag",
			content: "---\ntitle: c\n---\n",
			want:    StatusUnknown,
		},
		{
			name:    "indented_flag_is_not_line_anchored",
			content: "---\n  published: false\n---\n",
			want:    StatusUnknown,
		},
		{
			name:    "uppercase_token",
			content: "published: FALSE\n",
			want:    StatusUnknown,
		},
		{
			name:    "trailing_text_still_matches_prefix",
			content: "published: falsey\n",
			want:    StatusUnpublished,
		},
		{
			name:    "first_flag_wins_true",
			content: "published: true\n---\npublished: false\n",
			want:    StatusPublished,
		},
		{
			name:    "first_flag_wins_false",
			content: "published: false\npublished: true\n",
			want:    StatusUnpublished,
		},
		{
			name:    "empty",
			content: "",
			want:    StatusUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify([]byte(tt.content)), "status should match")
		})
	}
}

func writeDocs(t *testing.T, dir string, docs map[string]string) {
	t.Helper()
	for name, content := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644), "writing %s", name)
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeDocs(t, dir, map[string]string{
		"a.md":      "---\npublished: false\n---\n",
		"b.md":      "---\npublished: true\n---\n",
		"c.md":      "---\ntitle: c\n---\n",
		"d.md":      "published: false\n",
		"notes.txt": "published: false\n",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "images.md"), 0755))

	scanner := New(status.New(dir), "articles", "*.md")
	result, err := scanner.Scan(context.Background(), dir)
	require.NoError(t, err, "scan should succeed")

	// os.ReadDir lists entries sorted by name
	assert.Equal(t, []string{"articles/a.md", "articles/d.md"}, result.Unpublished, "unpublished paths should match")
	assert.Equal(t, []string{"articles/b.md"}, result.Published, "published paths should match")

	require.Len(t, result.Documents, 4, "directories and non-matching files should be skipped")
	assert.Equal(t, Document{Name: "c.md", Path: "articles/c.md", Status: StatusUnknown}, result.Documents[2])
}

func TestScanEmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	result, err := New(status.New(dir), "articles", "*.md").Scan(context.Background(), dir)
	require.NoError(t, err, "scan should succeed")
	assert.Empty(t, result.Unpublished)
	assert.Empty(t, result.Published)
	assert.Empty(t, result.Documents)
}

func TestScanMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	result, err := New(status.New(dir), "articles", "*.md").Scan(context.Background(), dir)
	require.Error(t, err, "scan should fail")
	assert.Nil(t, result, "no partial result")
	assert.True(t, errors.Is(err, ErrDirectoryRead), "error should be a directory read error")
}

// 🔧 failingReader lists real entries but cannot read one of them
type failingReader struct {
	*status.Manager
	fail string
}

func (f *failingReader) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if filepath.Base(path) == f.fail {
		return nil, fs.ErrPermission
	}
	return f.Manager.ReadFile(ctx, path)
}

func TestScanUnreadableDocument(t *testing.T) {
	dir := t.TempDir()
	writeDocs(t, dir, map[string]string{
		"a.md": "published: false\n",
		"b.md": "published: true\n",
	})

	reader := &failingReader{Manager: status.New(dir), fail: "b.md"}
	result, err := New(reader, "articles", "*.md").Scan(context.Background(), dir)
	require.Error(t, err, "scan should fail")
	assert.Nil(t, result, "no partial result")
	assert.True(t, errors.Is(err, ErrDocumentRead), "error should be a document read error")
	assert.Contains(t, err.Error(), "b.md", "error should name the document")
}

func TestScanCancelled(t *testing.T) {
	dir := t.TempDir()
	writeDocs(t, dir, map[string]string{"a.md": "published: false\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(status.New(dir), "articles", "*.md").Scan(ctx, dir)
	require.Error(t, err, "scan should fail")
	assert.True(t, errors.Is(err, context.Canceled), "error should carry the cancellation")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "published", StatusPublished.String())
	assert.Equal(t, "unpublished", StatusUnpublished.String())
	assert.Equal(t, "unknown", StatusUnknown.String())
}
