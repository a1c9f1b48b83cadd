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

package status

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 EntryStatus represents what happened to a managed entry during a sync
type EntryStatus int

const (
	EntryUnknown EntryStatus = iota
	EntryAdded               // Entry was inserted
	EntryKept                // Entry was already present and stays
	EntryRemoved             // Entry belonged to a published document
	EntryDropped             // Entry had no unpublished document behind it
)

// String returns a string representation of EntryStatus
func (s EntryStatus) String() string {
	switch s {
	case EntryAdded:
		return "added"
	case EntryKept:
		return "kept"
	case EntryRemoved:
		return "removed"
	case EntryDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// 💾 Manager handles all file system operations below a base directory
type Manager struct {
	baseDir string
}

// tempPattern names the scratch file WriteFile renames over the target
const tempPattern = ".draftignore-*"

// discardTemp removes a temp file left behind by a failed write and keeps
// both errors when the removal fails too
func discardTemp(tmpPath string, cause error) error {
	if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
		return errors.Join(cause, errors.Errorf("removing temp file: %w", err))
	}
	return cause
}

// 🏭 New creates a new file manager
func New(baseDir string) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
	}
}

// 🔒 getAbsPath returns the absolute path for a given path. Absolute paths
// are used as is.
func (m *Manager) getAbsPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.baseDir, path)
}

// 🔍 Checksum generates a SHA-256 hash of the content
func Checksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

func (m *Manager) ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error) {
	entries, err := os.ReadDir(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading directory: %w", err)
	}
	return entries, nil
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(m.getAbsPath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// 📝 WriteFile replaces the whole file through a temp file in the same
// directory and a rename. The permission bits of an existing file are kept.
func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)

	mode := fs.FileMode(0644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), tempPattern)
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return discardTemp(tmpPath, errors.Errorf("writing temp file: %w", err))
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return discardTemp(tmpPath, errors.Errorf("setting temp file mode: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return discardTemp(tmpPath, errors.Errorf("closing temp file: %w", err))
	}

	if err := os.Rename(tmpPath, absPath); err != nil {
		return discardTemp(tmpPath, errors.Errorf("renaming temp file: %w", err))
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", absPath).
		Int("bytes", len(content)).
		Str("checksum", Checksum(content)).
		Msg("wrote file")

	return nil
}
