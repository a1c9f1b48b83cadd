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

// Package scan classifies article documents by their published flag.
package scan

import (
	"context"
	"io/fs"
	"path/filepath"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrDirectoryRead = errors.Base("reading documents directory")
	ErrDocumentRead  = errors.Base("reading document")
)

// The metadata block is not parsed; a line-anchored match is all that is needed.
var publishedPattern = regexp.MustCompile(`(?m)^published:\s*(true|false)`)

// 📊 Status is the publication state declared by a document
type Status int

const (
	StatusUnknown     Status = iota // No published flag found
	StatusPublished                 // published: true
	StatusUnpublished               // published: false
)

// String returns a string representation of Status
func (s Status) String() string {
	switch s {
	case StatusPublished:
		return "published"
	case StatusUnpublished:
		return "unpublished"
	default:
		return "unknown"
	}
}

// 🔍 Classify returns the status declared by the first published flag in content
func Classify(content []byte) Status {
	m := publishedPattern.FindSubmatch(content)
	if m == nil {
		return StatusUnknown
	}
	if string(m[1]) == "false" {
		return StatusUnpublished
	}
	return StatusPublished
}

// 📄 Document is one classified file
type Document struct {
	Name   string // File name inside the documents directory
	Path   string // Managed entry path, <folder>/<name>
	Status Status
}

// 📦 Result holds the two disjoint path lists produced by a scan
type Result struct {
	Unpublished []string
	Published   []string
	Documents   []Document // Every candidate, Unknown included
}

// 💾 FileReader is the read side of the file store
type FileReader interface {
	ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// 🔎 Scanner reads a documents directory and classifies its entries
type Scanner struct {
	files   FileReader
	folder  string
	pattern string
}

// 🏭 New creates a scanner producing <folder>/<name> paths for entries matching pattern
func New(files FileReader, folder, pattern string) *Scanner {
	return &Scanner{
		files:   files,
		folder:  folder,
		pattern: pattern,
	}
}

// 🏃 Scan classifies every document in dir. Results follow the directory
// listing order. Any read failure aborts the scan.
func (s *Scanner) Scan(ctx context.Context, dir string) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("dir", dir).Str("pattern", s.pattern).Msg("scanning documents")

	entries, err := s.files.ReadDir(ctx, dir)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %w", ErrDirectoryRead, dir, err)
	}

	result := &Result{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matched, err := doublestar.Match(s.pattern, entry.Name())
		if err != nil {
			return nil, errors.Errorf("matching pattern %q: %w", s.pattern, err)
		}
		if !matched {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("scan cancelled: %w", err)
		}

		content, err := s.files.ReadFile(ctx, filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Errorf("%w: %s: %w", ErrDocumentRead, entry.Name(), err)
		}

		doc := Document{
			Name:   entry.Name(),
			Path:   s.folder + "/" + entry.Name(),
			Status: Classify(content),
		}
		result.Documents = append(result.Documents, doc)

		switch doc.Status {
		case StatusUnpublished:
			result.Unpublished = append(result.Unpublished, doc.Path)
		case StatusPublished:
			result.Published = append(result.Published, doc.Path)
		}

		logger.Trace().Str("document", doc.Path).Stringer("status", doc.Status).Msg("classified document")
	}

	logger.Debug().
		Int("unpublished", len(result.Unpublished)).
		Int("published", len(result.Published)).
		Int("documents", len(result.Documents)).
		Msg("scan complete")

	return result, nil
}
