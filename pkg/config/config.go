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
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📌 Defaults used when a field is left empty
const (
	DefaultDocumentsDir    = "articles"
	DefaultDocumentsFolder = "articles"
	DefaultPattern         = "*.md"
	DefaultIgnoreFile      = ".gitignore"
	DefaultMarker          = "# 公開していない記事"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📄 DocumentsArgs describes where the articles live
type DocumentsArgs struct {
	Dir     string `json:"dir" yaml:"dir"`         // Directory scanned for documents
	Folder  string `json:"folder" yaml:"folder"`   // Folder name used as the managed entry prefix
	Pattern string `json:"pattern" yaml:"pattern"` // Glob a file name must match to be a document
}

// 🙈 IgnoreArgs describes the ignore file being synchronized
type IgnoreArgs struct {
	File   string `json:"file" yaml:"file"`     // Path of the ignore file
	Marker string `json:"marker" yaml:"marker"` // Line after which managed entries are placed
}

// 📚 Config represents the complete configuration
type Config struct {
	Documents DocumentsArgs `json:"documents" yaml:"documents"`
	Ignore    IgnoreArgs    `json:"ignore" yaml:"ignore"`
}

// 🏭 Default returns the configuration used when no config file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Locator reports whether a config file exists
type Locator interface {
	FileExists(ctx context.Context, path string) (bool, error)
}

// 🎯 LoadOrDefault loads the config at path, falling back to Default when
// the file does not exist. Only use it for the implicit default path; a path
// the user named should go through Load so a typo fails.
func LoadOrDefault(ctx context.Context, files Locator, path string) (*Config, error) {
	exists, err := files.FileExists(ctx, path)
	if err != nil {
		return nil, errors.Errorf("checking config file: %w", err)
	}
	if !exists {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("config file not found, using defaults")
		return Default(), nil
	}
	return Load(ctx, path)
}

func (cfg *Config) applyDefaults() {
	if cfg.Documents.Dir == "" {
		cfg.Documents.Dir = DefaultDocumentsDir
	}
	if cfg.Documents.Folder == "" {
		cfg.Documents.Folder = DefaultDocumentsFolder
	}
	if cfg.Documents.Pattern == "" {
		cfg.Documents.Pattern = DefaultPattern
	}
	if cfg.Ignore.File == "" {
		cfg.Ignore.File = DefaultIgnoreFile
	}
	if cfg.Ignore.Marker == "" {
		cfg.Ignore.Marker = DefaultMarker
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Documents.Dir == "" {
		return errors.Errorf("documents.dir is required")
	}
	if cfg.Documents.Folder == "" {
		return errors.Errorf("documents.folder is required")
	}
	if strings.ContainsAny(cfg.Documents.Folder, `/\`) {
		return errors.Errorf("documents.folder must be a single folder name: %s", cfg.Documents.Folder)
	}
	if !doublestar.ValidatePattern(cfg.Documents.Pattern) {
		return errors.Errorf("documents.pattern is not a valid glob: %s", cfg.Documents.Pattern)
	}
	if cfg.Ignore.File == "" {
		return errors.Errorf("ignore.file is required")
	}
	if strings.TrimSpace(cfg.Ignore.Marker) == "" {
		return errors.Errorf("ignore.marker must not be blank")
	}

	cfg.Documents.Dir = filepath.Clean(cfg.Documents.Dir)
	cfg.Ignore.File = filepath.Clean(cfg.Ignore.File)

	return nil
}

// 📂 Resolve returns a copy with relative paths anchored at root
func (cfg *Config) Resolve(root string) *Config {
	out := *cfg
	if !filepath.IsAbs(out.Documents.Dir) {
		out.Documents.Dir = filepath.Join(root, out.Documents.Dir)
	}
	if !filepath.IsAbs(out.Ignore.File) {
		out.Ignore.File = filepath.Join(root, out.Ignore.File)
	}
	return &out
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s/%s -> %s", cfg.Documents.Dir, cfg.Documents.Pattern, cfg.Ignore.File)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}
