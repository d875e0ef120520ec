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
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/tsbootstrap/pkg/managed"
	"gitlab.com/tozd/go/errors"
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

// 📚 Config is the tool-level configuration. It controls where template
// trees are read from, never what gets written into a project.
type Config struct {
	// SourceRoot is the directory holding templates/ and shared/.
	SourceRoot string `json:"source_root,omitempty" yaml:"source_root,omitempty" toml:"source_root,omitempty" hcl:"source_root,optional"`

	// DefaultTemplate is used when no template is supplied or prompted.
	DefaultTemplate string `json:"default_template,omitempty" yaml:"default_template,omitempty" toml:"default_template,omitempty" hcl:"default_template,optional"`

	// NonInteractive disables all prompting.
	NonInteractive bool `json:"non_interactive,omitempty" yaml:"non_interactive,omitempty" toml:"non_interactive,omitempty" hcl:"non_interactive,optional"`
}

// 🎯 Load loads the configuration from a file. A missing file is not an
// error: every field has a usable zero value.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.SourceRoot != "" {
		cfg.SourceRoot = filepath.Clean(cfg.SourceRoot)
	}
	if cfg.DefaultTemplate != "" {
		if !managed.Template(cfg.DefaultTemplate).Valid() {
			return errors.Errorf("unknown default_template: %s", cfg.DefaultTemplate)
		}
	}
	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("source_root=%s default_template=%s", cfg.SourceRoot, cfg.DefaultTemplate)
}
