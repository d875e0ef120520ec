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

// Package bootstrap provides the init, update and verify operations that
// tie the classifier, materializer, manifest merge and integrity writer
// together.
package bootstrap

import (
	"context"
	"os"
	"path/filepath"

	"github.com/walteh/tsbootstrap/pkg/integrity"
	"github.com/walteh/tsbootstrap/pkg/log"
	"github.com/walteh/tsbootstrap/pkg/managed"
	"github.com/walteh/tsbootstrap/pkg/prompt"
	"github.com/walteh/tsbootstrap/pkg/scaffold"
	"github.com/walteh/tsbootstrap/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// Placeholder tokens resolved in template content.
const (
	TokenProjectName  = "PROJECT_NAME"
	TokenProjectTitle = "PROJECT_TITLE"
)

// 🎯 Operator defines the public scaffolding operations.
type Operator interface {
	// Init populates an empty target directory from a template.
	Init(ctx context.Context, req Request) error
	// Update re-applies the template's managed files to an existing project.
	Update(ctx context.Context, req Request) error
	// CreateOrUpdate picks Init or Update based on the target's manifest.
	CreateOrUpdate(ctx context.Context, req Request) error
	// Verify reports drift against the recorded integrity manifest.
	Verify(ctx context.Context, req Request) (*integrity.Report, error)
}

// 🔧 Options contains the operator's collaborators.
type Options struct {
	// Source locates template trees and shared resources.
	Source scaffold.Source
	// Prompter answers questions the caller did not pre-answer.
	Prompter prompt.Prompter
	// Logger emits the per-file console lines.
	Logger *log.Logger
}

// 🏭 New creates a new operator with the given options.
func New(opts Options) (Operator, error) {
	if opts.Source.Root == "" {
		return nil, errors.Errorf("source root is required")
	}
	if opts.Prompter == nil {
		return nil, errors.Errorf("prompter is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	return &operator{
		source:   opts.Source,
		prompter: opts.Prompter,
		logger:   opts.Logger,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	source   scaffold.Source
	prompter prompt.Prompter
	logger   *log.Logger
}

// 📋 Request describes one init/update invocation.
type Request struct {
	// Template names the scaffold flavor. Optional for Update and
	// CreateOrUpdate, where it is normally read from the manifest marker.
	Template managed.Template
	// TargetDir defaults to the current working directory.
	TargetDir string
	// ProjectName defaults to the target directory's base name.
	ProjectName string
	// ProjectTitle defaults to the project name.
	ProjectTitle string
}

// normalized fills the documented defaults.
func (req Request) normalized() (Request, error) {
	if req.TargetDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return req, errors.Errorf("resolving working directory: %w", err)
		}
		req.TargetDir = wd
	}
	if req.ProjectName == "" {
		abs, err := filepath.Abs(req.TargetDir)
		if err != nil {
			return req, errors.Errorf("resolving target directory: %w", err)
		}
		req.ProjectName = filepath.Base(abs)
	}
	if req.ProjectTitle == "" {
		req.ProjectTitle = req.ProjectName
	}
	return req, nil
}

// replacements builds the substitution table. Values are literals; a
// project named "demo-$1" ends up in files as exactly "demo-$1".
func (req Request) replacements() text.Replacements {
	return text.Replacements{
		TokenProjectName:  req.ProjectName,
		TokenProjectTitle: req.ProjectTitle,
	}
}

// writeIntegrity regenerates the integrity manifest from the managed-file
// set. Always the last step of init and update.
func writeIntegrity(ctx context.Context, targetDir string, entries []scaffold.Entry, tmpl managed.Template) error {
	var candidates []string
	for _, e := range entries {
		if e.Shared || managed.IsManaged(e.RelPath, tmpl) {
			candidates = append(candidates, e.RelPath)
		}
	}
	if _, err := integrity.Write(ctx, targetDir, candidates); err != nil {
		return errors.Errorf("writing integrity manifest: %w", err)
	}
	return nil
}
