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

package bootstrap

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/tsbootstrap/pkg/log"
	"github.com/walteh/tsbootstrap/pkg/managed"
	"github.com/walteh/tsbootstrap/pkg/manifest"
	"github.com/walteh/tsbootstrap/pkg/scaffold"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Update re-applies the template to an existing project: managed
// template files and all shared resources are rewritten, the manifest is
// merged field by field, the integrity manifest is regenerated last.
// User files and user manifest fields are never touched, and nothing is
// ever deleted.
func (op *operator) Update(ctx context.Context, req Request) error {
	if err := op.update(ctx, req); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("update failed")
		return err
	}
	return nil
}

func (op *operator) update(ctx context.Context, req Request) error {
	req, err := req.normalized()
	if err != nil {
		return err
	}

	manifestPath := filepath.Join(req.TargetDir, manifest.FileName)
	if _, err := os.Stat(manifestPath); err != nil {
		if os.IsNotExist(err) {
			return errors.Errorf("%s is not a generated project: no %s", req.TargetDir, manifest.FileName)
		}
		return errors.Errorf("checking %s: %w", manifestPath, err)
	}

	// Parse before touching anything: a corrupt manifest must reject the
	// whole update with the target unmodified.
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	tmpl := req.Template
	if tmpl == "" {
		marker, ok := m.Marker()
		if !ok {
			return errors.Errorf("manifest %s has no %s marker; pass a template explicitly", manifestPath, manifest.MarkerField)
		}
		tmpl = managed.Template(marker.Template)
	}
	if !tmpl.Valid() {
		return errors.Errorf("unknown template %q", tmpl)
	}

	walker := scaffold.NewWalker(op.source, req.replacements())
	entries, err := walker.All(ctx, tmpl)
	if err != nil {
		return err
	}

	op.logger.StartOperation(ctx, "updating", tmpl.String(), req.TargetDir)

	writer := scaffold.NewWriter(req.TargetDir, op.logger)
	written, err := scaffold.Update(ctx, entries, tmpl, writer)
	if err != nil {
		return err
	}

	// Manifest merge runs strictly after the plain-file writes.
	if err := manifest.Merge(ctx, op.source.TemplateManifest(tmpl), manifestPath, req.replacements()); err != nil {
		return err
	}
	op.logger.LogFileOperation(ctx, log.FileOperation{
		Path:     manifestPath,
		Kind:     "manifest",
		IsMerged: true,
	})

	if err := writeIntegrity(ctx, req.TargetDir, entries, tmpl); err != nil {
		return err
	}

	op.logger.EndOperation(ctx)
	op.logger.Successf("updated %d files in %s", len(written), req.TargetDir)
	return nil
}
