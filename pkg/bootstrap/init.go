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
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/tsbootstrap/pkg/managed"
	"github.com/walteh/tsbootstrap/pkg/scaffold"
	"gitlab.com/tozd/go/errors"
)

// 🏗️ Init fully populates the target directory from a template: every
// template file (manifest included), every shared resource, then the
// integrity manifest. A partially written target after a failure is
// accepted; there is no rollback.
func (op *operator) Init(ctx context.Context, req Request) error {
	if err := op.init(ctx, req); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("init failed")
		return err
	}
	return nil
}

func (op *operator) init(ctx context.Context, req Request) error {
	req, err := req.normalized()
	if err != nil {
		return err
	}

	tmpl, err := op.resolveTemplate(ctx, req.Template)
	if err != nil {
		return err
	}

	walker := scaffold.NewWalker(op.source, req.replacements())

	// Collect everything before the first write, so a missing template
	// tree fails with nothing touched.
	entries, err := walker.All(ctx, tmpl)
	if err != nil {
		return err
	}

	op.logger.StartOperation(ctx, "initializing", tmpl.String(), req.TargetDir)

	writer := scaffold.NewWriter(req.TargetDir, op.logger)
	if err := scaffold.Materialize(ctx, entries, writer); err != nil {
		return err
	}

	if err := writeIntegrity(ctx, req.TargetDir, entries, tmpl); err != nil {
		return err
	}

	op.logger.EndOperation(ctx)
	op.logger.Successf("initialized %s project in %s", tmpl, req.TargetDir)
	return nil
}

// resolveTemplate validates the requested template, prompting for one when
// the caller supplied none. Rejection happens before any filesystem write.
func (op *operator) resolveTemplate(ctx context.Context, tmpl managed.Template) (managed.Template, error) {
	if tmpl == "" {
		names := make([]string, 0, len(managed.Templates()))
		for _, known := range managed.Templates() {
			names = append(names, known.String())
		}
		answer, err := op.prompter.Ask(ctx,
			fmt.Sprintf("which template? (%s)", strings.Join(names, ", ")),
			managed.TemplateTypeScript.String())
		if err != nil {
			return "", errors.Errorf("choosing template: %w", err)
		}
		tmpl = managed.Template(strings.TrimSpace(answer))
	}
	if !tmpl.Valid() {
		return "", errors.Errorf("unknown template %q", tmpl)
	}
	return tmpl, nil
}
