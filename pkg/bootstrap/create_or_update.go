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
	"os"
	"path/filepath"

	"github.com/walteh/tsbootstrap/pkg/manifest"
	"gitlab.com/tozd/go/errors"
)

// 🔀 CreateOrUpdate inspects the target and picks the right operation. A
// manifest carrying the template marker means this is one of ours: update.
// A manifest without the marker could be an unrelated project, so updating
// needs explicit confirmation (which the non-interactive prompter turns
// into a hard error). No manifest at all means a fresh init.
func (op *operator) CreateOrUpdate(ctx context.Context, req Request) error {
	normalized, err := req.normalized()
	if err != nil {
		return err
	}

	manifestPath := filepath.Join(normalized.TargetDir, manifest.FileName)
	if _, err := os.Stat(manifestPath); err != nil {
		if os.IsNotExist(err) {
			return op.Init(ctx, req)
		}
		return errors.Errorf("checking %s: %w", manifestPath, err)
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	if _, ok := m.Marker(); !ok {
		confirmed, err := op.prompter.Confirm(ctx, fmt.Sprintf(
			"%s exists but has no %s marker; apply template updates anyway?",
			manifest.FileName, manifest.MarkerField))
		if err != nil {
			return errors.Errorf("confirming update of unmarked project: %w", err)
		}
		if !confirmed {
			return errors.Errorf("update of unmarked project declined")
		}
	}

	return op.Update(ctx, req)
}
