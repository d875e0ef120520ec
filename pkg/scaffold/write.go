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

package scaffold

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/walteh/tsbootstrap/pkg/log"
	"github.com/walteh/tsbootstrap/pkg/managed"
	"github.com/walteh/tsbootstrap/pkg/manifest"
	"gitlab.com/tozd/go/errors"
)

// ✍️ Writer writes entries into a target project directory, creating
// intermediate directories as needed and logging one line per file.
type Writer struct {
	targetDir string
	logger    *log.Logger
}

// NewWriter creates a writer rooted at targetDir.
func NewWriter(targetDir string, logger *log.Logger) *Writer {
	return &Writer{
		targetDir: filepath.Clean(targetDir),
		logger:    logger,
	}
}

// Write puts one entry on disk. Writes are atomic (temp file + rename) so a
// crash never leaves a half-written file, though a failed run can still
// leave the target with a mix of old and new files.
func (wr *Writer) Write(ctx context.Context, e Entry) error {
	absPath := filepath.Join(wr.targetDir, filepath.FromSlash(e.RelPath))

	op := log.FileOperation{
		Path: absPath,
		Kind: "template",
	}
	if e.Shared {
		op.Kind = "shared"
	}

	current, err := os.ReadFile(absPath)
	switch {
	case err != nil:
		op.IsNew = true
	case !bytes.Equal(current, e.Content):
		op.IsModified = true
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	tempPath := absPath + ".tmp"
	if err := os.WriteFile(tempPath, e.Content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	wr.logger.LogFileOperation(ctx, op)
	return nil
}

// 🏗️ Materialize writes every entry. Used by init: the whole template tree,
// manifest included, plus all shared resources.
func Materialize(ctx context.Context, entries []Entry, wr *Writer) error {
	for _, e := range entries {
		if err := wr.Write(ctx, e); err != nil {
			return errors.Errorf("writing %s: %w", e.RelPath, err)
		}
	}
	return nil
}

// 🔄 Update writes only the subset of entries that may be rewritten in an
// existing project: template-tree files the classifier approves, and every
// shared resource (shared files have no user-owned variant by design, so
// they skip the allow-list). The manifest is never written here; it is
// merged separately. Files present in the target but absent from the
// sources are never deleted. Returns the relative paths actually written.
func Update(ctx context.Context, entries []Entry, tmpl managed.Template, wr *Writer) ([]string, error) {
	var written []string
	for _, e := range entries {
		if !e.Shared {
			if filepath.Base(e.RelPath) == manifest.FileName {
				continue
			}
			if !managed.IsManaged(e.RelPath, tmpl) {
				continue
			}
		}
		if err := wr.Write(ctx, e); err != nil {
			return written, errors.Errorf("writing %s: %w", e.RelPath, err)
		}
		written = append(written, e.RelPath)
	}
	return written, nil
}
