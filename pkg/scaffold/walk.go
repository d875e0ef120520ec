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
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/tsbootstrap/pkg/managed"
	"github.com/walteh/tsbootstrap/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📄 Entry is one file produced by walking a source tree: its path relative
// to the target root and its content after placeholder substitution. The
// walker returns entries instead of invoking callbacks, so the caller folds
// the list into writes, reports or hashes as it needs.
type Entry struct {
	RelPath string // slash-separated, relative to the target root
	Content []byte
	Shared  bool // true if from the shared-resource tree
}

// 🚶 Walker enumerates the files a template materializes.
type Walker struct {
	source       Source
	replacements text.Replacements
}

// NewWalker creates a walker over the given source root.
func NewWalker(source Source, replacements text.Replacements) *Walker {
	return &Walker{source: source, replacements: replacements}
}

// Template returns every file in the template's tree. A missing tree is a
// configuration error: the tool cannot proceed without its template source.
func (w *Walker) Template(ctx context.Context, tmpl managed.Template) ([]Entry, error) {
	root := w.source.TemplateRoot(tmpl)
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, errors.Errorf("template %q has no source tree at %s", tmpl, root)
	}
	return w.walkTree(ctx, root, false)
}

// Shared returns every shared resource, minus the tool's own workflow file.
func (w *Walker) Shared(ctx context.Context) ([]Entry, error) {
	root := w.source.SharedRoot()
	if _, err := os.Stat(root); os.IsNotExist(err) {
		zerolog.Ctx(ctx).Debug().Str("root", root).Msg("no shared resources")
		return nil, nil
	}
	entries, err := w.walkTree(ctx, root, true)
	if err != nil {
		return nil, err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.RelPath == ToolWorkflowFile {
			continue
		}
		kept = append(kept, e)
	}
	return kept, nil
}

// All returns the template tree followed by the shared resources.
func (w *Walker) All(ctx context.Context, tmpl managed.Template) ([]Entry, error) {
	entries, err := w.Template(ctx, tmpl)
	if err != nil {
		return nil, err
	}
	shared, err := w.Shared(ctx)
	if err != nil {
		return nil, err
	}
	return append(entries, shared...), nil
}

// walkTree walks one source tree sequentially, in directory-entry order,
// applying placeholder substitution to each file.
func (w *Walker) walkTree(ctx context.Context, root string, shared bool) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Errorf("reading %s: %w", path, err)
		}

		entries = append(entries, Entry{
			RelPath: managed.Normalize(rel),
			Content: text.ReplaceBytes(content, w.replacements),
			Shared:  shared,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
