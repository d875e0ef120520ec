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

// Package scaffold walks template source trees and writes their files into
// a target project directory.
package scaffold

import (
	"os"
	"path/filepath"

	"github.com/walteh/tsbootstrap/pkg/managed"
	"github.com/walteh/tsbootstrap/pkg/manifest"
)

// ToolWorkflowFile is the one shared workflow that belongs to this tool's
// own repository and must not be copied into generated projects.
const ToolWorkflowFile = ".github/workflows/publish-tsbootstrap.yml"

// 📂 Source locates template trees and shared resources. It is always
// injected explicitly; nothing in this package resolves paths relative to
// the running binary.
type Source struct {
	// Root holds templates/ and shared/.
	Root string
}

// TemplateRoot returns the tree for one template.
func (s Source) TemplateRoot(t managed.Template) string {
	return filepath.Join(s.Root, "templates", string(t))
}

// TemplateManifest returns the template's package.json.
func (s Source) TemplateManifest(t managed.Template) string {
	return filepath.Join(s.TemplateRoot(t), manifest.FileName)
}

// SharedRoot returns the template-independent resource tree.
func (s Source) SharedRoot() string {
	return filepath.Join(s.Root, "shared")
}

// HasTemplate reports whether a template's source tree exists on disk.
func (s Source) HasTemplate(t managed.Template) bool {
	info, err := os.Stat(s.TemplateRoot(t))
	return err == nil && info.IsDir()
}
