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

// Package managed decides which files in a generated project are owned by
// the template and therefore safe to overwrite on update.
package managed

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// 🎨 Template identifies one of the scaffold flavors shipped with the tool.
type Template string

const (
	TemplateTypeScript Template = "typescript"
	TemplateReact      Template = "react"
)

// Templates returns the closed set of known templates.
func Templates() []Template {
	return []Template{TemplateTypeScript, TemplateReact}
}

// Valid reports whether t names a known template.
func (t Template) Valid() bool {
	for _, known := range Templates() {
		if t == known {
			return true
		}
	}
	return false
}

func (t Template) String() string {
	return string(t)
}

const (
	// UserCodeDir is the directory that holds only user-authored code.
	// Nothing under it is ever overwritten by an update.
	UserCodeDir = "src"

	// ManifestFile is merged field by field, never overwritten whole.
	ManifestFile = "package.json"
)

// 🗺️ allowPatterns is the explicit enumeration of template-owned files.
// Deliberately a list of names, not an extension rule: the template trees
// also carry files that must never be overwritten (example sources, the
// test bootstrap) right next to these.
var allowPatterns = []string{
	"**/vite.config.ts",
	"**/vitest.config.ts",
	"**/tsconfig.json",
	"**/tsconfig.build.json",
	"**/index.html",
	"**/.vscode/settings.json",
}

// 🔍 IsManaged reports whether the template-relative path rel is owned by
// the given template and may be rewritten during an update. It is a pure
// function of its arguments; filesystem state is never consulted. Unmatched
// paths default to false: when in doubt, user content is not overwritten.
func IsManaged(rel string, template Template) bool {
	rel = Normalize(rel)
	if rel == "" {
		return false
	}

	// Hard exclusion, checked before the allow-list: the user-code
	// directory wins even over allow-listed filenames.
	first, _, _ := strings.Cut(rel, "/")
	if first == UserCodeDir {
		return false
	}

	// The manifest is merged (pkg/manifest), never plainly overwritten.
	if filepath.Base(rel) == ManifestFile {
		return false
	}

	for _, pattern := range allowPatterns {
		// Patterns are static and valid, Match cannot fail on them.
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// Normalize converts rel to slash-separated form without a leading "./",
// so classification behaves identically on every platform.
func Normalize(rel string) string {
	rel = filepath.ToSlash(rel)
	rel = strings.TrimPrefix(rel, "./")
	return strings.TrimPrefix(rel, "/")
}
