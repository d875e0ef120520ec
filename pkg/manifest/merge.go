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

package manifest

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/tsbootstrap/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// templateOwnedObjects are the fields merged key by key, template winning
// on conflict, user-only keys preserved.
var templateOwnedObjects = []string{"scripts", "dependencies", "devDependencies"}

// 🔀 Merge loads the template manifest and the target project manifest and
// rewrites the target in place. Placeholders are substituted on the
// serialized template before it is parsed, so tokens nested anywhere in it
// resolve. The merge is all or nothing: if either file fails to parse,
// nothing is written.
//
// Rules, per field category:
//   - scripts / dependencies / devDependencies: union of keys; a key present
//     in the template overwrites the target's value for that key; keys only
//     in the target are kept unchanged.
//   - the template-identity marker: first write wins. Once a project records
//     an identity it is never silently changed, even if it was hand-edited
//     to name a different template.
//   - every other top-level field of the target: untouched.
func Merge(ctx context.Context, templatePath, targetPath string, replacements text.Replacements) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("template", templatePath).
		Str("target", targetPath).
		Msg("merging manifest")

	templateData, err := os.ReadFile(templatePath)
	if err != nil {
		return errors.Errorf("reading template manifest %s: %w", templatePath, err)
	}

	tmpl, err := Parse(text.ReplaceBytes(templateData, replacements))
	if err != nil {
		return errors.Errorf("template manifest %s is not valid JSON: %w", templatePath, err)
	}

	target, err := Load(targetPath)
	if err != nil {
		return err
	}

	merged, err := merge(tmpl, target)
	if err != nil {
		return err
	}

	data, err := merged.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(targetPath, data, 0644); err != nil {
		return errors.Errorf("writing manifest %s: %w", targetPath, err)
	}

	return nil
}

// merge produces the merged manifest without touching the filesystem.
func merge(tmpl, target *Manifest) (*Manifest, error) {
	out := make(map[string]json.RawMessage, len(target.fields))
	for k, v := range target.fields {
		out[k] = v
	}

	for _, field := range templateOwnedObjects {
		tmplObj, err := tmpl.objectField(field)
		if err != nil {
			return nil, errors.Errorf("template manifest: %w", err)
		}
		if tmplObj == nil {
			// The template does not define this field at all; whatever
			// the target has is user-owned.
			continue
		}

		targetObj, err := target.objectField(field)
		if err != nil {
			return nil, errors.Errorf("project manifest: %w", err)
		}

		union := make(map[string]json.RawMessage, len(targetObj)+len(tmplObj))
		for k, v := range targetObj {
			union[k] = v
		}
		for k, v := range tmplObj {
			union[k] = v
		}

		raw, err := json.Marshal(union)
		if err != nil {
			return nil, errors.Errorf("marshaling field %q: %w", field, err)
		}
		out[field] = raw
	}

	if _, ok := out[MarkerField]; !ok {
		if raw, ok := tmpl.fields[MarkerField]; ok {
			out[MarkerField] = raw
		}
	}

	return &Manifest{fields: out}, nil
}
