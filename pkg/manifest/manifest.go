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

// Package manifest loads and merges package.json files. The manifest is the
// only file with split ownership: scripts, dependencies and devDependencies
// defined by the template follow the template, everything else belongs to
// the user.
package manifest

import (
	"encoding/json"
	"os"

	"gitlab.com/tozd/go/errors"
)

const (
	// FileName is the project manifest at the target root.
	FileName = "package.json"

	// MarkerField records which template a project was generated from.
	MarkerField = "typescriptBootstrap"
)

// 🏷️ Marker is the template-identity field inside a manifest.
type Marker struct {
	Template string `json:"template"`
}

// 📦 Manifest holds a package.json as raw top-level fields, so user fields
// the tool knows nothing about round-trip byte-for-byte (modulo formatting).
type Manifest struct {
	fields map[string]json.RawMessage
}

// Parse decodes manifest JSON.
func Parse(data []byte) (*Manifest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	return &Manifest{fields: fields}, nil
}

// Load reads and parses the manifest at path. Errors always name the file,
// so the caller can tell a broken project manifest from a broken template.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading manifest %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, errors.Errorf("manifest %s is not valid JSON: %w", path, err)
	}
	return m, nil
}

// Has reports whether the manifest defines a top-level field.
func (m *Manifest) Has(field string) bool {
	_, ok := m.fields[field]
	return ok
}

// StringField returns a top-level string field, if present and a string.
func (m *Manifest) StringField(field string) (string, bool) {
	raw, ok := m.fields[field]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Marker returns the template-identity marker, if present and well formed.
func (m *Manifest) Marker() (*Marker, bool) {
	raw, ok := m.fields[MarkerField]
	if !ok {
		return nil, false
	}
	var marker Marker
	if err := json.Unmarshal(raw, &marker); err != nil {
		return nil, false
	}
	return &marker, true
}

// objectField decodes a top-level field as a JSON object of raw values.
func (m *Manifest) objectField(field string) (map[string]json.RawMessage, error) {
	raw, ok := m.fields[field]
	if !ok {
		return nil, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errors.Errorf("field %q is not an object: %w", field, err)
	}
	return obj, nil
}

// Marshal serializes with sorted top-level keys, tab indentation and a
// trailing newline.
func (m *Manifest) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(m.fields, "", "\t")
	if err != nil {
		return nil, errors.Errorf("marshaling manifest: %w", err)
	}
	return append(data, '\n'), nil
}
