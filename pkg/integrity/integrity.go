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

// Package integrity records a content hash for every managed file written
// into a project, so later tooling can detect drift. The document is
// write-only telemetry for init and update: it is fully regenerated on
// every run and never consulted when deciding what to write.
package integrity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	// Dir is the hidden configuration directory inside a target project.
	Dir = ".tsbootstrap"

	// FileName is the integrity manifest inside Dir.
	FileName = "integrity.json"

	FormatVersion = 1
	Algorithm     = "sha256"
)

// 📜 Document is the persisted integrity manifest.
type Document struct {
	Version     int               `json:"version"`
	Algorithm   string            `json:"algorithm"`
	GeneratedAt time.Time         `json:"generated_at"`
	Files       []string          `json:"files"`
	Hashes      map[string]string `json:"hashes"`
}

// Path returns the manifest location for a target project.
func Path(targetDir string) string {
	return filepath.Join(targetDir, Dir, FileName)
}

// checksum is a SHA-256 hex digest of content.
func checksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// ✍️ Write regenerates the integrity manifest from scratch. candidates is
// the managed-file set (relative paths); files missing from the target are
// skipped, everything else is hashed from disk. Returns the manifest path.
func Write(ctx context.Context, targetDir string, candidates []string) (string, error) {
	logger := zerolog.Ctx(ctx)

	doc := Document{
		Version:     FormatVersion,
		Algorithm:   Algorithm,
		GeneratedAt: time.Now().UTC(),
		Hashes:      map[string]string{},
	}

	for _, rel := range candidates {
		content, err := os.ReadFile(filepath.Join(targetDir, filepath.FromSlash(rel)))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", errors.Errorf("hashing %s: %w", rel, err)
		}
		doc.Hashes[rel] = checksum(content)
		doc.Files = append(doc.Files, rel)
	}
	sort.Strings(doc.Files)

	data, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return "", errors.Errorf("marshaling integrity manifest: %w", err)
	}
	data = append(data, '\n')

	path := Path(targetDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Errorf("creating %s: %w", Dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Errorf("writing integrity manifest: %w", err)
	}

	logger.Debug().Str("path", path).Int("files", len(doc.Files)).Msg("wrote integrity manifest")
	return path, nil
}

// Load reads a previously written integrity manifest.
func Load(targetDir string) (*Document, error) {
	path := Path(targetDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading integrity manifest %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Errorf("integrity manifest %s is not valid JSON: %w", path, err)
	}
	return &doc, nil
}
