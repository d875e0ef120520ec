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

package integrity

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 Report lists how a project has diverged from its recorded hashes.
type Report struct {
	Unchanged []string
	Drifted   []string
	Missing   []string
}

// Clean reports whether nothing drifted and nothing is missing.
func (r *Report) Clean() bool {
	return len(r.Drifted) == 0 && len(r.Missing) == 0
}

// 🔎 Check re-hashes every file listed in the project's integrity manifest
// and reports drift. Read-only; the manifest itself is not rewritten.
func Check(ctx context.Context, targetDir string) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	doc, err := Load(targetDir)
	if err != nil {
		return nil, err
	}
	if doc.Algorithm != Algorithm {
		return nil, errors.Errorf("unsupported hash algorithm %q in integrity manifest", doc.Algorithm)
	}

	report := &Report{}
	for _, rel := range doc.Files {
		content, err := os.ReadFile(filepath.Join(targetDir, filepath.FromSlash(rel)))
		if err != nil {
			if os.IsNotExist(err) {
				report.Missing = append(report.Missing, rel)
				continue
			}
			return nil, errors.Errorf("hashing %s: %w", rel, err)
		}
		if checksum(content) != doc.Hashes[rel] {
			report.Drifted = append(report.Drifted, rel)
		} else {
			report.Unchanged = append(report.Unchanged, rel)
		}
	}

	logger.Debug().
		Int("unchanged", len(report.Unchanged)).
		Int("drifted", len(report.Drifted)).
		Int("missing", len(report.Missing)).
		Msg("integrity check complete")
	return report, nil
}
