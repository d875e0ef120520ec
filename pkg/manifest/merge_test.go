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

package manifest_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tsbootstrap/pkg/manifest"
	"github.com/walteh/tsbootstrap/pkg/text"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// writeManifests puts a template and a target manifest into a temp dir and
// returns their paths.
func writeManifests(t *testing.T, template, target string) (string, string) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.package.json")
	targetPath := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(templatePath, []byte(template), 0644))
	require.NoError(t, os.WriteFile(targetPath, []byte(target), 0644))
	return templatePath, targetPath
}

func loadFields(t *testing.T, path string) map[string]json.RawMessage {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	return fields
}

func TestMergePreservesUserFields(t *testing.T) {
	templatePath, targetPath := writeManifests(t,
		`{
			"name": "{{PROJECT_NAME}}",
			"scripts": {"build": "tsc -p tsconfig.build.json", "test": "vitest run"},
			"devDependencies": {"typescript": "5.6.3", "vitest": "2.1.4"},
			"typescriptBootstrap": {"template": "typescript"}
		}`,
		`{
			"name": "my-project",
			"author": "someone",
			"scripts": {"build": "old build", "deploy": "scp dist host:"},
			"dependencies": {"lodash": "4.17.21"},
			"devDependencies": {"typescript": "5.0.0", "prettier": "3.3.3"}
		}`)

	ctx := testContext(t)
	require.NoError(t, manifest.Merge(ctx, templatePath, targetPath, nil))

	m, err := manifest.Load(targetPath)
	require.NoError(t, err)

	// User-owned top-level fields are untouched.
	name, _ := m.StringField("name")
	assert.Equal(t, "my-project", name)
	author, _ := m.StringField("author")
	assert.Equal(t, "someone", author)

	fields := loadFields(t, targetPath)

	var scripts map[string]string
	require.NoError(t, json.Unmarshal(fields["scripts"], &scripts))
	assert.Equal(t, "tsc -p tsconfig.build.json", scripts["build"], "template wins on conflict")
	assert.Equal(t, "vitest run", scripts["test"], "template-only key added")
	assert.Equal(t, "scp dist host:", scripts["deploy"], "user-only key preserved")

	var devDeps map[string]string
	require.NoError(t, json.Unmarshal(fields["devDependencies"], &devDeps))
	assert.Equal(t, "5.6.3", devDeps["typescript"])
	assert.Equal(t, "3.3.3", devDeps["prettier"])

	// dependencies is not defined by the template, so the user's stays.
	var deps map[string]string
	require.NoError(t, json.Unmarshal(fields["dependencies"], &deps))
	assert.Equal(t, map[string]string{"lodash": "4.17.21"}, deps)

	marker, ok := m.Marker()
	require.True(t, ok)
	assert.Equal(t, "typescript", marker.Template)
}

func TestMergeMarkerFirstWriteWins(t *testing.T) {
	templatePath, targetPath := writeManifests(t,
		`{"scripts": {}, "typescriptBootstrap": {"template": "react"}}`,
		`{"name": "p", "typescriptBootstrap": {"template": "typescript"}}`)

	require.NoError(t, manifest.Merge(testContext(t), templatePath, targetPath, nil))

	m, err := manifest.Load(targetPath)
	require.NoError(t, err)
	marker, ok := m.Marker()
	require.True(t, ok)
	assert.Equal(t, "typescript", marker.Template, "recorded identity is never silently changed")
}

func TestMergeSubstitutesTemplateTokens(t *testing.T) {
	templatePath, targetPath := writeManifests(t,
		`{"scripts": {"start": "node dist/{{PROJECT_NAME}}.js"}}`,
		`{"name": "demo"}`)

	replacements := text.Replacements{"PROJECT_NAME": "demo"}
	require.NoError(t, manifest.Merge(testContext(t), templatePath, targetPath, replacements))

	fields := loadFields(t, targetPath)
	var scripts map[string]string
	require.NoError(t, json.Unmarshal(fields["scripts"], &scripts))
	assert.Equal(t, "node dist/demo.js", scripts["start"], "tokens nested in the template resolve")
}

func TestMergeIdempotent(t *testing.T) {
	templatePath, targetPath := writeManifests(t,
		`{
			"scripts": {"build": "tsc", "test": "vitest run"},
			"devDependencies": {"typescript": "5.6.3"},
			"typescriptBootstrap": {"template": "typescript"}
		}`,
		`{"name": "p", "scripts": {"deploy": "x"}}`)

	ctx := testContext(t)
	require.NoError(t, manifest.Merge(ctx, templatePath, targetPath, nil))
	first, err := os.ReadFile(targetPath)
	require.NoError(t, err)

	require.NoError(t, manifest.Merge(ctx, templatePath, targetPath, nil))
	second, err := os.ReadFile(targetPath)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestMergeOutputShape(t *testing.T) {
	templatePath, targetPath := writeManifests(t,
		`{"scripts": {"build": "tsc"}}`,
		`{"zeta": 1, "alpha": 2}`)

	require.NoError(t, manifest.Merge(testContext(t), templatePath, targetPath, nil))

	data, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, out[len(out)-1] == '\n', "trailing newline")
	assert.Less(t, strings.Index(out, `"alpha"`), strings.Index(out, `"scripts"`), "sorted keys")
	assert.Less(t, strings.Index(out, `"scripts"`), strings.Index(out, `"zeta"`), "sorted keys")
}

func TestMergeRejectsInvalidTarget(t *testing.T) {
	templatePath, targetPath := writeManifests(t,
		`{"scripts": {}}`,
		`{not json`)

	err := manifest.Merge(testContext(t), templatePath, targetPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), targetPath)
	assert.Contains(t, err.Error(), "not valid JSON")

	// Nothing was written.
	data, readErr := os.ReadFile(targetPath)
	require.NoError(t, readErr)
	assert.Equal(t, `{not json`, string(data))
}

func TestMergeRejectsInvalidTemplate(t *testing.T) {
	templatePath, targetPath := writeManifests(t,
		`{{{`,
		`{"name": "p"}`)

	err := manifest.Merge(testContext(t), templatePath, targetPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), templatePath)

	data, readErr := os.ReadFile(targetPath)
	require.NoError(t, readErr)
	assert.Equal(t, `{"name": "p"}`, string(data), "target untouched on template parse failure")
}
