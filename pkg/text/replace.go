package text

import (
	"sort"
	"strings"
)

// Replacements maps placeholder tokens to the literal values that should
// stand in for them. A token KEY matches the marker {{KEY}} in content.
type Replacements map[string]string

// Replace substitutes every occurrence of {{KEY}} in content with the
// corresponding value. Values are opaque literals: a value containing "$1"
// or "{{" appears verbatim in the output. Tokens with no matching key are
// left untouched, and no error is possible.
func Replace(content string, replacements Replacements) string {
	keys := make([]string, 0, len(replacements))
	for key := range replacements {
		keys = append(keys, key)
	}
	// Deterministic application order, in case one value contains
	// another token.
	sort.Strings(keys)

	for _, key := range keys {
		content = strings.ReplaceAll(content, "{{"+key+"}}", replacements[key])
	}
	return content
}

// ReplaceBytes is Replace for raw file content.
func ReplaceBytes(content []byte, replacements Replacements) []byte {
	if len(replacements) == 0 {
		return content
	}
	return []byte(Replace(string(content), replacements))
}
