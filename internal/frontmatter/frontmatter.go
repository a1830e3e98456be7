// Package frontmatter renders YAML frontmatter blocks for generated
// Quarto/Markdown documents.
package frontmatter

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Override specifies modifications to a base frontmatter map: Set
// operations are applied first, then Remove operations.
type Override struct {
	// Set contains fields to add or overwrite. Values must be
	// YAML-serializable (string, bool, int, []string, map, etc.)
	Set map[string]any

	// Remove contains field names to delete, applied after Set, so a
	// field named in both Set and Remove ends up removed.
	Remove []string
}

// Apply applies Set and Remove operations to a frontmatter map, returning
// a new map; it never mutates base.
func Apply(base map[string]any, overrides *Override) map[string]any {
	result := copyMap(base)
	if result == nil {
		result = make(map[string]any)
	}
	if overrides == nil {
		return result
	}

	for k, v := range overrides.Set {
		result[k] = copyValue(v)
	}
	for _, k := range overrides.Remove {
		delete(result, k)
	}
	return result
}

func copyMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = copyValue(v)
	}
	return dst
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyMap(val)
	case []any:
		dst := make([]any, len(val))
		for i, e := range val {
			dst[i] = copyValue(e)
		}
		return dst
	case []string:
		dst := make([]string, len(val))
		copy(dst, val)
		return dst
	default:
		return v
	}
}

// Render serializes a frontmatter map to sorted-key YAML and wraps it
// around body between "---" fences. If fm is empty, an empty fence pair
// still precedes the body, matching how Quarto treats a frontmatter-less
// document.
func Render(fm map[string]any, body string) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	if len(fm) > 0 {
		keys := make([]string, 0, len(fm))
		for k := range fm {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		ordered := make(map[string]any, len(fm))
		for _, k := range keys {
			ordered[k] = fm[k]
		}

		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(0)
		if err := encoder.Encode(ordered); err != nil {
			return "", fmt.Errorf("encode frontmatter yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return "", fmt.Errorf("close frontmatter yaml encoder: %w", err)
		}
	}

	buf.WriteString("---\n")
	buf.WriteString(body)
	return buf.String(), nil
}
