package decoy

import (
	"fmt"
	"strings"
)

// Render replaces {{NAME}} placeholders in a skeleton with values from
// vars. It returns an error for an unclosed placeholder, an empty
// placeholder, or a placeholder with no value in vars.
//
// Errors here indicate a bug in a skeleton or its vars function, not a
// runtime condition — the template set is fixed at compile time and every
// skeleton/vars pair is covered by tests. The error return exists so the
// mapping from synthesized names to slots stays explicit and checkable.
func Render(skeleton string, vars map[string]string) (string, error) {
	var out strings.Builder
	rest := skeleton
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", fmt.Errorf("unclosed placeholder in skeleton")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", fmt.Errorf("empty placeholder in skeleton")
		}

		value, ok := vars[key]
		if !ok {
			return "", fmt.Errorf("no value for placeholder %q", key)
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}
