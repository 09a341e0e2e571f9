package values

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes a YAML mapping from r and adds every top-level key to dst.
// Scalars keep the types yaml.v3 gives them (string, int, float64, bool);
// nested mappings become map[string]any. An empty document adds nothing.
func LoadYAML(r io.Reader, dst Values) error {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("values: decode yaml: %w", err)
	}
	for k, v := range doc {
		dst.Add(k, v)
	}
	return nil
}

// ParseAssignments adds each "key=value" assignment to dst as a string.
// The value may itself contain "=".
func ParseAssignments(assignments []string, dst Values) error {
	for _, a := range assignments {
		key, value, ok := strings.Cut(a, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("values: invalid assignment %q, want key=value", a)
		}
		dst.Add(key, value)
	}
	return nil
}
