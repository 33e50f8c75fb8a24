package values

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Values is a chart values tree, the same shape helm passes to its engine.
type Values map[string]interface{}

func FromYAMLFile(path string) (Values, error) {
	if path == "" {
		return nil, errors.New("no values file given")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	vals := Values{}
	if err := yaml.Unmarshal(data, &vals); err != nil {
		return nil, errors.Wrapf(err, "parsing values file %s", path)
	}

	return vals, nil
}

// Merge overlays other on top of v. Nested maps merge recursively, anything
// else in other replaces the value in v. Neither input is mutated.
func (v Values) Merge(other Values) (Values, error) {
	out := mergeMaps(v, other)
	return out, nil
}

// toMap unwraps a nested mapping. yaml.v3 decodes nested mappings with the
// same map type as the unmarshal target, so values read from a file carry
// Values subtrees while literals carry map[string]interface{}; both count.
func toMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case Values:
		return m, true
	}
	return nil, false
}

func mergeMaps(base, overlay map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base))
	for k, val := range base {
		out[k] = val
	}
	for k, val := range overlay {
		if overlayMap, ok := toMap(val); ok {
			if baseMap, ok := toMap(out[k]); ok {
				out[k] = mergeMaps(baseMap, overlayMap)
				continue
			}
		}
		out[k] = val
	}
	return out
}

// SetValue sets a dotted path, e.g. "readyset.queryCachingMode", creating
// intermediate maps as needed.
func (v Values) SetValue(key string, value interface{}) error {
	if key == "" {
		return errors.New("empty key")
	}

	parts := strings.Split(key, ".")
	current := map[string]interface{}(v)
	for _, part := range parts[:len(parts)-1] {
		next, ok := toMap(current[part])
		if !ok {
			next = map[string]interface{}{}
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value

	return nil
}

// GetString walks a dotted path and returns the string found there, or ""
// when the path is absent or not a string.
func (v Values) GetString(key string) string {
	parts := strings.Split(key, ".")
	current := map[string]interface{}(v)
	for _, part := range parts[:len(parts)-1] {
		next, ok := toMap(current[part])
		if !ok {
			return ""
		}
		current = next
	}
	s, _ := current[parts[len(parts)-1]].(string)
	return s
}

func (v Values) AsMap() map[string]interface{} {
	return v
}
