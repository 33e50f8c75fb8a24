package values

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		base     Values
		overlay  Values
		expected Values
	}{
		{
			name:     "overlay wins on scalar conflict",
			base:     Values{"replicas": 1},
			overlay:  Values{"replicas": 3},
			expected: Values{"replicas": 3},
		},
		{
			name: "nested maps merge instead of replacing",
			base: Values{
				"readyset": map[string]interface{}{
					"deployment":       "readyset-helm-test",
					"queryCachingMode": "explicit",
				},
			},
			overlay: Values{
				"readyset": map[string]interface{}{
					"queryCachingMode": "async",
				},
			},
			expected: Values{
				"readyset": map[string]interface{}{
					"deployment":       "readyset-helm-test",
					"queryCachingMode": "async",
				},
			},
		},
		{
			name:     "map replaces scalar",
			base:     Values{"adapter": "none"},
			overlay:  Values{"adapter": map[string]interface{}{"type": "mysql"}},
			expected: Values{"adapter": map[string]interface{}{"type": "mysql"}},
		},
		{
			name:     "keys only in base survive",
			base:     Values{"kubernetes": map[string]interface{}{"namespace": "readyset"}},
			overlay:  Values{},
			expected: Values{"kubernetes": map[string]interface{}{"namespace": "readyset"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.base.Merge(tt.overlay)
			if err != nil {
				t.Fatalf("Merge() error = %v", err)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Merge() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := Values{"readyset": map[string]interface{}{"a": 1}}
	overlay := Values{"readyset": map[string]interface{}{"b": 2}}

	if _, err := base.Merge(overlay); err != nil {
		t.Fatal(err)
	}

	if _, ok := base["readyset"].(map[string]interface{})["b"]; ok {
		t.Error("Merge() mutated the base values")
	}
}

func TestSetValue(t *testing.T) {
	vals := Values{}
	if err := vals.SetValue("readyset.adapter.type", "mysql"); err != nil {
		t.Fatal(err)
	}
	if err := vals.SetValue("airgapped", true); err != nil {
		t.Fatal(err)
	}

	if got := vals.GetString("readyset.adapter.type"); got != "mysql" {
		t.Errorf("GetString() = %q, want %q", got, "mysql")
	}
	if vals["airgapped"] != true {
		t.Errorf("expected airgapped=true, got %v", vals["airgapped"])
	}
}

func TestGetStringMissingPath(t *testing.T) {
	vals := Values{"readyset": map[string]interface{}{"adapter": 42}}

	if got := vals.GetString("readyset.adapter"); got != "" {
		t.Errorf("GetString() on non-string = %q, want empty", got)
	}
	if got := vals.GetString("no.such.path"); got != "" {
		t.Errorf("GetString() on missing path = %q, want empty", got)
	}
}

func TestFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.yaml")
	content := []byte("readyset:\n  deployment: readyset-helm-test\n  replicas: 2\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	vals, err := FromYAMLFile(path)
	if err != nil {
		t.Fatalf("FromYAMLFile() error = %v", err)
	}

	if got := vals.GetString("readyset.deployment"); got != "readyset-helm-test" {
		t.Errorf("deployment = %q, want readyset-helm-test", got)
	}
}

func writeValuesFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// Values read from files decode their subtrees as Values rather than
// map[string]interface{}; merging two of them must still go key by key.
func TestMergeYAMLSourcedValues(t *testing.T) {
	base, err := FromYAMLFile(writeValuesFile(t, "channel.yaml",
		"readyset:\n  deployment: readyset-helm-test\n  queryCachingMode: explicit\n"))
	if err != nil {
		t.Fatal(err)
	}
	overlay, err := FromYAMLFile(writeValuesFile(t, "local.yaml",
		"readyset:\n  queryCachingMode: async\n"))
	if err != nil {
		t.Fatal(err)
	}

	merged, err := base.Merge(overlay)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	if got := merged.GetString("readyset.queryCachingMode"); got != "async" {
		t.Errorf("queryCachingMode = %q, want async", got)
	}
	if got := merged.GetString("readyset.deployment"); got != "readyset-helm-test" {
		t.Errorf("deployment = %q, want readyset-helm-test (sibling key lost in merge)", got)
	}
}

func TestSetValueOnYAMLSourcedValues(t *testing.T) {
	vals, err := FromYAMLFile(writeValuesFile(t, "values.yaml",
		"readyset:\n  deployment: readyset-helm-test\n"))
	if err != nil {
		t.Fatal(err)
	}

	if err := vals.SetValue("readyset.queryCachingMode", "async"); err != nil {
		t.Fatal(err)
	}

	if got := vals.GetString("readyset.queryCachingMode"); got != "async" {
		t.Errorf("queryCachingMode = %q, want async", got)
	}
	if got := vals.GetString("readyset.deployment"); got != "readyset-helm-test" {
		t.Errorf("deployment = %q, want readyset-helm-test (sibling key clobbered)", got)
	}
}

func TestFromYAMLFileEmptyPath(t *testing.T) {
	if _, err := FromYAMLFile(""); err == nil {
		t.Error("expected error for empty path")
	}
}
