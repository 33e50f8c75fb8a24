package utils

import (
	"reflect"
	"testing"
)

func TestEnsureReadySetSemverCompatibleImages(t *testing.T) {
	tests := []struct {
		name     string
		images   []string
		expected []string
	}{
		{
			name: "handles standard semver tags",
			images: []string{
				"readysettech/readyset-server:1.2.0",
			},
			expected: []string{
				"readysettech/readyset-server:1.2.0",
			},
		},
		{
			name: "cleans nightly tags",
			images: []string{
				"readysettech/readyset-server:1.2.0-nightly.42",
			},
			expected: []string{
				"readysettech/readyset-server:1.2.0",
			},
		},
		{
			name: "ignores non-readyset images",
			images: []string{
				"mysql:8.0.35-debian",
				"readysettech/readyset-adapter:1.2.0-nightly.42",
			},
			expected: []string{
				"mysql:8.0.35-debian",
				"readysettech/readyset-adapter:1.2.0",
			},
		},
		{
			name: "preserves non-semver tags like 'latest'",
			images: []string{
				"readysettech/readyset-server:latest",
			},
			expected: []string{
				"readysettech/readyset-server:latest",
			},
		},
		{
			name: "handles malformed image strings",
			images: []string{
				"readysettech/readyset-server",
				"readysettech/readyset-server:1.2.0:extra",
			},
			expected: []string{
				"readysettech/readyset-server",
				"readysettech/readyset-server:1.2.0:extra",
			},
		},
		{
			name: "handles pre-release and build metadata",
			images: []string{
				"readysettech/readyset-server:1.2.0-beta.1+build.123",
				"readysettech/readyset-server:1.2.0+build.123",
			},
			expected: []string{
				"readysettech/readyset-server:1.2.0",
				"readysettech/readyset-server:1.2.0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EnsureReadySetSemverCompatibleImages(tt.images)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("EnsureReadySetSemverCompatibleImages() = %v, want %v", result, tt.expected)
			}
		})
	}
}
