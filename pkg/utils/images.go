package utils

import (
	"fmt"
	"strings"

	semverlib "github.com/Masterminds/semver/v3"
)

// EnsureReadySetSemverCompatibleImages normalizes ReadySet image references
// to clean semver tags. Nightly builds are published with pre-release and
// build suffixes (e.g. readysettech/readyset-server:1.2.0-nightly.42), but
// airgapped registries mirror the release tags, so the suffixes get dropped:
//
//   - "readysettech/readyset-server:1.2.0-nightly.42" -> "readysettech/readyset-server:1.2.0"
//   - "readysettech/readyset-adapter:1.2.0+build.7"   -> "readysettech/readyset-adapter:1.2.0"
//   - non-ReadySet images and non-semver tags pass through unchanged
func EnsureReadySetSemverCompatibleImages(images []string) []string {
	result := make([]string, len(images))
	for i, img := range images {
		result[i] = processReadySetImage(img)
	}
	return result
}

func processReadySetImage(img string) string {
	if !strings.HasPrefix(img, "readysettech/") {
		return img
	}

	parts := strings.Split(img, ":")
	if len(parts) != 2 {
		return img
	}

	repo, tag := parts[0], parts[1]

	baseVersion := tag
	if idx := strings.IndexAny(tag, "-+"); idx > 0 {
		baseVersion = tag[:idx]
	}

	v, err := semverlib.NewVersion(baseVersion)
	if err == nil {
		return fmt.Sprintf("%s:%d.%d.%d", repo, v.Major(), v.Minor(), v.Patch())
	}
	return img
}
