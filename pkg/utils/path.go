package utils

import (
	"fmt"
	"os"
	"regexp"
)

// ReadySetChartPattern matches a packaged chart archive in a bundle dir,
// e.g. readyset-1.2.0.tgz.
const ReadySetChartPattern = `^readyset-\d+\.\d+\.\d+\.[a-zA-Z0-9]+$`

func PathFromDir(dir string, pattern string) (string, error) {
	regex := regexp.MustCompile(pattern)

	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	for _, file := range files {
		if !file.IsDir() && regex.MatchString(file.Name()) {
			return dir + "/" + file.Name(), nil
		}
	}

	return "", fmt.Errorf("file not found")
}
