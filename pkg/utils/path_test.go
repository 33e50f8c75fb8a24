package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestPathFromDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"readyset-1.2.0.tgz", "values.yaml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	path, err := PathFromDir(dir, ReadySetChartPattern)
	if err != nil {
		t.Fatalf("PathFromDir() error = %v", err)
	}
	if filepath.Base(path) != "readyset-1.2.0.tgz" {
		t.Errorf("PathFromDir() = %q", path)
	}
}

func TestPathFromDirNoMatch(t *testing.T) {
	dir := t.TempDir()
	if _, err := PathFromDir(dir, ReadySetChartPattern); err == nil {
		t.Error("expected error for empty dir")
	}
}

func TestRemoveDuplicates(t *testing.T) {
	images := []string{
		"readysettech/readyset-server:1.2.0",
		"mysql:8.0",
		"readysettech/readyset-server:1.2.0",
	}
	expected := []string{
		"readysettech/readyset-server:1.2.0",
		"mysql:8.0",
	}

	if got := RemoveDuplicates(images); !reflect.DeepEqual(got, expected) {
		t.Errorf("RemoveDuplicates() = %v, want %v", got, expected)
	}
}
