// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// FileSpec describes a file to be written into a test directory.
type FileSpec struct {
	// Path is relative to the test directory.
	Path    string
	Content string
	// NotExist reserves a filename without writing it.
	NotExist bool
}

// MustPrepareTestFiles writes files into a fresh temporary directory that is
// removed when the test ends.
func MustPrepareTestFiles(t *testing.T, files []FileSpec) (tmpDir string, filenames []string) {
	tmpDir = t.TempDir()
	filenames = MustWriteTestFiles(t, tmpDir, files)
	return tmpDir, filenames
}

func MustWriteTestFiles(t *testing.T, tmpDir string, files []FileSpec) []string {
	var filenames []string
	for _, file := range files {
		abs := filepath.Join(tmpDir, file.Path)
		dir := filepath.Dir(abs)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			t.Fatal(err)
		}
		if !file.NotExist {
			if err := os.WriteFile(abs, []byte(file.Content), 0644); err != nil {
				t.Fatal(err)
			}
		}
		filenames = append(filenames, abs)
	}
	return filenames
}

func MustReadTestFile(t *testing.T, dir string, filename string) string {
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatal("reading", filename, ":", err)
	}
	return string(data)
}

// EqualError reports whether errors a and b are considered equal.
// They're equal if both are nil, or both are not nil and a.Error() == b.Error().
func EqualError(a, b error) bool {
	return a == nil && b == nil || a != nil && b != nil && a.Error() == b.Error()
}

// ExpectError asserts that the errors are equal.  Return value is true
// if the "want" argument is non-nil.
func ExpectError(t *testing.T, want, got error) bool {
	if !EqualError(want, got) {
		t.Fatal("errors: want:", want, "got:", got)
	}
	return want != nil
}
