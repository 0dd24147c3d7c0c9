package main

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// globIndexFiles expands the include patterns against fsys and drops any
// match that also matches an exclude pattern.  The result is sorted and has
// no duplicates.
func globIndexFiles(fsys fs.FS, patterns, excludes []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		names, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			// doublestar.Glob only fails if the pattern is not valid.
			return nil, fmt.Errorf("invalid -index_glob %q: %w", pattern, err)
		}
	loop:
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true
			for _, exclude := range excludes {
				if ok, _ := doublestar.PathMatch(exclude, name); ok {
					continue loop
				}
			}
			files = append(files, name)
		}
	}

	sort.Strings(files)
	return files, nil
}
