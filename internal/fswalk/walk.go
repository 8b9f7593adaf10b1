package fswalk

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// LogFile stores absolute and root-relative paths for one per-unit CSV log.
type LogFile struct {
	AbsPath string
	RelPath string
}

// normalizePattern returns a usable glob and defaults to **/*.csv.
func normalizePattern(pattern string) string {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return "**/*.csv"
	}
	return filepath.ToSlash(pattern)
}

// DiscoverLogs finds log files under root matching the glob pattern. The
// returned slice is sorted by relative path; that order is the inter-log
// order used when merging.
func DiscoverLogs(root string, pattern string) ([]LogFile, error) {
	root = filepath.Clean(root)
	matcher := normalizePattern(pattern)

	var files []LogFile
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("compute relative path for %q: %w", path, err)
		}

		matched, err := doublestar.PathMatch(matcher, filepath.ToSlash(relPath))
		if err != nil {
			return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if !matched {
			return nil
		}

		files = append(files, LogFile{
			AbsPath: path,
			RelPath: relPath,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})

	return files, nil
}

// EnsureParentDir creates the parent directory tree for a target file path.
func EnsureParentDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
