// Package discover enumerates working tree files for the release workflow
// and partitions them into project files and extension pack files.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/conn-castle/pack-release/internal/messages"
)

// Directories never offered for staging, independent of ignore patterns.
var alwaysSkippedDirs = map[string]struct{}{
	".git":          {},
	".pack-release": {},
}

// Partition is the discovered working tree split.
type Partition struct {
	// ProjectFiles are all discovered files outside the extension file list,
	// sorted, relative to the root with forward slashes.
	ProjectFiles []string
	// ExtensionFiles are the configured extension pack files that exist on
	// disk, in their configured order.
	ExtensionFiles []string
}

// Files walks the tree under root, applies the ignore patterns from
// ignoreFile, and partitions the result. extensionFiles is the declared
// extension pack file list, relative to root.
func Files(root, ignoreFile string, extensionFiles []string) (Partition, error) {
	patterns, err := readIgnorePatterns(filepath.Join(root, ignoreFile))
	if err != nil {
		return Partition{}, err
	}

	extensionSet := make(map[string]struct{}, len(extensionFiles))
	for _, path := range extensionFiles {
		extensionSet[filepath.ToSlash(path)] = struct{}{}
	}

	var project []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if _, skip := alwaysSkippedDirs[d.Name()]; skip {
				return filepath.SkipDir
			}
			if matched, err := matchesAny(patterns, rel); err != nil {
				return err
			} else if matched {
				return filepath.SkipDir
			}
			return nil
		}

		if matched, err := matchesAny(patterns, rel); err != nil {
			return err
		} else if matched {
			return nil
		}
		if _, isExtension := extensionSet[rel]; isExtension {
			return nil
		}
		project = append(project, rel)
		return nil
	})
	if walkErr != nil {
		return Partition{}, fmt.Errorf(messages.DiscoverWalkFailedFmt, root, walkErr)
	}
	sort.Strings(project)

	existing := make([]string, 0, len(extensionFiles))
	for _, path := range extensionFiles {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(path))); err == nil {
			existing = append(existing, filepath.ToSlash(path))
		}
	}

	return Partition{ProjectFiles: project, ExtensionFiles: existing}, nil
}

// readIgnorePatterns loads newline-delimited ignore patterns.
// Blank lines and comment lines (// or #) are dropped. A missing file means
// no patterns.
func readIgnorePatterns(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.DiscoverIgnoreReadFmt, path, err)
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSuffix(line, "/")
		if !doublestar.ValidatePattern(line) {
			return nil, fmt.Errorf(messages.DiscoverBadPatternFmt, line, doublestar.ErrBadPattern)
		}
		patterns = append(patterns, line)
	}
	return patterns, nil
}

// matchesAny reports whether rel matches any pattern, directly or as a path
// beneath a matched directory.
func matchesAny(patterns []string, rel string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf(messages.DiscoverBadPatternFmt, pattern, err)
		}
		if matched {
			return true, nil
		}
		matched, err = doublestar.Match(pattern+"/**", rel)
		if err != nil {
			return false, fmt.Errorf(messages.DiscoverBadPatternFmt, pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
