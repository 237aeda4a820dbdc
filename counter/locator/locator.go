package locator

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// Locator expands user-supplied paths into the set of analyzable source
// files, honoring an include pattern and an optional exclude pattern.
type Locator struct {
	include *regexp.Regexp
	exclude *regexp.Regexp
}

// New creates a locator; exclude may be nil.
func New(include, exclude *regexp.Regexp) *Locator {
	return &Locator{include: include, exclude: exclude}
}

// Resolve returns the deduplicated file paths selected by the supplied
// arguments, sorted lexicographically so repeated runs render in a stable
// order. File arguments are filtered directly, directory arguments are
// expanded recursively, and paths that do not exist or do not match are
// silently dropped.
func (l *Locator) Resolve(paths []string) []string {
	seen := make(map[string]bool)
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			if l.matches(info.Name()) {
				seen[filepath.Clean(path)] = true
			}
			continue
		}
		_ = filepath.Walk(path, func(candidate string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if !info.IsDir() && l.matches(info.Name()) {
				seen[filepath.Clean(candidate)] = true
			}
			return nil
		})
	}
	resolved := make([]string, 0, len(seen))
	for path := range seen {
		resolved = append(resolved, path)
	}
	sort.Strings(resolved)
	return resolved
}

// matches applies both filters to the base file name, so directory names
// never affect selection.
func (l *Locator) matches(name string) bool {
	if !l.include.MatchString(name) {
		return false
	}
	return l.exclude == nil || !l.exclude.MatchString(name)
}
