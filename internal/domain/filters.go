package domain

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
)

// FileFilter decides whether a walked file takes part in a report. Paths
// arrive root-joined, exactly as the walk produced them.
type FileFilter func(path string, entry fs.DirEntry) bool

// DirFilter decides whether a walked directory is descended into.
type DirFilter func(path string, entry fs.DirEntry) bool

// ExtFilter keeps files whose extension equals one of exts, compared
// case-insensitively. Extensions are given with the leading dot.
func ExtFilter(exts ...string) FileFilter {
	lowered := make([]string, len(exts))
	for i, ext := range exts {
		lowered[i] = strings.ToLower(ext)
	}

	return func(path string, _ fs.DirEntry) bool {
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range lowered {
			if ext == want {
				return true
			}
		}

		return false
	}
}

// ExcludeDirFilter prunes directories whose base name equals one of names.
func ExcludeDirFilter(names ...string) DirFilter {
	return func(_ string, entry fs.DirEntry) bool {
		for _, name := range names {
			if entry.Name() == name {
				return false
			}
		}

		return true
	}
}

// CompileExcludes builds a FileFilter from user-supplied path regexes. A
// file matching any pattern is dropped. Paths are matched with forward
// slashes regardless of platform.
func CompileExcludes(patterns []string) (FileFilter, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		res = append(res, re)
	}

	return func(path string, _ fs.DirEntry) bool {
		slashed := filepath.ToSlash(path)
		for _, re := range res {
			if re.MatchString(slashed) {
				return false
			}
		}

		return true
	}, nil
}

// AndFileFilters accepts a file only when every non-nil filter accepts it.
func AndFileFilters(filters ...FileFilter) FileFilter {
	return func(path string, entry fs.DirEntry) bool {
		for _, filter := range filters {
			if filter != nil && !filter(path, entry) {
				return false
			}
		}

		return true
	}
}
