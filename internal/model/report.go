package model

import "sort"

// TestStats holds the counters extracted from a single test source file.
type TestStats struct {
	Tests      int `json:"tests"`
	Assertions int `json:"assertions"`
	LOC        int `json:"loc"`
}

// TestReport maps file paths to their stats plus a grand total. The JSON
// layout matches the tool's machine-readable output contract.
type TestReport struct {
	Files map[string]TestStats `json:"files"`
	Total TestStats            `json:"total"`
}

// NewTestReport returns an empty report ready for Add.
func NewTestReport() TestReport {
	return TestReport{Files: map[string]TestStats{}}
}

// Add records the stats for one file and folds them into the total.
func (r *TestReport) Add(path string, s TestStats) {
	if r.Files == nil {
		r.Files = map[string]TestStats{}
	}
	r.Files[path] = s
	r.Total.Tests += s.Tests
	r.Total.Assertions += s.Assertions
	r.Total.LOC += s.LOC
}

// SortedFiles returns the recorded paths in lexicographic order.
func (r TestReport) SortedFiles() []string {
	paths := make([]string, 0, len(r.Files))
	for p := range r.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// SizeEntry is the line count for a single source file.
type SizeEntry struct {
	Path  string
	Lines int
}

// SizeReport lists per-file line counts in path order plus their sum.
// ExcludedDir names the directory that was pruned from the walk.
type SizeReport struct {
	Entries     []SizeEntry
	Total       int
	ExcludedDir string
}

// Add appends one file's count and folds it into the total.
func (r *SizeReport) Add(path string, lines int) {
	r.Entries = append(r.Entries, SizeEntry{Path: path, Lines: lines})
	r.Total += lines
}
