package domain

import (
	"io/fs"
	"sort"

	"github.com/pine-marten/cppstat/internal/adapter"
	m "github.com/pine-marten/cppstat/internal/model"
)

// sizeExts are the extensions the size report considers.
var sizeExts = []string{".cpp", ".hpp"}

// testFileExt is the extension the test report considers.
const testFileExt = ".cpp"

// testDirExcludes are vendor directory names pruned from test scans.
var testDirExcludes = []string{"external", "externa"}

// SizeArgs configures a source-tree size report.
type SizeArgs struct {
	Root       string
	ExcludeDir string
	Exclude    []string
}

// TestArgs configures a test-directory report.
type TestArgs struct {
	Root    string
	Exclude []string
}

// Workflow exposes the report pipelines of the tool.
type Workflow interface {
	SizeReport(args SizeArgs) (m.SizeReport, error)
	TestReport(args TestArgs) (m.TestReport, error)
}

type workflow struct {
	fs adapter.SourceFS
}

// NewWorkflow creates a Workflow that reads sources through fs.
func NewWorkflow(fs adapter.SourceFS) Workflow {
	return &workflow{fs: fs}
}

// SizeReport counts physical lines per implementation and header file
// under args.Root, pruning directories named args.ExcludeDir. Files are
// processed one at a time in sorted path order; a file that cannot be read
// contributes zero lines and the run continues.
func (w *workflow) SizeReport(args SizeArgs) (m.SizeReport, error) {
	if err := w.checkRoot(args.Root); err != nil {
		return m.SizeReport{}, err
	}

	excludes, err := CompileExcludes(args.Exclude)
	if err != nil {
		return m.SizeReport{}, err
	}

	keep := AndFileFilters(ExtFilter(sizeExts...), excludes)

	files, err := w.collectFiles(args.Root, keep, ExcludeDirFilter(args.ExcludeDir))
	if err != nil {
		return m.SizeReport{}, &ScanError{Root: args.Root, Err: err}
	}

	report := m.SizeReport{ExcludedDir: args.ExcludeDir}

	for _, path := range files {
		lines := 0
		if data, err := w.fs.ReadFile(m.Path(path)); err == nil {
			lines = CountLines(data)
		}

		report.Add(w.relToRoot(args.Root, path), lines)
	}

	return report, nil
}

// TestReport scans C++ test files under args.Root and returns per-file
// test, assertion, and LOC counts plus totals. Files are read, scrubbed,
// and counted strictly one at a time in sorted path order. An empty report
// with no error means no matching files were found.
func (w *workflow) TestReport(args TestArgs) (m.TestReport, error) {
	if err := w.checkRoot(args.Root); err != nil {
		return m.TestReport{}, err
	}

	excludes, err := CompileExcludes(args.Exclude)
	if err != nil {
		return m.TestReport{}, err
	}

	keep := AndFileFilters(ExtFilter(testFileExt), excludes)

	files, err := w.collectFiles(args.Root, keep, ExcludeDirFilter(testDirExcludes...))
	if err != nil {
		return m.TestReport{}, &ScanError{Root: args.Root, Err: err}
	}

	report := m.NewTestReport()

	for _, path := range files {
		text, err := w.fs.ReadText(m.Path(path))
		if err != nil {
			return m.TestReport{}, &FileError{Path: path, Err: err}
		}

		report.Add(path, AnalyzeSource(text))
	}

	return report, nil
}

func (w *workflow) checkRoot(root string) error {
	info, err := w.fs.Stat(m.Path(root))
	if err != nil || !info.IsDir() {
		return &RootError{Root: root}
	}

	return nil
}

// collectFiles walks the tree under root and returns the accepted file
// paths in sorted order. The root directory itself is never pruned.
func (w *workflow) collectFiles(root string, keep FileFilter, descend DirFilter) ([]string, error) {
	var files []string

	err := w.fs.Walk(m.Path(root), func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if path != root && descend != nil && !descend(path, entry) {
				return fs.SkipDir
			}

			return nil
		}

		if keep(path, entry) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)

	return files, nil
}

func (w *workflow) relToRoot(root, path string) string {
	rel, err := w.fs.Rel(m.Path(root), m.Path(path))
	if err != nil {
		return path
	}

	return string(rel)
}
