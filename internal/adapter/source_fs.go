// Package adapter contains filesystem and infrastructure adapters for the
// cppstat CLI.
package adapter

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "github.com/pine-marten/cppstat/internal/model"
)

// SourceFS abstracts the filesystem operations the domain layer relies on
// when scanning C++ trees. It hides direct os access so the workflow logic
// can be tested without touching the disk.
type SourceFS interface {
	// Stat returns metadata for a path so the domain can check existence
	// and distinguish files from directories.
	Stat(path m.Path) (os.FileInfo, error)

	// Walk traverses the tree rooted at root in lexical order, calling fn
	// for every directory and file. fn may return fs.SkipDir to prune a
	// directory.
	Walk(root m.Path, fn WalkFunc) error

	// ReadFile loads a file from disk and returns its raw bytes.
	ReadFile(path m.Path) ([]byte, error)

	// ReadText loads a file from disk as normalized UTF-8 text, see
	// NormalizeText.
	ReadText(path m.Path) (string, error)

	// Rel returns the relative path from base to target.
	Rel(base, target m.Path) (m.Path, error)
}

// WalkFunc mirrors the callback shape used by filepath.WalkDir. It is
// defined here to avoid leaking the standard-library type directly into
// the domain layer.
type WalkFunc func(path string, entry fs.DirEntry, err error) error

// LocalSourceFS implements SourceFS against the local filesystem.
type LocalSourceFS struct{}

// NewLocalSourceFS constructs a LocalSourceFS ready to be wired into the
// workflow.
func NewLocalSourceFS() *LocalSourceFS {
	return &LocalSourceFS{}
}

// Stat returns metadata for the given path.
func (a *LocalSourceFS) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Walk traverses the tree rooted at root with filepath.WalkDir.
func (a *LocalSourceFS) Walk(root m.Path, fn WalkFunc) error {
	return filepath.WalkDir(string(root), fs.WalkDirFunc(fn))
}

// ReadFile loads a file and returns its raw bytes.
func (a *LocalSourceFS) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// ReadText loads a file and returns its contents as normalized text.
func (a *LocalSourceFS) ReadText(path m.Path) (string, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return "", err
	}

	return NormalizeText(data), nil
}

// Rel returns the relative path from base to target.
func (a *LocalSourceFS) Rel(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// NormalizeText decodes data as UTF-8, substituting the Unicode
// replacement character for invalid byte sequences, and normalizes CRLF
// line endings to bare LF. Scanning and counting always run on text in
// this form.
func NormalizeText(data []byte) string {
	text := strings.ToValidUTF8(string(data), "�")

	return strings.ReplaceAll(text, "\r\n", "\n")
}
