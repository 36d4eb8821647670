package domain

import "fmt"

// RootError reports a scan root that is missing or not a directory.
type RootError struct {
	Root string
}

func (e *RootError) Error() string {
	return fmt.Sprintf("directory '%s' does not exist or is not a directory", e.Root)
}

// ScanError reports a failure while traversing the tree under Root.
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("while scanning '%s': %v", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// FileError reports a failure reading or processing a single source file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("processing '%s': %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
