// Package controller provides output adapters for displaying source
// statistics reports.
package controller

import (
	m "github.com/pine-marten/cppstat/internal/model"
)

// UI defines the interface for presenting reports.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	ShowSizeReport(report m.SizeReport) error
	ShowTestReport(report m.TestReport) error
}
