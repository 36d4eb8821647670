package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/pine-marten/cppstat/internal/model"
)

// SimpleUI renders reports as plain text through the cobra Command's
// output stream. Its formats are stable so the output can be consumed by
// shell pipelines.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// ShowSizeReport prints one line per file followed by the grand total.
func (s *SimpleUI) ShowSizeReport(report m.SizeReport) error {
	for _, entry := range report.Entries {
		s.printf("%s — %d lines\n", entry.Path, entry.Lines)
	}

	s.printf("Total lines (excluding %s/): %d\n", report.ExcludedDir, report.Total)

	return nil
}

// ShowTestReport prints a table of per-file test stats with a TOTAL row.
func (s *SimpleUI) ShowTestReport(report m.TestReport) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Tests", "Asserts", "LOC"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, path := range report.SortedFiles() {
		stats := report.Files[path]
		table.Append([]string{
			path,
			fmt.Sprintf("%d", stats.Tests),
			fmt.Sprintf("%d", stats.Assertions),
			fmt.Sprintf("%d", stats.LOC),
		})
	}

	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", report.Total.Tests),
		fmt.Sprintf("%d", report.Total.Assertions),
		fmt.Sprintf("%d", report.Total.LOC),
	})

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
