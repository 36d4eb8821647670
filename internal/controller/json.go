package controller

import (
	"encoding/json"
	"fmt"
	"io"

	m "github.com/pine-marten/cppstat/internal/model"
)

// WriteTestReportJSON writes report to w as a two-space indented JSON
// document with files keyed by path and keys in sorted order. This is the
// machine-readable output contract of the tests command.
func WriteTestReportJSON(w io.Writer, report m.TestReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}
