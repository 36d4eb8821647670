package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/pine-marten/cppstat/internal/model"
)

// TUI renders reports as an interactive Bubble Tea browser.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// ShowSizeReport browses per-file line counts.
func (t *TUI) ShowSizeReport(report m.SizeReport) error {
	return t.run(newSizeBrowseModel(report))
}

// ShowTestReport browses per-file test stats.
func (t *TUI) ShowTestReport(report m.TestReport) error {
	return t.run(newTestBrowseModel(report))
}

func (t *TUI) run(model browseModel) error {
	// Initial terminal size; Bubble Tea refines it with WindowSizeMsg.
	if f, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			model.width = width
			model.height = height
		}
	}

	// A list that fits on screen renders once without the alt screen.
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
