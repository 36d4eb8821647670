package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI picks the presentation for cmd: the Bubble Tea browser when the
// command writes to an interactive terminal, plain text otherwise. Tests
// that redirect the command's output to a buffer therefore always get the
// plain renderer.
func NewUI(cmd *cobra.Command) UI {
	out := cmd.OutOrStdout()
	if IsTTY(out) {
		return NewTUI(out)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal. Output redirected to
// a file or pipe is not a TTY.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := file.Stat()
	if err != nil {
		return false
	}

	return (info.Mode() & os.ModeCharDevice) != 0
}
