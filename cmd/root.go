// Package cmd provides the root command and CLI setup for cppstat.
package cmd

import (
	"errors"
	"os"

	"github.com/pine-marten/cppstat/internal/adapter"
	"github.com/pine-marten/cppstat/internal/controller"
	"github.com/pine-marten/cppstat/internal/domain"
	"github.com/spf13/cobra"
)

var sourceFS adapter.SourceFS
var workflow domain.Workflow
var newUI func(cmd *cobra.Command) controller.UI

func init() {
	sourceFS = adapter.NewLocalSourceFS()
	workflow = domain.NewWorkflow(sourceFS)
	newUI = controller.NewUI
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cppstat",
		Short: "C++ source tree statistics",
		Long: `Cppstat reports statistics over a C++ source tree: per-file line counts
for implementation and header files, and per-file test, assertion, and
LOC counts for test suites written with googletest, Catch2, doctest, or
Boost.Test. Text inside comments and string literals never contributes
to any count.`,
		SilenceUsage: true,
	}

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). The process exit code classifies the failure:
// 2 for a bad root directory, 3 for a scan failure, 4 for a file that could
// not be processed, 1 for anything else.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var rootErr *domain.RootError
	if errors.As(err, &rootErr) {
		return 2
	}

	var scanErr *domain.ScanError
	if errors.As(err, &scanErr) {
		return 3
	}

	var fileErr *domain.FileError
	if errors.As(err, &fileErr) {
		return 4
	}

	return 1
}
