package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pine-marten/cppstat/internal/controller"
	"github.com/pine-marten/cppstat/internal/domain"
)

var testsRootFlag string
var testsJSONFlag bool
var testsExcludeFlags []string

// testsCmd represents the tests command.
var testsCmd = newTestsCmd()

func newTestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tests",
		Short: "Count tests, assertions, and LOC in C++ test files",
		Long: `Scan every .cpp file under the root and report per-file counts of
test declarations (TEST, TEST_F, TEST_CASE, SCENARIO, ...), assertion
macro calls, and lines of code. Matches inside comments or string
literals are never counted. Vendored external/ trees are skipped.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := workflow.TestReport(domain.TestArgs{
				Root:    testsRootFlag,
				Exclude: testsExcludeFlags,
			})
			if err != nil {
				return err
			}

			if len(report.Files) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "No .cpp files found under '%s'.\n", testsRootFlag)

				return nil
			}

			if testsJSONFlag {
				return controller.WriteTestReportJSON(cmd.OutOrStdout(), report)
			}

			return newUI(cmd).ShowTestReport(report)
		},
	}
	cmd.Flags().StringVarP(&testsRootFlag, "root", "r", "test", "directory to scan")
	cmd.Flags().BoolVarP(&testsJSONFlag, "json", "j", false, "emit the report as JSON")
	cmd.Flags().StringArrayVarP(&testsExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(testsCmd)
}
