package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pine-marten/cppstat/internal/domain"
)

var sizeRootFlag string
var sizeExcludeDirFlag string
var sizeExcludeFlags []string

// sizeCmd represents the size command.
var sizeCmd = newSizeCmd()

func newSizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Count lines in implementation and header files",
		Long: `Count physical lines in every .cpp and .hpp file under the root,
printing one line per file and a grand total. Directories matching the
excluded name (test by default) are skipped entirely.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := workflow.SizeReport(domain.SizeArgs{
				Root:       sizeRootFlag,
				ExcludeDir: sizeExcludeDirFlag,
				Exclude:    sizeExcludeFlags,
			})
			if err != nil {
				return err
			}

			return newUI(cmd).ShowSizeReport(report)
		},
	}
	cmd.Flags().StringVarP(&sizeRootFlag, "root", "r", ".", "directory to scan")
	cmd.Flags().StringVar(&sizeExcludeDirFlag, "exclude-dir", "test", "directory name to skip while scanning")
	cmd.Flags().StringArrayVarP(&sizeExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
