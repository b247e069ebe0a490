package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"massnet.org/shadigest/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "shadigest %s (%s %s/%s)\n",
			version.GetVersion(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		if commit := version.GetGitCommit(); commit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
		}
	},
}
