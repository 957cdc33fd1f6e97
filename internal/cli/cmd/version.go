package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/paneshell/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "paneshell %s\n", buildInfo.Version)
		fmt.Fprintf(out, "commit: %s\n", buildInfo.Commit)
		fmt.Fprintf(out, "built: %s\n", buildInfo.BuildDate)
		if buildInfo.GoVersion != "" {
			fmt.Fprintf(out, "go: %s\n", buildInfo.GoVersion)
		}
		fmt.Fprintln(out, build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
