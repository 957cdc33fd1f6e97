package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/paneshell/internal/cli/styles"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage download settings",
}

var downloadDirCmd = &cobra.Command{
	Use:   "download-dir",
	Short: "Show or change where downloads are saved",
	RunE:  runDownloadDirGet,
}

var downloadDirGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the download directory",
	RunE:  runDownloadDirGet,
}

var downloadDirSetCmd = &cobra.Command{
	Use:   "set [path]",
	Short: "Set a custom download directory; without a path, restore the default",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDownloadDirSet,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(downloadDirCmd)
	downloadDirCmd.AddCommand(downloadDirGetCmd)
	downloadDirCmd.AddCommand(downloadDirSetCmd)
}

func runDownloadDirGet(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	fallback, err := a.XDG.DownloadDir()
	if err != nil {
		fallback = "(unknown)"
	}
	custom := a.ManageDownloadsUC.DownloadDir(a.Ctx())
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDownloadsCLIRenderer(a.Theme).RenderDownloadDir(custom, fallback))
	return nil
}

func runDownloadDirSet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if err := a.ManageDownloadsUC.SetDownloadDir(a.Ctx(), path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDownloadsCLIRenderer(a.Theme).RenderDownloadDirSet(path))
	return nil
}
