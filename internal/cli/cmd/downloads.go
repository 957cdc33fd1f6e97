package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/paneshell/internal/cli/styles"
)

var downloadsYes bool

var downloadsCmd = &cobra.Command{
	Use:   "downloads",
	Short: "Manage the downloads log",
	Long: `List, delete and clear downloaded files.

Records whose file no longer exists are dropped from the log when listing.`,
	RunE: runDownloadsList,
}

var downloadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List downloaded files, oldest first",
	RunE:  runDownloadsList,
}

var downloadsDeleteCmd = &cobra.Command{
	Use:   "delete <path>",
	Short: "Delete a downloaded file and its record",
	Args:  cobra.ExactArgs(1),
	RunE:  runDownloadsDelete,
}

var downloadsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every logged file and clear the log",
	RunE:  runDownloadsClear,
}

func init() {
	rootCmd.AddCommand(downloadsCmd)
	downloadsCmd.AddCommand(downloadsListCmd)
	downloadsCmd.AddCommand(downloadsDeleteCmd)
	downloadsCmd.AddCommand(downloadsClearCmd)
	downloadsClearCmd.Flags().BoolVarP(&downloadsYes, "yes", "y", false, "skip confirmation prompt")
}

func runDownloadsList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	records, err := a.ManageDownloadsUC.List(a.Ctx())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDownloadsCLIRenderer(a.Theme).RenderList(records))
	return nil
}

func runDownloadsDelete(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	removed, err := a.ManageDownloadsUC.Delete(a.Ctx(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDownloadsCLIRenderer(a.Theme).RenderDeleted(args[0], removed))
	return nil
}

func runDownloadsClear(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewDownloadsCLIRenderer(a.Theme)

	if !downloadsYes {
		ok, err := confirm(a.Theme, "Delete every downloaded file?", a.Downloads.Path())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCanceled())
			return nil
		}
	}

	count, err := a.ManageDownloadsUC.DeleteAll(a.Ctx())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCleared(count))
	return nil
}
