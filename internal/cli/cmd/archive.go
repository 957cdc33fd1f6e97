package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/paneshell/internal/application/usecase"
	"github.com/bnema/paneshell/internal/cli/styles"
)

var (
	archiveYes  bool
	archiveSlot int
	archiveURL  string
	archivePath string
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage the content archive",
	Long: `The archive records artifacts produced in content panes. Unlike the
downloads log it keeps duplicates and survives reset-data.`,
	RunE: runArchiveList,
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archive entries, oldest first",
	RunE:  runArchiveList,
}

var archiveAddCmd = &cobra.Command{
	Use:   "add <filename>",
	Short: "Add an archive entry",
	Example: `  paneshell archive add notes.md --slot 2 --url https://claude.ai/project/abc
  paneshell archive add report.pdf --path ~/Downloads/report.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runArchiveAdd,
}

var archiveClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the archive log",
	RunE:  runArchiveClear,
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveAddCmd)
	archiveCmd.AddCommand(archiveClearCmd)

	archiveAddCmd.Flags().IntVarP(&archiveSlot, "slot", "s", 1, "content slot the artifact came from (1-3)")
	archiveAddCmd.Flags().StringVarP(&archiveURL, "url", "u", "", "source page URL")
	archiveAddCmd.Flags().StringVarP(&archivePath, "path", "p", "", "absolute path of the saved file")
	archiveClearCmd.Flags().BoolVarP(&archiveYes, "yes", "y", false, "skip confirmation prompt")
}

func runArchiveList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	records, err := a.ManageArchiveUC.List(a.Ctx())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewArchiveCLIRenderer(a.Theme).RenderList(records))
	return nil
}

func runArchiveAdd(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	rec, err := a.ManageArchiveUC.Add(a.Ctx(), usecase.AddArchiveEntryInput{
		Slot:         archiveSlot,
		Filename:     args[0],
		SourceURL:    archiveURL,
		AbsolutePath: archivePath,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewArchiveCLIRenderer(a.Theme).RenderAdded(rec))
	return nil
}

func runArchiveClear(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if !archiveYes {
		ok, err := confirm(a.Theme, "Clear the archive?", a.Archive.Path())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), styles.NewDownloadsCLIRenderer(a.Theme).RenderCanceled())
			return nil
		}
	}
	if err := a.ManageArchiveUC.Clear(a.Ctx()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewArchiveCLIRenderer(a.Theme).RenderCleared())
	return nil
}
