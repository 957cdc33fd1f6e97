package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/paneshell/internal/cli/styles"
	"github.com/bnema/paneshell/internal/domain/entity"
)

var resetYes bool

var resetDataCmd = &cobra.Command{
	Use:   "reset-data",
	Short: "Wipe application data, keeping the archive and download settings",
	RunE:  runResetData,
}

func init() {
	rootCmd.AddCommand(resetDataCmd)
	resetDataCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation prompt")
}

func runResetData(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewDownloadsCLIRenderer(a.Theme)

	if !resetYes {
		detail := fmt.Sprintf("%s\nkeeps: %s", a.DataDir, strings.Join(entity.PreservedDataFiles(), ", "))
		ok, err := confirm(a.Theme, "Reset application data?", detail)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCanceled())
			return nil
		}
	}

	out, err := a.ResetAppDataUC.Execute(a.Ctx())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderReset(out.DataDir, out.Preserved))
	return nil
}
