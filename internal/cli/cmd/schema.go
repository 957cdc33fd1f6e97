package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/paneshell/internal/infrastructure/config"
)

var schemaWrite bool

var schemaCmd = &cobra.Command{
	Use:   "schema [target]",
	Short: "Print the JSON Schema of the config or a persisted file",
	Long: `Print the JSON Schema of one of: config, downloads, archive, settings.

With --write, the config schema is saved as config.schema.json next to
config.toml so editors can validate it.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: schemaTargetNames(),
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVarP(&schemaWrite, "write", "w", false, "write the config schema file")
}

func schemaTargetNames() []string {
	targets := config.SchemaTargets()
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, string(t))
	}
	return names
}

func runSchema(cmd *cobra.Command, args []string) error {
	if schemaWrite {
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	target := config.SchemaConfig
	if len(args) == 1 {
		target = config.SchemaTarget(args[0])
	}
	data, err := config.MarshalSchema(target)
	if err != nil {
		return fmt.Errorf("%w (targets: %s)", err, strings.Join(schemaTargetNames(), ", "))
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
