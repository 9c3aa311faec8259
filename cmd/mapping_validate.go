package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wildjak/clsmap/internal/report"
	"github.com/wildjak/clsmap/utils"
)

var mappingValidateCmd = &cobra.Command{
	Use:               "validate <file>",
	Short:             "Check a mapping file's containment invariant without rewriting anything",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".mapping", ".properties"}, false),
	RunE:              runMappingValidate,
}

func runMappingValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	table, err := loadMapFile(path)
	if err != nil {
		report.Failed(cmd.OutOrStdout(), path, err)
		return fmt.Errorf("validating %s: %w", path, err)
	}

	report.MappingValid(cmd.OutOrStdout(), path, table.Len())
	return nil
}

func init() {
	mappingCmd.AddCommand(mappingValidateCmd)
}
