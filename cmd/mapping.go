package cmd

import (
	"github.com/spf13/cobra"
)

var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Inspect and validate namespace mapping files",
}

func init() {
	rootCmd.AddCommand(mappingCmd)
}
