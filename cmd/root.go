package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clsmap",
	Short: "Rewrite string-table namespaces inside compiled class files",
	Long: `clsmap rewrites the string table of compiled class files (and jar
bundles of them) according to a namespace mapping, without recompiling
from source. The canonical use case is migrating code that references
one package namespace (e.g. javax/...) to a successor namespace (e.g.
jakarta/...).`,
}

// Execute runs the root command, printing any error and exiting
// non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetRootCmd exposes the root command, e.g. for generating docs.
func GetRootCmd() *cobra.Command {
	return rootCmd
}
