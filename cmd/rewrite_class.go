package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wildjak/clsmap/internal/classfile/model"
	"github.com/wildjak/clsmap/internal/classfile/rewrite"
	"github.com/wildjak/clsmap/internal/report"
	"github.com/wildjak/clsmap/utils"
)

var rewriteClassFlags mapFlags

var rewriteClassCmd = &cobra.Command{
	Use:               "class <file>",
	Short:             "Rewrite a single .class file",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".class"}, false),
	RunE:              runRewriteClass,
}

func runRewriteClass(cmd *cobra.Command, args []string) error {
	path := args[0]

	table, err := rewriteClassFlags.buildTable()
	if err != nil {
		return fmt.Errorf("resolving mapping: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if info.Size() > model.MaxInputSize {
		return fmt.Errorf("reading %s: %d bytes exceeds the %d-byte class-file size ceiling", path, info.Size(), model.MaxInputSize)
	}

	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	output, stats, err := rewrite.TransformStats(input, table)
	if err != nil {
		report.Failed(cmd.OutOrStdout(), path, err)
		return err
	}

	if err := os.WriteFile(rewriteClassFlags.output, output, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rewriteClassFlags.output, err)
	}

	if stats.Replacements > 0 {
		report.Rewritten(cmd.OutOrStdout(), path, stats.Replacements)
	} else {
		report.Unchanged(cmd.OutOrStdout(), path)
	}

	return nil
}

func init() {
	rewriteClassFlags.register(rewriteClassCmd)
	rewriteCmd.AddCommand(rewriteClassCmd)
}
