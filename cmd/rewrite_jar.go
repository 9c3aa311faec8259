package cmd

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wildjak/clsmap/internal/archive"
	"github.com/wildjak/clsmap/internal/report"
	"github.com/wildjak/clsmap/utils"
)

var rewriteJarFlags mapFlags

var rewriteJarCmd = &cobra.Command{
	Use:               "jar <file>",
	Short:             "Rewrite every .class member of a jar bundle",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".jar"}, false),
	RunE:              runRewriteJar,
}

func runRewriteJar(cmd *cobra.Command, args []string) error {
	path := args[0]

	table, err := rewriteJarFlags.buildTable()
	if err != nil {
		return fmt.Errorf("resolving mapping: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	rc, err := zip.NewReader(f, info.Size())
	if err != nil {
		return fmt.Errorf("opening %s as a jar: %w", path, err)
	}

	// Rewrite into a temp file alongside the destination first, so a
	// failure partway through never leaves a truncated jar at
	// --output; the temp file is only renamed into place once
	// RewriteJar has fully succeeded.
	tmp, err := os.CreateTemp(filepath.Dir(rewriteJarFlags.output), ".clsmap-jar-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", rewriteJarFlags.output, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpPath)
	}()

	stats, err := archive.RewriteJar(tmp, rc, table)
	if err != nil {
		report.Failed(cmd.OutOrStdout(), path, err)
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("finalizing %s: %w", rewriteJarFlags.output, err)
	}
	if err := os.Rename(tmpPath, rewriteJarFlags.output); err != nil {
		return fmt.Errorf("writing %s: %w", rewriteJarFlags.output, err)
	}

	report.JarSummary(cmd.OutOrStdout(), path, stats.EntriesTotal, stats.ClassesRewritten, stats.ClassesUnchanged)
	return nil
}

func init() {
	rewriteJarFlags.register(rewriteJarCmd)
	rewriteCmd.AddCommand(rewriteJarCmd)
}
