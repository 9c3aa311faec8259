package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wildjak/clsmap/internal/classfile/mapping"
	"github.com/wildjak/clsmap/internal/mapfile"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite class files or jar bundles",
}

// mapFlags are the mapping-and-output flags shared between
// rewriteClassCmd and rewriteJarCmd.
type mapFlags struct {
	entries []string
	file    string
	output  string
}

func (f *mapFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.entries, "map", nil, "namespace mapping entry from=to (repeatable)")
	cmd.Flags().StringVar(&f.file, "map-file", "", "path to a key=value mapping file")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output path (required)")
	_ = cmd.MarkFlagRequired("output")
}

// buildTable resolves the mapping table for a rewrite invocation: an
// explicit --map-file, explicit --map entries, or (if neither is given)
// the embedded default javax->jakarta mapping.
func (f *mapFlags) buildTable() (*mapping.Table, error) {
	if f.file != "" {
		return loadMapFile(f.file)
	}
	if len(f.entries) > 0 {
		return buildTableFromFlags(f.entries)
	}
	return mapfile.LoadDefault()
}

func loadMapFile(path string) (*mapping.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mapping file: %w", err)
	}
	defer file.Close()
	return mapfile.Load(file)
}

func buildTableFromFlags(entries []string) (*mapping.Table, error) {
	b := mapping.NewBuilder()
	for _, entry := range entries {
		from, to, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("--map entry %q is not of the form from=to", entry)
		}
		if err := b.Add(from, to); err != nil {
			return nil, fmt.Errorf("--map entry %q: %w", entry, err)
		}
	}
	return b.Build()
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
}
