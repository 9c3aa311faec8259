package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTableFromFlagsParsesEntries(t *testing.T) {
	table, err := buildTableFromFlags([]string{"javax/=jakarta/", "com/old/=com/new/"})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestBuildTableFromFlagsRejectsMalformedEntry(t *testing.T) {
	_, err := buildTableFromFlags([]string{"no-equals-sign"})
	assert.Error(t, err)
}

func TestBuildTableFromFlagsRejectsContainment(t *testing.T) {
	_, err := buildTableFromFlags([]string{"javax/=jakarta/", "javax/xml/=jakarta/xml/"})
	assert.Error(t, err)
}

func TestLoadMapFileReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.mapping")
	require.NoError(t, os.WriteFile(path, []byte("javax/servlet/=jakarta/servlet/\n"), 0o644))

	table, err := loadMapFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestLoadMapFileMissingFile(t *testing.T) {
	_, err := loadMapFile(filepath.Join(t.TempDir(), "missing.mapping"))
	assert.Error(t, err)
}

func TestMapFlagsBuildTablePrefersMapFileOverEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.mapping")
	require.NoError(t, os.WriteFile(path, []byte("com/from/=com/to/\n"), 0o644))

	f := mapFlags{file: path, entries: []string{"javax/=jakarta/"}}
	table, err := f.buildTable()
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, []byte("com/from/"), table.Entries()[1].From)
}

func TestMapFlagsBuildTableFallsBackToDefault(t *testing.T) {
	f := mapFlags{}
	table, err := f.buildTable()
	require.NoError(t, err)
	assert.Greater(t, table.Len(), 0)
}
