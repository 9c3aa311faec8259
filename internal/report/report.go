// Package report prints CLI progress and summary lines styled with
// lipgloss, repurposing the color palette the teacher's TUI packages
// use for full-screen dashboards into single-line batch-run output.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	GoodColor     = lipgloss.Color("#228B22")
	CriticalColor = lipgloss.Color("#CC3333")
	InfoColor     = lipgloss.Color("#4682B4")
	MutedColor    = lipgloss.Color("#888888")
)

var (
	goodStyle     = lipgloss.NewStyle().Foreground(GoodColor).Bold(true)
	criticalStyle = lipgloss.NewStyle().Foreground(CriticalColor).Bold(true)
	infoStyle     = lipgloss.NewStyle().Foreground(InfoColor)
	mutedStyle    = lipgloss.NewStyle().Foreground(MutedColor)
)

// Rewritten reports that path was rewritten, having applied the given
// number of replacements.
func Rewritten(w io.Writer, path string, replacements int) {
	fmt.Fprintf(w, "%s %s %s\n",
		goodStyle.Render("✓ rewrote"), path,
		mutedStyle.Render(fmt.Sprintf("(%d replacement(s))", replacements)))
}

// Unchanged reports that path had no matches and was left untouched.
func Unchanged(w io.Writer, path string) {
	fmt.Fprintf(w, "%s %s\n", mutedStyle.Render("· unchanged"), path)
}

// Failed reports that path could not be rewritten because of err.
func Failed(w io.Writer, path string, err error) {
	fmt.Fprintf(w, "%s %s: %v\n", criticalStyle.Render("✗ failed"), path, err)
}

// JarSummary reports how many jar entries were rewritten vs. left
// untouched.
func JarSummary(w io.Writer, path string, entriesTotal, rewritten, unchanged int) {
	fmt.Fprintf(w, "%s %s %s\n",
		goodStyle.Render("✓ rewrote"), path,
		infoStyle.Render(fmt.Sprintf("(%d/%d class entries changed, %d entries total)", rewritten, rewritten+unchanged, entriesTotal)))
}

// MappingValid reports that a mapping file passed validation and how
// many entries it contains.
func MappingValid(w io.Writer, path string, entries int) {
	fmt.Fprintf(w, "%s %s %s\n",
		goodStyle.Render("✓ valid"), path,
		mutedStyle.Render(fmt.Sprintf("(%d entries)", entries)))
}
