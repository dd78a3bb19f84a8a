// Package controller renders attack progress and results.
package controller

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/rinse/internal/model"
)

// InspectionRow is one program's eligibility numbers for the inspect table.
type InspectionRow struct {
	Program    int
	Candidates int
	Eligible   int
	Fallbacks  int
}

// UI defines the interface for displaying attack progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(total int) error
	Close()
	DisplayRunInfo(input, output string, opts m.Options, threads int)
	DisplayProgramDone(program int, reports []m.Report)
	DisplaySummary(summary m.Summary) error
	DisplayInspection(rows []InspectionRow) error
}

// NewUI picks the TUI on a terminal and the plain UI everywhere else.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
