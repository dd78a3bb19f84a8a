package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/rinse/internal/model"
)

// SimpleUI implements UI with plain line output through the cobra command.
type SimpleUI struct {
	cmd   *cobra.Command
	total int
	done  int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(total int) error {
	s.total = total
	s.done = 0

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// DisplayRunInfo prints the run configuration.
func (s *SimpleUI) DisplayRunInfo(input, output string, opts m.Options, threads int) {
	s.printf("Input: %s\n", input)
	s.printf("Output: %s\n", output)
	s.printf("Strategy: %s\n", opts.Strategy)
	s.printf("Ratio: %.2f\n", opts.Ratio)
	s.printf("Seed: %d\n", opts.Seed)
	s.printf("Workers: %d\n", threads)
}

// DisplayProgramDone prints one progress line per finished program.
func (s *SimpleUI) DisplayProgramDone(program int, reports []m.Report) {
	s.done++

	renamed := 0

	for _, report := range reports {
		if report.Renamed > 0 {
			renamed++
		}
	}

	s.printf("program %d done (%d/%d), %d/%d candidates renamed\n",
		program, s.done, s.total, renamed, len(reports))
}

// DisplaySummary renders the aggregate run results as a table.
func (s *SimpleUI) DisplaySummary(summary m.Summary) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Metric", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	rows := [][]string{
		{"Programs", fmt.Sprintf("%d", summary.Programs)},
		{"Candidates", fmt.Sprintf("%d", summary.Candidates)},
		{"Renamed", fmt.Sprintf("%d", summary.Renamed)},
		{"Lexical fallbacks", fmt.Sprintf("%d", summary.Fallbacks)},
		{"Prefix anchored", fmt.Sprintf("%d", summary.Anchored)},
		{"Recovered", fmt.Sprintf("%d", summary.Recovered)},
	}

	for _, row := range rows {
		table.Append(row)
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayInspection renders per-program eligibility counts as a table.
func (s *SimpleUI) DisplayInspection(rows []InspectionRow) error {
	if len(rows) == 0 {
		s.printf("No programs in batch\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Program", "Candidates", "Eligible Names", "Unparsable"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	candidates := 0
	eligible := 0

	for _, row := range rows {
		table.Append([]string{
			fmt.Sprintf("%d", row.Program),
			fmt.Sprintf("%d", row.Candidates),
			fmt.Sprintf("%d", row.Eligible),
			fmt.Sprintf("%d", row.Fallbacks),
		})

		candidates += row.Candidates
		eligible += row.Eligible
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(rows)),
		fmt.Sprintf("%d", candidates),
		fmt.Sprintf("%d", eligible),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
