package controller

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/rinse/internal/model"
)

// TUI implements UI with a Bubble Tea progress bar for interactive runs.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	started bool
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress display for total programs.
func (t *TUI) Start(total int) error {
	t.program = tea.NewProgram(newAttackModel(total), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		_, _ = t.program.Run()
		close(t.done)
	}()

	t.started = true

	return nil
}

// Close stops the progress display and waits for it to shut down.
func (t *TUI) Close() {
	if !t.started {
		return
	}

	t.program.Send(finishedMsg{})
	<-t.done

	t.started = false
}

// DisplayRunInfo prints the run configuration before the progress starts.
func (t *TUI) DisplayRunInfo(input, output string, opts m.Options, threads int) {
	_, _ = fmt.Fprintf(t.output, "Renaming %s -> %s (strategy=%s ratio=%.2f seed=%d workers=%d)\n",
		input, output, opts.Strategy, opts.Ratio, opts.Seed, threads)
}

// DisplayProgramDone advances the progress bar by one program.
func (t *TUI) DisplayProgramDone(int, []m.Report) {
	if !t.started {
		return
	}

	t.program.Send(programDoneMsg{})
}

// DisplaySummary prints the aggregate results after the bar has closed.
func (t *TUI) DisplaySummary(summary m.Summary) error {
	_, _ = fmt.Fprintf(t.output,
		"Done: %d programs, %d candidates, %d renamed, %d fallbacks, %d anchored, %d recovered\n",
		summary.Programs, summary.Candidates, summary.Renamed,
		summary.Fallbacks, summary.Anchored, summary.Recovered)

	return nil
}

// DisplayInspection renders per-program eligibility counts as a table.
func (t *TUI) DisplayInspection(rows []InspectionRow) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Program", "Candidates", "Eligible Names", "Unparsable"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, row := range rows {
		table.Append([]string{
			fmt.Sprintf("%d", row.Program),
			fmt.Sprintf("%d", row.Candidates),
			fmt.Sprintf("%d", row.Eligible),
			fmt.Sprintf("%d", row.Fallbacks),
		})
	}

	table.Render()
	_, _ = fmt.Fprintf(t.output, "\n%s", tableBuffer.String())

	return nil
}

type programDoneMsg struct{}

type finishedMsg struct{}

var tuiTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)

// attackModel is the Bubble Tea model driving the batch progress bar.
type attackModel struct {
	bar   progress.Model
	total int
	done  int
}

func newAttackModel(total int) attackModel {
	return attackModel{
		bar:   progress.New(progress.WithDefaultGradient()),
		total: total,
	}
}

func (m attackModel) Init() tea.Cmd {
	return nil
}

func (m attackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 8
		if width > 60 {
			width = 60
		}

		if width > 0 {
			m.bar.Width = width
		}

		return m, nil

	case programDoneMsg:
		m.done++

		if m.total > 0 {
			return m, m.bar.SetPercent(float64(m.done) / float64(m.total))
		}

		return m, nil

	case finishedMsg:
		return m, tea.Quit

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)

		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m attackModel) View() string {
	return fmt.Sprintf("%s %s %d/%d programs\n",
		tuiTitleStyle.Render("rinse"), m.bar.View(), m.done, m.total)
}
