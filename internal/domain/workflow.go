package domain

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/rinse/internal/adapter"
	"github.com/mouse-blink/rinse/internal/controller"
	m "github.com/mouse-blink/rinse/internal/model"
)

// AttackArgs configures one batch attack run.
type AttackArgs struct {
	Input   m.Path
	Output  m.Path
	Options m.Options
	// Task supplies per-program protected prompts; nil means no protection.
	Task    adapter.Task
	Threads int
}

// Workflow defines the interface for batch renaming operations.
type Workflow interface {
	// Attack renames every candidate of every program in the input batch
	// and writes the same nested shape to the output path.
	Attack(args AttackArgs) (m.Summary, error)
	// Inspect reports per-program eligible-identifier counts of a batch.
	Inspect(input m.Path) error
}

type workflow struct {
	store adapter.BatchStore
	ui    controller.UI
}

// NewWorkflow creates a Workflow over the given store and UI.
func NewWorkflow(store adapter.BatchStore, ui controller.UI) Workflow {
	return &workflow{store: store, ui: ui}
}

func (w *workflow) Attack(args AttackArgs) (m.Summary, error) {
	if args.Threads <= 0 {
		args.Threads = 1
	}

	batch, err := w.store.Load(args.Input)
	if err != nil {
		return m.Summary{}, err
	}

	task := args.Task
	if task == nil {
		task = adapter.NewNullTask()
	}

	w.ui.DisplayRunInfo(string(args.Input), string(args.Output), args.Options, args.Threads)

	if err := w.ui.Start(len(batch)); err != nil {
		return m.Summary{}, fmt.Errorf("failed to start ui: %w", err)
	}

	out := make(m.Batch, len(batch))
	programReports := make([][]m.Report, len(batch))

	var uiMu sync.Mutex

	var g errgroup.Group

	g.SetLimit(args.Threads)

	for idx := range batch {
		idx := idx
		g.Go(func() error {
			// Each worker builds its own renamer, and every candidate
			// reseeds its own generator; scheduling order cannot leak into
			// the outputs.
			renamer := NewRenamer()

			opts := args.Options

			// A missing prompt record degrades that program to an
			// unprotected rename; it never fails the batch.
			if prompt, promptErr := task.Prompt(idx); promptErr == nil {
				opts.Protected = prompt
			}

			renamed := make([]string, len(batch[idx]))
			reports := make([]m.Report, len(batch[idx]))

			for j, gen := range batch[idx] {
				renamed[j], reports[j] = renamer.RenameWithReport(gen, opts)
				reports[j].Program = idx
				reports[j].Candidate = j
			}

			out[idx] = renamed
			programReports[idx] = reports

			uiMu.Lock()
			w.ui.DisplayProgramDone(idx, reports)
			uiMu.Unlock()

			return nil
		})
	}

	// Workers never return errors: every per-candidate failure degrades to
	// an identity transform inside Rename.
	_ = g.Wait()

	w.ui.Close()

	if err := w.store.Save(args.Output, out); err != nil {
		return m.Summary{}, err
	}

	summary := m.Summary{Programs: len(batch)}

	for _, reports := range programReports {
		for _, report := range reports {
			summary.Add(report)
		}
	}

	return summary, w.ui.DisplaySummary(summary)
}

func (w *workflow) Inspect(input m.Path) error {
	batch, err := w.store.Load(input)
	if err != nil {
		return err
	}

	renamer := NewRenamer()
	rows := make([]controller.InspectionRow, 0, len(batch))

	for idx, gens := range batch {
		row := controller.InspectionRow{Program: idx, Candidates: len(gens)}
		distinct := make(map[string]struct{})

		for _, gen := range gens {
			names, fallback := renamer.EligibleNames(gen)
			if fallback {
				row.Fallbacks++
			}

			for _, name := range names {
				distinct[name] = struct{}{}
			}
		}

		row.Eligible = len(distinct)
		rows = append(rows, row)
	}

	return w.ui.DisplayInspection(rows)
}
