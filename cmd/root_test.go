package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/rinse/internal/domain"
	m "github.com/mouse-blink/rinse/internal/model"
)

// fakeWorkflow records calls so command tests can assert on the wiring.
type fakeWorkflow struct {
	attacks    []domain.AttackArgs
	attackErr  error
	summary    m.Summary
	inspected  []m.Path
	inspectErr error
}

func (f *fakeWorkflow) Attack(args domain.AttackArgs) (m.Summary, error) {
	f.attacks = append(f.attacks, args)
	return f.summary, f.attackErr
}

func (f *fakeWorkflow) Inspect(input m.Path) error {
	f.inspected = append(f.inspected, input)
	return f.inspectErr
}

func swapWorkflow(t *testing.T, fake domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = fake

	t.Cleanup(func() { workflow = original })
}

func newTestRootCmd(subcommands ...*cobra.Command) *cobra.Command {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	for _, sub := range subcommands {
		cmd.AddCommand(sub)
	}

	return cmd
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	if cmd.Use != "rinse" {
		t.Errorf("newRootCmd() Use = %v, want rinse", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("newRootCmd() Short should not be empty")
	}
	if cmd.Long == "" {
		t.Error("newRootCmd() Long should not be empty")
	}
}

func TestInit(t *testing.T) {
	if ui == nil {
		t.Error("init() ui is nil")
	}
	if store == nil {
		t.Error("init() store is nil")
	}
	if workflow == nil {
		t.Error("init() workflow is nil")
	}
}
