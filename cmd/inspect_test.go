package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/rinse/internal/model"
)

func TestInspectCmd(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := newTestRootCmd(newInspectCmd())
	cmd.SetArgs([]string{"inspect", "-i", "batch.json"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, []m.Path{m.Path("batch.json")}, fake.inspected)
}

func TestInspectCmd_RejectsPositionalArgs(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := newTestRootCmd(newInspectCmd())
	cmd.SetArgs([]string{"inspect", "batch.json"})

	require.Error(t, cmd.Execute())
	assert.Empty(t, fake.inspected)
}
