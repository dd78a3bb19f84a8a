package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/rinse/internal/model"
)

func writePrompts(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prompts.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return m.Path(path)
}

func TestPromptFileTask_PlainStrings(t *testing.T) {
	task, err := NewPromptFileTask(writePrompts(t, `["import A\n", "def f():\n"]`))
	require.NoError(t, err)

	n, err := task.Dataset()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	prompt, err := task.Prompt(0)
	require.NoError(t, err)
	assert.Equal(t, "import A\n", prompt)
}

func TestPromptFileTask_RecordObjects(t *testing.T) {
	task, err := NewPromptFileTask(writePrompts(t,
		`[{"task_id": "T/0", "prompt": "def solve(items):\n"}]`))
	require.NoError(t, err)

	prompt, err := task.Prompt(0)
	require.NoError(t, err)
	assert.Equal(t, "def solve(items):\n", prompt)
}

func TestPromptFileTask_OutOfRange(t *testing.T) {
	task, err := NewPromptFileTask(writePrompts(t, `["only one"]`))
	require.NoError(t, err)

	_, err = task.Prompt(1)
	assert.Error(t, err)

	_, err = task.Prompt(-1)
	assert.Error(t, err)
}

func TestPromptFileTask_MalformedFile(t *testing.T) {
	_, err := NewPromptFileTask(writePrompts(t, `{"prompt": "not an array"}`))
	assert.Error(t, err)
}

func TestNullTask(t *testing.T) {
	task := NewNullTask()

	n, err := task.Dataset()
	require.NoError(t, err)
	assert.Zero(t, n)

	prompt, err := task.Prompt(17)
	require.NoError(t, err)
	assert.Empty(t, prompt)
}
