package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/rinse/internal/model"
)

func TestRunCmd_ForwardsOptions(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{
		"run",
		"-i", "in.json",
		"-o", "out.json",
		"-s", "random",
		"-r", "0.5",
		"--seed", "7",
		"-p", "4",
	})

	require.NoError(t, cmd.Execute())
	require.Len(t, fake.attacks, 1)

	args := fake.attacks[0]
	assert.Equal(t, m.Path("in.json"), args.Input)
	assert.Equal(t, m.Path("out.json"), args.Output)
	assert.Equal(t, m.StrategyRandom, args.Options.Strategy)
	assert.Equal(t, 0.5, args.Options.Ratio)
	assert.Equal(t, int64(7), args.Options.Seed)
	assert.Equal(t, 4, args.Threads)
	assert.Nil(t, args.Task)
}

func TestRunCmd_GeneratesOutputPath(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{"run", "-i", "batch.json", "-r", "0.5"})

	require.NoError(t, cmd.Execute())
	require.Len(t, fake.attacks, 1)
	assert.Equal(t, m.Path("batch_renamed_sequential_50.json"), fake.attacks[0].Output)
}

func TestRunCmd_UnknownStrategy(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{"run", "-s", "camel"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
	assert.Empty(t, fake.attacks)
}

func TestRunCmd_LoadsPromptTask(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	prompts := filepath.Join(t.TempDir(), "prompts.json")
	require.NoError(t, os.WriteFile(prompts, []byte(`["import A\n"]`), 0o644))

	cmd := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{"run", "--prompts", prompts})

	require.NoError(t, cmd.Execute())
	require.Len(t, fake.attacks, 1)
	assert.NotNil(t, fake.attacks[0].Task)
}

func TestRunCmd_MissingPromptFile(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{"run", "--prompts", filepath.Join(t.TempDir(), "absent.json")})

	require.Error(t, cmd.Execute())
	assert.Empty(t, fake.attacks)
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"input", "output", "strategy", "ratio", "seed", "prompts", "parallel"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing --%s flag", name)
	}
}

func TestGenerateOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		strategy m.Strategy
		ratio    float64
		want     string
	}{
		{"full ratio", "generations.json", m.StrategySequential, 1.0, "generations_renamed_sequential_100.json"},
		{"half ratio", "generations.json", m.StrategyRandom, 0.5, "generations_renamed_random_50.json"},
		{"no extension", "batch", m.StrategyObfuscate, 0.25, "batch_renamed_obfuscate_25"},
		{"nested path", "data/out.json", m.StrategySequential, 1.0, "data/out_renamed_sequential_100.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateOutputPath(tt.input, tt.strategy, tt.ratio)
			assert.Equal(t, tt.want, got)
		})
	}
}
