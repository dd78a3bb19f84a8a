package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/rinse/internal/adapter"
	"github.com/mouse-blink/rinse/internal/domain"
	m "github.com/mouse-blink/rinse/internal/model"
)

var runInputFlag string
var runOutputFlag string
var runStrategyFlag string
var runRatioFlag float64
var runSeedFlag int64
var runPromptsFlag string
var runParallelFlag int

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply the renaming attack to a generation batch",
		Long: `Run loads a JSON batch of candidate generations, renames identifiers in
every candidate, and writes the same nested shape back out.

When --prompts is given, each program's prompt is treated as a protected
prefix: its identifiers are never renamed and the prefix text reappears
verbatim at the head of the output.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			strategy := m.Strategy(runStrategyFlag)
			if !strategy.Known() {
				return fmt.Errorf("unknown strategy %q (want sequential, random or obfuscate)", runStrategyFlag)
			}

			var task adapter.Task

			if runPromptsFlag != "" {
				loaded, err := adapter.NewPromptFileTask(m.Path(runPromptsFlag))
				if err != nil {
					return err
				}

				task = loaded
			}

			output := runOutputFlag
			if output == "" {
				output = generateOutputPath(runInputFlag, strategy, runRatioFlag)
			}

			_, err := workflow.Attack(domain.AttackArgs{
				Input:  m.Path(runInputFlag),
				Output: m.Path(output),
				Options: m.Options{
					Strategy: strategy,
					Seed:     runSeedFlag,
					Ratio:    runRatioFlag,
				},
				Task:    task,
				Threads: runParallelFlag,
			})

			return err
		},
	}

	cmd.Flags().StringVarP(&runInputFlag, "input", "i", "generations.json", "input JSON file containing generations")
	cmd.Flags().StringVarP(&runOutputFlag, "output", "o", "", "output JSON file (auto-generated if not specified)")
	cmd.Flags().StringVarP(&runStrategyFlag, "strategy", "s", "sequential", "renaming strategy: sequential, random or obfuscate")
	cmd.Flags().Float64VarP(&runRatioFlag, "ratio", "r", 1.0, "proportion of eligible names to rename, 0.0-1.0")
	cmd.Flags().Int64Var(&runSeedFlag, "seed", 42, "random seed for reproducibility")
	cmd.Flags().StringVar(&runPromptsFlag, "prompts", "", "JSON prompt dataset supplying protected prefixes")
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of parallel workers")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// generateOutputPath derives the output path from the input path, strategy
// and ratio: generations.json -> generations_renamed_sequential_50.json.
func generateOutputPath(input string, strategy m.Strategy, ratio float64) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)

	return fmt.Sprintf("%s_renamed_%s_%d%s", base, strategy, int(ratio*100), ext)
}
