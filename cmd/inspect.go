package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/rinse/internal/model"
)

var inspectInputFlag string

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show per-program eligible identifier counts for a batch",
		Long: `Inspect loads a generation batch and reports, per program, how many
candidates it holds and how many distinct identifiers the renaming attack
could touch. Candidates that do not parse are counted separately; they
would take the lexical fallback path.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Inspect(m.Path(inspectInputFlag))
		},
	}

	cmd.Flags().StringVarP(&inspectInputFlag, "input", "i", "generations.json", "input JSON file containing generations")

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
