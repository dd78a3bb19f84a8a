// Package cmd provides the root command and CLI setup for rinse.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/rinse/internal/adapter"
	"github.com/mouse-blink/rinse/internal/controller"
	"github.com/mouse-blink/rinse/internal/domain"
)

var store adapter.BatchStore
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	store = adapter.NewBatchStore()
	workflow = domain.NewWorkflow(store, ui)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rinse",
		Short: "Identifier renaming attack for code watermark evaluation",
		Long: `Rinse rewrites generated Python programs so that surface identifiers
change while program behavior and a protected prompt prefix stay intact.
It is used to study how robust code-watermark detectors are against
variable renaming.

Batches are JSON files shaped like the generation pipeline's output:
an array of programs, each an array of candidate generations.`,
	}

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
