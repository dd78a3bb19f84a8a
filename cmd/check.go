package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/rinse/internal/domain"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Check Python files for syntax validity",
		Long: `Check parses each file (or stdin when no files are given) and reports
whether it is syntactically valid Python, with a diagnostic for the first
offending position when it is not.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				code, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}

				valid, diag := domain.CheckSyntax(string(code))
				if !valid {
					return fmt.Errorf("stdin: %s", diag)
				}

				cmd.Println("stdin: ok")

				return nil
			}

			invalid := 0

			for _, path := range args {
				code, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}

				valid, diag := domain.CheckSyntax(string(code))
				if valid {
					cmd.Printf("%s: ok\n", path)
					continue
				}

				cmd.Printf("%s: %s\n", path, diag)

				invalid++
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d file(s) failed the syntax check", invalid, len(args))
			}

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
