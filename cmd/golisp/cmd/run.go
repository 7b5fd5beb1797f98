package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lisp/internal/interp"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file] [args...]",
	Short: "Run a go-lisp file or expression",
	Long: `Execute a go-lisp program from a file or inline expression.

Examples:
  # Run a script file
  golisp run script.lisp

  # Run a script file with arguments (bound to *ARGV*)
  golisp run script.lisp a b c

  # Evaluate an inline expression
  golisp run -e "(+ 1 2 3)"`,
	Args: cobra.ArbitraryArgs,
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
	ip := interp.New(os.Stdout)

	if evalExpr != "" {
		if out := ip.Rep(evalExpr); out != "" {
			fmt.Println(out)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	if _, err := os.Stat(args[0]); err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	ip.SetArgv(args[1:])
	ip.LoadFile(args[0])
	return nil
}
