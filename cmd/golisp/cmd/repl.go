package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cwbudde/go-lisp/internal/interp"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long:  `Start a read-eval-print loop. Definitions persist across inputs.`,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl() {
	ip := interp.New(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("user> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			if out := ip.Rep(line); out != "" {
				fmt.Println(out)
			}
		}
		fmt.Print("user> ")
	}

	if err := scanner.Err(); err != nil {
		exitWithError("reading input: %v", err)
	}
}
