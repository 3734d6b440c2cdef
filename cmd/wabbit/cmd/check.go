package cmd

import (
	"fmt"

	"github.com/shaurya0/wabbit/internal/lexer"
	"github.com/shaurya0/wabbit/internal/parser"
	"github.com/shaurya0/wabbit/internal/semantic"
	"github.com/spf13/cobra"
)

var checkEvalExpr string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Type-check a Wabbit file without running it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkEvalExpr, "eval", "e", "", "check inline code instead of reading from file")
}

func runCheck(_ *cobra.Command, args []string) error {
	source, label, err := readSource(args, checkEvalExpr)
	if err != nil {
		return err
	}

	toks, err := lexer.ScanAll(source)
	if err != nil {
		return err
	}
	program, err := parser.New(toks).Parse()
	if err != nil {
		return err
	}
	if err := semantic.New().WithSource(source).Check(program); err != nil {
		return err
	}

	fmt.Printf("%s: OK\n", label)
	return nil
}
