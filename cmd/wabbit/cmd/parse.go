package cmd

import (
	"fmt"

	"github.com/shaurya0/wabbit/internal/lexer"
	"github.com/shaurya0/wabbit/internal/parser"
	"github.com/spf13/cobra"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Wabbit source and print the AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args, parseEvalExpr)
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

	fmt.Println(program.String())
	return nil
}
