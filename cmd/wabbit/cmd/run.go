package cmd

import (
	"fmt"
	"os"

	"github.com/shaurya0/wabbit/internal/lexer"
	"github.com/shaurya0/wabbit/internal/parser"
	"github.com/shaurya0/wabbit/internal/semantic"
	"github.com/shaurya0/wabbit/pkg/wabbit"
	"github.com/spf13/cobra"
)

var (
	runEvalExpr string
	runDumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Wabbit file or expression",
	Long: `Execute a Wabbit program from a file or inline expression via the
tree-walking interpreter.

Examples:
  wabbit run script.wb
  wabbit run -e "print 'a';"
  wabbit run --dump-ast script.wb`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&runDumpAST, "dump-ast", false, "print the parsed AST before running")
}

func runRun(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args, runEvalExpr)
	if err != nil {
		return err
	}

	if runDumpAST {
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
		fmt.Println(program.String())
	}

	engine, err := wabbit.New(wabbit.WithOutput(os.Stdout))
	if err != nil {
		return err
	}
	_, err = engine.Eval(source)
	return err
}
