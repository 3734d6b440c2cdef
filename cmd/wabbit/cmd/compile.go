package cmd

import (
	"fmt"
	"os"

	"github.com/shaurya0/wabbit/internal/ir"
	"github.com/shaurya0/wabbit/internal/lexer"
	"github.com/shaurya0/wabbit/internal/parser"
	"github.com/shaurya0/wabbit/internal/semantic"
	"github.com/spf13/cobra"
)

var (
	compileOutput string
	compileDumpIR bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Lower a Wabbit file to its IR module",
	Long: `Lex, parse, type-check, and lower a Wabbit program to its typed IR
module. Since the object-file writer and linker are outside this
repository's scope, compile writes the module's textual form — the
artifact an external code generator would consume — to the given
path, or to stdout when no -o is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "output path for the IR dump (default: stdout)")
	compileCmd.Flags().BoolVar(&compileDumpIR, "dump-ir", false, "also print the IR module to stderr")
}

func runCompile(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

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
	module, err := ir.Lower(program)
	if err != nil {
		return err
	}

	dump := module.String()

	if compileDumpIR || cfg.DumpIR {
		fmt.Fprintln(os.Stderr, dump)
	}

	if compileOutput == "" {
		fmt.Print(dump)
		return nil
	}
	if err := os.WriteFile(compileOutput, []byte(dump), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", compileOutput, err)
	}
	fmt.Printf("Compiled %s -> %s\n", filename, compileOutput)
	return nil
}
