package cmd

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/shaurya0/wabbit/pkg/wabbit"
	"github.com/spf13/cobra"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Wabbit session",
	Long: `Read lines of Wabbit source, type-check and run each one
independently via the interpreter, and print its output.

Each line is its own complete program: Wabbit's type checker works over
whole programs, so a variable declared on one line is not visible on the
next — every line starts from a clean environment. Type '.exit' to quit.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	greenColor.Println("wabbit " + Version)
	blueColor.Println("Type Wabbit statements and press enter. Type '.exit' to quit.")

	rl, err := readline.New("wabbit> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	engine, err := wabbit.New()
	if err != nil {
		return err
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Println("Goodbye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Println("Goodbye!")
			return nil
		}

		rl.SaveHistory(line)
		evalLine(engine, line)
	}
}

func evalLine(engine *wabbit.Engine, line string) {
	result, err := engine.Eval(line)
	if err != nil {
		redColor.Printf("%s\n", err)
		return
	}
	if result.Output != "" {
		yellowColor.Print(result.Output)
	}
}
