package cmd

import (
	"fmt"

	"github.com/shaurya0/wabbit/internal/lexer"
	"github.com/shaurya0/wabbit/pkg/token"
	"github.com/spf13/cobra"
)

var (
	lexEvalExpr string
	showPos     bool
	showType    bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Wabbit file or expression",
	Long: `Tokenize a Wabbit program and print the resulting tokens.

Examples:
  wabbit lex script.wb
  wabbit lex -e "print 'a';"
  wabbit lex --show-type --show-pos script.wb`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func runLex(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args, lexEvalExpr)
	if err != nil {
		return err
	}

	toks, err := lexer.ScanAll(source)
	if err != nil {
		return err
	}
	for _, tok := range toks {
		printToken(tok)
	}
	return nil
}

func printToken(tok token.Token) {
	var out string
	if showType {
		out = fmt.Sprintf("[%-12s]", tok.Type)
	}
	if tok.Literal == "" {
		out += fmt.Sprintf(" %s", tok.Type)
	} else {
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(out)
}
