package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// config holds defaults that would otherwise need repeating on every
// invocation (e.g. --dump-ir). It has no effect on Wabbit program
// semantics — pure CLI ergonomics, loaded once from --config.
type config struct {
	DumpIR bool `yaml:"dump_ir"`
}

var cfg config
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "wabbit",
	Short: "Wabbit compiler and interpreter",
	Long: `wabbit is a lexer, parser, type checker, IR lowerer, and tree-walking
interpreter for the Wabbit language: a small, statically-typed
expression language with int/float/char/bool primitives, functions,
and while loops.`,
	Version:           Version,
	PersistentPreRunE: loadConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "load default flags from a YAML config file")
}

func loadConfig(_ *cobra.Command, _ []string) error {
	if cfgFile == "" {
		return nil
	}
	data, err := os.ReadFile(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", cfgFile, err)
	}
	return nil
}

// readSource reads source either from -e/--eval (when non-empty) or from a
// single file argument, matching the teacher's lex/run command convention.
func readSource(args []string, evalExpr string) (source, label string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) != 1 {
		return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(content), args[0], nil
}
