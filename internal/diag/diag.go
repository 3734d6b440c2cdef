// Package diag provides shared error formatting for the Wabbit pipeline.
//
// Every stage — lexer, parser, semantic checker, IR lowerer — reports
// failures as an *Error carrying a source position so the driver can
// render a consistent, caret-annotated diagnostic regardless of which
// stage raised it.
package diag

import (
	"fmt"
	"strings"

	"github.com/shaurya0/wabbit/pkg/token"
)

// Kind classifies the compiler stage that raised an Error.
type Kind int

const (
	Lexical Kind = iota
	Parse
	TypeErr
	Lowering
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "LexicalError"
	case Parse:
		return "ParseError"
	case TypeErr:
		return "TypeError"
	case Lowering:
		return "LoweringError"
	default:
		return "Error"
	}
}

// Error is a single diagnostic with enough context to render a source line
// and a caret pointing at the offending column.
type Error struct {
	Source  string
	File    string
	Message string
	Pos     token.Position
	Kind    Kind
}

func New(kind Kind, pos token.Position, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message}
}

func Newf(kind Kind, pos token.Position, format string, args ...any) *Error {
	return New(kind, pos, fmt.Sprintf(format, args...))
}

// WithSource attaches the full source text and file name so Format can
// render the offending line; it returns e for chaining.
func (e *Error) WithSource(source, file string) *Error {
	e.Source = source
	e.File = file
	return e
}

func (e *Error) Error() string {
	return e.Format(false)
}

// Format renders the diagnostic with a source line and caret indicator.
// When color is true, ANSI codes highlight the caret and message.
func (e *Error) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s: %s:%d:%d\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *Error) sourceLine(line int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// List aggregates the diagnostics a stage recorded before it stopped. The
// parser and the semantic checker both return their errors as a List; each
// stops at its first failing construct, so a List usually holds a single
// diagnostic.
type List struct {
	Errors []*Error
}

func (l *List) Add(e *Error) {
	l.Errors = append(l.Errors, e)
}

func (l *List) Empty() bool {
	return len(l.Errors) == 0
}

func (l *List) Error() string {
	parts := make([]string, len(l.Errors))
	for i, e := range l.Errors {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "\n")
}
