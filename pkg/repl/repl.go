// Package repl implements an interactive read-eval-print loop: a persistent
// scope stack across lines, a right-aligned 4-character line-number prompt,
// and line-editing/history via github.com/chzyer/readline.
package repl

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/conneroisu/gix/pkg/eval"
	"github.com/conneroisu/gix/pkg/lexer"
	"github.com/conneroisu/gix/pkg/parser"
)

const (
	banner  = "0.0.1 interpreter"
	hint    = "Press Ctrl^Z to exit."
	goodbye = "Exited on end of stream."
)

var errColor = color.New(color.FgRed)

// Repl is a persistent interactive session: one Evaluator lives across every
// line read, so variable and function declarations from earlier lines
// remain visible to later ones.
type Repl struct {
	out io.Writer
	log *slog.Logger
	ev  *eval.Evaluator

	line int
}

// New constructs a Repl that writes `print` output to out. log is handed to
// the Evaluator (nil is allowed); the Repl itself writes no log records.
func New(out io.Writer, log *slog.Logger) *Repl {
	return &Repl{
		out:  out,
		log:  log,
		ev:   eval.New(out, log),
		line: 1,
	}
}

// Run prints the banner, then reads and executes lines until EOF (Ctrl-D) or
// an interrupt, returning nil on a clean exit — the caller is responsible
// for the process exit code, which is always 0 for a REPL session.
func (r *Repl) Run() error {
	fmt.Fprintln(r.out, banner)
	fmt.Fprintln(r.out, hint)

	rl, err := readline.New(r.prompt())
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		rl.SetPrompt(r.prompt())

		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(r.out, goodbye)
			return nil
		}

		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		if r.execute(line) {
			r.line++
		}
	}
}

// prompt renders the right-aligned 4-character line number followed by
// "> ".
func (r *Repl) prompt() string {
	return fmt.Sprintf("%4d> ", r.line)
}

// execute lexes, parses, and evaluates a single REPL line, reporting every
// lex or parse error, or the first runtime error, in red. It reports
// whether the line ran to
// completion with no error, which governs whether the prompt's line number
// advances.
func (r *Repl) execute(line string) bool {
	l := lexer.New(line, r.line)
	tokens, lexErrs := l.ScanTokens()
	if len(lexErrs) != 0 {
		for _, e := range lexErrs {
			errColor.Fprintln(r.out, e.Error())
		}
		return false
	}

	p := parser.New(tokens)
	stmts, parseErrs := p.Parse()
	if len(parseErrs) != 0 {
		for _, e := range parseErrs {
			errColor.Fprintln(r.out, e.Error())
		}
		return false
	}

	if err := r.ev.Run(stmts); err != nil {
		errColor.Fprintln(r.out, err.Error())
		return false
	}

	return true
}
