// Command interp runs a tree-walking interpreter for a small Lox-family
// scripting language: with no file argument it starts an interactive REPL,
// with one file argument it executes that file, and with more than one
// extra argument it prints a usage message.
//
// Argument dispatch is wired through github.com/spf13/cobra's RunE rather
// than stdlib flag.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/gix/pkg/eval"
	"github.com/conneroisu/gix/pkg/lexer"
	"github.com/conneroisu/gix/pkg/parser"
	"github.com/conneroisu/gix/pkg/repl"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the single root command, dispatching on argument count:
// zero args (REPL), one arg (file), 2+ args (usage + non-zero exit).
func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:                   "interp [path]",
		Short:                 "interp is a tree-walking interpreter for a small Lox-family scripting language",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Args:                  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)

			switch len(args) {
			case 0:
				return repl.New(cmd.OutOrStdout(), log).Run()
			case 1:
				return runFile(cmd, args[0], log)
			default:
				fmt.Fprintln(cmd.ErrOrStderr(), "usage: interp [path]")
				return fmt.Errorf("too many arguments")
			}
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log stage transitions to stderr")
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

func runFile(cmd *cobra.Command, path string, log *slog.Logger) error {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
		return err
	}

	log.Debug("lex start", "path", path)
	l := lexer.New(string(source), 1)
	tokens, lexErrs := l.ScanTokens()
	if len(lexErrs) != 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(cmd.OutOrStdout(), e.Error())
		}
		return fmt.Errorf("%d lex error(s)", len(lexErrs))
	}
	log.Debug("lex end", "tokens", len(tokens))

	log.Debug("parse start")
	p := parser.New(tokens)
	stmts, parseErrs := p.Parse()
	if len(parseErrs) != 0 {
		for _, e := range parseErrs {
			fmt.Fprintln(cmd.OutOrStdout(), e.Error())
		}
		return fmt.Errorf("%d parse error(s)", len(parseErrs))
	}
	log.Debug("parse end", "statements", len(stmts))

	log.Debug("eval start")
	e := eval.New(cmd.OutOrStdout(), log)
	if err := e.Run(stmts); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), err.Error())
		return err
	}
	log.Debug("eval end")

	return nil
}

// newLogger routes structured stage-transition logging to stderr so it never
// interleaves with the REPL/file stdout contract.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
