package eval

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/conneroisu/gix/internal/ierr"
	"github.com/conneroisu/gix/internal/types"
	"github.com/conneroisu/gix/internal/value"
	"github.com/conneroisu/gix/pkg/lexer"
)

// Evaluator walks a parsed program against a chained ScopeStack, producing
// side effects (Print) and propagating runtime errors tied to source
// lines.
type Evaluator struct {
	stack *value.ScopeStack
	out   io.Writer
	log   *slog.Logger
}

// New creates an Evaluator writing Print output to out, with the standard
// builtin library already registered in the global frame.
func New(out io.Writer, log *slog.Logger) *Evaluator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Evaluator{stack: value.NewScopeStack(), out: out, log: log}
	e.registerBuiltins()
	return e
}

// returnSignal unwinds a `return` statement up to the enclosing function
// call. It implements error so it can travel the same propagation path as
// a runtime error, but Run and block/loop execution never mistake it for
// one — only callFunction consumes it.
type returnSignal struct {
	value value.Instance
	line  int
}

func (r *returnSignal) Error() string { return "return outside of a function" }

// Run executes a parsed program's top-level statements in order. A
// `return` that escapes every function call is reported as a runtime
// error at the `return` keyword's line.
func (e *Evaluator) Run(stmts []types.Stmt) error {
	for _, stmt := range stmts {
		if err := e.execute(stmt); err != nil {
			if rs, ok := err.(*returnSignal); ok {
				return ierr.New(rs.line, "Cannot return from top-level code.")
			}
			return err
		}
	}
	return nil
}

func (e *Evaluator) execute(stmt types.Stmt) error {
	switch s := stmt.(type) {
	case *types.Var:
		val, err := e.evaluate(s.Init)
		if err != nil {
			return err
		}
		return e.stack.Define(s.Name, val)

	case *types.Block:
		return e.execBlock(s.Stmts)

	case *types.If:
		return e.execIf(s)

	case *types.While:
		return e.execWhile(s)

	case *types.Function:
		return e.execFunctionDecl(s)

	case *types.Return:
		val, err := e.evaluate(s.Value)
		if err != nil {
			return err
		}
		return &returnSignal{value: val, line: s.Keyword.Line}

	case *types.Expression:
		_, err := e.evaluate(s.Inner)
		return err

	case *types.Print:
		val, err := e.evaluate(s.Inner)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.out, val.String())
		return nil

	case *types.EmptyStmt:
		return nil

	default:
		return fmt.Errorf("eval: unhandled statement type %T", stmt)
	}
}

func (e *Evaluator) evaluate(expr types.Expr) (value.Instance, error) {
	switch x := expr.(type) {
	case *types.Empty:
		return value.Nil{}, nil

	case *types.Literal:
		return e.evalLiteral(x.Token)

	case *types.Variable:
		return e.stack.Get(x.Name)

	case *types.Assign:
		val, err := e.evaluate(x.Value)
		if err != nil {
			return nil, err
		}
		if err := e.stack.Assign(x.Name, val); err != nil {
			return nil, err
		}
		return val, nil

	case *types.Grouping:
		return e.evaluate(x.Inner)

	case *types.Unary:
		return e.evalUnary(x)

	case *types.Binary:
		return e.evalBinary(x)

	case *types.Call:
		return e.evalCall(x)

	default:
		return nil, fmt.Errorf("eval: unhandled expression type %T", expr)
	}
}

func (e *Evaluator) evalLiteral(tok lexer.Token) (value.Instance, error) {
	switch tok.Kind {
	case lexer.NumberLiteral:
		n, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, ierr.New(tok.Line, "Cannot parse '%s' into number (%s).", tok.Lexeme, err)
		}
		return value.Number(n), nil
	case lexer.StringLiteral:
		return value.String(tok.Lexeme), nil
	case lexer.True:
		return value.Bool(true), nil
	case lexer.False:
		return value.Bool(false), nil
	case lexer.Nil:
		return value.Nil{}, nil
	default:
		return nil, ierr.New(tok.Line, "Found an unevaluable literal token %s.", tok.Kind)
	}
}
