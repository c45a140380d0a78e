package eval

import (
	"fmt"
	"time"

	"github.com/conneroisu/gix/internal/ierr"
	"github.com/conneroisu/gix/internal/value"
	"github.com/conneroisu/gix/pkg/lexer"
)

// registerBuiltins populates the global frame with the host function
// library exposed through the single defineBuiltin extension point.
func (e *Evaluator) registerBuiltins() {
	e.defineBuiltin("test", -1, e.builtinTest)
	e.defineBuiltin("clock", 0, builtinClock)
	e.defineBuiltin("len", 1, builtinLen)
	e.defineBuiltin("type", 1, builtinType)
}

// defineBuiltin binds a synthetic Identifier token so a builtin can go
// through the same ScopeStack.Define path as every user-level declaration.
func (e *Evaluator) defineBuiltin(name string, arity int, fn func(args []value.Instance) (value.Instance, error)) {
	tok := lexer.Token{Kind: lexer.Identifier, Lexeme: name, Line: 0}
	b := &value.Builtin{Name: name, Arity: arity, Fn: fn}
	if err := e.stack.Define(tok, b); err != nil {
		panic(fmt.Sprintf("eval: failed to register builtin %q: %v", name, err))
	}
}

// builtinTest prints "test", then each argument's debug form, always
// returning Nil. It writes through e.out rather than the process's real
// stdout so its output is captured the same way Print's is, whether out
// is the terminal, a file run's writer, or a test's in-memory buffer.
func (e *Evaluator) builtinTest(args []value.Instance) (value.Instance, error) {
	fmt.Fprintln(e.out, "test")
	for _, a := range args {
		fmt.Fprintf(e.out, "%#v\n", a)
	}
	return value.Nil{}, nil
}

// builtinClock returns the current Unix time.
func builtinClock(args []value.Instance) (value.Instance, error) {
	return value.Number(time.Now().Unix()), nil
}

// builtinLen returns a string's length as a Number.
func builtinLen(args []value.Instance) (value.Instance, error) {
	s, ok := args[0].(value.String)
	if !ok {
		return nil, ierr.New(0, "len() expected a String, found '%s' instead.", args[0])
	}
	return value.Number(len(s)), nil
}

// builtinType returns the runtime kind name of its argument as a String.
func builtinType(args []value.Instance) (value.Instance, error) {
	return value.String(args[0].Kind().String()), nil
}
