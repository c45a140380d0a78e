package eval

import (
	"github.com/conneroisu/gix/internal/ierr"
	"github.com/conneroisu/gix/internal/types"
	"github.com/conneroisu/gix/internal/value"
	"github.com/conneroisu/gix/pkg/lexer"
)

// execFunctionDecl defines name in the current frame bound to a Function
// value that captures the current frame as its closure — a function
// declared inside another function's body sees that function's locals on
// every later call, not just the locals visible at its own call site.
func (e *Evaluator) execFunctionDecl(s *types.Function) error {
	fn := &value.Function{
		Name:    s.Name.Lexeme,
		Params:  s.Params,
		Body:    s.Body,
		Closure: e.stack.Head(),
	}
	return e.stack.Define(s.Name, fn)
}

func (e *Evaluator) evalCall(x *types.Call) (value.Instance, error) {
	callee, err := e.evaluate(x.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Instance, len(x.Args))
	for i, a := range x.Args {
		v, err := e.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *value.Function:
		return e.callFunction(fn, args)
	case *value.Builtin:
		return e.callBuiltin(fn, x.Paren, args)
	default:
		return nil, ierr.New(x.Paren.Line, "Expected a function, found '%s' instead.", callee)
	}
}

// callFunction runs fn's body in a frame enclosed by its captured closure,
// not the caller's frame. Because the callee's closure chain is generally
// unrelated to the caller's current frame, the prior head is snapshotted
// before the push and restored directly via PopTo rather than Pop — Pop
// would instead leave the caller's scope stack pointed at the closure
// frame, replacing the caller's scope chain with the closure's. Missing
// arguments bind to Nil and excess arguments are ignored.
func (e *Evaluator) callFunction(fn *value.Function, args []value.Instance) (value.Instance, error) {
	caller := e.stack.Head()
	frame := value.NewFrame(fn.Closure)
	e.stack.PushFrame(frame)
	defer e.stack.PopTo(caller)

	for i, param := range fn.Params {
		var v value.Instance = value.Nil{}
		if i < len(args) {
			v = args[i]
		}
		if err := e.stack.Define(param, v); err != nil {
			return nil, err
		}
	}

	for _, stmt := range fn.Body {
		if err := e.execute(stmt); err != nil {
			if rs, ok := err.(*returnSignal); ok {
				return rs.value, nil
			}
			return nil, err
		}
	}

	return value.Nil{}, nil
}

func (e *Evaluator) callBuiltin(fn *value.Builtin, paren lexer.Token, args []value.Instance) (value.Instance, error) {
	if fn.Arity >= 0 && len(args) != fn.Arity {
		return nil, ierr.New(paren.Line, "Expected %d arguments but got %d.", fn.Arity, len(args))
	}
	return fn.Apply(args)
}
