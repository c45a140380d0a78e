package eval

import (
	"github.com/conneroisu/gix/internal/ierr"
	"github.com/conneroisu/gix/internal/types"
	"github.com/conneroisu/gix/internal/value"
)

// execBlock pushes a new scope, runs every statement, and guarantees the
// pop via defer on every exit path, so a statement error never leaves a
// stale frame on the stack.
func (e *Evaluator) execBlock(stmts []types.Stmt) error {
	e.stack.Push()
	defer e.stack.Pop()

	for _, stmt := range stmts {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) execIf(s *types.If) error {
	cond, err := e.evaluate(s.Cond)
	if err != nil {
		return err
	}

	b, ok := cond.(value.Bool)
	if !ok {
		return conditionError("If", s.Pos().Line, cond)
	}

	if b {
		return e.execute(s.Then)
	}
	if s.Else != nil {
		return e.execute(s.Else)
	}
	return nil
}

func (e *Evaluator) execWhile(s *types.While) error {
	for {
		cond, err := e.evaluate(s.Cond)
		if err != nil {
			return err
		}

		b, ok := cond.(value.Bool)
		if !ok {
			return conditionError("While", s.Pos().Line, cond)
		}
		if !b {
			return nil
		}

		if err := e.execute(s.Body); err != nil {
			return err
		}
	}
}

func conditionError(stmtKind string, line int, v value.Instance) error {
	return ierr.New(line, "%s statement condition must be 'Bool', found '%s' instead.", stmtKind, v)
}
