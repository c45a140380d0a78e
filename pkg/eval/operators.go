package eval

import (
	"github.com/conneroisu/gix/internal/ierr"
	"github.com/conneroisu/gix/internal/types"
	"github.com/conneroisu/gix/internal/value"
	"github.com/conneroisu/gix/pkg/lexer"
)

func (e *Evaluator) evalUnary(x *types.Unary) (value.Instance, error) {
	right, err := e.evaluate(x.Right)
	if err != nil {
		return nil, err
	}

	switch x.Op.Kind {
	case lexer.Bang:
		return primitiveNot(x.Op, right)
	case lexer.Minus:
		return primitiveNeg(x.Op, right)
	default:
		return nil, operatorError(x.Op, "unary")
	}
}

func (e *Evaluator) evalBinary(x *types.Binary) (value.Instance, error) {
	switch x.Op.Kind {
	case lexer.Or:
		return e.primitiveOr(x.Op, x.Left, x.Right)
	case lexer.And:
		return e.primitiveAnd(x.Op, x.Left, x.Right)
	}

	left, err := e.evaluate(x.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(x.Right)
	if err != nil {
		return nil, err
	}

	switch x.Op.Kind {
	case lexer.Plus:
		return primitiveAdd(x.Op, left, right)
	case lexer.Minus:
		return primitiveSub(x.Op, left, right)
	case lexer.Star:
		return primitiveMul(x.Op, left, right)
	case lexer.Slash:
		return primitiveDiv(x.Op, left, right)
	case lexer.EqualEqual:
		return primitiveEq(left, right), nil
	case lexer.BangEqual:
		eq := primitiveEq(left, right)
		return value.Bool(!bool(eq.(value.Bool))), nil
	case lexer.Less:
		return primitiveLess(x.Op, left, right)
	case lexer.Greater:
		lt, err := primitiveLess(x.Op, left, right)
		if err != nil {
			return nil, err
		}
		eq := primitiveEq(left, right)
		return value.Bool(!(bool(lt.(value.Bool)) || bool(eq.(value.Bool)))), nil
	case lexer.LessEqual:
		lt, err := primitiveLess(x.Op, left, right)
		if err != nil {
			return nil, err
		}
		eq := primitiveEq(left, right)
		return value.Bool(bool(lt.(value.Bool)) || bool(eq.(value.Bool))), nil
	case lexer.GreaterEqual:
		lt, err := primitiveLess(x.Op, left, right)
		if err != nil {
			return nil, err
		}
		return value.Bool(!bool(lt.(value.Bool))), nil
	default:
		return nil, operatorError(x.Op, "binary")
	}
}

func (e *Evaluator) primitiveOr(op lexer.Token, leftExpr, rightExpr types.Expr) (value.Instance, error) {
	left, err := e.evaluate(leftExpr)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(value.Bool)
	if !ok {
		return nil, unaryError(op, "Bool", left)
	}
	if lb {
		return lb, nil
	}

	right, err := e.evaluate(rightExpr)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(value.Bool)
	if !ok {
		return nil, unaryError(op, "Bool", right)
	}
	return rb, nil
}

func (e *Evaluator) primitiveAnd(op lexer.Token, leftExpr, rightExpr types.Expr) (value.Instance, error) {
	left, err := e.evaluate(leftExpr)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(value.Bool)
	if !ok {
		return nil, unaryError(op, "Bool", left)
	}
	if !lb {
		return lb, nil
	}

	right, err := e.evaluate(rightExpr)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(value.Bool)
	if !ok {
		return nil, unaryError(op, "Bool", right)
	}
	return rb, nil
}

func primitiveNot(op lexer.Token, v value.Instance) (value.Instance, error) {
	b, ok := v.(value.Bool)
	if !ok {
		return nil, unaryError(op, "Bool", v)
	}
	return value.Bool(!b), nil
}

func primitiveNeg(op lexer.Token, v value.Instance) (value.Instance, error) {
	n, ok := v.(value.Number)
	if !ok {
		return nil, unaryError(op, "Number", v)
	}
	return value.Number(-n), nil
}

func primitiveAdd(op lexer.Token, left, right value.Instance) (value.Instance, error) {
	switch lv := left.(type) {
	case value.Number:
		if rv, ok := right.(value.Number); ok {
			return lv + rv, nil
		}
		return nil, binaryError(op, "Number", left, right)
	case value.String:
		if rv, ok := right.(value.String); ok {
			return lv + rv, nil
		}
		return nil, binaryError(op, "String", left, right)
	default:
		return nil, binaryError(op, "Number | String", left, right)
	}
}

func primitiveSub(op lexer.Token, left, right value.Instance) (value.Instance, error) {
	lv, lok := left.(value.Number)
	rv, rok := right.(value.Number)
	if !lok || !rok {
		return nil, binaryError(op, "Number", left, right)
	}
	return lv - rv, nil
}

func primitiveMul(op lexer.Token, left, right value.Instance) (value.Instance, error) {
	lv, lok := left.(value.Number)
	rv, rok := right.(value.Number)
	if !lok || !rok {
		return nil, binaryError(op, "Number", left, right)
	}
	return lv * rv, nil
}

func primitiveDiv(op lexer.Token, left, right value.Instance) (value.Instance, error) {
	lv, lok := left.(value.Number)
	rv, rok := right.(value.Number)
	if !lok || !rok {
		return nil, binaryError(op, "Number", left, right)
	}
	return lv / rv, nil
}

// primitiveEq never errors: values of mismatched kinds, or any kind this
// language doesn't define ordering for, simply compare unequal.
func primitiveEq(left, right value.Instance) value.Instance {
	switch lv := left.(type) {
	case value.Number:
		rv, ok := right.(value.Number)
		return value.Bool(ok && lv == rv)
	case value.String:
		rv, ok := right.(value.String)
		return value.Bool(ok && lv == rv)
	case value.Bool:
		rv, ok := right.(value.Bool)
		return value.Bool(ok && lv == rv)
	case value.Nil:
		_, ok := right.(value.Nil)
		return value.Bool(ok)
	default:
		return value.Bool(false)
	}
}

func primitiveLess(op lexer.Token, left, right value.Instance) (value.Instance, error) {
	switch lv := left.(type) {
	case value.Number:
		if rv, ok := right.(value.Number); ok {
			return value.Bool(lv < rv), nil
		}
		return nil, binaryError(op, "Number", left, right)
	case value.String:
		if rv, ok := right.(value.String); ok {
			return value.Bool(lv < rv), nil
		}
		return nil, binaryError(op, "String", left, right)
	default:
		return nil, binaryError(op, "Number | String", left, right)
	}
}

func operatorError(op lexer.Token, kind string) error {
	return ierr.New(op.Line, "%s operator is not a %s operator.", op.Kind, kind)
}

func unaryError(op lexer.Token, expected string, v value.Instance) error {
	return ierr.New(op.Line, "%s operator expected type '%s', found '%s' instead.", op.Kind, expected, v)
}

func binaryError(op lexer.Token, expected string, left, right value.Instance) error {
	return ierr.New(op.Line, "%s operator expected type '%s', found '%s' and '%s' instead.",
		op.Kind, expected, left, right)
}
