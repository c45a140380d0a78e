package parser

import (
	"github.com/conneroisu/gix/internal/types"
	"github.com/conneroisu/gix/pkg/lexer"
)

// expression is the grammar's entry point: assignment has the lowest
// precedence.
func (p *Parser) expression() types.Expr {
	return p.assignment()
}

// assignment parses `name = value` by first parsing the left side as a
// plain expression and only afterward checking it was a bare Variable,
// rejecting any other assignment target with "Invalid assignment target.".
func (p *Parser) assignment() types.Expr {
	expr := p.or()

	if p.match(lexer.Equal) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*types.Variable); ok {
			return &types.Assign{Base: baseAt(equals.Line), Name: v.Name, Value: value}
		}

		p.errorAt(equals, "Invalid assignment target.")
		return expr
	}

	return expr
}

// or and and recurse into comparison rather than the full precedence
// chain, an intentional oddity of the grammar: logic_or := logic_and
// ('or' comparison)*, logic_and := equality ('and' comparison)*.
func (p *Parser) or() types.Expr {
	expr := p.and()

	for p.match(lexer.Or) {
		op := p.previous()
		right := p.comparison()
		expr = &types.Binary{Base: baseAt(op.Line), Left: expr, Op: op, Right: right}
	}

	return expr
}

func (p *Parser) and() types.Expr {
	expr := p.equality()

	for p.match(lexer.And) {
		op := p.previous()
		right := p.comparison()
		expr = &types.Binary{Base: baseAt(op.Line), Left: expr, Op: op, Right: right}
	}

	return expr
}

func (p *Parser) equality() types.Expr {
	expr := p.comparison()

	for equalityOps[p.peek().Kind] {
		p.advance()
		op := p.previous()
		right := p.comparison()
		expr = &types.Binary{Base: baseAt(op.Line), Left: expr, Op: op, Right: right}
	}

	return expr
}

func (p *Parser) comparison() types.Expr {
	expr := p.addition()

	for comparisonOps[p.peek().Kind] {
		p.advance()
		op := p.previous()
		right := p.addition()
		expr = &types.Binary{Base: baseAt(op.Line), Left: expr, Op: op, Right: right}
	}

	return expr
}

func (p *Parser) addition() types.Expr {
	expr := p.multiplication()

	for additionOps[p.peek().Kind] {
		p.advance()
		op := p.previous()
		right := p.multiplication()
		expr = &types.Binary{Base: baseAt(op.Line), Left: expr, Op: op, Right: right}
	}

	return expr
}

func (p *Parser) multiplication() types.Expr {
	expr := p.unary()

	for multiplicationOps[p.peek().Kind] {
		p.advance()
		op := p.previous()
		right := p.unary()
		expr = &types.Binary{Base: baseAt(op.Line), Left: expr, Op: op, Right: right}
	}

	return expr
}

func (p *Parser) unary() types.Expr {
	if p.match(lexer.Bang, lexer.Minus) {
		op := p.previous()
		right := p.unary()
		return &types.Unary{Base: baseAt(op.Line), Op: op, Right: right}
	}

	return p.call()
}

// call parses a primary expression followed by zero or more `(args)`
// applications: f(1)(2) chains naturally since each application's result
// becomes the next one's callee.
func (p *Parser) call() types.Expr {
	expr := p.primary()

	for {
		if p.match(lexer.LeftParen) {
			expr = p.finishCall(expr)
			continue
		}
		break
	}

	return expr
}

func (p *Parser) finishCall(callee types.Expr) types.Expr {
	var args []types.Expr
	if !p.check(lexer.RightParen) {
		for {
			args = append(args, p.expression())
			if !p.match(lexer.Comma) {
				break
			}
		}
	}

	paren := p.consume(lexer.RightParen, "Expect ')' after arguments.")
	return &types.Call{Base: baseAt(paren.Line), Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() types.Expr {
	switch {
	case p.match(lexer.False, lexer.True, lexer.Nil, lexer.NumberLiteral, lexer.StringLiteral):
		tok := p.previous()
		return &types.Literal{Base: baseAt(tok.Line), Token: tok}
	case p.match(lexer.Identifier):
		tok := p.previous()
		return &types.Variable{Base: baseAt(tok.Line), Name: tok}
	case p.match(lexer.LeftParen):
		line := p.previous().Line
		inner := p.expression()
		p.consume(lexer.RightParen, "Expect ')' after expression.")
		return &types.Grouping{Base: baseAt(line), Inner: inner}
	}

	tok := p.peek()
	err := p.errorAt(tok, "Expect expression.")
	panic(parseError{err: err})
}
