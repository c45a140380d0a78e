package parser

import (
	"github.com/conneroisu/gix/internal/types"
	"github.com/conneroisu/gix/pkg/lexer"
)

// statement dispatches on the leading token to the appropriate statement
// production.
func (p *Parser) statement() types.Stmt {
	switch {
	case p.match(lexer.For):
		return p.forStatement()
	case p.match(lexer.If):
		return p.ifStatement()
	case p.match(lexer.Print):
		return p.printStatement()
	case p.match(lexer.Return):
		return p.returnStatement()
	case p.match(lexer.While):
		return p.whileStatement()
	case p.match(lexer.LeftBrace):
		line := p.previous().Line
		return &types.Block{Base: baseAt(line), Stmts: p.block()}
	default:
		return p.expressionStatement()
	}
}

// block parses declarations up to and including the closing brace. Used by
// both the bare `{ ... }` statement and function bodies.
func (p *Parser) block() []types.Stmt {
	var stmts []types.Stmt
	for !p.check(lexer.RightBrace) && !p.atEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(lexer.RightBrace, "Expect '}' after block.")
	return stmts
}

func (p *Parser) ifStatement() types.Stmt {
	line := p.previous().Line
	p.consume(lexer.LeftParen, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(lexer.RightParen, "Expect ')' after if condition.")

	then := p.statement()
	var elseBranch types.Stmt
	if p.match(lexer.Else) {
		elseBranch = p.statement()
	}

	return &types.If{Base: baseAt(line), Cond: cond, Then: then, Else: elseBranch}
}

func (p *Parser) whileStatement() types.Stmt {
	line := p.previous().Line
	p.consume(lexer.LeftParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(lexer.RightParen, "Expect ')' after condition.")
	body := p.statement()

	return &types.While{Base: baseAt(line), Cond: cond, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into:
//
//	{ init; while (cond) { body; incr; } }
//
// so the evaluator never sees a For node.
func (p *Parser) forStatement() types.Stmt {
	line := p.previous().Line
	p.consume(lexer.LeftParen, "Expect '(' after 'for'.")

	var init types.Stmt
	switch {
	case p.match(lexer.Semicolon):
		init = nil
	case p.match(lexer.Var):
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond types.Expr
	if !p.check(lexer.Semicolon) {
		cond = p.expression()
	}
	p.consume(lexer.Semicolon, "Expect ';' after loop condition.")

	var incr types.Expr
	if !p.check(lexer.RightParen) {
		incr = p.expression()
	}
	p.consume(lexer.RightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if incr != nil {
		body = &types.Block{
			Base:  baseAt(line),
			Stmts: []types.Stmt{body, &types.Expression{Base: baseAt(line), Inner: incr}},
		}
	}

	if cond == nil {
		cond = &types.Literal{Base: baseAt(line), Token: lexer.Token{Kind: lexer.True, Line: line}}
	}
	body = &types.While{Base: baseAt(line), Cond: cond, Body: body}

	if init != nil {
		body = &types.Block{Base: baseAt(line), Stmts: []types.Stmt{init, body}}
	}

	return body
}

func (p *Parser) printStatement() types.Stmt {
	line := p.previous().Line
	value := p.expression()
	p.consume(lexer.Semicolon, "Expect ';' after value.")
	return &types.Print{Base: baseAt(line), Inner: value}
}

func (p *Parser) returnStatement() types.Stmt {
	keyword := p.previous()

	var value types.Expr = &types.Empty{Base: baseAt(keyword.Line)}
	if !p.check(lexer.Semicolon) {
		value = p.expression()
	}
	p.consume(lexer.Semicolon, "Expect ';' after return value.")

	return &types.Return{Base: baseAt(keyword.Line), Keyword: keyword, Value: value}
}

func (p *Parser) expressionStatement() types.Stmt {
	line := p.peek().Line
	expr := p.expression()
	p.consume(lexer.Semicolon, "Expect ';' after expression.")
	return &types.Expression{Base: baseAt(line), Inner: expr}
}
