package parser

import (
	"github.com/conneroisu/gix/internal/ierr"
	"github.com/conneroisu/gix/internal/types"
	"github.com/conneroisu/gix/pkg/lexer"
)

// Parser implements a recursive descent parser over the token stream the
// lexer produces, one statement at a time. Calls use explicit (args) syntax,
// so there is no function-application-by-juxtaposition to disambiguate.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  ierr.List
}

// New creates a Parser over a complete token stream (including the
// trailing Eof the lexer appends).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the entire token stream into a program: a sequence of
// top-level declarations. Malformed statements are skipped via synchronize
// so a single error doesn't abort the rest of the file.
func (p *Parser) Parse() ([]types.Stmt, []*ierr.Error) {
	var stmts []types.Stmt
	for !p.atEnd() {
		stmts = append(stmts, p.declaration())
	}
	return stmts, p.errors.Errors()
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == lexer.Eof
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) check(kind lexer.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) match(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the expected kind or panics a parseError carrying
// the message, to be caught by declaration's synchronize.
func (p *Parser) consume(kind lexer.Kind, msg string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	err := p.errorAt(p.peek(), "%s", msg)
	panic(parseError{err: err})
}

// synchronize discards tokens until the parser believes it is at the start
// of the next statement: stop after a semicolon, or right before a
// statement keyword.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == lexer.Semicolon {
			return
		}
		if statementKeywords[p.peek().Kind] {
			return
		}
		p.advance()
	}
}

// declaration parses a single top-level or block-level declaration,
// recovering from a malformed one via synchronize rather than aborting the
// whole parse.
func (p *Parser) declaration() (stmt types.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = &types.EmptyStmt{}
				return
			}
			panic(r)
		}
	}()

	if p.match(lexer.Fun) {
		return p.functionDeclaration("function")
	}
	if p.match(lexer.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() types.Stmt {
	name := p.consume(lexer.Identifier, "Expect variable name.")

	var init types.Expr = &types.Empty{Base: baseAt(name.Line)}
	if p.match(lexer.Equal) {
		init = p.expression()
	}

	p.consume(lexer.Semicolon, "Expect ';' after variable declaration.")
	return &types.Var{Base: baseAt(name.Line), Name: name, Init: init}
}

func (p *Parser) functionDeclaration(kind string) types.Stmt {
	name := p.consume(lexer.Identifier, "Expect "+kind+" name.")
	p.consume(lexer.LeftParen, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RightParen) {
		for {
			params = append(params, p.consume(lexer.Identifier, "Expect parameter name."))
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	p.consume(lexer.RightParen, "Expect ')' after parameters.")

	p.consume(lexer.LeftBrace, "Expect '{' before "+kind+" body.")
	body := p.block()

	return &types.Function{Base: baseAt(name.Line), Name: name, Params: params, Body: body}
}

// baseAt is a tiny constructor avoiding repeated literal struct tags across
// every node-building call site.
func baseAt(line int) types.Base {
	return types.Base{Line: line}
}
