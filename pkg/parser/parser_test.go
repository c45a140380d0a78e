package parser

import (
	"testing"

	"github.com/conneroisu/gix/internal/types"
	"github.com/conneroisu/gix/pkg/lexer"
)

func parseSource(t *testing.T, src string) []types.Stmt {
	t.Helper()

	l := lexer.New(src, 1)
	tokens, lexErrs := l.ScanTokens()
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lex errors: %v", lexErrs)
	}

	p := New(tokens)
	stmts, errs := p.Parse()
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	return stmts
}

func TestVarDeclaration(t *testing.T) {
	stmts := parseSource(t, `var x = 5;`)
	if len(stmts) != 1 {
		t.Fatalf("len(stmts) not 1. got=%d", len(stmts))
	}

	v, ok := stmts[0].(*types.Var)
	if !ok {
		t.Fatalf("stmts[0] not *types.Var. got=%T", stmts[0])
	}
	if v.Name.Lexeme != "x" {
		t.Errorf("v.Name.Lexeme not 'x'. got=%q", v.Name.Lexeme)
	}

	lit, ok := v.Init.(*types.Literal)
	if !ok {
		t.Fatalf("v.Init not *types.Literal. got=%T", v.Init)
	}
	if lit.Token.Lexeme != "5" {
		t.Errorf("lit.Token.Lexeme not '5'. got=%q", lit.Token.Lexeme)
	}
}

func TestVarDeclarationWithoutInitializer(t *testing.T) {
	stmts := parseSource(t, `var x;`)

	v, ok := stmts[0].(*types.Var)
	if !ok {
		t.Fatalf("stmts[0] not *types.Var. got=%T", stmts[0])
	}
	if _, ok := v.Init.(*types.Empty); !ok {
		t.Fatalf("v.Init not *types.Empty. got=%T", v.Init)
	}
}

func TestIfElseStatement(t *testing.T) {
	stmts := parseSource(t, `if (x < y) { print x; } else { print y; }`)

	ifStmt, ok := stmts[0].(*types.If)
	if !ok {
		t.Fatalf("stmts[0] not *types.If. got=%T", stmts[0])
	}

	cond, ok := ifStmt.Cond.(*types.Binary)
	if !ok {
		t.Fatalf("ifStmt.Cond not *types.Binary. got=%T", ifStmt.Cond)
	}
	if cond.Op.Kind != lexer.Less {
		t.Errorf("cond.Op.Kind not Less. got=%v", cond.Op.Kind)
	}

	if _, ok := ifStmt.Then.(*types.Block); !ok {
		t.Fatalf("ifStmt.Then not *types.Block. got=%T", ifStmt.Then)
	}
	if _, ok := ifStmt.Else.(*types.Block); !ok {
		t.Fatalf("ifStmt.Else not *types.Block. got=%T", ifStmt.Else)
	}
}

func TestWhileStatement(t *testing.T) {
	stmts := parseSource(t, `while (x < 10) { x = x + 1; }`)

	w, ok := stmts[0].(*types.While)
	if !ok {
		t.Fatalf("stmts[0] not *types.While. got=%T", stmts[0])
	}

	block, ok := w.Body.(*types.Block)
	if !ok {
		t.Fatalf("w.Body not *types.Block. got=%T", w.Body)
	}
	if len(block.Stmts) != 1 {
		t.Fatalf("len(block.Stmts) not 1. got=%d", len(block.Stmts))
	}
}

func TestForStatementDesugarsToWhile(t *testing.T) {
	stmts := parseSource(t, `for (var i = 0; i < 3; i = i + 1) { print i; }`)

	outer, ok := stmts[0].(*types.Block)
	if !ok {
		t.Fatalf("stmts[0] not *types.Block. got=%T", stmts[0])
	}
	if len(outer.Stmts) != 2 {
		t.Fatalf("len(outer.Stmts) not 2. got=%d", len(outer.Stmts))
	}

	if _, ok := outer.Stmts[0].(*types.Var); !ok {
		t.Fatalf("outer.Stmts[0] not *types.Var. got=%T", outer.Stmts[0])
	}

	w, ok := outer.Stmts[1].(*types.While)
	if !ok {
		t.Fatalf("outer.Stmts[1] not *types.While. got=%T", outer.Stmts[1])
	}

	innerBlock, ok := w.Body.(*types.Block)
	if !ok {
		t.Fatalf("w.Body not *types.Block. got=%T", w.Body)
	}
	if len(innerBlock.Stmts) != 2 {
		t.Fatalf("len(innerBlock.Stmts) not 2 (body + increment). got=%d", len(innerBlock.Stmts))
	}
}

func TestFunctionDeclarationAndReturn(t *testing.T) {
	stmts := parseSource(t, `fun add(a, b) { return a + b; }`)

	fn, ok := stmts[0].(*types.Function)
	if !ok {
		t.Fatalf("stmts[0] not *types.Function. got=%T", stmts[0])
	}
	if fn.Name.Lexeme != "add" {
		t.Errorf("fn.Name.Lexeme not 'add'. got=%q", fn.Name.Lexeme)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("len(fn.Params) not 2. got=%d", len(fn.Params))
	}

	ret, ok := fn.Body[0].(*types.Return)
	if !ok {
		t.Fatalf("fn.Body[0] not *types.Return. got=%T", fn.Body[0])
	}
	if _, ok := ret.Value.(*types.Binary); !ok {
		t.Fatalf("ret.Value not *types.Binary. got=%T", ret.Value)
	}
}

func TestReturnWithoutValue(t *testing.T) {
	stmts := parseSource(t, `fun noop() { return; }`)

	fn := stmts[0].(*types.Function)
	ret := fn.Body[0].(*types.Return)
	if _, ok := ret.Value.(*types.Empty); !ok {
		t.Fatalf("ret.Value not *types.Empty. got=%T", ret.Value)
	}
}

func TestCallExpressionParsing(t *testing.T) {
	stmts := parseSource(t, `add(1, 2);`)

	exprStmt, ok := stmts[0].(*types.Expression)
	if !ok {
		t.Fatalf("stmts[0] not *types.Expression. got=%T", stmts[0])
	}

	call, ok := exprStmt.Inner.(*types.Call)
	if !ok {
		t.Fatalf("exprStmt.Inner not *types.Call. got=%T", exprStmt.Inner)
	}
	if len(call.Args) != 2 {
		t.Fatalf("len(call.Args) not 2. got=%d", len(call.Args))
	}

	callee, ok := call.Callee.(*types.Variable)
	if !ok {
		t.Fatalf("call.Callee not *types.Variable. got=%T", call.Callee)
	}
	if callee.Name.Lexeme != "add" {
		t.Errorf("callee.Name.Lexeme not 'add'. got=%q", callee.Name.Lexeme)
	}
}

func TestAssignmentExpression(t *testing.T) {
	stmts := parseSource(t, `x = 5;`)

	exprStmt := stmts[0].(*types.Expression)
	assign, ok := exprStmt.Inner.(*types.Assign)
	if !ok {
		t.Fatalf("exprStmt.Inner not *types.Assign. got=%T", exprStmt.Inner)
	}
	if assign.Name.Lexeme != "x" {
		t.Errorf("assign.Name.Lexeme not 'x'. got=%q", assign.Name.Lexeme)
	}
}

func TestInvalidAssignmentTargetIsReported(t *testing.T) {
	l := lexer.New(`1 = 2;`, 1)
	tokens, _ := l.ScanTokens()
	p := New(tokens)
	_, errs := p.Parse()
	if len(errs) == 0 {
		t.Fatalf("expected an error for an invalid assignment target")
	}
}

func TestBinaryPrecedence(t *testing.T) {
	stmts := parseSource(t, `print 1 + 2 * 3;`)

	printStmt, ok := stmts[0].(*types.Print)
	if !ok {
		t.Fatalf("stmts[0] not *types.Print. got=%T", stmts[0])
	}

	top, ok := printStmt.Inner.(*types.Binary)
	if !ok {
		t.Fatalf("printStmt.Inner not *types.Binary. got=%T", printStmt.Inner)
	}
	if top.Op.Kind != lexer.Plus {
		t.Errorf("top.Op.Kind not Plus. got=%v", top.Op.Kind)
	}
	if _, ok := top.Right.(*types.Binary); !ok {
		t.Fatalf("top.Right not *types.Binary (expected 2 * 3 to bind tighter). got=%T", top.Right)
	}
}

func TestSynchronizeRecoversAfterError(t *testing.T) {
	l := lexer.New(`var = ; var y = 1;`, 1)
	tokens, _ := l.ScanTokens()
	p := New(tokens)
	stmts, errs := p.Parse()
	if len(errs) == 0 {
		t.Fatalf("expected at least one parse error")
	}
	if len(stmts) != 2 {
		t.Fatalf("expected synchronize to recover the second statement, got %d stmts", len(stmts))
	}
}
