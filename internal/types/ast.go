package types

import (
	"fmt"
	"strings"

	"github.com/conneroisu/gix/pkg/lexer"
)

// SourcePos is the 1-based source line a node was parsed from, used for
// runtime error reporting.
type SourcePos struct {
	Line int
}

// Node is implemented by every AST node.
type Node interface {
	Pos() SourcePos
	String() string
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Base carries the 1-based source line shared by every node; it is
// embedded rather than duplicated per node type.
type Base struct {
	Line int
}

func (b Base) Pos() SourcePos { return SourcePos{Line: b.Line} }

// --- Expressions -----------------------------------------------------------

// Literal is a number, string, bool, or nil constant carried verbatim from
// the scanned token.
type Literal struct {
	Base
	Token lexer.Token
}

func (e *Literal) exprNode() {}
func (e *Literal) String() string {
	if e.Token.Kind == lexer.StringLiteral {
		return fmt.Sprintf("%q", e.Token.Lexeme)
	}
	if e.Token.Lexeme != "" {
		return e.Token.Lexeme
	}
	return e.Token.Kind.String()
}

// Variable is a bare identifier reference.
type Variable struct {
	Base
	Name lexer.Token
}

func (e *Variable) exprNode()      {}
func (e *Variable) String() string { return e.Name.Lexeme }

// Assign rebinds an existing variable: name = value.
type Assign struct {
	Base
	Name  lexer.Token
	Value Expr
}

func (e *Assign) exprNode()      {}
func (e *Assign) String() string { return fmt.Sprintf("(%s = %s)", e.Name.Lexeme, e.Value) }

// Unary is a prefix operator applied to a single operand.
type Unary struct {
	Base
	Op    lexer.Token
	Right Expr
}

func (e *Unary) exprNode() {}
func (e *Unary) String() string {
	return fmt.Sprintf("(%s%s)", e.Op.Kind, e.Right)
}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Base
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (e *Binary) exprNode() {}
func (e *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op.Kind, e.Right)
}

// Grouping is a parenthesized sub-expression, kept distinct so the printer
// can round-trip precedence.
type Grouping struct {
	Base
	Inner Expr
}

func (e *Grouping) exprNode()      {}
func (e *Grouping) String() string { return fmt.Sprintf("(group %s)", e.Inner) }

// Call is a function or builtin application: callee(args...). Paren is the
// closing-paren token, kept for its line number in runtime call errors.
type Call struct {
	Base
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

func (e *Call) exprNode() {}
func (e *Call) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Callee, strings.Join(args, ", "))
}

// Empty is a placeholder expression used where the grammar allows an
// expression to be omitted (e.g. `return;`).
type Empty struct {
	Base
}

func (e *Empty) exprNode()      {}
func (e *Empty) String() string { return "" }

// --- Statements --------------------------------------------------------------

// Var declares a new variable: var name = init;. Init is *Empty when no
// initializer is present, in which case the variable starts out Nil.
type Var struct {
	Base
	Name lexer.Token
	Init Expr
}

func (s *Var) stmtNode()      {}
func (s *Var) String() string { return fmt.Sprintf("(var %s = %s)", s.Name.Lexeme, s.Init) }

// Block is a brace-delimited sequence of statements run in a new scope.
type Block struct {
	Base
	Stmts []Stmt
}

func (s *Block) stmtNode() {}
func (s *Block) String() string {
	parts := make([]string, len(s.Stmts))
	for i, st := range s.Stmts {
		parts[i] = st.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// If is a conditional statement with an optional else branch (Else is nil
// when absent).
type If struct {
	Base
	Cond Expr
	Then Stmt
	Else Stmt
}

func (s *If) stmtNode() {}
func (s *If) String() string {
	if s.Else != nil {
		return fmt.Sprintf("(if %s %s else %s)", s.Cond, s.Then, s.Else)
	}
	return fmt.Sprintf("(if %s %s)", s.Cond, s.Then)
}

// While is a condition-checked loop. The parser desugars `for` into this
// plus a Block wrapper.
type While struct {
	Base
	Cond Expr
	Body Stmt
}

func (s *While) stmtNode()      {}
func (s *While) String() string { return fmt.Sprintf("(while %s %s)", s.Cond, s.Body) }

// Function declares a named function: fun name(params) { body }.
type Function struct {
	Base
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *Function) stmtNode() {}
func (s *Function) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Lexeme
	}
	return fmt.Sprintf("(fun %s(%s))", s.Name.Lexeme, strings.Join(params, ", "))
}

// Return unwinds to the nearest enclosing function call. Value is *Empty
// when no expression follows `return`.
type Return struct {
	Base
	Keyword lexer.Token
	Value   Expr
}

func (s *Return) stmtNode()      {}
func (s *Return) String() string { return fmt.Sprintf("(return %s)", s.Value) }

// Expression is a bare expression evaluated for its side effects.
type Expression struct {
	Base
	Inner Expr
}

func (s *Expression) stmtNode()      {}
func (s *Expression) String() string { return s.Inner.String() }

// Print evaluates an expression and writes its rendering to stdout.
type Print struct {
	Base
	Inner Expr
}

func (s *Print) stmtNode()      {}
func (s *Print) String() string { return fmt.Sprintf("(print %s)", s.Inner) }

// EmptyStmt is a placeholder used when the parser must synchronize past a
// malformed statement without leaving a nil in the tree.
type EmptyStmt struct {
	Base
}

func (s *EmptyStmt) stmtNode()      {}
func (s *EmptyStmt) String() string { return "" }
