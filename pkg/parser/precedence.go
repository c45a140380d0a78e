package parser

import "github.com/conneroisu/gix/pkg/lexer"

// statementKeywords is the set of keywords synchronize treats as the start
// of a new statement.
var statementKeywords = map[lexer.Kind]bool{
	lexer.Class:  true,
	lexer.Fun:    true,
	lexer.Var:    true,
	lexer.For:    true,
	lexer.If:     true,
	lexer.While:  true,
	lexer.Print:  true,
	lexer.Return: true,
}

// equalityOps and comparisonOps group the token kinds each precedence
// level of the binary-expression chain accepts.
var equalityOps = map[lexer.Kind]bool{
	lexer.BangEqual:  true,
	lexer.EqualEqual: true,
}

var comparisonOps = map[lexer.Kind]bool{
	lexer.Greater:      true,
	lexer.GreaterEqual: true,
	lexer.Less:         true,
	lexer.LessEqual:    true,
}

var additionOps = map[lexer.Kind]bool{
	lexer.Plus:  true,
	lexer.Minus: true,
}

var multiplicationOps = map[lexer.Kind]bool{
	lexer.Slash: true,
	lexer.Star:  true,
}
