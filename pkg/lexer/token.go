// Package lexer converts interpreter source text into a stream of tokens.
package lexer

import "fmt"

// Kind classifies a lexical token. Punctuation, one/two-character
// operators, payload-bearing literals, keywords, and Eof are all
// represented as distinct Kind values.
type Kind int

const (
	// Single-character tokens.
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals. The lexeme carries the text payload.
	Identifier
	StringLiteral
	NumberLiteral

	// Keywords.
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// End of file.
	Eof
)

var kindNames = map[Kind]string{
	LeftParen:     "LeftParen",
	RightParen:    "RightParen",
	LeftBrace:     "LeftBrace",
	RightBrace:    "RightBrace",
	Comma:         "Comma",
	Dot:           "Dot",
	Minus:         "Minus",
	Plus:          "Plus",
	Semicolon:     "Semicolon",
	Slash:         "Slash",
	Star:          "Star",
	Bang:          "Bang",
	BangEqual:     "BangEqual",
	Equal:         "Equal",
	EqualEqual:    "EqualEqual",
	Greater:       "Greater",
	GreaterEqual:  "GreaterEqual",
	Less:          "Less",
	LessEqual:     "LessEqual",
	Identifier:    "Identifier",
	StringLiteral: "StringLiteral",
	NumberLiteral: "NumberLiteral",
	And:           "And",
	Class:         "Class",
	Else:          "Else",
	False:         "False",
	Fun:           "Fun",
	For:           "For",
	If:            "If",
	Nil:           "Nil",
	Or:            "Or",
	Print:         "Print",
	Return:        "Return",
	Super:         "Super",
	This:          "This",
	True:          "True",
	Var:           "Var",
	While:         "While",
	Eof:           "Eof",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps reserved words to their token kind. Any identifier not in
// this table lexes as Identifier.
var keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// LookupIdent resolves text to a keyword Kind, or Identifier if it isn't
// reserved.
func LookupIdent(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}

	return Identifier
}

// Token is a single lexical unit: its kind, its source text (only
// meaningful for Identifier/StringLiteral/NumberLiteral), and the 1-based
// line it ends on.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

// String renders a debug representation used in parser/evaluator error
// messages as the offending token's representation.
func (t Token) String() string {
	if t.Lexeme != "" {
		return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
	}

	return t.Kind.String()
}

// SameKind reports whether two kinds match for parser purposes, treating
// the three payload-bearing literal kinds as equal regardless of payload.
// Since Kind itself carries no payload in this representation, this is
// just ordinary equality — the payload lives in Token.Lexeme, so two
// Identifier tokens always compare SameKind regardless of text.
func SameKind(a, b Kind) bool {
	return a == b
}

// isDigit classifies a digit for literal scanning. '$' is accepted alongside
// 0-9, so a leading '$' starts a NumberLiteral and '$' may continue an
// identifier. A number lexeme containing '$' is not valid float syntax and
// fails to evaluate.
func isDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || ch == '$'
}

// isAlpha classifies the first character of an identifier.
func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

// isAlphaNumeric classifies identifier continuation characters.
func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
