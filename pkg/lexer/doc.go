// Package lexer converts interpreter source text into a stream of tokens
// for the parser.
//
// The lexer is a single-pass cursor over the source bytes with one
// character of lookahead (peek) and a second for number fractions
// (peekNext). Each token's lexeme is captured by resetting a start index
// before scanning begins.
//
// Token Recognition:
//   - Keywords: and, class, else, false, for, fun, if, nil, or, print,
//     return, super, this, true, var, while
//   - Identifiers: any run of letters/underscore followed by letters,
//     digits, underscore, or '$' (which the lexer also counts as a digit)
//   - Literals: numbers (integer plus optional fractional part) and
//     double-quoted strings
//   - Operators: + - * / == != < > <= >= ! =
//   - Delimiters: ( ) { } , . ;
//
// Comment Handling:
//   - Single-line comments starting with //
//   - Block comments enclosed in /* */, which may nest
//   - Comments are skipped during tokenization
//
// Position Tracking:
//   - Every token carries the 1-based line it was scanned on
//   - ScanTokens accepts a starting line number so the REPL can track
//     line numbers across successive input lines
//
// Error Handling:
//   - An unknown character or an unterminated string is recorded as an
//     error but does not stop scanning; ScanTokens returns every token it
//     managed to produce alongside the accumulated errors
//
// Usage Example:
//
//	l := lexer.New("print 1 + 2;", 1)
//	tokens, errs := l.ScanTokens()
package lexer
