// Package types provides Abstract Syntax Tree (AST) node definitions for the
// interpreter's expression and statement grammar.
//
// Each expression type implements Expr and each statement type implements
// Stmt. Nodes are plain data — the parser builds them, the evaluator walks
// them with a type switch.
//
// Expressions:
//   - Literal: number/string/bool/nil constants
//   - Variable: a name reference
//   - Assign: name = value
//   - Unary, Binary: operators
//   - Grouping: a parenthesized sub-expression
//   - Call: callee(args...)
//
// Statements:
//   - Var: var name = init;
//   - Block: { stmt* }
//   - If, While: control flow
//   - Function: fun name(params) { body }
//   - Return: return value?;
//   - Expression, Print: expression statements
package types
