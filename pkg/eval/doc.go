// Package eval provides the tree-walking evaluator for the interpreter.
//
// The evaluator is the final stage of the pipeline, taking statements from
// the parser and executing them against a chained ScopeStack
// (internal/value). It's split by concern the way the lexer and parser
// are:
//   - evaluator.go: Evaluator construction, statement/expression dispatch
//   - operators.go: unary/binary primitive operations and their errors
//   - control_flow.go: if/while/block execution and scope bracketing
//   - functions.go: function declaration, closures, and calls
//   - builtins.go: the host builtin registry (define_builtin)
//
// Scope discipline: every block and function call pushes a frame on entry
// and pops it via defer on every exit path — error, return, or normal
// completion — so a mid-block error never leaves a stale frame on the
// stack.
package eval
