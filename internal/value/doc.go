// Package value provides the runtime value system for the interpreter.
//
// Instance is implemented by every runtime value: Nil, Bool, Number, String,
// and the two Callable kinds (user-defined Function and host Builtin).
// Values are immutable after construction, which keeps equality and copying
// trivial — a Go value of one of these types can always be assigned and
// compared by ==  where the underlying type allows it.
//
// User-defined Function values close over a *Frame captured at definition
// time rather than the caller's scope, giving them proper lexical closures;
// Builtin values carry no frame.
package value
