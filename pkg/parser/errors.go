package parser

import (
	"github.com/conneroisu/gix/internal/ierr"
	"github.com/conneroisu/gix/pkg/lexer"
)

// errorAt records a parse error tied to tok's line and returns it so a
// caller can both report it and unwind via panic(parseError{}) up to the
// nearest synchronize point.
func (p *Parser) errorAt(tok lexer.Token, format string, args ...interface{}) *ierr.Error {
	e := ierr.New(tok.Line, format, args...)
	p.errors.Add(e)
	return e
}

// parseError is the panic payload used to unwind a malformed production up
// to synchronize, avoiding an error return threaded through every helper.
type parseError struct {
	err *ierr.Error
}
