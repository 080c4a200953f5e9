package formatter

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/tangzhangming/javamin/internal/parser"
)

// ParseError 源码有词法或语法错误
type ParseError struct {
	Filename string
	Errors   []parser.Error
	err      error
}

func newParseError(filename string, errs []parser.Error) *ParseError {
	pe := &ParseError{Filename: filename, Errors: errs}
	for _, e := range errs {
		pe.err = multierr.Append(pe.err, e)
	}
	return pe
}

func (e *ParseError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d syntax errors: %v", len(e.Errors), e.err)
}

// Unwrap 返回每一个语法错误
func (e *ParseError) Unwrap() []error {
	return multierr.Errors(e.err)
}

// First 返回第一个语法错误
func (e *ParseError) First() parser.Error {
	return e.Errors[0]
}
