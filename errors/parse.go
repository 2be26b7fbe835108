package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies interpreter failures.
type ErrorCode string

const (
	// ErrMalformed indicates the layout document is not well-formed XML.
	ErrMalformed ErrorCode = "layout-malformed"
	// ErrLimitExceeded indicates the document exceeded a configured parse limit.
	ErrLimitExceeded ErrorCode = "layout-limit-exceeded"
)

// ParseError describes a layout document that could not be interpreted,
// with optional line/column context from the XML parser.
//
//nolint:errname // public API name mirrors the interpreter's failure contract.
type ParseError struct {
	Code    ErrorCode
	Message string
	Line    int
	Column  int
}

// Error formats the failure for display, including code, message, and position.
func (e *ParseError) Error() string {
	if e == nil {
		return "parse error <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))
	if e.Line > 0 && e.Column > 0 {
		b.WriteString(fmt.Sprintf(" at line %d, column %d", e.Line, e.Column))
	} else if e.Line > 0 {
		b.WriteString(fmt.Sprintf(" at line %d", e.Line))
	}
	return b.String()
}

// NewParseError builds a ParseError with a code and message.
func NewParseError(code ErrorCode, msg string) *ParseError {
	return &ParseError{Code: code, Message: msg}
}

// NewParseErrorf formats a message and builds a ParseError.
func NewParseErrorf(code ErrorCode, format string, args ...any) *ParseError {
	return NewParseError(code, fmt.Sprintf(format, args...))
}

// At returns a copy of the error positioned at line and column.
func (e *ParseError) At(line, column int) *ParseError {
	out := *e
	out.Line = line
	out.Column = column
	return &out
}

// AsParseError extracts a ParseError from an error chain.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) && pe != nil {
		return pe, true
	}
	return nil, false
}

// IsMalformed reports whether err carries an ErrMalformed ParseError.
func IsMalformed(err error) bool {
	return hasCode(err, ErrMalformed)
}

// IsLimitExceeded reports whether err carries an ErrLimitExceeded ParseError.
func IsLimitExceeded(err error) bool {
	return hasCode(err, ErrLimitExceeded)
}

func hasCode(err error, code ErrorCode) bool {
	pe, ok := AsParseError(err)
	return ok && pe.Code == code
}
