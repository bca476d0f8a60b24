package fhirpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind classifies errors raised while parsing or evaluating an expression.
//
// ErrorKind implements error so that callers can match on the kind:
//
//	if errors.Is(err, fhirpath.PathUnknown) { ... }
type ErrorKind uint8

const (
	// Lexical reports a bad character, an unterminated quoted literal or a malformed literal.
	Lexical ErrorKind = iota + 1
	// Syntax reports an unexpected token, a missing bracket or parenthesis or a bad operator position.
	Syntax
	// PathUnknown reports a path symbol that is not valid on the current element type.
	PathUnknown
	// FunctionUnknown reports a call to a function that is not in the function table.
	FunctionUnknown
	// Arity reports a function called with the wrong number of arguments.
	Arity
	// TypeMismatch reports an operator or function given an unsupported value kind.
	TypeMismatch
	// IndexOutOfRange reports an index selector past the end of a non-empty property.
	IndexOutOfRange
	// Arithmetic reports division by zero and integer overflow.
	Arithmetic
	// Internal reports an invariant violation.
	Internal
)

var errorKindNames = map[ErrorKind]string{
	Lexical:         "lexical error",
	Syntax:          "syntax error",
	PathUnknown:     "unknown path",
	FunctionUnknown: "unknown function",
	Arity:           "arity mismatch",
	TypeMismatch:    "type mismatch",
	IndexOutOfRange: "index out of range",
	Arithmetic:      "arithmetic error",
	Internal:        "internal error",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown error kind " + strconv.Itoa(int(k))
}

func (k ErrorKind) Error() string {
	return k.String()
}

// Error is the structured error returned by parsing and evaluation.
type Error struct {
	Kind ErrorKind
	// Pos is the byte offset into the expression source, or -1 if unknown.
	Pos int
	// Symbol is the offending path symbol, function name or operator.
	Symbol string
	// TypeName is the element type the symbol was resolved against, if any.
	TypeName string
	Msg      string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("fhirpath: ")
	b.WriteString(e.Kind.String())
	if e.Pos >= 0 {
		fmt.Fprintf(&b, " at position %d", e.Pos)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind ErrorKind, pos int, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func symbolError(kind ErrorKind, pos int, symbol string, format string, args ...any) *Error {
	err := newError(kind, pos, format, args...)
	err.Symbol = symbol
	return err
}

// NoSuchPath returns the error an Element reports from Children
// when symbol is not a property of typeName.
func NoSuchPath(typeName, symbol string) error {
	return &Error{
		Kind:     PathUnknown,
		Pos:      -1,
		Symbol:   symbol,
		TypeName: typeName,
		Msg:      fmt.Sprintf("%s has no element %q", typeName, symbol),
	}
}

// atPos attaches pos to err if err is an *Error that does not carry a position yet.
func atPos(err error, pos int) error {
	var fpErr *Error
	if !errors.As(err, &fpErr) || fpErr.Pos >= 0 {
		return err
	}
	located := *fpErr
	located.Pos = pos
	return &located
}

// withSymbol names symbol as the culprit of err if err is an *Error
// that was raised without position and symbol.
func withSymbol(err error, symbol string) error {
	var fpErr *Error
	if !errors.As(err, &fpErr) || fpErr.Pos >= 0 || fpErr.Symbol != "" {
		return err
	}
	named := *fpErr
	named.Symbol = symbol
	return &named
}
