package syntax

import (
	"errors"
	"strconv"

	"github.com/ezrec/binc/translate"
)

var f = translate.From

var (
	// Grammar errors
	ErrTrailing    = errors.New(f("could not parse all symbols"))
	ErrAccessor    = errors.New(f("accessor [] is not closed with ']'"))
	ErrIndex       = errors.New(f("bit index too big"))
	ErrRvalue      = errors.New(f("number or range expected"))
	ErrNegative    = errors.New(f("bad negative number syntax"))
	ErrCharLiteral = errors.New(f("letter must be one character between quotes"))

	// Radix errors
	ErrRadixEmpty = errors.New(f("arbitrary radix must not be empty"))
	ErrRadixClose = errors.New(f("arbitrary radix must be closed with ')'"))

	// Expression errors
	ErrExpressionClose = errors.New(f("expression must be closed with ')'"))
	ErrExpressionType  = errors.New(f("expression must produce an integer"))
)

// ErrRadixLetter is returned for an unknown radix letter after a leading 0.
type ErrRadixLetter rune

func (el ErrRadixLetter) Error() string {
	return f("bad radix letter '%v'", string(rune(el)))
}

// ErrExpression is returned when a $() expression cannot be evaluated.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("$(%v) is not a valid expression: %v", err.Expr, err.Err.Error())
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

// Error is a parse failure, with the position it was detected at.
type Error struct {
	Command string // The command text.
	Offset  int    // Character offset of the failure.
	Err     error
}

func (err *Error) Error() string {
	return f("'%v' at %v: %v", err.Command, strconv.Itoa(err.Offset), err.Err.Error())
}

func (err *Error) Unwrap() error {
	return err.Err
}
