package word

import (
	"errors"
	"strconv"

	"github.com/ezrec/binc/translate"
)

var f = translate.From

var (
	// Arithmetic errors
	ErrDivideByZero = errors.New(f("divide by zero"))
	ErrRootZero     = errors.New(f("zeroth root is undefined"))

	// Conversion errors
	ErrRadix         = errors.New(f("radix must be one of 2, 8, 10 or 16"))
	ErrRadixTooSmall = errors.New(f("radix must be at least 2"))
	ErrRadixTooBig   = errors.New(f("radix too big to notate with digits+letters"))
)

// ErrWidth is returned when a requested register width cannot be represented.
type ErrWidth int

func (ew ErrWidth) Error() string {
	return f("length too big; length must be between 0 and %v, given %v",
		strconv.Itoa(WIDTH_MAX), strconv.Itoa(int(ew)))
}

func (ew ErrWidth) Is(err error) (ok bool) {
	_, ok = err.(ErrWidth)
	return
}

// ErrDigit is returned when a literal contains a letter that is not a digit
// in the requested radix.
type ErrDigit struct {
	Digit rune
	Radix int
}

func (err *ErrDigit) Error() string {
	return f("letter '%v' cannot be used for number notation in base %v",
		string(err.Digit), strconv.Itoa(err.Radix))
}

// ErrRange is returned when a bit range does not fit the register.
type ErrRange struct {
	Range Range
	Width int
}

func (err *ErrRange) Error() string {
	return f("range %v is invalid for a %v bit register", err.Range.String(), strconv.Itoa(err.Width))
}
