package operator

import (
	"errors"
	"strconv"

	"github.com/ezrec/binc/translate"
)

var f = translate.From

var (
	// Operand shape errors
	ErrNoOperand         = errors.New(f("no second operand"))
	ErrOperandNotAllowed = errors.New(f("no second operand allowed"))
	ErrLeftOperand       = errors.New(f("left operand must be a bit range"))
	ErrNegateRange       = errors.New(f("only the [:] range is acceptable for negation"))
	ErrNegateOperand     = errors.New(f("negation takes no second operand"))
	ErrSwapLiteral       = errors.New(f("cannot swap with an immediate value"))
	ErrWidthOperand      = errors.New(f("bit width is a necessary argument"))

	// Count errors
	ErrCount      = errors.New(f("counting only 1 and 0"))
	ErrCountRange = errors.New(f("count does not read a range, specify 1 or 0"))
)

// ErrKind is returned when an operator kind has no handler.
type ErrKind Kind

func (ek ErrKind) Error() string {
	return f("unknown operator %v", strconv.Itoa(int(ek)))
}

func (ek ErrKind) Is(err error) (ok bool) {
	_, ok = err.(ErrKind)
	return
}
