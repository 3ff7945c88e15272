package operator

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/ezrec/binc/word"
)

// handler executes one operator kind. The left operand has already been
// checked to be a bit range.
type handler func(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error)

var handlers = map[Kind]handler{
	ASSIGN:               assign,
	ADD:                  binary((*word.Word).Add),
	SUB:                  binary((*word.Word).Sub),
	MUL:                  binary((*word.Word).Mul),
	DIV:                  binary((*word.Word).Div),
	MOD:                  binary((*word.Word).Mod),
	XOR:                  binary((*word.Word).Xor),
	AND:                  binary((*word.Word).And),
	OR:                   binary((*word.Word).Or),
	POW:                  exponent((*word.Word).Pow),
	ROOT:                 exponent((*word.Word).Root),
	SHIFT_LEFT:           shift((*word.Word).ShiftLeft),
	SHIFT_RIGHT:          shift((*word.Word).ShiftRightSigned),
	SHIFT_RIGHT_UNSIGNED: shift((*word.Word).ShiftRightUnsigned),
	ROTATE_LEFT:          rotate((*word.Word).RotateLeft),
	ROTATE_RIGHT:         rotate((*word.Word).RotateRight),
	NOT:                  not,
	NEGATE:               negate,
	REVERSE:              unary((*word.Word).Reverse),
	SHUFFLE: unary(func(w *word.Word, r word.Range) error {
		return w.Shuffle(r, nil)
	}),
	RANDOM: unary(func(w *word.Word, r word.Range) error {
		return w.Randomize(r, nil)
	}),
	COUNT:    count,
	GREATER:  compare(func(cmp int) bool { return cmp > 0 }),
	LESS:     compare(func(cmp int) bool { return cmp < 0 }),
	EQUAL:    compare(func(cmp int) bool { return cmp == 0 }),
	SWAP:     swap,
	WIDTH:    width,
	SIGNED:   signedness(true),
	UNSIGNED: signedness(false),
	HELP:     help,
	UNDO:     history(EFFECT_UNDO),
	REDO:     history(EFFECT_REDO),
}

// Apply executes operator k against register w.
//
// On success the returned Effect tells the caller whether to snapshot the
// register, and message holds any text the operator produced (comparison
// answers, bit counts, help). On error the register is unchanged.
func Apply(k Kind, w *word.Word, left, right Operand) (effect Effect, message string, err error) {
	h, ok := handlers[k]
	if !ok {
		err = ErrKind(k)
		return
	}

	lhs, ok := left.(RangeOperand)
	if !ok {
		err = ErrLeftOperand
		return
	}

	if right == nil {
		right = Empty{}
	}

	return h(w, lhs.Range, right)
}

// Help returns the operator summary.
func Help() string {
	var compound []string
	for _, tok := range Tokens {
		if tok.Kind.Compound() {
			compound = append(compound, tok.Text+"=")
		}
	}

	lines := []string{
		f("X operator Y:") + " >> << + - >>> * / % > < ^ & | <<~ ~>> == = <> pow root cnt",
		f("operator X:") + " ! ~ rnd shf rev",
		f("X and Y can be:") + " [] [i] [:] [i:] [:j] [i:j]",
		f("only Y can be:") + " 1 -1 0x1f 0o17 0b101 0(36)z 'a' $(expr)",
		f("compound:") + " " + strings.Join(compound, " "),
		f("commands:") + " int N, signed, unsigned, undo, redo, help, ?",
	}

	return strings.Join(lines, "\n")
}

// mask returns a value with the low n bits set.
func mask(n int) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(n))
	return m.Sub(m, big.NewInt(1))
}

// value reads the right operand. Literals are first extended to the width
// of w so that negative immediates combine correctly.
func value(w *word.Word, right Operand) (bits *big.Int, err error) {
	switch op := right.(type) {
	case LiteralOperand:
		lit := op.Word.Clone()
		lit.ExtendTo(w.Width())
		bits = lit.Big()
	case RangeOperand:
		bits, err = w.Get(op.Range)
	default:
		err = ErrNoOperand
	}
	return
}

// distance reads a shift or rotate count, 1 if there is no right operand.
func distance(w *word.Word, right Operand) (n *big.Int, err error) {
	switch op := right.(type) {
	case LiteralOperand:
		n = op.Word.Big()
	case RangeOperand:
		n, err = w.Get(op.Range)
	default:
		n = big.NewInt(1)
	}
	return
}

func assign(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error) {
	bits, err := value(w, right)
	if err != nil {
		return
	}

	err = w.Set(left, bits)
	return
}

func binary(op func(*word.Word, word.Range, *big.Int) error) handler {
	return func(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error) {
		bits, err := value(w, right)
		if err != nil {
			return
		}

		err = op(w, left, bits)
		return
	}
}

// exponent handles pow and root, which square (or square root) when no
// exponent is given.
func exponent(op func(*word.Word, word.Range, *big.Int) error) handler {
	return func(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error) {
		bits := big.NewInt(2)
		if _, ok := right.(Empty); !ok {
			bits, err = value(w, right)
			if err != nil {
				return
			}
		}

		err = op(w, left, bits)
		return
	}
}

func shift(op func(*word.Word, word.Range, uint) error) handler {
	return func(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error) {
		n, err := distance(w, right)
		if err != nil {
			return
		}

		// Any count past the widest register empties the range.
		count := uint(word.WIDTH_MAX)
		if n.Cmp(big.NewInt(word.WIDTH_MAX)) < 0 {
			count = uint(n.Uint64())
		}

		err = op(w, left, count)
		return
	}
}

func rotate(op func(*word.Word, word.Range, uint) error) handler {
	return func(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error) {
		n, err := distance(w, right)
		if err != nil {
			return
		}

		high, low, err := w.Resolve(left)
		if err != nil {
			return
		}

		n = new(big.Int).Mod(n, big.NewInt(int64(high-low+1)))
		err = op(w, left, uint(n.Uint64()))
		return
	}
}

func not(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error) {
	switch op := right.(type) {
	case LiteralOperand:
		err = ErrOperandNotAllowed
	case RangeOperand:
		var bits *big.Int
		bits, err = w.Get(op.Range)
		if err != nil {
			return
		}
		err = w.Set(left, bits.Not(bits))
	default:
		err = w.Not(left)
	}
	return
}

func negate(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error) {
	if !left.IsFull() {
		err = ErrNegateRange
		return
	}

	if _, ok := right.(Empty); !ok {
		err = ErrNegateOperand
		return
	}

	w.Negate()
	return
}

// unary handles operators that take no right operand.
func unary(op func(*word.Word, word.Range) error) handler {
	return func(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error) {
		if _, ok := right.(Empty); !ok {
			err = ErrOperandNotAllowed
			return
		}

		err = op(w, left)
		return
	}
}

func count(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error) {
	effect = EFFECT_NONHISTORICAL

	one := true
	switch op := right.(type) {
	case LiteralOperand:
		v := op.Word.Big()
		switch {
		case v.Sign() == 0:
			one = false
		case v.IsInt64() && v.Int64() == 1:
		default:
			err = ErrCount
			return
		}
	case RangeOperand:
		err = ErrCountRange
		return
	}

	n, err := w.Count(left, one)
	if err != nil {
		return
	}

	message = strconv.Itoa(n)
	return
}

// compare handles the unsigned comparisons. A literal right operand is
// extended to the register and then cut down to the width of the left
// range, so '[3:0] == -1' asks whether the low nibble is all ones.
func compare(test func(cmp int) bool) handler {
	return func(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error) {
		effect = EFFECT_NONHISTORICAL

		high, low, err := w.Resolve(left)
		if err != nil {
			return
		}

		rhs, err := value(w, right)
		if err != nil {
			return
		}

		if _, ok := right.(LiteralOperand); ok {
			rhs.And(rhs, mask(high-low+1))
		}

		lhs, _ := w.Get(left)
		if test(lhs.Cmp(rhs)) {
			message = f("yes")
		} else {
			message = f("no")
		}
		return
	}
}

func swap(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error) {
	switch op := right.(type) {
	case LiteralOperand:
		err = ErrSwapLiteral
	case RangeOperand:
		var a, b *big.Int
		a, err = w.Get(left)
		if err != nil {
			return
		}
		b, err = w.Get(op.Range)
		if err != nil {
			return
		}
		err = w.Set(left, b)
		if err != nil {
			return
		}
		err = w.Set(op.Range, a)
	default:
		err = ErrNoOperand
	}
	return
}

func width(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error) {
	op, ok := right.(LiteralOperand)
	if !ok {
		err = ErrWidthOperand
		return
	}

	n := op.Word.Int()
	if n.Sign() <= 0 || n.Cmp(big.NewInt(word.WIDTH_MAX)) > 0 {
		given := word.WIDTH_MAX + 1
		if n.IsInt64() && n.Int64() <= math.MaxInt32 {
			given = int(n.Int64())
		}
		err = word.ErrWidth(given)
		return
	}

	err = w.Convert(int(n.Int64()), w.Signed())
	return
}

func signedness(signed bool) handler {
	return func(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error) {
		if _, ok := right.(Empty); !ok {
			err = ErrOperandNotAllowed
			return
		}

		err = w.Convert(w.Width(), signed)
		return
	}
}

func help(w *word.Word, left word.Range, right Operand) (effect Effect, message string, err error) {
	effect = EFFECT_NONHISTORICAL
	message = Help()
	return
}

// history handles undo and redo, which only signal the caller.
func history(effect Effect) handler {
	return func(w *word.Word, left word.Range, right Operand) (Effect, string, error) {
		return effect, "", nil
	}
}
