package operator

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ezrec/binc/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func literal(t *testing.T, text string, radix int) LiteralOperand {
	w, err := word.FromLiteral(text, radix)
	require.NoError(t, err)
	return LiteralOperand{Word: w}
}

func register(t *testing.T, value uint64) *word.Word {
	w, err := word.FromBig(new(big.Int).SetUint64(value), false, 32)
	require.NoError(t, err)
	return w
}

func TestTokens(t *testing.T) {
	assert := assert.New(t)

	// A token that extends another must be tried first.
	for i, a := range Tokens {
		for _, b := range Tokens[i+1:] {
			assert.False(strings.HasPrefix(b.Text, a.Text), "%v shadows %v", a.Text, b.Text)
		}
	}

	for k := ASSIGN; k <= REDO; k++ {
		_, ok := handlers[k]
		assert.True(ok, k.String())
		assert.NotContains(k.String(), "Kind(")
	}

	assert.Equal("help", HELP.String())
	assert.Equal("<<~", ROTATE_LEFT.String())
	assert.Equal("int", WIDTH.String())
	assert.Equal("Kind(99)", Kind(99).String())

	assert.True(ADD.Compound())
	assert.True(ROTATE_RIGHT.Compound())
	assert.True(POW.Compound())
	assert.False(ASSIGN.Compound())
	assert.False(EQUAL.Compound())
	assert.False(NEGATE.Compound())
}

func TestApplyAssign(t *testing.T) {
	assert := assert.New(t)

	w := register(t, 0)
	effect, message, err := Apply(ASSIGN, w, RangeOperand{word.Bit(7)}, literal(t, "1", 10))
	assert.NoError(err)
	assert.Equal(EFFECT_HISTORICAL, effect)
	assert.Equal("", message)
	assert.Equal(uint64(128), w.Uint64())

	_, _, err = Apply(ASSIGN, w, RangeOperand{word.Full}, literal(t, "-1", 10))
	assert.NoError(err)
	assert.Equal(uint64(0xffffffff), w.Uint64())

	w = register(t, 0x1234)
	_, _, err = Apply(ASSIGN, w, RangeOperand{word.Span(7, 0)}, RangeOperand{word.Span(15, 8)})
	assert.NoError(err)
	assert.Equal(uint64(0x1212), w.Uint64())

	_, _, err = Apply(ASSIGN, w, RangeOperand{word.Full}, Empty{})
	assert.ErrorIs(err, ErrNoOperand)

	// A nil right operand is the same as Empty.
	_, _, err = Apply(ASSIGN, w, RangeOperand{word.Full}, nil)
	assert.ErrorIs(err, ErrNoOperand)
}

func TestApplyMutating(t *testing.T) {
	assert := assert.New(t)

	full := RangeOperand{word.Full}
	table := []struct {
		Name   string
		Value  uint64
		Kind   Kind
		Left   RangeOperand
		Right  Operand
		Result uint64
	}{
		{"add wrap", 0xffff00, ADD, RangeOperand{word.Span(23, 8)}, literal(t, "1", 10), 0},
		{"add negative", 5, ADD, full, literal(t, "-1", 10), 4},
		{"sub wrap", 0, SUB, full, literal(t, "1", 10), 0xffffffff},
		{"mul", 7, MUL, full, literal(t, "3", 10), 21},
		{"div", 100, DIV, full, literal(t, "4", 10), 25},
		{"div range", 0x0a64, DIV, RangeOperand{word.Span(7, 0)}, RangeOperand{word.Span(15, 8)}, 0x0a0a},
		{"mod", 100, MOD, full, literal(t, "7", 10), 2},
		{"xor", 0x0f, XOR, full, literal(t, "ff", 16), 0xf0},
		{"and", 0x3c, AND, full, literal(t, "0f", 16), 0x0c},
		{"or", 0x30, OR, full, literal(t, "0f", 16), 0x3f},
		{"pow square", 5, POW, full, Empty{}, 25},
		{"pow", 2, POW, full, literal(t, "3", 10), 8},
		{"root square", 26, ROOT, full, Empty{}, 5},
		{"root", 27, ROOT, full, literal(t, "3", 10), 3},
		{"shl one", 1, SHIFT_LEFT, full, Empty{}, 2},
		{"shl", 1, SHIFT_LEFT, full, literal(t, "4", 10), 16},
		{"shl past width", 1, SHIFT_LEFT, full, literal(t, "1000", 10), 0},
		{"shl by range", 0x102, SHIFT_LEFT, RangeOperand{word.Span(31, 8)}, RangeOperand{word.Span(7, 0)}, 0x402},
		{"sar", 0x80000000, SHIFT_RIGHT, full, literal(t, "4", 10), 0xf8000000},
		{"shr", 0x80000000, SHIFT_RIGHT_UNSIGNED, full, literal(t, "4", 10), 0x08000000},
		{"rol", 0x80000001, ROTATE_LEFT, full, literal(t, "33", 10), 0x00000003},
		{"ror one", 1, ROTATE_RIGHT, full, Empty{}, 0x80000000},
		{"not", 0, NOT, full, Empty{}, 0xffffffff},
		{"not range", 0x0f, NOT, RangeOperand{word.Span(15, 8)}, RangeOperand{word.Span(7, 0)}, 0xf00f},
		{"rev", 0x01, REVERSE, RangeOperand{word.Span(7, 0)}, Empty{}, 0x80},
		{"swap", 0x1234, SWAP, RangeOperand{word.Span(15, 8)}, RangeOperand{word.Span(7, 0)}, 0x3412},
	}

	for _, tc := range table {
		w := register(t, tc.Value)
		effect, message, err := Apply(tc.Kind, w, tc.Left, tc.Right)
		if !assert.NoError(err, tc.Name) {
			continue
		}
		assert.Equal(EFFECT_HISTORICAL, effect, tc.Name)
		assert.Equal("", message, tc.Name)
		assert.Equal(tc.Result, w.Uint64(), tc.Name)
	}
}

func TestApplyErrors(t *testing.T) {
	assert := assert.New(t)

	full := RangeOperand{word.Full}
	table := []struct {
		Name  string
		Kind  Kind
		Left  Operand
		Right Operand
		Err   error
	}{
		{"div zero", DIV, full, literal(t, "0", 10), word.ErrDivideByZero},
		{"mod zero range", MOD, full, RangeOperand{word.Span(31, 24)}, word.ErrDivideByZero},
		{"root zero", ROOT, full, literal(t, "0", 10), word.ErrRootZero},
		{"add nothing", ADD, full, Empty{}, ErrNoOperand},
		{"greater nothing", GREATER, full, Empty{}, ErrNoOperand},
		{"swap nothing", SWAP, full, Empty{}, ErrNoOperand},
		{"not literal", NOT, full, literal(t, "1", 10), ErrOperandNotAllowed},
		{"rev range", REVERSE, full, RangeOperand{word.Span(3, 0)}, ErrOperandNotAllowed},
		{"shf literal", SHUFFLE, full, literal(t, "1", 10), ErrOperandNotAllowed},
		{"rnd literal", RANDOM, full, literal(t, "1", 10), ErrOperandNotAllowed},
		{"signed literal", SIGNED, full, literal(t, "1", 10), ErrOperandNotAllowed},
		{"negate range", NEGATE, RangeOperand{word.Span(7, 0)}, Empty{}, ErrNegateRange},
		{"negate literal", NEGATE, full, literal(t, "1", 10), ErrNegateOperand},
		{"swap literal", SWAP, full, literal(t, "1", 10), ErrSwapLiteral},
		{"count two", COUNT, full, literal(t, "2", 10), ErrCount},
		{"count range", COUNT, full, RangeOperand{word.Span(3, 0)}, ErrCountRange},
		{"int nothing", WIDTH, full, Empty{}, ErrWidthOperand},
		{"int range", WIDTH, full, RangeOperand{word.Span(3, 0)}, ErrWidthOperand},
		{"int zero", WIDTH, full, literal(t, "0", 10), word.ErrWidth(0)},
		{"int huge", WIDTH, full, literal(t, "1024", 10), word.ErrWidth(0)},
		{"int negative", WIDTH, full, literal(t, "-8", 10), word.ErrWidth(0)},
		{"left literal", ADD, literal(t, "1", 10), literal(t, "1", 10), ErrLeftOperand},
		{"left empty", ADD, Empty{}, literal(t, "1", 10), ErrLeftOperand},
		{"unknown", Kind(99), full, Empty{}, ErrKind(0)},
	}

	for _, tc := range table {
		w := register(t, 0x00ff00ff)
		orig := w.Clone()

		_, _, err := Apply(tc.Kind, w, tc.Left, tc.Right)
		assert.True(errors.Is(err, tc.Err), "%v: %v", tc.Name, err)
		assert.True(w.Equal(orig), tc.Name)
	}

	w := register(t, 0)
	_, _, err := Apply(ADD, w, RangeOperand{word.Span(40, 0)}, literal(t, "1", 10))
	var er *word.ErrRange
	assert.ErrorAs(err, &er)

	_, _, err = Apply(EQUAL, w, RangeOperand{word.Span(0, 3)}, literal(t, "1", 10))
	assert.ErrorAs(err, &er)

	_, _, err = Apply(ROTATE_LEFT, w, RangeOperand{word.Span(32, 0)}, Empty{})
	assert.ErrorAs(err, &er)

	w = register(t, 0x1234)
	orig := w.Clone()
	_, _, err = Apply(SWAP, w, RangeOperand{word.Span(7, 0)}, RangeOperand{word.Span(40, 33)})
	assert.ErrorAs(err, &er)
	assert.True(w.Equal(orig))
}

func TestApplyCompare(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Kind    Kind
		Left    word.Range
		Right   Operand
		Message string
	}{
		{GREATER, word.Span(7, 0), literal(t, "14", 10), "yes"},
		{LESS, word.Span(7, 0), literal(t, "14", 10), "no"},
		{EQUAL, word.Span(7, 0), literal(t, "15", 10), "yes"},
		{EQUAL, word.Span(3, 0), literal(t, "-1", 10), "yes"},
		{EQUAL, word.Span(7, 0), literal(t, "-1", 10), "no"},
		{EQUAL, word.Span(15, 12), RangeOperand{word.Span(3, 0)}, "yes"},
		{GREATER, word.Span(15, 8), RangeOperand{word.Span(7, 0)}, "yes"},
		{LESS, word.Span(15, 8), RangeOperand{word.Span(7, 0)}, "no"},
	}

	for _, tc := range table {
		w := register(t, 0xf00f)
		orig := w.Clone()

		effect, message, err := Apply(tc.Kind, w, RangeOperand{tc.Left}, tc.Right)
		assert.NoError(err)
		assert.Equal(EFFECT_NONHISTORICAL, effect)
		assert.Equal(tc.Message, message, "%v %v %v", tc.Left, tc.Kind, tc.Right)
		assert.True(w.Equal(orig))
	}
}

func TestApplyCount(t *testing.T) {
	assert := assert.New(t)

	w := register(t, 0xf0f0)

	effect, message, err := Apply(COUNT, w, RangeOperand{word.Full}, Empty{})
	assert.NoError(err)
	assert.Equal(EFFECT_NONHISTORICAL, effect)
	assert.Equal("8", message)

	_, message, _ = Apply(COUNT, w, RangeOperand{word.Full}, literal(t, "0", 10))
	assert.Equal("24", message)

	_, message, _ = Apply(COUNT, w, RangeOperand{word.Span(7, 0)}, literal(t, "1", 10))
	assert.Equal("4", message)
}

func TestApplyNegate(t *testing.T) {
	assert := assert.New(t)

	w, _ := word.FromBig(big.NewInt(5), false, 8)
	effect, _, err := Apply(NEGATE, w, RangeOperand{word.Full}, Empty{})
	assert.NoError(err)
	assert.Equal(EFFECT_HISTORICAL, effect)
	assert.Equal(uint64(0xfb), w.Uint64())
	assert.True(w.Signed())
}

func TestApplyWidth(t *testing.T) {
	assert := assert.New(t)

	w, _ := word.FromBig(big.NewInt(0x12345678), true, 32)

	_, _, err := Apply(WIDTH, w, RangeOperand{word.Full}, literal(t, "16", 10))
	assert.NoError(err)
	assert.Equal(16, w.Width())
	assert.Equal(uint64(0x5678), w.Uint64())
	assert.True(w.Signed())

	_, _, err = Apply(WIDTH, w, RangeOperand{word.Full}, literal(t, "20", 10))
	assert.NoError(err)
	assert.Equal(32, w.Width())
	assert.Equal(uint64(0x5678), w.Uint64())

	_, _, err = Apply(WIDTH, w, RangeOperand{word.Full}, literal(t, "512", 10))
	assert.NoError(err)
	assert.Equal(512, w.Width())

	table := []struct {
		Text  string
		Given string
	}{
		{"600", "given 600"},
		{"0", "given 0"},
		{"-8", "given -8"},
		{"1" + strings.Repeat("0", 30), "given 513"},
	}

	for _, tc := range table {
		_, _, err = Apply(WIDTH, w, RangeOperand{word.Full}, literal(t, tc.Text, 10))
		var ew word.ErrWidth
		if assert.ErrorAs(err, &ew, tc.Text) {
			assert.Contains(ew.Error(), tc.Given, tc.Text)
		}
	}
	assert.Equal(512, w.Width())
}

func TestApplySignedness(t *testing.T) {
	assert := assert.New(t)

	w := register(t, 0x80000000)

	effect, _, err := Apply(SIGNED, w, RangeOperand{word.Full}, Empty{})
	assert.NoError(err)
	assert.Equal(EFFECT_HISTORICAL, effect)
	assert.True(w.Signed())
	assert.True(w.Negative())

	_, _, err = Apply(UNSIGNED, w, RangeOperand{word.Full}, Empty{})
	assert.NoError(err)
	assert.False(w.Signed())
	assert.Equal(uint64(0x80000000), w.Uint64())
}

func TestApplyRandom(t *testing.T) {
	assert := assert.New(t)

	w := register(t, 0x0000ffff)
	_, _, err := Apply(SHUFFLE, w, RangeOperand{word.Full}, Empty{})
	assert.NoError(err)
	n, _ := w.Count(word.Full, true)
	assert.Equal(16, n)

	w = register(t, 0x0000ffff)
	_, _, err = Apply(RANDOM, w, RangeOperand{word.Span(31, 16)}, Empty{})
	assert.NoError(err)
	assert.Equal(uint64(0xffff), w.Uint64()&0xffff)
}

func TestApplyMeta(t *testing.T) {
	assert := assert.New(t)

	w := register(t, 42)
	orig := w.Clone()

	effect, message, err := Apply(HELP, w, RangeOperand{word.Full}, Empty{})
	assert.NoError(err)
	assert.Equal(EFFECT_NONHISTORICAL, effect)
	assert.Contains(message, "pow")
	assert.Contains(message, "<<=")
	assert.Contains(message, "'a'")

	effect, _, err = Apply(UNDO, w, RangeOperand{word.Full}, Empty{})
	assert.NoError(err)
	assert.Equal(EFFECT_UNDO, effect)

	effect, _, err = Apply(REDO, w, RangeOperand{word.Full}, Empty{})
	assert.NoError(err)
	assert.Equal(EFFECT_REDO, effect)

	assert.True(w.Equal(orig))

	assert.Equal("historical", EFFECT_HISTORICAL.String())
	assert.Equal("nonhistorical", EFFECT_NONHISTORICAL.String())
	assert.Equal("undo", EFFECT_UNDO.String())
	assert.Equal("redo", EFFECT_REDO.String())
	assert.Equal("Effect(9)", Effect(9).String())
}

func TestCommand(t *testing.T) {
	assert := assert.New(t)

	cmd := Command{
		Left:  RangeOperand{word.Span(23, 8)},
		Kind:  ADD,
		Right: literal(t, "1", 10),
	}

	w := register(t, 0xffff00)
	effect, _, err := cmd.Apply(w)
	assert.NoError(err)
	assert.Equal(EFFECT_HISTORICAL, effect)
	assert.Equal(uint64(0), w.Uint64())

	assert.Equal("[23:8]+u8:0x1", cmd.String())
	assert.Equal("[:]~", Command{Left: RangeOperand{word.Full}, Kind: NOT, Right: Empty{}}.String())
}
