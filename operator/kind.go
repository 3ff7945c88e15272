package operator

import (
	"strconv"
)

// Kind is an operator type.
type Kind int

const (
	ASSIGN               = Kind(0)  // =
	ADD                  = Kind(1)  // +
	SUB                  = Kind(2)  // -
	MUL                  = Kind(3)  // *
	DIV                  = Kind(4)  // /
	MOD                  = Kind(5)  // %
	XOR                  = Kind(6)  // ^
	AND                  = Kind(7)  // &
	OR                   = Kind(8)  // |
	POW                  = Kind(9)  // pow
	ROOT                 = Kind(10) // root
	SHIFT_LEFT           = Kind(11) // <<
	SHIFT_RIGHT          = Kind(12) // >>
	SHIFT_RIGHT_UNSIGNED = Kind(13) // >>>
	ROTATE_LEFT          = Kind(14) // <<~
	ROTATE_RIGHT         = Kind(15) // ~>>
	NOT                  = Kind(16) // ~
	NEGATE               = Kind(17) // !
	REVERSE              = Kind(18) // rev
	SHUFFLE              = Kind(19) // shf
	RANDOM               = Kind(20) // rnd
	COUNT                = Kind(21) // cnt
	GREATER              = Kind(22) // >
	LESS                 = Kind(23) // <
	EQUAL                = Kind(24) // ==
	SWAP                 = Kind(25) // <>
	WIDTH                = Kind(26) // int
	SIGNED               = Kind(27) // signed
	UNSIGNED             = Kind(28) // unsigned
	HELP                 = Kind(29) // help
	UNDO                 = Kind(30) // undo
	REDO                 = Kind(31) // redo
)

// Token is the spelling of an operator.
type Token struct {
	Text string
	Kind Kind
}

// Tokens is the operator alphabet in match order. Where one token is a
// prefix of another, the longer one comes first.
var Tokens = []Token{
	{"unsigned", UNSIGNED},
	{"signed", SIGNED},
	{"help", HELP},
	{"undo", UNDO},
	{"redo", REDO},
	{"root", ROOT},
	{"rnd", RANDOM},
	{"shf", SHUFFLE},
	{"rev", REVERSE},
	{"cnt", COUNT},
	{"int", WIDTH},
	{"pow", POW},
	{"~>>", ROTATE_RIGHT},
	{"<<~", ROTATE_LEFT},
	{">>>", SHIFT_RIGHT_UNSIGNED},
	{"<>", SWAP},
	{">>", SHIFT_RIGHT},
	{"<<", SHIFT_LEFT},
	{"==", EQUAL},
	{"?", HELP},
	{"=", ASSIGN},
	{"+", ADD},
	{"-", SUB},
	{"*", MUL},
	{"/", DIV},
	{"%", MOD},
	{">", GREATER},
	{"<", LESS},
	{"^", XOR},
	{"&", AND},
	{"|", OR},
	{"~", NOT},
	{"!", NEGATE},
}

var kindText = map[Kind]string{}

func init() {
	// First spelling wins, so 'help' names HELP rather than '?'.
	for _, tok := range Tokens {
		if _, ok := kindText[tok.Kind]; !ok {
			kindText[tok.Kind] = tok.Text
		}
	}
}

func (k Kind) String() string {
	text, ok := kindText[k]
	if !ok {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return text
}

// Compound reports whether the operator may be written with a trailing '='
// (as in '+=' or '>>=') with unchanged meaning.
func (k Kind) Compound() bool {
	switch k {
	case ADD, SUB, MUL, DIV, MOD, XOR, AND, OR,
		POW, ROOT,
		SHIFT_LEFT, SHIFT_RIGHT, SHIFT_RIGHT_UNSIGNED,
		ROTATE_LEFT, ROTATE_RIGHT:
		return true
	}
	return false
}
